package usecase

import (
	"context"
	"errors"
	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"
	"log"
	"strings"
	"time"
)

// ITrialUseCase drives TrialToFlex customers into their first flex plan.
type ITrialUseCase interface {
	// Convert places the first flex order from the customer's flex default and creates the plan.
	Convert(ctx context.Context, customerID, source string) (entities.FlexPlan, error)
	Skip(ctx context.Context, customerID string, days int) (entities.Customer, error)
	Cancel(ctx context.Context, customerID string) (entities.Customer, error)
}

type TrialUseCase struct {
	customers interfaces.ICustomerRepository
	orders    IOrderUseCase
	plans     *FlexPlanUseCase
	notifier  *Notifier
	policy    Config
	now       func() time.Time
}

var _ ITrialUseCase = (*TrialUseCase)(nil)

func NewTrialUseCase(customers interfaces.ICustomerRepository, orders IOrderUseCase, plans *FlexPlanUseCase, notifier *Notifier, policy Config) *TrialUseCase {
	return &TrialUseCase{customers: customers, orders: orders, plans: plans, notifier: notifier, policy: policy, now: time.Now}
}

func (u *TrialUseCase) Convert(ctx context.Context, customerID, source string) (entities.FlexPlan, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.FlexPlan{}, ErrInvalidCustomerID
	}
	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return entities.FlexPlan{}, err
	}
	if customer.ID == "" {
		return entities.FlexPlan{}, newDomainError(ErrCustomerNotFound, "customer_id", customerID, nil)
	}
	if strings.TrimSpace(customer.PaymentCustomerID) == "" {
		return entities.FlexPlan{}, newDomainError(ErrPaymentProfileMissing, "customer_id", customerID, nil)
	}
	if len(customer.FlexDefault) == 0 {
		return entities.FlexPlan{}, newDomainError(ErrFlexDefaultMissing, "customer_id", customerID, nil)
	}
	items := make([]entities.ItemRequest, 0, len(customer.FlexDefault))
	for _, it := range customer.FlexDefault {
		if it.ID == "" || it.Quantity <= 0 {
			return entities.FlexPlan{}, newDomainError(ErrInvalidQuantity, "customer_id", customerID, nil)
		}
		items = append(items, it)
	}

	log.Printf("[trial][usecase] convert start customer_id=%s items=%d", customerID, len(items))
	order, err := u.orders.PlaceOrder(ctx, PlaceOrderRequest{
		Customer:         &customer,
		Items:            items,
		OrderType:        entities.OrderTypeFlex,
		Source:           source,
		FulfillmentDelay: u.plans.fulfillmentDelay(customer),
		OrderContext:     map[string]any{"orderPath": "Trial Conversion"},
	})
	if err != nil {
		log.Printf("[trial][usecase] convert failed customer_id=%s err=%v", customerID, err)
		u.applyConversionFailure(ctx, customer, err)
		return entities.FlexPlan{}, err
	}

	var flexDiscounts []entities.Discount
	totalPrice := order.Paid.Subtotal + order.Paid.Shipping
	for _, d := range order.Discounts {
		if d.Flex {
			flexDiscounts = append(flexDiscounts, d)
			totalPrice -= d.Amount
		}
	}
	plan := u.plans.newPlan(customer, order, source, flexDiscounts, totalPrice, u.policy.nextCycle(u.now()))
	created, err := u.plans.startPlan(ctx, customer, order, plan)
	if err != nil {
		return created, err
	}
	u.notifier.Emit(ctx, entities.DomainEvent{
		Type:      eventTypeTrial,
		Action:    "converted",
		Customer:  entities.EventCustomer{ID: customer.ID},
		Timestamp: created.Started,
	})
	return created, nil
}

// applyConversionFailure reschedules or gives up on the trial conversion.
func (u *TrialUseCase) applyConversionFailure(ctx context.Context, customer entities.Customer, cause error) {
	now := u.now()
	retryAt := u.policy.daysOut(now, u.policy.TrialRetryDays)
	update := entities.TrialStateUpdate{Clear: []entities.TrialMarker{entities.MarkerRushed}}
	if errors.Is(cause, ErrChargeFailed) {
		update.IncFailedStart = true
		if customer.Trial.FailedStart+1 >= u.policy.TrialFailureThreshold {
			stopped := now.UTC()
			update.NoFollowup = &stopped
			update.Clear = append(update.Clear, entities.MarkerStartFlex, entities.MarkerFlexFollowup)
		} else {
			update.StartFlex = &retryAt
		}
	} else {
		update.StartFlex = &retryAt
	}
	if _, err := u.customers.UpdateTrialState(ctx, customer.ID, update); err != nil {
		log.Printf("[trial][usecase] failure bookkeeping failed customer_id=%s err=%v", customer.ID, err)
		return
	}
	log.Printf("[trial][usecase] conversion rescheduled customer_id=%s gave_up=%t", customer.ID, update.NoFollowup != nil)
}

func (u *TrialUseCase) Skip(ctx context.Context, customerID string, days int) (entities.Customer, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	if days <= 0 {
		days = u.policy.SkipDays
	}
	followup := u.policy.daysOut(u.now(), days)
	customer, err := u.customers.UpdateTrialState(ctx, customerID, entities.TrialStateUpdate{
		FlexFollowup: &followup,
		Clear:        []entities.TrialMarker{entities.MarkerStartFlex, entities.MarkerNoFollowup},
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if customer.ID == "" {
		return entities.Customer{}, newDomainError(ErrCustomerNotFound, "customer_id", customerID, nil)
	}
	log.Printf("[trial][usecase] skipped customer_id=%s days=%d", customerID, days)
	u.notifier.Emit(ctx, entities.DomainEvent{
		Type:       eventTypeTrial,
		Action:     "skipped",
		Customer:   entities.EventCustomer{ID: customerID},
		Properties: map[string]any{"daysSkipped": days},
	})
	return customer, nil
}

func (u *TrialUseCase) Cancel(ctx context.Context, customerID string) (entities.Customer, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	now := u.now().UTC()
	customer, err := u.customers.UpdateTrialState(ctx, customerID, entities.TrialStateUpdate{
		NoFollowup: &now,
		Clear:      []entities.TrialMarker{entities.MarkerStartFlex, entities.MarkerFlexFollowup},
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if customer.ID == "" {
		return entities.Customer{}, newDomainError(ErrCustomerNotFound, "customer_id", customerID, nil)
	}
	log.Printf("[trial][usecase] canceled customer_id=%s", customerID)
	u.notifier.Emit(ctx, entities.DomainEvent{
		Type:       eventTypeTrial,
		Action:     "canceled",
		Customer:   entities.EventCustomer{ID: customerID},
		Timestamp:  now,
		Properties: map[string]any{"typeId": customerID},
	})
	u.notifier.Track(ctx, customer.Email, "Trial Canceled", nil)
	u.notifier.Identify(ctx, customer.Email, map[string]any{"trialStatus": "canceled"})
	return customer, nil
}
