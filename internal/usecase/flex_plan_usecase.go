package usecase

import (
	"context"
	"errors"
	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

const cancelPlanReason = "Canceled Plan"

// CreatePlanRequest starts a new flex plan with an immediate first order.
type CreatePlanRequest struct {
	CustomerID string
	Items      []entities.ItemRequest
	Discounts  []entities.Discount
	Source     string
}

// IFlexPlanUseCase is the flex plan state machine.
//
// Pause and Resume toggle status. Skip pushes the reminder date out and forces
// the plan active. Process charges one cycle and applies the charge failure
// policy. Cancel removes the plan and unwinds its last order.
type IFlexPlanUseCase interface {
	Create(ctx context.Context, req CreatePlanRequest) (entities.FlexPlan, error)
	Pause(ctx context.Context, planID string) (entities.FlexPlan, error)
	Resume(ctx context.Context, planID string) (entities.FlexPlan, error)
	Skip(ctx context.Context, planID string, days int) (entities.FlexPlan, error)
	Process(ctx context.Context, planID, source string) (entities.Order, error)
	Cancel(ctx context.Context, planID string) (entities.Customer, error)
}

type FlexPlanUseCase struct {
	plans     interfaces.IFlexPlanRepository
	customers interfaces.ICustomerRepository
	orders    IOrderUseCase
	refunds   IRefundUseCase
	notifier  *Notifier
	policy    Config
	now       func() time.Time
}

var _ IFlexPlanUseCase = (*FlexPlanUseCase)(nil)

func NewFlexPlanUseCase(plans interfaces.IFlexPlanRepository, customers interfaces.ICustomerRepository, orders IOrderUseCase, refunds IRefundUseCase, notifier *Notifier, policy Config) *FlexPlanUseCase {
	return &FlexPlanUseCase{
		plans:     plans,
		customers: customers,
		orders:    orders,
		refunds:   refunds,
		notifier:  notifier,
		policy:    policy,
		now:       time.Now,
	}
}

func (u *FlexPlanUseCase) Create(ctx context.Context, req CreatePlanRequest) (entities.FlexPlan, error) {
	id := strings.TrimSpace(req.CustomerID)
	if id == "" {
		return entities.FlexPlan{}, ErrInvalidCustomerID
	}
	customer, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return entities.FlexPlan{}, err
	}
	if customer.ID == "" {
		return entities.FlexPlan{}, newDomainError(ErrCustomerNotFound, "customer_id", id, nil)
	}

	order, err := u.orders.PlaceOrder(ctx, PlaceOrderRequest{
		Customer:         &customer,
		Items:            req.Items,
		OrderType:        entities.OrderTypeFlex,
		Source:           req.Source,
		Discounts:        req.Discounts,
		FulfillmentDelay: u.fulfillmentDelay(customer),
		OrderContext:     map[string]any{"orderPath": "Flex Order", "flexOrderCount": 1},
	})
	if err != nil {
		log.Printf("[flex][usecase] first order failed customer_id=%s err=%v", id, err)
		return entities.FlexPlan{}, err
	}

	plan := u.newPlan(customer, order, req.Source, order.Discounts, order.Paid.Shipping+itemsTotal(order.Items), order.CompletionDate.AddDate(0, 1, 0))
	return u.startPlan(ctx, customer, order, plan)
}

func (u *FlexPlanUseCase) Pause(ctx context.Context, planID string) (entities.FlexPlan, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return entities.FlexPlan{}, ErrInvalidPlanID
	}
	plan, err := u.plans.Pause(ctx, planID, u.now().UTC())
	if err != nil {
		log.Printf("[flex][usecase] pause failed plan_id=%s err=%v", planID, err)
		return entities.FlexPlan{}, err
	}
	if plan.ID == "" {
		return entities.FlexPlan{}, newDomainError(ErrPlanNotFound, "plan_id", planID, nil)
	}
	log.Printf("[flex][usecase] paused plan_id=%s customer_id=%s", plan.ID, plan.CustomerID)
	if plan.CustomerID != "" {
		u.notifier.Emit(ctx, u.planEvent(plan, "paused", plan.PausedOn, nil))
		u.notifier.Track(ctx, plan.Email, "Flex Paused", nil)
		u.notifier.Identify(ctx, plan.Email, map[string]any{"flexStatus": string(plan.Status)})
	}
	return plan, nil
}

func (u *FlexPlanUseCase) Resume(ctx context.Context, planID string) (entities.FlexPlan, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return entities.FlexPlan{}, ErrInvalidPlanID
	}
	now := u.now().UTC()
	plan, err := u.plans.Resume(ctx, planID, now, u.policy.daysOut(now, u.policy.ResumeCadenceDays))
	if err != nil {
		log.Printf("[flex][usecase] resume failed plan_id=%s err=%v", planID, err)
		return entities.FlexPlan{}, err
	}
	if plan.ID == "" {
		return entities.FlexPlan{}, newDomainError(ErrPlanNotResumable, "plan_id", planID, nil)
	}

	customer, err := u.customers.GetByID(ctx, plan.CustomerID)
	if err != nil {
		return entities.FlexPlan{}, err
	}
	if customer.ID == "" {
		return entities.FlexPlan{}, newDomainError(ErrCustomerNotFound, "plan_id", planID, nil)
	}
	if customer.CustomerType == entities.CustomerTypeTrialToFlex && customer.Trial.ConvertedFlex == nil {
		started := plan.Started
		if _, err := u.customers.UpdateTrialState(ctx, customer.ID, entities.TrialStateUpdate{
			ConvertedFlex: &started,
			Clear:         []entities.TrialMarker{entities.MarkerNoFollowup, entities.MarkerFlexFollowup, entities.MarkerStartFlex},
		}); err != nil {
			log.Printf("[flex][usecase] trial marker update failed customer_id=%s err=%v", customer.ID, err)
			return entities.FlexPlan{}, err
		}
	}
	if customer.FailedFlex > 0 {
		if err := u.customers.ResetFailedFlex(ctx, customer.ID); err != nil {
			log.Printf("[flex][usecase] failure counter reset failed customer_id=%s err=%v", customer.ID, err)
		}
	}
	log.Printf("[flex][usecase] resumed plan_id=%s next_text=%s", plan.ID, formatTime(plan.NextText))

	u.notifier.Emit(ctx, u.planEvent(plan, "resumed", plan.ResumedOn, nil))
	u.notifier.Track(ctx, plan.Email, "Flex Resumed", nil)
	u.notifier.Identify(ctx, plan.Email, map[string]any{"flexStatus": string(plan.Status)})
	return plan, nil
}

func (u *FlexPlanUseCase) Skip(ctx context.Context, planID string, days int) (entities.FlexPlan, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return entities.FlexPlan{}, ErrInvalidPlanID
	}
	if days <= 0 {
		days = u.policy.SkipDays
	}
	plan, err := u.plans.Skip(ctx, planID, u.policy.daysOut(u.now(), days))
	if err != nil {
		log.Printf("[flex][usecase] skip failed plan_id=%s err=%v", planID, err)
		return entities.FlexPlan{}, err
	}
	if plan.ID == "" {
		return entities.FlexPlan{}, newDomainError(ErrPlanNotFound, "plan_id", planID, nil)
	}
	log.Printf("[flex][usecase] skipped plan_id=%s days=%d next_text=%s", plan.ID, days, formatTime(plan.NextText))
	u.notifier.Emit(ctx, u.planEvent(plan, "skipped", nil, map[string]any{"daysSkipped": days}))
	return plan, nil
}

func (u *FlexPlanUseCase) Process(ctx context.Context, planID, source string) (entities.Order, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return entities.Order{}, ErrInvalidPlanID
	}
	plan, err := u.plans.GetByID(ctx, planID)
	if err != nil {
		return entities.Order{}, err
	}
	if plan.ID == "" {
		return entities.Order{}, newDomainError(ErrPlanNotFound, "plan_id", planID, nil)
	}
	if plan.CustomerID == "" {
		return entities.Order{}, newDomainError(ErrCustomerNotFound, "plan_id", planID, nil)
	}

	discounts := make([]entities.Discount, len(plan.Discounts))
	copy(discounts, plan.Discounts)
	for i, d := range discounts {
		if d.DiscountType != entities.DiscountTypeMult {
			continue
		}
		rate, err := normalizeRate(d)
		if err != nil {
			return entities.Order{}, newDomainError(ErrMalformedDiscount, "plan_id", planID, err)
		}
		discounts[i].Value = rate
	}

	log.Printf("[flex][usecase] process start plan_id=%s customer_id=%s source=%s", planID, plan.CustomerID, source)
	order, err := u.orders.PlaceOrder(ctx, PlaceOrderRequest{
		CustomerID: plan.CustomerID,
		Items:      entities.ToItemRequests(plan.Items),
		OrderType:  entities.OrderTypeFlex,
		Source:     source,
		Discounts:  discounts,
		Shipping:   plan.ShippingPrice,
		Address:    &plan.ShippingAddress,
		OrderContext: map[string]any{
			"orderPath":      "Flex Order",
			"flexOrderCount": len(plan.Orders) + 1,
			"flexTotalValue": plan.TotalValue,
		},
	})
	if err != nil {
		log.Printf("[flex][usecase] process failed plan_id=%s err=%v", planID, err)
		if errors.Is(err, ErrChargeFailed) {
			u.applyChargeFailure(ctx, plan)
		}
		return entities.Order{}, err
	}

	rec := entities.PlanOrderRecord{
		Order:    order.Ref(),
		Total:    order.Paid.Total,
		NextText: u.policy.nextCycle(u.now()),
	}
	rec.FlexDiscounts = []entities.Discount{}
	for _, d := range plan.Discounts {
		if d.Flex {
			rec.FlexDiscounts = append(rec.FlexDiscounts, d)
			continue
		}
		rec.PriceAdjustment += d.Amount
	}
	updated, err := u.plans.RecordOrder(ctx, planID, rec)
	if err != nil {
		log.Printf("[flex][usecase] CRITICAL plan update failed after charge plan_id=%s invoice_number=%s err=%v", planID, order.InvoiceNumber, err)
		return order, err
	}
	if updated.ID == "" {
		log.Printf("[flex][usecase] plan already has order plan_id=%s invoice_number=%s", planID, order.InvoiceNumber)
		updated = plan
	}
	if err := u.customers.ResetFailedFlex(ctx, plan.CustomerID); err != nil {
		log.Printf("[flex][usecase] failure counter reset failed customer_id=%s err=%v", plan.CustomerID, err)
	}
	log.Printf("[flex][usecase] processed plan_id=%s invoice_number=%s total=%d", planID, order.InvoiceNumber, order.Paid.Total)

	u.notifier.Track(ctx, updated.Email, "Flex Order", map[string]any{
		"orderNumber": updated.TotalOrders,
		"firstName":   updated.FirstName,
	})
	return order, nil
}

// applyChargeFailure counts a failed charge on the owning customer and either
// schedules a near-term retry or pauses the plan at the failure threshold.
func (u *FlexPlanUseCase) applyChargeFailure(ctx context.Context, plan entities.FlexPlan) {
	failures, err := u.customers.IncrementFailedFlex(ctx, plan.CustomerID)
	if err != nil {
		log.Printf("[flex][usecase] failure counter update failed customer_id=%s plan_id=%s err=%v", plan.CustomerID, plan.ID, err)
		return
	}
	if failures >= u.policy.FlexFailureThreshold {
		log.Printf("[flex][usecase] failure threshold reached plan_id=%s failures=%d", plan.ID, failures)
		if _, err := u.Pause(ctx, plan.ID); err != nil {
			log.Printf("[flex][usecase] auto-pause failed plan_id=%s err=%v", plan.ID, err)
		}
		return
	}
	retryAt := u.now().UTC().Add(u.policy.FlexRetryBackoff)
	if err := u.plans.ScheduleRetry(ctx, plan.ID, retryAt); err != nil {
		log.Printf("[flex][usecase] retry scheduling failed plan_id=%s err=%v", plan.ID, err)
		return
	}
	log.Printf("[flex][usecase] retry scheduled plan_id=%s failures=%d next_order=%s", plan.ID, failures, retryAt.Format(time.RFC3339))
}

func (u *FlexPlanUseCase) Cancel(ctx context.Context, planID string) (entities.Customer, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return entities.Customer{}, ErrInvalidPlanID
	}
	plan, err := u.plans.GetByID(ctx, planID)
	if err != nil {
		return entities.Customer{}, err
	}
	if plan.ID == "" {
		return entities.Customer{}, newDomainError(ErrPlanNotFound, "plan_id", planID, nil)
	}
	if plan.CustomerID == "" {
		return entities.Customer{}, newDomainError(ErrCustomerNotFound, "plan_id", planID, nil)
	}

	if invoice := plan.LastInvoiceNumber(); invoice != "" {
		if _, err := u.refunds.Cancel(ctx, invoice, cancelPlanReason); err != nil {
			if !errors.Is(err, ErrOrderNotCancelable) {
				log.Printf("[flex][usecase] cancel last order failed plan_id=%s invoice_number=%s err=%v", planID, invoice, err)
				return entities.Customer{}, err
			}
			if _, err := u.refunds.Refund(ctx, RefundRequest{InvoiceNumber: invoice, Reason: cancelPlanReason}); err != nil {
				log.Printf("[flex][usecase] refund last order failed plan_id=%s invoice_number=%s err=%v", planID, invoice, err)
				return entities.Customer{}, err
			}
		}
	}

	customer, err := u.customers.RemoveFlexPlan(ctx, plan.CustomerID, plan.ID)
	if err != nil {
		return entities.Customer{}, err
	}
	canceledConversion := false
	if customer.CustomerType == entities.CustomerTypeTrialToFlex && len(customer.FlexPlans) == 0 {
		canceledConversion = true
		now := u.now().UTC()
		customer, err = u.customers.UpdateTrialState(ctx, customer.ID, entities.TrialStateUpdate{
			NoFollowup: &now,
			Clear:      []entities.TrialMarker{entities.MarkerConvertedFlex, entities.MarkerFlexFollowup, entities.MarkerStartFlex},
		})
		if err != nil {
			return entities.Customer{}, err
		}
	}
	if err := u.plans.Delete(ctx, plan.ID); err != nil {
		log.Printf("[flex][usecase] delete failed plan_id=%s err=%v", plan.ID, err)
		return entities.Customer{}, err
	}
	log.Printf("[flex][usecase] canceled plan_id=%s customer_id=%s canceled_conversion=%t", plan.ID, plan.CustomerID, canceledConversion)

	if canceledConversion {
		u.notifier.Emit(ctx, entities.DomainEvent{
			Type:     eventTypeTrial,
			Action:   "conversion_canceled",
			Customer: entities.EventCustomer{ID: customer.ID},
		})
	}
	u.notifier.Track(ctx, plan.Email, "CANCELED Flex Conversion", nil)
	u.notifier.Identify(ctx, plan.Email, map[string]any{"flexStatus": "canceledConversion"})
	return customer, nil
}

func (u *FlexPlanUseCase) fulfillmentDelay(c entities.Customer) time.Duration {
	if c.Rushed {
		return 0
	}
	return u.policy.FulfillmentDelay
}

func (u *FlexPlanUseCase) newPlan(customer entities.Customer, order entities.Order, source string, discounts []entities.Discount, totalPrice int64, nextText time.Time) entities.FlexPlan {
	if discounts == nil {
		discounts = []entities.Discount{}
	}
	return entities.FlexPlan{
		ID:              uuid.NewString(),
		CustomerID:      customer.ID,
		FirstName:       customer.FirstName,
		LastName:        customer.LastName,
		Email:           customer.Email,
		Phone:           customer.Phone,
		Items:           order.Items,
		Discounts:       discounts,
		ShippingAddress: customer.ShippingAddress,
		TotalPrice:      totalPrice,
		NextText:        &nextText,
		Status:          entities.FlexPlanStatusActive,
		Source:          source,
		Started:         order.CompletionDate,
		TotalOrders:     1,
		TotalValue:      order.Paid.Total,
		Orders:          []entities.OrderRef{order.Ref()},
	}
}

// startPlan persists a plan created from its first order and links it to the customer.
func (u *FlexPlanUseCase) startPlan(ctx context.Context, customer entities.Customer, order entities.Order, plan entities.FlexPlan) (entities.FlexPlan, error) {
	created, err := u.plans.Create(ctx, plan)
	if err != nil {
		log.Printf("[flex][usecase] CRITICAL plan insert failed after charge customer_id=%s invoice_number=%s err=%v", customer.ID, order.InvoiceNumber, err)
		return entities.FlexPlan{}, newDomainError(err, "invoice_number", order.InvoiceNumber, nil)
	}
	if err := u.customers.AddFlexPlan(ctx, customer.ID, created.ID); err != nil {
		log.Printf("[flex][usecase] CRITICAL customer plan link failed customer_id=%s plan_id=%s err=%v", customer.ID, created.ID, err)
		return created, newDomainError(err, "plan_id", created.ID, nil)
	}
	now := u.now().UTC()
	if _, err := u.customers.UpdateTrialState(ctx, customer.ID, entities.TrialStateUpdate{
		ConvertedFlex: &now,
		Clear: []entities.TrialMarker{
			entities.MarkerRushed, entities.MarkerFlexFollowup, entities.MarkerNoFollowup, entities.MarkerStartFlex,
		},
	}); err != nil {
		log.Printf("[flex][usecase] trial marker update failed customer_id=%s err=%v", customer.ID, err)
		return created, err
	}
	log.Printf("[flex][usecase] created plan_id=%s customer_id=%s invoice_number=%s", created.ID, customer.ID, order.InvoiceNumber)

	u.notifier.Emit(ctx, u.planEvent(created, "created", &created.Started, nil))
	u.notifier.Identify(ctx, created.Email, map[string]any{"flexStatus": string(created.Status)})
	u.notifier.Track(ctx, order.CustomerInfo.Email, "Flex Converted", startFlexProperties(order))
	return created, nil
}

func (u *FlexPlanUseCase) planEvent(plan entities.FlexPlan, action string, at *time.Time, extra map[string]any) entities.DomainEvent {
	props := map[string]any{"typeId": plan.ID}
	for k, v := range extra {
		props[k] = v
	}
	ev := entities.DomainEvent{
		Type:       eventTypeFlex,
		Action:     action,
		Customer:   entities.EventCustomer{ID: plan.CustomerID},
		Properties: props,
	}
	if at != nil {
		ev.Timestamp = *at
	}
	return ev
}

func startFlexProperties(order entities.Order) map[string]any {
	items := make([]map[string]any, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, map[string]any{
			"name":       it.Name,
			"quantity":   it.Quantity,
			"price":      centsToDollars(it.Price),
			"totalPrice": centsToDollars(it.TotalPrice),
		})
	}
	discounts := make([]map[string]any, 0, len(order.Discounts))
	for _, d := range order.Discounts {
		discounts = append(discounts, map[string]any{"code": d.Code, "amount": centsToDollars(d.Amount)})
	}
	return map[string]any{
		"invoiceNumber": order.InvoiceNumber,
		"customerInfo":  order.CustomerInfo,
		"items":         items,
		"discounts":     discounts,
		"paid": map[string]any{
			"subtotal":      centsToDollars(order.Paid.Subtotal),
			"shipping":      centsToDollars(order.Paid.Shipping),
			"discountTotal": centsToDollars(order.Paid.DiscountTotal),
			"total":         centsToDollars(order.Paid.Total),
		},
	}
}

func itemsTotal(items []entities.CartItem) int64 {
	var total int64
	for _, it := range items {
		total += it.TotalPrice
	}
	return total
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}
