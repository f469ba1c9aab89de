package usecase

import (
	"context"
	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlaceOrderRequest is the input of OrderUseCase.PlaceOrder.
//
// Customer may be passed preloaded; otherwise CustomerID is resolved.
// Address defaults to the customer shipping address.
type PlaceOrderRequest struct {
	CustomerID       string
	Customer         *entities.Customer
	Items            []entities.ItemRequest
	OrderType        string
	Source           string
	Discounts        []entities.Discount
	Shipping         *int64
	Address          *entities.Address
	FulfillmentDelay time.Duration
	OrderContext     map[string]any
}

// IOrderUseCase places orders atomically with their payment charge.
type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (entities.Order, error)
	// ApplyPlacedOrder records a committed order on its customer. It is
	// idempotent per invoice number and reports whether anything changed.
	ApplyPlacedOrder(ctx context.Context, order entities.Order) (bool, error)
}

type OrderUseCase struct {
	customers interfaces.ICustomerRepository
	tx        interfaces.ITransactor
	carts     *CartBuilder
	gateway   interfaces.IPaymentGateway
	notifier  *Notifier
	policy    Config
	now       func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(customers interfaces.ICustomerRepository, tx interfaces.ITransactor, carts *CartBuilder, gateway interfaces.IPaymentGateway, notifier *Notifier, policy Config) *OrderUseCase {
	return &OrderUseCase{
		customers: customers,
		tx:        tx,
		carts:     carts,
		gateway:   gateway,
		notifier:  notifier,
		policy:    policy,
		now:       time.Now,
	}
}

func (u *OrderUseCase) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (entities.Order, error) {
	customer, err := u.loadCustomer(ctx, req)
	if err != nil {
		return entities.Order{}, err
	}
	if strings.TrimSpace(customer.PaymentCustomerID) == "" {
		log.Printf("[order][usecase] payment profile missing customer_id=%s", customer.ID)
		return entities.Order{}, newDomainError(ErrPaymentProfileMissing, "customer_id", customer.ID, nil)
	}
	log.Printf("[order][usecase] place start customer_id=%s order_type=%s items=%d", customer.ID, req.OrderType, len(req.Items))

	var (
		order   entities.Order
		charged *entities.Charge
	)
	err = u.tx.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.IOrderTransaction) error {
		cart, err := u.carts.Build(ctx, CartRequest{
			Items:     req.Items,
			Customer:  &customer,
			OrderType: req.OrderType,
			Source:    req.Source,
			Discounts: req.Discounts,
			Shipping:  req.Shipping,
		})
		if err != nil {
			return err
		}

		num, err := tx.NextInvoiceNumber(ctx)
		if err != nil {
			return newDomainError(ErrInvoiceAllocationFailed, "customer_id", customer.ID, err)
		}

		o, err := tx.InsertOrder(ctx, u.newOrder(customer, cart, num, req))
		if err != nil {
			log.Printf("[order][usecase] insert failed invoice_number=%s err=%v", o.InvoiceNumber, err)
			return err
		}

		if cart.Paid.CreditUsed > 0 {
			if err := tx.DebitCredit(ctx, customer.ID, cart.Paid.CreditUsed); err != nil {
				log.Printf("[order][usecase] credit debit failed customer_id=%s amount=%d err=%v", customer.ID, cart.Paid.CreditUsed, err)
				return err
			}
		}

		if o.Paid.Total > 0 && o.Paid.Total >= u.policy.MinimumOrderTotal {
			charge, err := u.gateway.Charge(ctx, customer.PaymentCustomerID, o.Paid.Total, o.InvoiceNumber)
			if err != nil {
				log.Printf("[order][usecase] charge failed customer_id=%s invoice_number=%s amount=%d err=%v", customer.ID, o.InvoiceNumber, o.Paid.Total, err)
				u.emitFailedPayment(ctx, customer, req)
				return newDomainError(ErrChargeFailed, "customer_id", customer.ID, err)
			}
			charged = &charge
			if err := tx.AttachCharge(ctx, o.InvoiceNumber, charge.ID); err != nil {
				log.Printf("[order][usecase] attach charge failed invoice_number=%s charge_id=%s err=%v", o.InvoiceNumber, charge.ID, err)
			} else {
				o.ChargeID = charge.ID
			}
		}
		order = o
		return nil
	})
	if err != nil {
		if charged != nil {
			u.compensate(ctx, *charged, order)
			return entities.Order{}, newDomainError(ErrOrderCommitFailed, "invoice_number", order.InvoiceNumber, err)
		}
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] placed invoice_number=%s customer_id=%s total=%d charge_id=%s", order.InvoiceNumber, customer.ID, order.Paid.Total, order.ChargeID)

	u.afterPlacement(ctx, customer, order, req)
	return order, nil
}

func (u *OrderUseCase) ApplyPlacedOrder(ctx context.Context, order entities.Order) (bool, error) {
	applied, err := u.customers.ApplyPlacedOrder(ctx, order.CustomerID, order.Ref(), order.Paid.Total, u.now().UTC())
	if err != nil {
		log.Printf("[order][usecase] customer update failed customer_id=%s invoice_number=%s err=%v", order.CustomerID, order.InvoiceNumber, err)
		return false, err
	}
	if !applied {
		log.Printf("[order][usecase] customer already has order customer_id=%s invoice_number=%s", order.CustomerID, order.InvoiceNumber)
	}
	return applied, nil
}

func (u *OrderUseCase) loadCustomer(ctx context.Context, req PlaceOrderRequest) (entities.Customer, error) {
	if req.Customer != nil {
		return *req.Customer, nil
	}
	id := strings.TrimSpace(req.CustomerID)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.customers.GetByID(ctx, id)
	if err != nil {
		log.Printf("[order][usecase] failed loading customer customer_id=%s err=%v", id, err)
		return entities.Customer{}, err
	}
	if c.ID == "" {
		log.Printf("[order][usecase] customer not found customer_id=%s", id)
		return entities.Customer{}, newDomainError(ErrCustomerNotFound, "customer_id", id, nil)
	}
	return c, nil
}

func (u *OrderUseCase) newOrder(customer entities.Customer, cart entities.Cart, num int64, req PlaceOrderRequest) entities.Order {
	now := u.now().UTC()
	addr := customer.ShippingAddress
	if req.Address != nil {
		addr = *req.Address
	}
	if addr.FirstName == "" {
		addr.FirstName = customer.FirstName
	}
	if addr.LastName == "" {
		addr.LastName = customer.LastName
	}
	return entities.Order{
		ID:            uuid.NewString(),
		InvoiceNumber: fmt.Sprintf("%s%d", entities.InvoicePrefix, num),
		CustomerID:    customer.ID,
		CustomerInfo: entities.CustomerInfo{
			CustomerType: customer.CustomerType,
			FirstName:    customer.FirstName,
			LastName:     customer.LastName,
			Phone:        customer.Phone,
			Email:        customer.Email,
			Address:      addr,
		},
		Items:          cart.Items,
		OrderType:      cart.OrderType,
		Source:         cart.Source,
		Discounts:      cart.Discounts,
		Paid:           cart.Paid,
		CompletionDate: now,
		Shipping: entities.Shipping{
			ShippingType: "ground",
			Status:       entities.ShippingStatusPending,
			ShipDate:     now.Add(req.FulfillmentDelay),
		},
	}
}

// compensate refunds a charge whose order could not be committed.
func (u *OrderUseCase) compensate(ctx context.Context, charge entities.Charge, order entities.Order) {
	ctx = context.WithoutCancel(ctx)
	res, err := u.gateway.Refund(ctx, charge.ID, order.Paid.Total)
	if err != nil {
		log.Printf("[order][usecase] CRITICAL compensation refund failed charge_id=%s invoice_number=%s amount=%d err=%v", charge.ID, order.InvoiceNumber, order.Paid.Total, err)
		return
	}
	log.Printf("[order][usecase] compensation refund issued charge_id=%s refund_id=%s invoice_number=%s", charge.ID, res.ID, order.InvoiceNumber)
}

func (u *OrderUseCase) emitFailedPayment(ctx context.Context, customer entities.Customer, req PlaceOrderRequest) {
	props := make(map[string]any, len(req.OrderContext)+2)
	for k, v := range req.OrderContext {
		props[k] = v
	}
	props["wasRushed"] = customer.Rushed
	props["orderType"] = req.OrderType
	u.notifier.Emit(ctx, entities.DomainEvent{
		Type:       eventTypeCustomer,
		Action:     "failed_payment",
		Customer:   entities.EventCustomer{ID: customer.ID},
		Source:     req.Source,
		Properties: props,
	})
}

func (u *OrderUseCase) afterPlacement(ctx context.Context, customer entities.Customer, order entities.Order, req PlaceOrderRequest) {
	if _, err := u.ApplyPlacedOrder(ctx, order); err != nil {
		log.Printf("[order][usecase] post-commit customer update failed invoice_number=%s err=%v", order.InvoiceNumber, err)
	}

	if order.Paid.CreditUsed > 0 {
		u.notifier.Emit(ctx, entities.DomainEvent{
			Type:       eventTypeCustomer,
			Action:     "debit",
			Customer:   entities.EventCustomer{ID: customer.ID},
			Source:     order.Source,
			Properties: map[string]any{"credit": -centsToDollars(order.Paid.CreditUsed)},
		})
	}

	event := composeOrderEvent(order, req.OrderContext)
	u.notifier.Emit(ctx, event)

	tracked := make(map[string]any, len(event.Properties)+3)
	for k, v := range event.Properties {
		tracked[k] = v
	}
	tracked["$value"] = event.Properties["paid_total"]
	tracked["$event_id"] = order.InvoiceNumber
	tracked["crm"] = order.Source == u.policy.SchedulerSource
	u.notifier.Track(ctx, customer.Email, "Placed Order", tracked)

	u.notifier.Post(ctx, u.policy.OrdersChannel, orderChatMessage(order))
}
