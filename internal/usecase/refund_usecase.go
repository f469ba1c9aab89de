package usecase

import (
	"context"
	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"
	"fmt"
	"log"
	"strings"
	"time"
)

const (
	defaultRefundReason = "Refunded Order"
	defaultCancelReason = "Canceled Order"
)

// RefundRequest asks for a refund of an order. Amount 0 refunds the whole
// refundable remainder.
type RefundRequest struct {
	InvoiceNumber string
	Amount        int64
	Reason        string
}

type IRefundUseCase interface {
	Refund(ctx context.Context, req RefundRequest) (entities.Order, error)
	// Cancel cancels a Pending or On Hold shipment and refunds the order in full.
	Cancel(ctx context.Context, invoiceNumber, reason string) (entities.Order, error)
}

type RefundUseCase struct {
	orders    interfaces.IOrderRepository
	customers interfaces.ICustomerRepository
	gateway   interfaces.IPaymentGateway
	now       func() time.Time
}

var _ IRefundUseCase = (*RefundUseCase)(nil)

func NewRefundUseCase(orders interfaces.IOrderRepository, customers interfaces.ICustomerRepository, gateway interfaces.IPaymentGateway) *RefundUseCase {
	return &RefundUseCase{orders: orders, customers: customers, gateway: gateway, now: time.Now}
}

func (u *RefundUseCase) Refund(ctx context.Context, req RefundRequest) (entities.Order, error) {
	invoice := strings.TrimSpace(req.InvoiceNumber)
	if invoice == "" {
		return entities.Order{}, ErrInvalidInvoiceNumber
	}
	if req.Amount < 0 {
		return entities.Order{}, newDomainError(ErrRefundExceedsOrder, "invoice_number", invoice, fmt.Errorf("negative amount %d", req.Amount))
	}
	if req.Reason == "" {
		req.Reason = defaultRefundReason
	}

	order, err := u.orders.GetByInvoiceNumber(ctx, invoice)
	if err != nil {
		log.Printf("[refund][usecase] failed loading order invoice_number=%s err=%v", invoice, err)
		return entities.Order{}, err
	}
	if order.InvoiceNumber == "" {
		return entities.Order{}, newDomainError(ErrOrderNotFound, "invoice_number", invoice, nil)
	}

	refundable := order.RefundableTotal()
	toRefund := refundable
	if req.Amount > 0 {
		toRefund = req.Amount
	}
	if toRefund > refundable {
		log.Printf("[refund][usecase] refund exceeds order invoice_number=%s requested=%d refundable=%d", invoice, toRefund, refundable)
		return entities.Order{}, newDomainError(ErrRefundExceedsOrder, "invoice_number", invoice,
			fmt.Errorf("requested %d, refundable %d", toRefund, refundable))
	}
	if toRefund == 0 {
		log.Printf("[refund][usecase] nothing left to refund invoice_number=%s", invoice)
		return order, nil
	}
	if order.ChargeID == "" {
		return entities.Order{}, newDomainError(ErrRefundFailed, "invoice_number", invoice, fmt.Errorf("order has no charge"))
	}

	res, err := u.gateway.Refund(ctx, order.ChargeID, toRefund)
	if err != nil {
		log.Printf("[refund][usecase] gateway refund failed invoice_number=%s charge_id=%s amount=%d err=%v", invoice, order.ChargeID, toRefund, err)
		return entities.Order{}, newDomainError(ErrRefundFailed, "invoice_number", invoice, err)
	}
	amount := res.Amount
	if amount == 0 {
		amount = toRefund
	}
	refund := entities.Refund{
		Amount:     amount,
		Reason:     req.Reason,
		RefundID:   res.ID,
		Status:     res.Status,
		RefundDate: u.now().UTC(),
	}
	if err := u.orders.AppendRefund(ctx, invoice, refund); err != nil {
		log.Printf("[refund][usecase] CRITICAL refund issued but not recorded invoice_number=%s refund_id=%s err=%v", invoice, res.ID, err)
		return entities.Order{}, newDomainError(ErrRefundFailed, "invoice_number", invoice, err)
	}
	order.Refunds = append(order.Refunds, refund)

	// Partial refunds keep the order counted.
	ordersDelta := 0
	if req.Amount == 0 {
		ordersDelta = -1
	}
	if err := u.customers.AdjustAggregates(ctx, order.CustomerID, -amount, ordersDelta); err != nil {
		log.Printf("[refund][usecase] customer aggregate update failed customer_id=%s invoice_number=%s err=%v", order.CustomerID, invoice, err)
		return order, err
	}
	log.Printf("[refund][usecase] refunded invoice_number=%s amount=%d refund_id=%s status=%s", invoice, amount, res.ID, res.Status)
	return order, nil
}

func (u *RefundUseCase) Cancel(ctx context.Context, invoiceNumber, reason string) (entities.Order, error) {
	invoice := strings.TrimSpace(invoiceNumber)
	if invoice == "" {
		return entities.Order{}, ErrInvalidInvoiceNumber
	}
	if reason == "" {
		reason = defaultCancelReason
	}
	ok, err := u.orders.CancelShipment(ctx, invoice)
	if err != nil {
		log.Printf("[refund][usecase] cancel failed invoice_number=%s err=%v", invoice, err)
		return entities.Order{}, err
	}
	if !ok {
		return entities.Order{}, newDomainError(ErrOrderNotCancelable, "invoice_number", invoice, nil)
	}
	order, err := u.Refund(ctx, RefundRequest{InvoiceNumber: invoice, Reason: reason})
	if err != nil {
		return entities.Order{}, fmt.Errorf("order %s canceled but refund failed: %w", invoice, err)
	}
	order.Shipping.Status = entities.ShippingStatusCanceled
	log.Printf("[refund][usecase] canceled invoice_number=%s", invoice)
	return order, nil
}
