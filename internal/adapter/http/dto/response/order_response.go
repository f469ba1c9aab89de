package response

import (
	"time"

	"flex_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type RefundResponse struct {
	RefundID   string    `json:"refund_id"`
	Amount     int64     `json:"amount"`
	Reason     string    `json:"reason,omitempty"`
	Status     string    `json:"status"`
	RefundDate time.Time `json:"refund_date"`
}

type OrderResponse struct {
	InvoiceNumber  string           `json:"invoice_number"`
	CustomerID     string           `json:"customer_id"`
	OrderType      string           `json:"order_type"`
	Source         string           `json:"source,omitempty"`
	Total          int64            `json:"total"`
	TotalDisplay   string           `json:"total_display"`
	CreditUsed     int64            `json:"credit_used"`
	ShippingStatus string           `json:"shipping_status"`
	ShipDate       time.Time        `json:"ship_date"`
	CompletionDate time.Time        `json:"completion_date"`
	ChargeID       string           `json:"charge_id,omitempty"`
	Refunded       int64            `json:"refunded"`
	Refundable     int64            `json:"refundable"`
	Refunds        []RefundResponse `json:"refunds"`
}

func FromOrder(o entities.Order) OrderResponse {
	refunds := make([]RefundResponse, 0, len(o.Refunds))
	for _, r := range o.Refunds {
		refunds = append(refunds, RefundResponse{
			RefundID:   r.RefundID,
			Amount:     r.Amount,
			Reason:     r.Reason,
			Status:     r.Status,
			RefundDate: r.RefundDate,
		})
	}
	return OrderResponse{
		InvoiceNumber:  o.InvoiceNumber,
		CustomerID:     o.CustomerID,
		OrderType:      o.OrderType,
		Source:         o.Source,
		Total:          o.Paid.Total,
		TotalDisplay:   formatMinor(o.Paid.Total),
		CreditUsed:     o.Paid.CreditUsed,
		ShippingStatus: string(o.Shipping.Status),
		ShipDate:       o.Shipping.ShipDate,
		CompletionDate: o.CompletionDate,
		ChargeID:       o.ChargeID,
		Refunded:       o.RefundedTotal(),
		Refundable:     o.RefundableTotal(),
		Refunds:        refunds,
	}
}

func formatMinor(v int64) string {
	return decimal.New(v, -2).StringFixed(2)
}
