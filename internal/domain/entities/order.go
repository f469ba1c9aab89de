package entities

import "time"

// ShippingStatus represents the fulfillment state of an order.
type ShippingStatus string

const (
	ShippingStatusPending  ShippingStatus = "Pending"
	ShippingStatusOnHold   ShippingStatus = "On Hold"
	ShippingStatusCanceled ShippingStatus = "Canceled"
)

// Cancelable reports whether an order in this status may still be canceled.
func (s ShippingStatus) Cancelable() bool {
	return s == ShippingStatusPending || s == ShippingStatusOnHold
}

// InvoicePrefix prefixes every allocated invoice number.
const InvoicePrefix = "VRB"

type Shipping struct {
	ShippingType string         `json:"shipping_type"`
	Status       ShippingStatus `json:"status"`
	ShipDate     time.Time      `json:"ship_date"`
}

// CustomerInfo is the customer snapshot taken when the order is placed.
type CustomerInfo struct {
	CustomerType string  `json:"customer_type,omitempty"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Phone        string  `json:"customer_phone,omitempty"`
	Email        string  `json:"email"`
	Address      Address `json:"address"`
}

// RefundStatusSucceeded is the gateway status of a settled refund.
const RefundStatusSucceeded = "succeeded"

type Refund struct {
	Amount     int64     `json:"amount"`
	Reason     string    `json:"reason,omitempty"`
	RefundID   string    `json:"refund_id"`
	Status     string    `json:"status"`
	RefundDate time.Time `json:"refund_date"`
}

// OrderRef is the order history entry kept on customers and flex plans.
type OrderRef struct {
	InvoiceNumber  string    `json:"invoice_number"`
	CompletionDate time.Time `json:"completion_date"`
}

// Order is created once per successful order placement.
//
// Storage model (DynamoDB):
//   - PK: invoice_number
//
// The invoice number is the key so refund/cancel resolve orders without an index
// and so a duplicate invoice can never be written twice.
type Order struct {
	ID             string       `json:"id"`
	InvoiceNumber  string       `json:"invoice_number"`
	CustomerID     string       `json:"customer"`
	CustomerInfo   CustomerInfo `json:"customer_info"`
	Items          []CartItem   `json:"items"`
	OrderType      string       `json:"order_type"`
	Source         string       `json:"source,omitempty"`
	Discounts      []Discount   `json:"discounts"`
	Paid           Paid         `json:"paid"`
	CompletionDate time.Time    `json:"completion_date"`
	Shipping       Shipping     `json:"shipping"`
	ChargeID       string       `json:"charge_id,omitempty"`
	Refunds        []Refund     `json:"refunds,omitempty"`
}

// Ref returns the history entry for this order.
func (o Order) Ref() OrderRef {
	return OrderRef{InvoiceNumber: o.InvoiceNumber, CompletionDate: o.CompletionDate}
}

// RefundedTotal sums the succeeded refunds recorded on the order.
func (o Order) RefundedTotal() int64 {
	var total int64
	for _, r := range o.Refunds {
		if r.Status == RefundStatusSucceeded {
			total += r.Amount
		}
	}
	return total
}

// RefundableTotal is what can still be refunded.
func (o Order) RefundableTotal() int64 {
	return o.Paid.Total - o.RefundedTotal()
}
