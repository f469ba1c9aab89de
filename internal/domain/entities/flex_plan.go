package entities

import "time"

// FlexPlanStatus represents the lifecycle of a recurring plan.
type FlexPlanStatus string

const (
	FlexPlanStatusActive FlexPlanStatus = "active"
	FlexPlanStatusPaused FlexPlanStatus = "paused"
)

// FlexPlan is a recurring subscription that periodically generates orders.
//
// Cadence markers:
//   - NextText: a billing reminder is due; the plan is charged after the reminder flow.
//   - NextOrder: a charge (or retry) is due; this is the scheduler claim key.
//
// At most one of them is set at any time.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (status-next_order-index): status, next_order
type FlexPlan struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customer"`
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone,omitempty"`
	Items           []CartItem     `json:"items"`
	Discounts       []Discount     `json:"discounts"`
	ShippingAddress Address        `json:"shipping_address"`
	ShippingPrice   *int64         `json:"shipping_price,omitempty"`
	TotalPrice      int64          `json:"total_price"`
	NextText        *time.Time     `json:"next_text,omitempty"`
	NextOrder       *time.Time     `json:"next_order,omitempty"`
	Status          FlexPlanStatus `json:"status"`
	Source          string         `json:"source,omitempty"`
	Started         time.Time      `json:"started"`
	PausedOn        *time.Time     `json:"paused_on,omitempty"`
	ResumedOn       *time.Time     `json:"resumed_on,omitempty"`
	TotalOrders     int            `json:"total_orders"`
	TotalValue      int64          `json:"total_value"`
	Orders          []OrderRef     `json:"orders"`
	Rushed          bool           `json:"rushed,omitempty"`
}

// HasOrder reports whether the invoice is already in the plan history.
func (p FlexPlan) HasOrder(invoiceNumber string) bool {
	for _, o := range p.Orders {
		if o.InvoiceNumber == invoiceNumber {
			return true
		}
	}
	return false
}

// LastInvoiceNumber returns the most recent invoice charged for the plan.
func (p FlexPlan) LastInvoiceNumber() string {
	if len(p.Orders) == 0 {
		return ""
	}
	return p.Orders[len(p.Orders)-1].InvoiceNumber
}

// DueForOrder reports whether the plan matches the scheduler due predicate.
func (p FlexPlan) DueForOrder(now time.Time) bool {
	return p.Status == FlexPlanStatusActive && p.NextOrder != nil && !p.NextOrder.After(now)
}

// PlanOrderRecord is the successful charge cycle outcome applied to a plan.
//
// The update only applies when Order.InvoiceNumber is not yet in the plan history.
type PlanOrderRecord struct {
	Order           OrderRef
	Total           int64
	PriceAdjustment int64
	FlexDiscounts   []Discount
	NextText        time.Time
}
