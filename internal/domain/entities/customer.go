package entities

import "time"

// CustomerTypeTrialToFlex marks customers on a trial that converts into a flex plan.
const CustomerTypeTrialToFlex = "TrialToFlex"

// TrialState holds the trial follow-up markers of a customer.
//
// StartFlex is the trial conversion claim key: the scheduler converts customers
// whose StartFlex is due and clears it atomically when it claims them.
type TrialState struct {
	StartFlex     *time.Time `json:"start_flex,omitempty"`
	FlexFollowup  *time.Time `json:"flex_followup,omitempty"`
	NoFollowup    *time.Time `json:"no_followup,omitempty"`
	ConvertedFlex *time.Time `json:"converted_flex,omitempty"`
	FailedStart   int        `json:"failed_start"`
}

// Customer is the persisted customer document.
//
// Storage model (DynamoDB):
//   - PK: id
type Customer struct {
	ID                string        `json:"id"`
	CustomerType      string        `json:"customer_type,omitempty"`
	FirstName         string        `json:"first_name"`
	LastName          string        `json:"last_name"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone,omitempty"`
	ShippingAddress   Address       `json:"shipping_address"`
	PaymentCustomerID string        `json:"payment_customer_id,omitempty"`
	Credit            int64         `json:"credit"`
	TotalOrders       int           `json:"total_orders"`
	TotalValue        int64         `json:"total_value"`
	Orders            []OrderRef    `json:"orders,omitempty"`
	FlexPlans         []string      `json:"flex_plans,omitempty"`
	FlexDefault       []ItemRequest `json:"flex_default,omitempty"`
	FailedFlex        int           `json:"failed_flex"`
	Rushed            bool          `json:"rushed,omitempty"`
	Trial             TrialState    `json:"trial"`
	LastInteraction   *time.Time    `json:"last_interaction,omitempty"`
}

// HasOrder reports whether the invoice is already recorded in the customer history.
func (c Customer) HasOrder(invoiceNumber string) bool {
	for _, o := range c.Orders {
		if o.InvoiceNumber == invoiceNumber {
			return true
		}
	}
	return false
}

// TrialMarker names a trial/cadence field that can be cleared on a customer.
type TrialMarker string

const (
	MarkerStartFlex     TrialMarker = "start_flex"
	MarkerFlexFollowup  TrialMarker = "flex_followup"
	MarkerNoFollowup    TrialMarker = "no_followup"
	MarkerConvertedFlex TrialMarker = "converted_flex"
	MarkerRushed        TrialMarker = "rushed"
)

// TrialStateUpdate is a partial update of a customer's trial markers.
// Set fields are written, Clear lists markers to remove, IncFailedStart bumps
// the failed conversion counter.
type TrialStateUpdate struct {
	StartFlex      *time.Time
	FlexFollowup   *time.Time
	NoFollowup     *time.Time
	ConvertedFlex  *time.Time
	Clear          []TrialMarker
	IncFailedStart bool
}

// Clears reports whether the update removes the given marker.
func (u TrialStateUpdate) Clears(m TrialMarker) bool {
	for _, c := range u.Clear {
		if c == m {
			return true
		}
	}
	return false
}

// Apply applies the update to an in-memory customer.
func (u TrialStateUpdate) Apply(c *Customer) {
	for _, m := range u.Clear {
		switch m {
		case MarkerStartFlex:
			c.Trial.StartFlex = nil
		case MarkerFlexFollowup:
			c.Trial.FlexFollowup = nil
		case MarkerNoFollowup:
			c.Trial.NoFollowup = nil
		case MarkerConvertedFlex:
			c.Trial.ConvertedFlex = nil
		case MarkerRushed:
			c.Rushed = false
		}
	}
	if u.StartFlex != nil {
		c.Trial.StartFlex = u.StartFlex
	}
	if u.FlexFollowup != nil {
		c.Trial.FlexFollowup = u.FlexFollowup
	}
	if u.NoFollowup != nil {
		c.Trial.NoFollowup = u.NoFollowup
	}
	if u.ConvertedFlex != nil {
		c.Trial.ConvertedFlex = u.ConvertedFlex
	}
	if u.IncFailedStart {
		c.Trial.FailedStart++
	}
}
