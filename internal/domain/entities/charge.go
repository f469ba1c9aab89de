package entities

import "encoding/json"

// Charge is the payment gateway outcome of a charge request.
// Raw keeps the provider body for traceability.
type Charge struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Amount int64           `json:"amount"`
	Raw    json.RawMessage `json:"raw,omitempty"`
}

// RefundResult is the payment gateway outcome of a refund request.
type RefundResult struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Amount int64           `json:"amount"`
	Raw    json.RawMessage `json:"raw,omitempty"`
}
