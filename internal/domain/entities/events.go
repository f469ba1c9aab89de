package entities

import "time"

// EventCustomer identifies the customer a domain event is about.
type EventCustomer struct {
	ID string `json:"id"`
}

// DomainEvent is published to the analytics bus.
//
// Type/Action pairs: order/placed, customer/failed_payment, customer/debit,
// flex/{created,paused,resumed,skipped}, trial/{converted,conversion_canceled,canceled,skipped}.
type DomainEvent struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Action     string         `json:"action"`
	Customer   EventCustomer  `json:"customer"`
	Source     string         `json:"source,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	Properties map[string]any `json:"properties,omitempty"`
}
