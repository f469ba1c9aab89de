package interfaces

import (
	"context"
	"flex_billing/internal/domain/entities"
	"time"
)

// ICustomerRepository abstracts persistence for Customer.
//
// Every mutation is a single conditional/atomic store update so concurrent
// schedulers and order placements never need an in-process lock.
// GetByID returns a zero Customer (empty ID) when the customer does not exist.

type ICustomerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Customer, error)

	// ApplyPlacedOrder increments totalOrders/totalValue and records the order
	// only if the invoice is not already in the customer history.
	// It reports whether the update was applied.
	ApplyPlacedOrder(ctx context.Context, customerID string, ref entities.OrderRef, total int64, at time.Time) (bool, error)
	AdjustAggregates(ctx context.Context, customerID string, valueDelta int64, ordersDelta int) error

	IncrementFailedFlex(ctx context.Context, customerID string) (int, error)
	ResetFailedFlex(ctx context.Context, customerID string) error

	AddFlexPlan(ctx context.Context, customerID, planID string) error
	// RemoveFlexPlan pulls the plan from the customer and returns the updated customer.
	RemoveFlexPlan(ctx context.Context, customerID, planID string) (entities.Customer, error)

	UpdateTrialState(ctx context.Context, customerID string, update entities.TrialStateUpdate) (entities.Customer, error)

	// FindDueTrialConversions lists TrialToFlex customers whose StartFlex is before now.
	FindDueTrialConversions(ctx context.Context, now time.Time, limit int) ([]string, error)
	// ClaimTrialConversion clears StartFlex only if the customer still matches the due predicate.
	ClaimTrialConversion(ctx context.Context, customerID string, now time.Time) (bool, error)
}
