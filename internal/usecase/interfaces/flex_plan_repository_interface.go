package interfaces

import (
	"context"
	"flex_billing/internal/domain/entities"
	"time"
)

// IFlexPlanRepository abstracts persistence for FlexPlan.
//
// Lookups and updates that target a missing plan (or whose condition does not
// match) return a zero FlexPlan and a nil error, like the other repositories.

type IFlexPlanRepository interface {
	GetByID(ctx context.Context, id string) (entities.FlexPlan, error)
	Create(ctx context.Context, plan entities.FlexPlan) (entities.FlexPlan, error)
	Delete(ctx context.Context, id string) error

	// Pause sets status=paused, records pausedOn and clears both cadence markers.
	Pause(ctx context.Context, id string, at time.Time) (entities.FlexPlan, error)
	// Resume applies only when status != active: status=active, nextText set, nextOrder cleared.
	Resume(ctx context.Context, id string, at, nextText time.Time) (entities.FlexPlan, error)
	// Skip forces status=active, sets nextText and clears nextOrder.
	Skip(ctx context.Context, id string, nextText time.Time) (entities.FlexPlan, error)

	// RecordOrder applies a successful charge cycle only if the invoice is not
	// yet in the plan history.
	RecordOrder(ctx context.Context, id string, rec entities.PlanOrderRecord) (entities.FlexPlan, error)
	// ScheduleRetry sets nextOrder and clears nextText.
	ScheduleRetry(ctx context.Context, id string, nextOrder time.Time) error

	// FindDue lists active plans whose nextOrder is at or before now.
	FindDue(ctx context.Context, now time.Time, limit int) ([]string, error)
	// ClaimDue clears nextOrder only if the plan still matches the due predicate.
	ClaimDue(ctx context.Context, id string, now time.Time) (bool, error)
}
