package memory

import (
	"context"
	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"
	"slices"
	"sort"
	"time"
)

type FlexPlanRepository struct {
	s *Store
}

var _ interfaces.IFlexPlanRepository = (*FlexPlanRepository)(nil)

func (r *FlexPlanRepository) GetByID(_ context.Context, id string) (entities.FlexPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.plans[id]
	if !ok {
		return entities.FlexPlan{}, nil
	}
	return clonePlan(p), nil
}

func (r *FlexPlanRepository) Create(_ context.Context, plan entities.FlexPlan) (entities.FlexPlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.plans[plan.ID] = clonePlan(plan)
	return plan, nil
}

func (r *FlexPlanRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.plans, id)
	return nil
}

func (r *FlexPlanRepository) Pause(_ context.Context, id string, at time.Time) (entities.FlexPlan, error) {
	return r.update(id, func(p *entities.FlexPlan) bool {
		p.Status = entities.FlexPlanStatusPaused
		p.PausedOn = timePtr(at)
		p.Rushed = false
		p.NextText = nil
		p.NextOrder = nil
		return true
	})
}

func (r *FlexPlanRepository) Resume(_ context.Context, id string, at, nextText time.Time) (entities.FlexPlan, error) {
	return r.update(id, func(p *entities.FlexPlan) bool {
		if p.Status == entities.FlexPlanStatusActive {
			return false
		}
		p.Status = entities.FlexPlanStatusActive
		p.ResumedOn = timePtr(at)
		p.NextText = timePtr(nextText)
		p.NextOrder = nil
		return true
	})
}

func (r *FlexPlanRepository) Skip(_ context.Context, id string, nextText time.Time) (entities.FlexPlan, error) {
	return r.update(id, func(p *entities.FlexPlan) bool {
		p.Status = entities.FlexPlanStatusActive
		p.NextText = timePtr(nextText)
		p.NextOrder = nil
		return true
	})
}

func (r *FlexPlanRepository) RecordOrder(_ context.Context, id string, rec entities.PlanOrderRecord) (entities.FlexPlan, error) {
	return r.update(id, func(p *entities.FlexPlan) bool {
		if p.HasOrder(rec.Order.InvoiceNumber) {
			return false
		}
		p.TotalOrders++
		p.TotalValue += rec.Total
		p.TotalPrice += rec.PriceAdjustment
		p.Orders = append(slices.Clone(p.Orders), rec.Order)
		p.Discounts = slices.Clone(rec.FlexDiscounts)
		p.Rushed = false
		p.NextText = timePtr(rec.NextText)
		p.NextOrder = nil
		return true
	})
}

func (r *FlexPlanRepository) ScheduleRetry(_ context.Context, id string, nextOrder time.Time) error {
	_, err := r.update(id, func(p *entities.FlexPlan) bool {
		p.Rushed = false
		p.NextOrder = timePtr(nextOrder)
		p.NextText = nil
		return true
	})
	return err
}

func (r *FlexPlanRepository) FindDue(_ context.Context, now time.Time, limit int) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var ids []string
	for id, p := range r.s.plans {
		if p.DueForOrder(now) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (r *FlexPlanRepository) ClaimDue(_ context.Context, id string, now time.Time) (bool, error) {
	p, err := r.update(id, func(p *entities.FlexPlan) bool {
		if !p.DueForOrder(now) {
			return false
		}
		p.NextOrder = nil
		return true
	})
	return p.ID != "", err
}

// update applies fn under the write lock; fn returning false leaves the plan
// untouched and yields a zero plan.
func (r *FlexPlanRepository) update(id string, fn func(p *entities.FlexPlan) bool) (entities.FlexPlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.plans[id]
	if !ok {
		return entities.FlexPlan{}, nil
	}
	p = clonePlan(p)
	if !fn(&p) {
		return entities.FlexPlan{}, nil
	}
	r.s.plans[id] = p
	return clonePlan(p), nil
}
