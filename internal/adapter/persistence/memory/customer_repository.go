package memory

import (
	"context"
	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"
	"slices"
	"sort"
	"time"
)

type CustomerRepository struct {
	s *Store
}

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func (r *CustomerRepository) GetByID(_ context.Context, id string) (entities.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.customers[id]
	if !ok {
		return entities.Customer{}, nil
	}
	return cloneCustomer(c), nil
}

func (r *CustomerRepository) ApplyPlacedOrder(_ context.Context, customerID string, ref entities.OrderRef, total int64, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[customerID]
	if !ok || c.HasOrder(ref.InvoiceNumber) {
		return false, nil
	}
	c.TotalOrders++
	c.TotalValue += total
	c.Orders = append(slices.Clone(c.Orders), ref)
	c.LastInteraction = timePtr(at)
	r.s.customers[customerID] = c
	return true, nil
}

func (r *CustomerRepository) AdjustAggregates(_ context.Context, customerID string, valueDelta int64, ordersDelta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[customerID]
	if !ok {
		return ErrCustomerMissing
	}
	c.TotalValue += valueDelta
	c.TotalOrders += ordersDelta
	r.s.customers[customerID] = c
	return nil
}

func (r *CustomerRepository) IncrementFailedFlex(_ context.Context, customerID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[customerID]
	if !ok {
		return 0, ErrCustomerMissing
	}
	c.FailedFlex++
	r.s.customers[customerID] = c
	return c.FailedFlex, nil
}

func (r *CustomerRepository) ResetFailedFlex(_ context.Context, customerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[customerID]
	if !ok {
		return ErrCustomerMissing
	}
	c.FailedFlex = 0
	r.s.customers[customerID] = c
	return nil
}

func (r *CustomerRepository) AddFlexPlan(_ context.Context, customerID, planID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[customerID]
	if !ok {
		return ErrCustomerMissing
	}
	if !slices.Contains(c.FlexPlans, planID) {
		c.FlexPlans = append(slices.Clone(c.FlexPlans), planID)
	}
	r.s.customers[customerID] = c
	return nil
}

func (r *CustomerRepository) RemoveFlexPlan(_ context.Context, customerID, planID string) (entities.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[customerID]
	if !ok {
		return entities.Customer{}, ErrCustomerMissing
	}
	c.FlexPlans = slices.DeleteFunc(slices.Clone(c.FlexPlans), func(id string) bool { return id == planID })
	r.s.customers[customerID] = c
	return cloneCustomer(c), nil
}

func (r *CustomerRepository) UpdateTrialState(_ context.Context, customerID string, update entities.TrialStateUpdate) (entities.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[customerID]
	if !ok {
		return entities.Customer{}, nil
	}
	update.Apply(&c)
	r.s.customers[customerID] = c
	return cloneCustomer(c), nil
}

func (r *CustomerRepository) FindDueTrialConversions(_ context.Context, now time.Time, limit int) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var ids []string
	for id, c := range r.s.customers {
		if trialDue(c, now) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (r *CustomerRepository) ClaimTrialConversion(_ context.Context, customerID string, now time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[customerID]
	if !ok || !trialDue(c, now) {
		return false, nil
	}
	c.Trial.StartFlex = nil
	r.s.customers[customerID] = c
	return true, nil
}

func trialDue(c entities.Customer, now time.Time) bool {
	return c.CustomerType == entities.CustomerTypeTrialToFlex && c.Trial.StartFlex != nil && c.Trial.StartFlex.Before(now)
}
