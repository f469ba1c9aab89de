package usecase

import (
	"context"
	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// DispatchSummary reports what one scheduler tick did.
type DispatchSummary struct {
	Candidates int `json:"candidates"`
	Claimed    int `json:"claimed"`
	Succeeded  int `json:"succeeded"`
	Failed     int `json:"failed"`
}

// ISchedulerUseCase finds due work, claims it and dispatches it.
// Both entry points are safe to call on overlapping schedules.
type ISchedulerUseCase interface {
	RunFlexOrders(ctx context.Context) (DispatchSummary, error)
	RunTrialConversions(ctx context.Context) (DispatchSummary, error)
}

type flexProcessor interface {
	Process(ctx context.Context, planID, source string) (entities.Order, error)
}

type trialConverter interface {
	Convert(ctx context.Context, customerID, source string) (entities.FlexPlan, error)
}

type SchedulerUseCase struct {
	plans     interfaces.IFlexPlanRepository
	customers interfaces.ICustomerRepository
	processor flexProcessor
	converter trialConverter
	policy    Config
	now       func() time.Time
}

var _ ISchedulerUseCase = (*SchedulerUseCase)(nil)

func NewSchedulerUseCase(plans interfaces.IFlexPlanRepository, customers interfaces.ICustomerRepository, processor flexProcessor, converter trialConverter, policy Config) *SchedulerUseCase {
	return &SchedulerUseCase{plans: plans, customers: customers, processor: processor, converter: converter, policy: policy, now: time.Now}
}

func (s *SchedulerUseCase) RunFlexOrders(ctx context.Context) (DispatchSummary, error) {
	runDate := s.now().UTC()
	ids, err := s.plans.FindDue(ctx, runDate, s.batchSize())
	if err != nil {
		log.Printf("[scheduler][usecase] due flex plan lookup failed err=%v", err)
		return DispatchSummary{}, err
	}
	claimed := s.claim(ctx, "flex plan", ids, func(ctx context.Context, id string) (bool, error) {
		return s.plans.ClaimDue(ctx, id, runDate)
	})
	log.Printf("[scheduler][usecase] scheduling %d flex orders candidates=%d", len(claimed), len(ids))
	summary := s.dispatch(ctx, "flex order", claimed, func(ctx context.Context, id string) error {
		_, err := s.processor.Process(ctx, id, s.policy.SchedulerSource)
		return err
	})
	summary.Candidates = len(ids)
	return summary, nil
}

func (s *SchedulerUseCase) RunTrialConversions(ctx context.Context) (DispatchSummary, error) {
	runDate := s.now().UTC()
	ids, err := s.customers.FindDueTrialConversions(ctx, runDate, s.batchSize())
	if err != nil {
		log.Printf("[scheduler][usecase] due trial lookup failed err=%v", err)
		return DispatchSummary{}, err
	}
	claimed := s.claim(ctx, "trial conversion", ids, func(ctx context.Context, id string) (bool, error) {
		return s.customers.ClaimTrialConversion(ctx, id, runDate)
	})
	log.Printf("[scheduler][usecase] scheduling %d trial conversions candidates=%d", len(claimed), len(ids))
	summary := s.dispatch(ctx, "trial conversion", claimed, func(ctx context.Context, id string) error {
		_, err := s.converter.Convert(ctx, id, s.policy.SchedulerSource)
		return err
	})
	summary.Candidates = len(ids)
	return summary, nil
}

// claim runs the conditional claims concurrently and keeps the ids this tick won.
func (s *SchedulerUseCase) claim(ctx context.Context, what string, ids []string, fn func(ctx context.Context, id string) (bool, error)) []string {
	var (
		mu      sync.Mutex
		claimed = make([]string, 0, len(ids))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())
	for _, id := range ids {
		g.Go(func() error {
			ok, err := fn(gctx, id)
			if err != nil {
				log.Printf("[scheduler][usecase] error claiming %s id=%s err=%v", what, id, err)
				return nil
			}
			if !ok {
				log.Printf("[scheduler][usecase] %s id=%s already claimed", what, id)
				return nil
			}
			mu.Lock()
			claimed = append(claimed, id)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return claimed
}

// dispatch hands each claimed id to fn. Claimed work runs to completion even if
// the triggering request goes away.
func (s *SchedulerUseCase) dispatch(ctx context.Context, what string, ids []string, fn func(ctx context.Context, id string) error) DispatchSummary {
	var succeeded, failed atomic.Int64
	ctx = context.WithoutCancel(ctx)
	g := new(errgroup.Group)
	g.SetLimit(s.workers())
	for _, id := range ids {
		g.Go(func() error {
			if err := fn(ctx, id); err != nil {
				log.Printf("[scheduler][usecase] error processing %s id=%s err=%v", what, id, err)
				failed.Add(1)
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}
	_ = g.Wait()
	return DispatchSummary{
		Claimed:   len(ids),
		Succeeded: int(succeeded.Load()),
		Failed:    int(failed.Load()),
	}
}

func (s *SchedulerUseCase) batchSize() int {
	if s.policy.SchedulerBatchSize <= 0 {
		return 20
	}
	return s.policy.SchedulerBatchSize
}

func (s *SchedulerUseCase) workers() int {
	if s.policy.SchedulerWorkers <= 0 {
		return 1
	}
	return s.policy.SchedulerWorkers
}
