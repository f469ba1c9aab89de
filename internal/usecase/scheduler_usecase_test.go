package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"flex_billing/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

type countingProcessor struct {
	calls atomic.Int64
	err   error
}

func (p *countingProcessor) Process(context.Context, string, string) (entities.Order, error) {
	p.calls.Add(1)
	return entities.Order{}, p.err
}

func TestFlexPlanRepository_ClaimDueIsExclusive(t *testing.T) {
	f := newFixture(t)
	f.putPlan(nil)

	var (
		wg   sync.WaitGroup
		wins atomic.Int64
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := f.store.FlexPlans().ClaimDue(context.Background(), "plan-1", fixedNow)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	if wins.Load() != 1 {
		t.Fatalf("expected exactly one claim, got %d", wins.Load())
	}
	if p := f.plan(t, "plan-1"); p.NextOrder != nil {
		t.Fatalf("expected claim to clear next_order")
	}
}

func TestSchedulerUseCase_RunFlexOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("overlapping ticks process a due plan once", func(t *testing.T) {
		f := newFixture(t)
		f.putPlan(nil)
		future := fixedNow.Add(time.Hour)
		f.putPlan(func(p *entities.FlexPlan) { p.ID = "plan-later"; p.NextOrder = &future })
		f.putPlan(func(p *entities.FlexPlan) { p.ID = "plan-paused"; p.Status = entities.FlexPlanStatusPaused })

		proc := &countingProcessor{}
		sched := NewSchedulerUseCase(f.store.FlexPlans(), f.store.Customers(), proc, f.trials, f.policy)
		sched.now = func() time.Time { return fixedNow }

		var (
			wg      sync.WaitGroup
			claimed atomic.Int64
		)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				summary, err := sched.RunFlexOrders(ctx)
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				claimed.Add(int64(summary.Claimed))
			}()
		}
		wg.Wait()

		if proc.calls.Load() != 1 || claimed.Load() != 1 {
			t.Fatalf("expected one dispatch, got calls=%d claimed=%d", proc.calls.Load(), claimed.Load())
		}
	})

	t.Run("summary counts failures", func(t *testing.T) {
		f := newFixture(t)
		f.putPlan(nil)
		f.putPlan(func(p *entities.FlexPlan) { p.ID = "plan-2" })

		proc := &countingProcessor{err: errors.New("boom")}
		sched := NewSchedulerUseCase(f.store.FlexPlans(), f.store.Customers(), proc, f.trials, f.policy)
		sched.now = func() time.Time { return fixedNow }

		summary, err := sched.RunFlexOrders(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := DispatchSummary{Candidates: 2, Claimed: 2, Failed: 2}
		if summary != want {
			t.Fatalf("expected %+v, got %+v", want, summary)
		}
	})

	t.Run("end to end charge", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(nil)
		f.putPlan(nil)
		f.gateway.EXPECT().Charge(gomock.Any(), "tok-1", int64(2000), "VRB1001").Return(entities.Charge{ID: "ch-1"}, nil)

		summary, err := f.sched.RunFlexOrders(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Succeeded != 1 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
		p := f.plan(t, "plan-1")
		if p.NextOrder != nil || p.NextText == nil || p.TotalOrders != 1 {
			t.Fatalf("unexpected plan: %+v", p)
		}

		summary, _ = f.sched.RunFlexOrders(ctx)
		if summary.Candidates != 0 {
			t.Fatalf("expected nothing due on the next tick, got %+v", summary)
		}
	})
}

func TestSchedulerUseCase_RunTrialConversions(t *testing.T) {
	f := newFixture(t)
	due := fixedNow.Add(-time.Hour)
	later := fixedNow.Add(time.Hour)
	f.putCustomer(func(c *entities.Customer) {
		c.CustomerType = entities.CustomerTypeTrialToFlex
		c.FlexDefault = []entities.ItemRequest{{ID: "A", Quantity: 1}}
		c.Trial.StartFlex = &due
	})
	f.putCustomer(func(c *entities.Customer) {
		c.ID = "cus-later"
		c.CustomerType = entities.CustomerTypeTrialToFlex
		c.Trial.StartFlex = &later
	})
	f.putCustomer(func(c *entities.Customer) {
		c.ID = "cus-plain"
		c.Trial.StartFlex = &due
	})
	f.gateway.EXPECT().Charge(gomock.Any(), "tok-1", int64(1000), gomock.Any()).Return(entities.Charge{ID: "ch-1"}, nil)

	summary, err := f.sched.RunTrialConversions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DispatchSummary{Candidates: 1, Claimed: 1, Succeeded: 1}
	if summary != want {
		t.Fatalf("expected %+v, got %+v", want, summary)
	}
	c := f.customer(t, "cus-1")
	if c.Trial.StartFlex != nil || len(c.FlexPlans) != 1 {
		t.Fatalf("unexpected customer: %+v", c)
	}
}
