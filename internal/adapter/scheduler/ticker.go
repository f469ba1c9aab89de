package scheduler

import (
	"context"
	"log"
	"time"

	"flex_billing/internal/usecase"
)

// Ticker runs both dispatch jobs in-process on a fixed interval. Overlapping
// runs across replicas are safe because every candidate is claimed first.
type Ticker struct {
	interval time.Duration
	jobs     usecase.ISchedulerUseCase
}

func NewTicker(jobs usecase.ISchedulerUseCase, interval time.Duration) *Ticker {
	return &Ticker{interval: interval, jobs: jobs}
}

// Run blocks until ctx is done.
func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	log.Printf("[scheduler][ticker] started interval=%s", t.interval)
	for {
		select {
		case <-ticker.C:
			t.tick(ctx)
		case <-ctx.Done():
			log.Printf("[scheduler][ticker] stopped")
			return
		}
	}
}

func (t *Ticker) tick(ctx context.Context) {
	flex, err := t.jobs.RunFlexOrders(ctx)
	if err != nil {
		log.Printf("[scheduler][ticker] flex-orders failed err=%v", err)
	} else if flex.Candidates > 0 {
		log.Printf("[scheduler][ticker] flex-orders candidates=%d claimed=%d succeeded=%d failed=%d",
			flex.Candidates, flex.Claimed, flex.Succeeded, flex.Failed)
	}

	trials, err := t.jobs.RunTrialConversions(ctx)
	if err != nil {
		log.Printf("[scheduler][ticker] trial-conversions failed err=%v", err)
	} else if trials.Candidates > 0 {
		log.Printf("[scheduler][ticker] trial-conversions candidates=%d claimed=%d succeeded=%d failed=%d",
			trials.Candidates, trials.Claimed, trials.Succeeded, trials.Failed)
	}
}
