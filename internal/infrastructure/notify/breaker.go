package notify

import (
	"context"
	"log"
	"time"

	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"

	"github.com/sony/gobreaker/v2"
)

const (
	breakerConsecutiveFailures = 5
	breakerOpenTimeout         = 30 * time.Second
)

func newBreaker(name string) *gobreaker.CircuitBreaker[struct{}] {
	return gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[notify][breaker] state change sink=%s from=%s to=%s", name, from, to)
		},
	})
}

func guard(cb *gobreaker.CircuitBreaker[struct{}], fn func() error) error {
	_, err := cb.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// GuardedPublisher stops calling a failing event bus until it recovers.
type GuardedPublisher struct {
	next interfaces.IEventPublisher
	cb   *gobreaker.CircuitBreaker[struct{}]
}

var _ interfaces.IEventPublisher = (*GuardedPublisher)(nil)

func NewGuardedPublisher(next interfaces.IEventPublisher) *GuardedPublisher {
	return &GuardedPublisher{next: next, cb: newBreaker("events")}
}

func (g *GuardedPublisher) Publish(ctx context.Context, ev entities.DomainEvent) error {
	return guard(g.cb, func() error { return g.next.Publish(ctx, ev) })
}

type GuardedMarketing struct {
	next interfaces.IMarketingClient
	cb   *gobreaker.CircuitBreaker[struct{}]
}

var _ interfaces.IMarketingClient = (*GuardedMarketing)(nil)

func NewGuardedMarketing(next interfaces.IMarketingClient) *GuardedMarketing {
	return &GuardedMarketing{next: next, cb: newBreaker("marketing")}
}

func (g *GuardedMarketing) TrackEvent(ctx context.Context, email, name string, properties map[string]any) error {
	return guard(g.cb, func() error { return g.next.TrackEvent(ctx, email, name, properties) })
}

func (g *GuardedMarketing) Identify(ctx context.Context, email string, properties map[string]any) error {
	return guard(g.cb, func() error { return g.next.Identify(ctx, email, properties) })
}

type GuardedChat struct {
	next interfaces.IChatNotifier
	cb   *gobreaker.CircuitBreaker[struct{}]
}

var _ interfaces.IChatNotifier = (*GuardedChat)(nil)

func NewGuardedChat(next interfaces.IChatNotifier) *GuardedChat {
	return &GuardedChat{next: next, cb: newBreaker("chat")}
}

func (g *GuardedChat) PostMessage(ctx context.Context, channel, text string) error {
	return guard(g.cb, func() error { return g.next.PostMessage(ctx, channel, text) })
}
