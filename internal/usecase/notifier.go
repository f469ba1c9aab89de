package usecase

import (
	"context"
	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultNotifyTimeout = 10 * time.Second

// Notifier fans out to the best-effort sinks without blocking the caller.
//
// Each call runs on its own goroutine, detached from the caller's cancellation
// and bounded by a timeout. Failures are logged and dropped. A nil Notifier or
// nil sink is a no-op.
type Notifier struct {
	events    interfaces.IEventPublisher
	marketing interfaces.IMarketingClient
	chat      interfaces.IChatNotifier
	timeout   time.Duration
	wg        sync.WaitGroup
}

func NewNotifier(events interfaces.IEventPublisher, marketing interfaces.IMarketingClient, chat interfaces.IChatNotifier, timeout time.Duration) *Notifier {
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}
	return &Notifier{events: events, marketing: marketing, chat: chat, timeout: timeout}
}

func (n *Notifier) Emit(ctx context.Context, event entities.DomainEvent) {
	if n == nil || n.events == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	n.dispatch(ctx, "event "+event.Type+"/"+event.Action, func(ctx context.Context) error {
		return n.events.Publish(ctx, event)
	})
}

func (n *Notifier) Track(ctx context.Context, email, name string, properties map[string]any) {
	if n == nil || n.marketing == nil || email == "" {
		return
	}
	n.dispatch(ctx, "track "+name, func(ctx context.Context) error {
		return n.marketing.TrackEvent(ctx, email, name, properties)
	})
}

func (n *Notifier) Identify(ctx context.Context, email string, properties map[string]any) {
	if n == nil || n.marketing == nil || email == "" {
		return
	}
	n.dispatch(ctx, "identify", func(ctx context.Context) error {
		return n.marketing.Identify(ctx, email, properties)
	})
}

func (n *Notifier) Post(ctx context.Context, channel, text string) {
	if n == nil || n.chat == nil || channel == "" {
		return
	}
	n.dispatch(ctx, "chat "+channel, func(ctx context.Context) error {
		return n.chat.PostMessage(ctx, channel, text)
	})
}

// Wait blocks until every dispatched call has returned.
func (n *Notifier) Wait() {
	if n == nil {
		return
	}
	n.wg.Wait()
}

func (n *Notifier) dispatch(ctx context.Context, what string, fn func(ctx context.Context) error) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[notify] %s panicked: %v", what, r)
			}
		}()
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
		defer cancel()
		if err := fn(callCtx); err != nil {
			log.Printf("[notify] %s failed err=%v", what, err)
		}
	}()
}
