package interfaces

import (
	"context"
	"flex_billing/internal/domain/entities"
)

// Notification sinks. Callers treat every sink as best effort: failures are
// logged and never change the outcome of an order or plan operation.

type IEventPublisher interface {
	Publish(ctx context.Context, event entities.DomainEvent) error
}

type IMarketingClient interface {
	TrackEvent(ctx context.Context, email, name string, properties map[string]any) error
	Identify(ctx context.Context, email string, properties map[string]any) error
}

type IChatNotifier interface {
	PostMessage(ctx context.Context, channel, text string) error
}
