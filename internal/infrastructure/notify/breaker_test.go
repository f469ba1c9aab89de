package notify

import (
	"context"
	"errors"
	"testing"

	"flex_billing/internal/domain/entities"
	mock_interfaces "flex_billing/internal/usecase/interfaces/mocks"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/mock/gomock"
)

func TestGuardedPublisher_OpensAfterConsecutiveFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockIEventPublisher(ctrl)
	next.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down")).Times(breakerConsecutiveFailures)

	g := NewGuardedPublisher(next)
	ev := entities.DomainEvent{Type: "order", Action: "placed"}
	for i := 0; i < breakerConsecutiveFailures; i++ {
		if err := g.Publish(context.Background(), ev); err == nil {
			t.Fatalf("attempt %d: expected error", i+1)
		}
	}
	if err := g.Publish(context.Background(), ev); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open breaker, got %v", err)
	}
}

func TestGuardedChat_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockIChatNotifier(ctrl)
	next.EXPECT().PostMessage(gomock.Any(), "orders", "hello").Return(nil)

	if err := NewGuardedChat(next).PostMessage(context.Background(), "orders", "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGuardedMarketing_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockIMarketingClient(ctrl)
	next.EXPECT().TrackEvent(gomock.Any(), "ada@example.com", "Placed Order", gomock.Any()).Return(nil)
	next.EXPECT().Identify(gomock.Any(), "ada@example.com", gomock.Any()).Return(errors.New("rate limited"))

	g := NewGuardedMarketing(next)
	if err := g.TrackEvent(context.Background(), "ada@example.com", "Placed Order", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.Identify(context.Background(), "ada@example.com", nil); err == nil {
		t.Fatalf("expected error")
	}
}
