package notify

import (
	"context"

	"flex_billing/internal/usecase/interfaces"

	"github.com/segmentio/analytics-go/v3"
)

// SegmentClient sends marketing track and identify calls. Profiles are keyed by email.
type SegmentClient struct {
	client analytics.Client
}

var _ interfaces.IMarketingClient = (*SegmentClient)(nil)

func NewSegmentClient(writeKey string, cfg analytics.Config) (*SegmentClient, error) {
	client, err := analytics.NewWithConfig(writeKey, cfg)
	if err != nil {
		return nil, err
	}
	return &SegmentClient{client: client}, nil
}

func (c *SegmentClient) TrackEvent(_ context.Context, email, name string, properties map[string]any) error {
	props := analytics.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}
	return c.client.Enqueue(analytics.Track{
		UserId:     email,
		Event:      name,
		Properties: props,
	})
}

func (c *SegmentClient) Identify(_ context.Context, email string, properties map[string]any) error {
	traits := analytics.NewTraits().SetEmail(email)
	for k, v := range properties {
		traits.Set(k, v)
	}
	return c.client.Enqueue(analytics.Identify{
		UserId: email,
		Traits: traits,
	})
}

// Close flushes queued messages.
func (c *SegmentClient) Close() error {
	return c.client.Close()
}
