package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher writes domain events to the analytics topic, keyed by
// customer id so a customer's events stay ordered.
type KafkaPublisher struct {
	writer *kafka.Writer
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(topic string, brokers ...string) *KafkaPublisher {
	return &KafkaPublisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev entities.DomainEvent) error {
	msg, err := eventMessage(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func eventMessage(ev entities.DomainEvent) (kafka.Message, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event %s/%s failed: %w", ev.Type, ev.Action, err)
	}
	return kafka.Message{
		Key:   []byte(ev.Customer.ID),
		Value: payload,
		Time:  ev.Timestamp,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ev.Type + "/" + ev.Action)},
			{Key: "event_id", Value: []byte(ev.ID)},
		},
	}, nil
}
