package kafka

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=publisher.go -destination=mock/publisher_mock.go -package=mock
type Publisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
}

// WriterPublisher publishes domain events through a shared kafka writer.
// Publishing is best effort and happens after the store write commits; there
// is no outbox because the core runs no background tasks.
type WriterPublisher struct {
	writer *kafkago.Writer
}

func NewPublisher(brokers []string) *WriterPublisher {
	return &WriterPublisher{
		writer: &kafkago.Writer{
			Addr:     kafkago.TCP(brokers...),
			Balancer: &kafkago.LeastBytes{},
		},
	}
}

func (p *WriterPublisher) Publish(ctx context.Context, topic, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	})
}

func (p *WriterPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, string, any) error {
	return nil
}
