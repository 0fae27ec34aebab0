package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hr-portal/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// DecisionHandler processes one request decision event. Returning an error
// skips the offset commit so the message is redelivered.
type DecisionHandler func(ctx context.Context, event events.RequestDecidedEvent) error

// DecisionConsumer tails the decision topic. It runs outside the API
// process; the portal core itself never spawns background work.
type DecisionConsumer struct {
	reader  *kafkago.Reader
	handler DecisionHandler
	logger  *zap.Logger
}

func NewDecisionConsumer(
	brokers []string,
	groupID string,
	handler DecisionHandler,
	logger ...*zap.Logger,
) *DecisionConsumer {
	l := zap.L().Named("kafka.decision_consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.decision_consumer")
	}

	return &DecisionConsumer{
		reader: kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:        brokers,
			Topic:          events.RequestDecidedTopic,
			GroupID:        groupID,
			CommitInterval: time.Second,
			StartOffset:    kafkago.FirstOffset,
		}),
		handler: handler,
		logger:  l,
	}
}

// Run blocks until ctx is cancelled.
func (c *DecisionConsumer) Run(ctx context.Context) error {
	defer c.reader.Close()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		var event events.RequestDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			// Poison message: log and move on, redelivery cannot fix it.
			c.logger.Error("malformed decision event",
				zap.String("key", string(msg.Key)),
				zap.Error(err),
			)
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				return err
			}
			continue
		}

		if err := c.handler(ctx, event); err != nil {
			c.logger.Warn("decision handler failed, message will be redelivered",
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return err
		}
	}
}
