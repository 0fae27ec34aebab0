package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"hr-portal/internal/events"
	"hr-portal/internal/messaging/kafka"

	"go.uber.org/zap"
)

// RunDecisionConsumer tails request decision events and writes them to the
// log as an audit trail. It is a separate process from the API server.
func RunDecisionConsumer() error {
	logger := zap.L().Named("app.consumer")

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}

	consumer := kafka.NewDecisionConsumer(
		strings.Split(brokers, ","),
		"hr-portal-decision-audit",
		func(ctx context.Context, event events.RequestDecidedEvent) error {
			logger.Info("request decided",
				zap.String("request_kind", event.RequestKind),
				zap.String("request_id", event.RequestID),
				zap.String("employee_id", event.EmployeeID),
				zap.String("status", event.Status),
				zap.String("reviewed_by", event.ReviewedBy),
				zap.Time("occurred_at", event.OccurredAt),
			)
			return nil
		},
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- consumer.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("consumer shutting down", zap.String("signal", sig.String()))
		cancel()
		return <-errCh
	case err := <-errCh:
		return err
	}
}
