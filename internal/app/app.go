package app

import (
	"fmt"
	"os"
	"strings"

	"hr-portal/internal/messaging/kafka"
	"hr-portal/internal/shared/connection"
	"hr-portal/internal/store"
	"hr-portal/internal/store/memstore"
	"hr-portal/internal/store/pgstore"
	"hr-portal/internal/store/redisstore"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the configured record store backend, the optional event
// publisher, and registers every module's routes.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	client, err := buildStoreClient()
	if err != nil {
		return err
	}

	publisher := buildPublisher(logger)

	return registerModules(router, client, publisher, logger)
}

// buildStoreClient selects the backend from STORE_BACKEND: "memory" (the
// default, suitable for demos and tests), "redis", or "postgres".
func buildStoreClient() (store.Client, error) {
	backend := strings.ToLower(os.Getenv("STORE_BACKEND"))

	switch backend {
	case "", "memory":
		zap.L().Info("using in-memory record store")
		return memstore.New(), nil

	case "redis":
		rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
		if err != nil {
			return nil, err
		}
		return redisstore.New(rdb), nil

	case "postgres":
		db, err := connection.ConnectGORMWithRetry(
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_SSLMODE"),
			5,
		)
		if err != nil {
			return nil, err
		}
		pg := pgstore.New(db)
		if err := pg.Migrate(); err != nil {
			return nil, err
		}
		return pg, nil

	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}
}

// buildPublisher wires Kafka when KAFKA_BROKERS is set; otherwise events are
// dropped silently via the noop publisher.
func buildPublisher(logger *zap.Logger) kafka.Publisher {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		logger.Info("kafka not configured, domain events disabled")
		return kafka.NoopPublisher{}
	}

	logger.Info("kafka publisher enabled", zap.String("brokers", brokers))
	return kafka.NewPublisher(strings.Split(brokers, ","))
}
