package main

import (
	"hr-portal/internal/app"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunDecisionConsumer(); err != nil {
		logger.Fatal("consumer failed", zap.Error(err))
	}
}
