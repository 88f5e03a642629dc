package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/likeclem30/taxipassbackend/config"
	"github.com/likeclem30/taxipassbackend/infra/queue"
	"github.com/likeclem30/taxipassbackend/internal/notifier"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting notifier worker",
		zap.String("topic", cfg.KafkaTopic),
		zap.String("group", cfg.KafkaGroupID))

	svc := notifier.NewService(cfg.SMSURL, cfg.EmailURL, logger)
	consumer := queue.NewKafkaConsumer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		svc,
		logger,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	consumer.Listen(ctx)

	if err := consumer.Close(); err != nil {
		logger.Error("consumer close error", zap.Error(err))
	}
	logger.Info("notifier stopped")
}
