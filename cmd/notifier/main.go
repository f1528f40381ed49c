package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/elegant-tiles/storefront/internal/config"
	"github.com/elegant-tiles/storefront/internal/email"
	"github.com/elegant-tiles/storefront/internal/infrastructure/kafka"
	"github.com/elegant-tiles/storefront/internal/logging"
	"github.com/elegant-tiles/storefront/internal/notification"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	config.LoadEnv()
	cfg := config.Load()

	logger := logging.Setup(cfg.LogMode, cfg.LogFile).Named("notifier")
	defer logger.Sync()

	logger.Info("Elegant Tiles email notifier starting",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.KafkaTopic),
		zap.String("group", cfg.KafkaGroup),
		zap.String("smtp_host", cfg.SMTPHost),
		zap.Int("smtp_port", cfg.SMTPPort),
		zap.String("from", cfg.SMTPFrom),
	)

	emailSvc := email.NewService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.StudioInbox)

	handler, err := notification.NewHandler(emailSvc, cfg.NotifierWorkers)
	if err != nil {
		logger.Fatal("failed to start worker pool", zap.Error(err))
	}
	defer handler.Close()

	consumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroup)
	defer consumer.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		logger.Info("listening for submissions")
		if err := consumer.Consume(ctx, handler.HandleEvent); err != nil && ctx.Err() == nil {
			logger.Error("consumer error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	cancel()
	<-done
}
