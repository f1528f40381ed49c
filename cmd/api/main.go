package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elegant-tiles/storefront/internal/api"
	"github.com/elegant-tiles/storefront/internal/catalog"
	"github.com/elegant-tiles/storefront/internal/command"
	"github.com/elegant-tiles/storefront/internal/config"
	"github.com/elegant-tiles/storefront/internal/domain/booking"
	"github.com/elegant-tiles/storefront/internal/infrastructure/kafka"
	"github.com/elegant-tiles/storefront/internal/logging"
	"github.com/elegant-tiles/storefront/internal/metrics"
	"github.com/elegant-tiles/storefront/internal/query"
	"github.com/elegant-tiles/storefront/internal/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	logger := logging.Setup(cfg.LogMode, cfg.LogFile).Named("api")
	defer logger.Sync()

	logger.Info("Elegant Tiles storefront starting",
		zap.String("addr", cfg.HTTPAddr),
		zap.Bool("kafka", cfg.KafkaEnabled),
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.KafkaTopic),
	)

	// Catalog and portfolio come from the embedded seed
	store, err := catalog.LoadSeed()
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	projects, err := catalog.LoadProjects()
	if err != nil {
		logger.Fatal("failed to load portfolio", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.Int("products", store.Len()))

	// Submissions go to Kafka when enabled, otherwise to the log
	var submitter booking.Submitter = booking.NewLogSubmitter(logger)
	if cfg.KafkaEnabled {
		producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		submitter = kafka.NewSubmitter(producer)
	}

	sessions := session.NewRegistry()
	sweeper, err := session.NewSweeper(sessions, cfg.SessionSweepSpec, cfg.SessionIdleTTL)
	if err != nil {
		logger.Fatal("failed to schedule session sweeper", zap.Error(err))
	}
	sweeper.Start()
	defer sweeper.Stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg, sessions.Len)

	cmdHandler := command.NewHandler(store, sessions, submitter, m)
	queryHandler := query.NewHandler(store, projects, sessions, cfg.Pricing, m)
	router := api.NewRouter(api.RouterConfig{
		Handlers: api.NewHandlers(cmdHandler, queryHandler),
		Sessions: sessions,
		Metrics:  m,
		Gatherer: reg,
		Logger:   logger,
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
}
