package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/drought-dashboard/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/drought-dashboard/internal/adapter/kafka"
	"github.com/couchcryptid/drought-dashboard/internal/config"
	"github.com/couchcryptid/drought-dashboard/internal/dashboard"
	"github.com/couchcryptid/drought-dashboard/internal/dataset"
	"github.com/couchcryptid/drought-dashboard/internal/observability"
	"github.com/couchcryptid/drought-dashboard/internal/session"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	data, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		logger.Error("failed to load dataset", "path", cfg.DatasetPath, "error", err)
		os.Exit(1)
	}
	logger.Info("dataset loaded", "path", cfg.DatasetPath, "rows", data.Len(),
		"years", data.Years.String())
	if unmapped := data.UnmappedCodes(); len(unmapped) > 0 {
		logger.Warn("dataset contains unmapped region codes", "codes", unmapped)
	}

	store := session.NewStore(cfg.SessionMaxEntries, cfg.SessionTTL,
		session.WithSizeObserver(func(n int) { metrics.SessionsActive.Set(float64(n)) }))

	// Selection events are feature-flagged via EVENTS_ENABLED / KAFKA_BROKERS.
	var (
		publisher dashboard.EventPublisher
		writer    *kafkaadapter.EventWriter
	)
	if cfg.EventsEnabled {
		writer = kafkaadapter.NewEventWriter(cfg, logger)
		publisher = writer
		logger.Info("selection events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaEventsTopic)
	} else {
		logger.Info("selection events disabled")
	}

	svc := dashboard.New(data, store, publisher, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return store.Run(gctx, cfg.SessionSweepInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("dashboard stopped with error", "error", err)
	}

	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
