package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/storm-cone-engine/internal/adapter/advisory"
	"github.com/couchcryptid/storm-cone-engine/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/storm-cone-engine/internal/adapter/kafka"
	"github.com/couchcryptid/storm-cone-engine/internal/config"
	"github.com/couchcryptid/storm-cone-engine/internal/engine"
	"github.com/couchcryptid/storm-cone-engine/internal/observability"
	"github.com/couchcryptid/storm-cone-engine/internal/portfolio"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	assets, err := portfolio.Load(cfg.PortfolioPath, cfg.AOIBufferDegrees)
	if err != nil {
		logger.Error("failed to load portfolio", "path", cfg.PortfolioPath, "error", err)
		return 1
	}
	logger.Info("portfolio loaded", "path", cfg.PortfolioPath, "aois", assets.Len())

	catalog := advisory.NewCatalog(cfg.AdvisoryDir, cfg.AdvisoryCacheSize, logger)

	// Report publishing is feature-flagged via KAFKA_ENABLED.
	var reporter engine.Reporter
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		reporter = writer
		logger.Info("kafka reporting enabled", "topic", cfg.KafkaReportTopic)
	} else {
		logger.Info("kafka reporting disabled")
	}

	eng := engine.New(catalog, catalog, assets, reporter, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, eng, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	exitCode := 0
	report, err := eng.Run(ctx, cfg.RunAt)
	if err != nil {
		logger.Error("run failed", "error", err)
		exitCode = 1
	} else {
		srv.RecordRun(report)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
	return exitCode
}
