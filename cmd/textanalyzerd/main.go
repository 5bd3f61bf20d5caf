package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/calebmayer/textsnap/constants"
	"github.com/calebmayer/textsnap/internal/analysis"
	"github.com/calebmayer/textsnap/internal/broker"
	"github.com/calebmayer/textsnap/internal/common"
	"github.com/calebmayer/textsnap/internal/pipeline"
)

// textanalyzerd drains the text analysis queue. Clipboard text jobs land
// here directly from ingestion and skip the OCR stages entirely; the
// orchestrator's clipboard bypass handles them without an engine.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var brokerOpts []broker.Option
	brokerOpts = append(brokerOpts, broker.WithDequeueTimeout(cfg.Broker.DequeueTimeout))
	if cfg.Broker.AckMode {
		brokerOpts = append(brokerOpts, broker.WithAckMode())
	}
	queue, err := broker.NewRedisQueue(cfg.Broker.RedisURL, brokerOpts...)
	if err != nil {
		logger.Error("failed to connect to broker", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := queue.Close(); cerr != nil {
			logger.Error("close broker", "error", cerr)
		}
	}()

	analyzer := analysis.NewClient(analysis.Config{
		APIKey:      cfg.Analysis.APIKey,
		BaseURL:     cfg.Analysis.BaseURL,
		Model:       cfg.Analysis.Model,
		Temperature: cfg.Analysis.Temperature,
		Timeout:     cfg.Analysis.Timeout,
	}, logger)

	// no executor; every job on this queue is a text source
	orch := pipeline.NewOrchestrator(nil, analyzer, logger,
		pipeline.WithPlaceholder(cfg.Analysis.Placeholder),
	)
	worker := pipeline.NewWorker(queue, orch, constants.TextAnalysisQueue, constants.StorageQueue, logger,
		pipeline.WithJobTimeout(cfg.Worker.JobTimeout),
	)

	if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("worker exited", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
