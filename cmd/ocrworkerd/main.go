package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/calebmayer/textsnap/constants"
	"github.com/calebmayer/textsnap/internal/analysis"
	"github.com/calebmayer/textsnap/internal/broker"
	"github.com/calebmayer/textsnap/internal/common"
	"github.com/calebmayer/textsnap/internal/ocr"
	"github.com/calebmayer/textsnap/internal/pipeline"
)

// ocrworkerd drains the OCR queue: decode, assess, run strategies,
// arbitrate, analyze, then hand the result to the storage queue.
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
	if err := queue.Ping(ctx); err != nil {
		logger.Error("broker health failed", "error", err)
		os.Exit(1)
	}
	logger.Info("broker health OK")

	engine := ocr.NewTesseractEngine(cfg.OCR.TessdataDir)
	executor := ocr.NewExecutor(engine, logger,
		ocr.WithCallTimeout(cfg.OCR.CallTimeout),
		ocr.WithParallelism(cfg.OCR.Parallelism),
	)
	analyzer := analysis.NewClient(analysis.Config{
		APIKey:      cfg.Analysis.APIKey,
		BaseURL:     cfg.Analysis.BaseURL,
		Model:       cfg.Analysis.Model,
		Temperature: cfg.Analysis.Temperature,
		Timeout:     cfg.Analysis.Timeout,
	}, logger)

	orch := pipeline.NewOrchestrator(executor, analyzer, logger,
		pipeline.WithPlaceholder(cfg.Analysis.Placeholder),
	)
	worker := pipeline.NewWorker(queue, orch, constants.OCRQueue, constants.StorageQueue, logger,
		pipeline.WithJobTimeout(cfg.Worker.JobTimeout),
	)

	go serveHealth(cfg.Worker.GRPCAddr, logger)

	if err := worker.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("worker exited", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

// serveHealth exposes the standard gRPC health endpoint so orchestration
// platforms can probe worker liveness.
func serveHealth(addr string, logger *slog.Logger) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("health listen failed", "addr", addr, "error", err)
		return
	}
	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	logger.Info("health endpoint serving", "addr", addr)
	if err := grpcServer.Serve(lis); err != nil {
		logger.Error("health serve failed", "error", err)
	}
}
