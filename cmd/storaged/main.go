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

	"github.com/calebmayer/textsnap/internal/broker"
	"github.com/calebmayer/textsnap/internal/common"
	"github.com/calebmayer/textsnap/internal/repository"
	"github.com/calebmayer/textsnap/internal/storage"
)

// storaged drains the storage queue into the responses table.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.ValidateStorage(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	if err := db.HealthCheck(ctx, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

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

	repo := repository.NewResponseRepository(db.Ent, logger)
	sink := storage.NewSink(queue, repo, logger,
		storage.WithRetry(cfg.Worker.StoreTries, cfg.Worker.StoreBackoff),
	)

	go serveHealth(cfg.Worker.GRPCAddr, logger)

	if err := sink.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("sink exited", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

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
