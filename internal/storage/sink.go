// Package storage holds the last pipeline stage: draining the storage
// queue into the relational store, one insert per completed job.
package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/calebmayer/textsnap/constants"
	"github.com/calebmayer/textsnap/internal/broker"
	"github.com/calebmayer/textsnap/internal/pipeline"
	"github.com/calebmayer/textsnap/internal/repository"
)

type Sink struct {
	queue  broker.Queue
	repo   repository.ResponseRepository
	logger *slog.Logger

	tries         int
	backoff       time.Duration
	brokerBackoff time.Duration
}

type SinkOption func(*Sink)

// WithRetry bounds the insert attempts per result and the wait between
// them. Transient write errors get retried; a result that still fails is
// logged in full and dropped, never requeued.
func WithRetry(tries int, backoff time.Duration) SinkOption {
	return func(s *Sink) {
		if tries > 0 {
			s.tries = tries
		}
		if backoff > 0 {
			s.backoff = backoff
		}
	}
}

func NewSink(queue broker.Queue, repo repository.ResponseRepository, logger *slog.Logger, opts ...SinkOption) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Sink{
		queue:         queue,
		repo:          repo,
		logger:        logger,
		tries:         3,
		backoff:       2 * time.Second,
		brokerBackoff: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run blocks until ctx is cancelled, draining the storage queue.
func (s *Sink) Run(ctx context.Context) error {
	s.logger.Info("sink.start", "queue", constants.StorageQueue)
	for {
		if ctx.Err() != nil {
			s.logger.Info("sink.stop")
			return ctx.Err()
		}

		payload, err := s.queue.Dequeue(ctx, constants.StorageQueue)
		if err != nil {
			if ctx.Err() != nil {
				s.logger.Info("sink.stop")
				return ctx.Err()
			}
			s.logger.Error("sink.broker_error", "error", err)
			s.sleep(ctx, s.brokerBackoff)
			continue
		}
		if payload == "" {
			continue
		}

		s.handle(ctx, payload)
	}
}

func (s *Sink) handle(ctx context.Context, payload string) {
	result, err := pipeline.ParseResult(payload)
	if err != nil {
		s.logger.Error("sink.invalid_payload", "error", err, "payload", payload)
		s.ack(ctx, payload)
		return
	}

	var lastErr error
	for attempt := 1; attempt <= s.tries; attempt++ {
		if _, lastErr = s.repo.Insert(ctx, result); lastErr == nil {
			s.ack(ctx, payload)
			s.logger.Info("job.stored", "job_id", result.JobID, "stage", constants.StageDone)
			return
		}
		if attempt < s.tries {
			s.logger.Warn("sink.insert_retry",
				"job_id", result.JobID,
				"attempt", attempt,
				"error", lastErr,
			)
			s.sleep(ctx, s.backoff)
		}
		if ctx.Err() != nil {
			break
		}
	}

	// the full payload goes in the log so the row is recoverable by hand
	s.logger.Error("job.failed",
		"job_id", result.JobID,
		"stage", constants.StageStoring,
		"error", lastErr,
		"payload", payload,
	)
	s.ack(ctx, payload)
}

func (s *Sink) ack(ctx context.Context, payload string) {
	if err := s.queue.Ack(ctx, constants.StorageQueue, payload); err != nil {
		s.logger.Warn("sink.ack_failed", "error", err)
	}
}

func (s *Sink) sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
