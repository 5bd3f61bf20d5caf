package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/calebmayer/textsnap/internal/broker"
	"github.com/calebmayer/textsnap/internal/common"
)

// Worker is the dequeue-process-enqueue loop for one queue pair. One worker
// per process; replicas pop from the same inbound queue and the broker's
// atomic pop is the only coordination between them.
type Worker struct {
	queue      broker.Queue
	orch       *Orchestrator
	logger     *slog.Logger
	inQueue    string
	outQueue   string
	jobTimeout time.Duration

	// brokerBackoff is how long to wait before retrying after the broker
	// goes away. The worker never exits on broker errors.
	brokerBackoff time.Duration
}

type WorkerOption func(*Worker)

func WithJobTimeout(d time.Duration) WorkerOption {
	return func(w *Worker) {
		if d > 0 {
			w.jobTimeout = d
		}
	}
}

func WithBrokerBackoff(d time.Duration) WorkerOption {
	return func(w *Worker) {
		if d > 0 {
			w.brokerBackoff = d
		}
	}
}

func NewWorker(queue broker.Queue, orch *Orchestrator, inQueue, outQueue string, logger *slog.Logger, opts ...WorkerOption) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Worker{
		queue:         queue,
		orch:          orch,
		logger:        logger,
		inQueue:       inQueue,
		outQueue:      outQueue,
		jobTimeout:    3 * time.Minute,
		brokerBackoff: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run blocks until ctx is cancelled. A single bad job never stops the
// loop; only cancellation does.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("worker.start", "in_queue", w.inQueue, "out_queue", w.outQueue)
	for {
		if ctx.Err() != nil {
			w.logger.Info("worker.stop", "in_queue", w.inQueue)
			return ctx.Err()
		}

		payload, err := w.queue.Dequeue(ctx, w.inQueue)
		if err != nil {
			if ctx.Err() != nil {
				w.logger.Info("worker.stop", "in_queue", w.inQueue)
				return ctx.Err()
			}
			w.logger.Error("worker.broker_error", "queue", w.inQueue, "error", err)
			w.sleep(ctx, w.brokerBackoff)
			continue
		}
		if payload == "" {
			continue
		}

		w.handle(ctx, payload)
	}
}

func (w *Worker) handle(ctx context.Context, payload string) {
	job, err := ParseJob(payload)
	if err != nil {
		// malformed payloads are dropped, not retried
		w.logger.Error("worker.invalid_payload", "queue", w.inQueue, "error", err)
		w.ack(ctx, payload)
		return
	}

	jctx, cancel := context.WithTimeout(common.WithJobID(ctx, job.JobID), w.jobTimeout)
	defer cancel()

	start := time.Now()
	result, err := w.orch.Process(jctx, job)
	if err != nil {
		var se *StageError
		if errors.As(err, &se) {
			w.logger.Error("job.failed",
				"job_id", job.JobID,
				"stage", se.Stage,
				"attempt_count", job.AttemptCount,
				"error", se.Err,
			)
		} else {
			w.logger.Error("job.failed", "job_id", job.JobID, "error", err)
		}
		w.ack(ctx, payload)
		return
	}

	encoded, err := result.Encode()
	if err != nil {
		w.logger.Error("job.encode_result", "job_id", job.JobID, "error", err)
		w.ack(ctx, payload)
		return
	}
	if err := w.queue.Enqueue(ctx, w.outQueue, encoded); err != nil {
		w.logger.Error("job.enqueue_result",
			"job_id", job.JobID,
			"queue", w.outQueue,
			"error", err,
		)
		// leave the inbound message unacked so ack-mode deployments can
		// recover it from the processing list
		return
	}
	w.ack(ctx, payload)

	w.logger.Info("worker.processed",
		"job_id", job.JobID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}

func (w *Worker) ack(ctx context.Context, payload string) {
	if err := w.queue.Ack(ctx, w.inQueue, payload); err != nil {
		w.logger.Warn("worker.ack_failed", "queue", w.inQueue, "error", err)
	}
}

func (w *Worker) sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
