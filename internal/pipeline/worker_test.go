package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/calebmayer/textsnap/constants"
	"github.com/calebmayer/textsnap/internal/analysis"
)

// drainQueue serves preloaded payloads and cancels the run context once
// drained so Worker.Run terminates.
type drainQueue struct {
	cancel   context.CancelFunc
	items    []string
	enqueued map[string][]string
	acked    []string
}

func newDrainQueue(cancel context.CancelFunc, items ...string) *drainQueue {
	return &drainQueue{
		cancel:   cancel,
		items:    items,
		enqueued: make(map[string][]string),
	}
}

func (q *drainQueue) Enqueue(ctx context.Context, queue, payload string) error {
	q.enqueued[queue] = append(q.enqueued[queue], payload)
	return nil
}

func (q *drainQueue) Dequeue(ctx context.Context, queue string) (string, error) {
	if len(q.items) == 0 {
		q.cancel()
		return "", ctx.Err()
	}
	head := q.items[0]
	q.items = q.items[1:]
	return head, nil
}

func (q *drainQueue) Ack(ctx context.Context, queue, payload string) error {
	q.acked = append(q.acked, payload)
	return nil
}

func (q *drainQueue) Depth(ctx context.Context, queue string) (int64, error) {
	return int64(len(q.items)), nil
}

func clipboardPayload(t *testing.T, id, text string) string {
	t.Helper()
	job := Job{
		JobID:      id,
		SourceKind: constants.SourceClipboardText,
		PayloadRef: text,
	}
	payload, err := job.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return payload
}

func TestWorkerProcessesAndForwards(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q := newDrainQueue(cancel,
		clipboardPayload(t, "w-1", "first snippet"),
		clipboardPayload(t, "w-2", "second snippet"),
	)

	fa := &fakeAnalyzer{result: analysis.Result{Text: "{}", Model: "m"}}
	orch := NewOrchestrator(nil, fa, nil)
	w := NewWorker(q, orch, constants.TextAnalysisQueue, constants.StorageQueue, nil)

	if err := w.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("run returned %v, want context.Canceled", err)
	}

	out := q.enqueued[constants.StorageQueue]
	if len(out) != 2 {
		t.Fatalf("forwarded %d results, want 2", len(out))
	}
	first, err := ParseResult(out[0])
	if err != nil {
		t.Fatalf("parse forwarded result: %v", err)
	}
	if first.JobID != "w-1" || first.FinalText != "first snippet" {
		t.Errorf("forwarded result = %+v", first)
	}
	if len(q.acked) != 2 {
		t.Errorf("acked %d messages, want 2", len(q.acked))
	}
}

func TestWorkerDropsMalformedPayload(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q := newDrainQueue(cancel,
		"not a job at all",
		clipboardPayload(t, "w-3", "survives the bad message"),
	)

	fa := &fakeAnalyzer{result: analysis.Result{Text: "{}", Model: "m"}}
	orch := NewOrchestrator(nil, fa, nil)
	w := NewWorker(q, orch, constants.TextAnalysisQueue, constants.StorageQueue, nil)

	_ = w.Run(ctx)

	out := q.enqueued[constants.StorageQueue]
	if len(out) != 1 {
		t.Fatalf("forwarded %d results, want 1", len(out))
	}
	result, err := ParseResult(out[0])
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if result.JobID != "w-3" {
		t.Errorf("wrong job survived: %+v", result)
	}
	// the malformed message is acked so it cannot wedge the queue
	if len(q.acked) != 2 {
		t.Errorf("acked %d messages, want 2", len(q.acked))
	}
}

func TestWorkerSurvivesFailedJob(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// an image job on a text-only worker fails in the extracting stage
	badJob := Job{
		JobID:      "img-on-text",
		SourceKind: constants.SourceScreenshot,
		PayloadRef: "/captures/a.png",
	}
	badPayload, err := badJob.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	q := newDrainQueue(cancel,
		badPayload,
		clipboardPayload(t, "w-4", "still processed"),
	)

	fa := &fakeAnalyzer{result: analysis.Result{Text: "{}", Model: "m"}}
	orch := NewOrchestrator(nil, fa, nil)
	w := NewWorker(q, orch, constants.TextAnalysisQueue, constants.StorageQueue, nil)

	_ = w.Run(ctx)

	out := q.enqueued[constants.StorageQueue]
	if len(out) != 1 {
		t.Fatalf("forwarded %d results, want 1", len(out))
	}
	result, _ := ParseResult(out[0])
	if result.JobID != "w-4" {
		t.Errorf("wrong job forwarded: %+v", result)
	}
}
