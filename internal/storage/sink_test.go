package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/calebmayer/textsnap/constants"
	"github.com/calebmayer/textsnap/gen/ent"
	"github.com/calebmayer/textsnap/internal/pipeline"
)

type fakeQueue struct {
	items []string
	acked []string
}

func (f *fakeQueue) Enqueue(ctx context.Context, queue, payload string) error {
	f.items = append(f.items, payload)
	return nil
}

func (f *fakeQueue) Dequeue(ctx context.Context, queue string) (string, error) {
	if len(f.items) == 0 {
		return "", nil
	}
	head := f.items[0]
	f.items = f.items[1:]
	return head, nil
}

func (f *fakeQueue) Ack(ctx context.Context, queue, payload string) error {
	f.acked = append(f.acked, payload)
	return nil
}

func (f *fakeQueue) Depth(ctx context.Context, queue string) (int64, error) {
	return int64(len(f.items)), nil
}

type fakeRepo struct {
	failures int
	inserted []pipeline.ProcessingResult
}

func (f *fakeRepo) Insert(ctx context.Context, result pipeline.ProcessingResult) (*ent.Response, error) {
	if f.failures > 0 {
		f.failures--
		return nil, errors.New("connection reset")
	}
	f.inserted = append(f.inserted, result)
	return &ent.Response{}, nil
}

func resultPayload(t *testing.T, jobID string) string {
	t.Helper()
	r := pipeline.ProcessingResult{
		JobID:      jobID,
		SourceKind: constants.SourceScreenshot,
		FinalText:  "stored text",
		Confidence: 80,
	}
	payload, err := r.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return payload
}

func TestSinkStoresResult(t *testing.T) {
	q := &fakeQueue{}
	repo := &fakeRepo{}
	sink := NewSink(q, repo, nil)

	payload := resultPayload(t, "job-1")
	sink.handle(context.Background(), payload)

	if len(repo.inserted) != 1 || repo.inserted[0].JobID != "job-1" {
		t.Fatalf("inserted = %+v", repo.inserted)
	}
	if len(q.acked) != 1 {
		t.Fatalf("acked = %v", q.acked)
	}
}

func TestSinkRetriesTransientFailure(t *testing.T) {
	q := &fakeQueue{}
	repo := &fakeRepo{failures: 2}
	sink := NewSink(q, repo, nil, WithRetry(3, time.Millisecond))

	sink.handle(context.Background(), resultPayload(t, "job-2"))

	if len(repo.inserted) != 1 {
		t.Fatalf("expected insert to succeed on the third try, got %+v", repo.inserted)
	}
}

func TestSinkGivesUpAfterBoundedRetries(t *testing.T) {
	q := &fakeQueue{}
	repo := &fakeRepo{failures: 10}
	sink := NewSink(q, repo, nil, WithRetry(3, time.Millisecond))

	sink.handle(context.Background(), resultPayload(t, "job-3"))

	if len(repo.inserted) != 0 {
		t.Fatalf("no insert should have succeeded, got %+v", repo.inserted)
	}
	if repo.failures != 7 {
		t.Fatalf("insert attempted %d times, want 3", 10-repo.failures)
	}
	// the message is still acked so a poison result cannot wedge the queue
	if len(q.acked) != 1 {
		t.Fatalf("acked = %v", q.acked)
	}
}

func TestSinkDropsInvalidPayload(t *testing.T) {
	q := &fakeQueue{}
	repo := &fakeRepo{}
	sink := NewSink(q, repo, nil)

	sink.handle(context.Background(), "not json")

	if len(repo.inserted) != 0 {
		t.Fatalf("invalid payload reached the repository: %+v", repo.inserted)
	}
	if len(q.acked) != 1 {
		t.Fatalf("invalid payload not acked: %v", q.acked)
	}
}

func TestSinkRunStopsOnCancel(t *testing.T) {
	q := &fakeQueue{}
	sink := NewSink(q, &fakeRepo{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sink.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("run returned %v, want context.Canceled", err)
	}
}
