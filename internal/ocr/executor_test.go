package ocr

import (
	"context"
	"errors"
	"image"
	"sync/atomic"
	"testing"
	"time"

	"github.com/calebmayer/textsnap/internal/strategy"
)

type fakeEngine struct {
	calls     atomic.Int64
	recognize func(ctx context.Context, req Request) (Recognition, error)
}

func (f *fakeEngine) Recognize(ctx context.Context, req Request) (Recognition, error) {
	f.calls.Add(1)
	return f.recognize(ctx, req)
}

func engineImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if (x/4+y/4)%2 == 0 {
				img.Pix[y*img.Stride+x] = 220
			} else {
				img.Pix[y*img.Stride+x] = 30
			}
		}
	}
	return img
}

func TestRecognitionConfidence(t *testing.T) {
	empty := Recognition{Text: "x"}
	if got := empty.Confidence(); got != 0 {
		t.Errorf("no tokens should report confidence 0, got %v", got)
	}
	rec := Recognition{WordConfidences: []float64{80, 90, 100}}
	if got := rec.Confidence(); got != 90 {
		t.Errorf("mean confidence = %v, want 90", got)
	}
}

func TestRunStrategiesSuccess(t *testing.T) {
	eng := &fakeEngine{recognize: func(ctx context.Context, req Request) (Recognition, error) {
		return Recognition{Text: "hello world", WordConfidences: []float64{85, 95}}, nil
	}}
	exec := NewExecutor(eng, nil)

	ids := []strategy.ID{strategy.Document, strategy.Screenshot}
	attempts := exec.RunStrategies(context.Background(), engineImage(), ids, "eng")
	if len(attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(attempts))
	}
	for i, a := range attempts {
		if a.StrategyID != ids[i] {
			t.Errorf("attempt %d: strategy %q, want %q", i, a.StrategyID, ids[i])
		}
		if a.Err != nil {
			t.Errorf("attempt %d: unexpected error %v", i, a.Err)
		}
		c := a.Candidate
		if c.Text != "hello world" || c.Confidence != 90 || c.WordCount != 2 || c.Language != "eng" {
			t.Errorf("attempt %d: unexpected candidate %+v", i, c)
		}
	}
}

func TestEngineFailureBecomesZeroCandidate(t *testing.T) {
	eng := &fakeEngine{recognize: func(ctx context.Context, req Request) (Recognition, error) {
		return Recognition{}, errors.New("native crash")
	}}
	exec := NewExecutor(eng, nil)

	attempts := exec.RunStrategies(context.Background(), engineImage(), []strategy.ID{strategy.Document}, "eng")
	a := attempts[0]
	if a.Err != nil {
		t.Fatalf("engine failure must not skip the strategy: %v", a.Err)
	}
	if a.Candidate.Confidence != 0 || a.Candidate.Text != "" {
		t.Fatalf("engine failure candidate = %+v, want zero confidence and empty text", a.Candidate)
	}
	if a.Candidate.StrategyID != strategy.Document {
		t.Fatalf("candidate lost its strategy id: %+v", a.Candidate)
	}
}

func TestEnginePanicBecomesZeroCandidate(t *testing.T) {
	eng := &fakeEngine{recognize: func(ctx context.Context, req Request) (Recognition, error) {
		panic("segfault-class failure")
	}}
	exec := NewExecutor(eng, nil)

	attempts := exec.RunStrategies(context.Background(), engineImage(), []strategy.ID{strategy.Web}, "eng")
	if attempts[0].Err != nil {
		t.Fatalf("panic must not skip the strategy: %v", attempts[0].Err)
	}
	if attempts[0].Candidate.Confidence != 0 {
		t.Fatalf("panic candidate = %+v, want zero confidence", attempts[0].Candidate)
	}
}

func TestPreprocessFailureSkipsStrategy(t *testing.T) {
	eng := &fakeEngine{recognize: func(ctx context.Context, req Request) (Recognition, error) {
		return Recognition{Text: "should not run"}, nil
	}}
	exec := NewExecutor(eng, nil)

	tiny := image.NewGray(image.Rect(0, 0, 2, 2))
	attempts := exec.RunStrategies(context.Background(), tiny, []strategy.ID{strategy.Document}, "eng")
	if attempts[0].Err == nil {
		t.Fatal("expected a preprocessing error for degenerate input")
	}
	if eng.calls.Load() != 0 {
		t.Fatalf("engine called %d times for a skipped strategy", eng.calls.Load())
	}
	if got := Candidates(attempts); len(got) != 0 {
		t.Fatalf("skipped strategy produced candidates: %v", got)
	}
	if got := AttemptedIDs(attempts); len(got) != 1 || got[0] != strategy.Document {
		t.Fatalf("skipped strategy missing from audit trail: %v", got)
	}
}

func TestUnknownStrategySkipped(t *testing.T) {
	eng := &fakeEngine{recognize: func(ctx context.Context, req Request) (Recognition, error) {
		return Recognition{}, nil
	}}
	exec := NewExecutor(eng, nil)

	attempts := exec.RunStrategies(context.Background(), engineImage(), []strategy.ID{"bogus"}, "eng")
	if attempts[0].Err == nil {
		t.Fatal("expected an error for an unknown strategy id")
	}
}

func TestRunStrategiesParallelOrder(t *testing.T) {
	eng := &fakeEngine{recognize: func(ctx context.Context, req Request) (Recognition, error) {
		// stagger completion so ordering bugs would surface
		time.Sleep(time.Duration(req.PageSegMode) * time.Millisecond)
		return Recognition{Text: "ok", WordConfidences: []float64{float64(req.PageSegMode)}}, nil
	}}
	exec := NewExecutor(eng, nil, WithParallelism(3))

	ids := []strategy.ID{strategy.Document, strategy.Screenshot, strategy.Web, strategy.SingleLine}
	attempts := exec.RunStrategies(context.Background(), engineImage(), ids, "eng")
	for i, a := range attempts {
		if a.StrategyID != ids[i] {
			t.Fatalf("attempt %d holds %q, want %q", i, a.StrategyID, ids[i])
		}
	}
	if eng.calls.Load() != int64(len(ids)) {
		t.Fatalf("engine called %d times, want %d", eng.calls.Load(), len(ids))
	}
}

func TestCallTimeout(t *testing.T) {
	eng := &fakeEngine{recognize: func(ctx context.Context, req Request) (Recognition, error) {
		select {
		case <-ctx.Done():
			return Recognition{}, ctx.Err()
		case <-time.After(5 * time.Second):
			return Recognition{Text: "too late"}, nil
		}
	}}
	exec := NewExecutor(eng, nil, WithCallTimeout(20*time.Millisecond))

	start := time.Now()
	attempts := exec.RunStrategies(context.Background(), engineImage(), []strategy.ID{strategy.Document}, "eng")
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("timeout not enforced, took %v", elapsed)
	}
	if attempts[0].Candidate.Confidence != 0 || attempts[0].Candidate.Text != "" {
		t.Fatalf("timed-out call should yield a zero candidate, got %+v", attempts[0].Candidate)
	}
}
