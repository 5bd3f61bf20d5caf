package ocr

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/calebmayer/textsnap/internal/strategy"
)

// Candidate is one strategy's output for a job, before arbitration.
type Candidate struct {
	StrategyID strategy.ID `json:"strategy_id"`
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"` // 0..100
	TextLength int         `json:"text_length"`
	WordCount  int         `json:"word_count"`
	Language   string      `json:"language_used"`
}

// Attempt records one strategy attempt. Err is only set when preprocessing
// itself failed and no candidate exists; an engine failure instead yields a
// zero-confidence candidate, so partial failure never aborts the job.
type Attempt struct {
	StrategyID strategy.ID
	Candidate  Candidate
	Err        error
}

// Executor runs the selected strategies against the engine, one candidate
// per strategy.
type Executor struct {
	engine      Engine
	logger      *slog.Logger
	callTimeout time.Duration
	parallelism int
}

type ExecutorOption func(*Executor)

func WithCallTimeout(d time.Duration) ExecutorOption {
	return func(e *Executor) {
		if d > 0 {
			e.callTimeout = d
		}
	}
}

func WithParallelism(n int) ExecutorOption {
	return func(e *Executor) {
		if n > 0 {
			e.parallelism = n
		}
	}
}

func NewExecutor(engine Engine, logger *slog.Logger, opts ...ExecutorOption) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Executor{
		engine:      engine,
		logger:      logger,
		callTimeout: 30 * time.Second,
		parallelism: 1,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// RunStrategies attempts every id in order against an independent
// preprocessed copy of img. The returned slice is index-aligned with ids
// regardless of parallelism, so results stay deterministic.
func (e *Executor) RunStrategies(ctx context.Context, img *image.Gray, ids []strategy.ID, languages string) []Attempt {
	attempts := make([]Attempt, len(ids))

	if e.parallelism <= 1 || len(ids) == 1 {
		for i, id := range ids {
			attempts[i] = e.runOne(ctx, img, id, languages)
		}
		return attempts
	}

	sem := make(chan struct{}, e.parallelism)
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id strategy.ID) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			attempts[i] = e.runOne(ctx, img, id, languages)
		}(i, id)
	}
	wg.Wait()
	return attempts
}

// runOne produces exactly one Attempt for a strategy. Engine errors and
// timeouts become zero-confidence candidates; only a preprocessing failure
// skips the strategy.
func (e *Executor) runOne(ctx context.Context, img *image.Gray, id strategy.ID, languages string) Attempt {
	strat, ok := strategy.Lookup(id)
	if !ok {
		return Attempt{StrategyID: id, Err: fmt.Errorf("unknown strategy: %s", id)}
	}

	processed, err := strat.Preprocess(img)
	if err != nil {
		e.logger.Warn("strategy preprocessing failed", "strategy", id, "error", err)
		return Attempt{StrategyID: id, Err: fmt.Errorf("preprocess %s: %w", id, err)}
	}

	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	start := time.Now()
	rec, err := e.recognizeSafely(callCtx, Request{
		Image:       processed,
		Languages:   languages,
		PageSegMode: strat.PageSegMode,
		EngineMode:  strat.EngineMode,
	})
	if err != nil {
		// Failure as data: the job continues with this candidate in
		// the running, it just cannot win on confidence.
		e.logger.Warn("engine call failed",
			"strategy", id,
			"languages", languages,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return Attempt{StrategyID: id, Candidate: Candidate{
			StrategyID: id,
			Language:   languages,
		}}
	}

	text := rec.Text
	cand := Candidate{
		StrategyID: id,
		Text:       text,
		Confidence: rec.Confidence(),
		TextLength: len(text),
		WordCount:  len(strings.Fields(text)),
		Language:   languages,
	}
	e.logger.Debug("strategy attempt complete",
		"strategy", id,
		"confidence", cand.Confidence,
		"text_len", cand.TextLength,
		"words", cand.WordCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return Attempt{StrategyID: id, Candidate: cand}
}

// recognizeSafely converts engine panics (native-library crashes surface
// that way through the binding) into plain errors.
func (e *Executor) recognizeSafely(ctx context.Context, req Request) (rec Recognition, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("engine panic: %v", r)
		}
	}()
	return e.engine.Recognize(ctx, req)
}

// Candidates filters attempts down to the candidates that exist, which is
// what the arbiter consumes. Zero-confidence candidates are included.
func Candidates(attempts []Attempt) []Candidate {
	out := make([]Candidate, 0, len(attempts))
	for _, a := range attempts {
		if a.Err == nil {
			out = append(out, a.Candidate)
		}
	}
	return out
}

// AttemptedIDs returns the ordered strategy ids that were scheduled,
// including skipped ones, for the audit trail.
func AttemptedIDs(attempts []Attempt) []strategy.ID {
	out := make([]strategy.ID, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, a.StrategyID)
	}
	return out
}
