package pipeline

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"math/rand"
	"testing"
	"time"

	"github.com/calebmayer/textsnap/constants"
	"github.com/calebmayer/textsnap/internal/analysis"
	"github.com/calebmayer/textsnap/internal/ocr"
	"github.com/calebmayer/textsnap/internal/quality"
	"github.com/calebmayer/textsnap/internal/strategy"
)

type fakeAnalyzer struct {
	calls  int
	gotTxt string
	result analysis.Result
	err    error
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, text, language string) (analysis.Result, error) {
	f.calls++
	f.gotTxt = text
	if f.err != nil {
		return analysis.Result{}, f.err
	}
	return f.result, nil
}

type scriptedEngine struct {
	calls int
	fn    func(req ocr.Request) (ocr.Recognition, error)
}

func (s *scriptedEngine) Recognize(ctx context.Context, req ocr.Request) (ocr.Recognition, error) {
	s.calls++
	return s.fn(req)
}

func pngPayload(t *testing.T, img *image.Gray) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func noisyGray(w, h int, seed int64) *image.Gray {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		v := 127 + rng.NormFloat64()*10
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		img.Pix[i] = uint8(v)
	}
	return img
}

func imageJob(id string) Job {
	return Job{
		JobID:        id,
		SourceKind:   constants.SourceScreenshot,
		PayloadRef:   "mem://" + id,
		LanguageHint: "auto",
		CreatedAt:    time.Now().UTC(),
	}
}

func newTestOrchestrator(t *testing.T, engine ocr.Engine, analyzer analysis.Analyzer, payload []byte, opts ...OrchestratorOption) *Orchestrator {
	t.Helper()
	exec := ocr.NewExecutor(engine, nil, ocr.WithCallTimeout(5*time.Second))
	opts = append(opts, WithPayloadLoader(func(ref string) ([]byte, error) {
		return payload, nil
	}))
	return NewOrchestrator(exec, analyzer, nil, opts...)
}

func TestProcessImageEndToEnd(t *testing.T) {
	engine := &scriptedEngine{fn: func(req ocr.Request) (ocr.Recognition, error) {
		return ocr.Recognition{
			Text:            "Invoice   total 42",
			WordConfidences: []float64{88, 92, 90},
		}, nil
	}}
	fa := &fakeAnalyzer{result: analysis.Result{Text: `{"title":"t"}`, Model: "test-model", TokensUsed: 17}}
	payload := pngPayload(t, noisyGray(100, 100, 42))
	orch := newTestOrchestrator(t, engine, fa, payload)

	result, err := orch.Process(context.Background(), imageJob("e2e-1"))
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if result.JobID != "e2e-1" {
		t.Errorf("job id = %q", result.JobID)
	}
	if result.FinalText != "Invoice total 42" {
		t.Errorf("final text = %q, want normalized OCR text", result.FinalText)
	}
	if result.Confidence != 90 {
		t.Errorf("confidence = %v, want 90", result.Confidence)
	}
	if result.QualityScore < 20 || result.QualityScore > 50 {
		t.Errorf("noisy capture quality score = %v, want the low-to-mid band", result.QualityScore)
	}
	if len(result.AttemptedStrategies) == 0 || len(result.AttemptedStrategies) > 4 {
		t.Errorf("attempted strategies = %v", result.AttemptedStrategies)
	}
	if result.StrategyUsed == "" || result.PreprocessingUsed == "" {
		t.Errorf("audit fields missing: %+v", result)
	}
	if result.AnalysisText != `{"title":"t"}` || result.AnalysisCostTokens != 17 || result.AnalysisModel != "test-model" {
		t.Errorf("analysis fields = %q/%d/%q", result.AnalysisText, result.AnalysisCostTokens, result.AnalysisModel)
	}
	if result.OCRLanguage != constants.ResolveLanguage("auto") {
		t.Errorf("ocr language = %q", result.OCRLanguage)
	}
	for _, stage := range []constants.Stage{
		constants.StageAssessing,
		constants.StageExtracting,
		constants.StageArbitrating,
		constants.StageAnalyzing,
	} {
		if _, ok := result.StageDurations[string(stage)]; !ok {
			t.Errorf("missing stage duration %q", stage)
		}
	}
	if engine.calls != len(result.AttemptedStrategies) {
		t.Errorf("engine calls = %d, attempted = %d", engine.calls, len(result.AttemptedStrategies))
	}
}

func TestProcessHonorsContentHint(t *testing.T) {
	engine := &scriptedEngine{fn: func(req ocr.Request) (ocr.Recognition, error) {
		return ocr.Recognition{Text: "hinted", WordConfidences: []float64{80}}, nil
	}}
	fa := &fakeAnalyzer{result: analysis.Result{Text: "{}", Model: "m"}}
	payload := pngPayload(t, noisyGray(100, 100, 42))
	orch := newTestOrchestrator(t, engine, fa, payload)

	job := imageJob("hinted-1")
	job.ContentHint = string(strategy.DenseText)
	result, err := orch.Process(context.Background(), job)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(result.AttemptedStrategies) == 0 || result.AttemptedStrategies[0] != strategy.DenseText {
		t.Errorf("attempted = %v, want the hinted strategy first", result.AttemptedStrategies)
	}
}

func TestProcessNoHintWithoutCallerInput(t *testing.T) {
	// a screenshot job with no content_hint must not get one made up;
	// the selector sees only the quality metrics
	engine := &scriptedEngine{fn: func(req ocr.Request) (ocr.Recognition, error) {
		return ocr.Recognition{Text: "plain", WordConfidences: []float64{80}}, nil
	}}
	fa := &fakeAnalyzer{result: analysis.Result{Text: "{}", Model: "m"}}
	payload := pngPayload(t, noisyGray(100, 100, 42))
	orch := newTestOrchestrator(t, engine, fa, payload)

	result, err := orch.Process(context.Background(), imageJob("unhinted-1"))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	metrics := quality.Assess(noisyGray(100, 100, 42))
	want := strategy.Select(metrics, "")
	if len(result.AttemptedStrategies) != len(want) {
		t.Fatalf("attempted = %v, want %v", result.AttemptedStrategies, want)
	}
	for i := range want {
		if result.AttemptedStrategies[i] != want[i] {
			t.Errorf("attempted = %v, want %v", result.AttemptedStrategies, want)
			break
		}
	}
}

func TestProcessGracefulDegradation(t *testing.T) {
	// every engine call fails; the job must still produce a result with
	// empty text rather than aborting
	engine := &scriptedEngine{fn: func(req ocr.Request) (ocr.Recognition, error) {
		return ocr.Recognition{}, errors.New("engine down")
	}}
	fa := &fakeAnalyzer{result: analysis.Result{Text: "unused", Model: "m"}}
	payload := pngPayload(t, noisyGray(100, 100, 7))
	orch := newTestOrchestrator(t, engine, fa, payload)

	result, err := orch.Process(context.Background(), imageJob("degraded-1"))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if result.FinalText != "" {
		t.Errorf("final text = %q, want empty", result.FinalText)
	}
	if len(result.AttemptedStrategies) == 0 {
		t.Errorf("attempted strategies missing")
	}
	if fa.calls != 0 {
		t.Errorf("analyzer called %d times for empty text", fa.calls)
	}
	want := analysis.NoTextResult()
	if result.AnalysisText != want.Text || result.AnalysisCostTokens != 0 {
		t.Errorf("empty text should get the no-text analysis, got %q", result.AnalysisText)
	}
}

func TestProcessDecodeFailure(t *testing.T) {
	engine := &scriptedEngine{fn: func(req ocr.Request) (ocr.Recognition, error) {
		t.Fatal("engine must not run for an undecodable payload")
		return ocr.Recognition{}, nil
	}}
	orch := newTestOrchestrator(t, engine, &fakeAnalyzer{}, []byte("not an image"))

	_, err := orch.Process(context.Background(), imageJob("bad-bytes"))
	if err == nil {
		t.Fatal("expected a stage error")
	}
	var se *StageError
	if !errors.As(err, &se) {
		t.Fatalf("error %v is not a StageError", err)
	}
	if se.Stage != constants.StageAssessing {
		t.Errorf("failed stage = %q, want %q", se.Stage, constants.StageAssessing)
	}
}

func TestProcessAnalysisDegradesToPlaceholder(t *testing.T) {
	engine := &scriptedEngine{fn: func(req ocr.Request) (ocr.Recognition, error) {
		return ocr.Recognition{Text: "readable text", WordConfidences: []float64{90, 90}}, nil
	}}
	fa := &fakeAnalyzer{err: errors.New("rate limited")}
	payload := pngPayload(t, noisyGray(100, 100, 3))
	orch := newTestOrchestrator(t, engine, fa, payload, WithPlaceholder("Analysis unavailable."))

	result, err := orch.Process(context.Background(), imageJob("analysis-down"))
	if err != nil {
		t.Fatalf("analysis failure must not fail the job: %v", err)
	}
	if result.AnalysisText != "Analysis unavailable." {
		t.Errorf("analysis text = %q, want the placeholder", result.AnalysisText)
	}
	if result.AnalysisCostTokens != 0 {
		t.Errorf("degraded analysis cost = %d, want 0", result.AnalysisCostTokens)
	}
	if result.FinalText != "readable text" {
		t.Errorf("final text = %q, OCR output must survive analysis failure", result.FinalText)
	}
}

func TestProcessClipboardBypass(t *testing.T) {
	fa := &fakeAnalyzer{result: analysis.Result{Text: `{"title":"clip"}`, Model: "m", TokensUsed: 5}}
	// no executor and a loader that fails loudly: the bypass must touch
	// neither
	orch := NewOrchestrator(nil, fa, nil, WithPayloadLoader(func(ref string) ([]byte, error) {
		t.Fatal("payload loader must not run for clipboard text")
		return nil, nil
	}))

	raw := "pasted   text with 0dd spacing"
	job := Job{
		JobID:        "clip-1",
		SourceKind:   constants.SourceClipboardText,
		PayloadRef:   raw,
		LanguageHint: "eng",
		CreatedAt:    time.Now().UTC(),
	}
	result, err := orch.Process(context.Background(), job)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if result.FinalText != raw {
		t.Errorf("clipboard text changed: %q vs %q", result.FinalText, raw)
	}
	if result.QualityScore != 0 || len(result.AttemptedStrategies) != 0 || result.StrategyUsed != "" {
		t.Errorf("OCR stages ran for clipboard text: %+v", result)
	}
	if fa.calls != 1 || fa.gotTxt != raw {
		t.Errorf("analyzer saw %q in %d calls", fa.gotTxt, fa.calls)
	}
	if result.AnalysisText != `{"title":"clip"}` || result.AnalysisCostTokens != 5 {
		t.Errorf("analysis fields lost: %+v", result)
	}
}

func TestProcessClipboardNormalizationOptIn(t *testing.T) {
	fa := &fakeAnalyzer{result: analysis.Result{Text: "{}", Model: "m"}}
	orch := NewOrchestrator(nil, fa, nil, WithClipboardNormalization())

	job := Job{
		JobID:        "clip-2",
		SourceKind:   constants.SourceClipboardText,
		PayloadRef:   "spaced   out	text",
		LanguageHint: "auto",
	}
	result, err := orch.Process(context.Background(), job)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if result.FinalText != "spaced out text" {
		t.Errorf("final text = %q, want normalized", result.FinalText)
	}
}
