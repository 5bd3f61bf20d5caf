package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/calebmayer/textsnap/constants"
	"github.com/calebmayer/textsnap/internal/analysis"
	"github.com/calebmayer/textsnap/internal/arbiter"
	"github.com/calebmayer/textsnap/internal/common"
	"github.com/calebmayer/textsnap/internal/imaging"
	"github.com/calebmayer/textsnap/internal/ocr"
	"github.com/calebmayer/textsnap/internal/quality"
	"github.com/calebmayer/textsnap/internal/strategy"
	"github.com/calebmayer/textsnap/internal/textnorm"
)

// StageError marks which stage a job died in. Worker loops log it as
// failed(stage) and move on; it never escalates past the job.
type StageError struct {
	Stage constants.Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("failed(%s): %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func failStage(stage constants.Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}

// Orchestrator carries everything one worker needs to push a job through
// the pipeline. All dependencies live here so two orchestrators never share
// state; replicas scale by running more processes.
type Orchestrator struct {
	executor *ocr.Executor
	analyzer analysis.Analyzer
	logger   *slog.Logger

	placeholder        string
	normalizeClipboard bool

	// loadPayload resolves a payload_ref to raw bytes. Tests override it.
	loadPayload func(ref string) ([]byte, error)
}

type OrchestratorOption func(*Orchestrator)

// WithClipboardNormalization runs the text normalizer on clipboard text
// too. Off by default so pasted text round-trips byte for byte.
func WithClipboardNormalization() OrchestratorOption {
	return func(o *Orchestrator) { o.normalizeClipboard = true }
}

func WithPayloadLoader(load func(ref string) ([]byte, error)) OrchestratorOption {
	return func(o *Orchestrator) { o.loadPayload = load }
}

func WithPlaceholder(text string) OrchestratorOption {
	return func(o *Orchestrator) {
		if text != "" {
			o.placeholder = text
		}
	}
}

func NewOrchestrator(executor *ocr.Executor, analyzer analysis.Analyzer, logger *slog.Logger, opts ...OrchestratorOption) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	o := &Orchestrator{
		executor:    executor,
		analyzer:    analyzer,
		logger:      logger,
		placeholder: "Analysis unavailable.",
		loadPayload: os.ReadFile,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Process runs one job through the full stage machine and returns the
// result destined for the storage queue. A returned error is always a
// *StageError and means no result exists for this job.
func (o *Orchestrator) Process(ctx context.Context, job Job) (ProcessingResult, error) {
	durations := make(map[string]int64, 5)
	result := ProcessingResult{
		JobID:          job.JobID,
		OwnerID:        job.OwnerID,
		FolderID:       job.FolderID,
		SourceKind:     job.SourceKind,
		StageDurations: durations,
		CreatedAt:      time.Now().UTC(),
	}

	if constants.IsTextSource(job.SourceKind) {
		return o.processText(ctx, job, result)
	}
	return o.processImage(ctx, job, result)
}

// processText is the clipboard bypass. The raw text goes straight to
// analysis; quality assessment, selection and OCR never run.
func (o *Orchestrator) processText(ctx context.Context, job Job, result ProcessingResult) (ProcessingResult, error) {
	text := job.PayloadRef
	if o.normalizeClipboard {
		text = textnorm.Normalize(text)
	}
	result.FinalText = text
	result.Confidence = 100
	result.TextLength = len(text)
	result.WordCount = countWords(text)
	result.OCRLanguage = constants.ResolveLanguage(job.LanguageHint)

	o.analyze(ctx, job, &result)
	o.logger.Info("job.done",
		"job_id", job.JobID,
		"source_kind", job.SourceKind,
		"text_len", result.TextLength,
	)
	return result, nil
}

func (o *Orchestrator) processImage(ctx context.Context, job Job, result ProcessingResult) (ProcessingResult, error) {
	if o.executor == nil {
		// text-only deployments have no engine; an image job here is a
		// routing mistake
		return ProcessingResult{}, failStage(constants.StageExtracting,
			common.WrapError(common.ErrInvalidPayload, "image job on a text-only worker"))
	}

	// assessing
	start := time.Now()
	raw, err := o.loadPayload(job.PayloadRef)
	if err != nil {
		return ProcessingResult{}, failStage(constants.StageAssessing,
			common.WrapError(common.ErrDecode, "read payload "+job.PayloadRef))
	}
	img, err := imaging.Decode(raw)
	if err != nil {
		return ProcessingResult{}, failStage(constants.StageAssessing, err)
	}
	metrics := quality.Assess(img)
	result.QualityScore = metrics.Overall
	durationMS(result.StageDurations, constants.StageAssessing, start)

	// extracting
	start = time.Now()
	ids := strategy.Select(metrics, strategy.ID(job.ContentHint))
	languages := constants.ResolveLanguage(job.LanguageHint)
	attempts := o.executor.RunStrategies(ctx, img, ids, languages)
	result.AttemptedStrategies = ocr.AttemptedIDs(attempts)
	result.OCRLanguage = languages
	durationMS(result.StageDurations, constants.StageExtracting, start)

	// arbitrating
	start = time.Now()
	winner, ok := arbiter.SelectBest(ocr.Candidates(attempts))
	if ok {
		result.FinalText = textnorm.Normalize(winner.Text)
		result.Confidence = winner.Confidence
		result.StrategyUsed = winner.StrategyID
		if s, found := strategy.Lookup(winner.StrategyID); found {
			result.PreprocessingUsed = s.Description
		}
	}
	result.TextLength = len(result.FinalText)
	result.WordCount = countWords(result.FinalText)
	durationMS(result.StageDurations, constants.StageArbitrating, start)

	if !ok || result.FinalText == "" {
		o.logger.Warn("job.no_readable_text",
			"job_id", job.JobID,
			"quality_score", result.QualityScore,
			"attempted", len(result.AttemptedStrategies),
		)
	}

	o.analyze(ctx, job, &result)

	o.logger.Info("job.done",
		"job_id", job.JobID,
		"source_kind", job.SourceKind,
		"strategy_used", result.StrategyUsed,
		"confidence", result.Confidence,
		"quality_score", result.QualityScore,
		"text_len", result.TextLength,
	)
	return result, nil
}

// analyze fills the analysis fields, degrading to the placeholder when the
// collaborator errors or times out. It never fails the job.
func (o *Orchestrator) analyze(ctx context.Context, job Job, result *ProcessingResult) {
	start := time.Now()
	defer durationMS(result.StageDurations, constants.StageAnalyzing, start)

	if result.FinalText == "" {
		res := analysis.NoTextResult()
		result.AnalysisText = res.Text
		result.AnalysisModel = res.Model
		result.AnalysisCostTokens = res.TokensUsed
		return
	}

	res, err := o.analyzer.Analyze(ctx, result.FinalText, job.LanguageHint)
	if err != nil {
		o.logger.Warn("job.analysis_degraded",
			"job_id", job.JobID,
			"error", common.WrapError(common.ErrAnalysisUnavailable, err.Error()),
		)
		result.AnalysisText = o.placeholder
		result.AnalysisModel = "none"
		result.AnalysisCostTokens = 0
		return
	}
	result.AnalysisText = res.Text
	result.AnalysisModel = res.Model
	result.AnalysisCostTokens = res.TokensUsed
}

func countWords(s string) int {
	n := 0
	inWord := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			inWord = false
			continue
		}
		if !inWord {
			n++
			inWord = true
		}
	}
	return n
}

func durationMS(m map[string]int64, stage constants.Stage, start time.Time) {
	m[string(stage)] = time.Since(start).Milliseconds()
}
