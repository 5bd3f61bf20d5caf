package repository

import (
	"context"
	"log/slog"

	"github.com/calebmayer/textsnap/gen/ent"
	"github.com/calebmayer/textsnap/internal/common"
	"github.com/calebmayer/textsnap/internal/pipeline"
)

type ResponseRepository interface {
	Insert(ctx context.Context, result pipeline.ProcessingResult) (*ent.Response, error)
}

type responseRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewResponseRepository(entc *ent.Client, log *slog.Logger) ResponseRepository {
	return &responseRepo{ent: entc, log: log}
}

// Insert writes one row per completed job. The unique job_id constraint
// makes a replayed message a constraint error instead of a duplicate row.
func (r *responseRepo) Insert(ctx context.Context, result pipeline.ProcessingResult) (*ent.Response, error) {
	attempted := make([]string, 0, len(result.AttemptedStrategies))
	for _, id := range result.AttemptedStrategies {
		attempted = append(attempted, string(id))
	}

	row, err := r.ent.Response.
		Create().
		SetJobID(result.JobID).
		SetOwnerID(result.OwnerID).
		SetNillableFolderID(result.FolderID).
		SetSourceKind(string(result.SourceKind)).
		SetFinalText(result.FinalText).
		SetConfidence(result.Confidence).
		SetStrategyUsed(string(result.StrategyUsed)).
		SetPreprocessingUsed(result.PreprocessingUsed).
		SetQualityScore(result.QualityScore).
		SetAttemptedStrategies(attempted).
		SetAnalysisText(result.AnalysisText).
		SetAnalysisCostTokens(result.AnalysisCostTokens).
		SetAiModel(result.AnalysisModel).
		SetOcrLanguage(result.OCRLanguage).
		SetTextLength(result.TextLength).
		SetWordCount(result.WordCount).
		SetStageDurations(result.StageDurations).
		Save(ctx)
	if err != nil {
		r.log.Error("response insert failed", "job_id", result.JobID, "err", err)
		return nil, common.WrapError(common.ErrStorageWrite, "insert response")
	}
	r.log.Info("response stored",
		"job_id", result.JobID,
		"response_id", row.ID,
		"strategy_used", result.StrategyUsed,
		"text_length", result.TextLength,
	)
	return row, nil
}
