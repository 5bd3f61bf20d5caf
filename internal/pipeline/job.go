package pipeline

import (
	"encoding/json"
	"time"

	"github.com/calebmayer/textsnap/constants"
	"github.com/calebmayer/textsnap/internal/common"
	"github.com/calebmayer/textsnap/internal/strategy"
)

// Job is the unit of work traveling through the queues. The payload fields
// are immutable once enqueued; workers only bump AttemptCount.
type Job struct {
	JobID        string               `json:"job_id"`
	SourceKind   constants.SourceKind `json:"source_kind"`
	PayloadRef   string               `json:"payload_ref"`
	OwnerID      int                  `json:"owner_id"`
	FolderID     *int                 `json:"folder_id"`
	LanguageHint string               `json:"language_hint"`
	ContentHint  string               `json:"content_hint,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	AttemptCount int                  `json:"attempt_count"`
}

// ParseJob decodes and validates a queue payload. A payload that does not
// pass here is dropped by the worker, never retried.
func ParseJob(payload string) (Job, error) {
	var j Job
	if err := json.Unmarshal([]byte(payload), &j); err != nil {
		return Job{}, common.WrapError(common.ErrInvalidPayload, "decode job envelope")
	}
	if err := j.Validate(); err != nil {
		return Job{}, err
	}
	if j.LanguageHint == "" {
		j.LanguageHint = constants.LanguageHintAuto
	}
	return j, nil
}

func (j Job) Validate() error {
	if j.JobID == "" {
		return common.WrapError(common.ErrInvalidPayload, "missing job_id")
	}
	if !constants.IsValidSourceKind(string(j.SourceKind)) {
		return common.WrapError(common.ErrInvalidPayload, "unknown source_kind "+string(j.SourceKind))
	}
	if j.PayloadRef == "" {
		return common.WrapError(common.ErrInvalidPayload, "missing payload_ref")
	}
	if j.ContentHint != "" && !strategy.IsValid(strategy.ID(j.ContentHint)) {
		return common.WrapError(common.ErrInvalidPayload, "unknown content_hint "+j.ContentHint)
	}
	return nil
}

func (j Job) Encode() (string, error) {
	b, err := json.Marshal(j)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ProcessingResult is the artifact handed to the storage sink. Created once
// by the orchestrator and written exactly once; never mutated afterward.
type ProcessingResult struct {
	JobID               string               `json:"job_id"`
	OwnerID             int                  `json:"owner_id"`
	FolderID            *int                 `json:"folder_id"`
	SourceKind          constants.SourceKind `json:"source_kind"`
	FinalText           string               `json:"final_text"`
	Confidence          float64              `json:"confidence"`
	StrategyUsed        strategy.ID          `json:"strategy_used"`
	PreprocessingUsed   string               `json:"preprocessing_used"`
	QualityScore        float64              `json:"quality_score"`
	AttemptedStrategies []strategy.ID        `json:"attempted_strategies"`
	AnalysisText        string               `json:"analysis_text"`
	AnalysisCostTokens  int                  `json:"analysis_cost_tokens"`
	AnalysisModel       string               `json:"ai_model"`
	OCRLanguage         string               `json:"ocr_language"`
	TextLength          int                  `json:"text_length"`
	WordCount           int                  `json:"word_count"`
	StageDurations      map[string]int64     `json:"stage_durations"` // stage name -> milliseconds
	CreatedAt           time.Time            `json:"created_at"`
}

func ParseResult(payload string) (ProcessingResult, error) {
	var r ProcessingResult
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return ProcessingResult{}, common.WrapError(common.ErrInvalidPayload, "decode processing result")
	}
	if r.JobID == "" {
		return ProcessingResult{}, common.WrapError(common.ErrInvalidPayload, "missing job_id")
	}
	return r, nil
}

func (r ProcessingResult) Encode() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
