// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/calebmayer/textsnap/gen/ent/response"
	"github.com/google/uuid"
)

// Response is the model entity for the Response schema.
type Response struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID int `json:"owner_id,omitempty"`
	// FolderID holds the value of the "folder_id" field.
	FolderID *int `json:"folder_id,omitempty"`
	// SourceKind holds the value of the "source_kind" field.
	SourceKind string `json:"source_kind,omitempty"`
	// FinalText holds the value of the "final_text" field.
	FinalText string `json:"final_text,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// StrategyUsed holds the value of the "strategy_used" field.
	StrategyUsed string `json:"strategy_used,omitempty"`
	// PreprocessingUsed holds the value of the "preprocessing_used" field.
	PreprocessingUsed string `json:"preprocessing_used,omitempty"`
	// QualityScore holds the value of the "quality_score" field.
	QualityScore float64 `json:"quality_score,omitempty"`
	// AttemptedStrategies holds the value of the "attempted_strategies" field.
	AttemptedStrategies []string `json:"attempted_strategies,omitempty"`
	// AnalysisText holds the value of the "analysis_text" field.
	AnalysisText string `json:"analysis_text,omitempty"`
	// AnalysisCostTokens holds the value of the "analysis_cost_tokens" field.
	AnalysisCostTokens int `json:"analysis_cost_tokens,omitempty"`
	// AiModel holds the value of the "ai_model" field.
	AiModel string `json:"ai_model,omitempty"`
	// OcrLanguage holds the value of the "ocr_language" field.
	OcrLanguage string `json:"ocr_language,omitempty"`
	// TextLength holds the value of the "text_length" field.
	TextLength int `json:"text_length,omitempty"`
	// WordCount holds the value of the "word_count" field.
	WordCount int `json:"word_count,omitempty"`
	// StageDurations holds the value of the "stage_durations" field.
	StageDurations map[string]int64 `json:"stage_durations,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Response) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case response.FieldAttemptedStrategies, response.FieldStageDurations:
			values[i] = new([]byte)
		case response.FieldConfidence, response.FieldQualityScore:
			values[i] = new(sql.NullFloat64)
		case response.FieldOwnerID, response.FieldFolderID, response.FieldAnalysisCostTokens, response.FieldTextLength, response.FieldWordCount:
			values[i] = new(sql.NullInt64)
		case response.FieldJobID, response.FieldSourceKind, response.FieldFinalText, response.FieldStrategyUsed, response.FieldPreprocessingUsed, response.FieldAnalysisText, response.FieldAiModel, response.FieldOcrLanguage:
			values[i] = new(sql.NullString)
		case response.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case response.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Response fields.
func (r *Response) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case response.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				r.ID = *value
			}
		case response.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				r.JobID = value.String
			}
		case response.FieldOwnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				r.OwnerID = int(value.Int64)
			}
		case response.FieldFolderID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field folder_id", values[i])
			} else if value.Valid {
				r.FolderID = new(int)
				*r.FolderID = int(value.Int64)
			}
		case response.FieldSourceKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_kind", values[i])
			} else if value.Valid {
				r.SourceKind = value.String
			}
		case response.FieldFinalText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_text", values[i])
			} else if value.Valid {
				r.FinalText = value.String
			}
		case response.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				r.Confidence = value.Float64
			}
		case response.FieldStrategyUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy_used", values[i])
			} else if value.Valid {
				r.StrategyUsed = value.String
			}
		case response.FieldPreprocessingUsed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preprocessing_used", values[i])
			} else if value.Valid {
				r.PreprocessingUsed = value.String
			}
		case response.FieldQualityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_score", values[i])
			} else if value.Valid {
				r.QualityScore = value.Float64
			}
		case response.FieldAttemptedStrategies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field attempted_strategies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &r.AttemptedStrategies); err != nil {
					return fmt.Errorf("unmarshal field attempted_strategies: %w", err)
				}
			}
		case response.FieldAnalysisText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_text", values[i])
			} else if value.Valid {
				r.AnalysisText = value.String
			}
		case response.FieldAnalysisCostTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_cost_tokens", values[i])
			} else if value.Valid {
				r.AnalysisCostTokens = int(value.Int64)
			}
		case response.FieldAiModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_model", values[i])
			} else if value.Valid {
				r.AiModel = value.String
			}
		case response.FieldOcrLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ocr_language", values[i])
			} else if value.Valid {
				r.OcrLanguage = value.String
			}
		case response.FieldTextLength:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field text_length", values[i])
			} else if value.Valid {
				r.TextLength = int(value.Int64)
			}
		case response.FieldWordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_count", values[i])
			} else if value.Valid {
				r.WordCount = int(value.Int64)
			}
		case response.FieldStageDurations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stage_durations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &r.StageDurations); err != nil {
					return fmt.Errorf("unmarshal field stage_durations: %w", err)
				}
			}
		case response.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				r.CreatedAt = value.Time
			}
		default:
			r.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Response.
// This includes values selected through modifiers, order, etc.
func (r *Response) Value(name string) (ent.Value, error) {
	return r.selectValues.Get(name)
}

// Update returns a builder for updating this Response.
// Note that you need to call Response.Unwrap() before calling this method if this Response
// was returned from a transaction, and the transaction was committed or rolled back.
func (r *Response) Update() *ResponseUpdateOne {
	return NewResponseClient(r.config).UpdateOne(r)
}

// Unwrap unwraps the Response entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (r *Response) Unwrap() *Response {
	_tx, ok := r.config.driver.(*txDriver)
	if !ok {
		panic("ent: Response is not a transactional entity")
	}
	r.config.driver = _tx.drv
	return r
}

// String implements the fmt.Stringer.
func (r *Response) String() string {
	var builder strings.Builder
	builder.WriteString("Response(")
	builder.WriteString(fmt.Sprintf("id=%v, ", r.ID))
	builder.WriteString("job_id=")
	builder.WriteString(r.JobID)
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", r.OwnerID))
	builder.WriteString(", ")
	if v := r.FolderID; v != nil {
		builder.WriteString("folder_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source_kind=")
	builder.WriteString(r.SourceKind)
	builder.WriteString(", ")
	builder.WriteString("final_text=")
	builder.WriteString(r.FinalText)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", r.Confidence))
	builder.WriteString(", ")
	builder.WriteString("strategy_used=")
	builder.WriteString(r.StrategyUsed)
	builder.WriteString(", ")
	builder.WriteString("preprocessing_used=")
	builder.WriteString(r.PreprocessingUsed)
	builder.WriteString(", ")
	builder.WriteString("quality_score=")
	builder.WriteString(fmt.Sprintf("%v", r.QualityScore))
	builder.WriteString(", ")
	builder.WriteString("attempted_strategies=")
	builder.WriteString(fmt.Sprintf("%v", r.AttemptedStrategies))
	builder.WriteString(", ")
	builder.WriteString("analysis_text=")
	builder.WriteString(r.AnalysisText)
	builder.WriteString(", ")
	builder.WriteString("analysis_cost_tokens=")
	builder.WriteString(fmt.Sprintf("%v", r.AnalysisCostTokens))
	builder.WriteString(", ")
	builder.WriteString("ai_model=")
	builder.WriteString(r.AiModel)
	builder.WriteString(", ")
	builder.WriteString("ocr_language=")
	builder.WriteString(r.OcrLanguage)
	builder.WriteString(", ")
	builder.WriteString("text_length=")
	builder.WriteString(fmt.Sprintf("%v", r.TextLength))
	builder.WriteString(", ")
	builder.WriteString("word_count=")
	builder.WriteString(fmt.Sprintf("%v", r.WordCount))
	builder.WriteString(", ")
	builder.WriteString("stage_durations=")
	builder.WriteString(fmt.Sprintf("%v", r.StageDurations))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(r.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Responses is a parsable slice of Response.
type Responses []*Response
