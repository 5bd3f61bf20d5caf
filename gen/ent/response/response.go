// Code generated by ent, DO NOT EDIT.

package response

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the response type in the database.
	Label = "response"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldFolderID holds the string denoting the folder_id field in the database.
	FieldFolderID = "folder_id"
	// FieldSourceKind holds the string denoting the source_kind field in the database.
	FieldSourceKind = "source_kind"
	// FieldFinalText holds the string denoting the final_text field in the database.
	FieldFinalText = "final_text"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldStrategyUsed holds the string denoting the strategy_used field in the database.
	FieldStrategyUsed = "strategy_used"
	// FieldPreprocessingUsed holds the string denoting the preprocessing_used field in the database.
	FieldPreprocessingUsed = "preprocessing_used"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// FieldAttemptedStrategies holds the string denoting the attempted_strategies field in the database.
	FieldAttemptedStrategies = "attempted_strategies"
	// FieldAnalysisText holds the string denoting the analysis_text field in the database.
	FieldAnalysisText = "analysis_text"
	// FieldAnalysisCostTokens holds the string denoting the analysis_cost_tokens field in the database.
	FieldAnalysisCostTokens = "analysis_cost_tokens"
	// FieldAiModel holds the string denoting the ai_model field in the database.
	FieldAiModel = "ai_model"
	// FieldOcrLanguage holds the string denoting the ocr_language field in the database.
	FieldOcrLanguage = "ocr_language"
	// FieldTextLength holds the string denoting the text_length field in the database.
	FieldTextLength = "text_length"
	// FieldWordCount holds the string denoting the word_count field in the database.
	FieldWordCount = "word_count"
	// FieldStageDurations holds the string denoting the stage_durations field in the database.
	FieldStageDurations = "stage_durations"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the response in the database.
	Table = "responses"
)

// Columns holds all SQL columns for response fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldOwnerID,
	FieldFolderID,
	FieldSourceKind,
	FieldFinalText,
	FieldConfidence,
	FieldStrategyUsed,
	FieldPreprocessingUsed,
	FieldQualityScore,
	FieldAttemptedStrategies,
	FieldAnalysisText,
	FieldAnalysisCostTokens,
	FieldAiModel,
	FieldOcrLanguage,
	FieldTextLength,
	FieldWordCount,
	FieldStageDurations,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// JobIDValidator is a validator for the "job_id" field. It is called by the builders before save.
	JobIDValidator func(string) error
	// SourceKindValidator is a validator for the "source_kind" field. It is called by the builders before save.
	SourceKindValidator func(string) error
	// DefaultAnalysisCostTokens holds the default value on creation for the "analysis_cost_tokens" field.
	DefaultAnalysisCostTokens int
	// DefaultTextLength holds the default value on creation for the "text_length" field.
	DefaultTextLength int
	// DefaultWordCount holds the default value on creation for the "word_count" field.
	DefaultWordCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Response queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByFolderID orders the results by the folder_id field.
func ByFolderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFolderID, opts...).ToFunc()
}

// BySourceKind orders the results by the source_kind field.
func BySourceKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceKind, opts...).ToFunc()
}

// ByFinalText orders the results by the final_text field.
func ByFinalText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalText, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByStrategyUsed orders the results by the strategy_used field.
func ByStrategyUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStrategyUsed, opts...).ToFunc()
}

// ByPreprocessingUsed orders the results by the preprocessing_used field.
func ByPreprocessingUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreprocessingUsed, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
}

// ByAnalysisText orders the results by the analysis_text field.
func ByAnalysisText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisText, opts...).ToFunc()
}

// ByAnalysisCostTokens orders the results by the analysis_cost_tokens field.
func ByAnalysisCostTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisCostTokens, opts...).ToFunc()
}

// ByAiModel orders the results by the ai_model field.
func ByAiModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiModel, opts...).ToFunc()
}

// ByOcrLanguage orders the results by the ocr_language field.
func ByOcrLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrLanguage, opts...).ToFunc()
}

// ByTextLength orders the results by the text_length field.
func ByTextLength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextLength, opts...).ToFunc()
}

// ByWordCount orders the results by the word_count field.
func ByWordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
