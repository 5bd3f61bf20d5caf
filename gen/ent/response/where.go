// Code generated by ent, DO NOT EDIT.

package response

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/calebmayer/textsnap/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldJobID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldOwnerID, v))
}

// FolderID applies equality check predicate on the "folder_id" field. It's identical to FolderIDEQ.
func FolderID(v int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldFolderID, v))
}

// SourceKind applies equality check predicate on the "source_kind" field. It's identical to SourceKindEQ.
func SourceKind(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldSourceKind, v))
}

// FinalText applies equality check predicate on the "final_text" field. It's identical to FinalTextEQ.
func FinalText(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldFinalText, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldConfidence, v))
}

// StrategyUsed applies equality check predicate on the "strategy_used" field. It's identical to StrategyUsedEQ.
func StrategyUsed(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldStrategyUsed, v))
}

// PreprocessingUsed applies equality check predicate on the "preprocessing_used" field. It's identical to PreprocessingUsedEQ.
func PreprocessingUsed(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldPreprocessingUsed, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldQualityScore, v))
}

// AnalysisText applies equality check predicate on the "analysis_text" field. It's identical to AnalysisTextEQ.
func AnalysisText(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldAnalysisText, v))
}

// AnalysisCostTokens applies equality check predicate on the "analysis_cost_tokens" field. It's identical to AnalysisCostTokensEQ.
func AnalysisCostTokens(v int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldAnalysisCostTokens, v))
}

// AiModel applies equality check predicate on the "ai_model" field. It's identical to AiModelEQ.
func AiModel(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldAiModel, v))
}

// OcrLanguage applies equality check predicate on the "ocr_language" field. It's identical to OcrLanguageEQ.
func OcrLanguage(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldOcrLanguage, v))
}

// TextLength applies equality check predicate on the "text_length" field. It's identical to TextLengthEQ.
func TextLength(v int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldTextLength, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldWordCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldJobID, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v int) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...int) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...int) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v int) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v int) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v int) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v int) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldOwnerID, v))
}

// FolderIDEQ applies the EQ predicate on the "folder_id" field.
func FolderIDEQ(v int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldFolderID, v))
}

// FolderIDNEQ applies the NEQ predicate on the "folder_id" field.
func FolderIDNEQ(v int) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldFolderID, v))
}

// FolderIDIn applies the In predicate on the "folder_id" field.
func FolderIDIn(vs ...int) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldFolderID, vs...))
}

// FolderIDNotIn applies the NotIn predicate on the "folder_id" field.
func FolderIDNotIn(vs ...int) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldFolderID, vs...))
}

// FolderIDGT applies the GT predicate on the "folder_id" field.
func FolderIDGT(v int) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldFolderID, v))
}

// FolderIDGTE applies the GTE predicate on the "folder_id" field.
func FolderIDGTE(v int) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldFolderID, v))
}

// FolderIDLT applies the LT predicate on the "folder_id" field.
func FolderIDLT(v int) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldFolderID, v))
}

// FolderIDLTE applies the LTE predicate on the "folder_id" field.
func FolderIDLTE(v int) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldFolderID, v))
}

// FolderIDIsNil applies the IsNil predicate on the "folder_id" field.
func FolderIDIsNil() predicate.Response {
	return predicate.Response(sql.FieldIsNull(FieldFolderID))
}

// FolderIDNotNil applies the NotNil predicate on the "folder_id" field.
func FolderIDNotNil() predicate.Response {
	return predicate.Response(sql.FieldNotNull(FieldFolderID))
}

// SourceKindEQ applies the EQ predicate on the "source_kind" field.
func SourceKindEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldSourceKind, v))
}

// SourceKindNEQ applies the NEQ predicate on the "source_kind" field.
func SourceKindNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldSourceKind, v))
}

// SourceKindIn applies the In predicate on the "source_kind" field.
func SourceKindIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldSourceKind, vs...))
}

// SourceKindNotIn applies the NotIn predicate on the "source_kind" field.
func SourceKindNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldSourceKind, vs...))
}

// SourceKindGT applies the GT predicate on the "source_kind" field.
func SourceKindGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldSourceKind, v))
}

// SourceKindGTE applies the GTE predicate on the "source_kind" field.
func SourceKindGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldSourceKind, v))
}

// SourceKindLT applies the LT predicate on the "source_kind" field.
func SourceKindLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldSourceKind, v))
}

// SourceKindLTE applies the LTE predicate on the "source_kind" field.
func SourceKindLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldSourceKind, v))
}

// SourceKindContains applies the Contains predicate on the "source_kind" field.
func SourceKindContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldSourceKind, v))
}

// SourceKindHasPrefix applies the HasPrefix predicate on the "source_kind" field.
func SourceKindHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldSourceKind, v))
}

// SourceKindHasSuffix applies the HasSuffix predicate on the "source_kind" field.
func SourceKindHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldSourceKind, v))
}

// SourceKindEqualFold applies the EqualFold predicate on the "source_kind" field.
func SourceKindEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldSourceKind, v))
}

// SourceKindContainsFold applies the ContainsFold predicate on the "source_kind" field.
func SourceKindContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldSourceKind, v))
}

// FinalTextEQ applies the EQ predicate on the "final_text" field.
func FinalTextEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldFinalText, v))
}

// FinalTextNEQ applies the NEQ predicate on the "final_text" field.
func FinalTextNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldFinalText, v))
}

// FinalTextIn applies the In predicate on the "final_text" field.
func FinalTextIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldFinalText, vs...))
}

// FinalTextNotIn applies the NotIn predicate on the "final_text" field.
func FinalTextNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldFinalText, vs...))
}

// FinalTextGT applies the GT predicate on the "final_text" field.
func FinalTextGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldFinalText, v))
}

// FinalTextGTE applies the GTE predicate on the "final_text" field.
func FinalTextGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldFinalText, v))
}

// FinalTextLT applies the LT predicate on the "final_text" field.
func FinalTextLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldFinalText, v))
}

// FinalTextLTE applies the LTE predicate on the "final_text" field.
func FinalTextLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldFinalText, v))
}

// FinalTextContains applies the Contains predicate on the "final_text" field.
func FinalTextContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldFinalText, v))
}

// FinalTextHasPrefix applies the HasPrefix predicate on the "final_text" field.
func FinalTextHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldFinalText, v))
}

// FinalTextHasSuffix applies the HasSuffix predicate on the "final_text" field.
func FinalTextHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldFinalText, v))
}

// FinalTextEqualFold applies the EqualFold predicate on the "final_text" field.
func FinalTextEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldFinalText, v))
}

// FinalTextContainsFold applies the ContainsFold predicate on the "final_text" field.
func FinalTextContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldFinalText, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldConfidence, v))
}

// StrategyUsedEQ applies the EQ predicate on the "strategy_used" field.
func StrategyUsedEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldStrategyUsed, v))
}

// StrategyUsedNEQ applies the NEQ predicate on the "strategy_used" field.
func StrategyUsedNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldStrategyUsed, v))
}

// StrategyUsedIn applies the In predicate on the "strategy_used" field.
func StrategyUsedIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldStrategyUsed, vs...))
}

// StrategyUsedNotIn applies the NotIn predicate on the "strategy_used" field.
func StrategyUsedNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldStrategyUsed, vs...))
}

// StrategyUsedGT applies the GT predicate on the "strategy_used" field.
func StrategyUsedGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldStrategyUsed, v))
}

// StrategyUsedGTE applies the GTE predicate on the "strategy_used" field.
func StrategyUsedGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldStrategyUsed, v))
}

// StrategyUsedLT applies the LT predicate on the "strategy_used" field.
func StrategyUsedLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldStrategyUsed, v))
}

// StrategyUsedLTE applies the LTE predicate on the "strategy_used" field.
func StrategyUsedLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldStrategyUsed, v))
}

// StrategyUsedContains applies the Contains predicate on the "strategy_used" field.
func StrategyUsedContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldStrategyUsed, v))
}

// StrategyUsedHasPrefix applies the HasPrefix predicate on the "strategy_used" field.
func StrategyUsedHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldStrategyUsed, v))
}

// StrategyUsedHasSuffix applies the HasSuffix predicate on the "strategy_used" field.
func StrategyUsedHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldStrategyUsed, v))
}

// StrategyUsedIsNil applies the IsNil predicate on the "strategy_used" field.
func StrategyUsedIsNil() predicate.Response {
	return predicate.Response(sql.FieldIsNull(FieldStrategyUsed))
}

// StrategyUsedNotNil applies the NotNil predicate on the "strategy_used" field.
func StrategyUsedNotNil() predicate.Response {
	return predicate.Response(sql.FieldNotNull(FieldStrategyUsed))
}

// StrategyUsedEqualFold applies the EqualFold predicate on the "strategy_used" field.
func StrategyUsedEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldStrategyUsed, v))
}

// StrategyUsedContainsFold applies the ContainsFold predicate on the "strategy_used" field.
func StrategyUsedContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldStrategyUsed, v))
}

// PreprocessingUsedEQ applies the EQ predicate on the "preprocessing_used" field.
func PreprocessingUsedEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldPreprocessingUsed, v))
}

// PreprocessingUsedNEQ applies the NEQ predicate on the "preprocessing_used" field.
func PreprocessingUsedNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldPreprocessingUsed, v))
}

// PreprocessingUsedIn applies the In predicate on the "preprocessing_used" field.
func PreprocessingUsedIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldPreprocessingUsed, vs...))
}

// PreprocessingUsedNotIn applies the NotIn predicate on the "preprocessing_used" field.
func PreprocessingUsedNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldPreprocessingUsed, vs...))
}

// PreprocessingUsedGT applies the GT predicate on the "preprocessing_used" field.
func PreprocessingUsedGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldPreprocessingUsed, v))
}

// PreprocessingUsedGTE applies the GTE predicate on the "preprocessing_used" field.
func PreprocessingUsedGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldPreprocessingUsed, v))
}

// PreprocessingUsedLT applies the LT predicate on the "preprocessing_used" field.
func PreprocessingUsedLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldPreprocessingUsed, v))
}

// PreprocessingUsedLTE applies the LTE predicate on the "preprocessing_used" field.
func PreprocessingUsedLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldPreprocessingUsed, v))
}

// PreprocessingUsedContains applies the Contains predicate on the "preprocessing_used" field.
func PreprocessingUsedContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldPreprocessingUsed, v))
}

// PreprocessingUsedHasPrefix applies the HasPrefix predicate on the "preprocessing_used" field.
func PreprocessingUsedHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldPreprocessingUsed, v))
}

// PreprocessingUsedHasSuffix applies the HasSuffix predicate on the "preprocessing_used" field.
func PreprocessingUsedHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldPreprocessingUsed, v))
}

// PreprocessingUsedIsNil applies the IsNil predicate on the "preprocessing_used" field.
func PreprocessingUsedIsNil() predicate.Response {
	return predicate.Response(sql.FieldIsNull(FieldPreprocessingUsed))
}

// PreprocessingUsedNotNil applies the NotNil predicate on the "preprocessing_used" field.
func PreprocessingUsedNotNil() predicate.Response {
	return predicate.Response(sql.FieldNotNull(FieldPreprocessingUsed))
}

// PreprocessingUsedEqualFold applies the EqualFold predicate on the "preprocessing_used" field.
func PreprocessingUsedEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldPreprocessingUsed, v))
}

// PreprocessingUsedContainsFold applies the ContainsFold predicate on the "preprocessing_used" field.
func PreprocessingUsedContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldPreprocessingUsed, v))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v float64) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v float64) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldQualityScore, v))
}

// AttemptedStrategiesIsNil applies the IsNil predicate on the "attempted_strategies" field.
func AttemptedStrategiesIsNil() predicate.Response {
	return predicate.Response(sql.FieldIsNull(FieldAttemptedStrategies))
}

// AttemptedStrategiesNotNil applies the NotNil predicate on the "attempted_strategies" field.
func AttemptedStrategiesNotNil() predicate.Response {
	return predicate.Response(sql.FieldNotNull(FieldAttemptedStrategies))
}

// AnalysisTextEQ applies the EQ predicate on the "analysis_text" field.
func AnalysisTextEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldAnalysisText, v))
}

// AnalysisTextNEQ applies the NEQ predicate on the "analysis_text" field.
func AnalysisTextNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldAnalysisText, v))
}

// AnalysisTextIn applies the In predicate on the "analysis_text" field.
func AnalysisTextIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldAnalysisText, vs...))
}

// AnalysisTextNotIn applies the NotIn predicate on the "analysis_text" field.
func AnalysisTextNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldAnalysisText, vs...))
}

// AnalysisTextGT applies the GT predicate on the "analysis_text" field.
func AnalysisTextGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldAnalysisText, v))
}

// AnalysisTextGTE applies the GTE predicate on the "analysis_text" field.
func AnalysisTextGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldAnalysisText, v))
}

// AnalysisTextLT applies the LT predicate on the "analysis_text" field.
func AnalysisTextLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldAnalysisText, v))
}

// AnalysisTextLTE applies the LTE predicate on the "analysis_text" field.
func AnalysisTextLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldAnalysisText, v))
}

// AnalysisTextContains applies the Contains predicate on the "analysis_text" field.
func AnalysisTextContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldAnalysisText, v))
}

// AnalysisTextHasPrefix applies the HasPrefix predicate on the "analysis_text" field.
func AnalysisTextHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldAnalysisText, v))
}

// AnalysisTextHasSuffix applies the HasSuffix predicate on the "analysis_text" field.
func AnalysisTextHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldAnalysisText, v))
}

// AnalysisTextEqualFold applies the EqualFold predicate on the "analysis_text" field.
func AnalysisTextEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldAnalysisText, v))
}

// AnalysisTextContainsFold applies the ContainsFold predicate on the "analysis_text" field.
func AnalysisTextContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldAnalysisText, v))
}

// AnalysisCostTokensEQ applies the EQ predicate on the "analysis_cost_tokens" field.
func AnalysisCostTokensEQ(v int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldAnalysisCostTokens, v))
}

// AnalysisCostTokensNEQ applies the NEQ predicate on the "analysis_cost_tokens" field.
func AnalysisCostTokensNEQ(v int) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldAnalysisCostTokens, v))
}

// AnalysisCostTokensIn applies the In predicate on the "analysis_cost_tokens" field.
func AnalysisCostTokensIn(vs ...int) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldAnalysisCostTokens, vs...))
}

// AnalysisCostTokensNotIn applies the NotIn predicate on the "analysis_cost_tokens" field.
func AnalysisCostTokensNotIn(vs ...int) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldAnalysisCostTokens, vs...))
}

// AnalysisCostTokensGT applies the GT predicate on the "analysis_cost_tokens" field.
func AnalysisCostTokensGT(v int) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldAnalysisCostTokens, v))
}

// AnalysisCostTokensGTE applies the GTE predicate on the "analysis_cost_tokens" field.
func AnalysisCostTokensGTE(v int) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldAnalysisCostTokens, v))
}

// AnalysisCostTokensLT applies the LT predicate on the "analysis_cost_tokens" field.
func AnalysisCostTokensLT(v int) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldAnalysisCostTokens, v))
}

// AnalysisCostTokensLTE applies the LTE predicate on the "analysis_cost_tokens" field.
func AnalysisCostTokensLTE(v int) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldAnalysisCostTokens, v))
}

// AiModelEQ applies the EQ predicate on the "ai_model" field.
func AiModelEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldAiModel, v))
}

// AiModelNEQ applies the NEQ predicate on the "ai_model" field.
func AiModelNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldAiModel, v))
}

// AiModelIn applies the In predicate on the "ai_model" field.
func AiModelIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldAiModel, vs...))
}

// AiModelNotIn applies the NotIn predicate on the "ai_model" field.
func AiModelNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldAiModel, vs...))
}

// AiModelGT applies the GT predicate on the "ai_model" field.
func AiModelGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldAiModel, v))
}

// AiModelGTE applies the GTE predicate on the "ai_model" field.
func AiModelGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldAiModel, v))
}

// AiModelLT applies the LT predicate on the "ai_model" field.
func AiModelLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldAiModel, v))
}

// AiModelLTE applies the LTE predicate on the "ai_model" field.
func AiModelLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldAiModel, v))
}

// AiModelContains applies the Contains predicate on the "ai_model" field.
func AiModelContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldAiModel, v))
}

// AiModelHasPrefix applies the HasPrefix predicate on the "ai_model" field.
func AiModelHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldAiModel, v))
}

// AiModelHasSuffix applies the HasSuffix predicate on the "ai_model" field.
func AiModelHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldAiModel, v))
}

// AiModelIsNil applies the IsNil predicate on the "ai_model" field.
func AiModelIsNil() predicate.Response {
	return predicate.Response(sql.FieldIsNull(FieldAiModel))
}

// AiModelNotNil applies the NotNil predicate on the "ai_model" field.
func AiModelNotNil() predicate.Response {
	return predicate.Response(sql.FieldNotNull(FieldAiModel))
}

// AiModelEqualFold applies the EqualFold predicate on the "ai_model" field.
func AiModelEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldAiModel, v))
}

// AiModelContainsFold applies the ContainsFold predicate on the "ai_model" field.
func AiModelContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldAiModel, v))
}

// OcrLanguageEQ applies the EQ predicate on the "ocr_language" field.
func OcrLanguageEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldOcrLanguage, v))
}

// OcrLanguageNEQ applies the NEQ predicate on the "ocr_language" field.
func OcrLanguageNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldOcrLanguage, v))
}

// OcrLanguageIn applies the In predicate on the "ocr_language" field.
func OcrLanguageIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldOcrLanguage, vs...))
}

// OcrLanguageNotIn applies the NotIn predicate on the "ocr_language" field.
func OcrLanguageNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldOcrLanguage, vs...))
}

// OcrLanguageGT applies the GT predicate on the "ocr_language" field.
func OcrLanguageGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldOcrLanguage, v))
}

// OcrLanguageGTE applies the GTE predicate on the "ocr_language" field.
func OcrLanguageGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldOcrLanguage, v))
}

// OcrLanguageLT applies the LT predicate on the "ocr_language" field.
func OcrLanguageLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldOcrLanguage, v))
}

// OcrLanguageLTE applies the LTE predicate on the "ocr_language" field.
func OcrLanguageLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldOcrLanguage, v))
}

// OcrLanguageContains applies the Contains predicate on the "ocr_language" field.
func OcrLanguageContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldOcrLanguage, v))
}

// OcrLanguageHasPrefix applies the HasPrefix predicate on the "ocr_language" field.
func OcrLanguageHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldOcrLanguage, v))
}

// OcrLanguageHasSuffix applies the HasSuffix predicate on the "ocr_language" field.
func OcrLanguageHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldOcrLanguage, v))
}

// OcrLanguageIsNil applies the IsNil predicate on the "ocr_language" field.
func OcrLanguageIsNil() predicate.Response {
	return predicate.Response(sql.FieldIsNull(FieldOcrLanguage))
}

// OcrLanguageNotNil applies the NotNil predicate on the "ocr_language" field.
func OcrLanguageNotNil() predicate.Response {
	return predicate.Response(sql.FieldNotNull(FieldOcrLanguage))
}

// OcrLanguageEqualFold applies the EqualFold predicate on the "ocr_language" field.
func OcrLanguageEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldOcrLanguage, v))
}

// OcrLanguageContainsFold applies the ContainsFold predicate on the "ocr_language" field.
func OcrLanguageContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldOcrLanguage, v))
}

// TextLengthEQ applies the EQ predicate on the "text_length" field.
func TextLengthEQ(v int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldTextLength, v))
}

// TextLengthNEQ applies the NEQ predicate on the "text_length" field.
func TextLengthNEQ(v int) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldTextLength, v))
}

// TextLengthIn applies the In predicate on the "text_length" field.
func TextLengthIn(vs ...int) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldTextLength, vs...))
}

// TextLengthNotIn applies the NotIn predicate on the "text_length" field.
func TextLengthNotIn(vs ...int) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldTextLength, vs...))
}

// TextLengthGT applies the GT predicate on the "text_length" field.
func TextLengthGT(v int) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldTextLength, v))
}

// TextLengthGTE applies the GTE predicate on the "text_length" field.
func TextLengthGTE(v int) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldTextLength, v))
}

// TextLengthLT applies the LT predicate on the "text_length" field.
func TextLengthLT(v int) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldTextLength, v))
}

// TextLengthLTE applies the LTE predicate on the "text_length" field.
func TextLengthLTE(v int) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldTextLength, v))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldWordCount, v))
}

// StageDurationsIsNil applies the IsNil predicate on the "stage_durations" field.
func StageDurationsIsNil() predicate.Response {
	return predicate.Response(sql.FieldIsNull(FieldStageDurations))
}

// StageDurationsNotNil applies the NotNil predicate on the "stage_durations" field.
func StageDurationsNotNil() predicate.Response {
	return predicate.Response(sql.FieldNotNull(FieldStageDurations))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Response) predicate.Response {
	return predicate.Response(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Response) predicate.Response {
	return predicate.Response(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Response) predicate.Response {
	return predicate.Response(sql.NotPredicates(p))
}
