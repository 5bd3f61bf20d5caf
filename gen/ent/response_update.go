// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/calebmayer/textsnap/gen/ent/predicate"
	"github.com/calebmayer/textsnap/gen/ent/response"
)

// ResponseUpdate is the builder for updating Response entities.
type ResponseUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseMutation
}

// Where appends a list predicates to the ResponseUpdate builder.
func (ru *ResponseUpdate) Where(ps ...predicate.Response) *ResponseUpdate {
	ru.mutation.Where(ps...)
	return ru
}

// SetJobID sets the "job_id" field.
func (ru *ResponseUpdate) SetJobID(s string) *ResponseUpdate {
	ru.mutation.SetJobID(s)
	return ru
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillableJobID(s *string) *ResponseUpdate {
	if s != nil {
		ru.SetJobID(*s)
	}
	return ru
}

// SetOwnerID sets the "owner_id" field.
func (ru *ResponseUpdate) SetOwnerID(i int) *ResponseUpdate {
	ru.mutation.ResetOwnerID()
	ru.mutation.SetOwnerID(i)
	return ru
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillableOwnerID(i *int) *ResponseUpdate {
	if i != nil {
		ru.SetOwnerID(*i)
	}
	return ru
}

// AddOwnerID adds i to the "owner_id" field.
func (ru *ResponseUpdate) AddOwnerID(i int) *ResponseUpdate {
	ru.mutation.AddOwnerID(i)
	return ru
}

// SetFolderID sets the "folder_id" field.
func (ru *ResponseUpdate) SetFolderID(i int) *ResponseUpdate {
	ru.mutation.ResetFolderID()
	ru.mutation.SetFolderID(i)
	return ru
}

// SetNillableFolderID sets the "folder_id" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillableFolderID(i *int) *ResponseUpdate {
	if i != nil {
		ru.SetFolderID(*i)
	}
	return ru
}

// AddFolderID adds i to the "folder_id" field.
func (ru *ResponseUpdate) AddFolderID(i int) *ResponseUpdate {
	ru.mutation.AddFolderID(i)
	return ru
}

// ClearFolderID clears the value of the "folder_id" field.
func (ru *ResponseUpdate) ClearFolderID() *ResponseUpdate {
	ru.mutation.ClearFolderID()
	return ru
}

// SetSourceKind sets the "source_kind" field.
func (ru *ResponseUpdate) SetSourceKind(s string) *ResponseUpdate {
	ru.mutation.SetSourceKind(s)
	return ru
}

// SetNillableSourceKind sets the "source_kind" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillableSourceKind(s *string) *ResponseUpdate {
	if s != nil {
		ru.SetSourceKind(*s)
	}
	return ru
}

// SetFinalText sets the "final_text" field.
func (ru *ResponseUpdate) SetFinalText(s string) *ResponseUpdate {
	ru.mutation.SetFinalText(s)
	return ru
}

// SetNillableFinalText sets the "final_text" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillableFinalText(s *string) *ResponseUpdate {
	if s != nil {
		ru.SetFinalText(*s)
	}
	return ru
}

// SetConfidence sets the "confidence" field.
func (ru *ResponseUpdate) SetConfidence(f float64) *ResponseUpdate {
	ru.mutation.ResetConfidence()
	ru.mutation.SetConfidence(f)
	return ru
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillableConfidence(f *float64) *ResponseUpdate {
	if f != nil {
		ru.SetConfidence(*f)
	}
	return ru
}

// AddConfidence adds f to the "confidence" field.
func (ru *ResponseUpdate) AddConfidence(f float64) *ResponseUpdate {
	ru.mutation.AddConfidence(f)
	return ru
}

// SetStrategyUsed sets the "strategy_used" field.
func (ru *ResponseUpdate) SetStrategyUsed(s string) *ResponseUpdate {
	ru.mutation.SetStrategyUsed(s)
	return ru
}

// SetNillableStrategyUsed sets the "strategy_used" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillableStrategyUsed(s *string) *ResponseUpdate {
	if s != nil {
		ru.SetStrategyUsed(*s)
	}
	return ru
}

// ClearStrategyUsed clears the value of the "strategy_used" field.
func (ru *ResponseUpdate) ClearStrategyUsed() *ResponseUpdate {
	ru.mutation.ClearStrategyUsed()
	return ru
}

// SetPreprocessingUsed sets the "preprocessing_used" field.
func (ru *ResponseUpdate) SetPreprocessingUsed(s string) *ResponseUpdate {
	ru.mutation.SetPreprocessingUsed(s)
	return ru
}

// SetNillablePreprocessingUsed sets the "preprocessing_used" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillablePreprocessingUsed(s *string) *ResponseUpdate {
	if s != nil {
		ru.SetPreprocessingUsed(*s)
	}
	return ru
}

// ClearPreprocessingUsed clears the value of the "preprocessing_used" field.
func (ru *ResponseUpdate) ClearPreprocessingUsed() *ResponseUpdate {
	ru.mutation.ClearPreprocessingUsed()
	return ru
}

// SetQualityScore sets the "quality_score" field.
func (ru *ResponseUpdate) SetQualityScore(f float64) *ResponseUpdate {
	ru.mutation.ResetQualityScore()
	ru.mutation.SetQualityScore(f)
	return ru
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillableQualityScore(f *float64) *ResponseUpdate {
	if f != nil {
		ru.SetQualityScore(*f)
	}
	return ru
}

// AddQualityScore adds f to the "quality_score" field.
func (ru *ResponseUpdate) AddQualityScore(f float64) *ResponseUpdate {
	ru.mutation.AddQualityScore(f)
	return ru
}

// SetAttemptedStrategies sets the "attempted_strategies" field.
func (ru *ResponseUpdate) SetAttemptedStrategies(s []string) *ResponseUpdate {
	ru.mutation.SetAttemptedStrategies(s)
	return ru
}

// AppendAttemptedStrategies appends s to the "attempted_strategies" field.
func (ru *ResponseUpdate) AppendAttemptedStrategies(s []string) *ResponseUpdate {
	ru.mutation.AppendAttemptedStrategies(s)
	return ru
}

// ClearAttemptedStrategies clears the value of the "attempted_strategies" field.
func (ru *ResponseUpdate) ClearAttemptedStrategies() *ResponseUpdate {
	ru.mutation.ClearAttemptedStrategies()
	return ru
}

// SetAnalysisText sets the "analysis_text" field.
func (ru *ResponseUpdate) SetAnalysisText(s string) *ResponseUpdate {
	ru.mutation.SetAnalysisText(s)
	return ru
}

// SetNillableAnalysisText sets the "analysis_text" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillableAnalysisText(s *string) *ResponseUpdate {
	if s != nil {
		ru.SetAnalysisText(*s)
	}
	return ru
}

// SetAnalysisCostTokens sets the "analysis_cost_tokens" field.
func (ru *ResponseUpdate) SetAnalysisCostTokens(i int) *ResponseUpdate {
	ru.mutation.ResetAnalysisCostTokens()
	ru.mutation.SetAnalysisCostTokens(i)
	return ru
}

// SetNillableAnalysisCostTokens sets the "analysis_cost_tokens" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillableAnalysisCostTokens(i *int) *ResponseUpdate {
	if i != nil {
		ru.SetAnalysisCostTokens(*i)
	}
	return ru
}

// AddAnalysisCostTokens adds i to the "analysis_cost_tokens" field.
func (ru *ResponseUpdate) AddAnalysisCostTokens(i int) *ResponseUpdate {
	ru.mutation.AddAnalysisCostTokens(i)
	return ru
}

// SetAiModel sets the "ai_model" field.
func (ru *ResponseUpdate) SetAiModel(s string) *ResponseUpdate {
	ru.mutation.SetAiModel(s)
	return ru
}

// SetNillableAiModel sets the "ai_model" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillableAiModel(s *string) *ResponseUpdate {
	if s != nil {
		ru.SetAiModel(*s)
	}
	return ru
}

// ClearAiModel clears the value of the "ai_model" field.
func (ru *ResponseUpdate) ClearAiModel() *ResponseUpdate {
	ru.mutation.ClearAiModel()
	return ru
}

// SetOcrLanguage sets the "ocr_language" field.
func (ru *ResponseUpdate) SetOcrLanguage(s string) *ResponseUpdate {
	ru.mutation.SetOcrLanguage(s)
	return ru
}

// SetNillableOcrLanguage sets the "ocr_language" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillableOcrLanguage(s *string) *ResponseUpdate {
	if s != nil {
		ru.SetOcrLanguage(*s)
	}
	return ru
}

// ClearOcrLanguage clears the value of the "ocr_language" field.
func (ru *ResponseUpdate) ClearOcrLanguage() *ResponseUpdate {
	ru.mutation.ClearOcrLanguage()
	return ru
}

// SetTextLength sets the "text_length" field.
func (ru *ResponseUpdate) SetTextLength(i int) *ResponseUpdate {
	ru.mutation.ResetTextLength()
	ru.mutation.SetTextLength(i)
	return ru
}

// SetNillableTextLength sets the "text_length" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillableTextLength(i *int) *ResponseUpdate {
	if i != nil {
		ru.SetTextLength(*i)
	}
	return ru
}

// AddTextLength adds i to the "text_length" field.
func (ru *ResponseUpdate) AddTextLength(i int) *ResponseUpdate {
	ru.mutation.AddTextLength(i)
	return ru
}

// SetWordCount sets the "word_count" field.
func (ru *ResponseUpdate) SetWordCount(i int) *ResponseUpdate {
	ru.mutation.ResetWordCount()
	ru.mutation.SetWordCount(i)
	return ru
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillableWordCount(i *int) *ResponseUpdate {
	if i != nil {
		ru.SetWordCount(*i)
	}
	return ru
}

// AddWordCount adds i to the "word_count" field.
func (ru *ResponseUpdate) AddWordCount(i int) *ResponseUpdate {
	ru.mutation.AddWordCount(i)
	return ru
}

// SetStageDurations sets the "stage_durations" field.
func (ru *ResponseUpdate) SetStageDurations(m map[string]int64) *ResponseUpdate {
	ru.mutation.SetStageDurations(m)
	return ru
}

// ClearStageDurations clears the value of the "stage_durations" field.
func (ru *ResponseUpdate) ClearStageDurations() *ResponseUpdate {
	ru.mutation.ClearStageDurations()
	return ru
}

// SetCreatedAt sets the "created_at" field.
func (ru *ResponseUpdate) SetCreatedAt(t time.Time) *ResponseUpdate {
	ru.mutation.SetCreatedAt(t)
	return ru
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ru *ResponseUpdate) SetNillableCreatedAt(t *time.Time) *ResponseUpdate {
	if t != nil {
		ru.SetCreatedAt(*t)
	}
	return ru
}

// Mutation returns the ResponseMutation object of the builder.
func (ru *ResponseUpdate) Mutation() *ResponseMutation {
	return ru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ru *ResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ru.sqlSave, ru.mutation, ru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ru *ResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := ru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ru *ResponseUpdate) Exec(ctx context.Context) error {
	_, err := ru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ru *ResponseUpdate) ExecX(ctx context.Context) {
	if err := ru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ru *ResponseUpdate) check() error {
	if v, ok := ru.mutation.JobID(); ok {
		if err := response.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "Response.job_id": %w`, err)}
		}
	}
	if v, ok := ru.mutation.SourceKind(); ok {
		if err := response.SourceKindValidator(v); err != nil {
			return &ValidationError{Name: "source_kind", err: fmt.Errorf(`ent: validator failed for field "Response.source_kind": %w`, err)}
		}
	}
	return nil
}

func (ru *ResponseUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(response.Table, response.Columns, sqlgraph.NewFieldSpec(response.FieldID, field.TypeUUID))
	if ps := ru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ru.mutation.JobID(); ok {
		_spec.SetField(response.FieldJobID, field.TypeString, value)
	}
	if value, ok := ru.mutation.OwnerID(); ok {
		_spec.SetField(response.FieldOwnerID, field.TypeInt, value)
	}
	if value, ok := ru.mutation.AddedOwnerID(); ok {
		_spec.AddField(response.FieldOwnerID, field.TypeInt, value)
	}
	if value, ok := ru.mutation.FolderID(); ok {
		_spec.SetField(response.FieldFolderID, field.TypeInt, value)
	}
	if value, ok := ru.mutation.AddedFolderID(); ok {
		_spec.AddField(response.FieldFolderID, field.TypeInt, value)
	}
	if ru.mutation.FolderIDCleared() {
		_spec.ClearField(response.FieldFolderID, field.TypeInt)
	}
	if value, ok := ru.mutation.SourceKind(); ok {
		_spec.SetField(response.FieldSourceKind, field.TypeString, value)
	}
	if value, ok := ru.mutation.FinalText(); ok {
		_spec.SetField(response.FieldFinalText, field.TypeString, value)
	}
	if value, ok := ru.mutation.Confidence(); ok {
		_spec.SetField(response.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := ru.mutation.AddedConfidence(); ok {
		_spec.AddField(response.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := ru.mutation.StrategyUsed(); ok {
		_spec.SetField(response.FieldStrategyUsed, field.TypeString, value)
	}
	if ru.mutation.StrategyUsedCleared() {
		_spec.ClearField(response.FieldStrategyUsed, field.TypeString)
	}
	if value, ok := ru.mutation.PreprocessingUsed(); ok {
		_spec.SetField(response.FieldPreprocessingUsed, field.TypeString, value)
	}
	if ru.mutation.PreprocessingUsedCleared() {
		_spec.ClearField(response.FieldPreprocessingUsed, field.TypeString)
	}
	if value, ok := ru.mutation.QualityScore(); ok {
		_spec.SetField(response.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := ru.mutation.AddedQualityScore(); ok {
		_spec.AddField(response.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := ru.mutation.AttemptedStrategies(); ok {
		_spec.SetField(response.FieldAttemptedStrategies, field.TypeJSON, value)
	}
	if value, ok := ru.mutation.AppendedAttemptedStrategies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, response.FieldAttemptedStrategies, value)
		})
	}
	if ru.mutation.AttemptedStrategiesCleared() {
		_spec.ClearField(response.FieldAttemptedStrategies, field.TypeJSON)
	}
	if value, ok := ru.mutation.AnalysisText(); ok {
		_spec.SetField(response.FieldAnalysisText, field.TypeString, value)
	}
	if value, ok := ru.mutation.AnalysisCostTokens(); ok {
		_spec.SetField(response.FieldAnalysisCostTokens, field.TypeInt, value)
	}
	if value, ok := ru.mutation.AddedAnalysisCostTokens(); ok {
		_spec.AddField(response.FieldAnalysisCostTokens, field.TypeInt, value)
	}
	if value, ok := ru.mutation.AiModel(); ok {
		_spec.SetField(response.FieldAiModel, field.TypeString, value)
	}
	if ru.mutation.AiModelCleared() {
		_spec.ClearField(response.FieldAiModel, field.TypeString)
	}
	if value, ok := ru.mutation.OcrLanguage(); ok {
		_spec.SetField(response.FieldOcrLanguage, field.TypeString, value)
	}
	if ru.mutation.OcrLanguageCleared() {
		_spec.ClearField(response.FieldOcrLanguage, field.TypeString)
	}
	if value, ok := ru.mutation.TextLength(); ok {
		_spec.SetField(response.FieldTextLength, field.TypeInt, value)
	}
	if value, ok := ru.mutation.AddedTextLength(); ok {
		_spec.AddField(response.FieldTextLength, field.TypeInt, value)
	}
	if value, ok := ru.mutation.WordCount(); ok {
		_spec.SetField(response.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := ru.mutation.AddedWordCount(); ok {
		_spec.AddField(response.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := ru.mutation.StageDurations(); ok {
		_spec.SetField(response.FieldStageDurations, field.TypeJSON, value)
	}
	if ru.mutation.StageDurationsCleared() {
		_spec.ClearField(response.FieldStageDurations, field.TypeJSON)
	}
	if value, ok := ru.mutation.CreatedAt(); ok {
		_spec.SetField(response.FieldCreatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{response.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ru.mutation.done = true
	return n, nil
}

// ResponseUpdateOne is the builder for updating a single Response entity.
type ResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseMutation
}

// SetJobID sets the "job_id" field.
func (ruo *ResponseUpdateOne) SetJobID(s string) *ResponseUpdateOne {
	ruo.mutation.SetJobID(s)
	return ruo
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillableJobID(s *string) *ResponseUpdateOne {
	if s != nil {
		ruo.SetJobID(*s)
	}
	return ruo
}

// SetOwnerID sets the "owner_id" field.
func (ruo *ResponseUpdateOne) SetOwnerID(i int) *ResponseUpdateOne {
	ruo.mutation.ResetOwnerID()
	ruo.mutation.SetOwnerID(i)
	return ruo
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillableOwnerID(i *int) *ResponseUpdateOne {
	if i != nil {
		ruo.SetOwnerID(*i)
	}
	return ruo
}

// AddOwnerID adds i to the "owner_id" field.
func (ruo *ResponseUpdateOne) AddOwnerID(i int) *ResponseUpdateOne {
	ruo.mutation.AddOwnerID(i)
	return ruo
}

// SetFolderID sets the "folder_id" field.
func (ruo *ResponseUpdateOne) SetFolderID(i int) *ResponseUpdateOne {
	ruo.mutation.ResetFolderID()
	ruo.mutation.SetFolderID(i)
	return ruo
}

// SetNillableFolderID sets the "folder_id" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillableFolderID(i *int) *ResponseUpdateOne {
	if i != nil {
		ruo.SetFolderID(*i)
	}
	return ruo
}

// AddFolderID adds i to the "folder_id" field.
func (ruo *ResponseUpdateOne) AddFolderID(i int) *ResponseUpdateOne {
	ruo.mutation.AddFolderID(i)
	return ruo
}

// ClearFolderID clears the value of the "folder_id" field.
func (ruo *ResponseUpdateOne) ClearFolderID() *ResponseUpdateOne {
	ruo.mutation.ClearFolderID()
	return ruo
}

// SetSourceKind sets the "source_kind" field.
func (ruo *ResponseUpdateOne) SetSourceKind(s string) *ResponseUpdateOne {
	ruo.mutation.SetSourceKind(s)
	return ruo
}

// SetNillableSourceKind sets the "source_kind" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillableSourceKind(s *string) *ResponseUpdateOne {
	if s != nil {
		ruo.SetSourceKind(*s)
	}
	return ruo
}

// SetFinalText sets the "final_text" field.
func (ruo *ResponseUpdateOne) SetFinalText(s string) *ResponseUpdateOne {
	ruo.mutation.SetFinalText(s)
	return ruo
}

// SetNillableFinalText sets the "final_text" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillableFinalText(s *string) *ResponseUpdateOne {
	if s != nil {
		ruo.SetFinalText(*s)
	}
	return ruo
}

// SetConfidence sets the "confidence" field.
func (ruo *ResponseUpdateOne) SetConfidence(f float64) *ResponseUpdateOne {
	ruo.mutation.ResetConfidence()
	ruo.mutation.SetConfidence(f)
	return ruo
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillableConfidence(f *float64) *ResponseUpdateOne {
	if f != nil {
		ruo.SetConfidence(*f)
	}
	return ruo
}

// AddConfidence adds f to the "confidence" field.
func (ruo *ResponseUpdateOne) AddConfidence(f float64) *ResponseUpdateOne {
	ruo.mutation.AddConfidence(f)
	return ruo
}

// SetStrategyUsed sets the "strategy_used" field.
func (ruo *ResponseUpdateOne) SetStrategyUsed(s string) *ResponseUpdateOne {
	ruo.mutation.SetStrategyUsed(s)
	return ruo
}

// SetNillableStrategyUsed sets the "strategy_used" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillableStrategyUsed(s *string) *ResponseUpdateOne {
	if s != nil {
		ruo.SetStrategyUsed(*s)
	}
	return ruo
}

// ClearStrategyUsed clears the value of the "strategy_used" field.
func (ruo *ResponseUpdateOne) ClearStrategyUsed() *ResponseUpdateOne {
	ruo.mutation.ClearStrategyUsed()
	return ruo
}

// SetPreprocessingUsed sets the "preprocessing_used" field.
func (ruo *ResponseUpdateOne) SetPreprocessingUsed(s string) *ResponseUpdateOne {
	ruo.mutation.SetPreprocessingUsed(s)
	return ruo
}

// SetNillablePreprocessingUsed sets the "preprocessing_used" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillablePreprocessingUsed(s *string) *ResponseUpdateOne {
	if s != nil {
		ruo.SetPreprocessingUsed(*s)
	}
	return ruo
}

// ClearPreprocessingUsed clears the value of the "preprocessing_used" field.
func (ruo *ResponseUpdateOne) ClearPreprocessingUsed() *ResponseUpdateOne {
	ruo.mutation.ClearPreprocessingUsed()
	return ruo
}

// SetQualityScore sets the "quality_score" field.
func (ruo *ResponseUpdateOne) SetQualityScore(f float64) *ResponseUpdateOne {
	ruo.mutation.ResetQualityScore()
	ruo.mutation.SetQualityScore(f)
	return ruo
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillableQualityScore(f *float64) *ResponseUpdateOne {
	if f != nil {
		ruo.SetQualityScore(*f)
	}
	return ruo
}

// AddQualityScore adds f to the "quality_score" field.
func (ruo *ResponseUpdateOne) AddQualityScore(f float64) *ResponseUpdateOne {
	ruo.mutation.AddQualityScore(f)
	return ruo
}

// SetAttemptedStrategies sets the "attempted_strategies" field.
func (ruo *ResponseUpdateOne) SetAttemptedStrategies(s []string) *ResponseUpdateOne {
	ruo.mutation.SetAttemptedStrategies(s)
	return ruo
}

// AppendAttemptedStrategies appends s to the "attempted_strategies" field.
func (ruo *ResponseUpdateOne) AppendAttemptedStrategies(s []string) *ResponseUpdateOne {
	ruo.mutation.AppendAttemptedStrategies(s)
	return ruo
}

// ClearAttemptedStrategies clears the value of the "attempted_strategies" field.
func (ruo *ResponseUpdateOne) ClearAttemptedStrategies() *ResponseUpdateOne {
	ruo.mutation.ClearAttemptedStrategies()
	return ruo
}

// SetAnalysisText sets the "analysis_text" field.
func (ruo *ResponseUpdateOne) SetAnalysisText(s string) *ResponseUpdateOne {
	ruo.mutation.SetAnalysisText(s)
	return ruo
}

// SetNillableAnalysisText sets the "analysis_text" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillableAnalysisText(s *string) *ResponseUpdateOne {
	if s != nil {
		ruo.SetAnalysisText(*s)
	}
	return ruo
}

// SetAnalysisCostTokens sets the "analysis_cost_tokens" field.
func (ruo *ResponseUpdateOne) SetAnalysisCostTokens(i int) *ResponseUpdateOne {
	ruo.mutation.ResetAnalysisCostTokens()
	ruo.mutation.SetAnalysisCostTokens(i)
	return ruo
}

// SetNillableAnalysisCostTokens sets the "analysis_cost_tokens" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillableAnalysisCostTokens(i *int) *ResponseUpdateOne {
	if i != nil {
		ruo.SetAnalysisCostTokens(*i)
	}
	return ruo
}

// AddAnalysisCostTokens adds i to the "analysis_cost_tokens" field.
func (ruo *ResponseUpdateOne) AddAnalysisCostTokens(i int) *ResponseUpdateOne {
	ruo.mutation.AddAnalysisCostTokens(i)
	return ruo
}

// SetAiModel sets the "ai_model" field.
func (ruo *ResponseUpdateOne) SetAiModel(s string) *ResponseUpdateOne {
	ruo.mutation.SetAiModel(s)
	return ruo
}

// SetNillableAiModel sets the "ai_model" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillableAiModel(s *string) *ResponseUpdateOne {
	if s != nil {
		ruo.SetAiModel(*s)
	}
	return ruo
}

// ClearAiModel clears the value of the "ai_model" field.
func (ruo *ResponseUpdateOne) ClearAiModel() *ResponseUpdateOne {
	ruo.mutation.ClearAiModel()
	return ruo
}

// SetOcrLanguage sets the "ocr_language" field.
func (ruo *ResponseUpdateOne) SetOcrLanguage(s string) *ResponseUpdateOne {
	ruo.mutation.SetOcrLanguage(s)
	return ruo
}

// SetNillableOcrLanguage sets the "ocr_language" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillableOcrLanguage(s *string) *ResponseUpdateOne {
	if s != nil {
		ruo.SetOcrLanguage(*s)
	}
	return ruo
}

// ClearOcrLanguage clears the value of the "ocr_language" field.
func (ruo *ResponseUpdateOne) ClearOcrLanguage() *ResponseUpdateOne {
	ruo.mutation.ClearOcrLanguage()
	return ruo
}

// SetTextLength sets the "text_length" field.
func (ruo *ResponseUpdateOne) SetTextLength(i int) *ResponseUpdateOne {
	ruo.mutation.ResetTextLength()
	ruo.mutation.SetTextLength(i)
	return ruo
}

// SetNillableTextLength sets the "text_length" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillableTextLength(i *int) *ResponseUpdateOne {
	if i != nil {
		ruo.SetTextLength(*i)
	}
	return ruo
}

// AddTextLength adds i to the "text_length" field.
func (ruo *ResponseUpdateOne) AddTextLength(i int) *ResponseUpdateOne {
	ruo.mutation.AddTextLength(i)
	return ruo
}

// SetWordCount sets the "word_count" field.
func (ruo *ResponseUpdateOne) SetWordCount(i int) *ResponseUpdateOne {
	ruo.mutation.ResetWordCount()
	ruo.mutation.SetWordCount(i)
	return ruo
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillableWordCount(i *int) *ResponseUpdateOne {
	if i != nil {
		ruo.SetWordCount(*i)
	}
	return ruo
}

// AddWordCount adds i to the "word_count" field.
func (ruo *ResponseUpdateOne) AddWordCount(i int) *ResponseUpdateOne {
	ruo.mutation.AddWordCount(i)
	return ruo
}

// SetStageDurations sets the "stage_durations" field.
func (ruo *ResponseUpdateOne) SetStageDurations(m map[string]int64) *ResponseUpdateOne {
	ruo.mutation.SetStageDurations(m)
	return ruo
}

// ClearStageDurations clears the value of the "stage_durations" field.
func (ruo *ResponseUpdateOne) ClearStageDurations() *ResponseUpdateOne {
	ruo.mutation.ClearStageDurations()
	return ruo
}

// SetCreatedAt sets the "created_at" field.
func (ruo *ResponseUpdateOne) SetCreatedAt(t time.Time) *ResponseUpdateOne {
	ruo.mutation.SetCreatedAt(t)
	return ruo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ruo *ResponseUpdateOne) SetNillableCreatedAt(t *time.Time) *ResponseUpdateOne {
	if t != nil {
		ruo.SetCreatedAt(*t)
	}
	return ruo
}

// Mutation returns the ResponseMutation object of the builder.
func (ruo *ResponseUpdateOne) Mutation() *ResponseMutation {
	return ruo.mutation
}

// Where appends a list predicates to the ResponseUpdate builder.
func (ruo *ResponseUpdateOne) Where(ps ...predicate.Response) *ResponseUpdateOne {
	ruo.mutation.Where(ps...)
	return ruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ruo *ResponseUpdateOne) Select(field string, fields ...string) *ResponseUpdateOne {
	ruo.fields = append([]string{field}, fields...)
	return ruo
}

// Save executes the query and returns the updated Response entity.
func (ruo *ResponseUpdateOne) Save(ctx context.Context) (*Response, error) {
	return withHooks(ctx, ruo.sqlSave, ruo.mutation, ruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ruo *ResponseUpdateOne) SaveX(ctx context.Context) *Response {
	node, err := ruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ruo *ResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := ruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ruo *ResponseUpdateOne) ExecX(ctx context.Context) {
	if err := ruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ruo *ResponseUpdateOne) check() error {
	if v, ok := ruo.mutation.JobID(); ok {
		if err := response.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "Response.job_id": %w`, err)}
		}
	}
	if v, ok := ruo.mutation.SourceKind(); ok {
		if err := response.SourceKindValidator(v); err != nil {
			return &ValidationError{Name: "source_kind", err: fmt.Errorf(`ent: validator failed for field "Response.source_kind": %w`, err)}
		}
	}
	return nil
}

func (ruo *ResponseUpdateOne) sqlSave(ctx context.Context) (_node *Response, err error) {
	if err := ruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(response.Table, response.Columns, sqlgraph.NewFieldSpec(response.FieldID, field.TypeUUID))
	id, ok := ruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Response.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, response.FieldID)
		for _, f := range fields {
			if !response.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != response.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ruo.mutation.JobID(); ok {
		_spec.SetField(response.FieldJobID, field.TypeString, value)
	}
	if value, ok := ruo.mutation.OwnerID(); ok {
		_spec.SetField(response.FieldOwnerID, field.TypeInt, value)
	}
	if value, ok := ruo.mutation.AddedOwnerID(); ok {
		_spec.AddField(response.FieldOwnerID, field.TypeInt, value)
	}
	if value, ok := ruo.mutation.FolderID(); ok {
		_spec.SetField(response.FieldFolderID, field.TypeInt, value)
	}
	if value, ok := ruo.mutation.AddedFolderID(); ok {
		_spec.AddField(response.FieldFolderID, field.TypeInt, value)
	}
	if ruo.mutation.FolderIDCleared() {
		_spec.ClearField(response.FieldFolderID, field.TypeInt)
	}
	if value, ok := ruo.mutation.SourceKind(); ok {
		_spec.SetField(response.FieldSourceKind, field.TypeString, value)
	}
	if value, ok := ruo.mutation.FinalText(); ok {
		_spec.SetField(response.FieldFinalText, field.TypeString, value)
	}
	if value, ok := ruo.mutation.Confidence(); ok {
		_spec.SetField(response.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := ruo.mutation.AddedConfidence(); ok {
		_spec.AddField(response.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := ruo.mutation.StrategyUsed(); ok {
		_spec.SetField(response.FieldStrategyUsed, field.TypeString, value)
	}
	if ruo.mutation.StrategyUsedCleared() {
		_spec.ClearField(response.FieldStrategyUsed, field.TypeString)
	}
	if value, ok := ruo.mutation.PreprocessingUsed(); ok {
		_spec.SetField(response.FieldPreprocessingUsed, field.TypeString, value)
	}
	if ruo.mutation.PreprocessingUsedCleared() {
		_spec.ClearField(response.FieldPreprocessingUsed, field.TypeString)
	}
	if value, ok := ruo.mutation.QualityScore(); ok {
		_spec.SetField(response.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := ruo.mutation.AddedQualityScore(); ok {
		_spec.AddField(response.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := ruo.mutation.AttemptedStrategies(); ok {
		_spec.SetField(response.FieldAttemptedStrategies, field.TypeJSON, value)
	}
	if value, ok := ruo.mutation.AppendedAttemptedStrategies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, response.FieldAttemptedStrategies, value)
		})
	}
	if ruo.mutation.AttemptedStrategiesCleared() {
		_spec.ClearField(response.FieldAttemptedStrategies, field.TypeJSON)
	}
	if value, ok := ruo.mutation.AnalysisText(); ok {
		_spec.SetField(response.FieldAnalysisText, field.TypeString, value)
	}
	if value, ok := ruo.mutation.AnalysisCostTokens(); ok {
		_spec.SetField(response.FieldAnalysisCostTokens, field.TypeInt, value)
	}
	if value, ok := ruo.mutation.AddedAnalysisCostTokens(); ok {
		_spec.AddField(response.FieldAnalysisCostTokens, field.TypeInt, value)
	}
	if value, ok := ruo.mutation.AiModel(); ok {
		_spec.SetField(response.FieldAiModel, field.TypeString, value)
	}
	if ruo.mutation.AiModelCleared() {
		_spec.ClearField(response.FieldAiModel, field.TypeString)
	}
	if value, ok := ruo.mutation.OcrLanguage(); ok {
		_spec.SetField(response.FieldOcrLanguage, field.TypeString, value)
	}
	if ruo.mutation.OcrLanguageCleared() {
		_spec.ClearField(response.FieldOcrLanguage, field.TypeString)
	}
	if value, ok := ruo.mutation.TextLength(); ok {
		_spec.SetField(response.FieldTextLength, field.TypeInt, value)
	}
	if value, ok := ruo.mutation.AddedTextLength(); ok {
		_spec.AddField(response.FieldTextLength, field.TypeInt, value)
	}
	if value, ok := ruo.mutation.WordCount(); ok {
		_spec.SetField(response.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := ruo.mutation.AddedWordCount(); ok {
		_spec.AddField(response.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := ruo.mutation.StageDurations(); ok {
		_spec.SetField(response.FieldStageDurations, field.TypeJSON, value)
	}
	if ruo.mutation.StageDurationsCleared() {
		_spec.ClearField(response.FieldStageDurations, field.TypeJSON)
	}
	if value, ok := ruo.mutation.CreatedAt(); ok {
		_spec.SetField(response.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Response{config: ruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{response.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ruo.mutation.done = true
	return _node, nil
}
