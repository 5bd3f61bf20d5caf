// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/calebmayer/textsnap/gen/ent/response"
	"github.com/google/uuid"
)

// ResponseCreate is the builder for creating a Response entity.
type ResponseCreate struct {
	config
	mutation *ResponseMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (rc *ResponseCreate) SetJobID(s string) *ResponseCreate {
	rc.mutation.SetJobID(s)
	return rc
}

// SetOwnerID sets the "owner_id" field.
func (rc *ResponseCreate) SetOwnerID(i int) *ResponseCreate {
	rc.mutation.SetOwnerID(i)
	return rc
}

// SetFolderID sets the "folder_id" field.
func (rc *ResponseCreate) SetFolderID(i int) *ResponseCreate {
	rc.mutation.SetFolderID(i)
	return rc
}

// SetNillableFolderID sets the "folder_id" field if the given value is not nil.
func (rc *ResponseCreate) SetNillableFolderID(i *int) *ResponseCreate {
	if i != nil {
		rc.SetFolderID(*i)
	}
	return rc
}

// SetSourceKind sets the "source_kind" field.
func (rc *ResponseCreate) SetSourceKind(s string) *ResponseCreate {
	rc.mutation.SetSourceKind(s)
	return rc
}

// SetFinalText sets the "final_text" field.
func (rc *ResponseCreate) SetFinalText(s string) *ResponseCreate {
	rc.mutation.SetFinalText(s)
	return rc
}

// SetConfidence sets the "confidence" field.
func (rc *ResponseCreate) SetConfidence(f float64) *ResponseCreate {
	rc.mutation.SetConfidence(f)
	return rc
}

// SetStrategyUsed sets the "strategy_used" field.
func (rc *ResponseCreate) SetStrategyUsed(s string) *ResponseCreate {
	rc.mutation.SetStrategyUsed(s)
	return rc
}

// SetNillableStrategyUsed sets the "strategy_used" field if the given value is not nil.
func (rc *ResponseCreate) SetNillableStrategyUsed(s *string) *ResponseCreate {
	if s != nil {
		rc.SetStrategyUsed(*s)
	}
	return rc
}

// SetPreprocessingUsed sets the "preprocessing_used" field.
func (rc *ResponseCreate) SetPreprocessingUsed(s string) *ResponseCreate {
	rc.mutation.SetPreprocessingUsed(s)
	return rc
}

// SetNillablePreprocessingUsed sets the "preprocessing_used" field if the given value is not nil.
func (rc *ResponseCreate) SetNillablePreprocessingUsed(s *string) *ResponseCreate {
	if s != nil {
		rc.SetPreprocessingUsed(*s)
	}
	return rc
}

// SetQualityScore sets the "quality_score" field.
func (rc *ResponseCreate) SetQualityScore(f float64) *ResponseCreate {
	rc.mutation.SetQualityScore(f)
	return rc
}

// SetAttemptedStrategies sets the "attempted_strategies" field.
func (rc *ResponseCreate) SetAttemptedStrategies(s []string) *ResponseCreate {
	rc.mutation.SetAttemptedStrategies(s)
	return rc
}

// SetAnalysisText sets the "analysis_text" field.
func (rc *ResponseCreate) SetAnalysisText(s string) *ResponseCreate {
	rc.mutation.SetAnalysisText(s)
	return rc
}

// SetAnalysisCostTokens sets the "analysis_cost_tokens" field.
func (rc *ResponseCreate) SetAnalysisCostTokens(i int) *ResponseCreate {
	rc.mutation.SetAnalysisCostTokens(i)
	return rc
}

// SetNillableAnalysisCostTokens sets the "analysis_cost_tokens" field if the given value is not nil.
func (rc *ResponseCreate) SetNillableAnalysisCostTokens(i *int) *ResponseCreate {
	if i != nil {
		rc.SetAnalysisCostTokens(*i)
	}
	return rc
}

// SetAiModel sets the "ai_model" field.
func (rc *ResponseCreate) SetAiModel(s string) *ResponseCreate {
	rc.mutation.SetAiModel(s)
	return rc
}

// SetNillableAiModel sets the "ai_model" field if the given value is not nil.
func (rc *ResponseCreate) SetNillableAiModel(s *string) *ResponseCreate {
	if s != nil {
		rc.SetAiModel(*s)
	}
	return rc
}

// SetOcrLanguage sets the "ocr_language" field.
func (rc *ResponseCreate) SetOcrLanguage(s string) *ResponseCreate {
	rc.mutation.SetOcrLanguage(s)
	return rc
}

// SetNillableOcrLanguage sets the "ocr_language" field if the given value is not nil.
func (rc *ResponseCreate) SetNillableOcrLanguage(s *string) *ResponseCreate {
	if s != nil {
		rc.SetOcrLanguage(*s)
	}
	return rc
}

// SetTextLength sets the "text_length" field.
func (rc *ResponseCreate) SetTextLength(i int) *ResponseCreate {
	rc.mutation.SetTextLength(i)
	return rc
}

// SetNillableTextLength sets the "text_length" field if the given value is not nil.
func (rc *ResponseCreate) SetNillableTextLength(i *int) *ResponseCreate {
	if i != nil {
		rc.SetTextLength(*i)
	}
	return rc
}

// SetWordCount sets the "word_count" field.
func (rc *ResponseCreate) SetWordCount(i int) *ResponseCreate {
	rc.mutation.SetWordCount(i)
	return rc
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (rc *ResponseCreate) SetNillableWordCount(i *int) *ResponseCreate {
	if i != nil {
		rc.SetWordCount(*i)
	}
	return rc
}

// SetStageDurations sets the "stage_durations" field.
func (rc *ResponseCreate) SetStageDurations(m map[string]int64) *ResponseCreate {
	rc.mutation.SetStageDurations(m)
	return rc
}

// SetCreatedAt sets the "created_at" field.
func (rc *ResponseCreate) SetCreatedAt(t time.Time) *ResponseCreate {
	rc.mutation.SetCreatedAt(t)
	return rc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (rc *ResponseCreate) SetNillableCreatedAt(t *time.Time) *ResponseCreate {
	if t != nil {
		rc.SetCreatedAt(*t)
	}
	return rc
}

// SetID sets the "id" field.
func (rc *ResponseCreate) SetID(u uuid.UUID) *ResponseCreate {
	rc.mutation.SetID(u)
	return rc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (rc *ResponseCreate) SetNillableID(u *uuid.UUID) *ResponseCreate {
	if u != nil {
		rc.SetID(*u)
	}
	return rc
}

// Mutation returns the ResponseMutation object of the builder.
func (rc *ResponseCreate) Mutation() *ResponseMutation {
	return rc.mutation
}

// Save creates the Response in the database.
func (rc *ResponseCreate) Save(ctx context.Context) (*Response, error) {
	rc.defaults()
	return withHooks(ctx, rc.sqlSave, rc.mutation, rc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rc *ResponseCreate) SaveX(ctx context.Context) *Response {
	v, err := rc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rc *ResponseCreate) Exec(ctx context.Context) error {
	_, err := rc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rc *ResponseCreate) ExecX(ctx context.Context) {
	if err := rc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rc *ResponseCreate) defaults() {
	if _, ok := rc.mutation.AnalysisCostTokens(); !ok {
		v := response.DefaultAnalysisCostTokens
		rc.mutation.SetAnalysisCostTokens(v)
	}
	if _, ok := rc.mutation.TextLength(); !ok {
		v := response.DefaultTextLength
		rc.mutation.SetTextLength(v)
	}
	if _, ok := rc.mutation.WordCount(); !ok {
		v := response.DefaultWordCount
		rc.mutation.SetWordCount(v)
	}
	if _, ok := rc.mutation.CreatedAt(); !ok {
		v := response.DefaultCreatedAt()
		rc.mutation.SetCreatedAt(v)
	}
	if _, ok := rc.mutation.ID(); !ok {
		v := response.DefaultID()
		rc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rc *ResponseCreate) check() error {
	if _, ok := rc.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Response.job_id"`)}
	}
	if v, ok := rc.mutation.JobID(); ok {
		if err := response.JobIDValidator(v); err != nil {
			return &ValidationError{Name: "job_id", err: fmt.Errorf(`ent: validator failed for field "Response.job_id": %w`, err)}
		}
	}
	if _, ok := rc.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Response.owner_id"`)}
	}
	if _, ok := rc.mutation.SourceKind(); !ok {
		return &ValidationError{Name: "source_kind", err: errors.New(`ent: missing required field "Response.source_kind"`)}
	}
	if v, ok := rc.mutation.SourceKind(); ok {
		if err := response.SourceKindValidator(v); err != nil {
			return &ValidationError{Name: "source_kind", err: fmt.Errorf(`ent: validator failed for field "Response.source_kind": %w`, err)}
		}
	}
	if _, ok := rc.mutation.FinalText(); !ok {
		return &ValidationError{Name: "final_text", err: errors.New(`ent: missing required field "Response.final_text"`)}
	}
	if _, ok := rc.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Response.confidence"`)}
	}
	if _, ok := rc.mutation.QualityScore(); !ok {
		return &ValidationError{Name: "quality_score", err: errors.New(`ent: missing required field "Response.quality_score"`)}
	}
	if _, ok := rc.mutation.AnalysisText(); !ok {
		return &ValidationError{Name: "analysis_text", err: errors.New(`ent: missing required field "Response.analysis_text"`)}
	}
	if _, ok := rc.mutation.AnalysisCostTokens(); !ok {
		return &ValidationError{Name: "analysis_cost_tokens", err: errors.New(`ent: missing required field "Response.analysis_cost_tokens"`)}
	}
	if _, ok := rc.mutation.TextLength(); !ok {
		return &ValidationError{Name: "text_length", err: errors.New(`ent: missing required field "Response.text_length"`)}
	}
	if _, ok := rc.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "Response.word_count"`)}
	}
	if _, ok := rc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Response.created_at"`)}
	}
	return nil
}

func (rc *ResponseCreate) sqlSave(ctx context.Context) (*Response, error) {
	if err := rc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	rc.mutation.id = &_node.ID
	rc.mutation.done = true
	return _node, nil
}

func (rc *ResponseCreate) createSpec() (*Response, *sqlgraph.CreateSpec) {
	var (
		_node = &Response{config: rc.config}
		_spec = sqlgraph.NewCreateSpec(response.Table, sqlgraph.NewFieldSpec(response.FieldID, field.TypeUUID))
	)
	if id, ok := rc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := rc.mutation.JobID(); ok {
		_spec.SetField(response.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := rc.mutation.OwnerID(); ok {
		_spec.SetField(response.FieldOwnerID, field.TypeInt, value)
		_node.OwnerID = value
	}
	if value, ok := rc.mutation.FolderID(); ok {
		_spec.SetField(response.FieldFolderID, field.TypeInt, value)
		_node.FolderID = &value
	}
	if value, ok := rc.mutation.SourceKind(); ok {
		_spec.SetField(response.FieldSourceKind, field.TypeString, value)
		_node.SourceKind = value
	}
	if value, ok := rc.mutation.FinalText(); ok {
		_spec.SetField(response.FieldFinalText, field.TypeString, value)
		_node.FinalText = value
	}
	if value, ok := rc.mutation.Confidence(); ok {
		_spec.SetField(response.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := rc.mutation.StrategyUsed(); ok {
		_spec.SetField(response.FieldStrategyUsed, field.TypeString, value)
		_node.StrategyUsed = value
	}
	if value, ok := rc.mutation.PreprocessingUsed(); ok {
		_spec.SetField(response.FieldPreprocessingUsed, field.TypeString, value)
		_node.PreprocessingUsed = value
	}
	if value, ok := rc.mutation.QualityScore(); ok {
		_spec.SetField(response.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = value
	}
	if value, ok := rc.mutation.AttemptedStrategies(); ok {
		_spec.SetField(response.FieldAttemptedStrategies, field.TypeJSON, value)
		_node.AttemptedStrategies = value
	}
	if value, ok := rc.mutation.AnalysisText(); ok {
		_spec.SetField(response.FieldAnalysisText, field.TypeString, value)
		_node.AnalysisText = value
	}
	if value, ok := rc.mutation.AnalysisCostTokens(); ok {
		_spec.SetField(response.FieldAnalysisCostTokens, field.TypeInt, value)
		_node.AnalysisCostTokens = value
	}
	if value, ok := rc.mutation.AiModel(); ok {
		_spec.SetField(response.FieldAiModel, field.TypeString, value)
		_node.AiModel = value
	}
	if value, ok := rc.mutation.OcrLanguage(); ok {
		_spec.SetField(response.FieldOcrLanguage, field.TypeString, value)
		_node.OcrLanguage = value
	}
	if value, ok := rc.mutation.TextLength(); ok {
		_spec.SetField(response.FieldTextLength, field.TypeInt, value)
		_node.TextLength = value
	}
	if value, ok := rc.mutation.WordCount(); ok {
		_spec.SetField(response.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := rc.mutation.StageDurations(); ok {
		_spec.SetField(response.FieldStageDurations, field.TypeJSON, value)
		_node.StageDurations = value
	}
	if value, ok := rc.mutation.CreatedAt(); ok {
		_spec.SetField(response.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ResponseCreateBulk is the builder for creating many Response entities in bulk.
type ResponseCreateBulk struct {
	config
	err      error
	builders []*ResponseCreate
}

// Save creates the Response entities in the database.
func (rcb *ResponseCreateBulk) Save(ctx context.Context) ([]*Response, error) {
	if rcb.err != nil {
		return nil, rcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rcb.builders))
	nodes := make([]*Response, len(rcb.builders))
	mutators := make([]Mutator, len(rcb.builders))
	for i := range rcb.builders {
		func(i int, root context.Context) {
			builder := rcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResponseMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, rcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, rcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rcb *ResponseCreateBulk) SaveX(ctx context.Context) []*Response {
	v, err := rcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rcb *ResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := rcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rcb *ResponseCreateBulk) ExecX(ctx context.Context) {
	if err := rcb.Exec(ctx); err != nil {
		panic(err)
	}
}
