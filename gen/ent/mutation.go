// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/calebmayer/textsnap/gen/ent/predicate"
	"github.com/calebmayer/textsnap/gen/ent/response"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeResponse = "Response"
)

// ResponseMutation represents an operation that mutates the Response nodes in the graph.
type ResponseMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	job_id                     *string
	owner_id                   *int
	addowner_id                *int
	folder_id                  *int
	addfolder_id               *int
	source_kind                *string
	final_text                 *string
	confidence                 *float64
	addconfidence              *float64
	strategy_used              *string
	preprocessing_used         *string
	quality_score              *float64
	addquality_score           *float64
	attempted_strategies       *[]string
	appendattempted_strategies []string
	analysis_text              *string
	analysis_cost_tokens       *int
	addanalysis_cost_tokens    *int
	ai_model                   *string
	ocr_language               *string
	text_length                *int
	addtext_length             *int
	word_count                 *int
	addword_count              *int
	stage_durations            *map[string]int64
	created_at                 *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*Response, error)
	predicates                 []predicate.Response
}

var _ ent.Mutation = (*ResponseMutation)(nil)

// responseOption allows management of the mutation configuration using functional options.
type responseOption func(*ResponseMutation)

// newResponseMutation creates new mutation for the Response entity.
func newResponseMutation(c config, op Op, opts ...responseOption) *ResponseMutation {
	m := &ResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResponseID sets the ID field of the mutation.
func withResponseID(id uuid.UUID) responseOption {
	return func(m *ResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *Response
		)
		m.oldValue = func(ctx context.Context) (*Response, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Response.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResponse sets the old Response of the mutation.
func withResponse(node *Response) responseOption {
	return func(m *ResponseMutation) {
		m.oldValue = func(context.Context) (*Response, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Response entities.
func (m *ResponseMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResponseMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResponseMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Response.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *ResponseMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ResponseMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ResponseMutation) ResetJobID() {
	m.job_id = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *ResponseMutation) SetOwnerID(i int) {
	m.owner_id = &i
	m.addowner_id = nil
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ResponseMutation) OwnerID() (r int, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldOwnerID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// AddOwnerID adds i to the "owner_id" field.
func (m *ResponseMutation) AddOwnerID(i int) {
	if m.addowner_id != nil {
		*m.addowner_id += i
	} else {
		m.addowner_id = &i
	}
}

// AddedOwnerID returns the value that was added to the "owner_id" field in this mutation.
func (m *ResponseMutation) AddedOwnerID() (r int, exists bool) {
	v := m.addowner_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ResponseMutation) ResetOwnerID() {
	m.owner_id = nil
	m.addowner_id = nil
}

// SetFolderID sets the "folder_id" field.
func (m *ResponseMutation) SetFolderID(i int) {
	m.folder_id = &i
	m.addfolder_id = nil
}

// FolderID returns the value of the "folder_id" field in the mutation.
func (m *ResponseMutation) FolderID() (r int, exists bool) {
	v := m.folder_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFolderID returns the old "folder_id" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldFolderID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFolderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFolderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFolderID: %w", err)
	}
	return oldValue.FolderID, nil
}

// AddFolderID adds i to the "folder_id" field.
func (m *ResponseMutation) AddFolderID(i int) {
	if m.addfolder_id != nil {
		*m.addfolder_id += i
	} else {
		m.addfolder_id = &i
	}
}

// AddedFolderID returns the value that was added to the "folder_id" field in this mutation.
func (m *ResponseMutation) AddedFolderID() (r int, exists bool) {
	v := m.addfolder_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearFolderID clears the value of the "folder_id" field.
func (m *ResponseMutation) ClearFolderID() {
	m.folder_id = nil
	m.addfolder_id = nil
	m.clearedFields[response.FieldFolderID] = struct{}{}
}

// FolderIDCleared returns if the "folder_id" field was cleared in this mutation.
func (m *ResponseMutation) FolderIDCleared() bool {
	_, ok := m.clearedFields[response.FieldFolderID]
	return ok
}

// ResetFolderID resets all changes to the "folder_id" field.
func (m *ResponseMutation) ResetFolderID() {
	m.folder_id = nil
	m.addfolder_id = nil
	delete(m.clearedFields, response.FieldFolderID)
}

// SetSourceKind sets the "source_kind" field.
func (m *ResponseMutation) SetSourceKind(s string) {
	m.source_kind = &s
}

// SourceKind returns the value of the "source_kind" field in the mutation.
func (m *ResponseMutation) SourceKind() (r string, exists bool) {
	v := m.source_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceKind returns the old "source_kind" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldSourceKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceKind: %w", err)
	}
	return oldValue.SourceKind, nil
}

// ResetSourceKind resets all changes to the "source_kind" field.
func (m *ResponseMutation) ResetSourceKind() {
	m.source_kind = nil
}

// SetFinalText sets the "final_text" field.
func (m *ResponseMutation) SetFinalText(s string) {
	m.final_text = &s
}

// FinalText returns the value of the "final_text" field in the mutation.
func (m *ResponseMutation) FinalText() (r string, exists bool) {
	v := m.final_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalText returns the old "final_text" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldFinalText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalText: %w", err)
	}
	return oldValue.FinalText, nil
}

// ResetFinalText resets all changes to the "final_text" field.
func (m *ResponseMutation) ResetFinalText() {
	m.final_text = nil
}

// SetConfidence sets the "confidence" field.
func (m *ResponseMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ResponseMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ResponseMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ResponseMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ResponseMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetStrategyUsed sets the "strategy_used" field.
func (m *ResponseMutation) SetStrategyUsed(s string) {
	m.strategy_used = &s
}

// StrategyUsed returns the value of the "strategy_used" field in the mutation.
func (m *ResponseMutation) StrategyUsed() (r string, exists bool) {
	v := m.strategy_used
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategyUsed returns the old "strategy_used" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldStrategyUsed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategyUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategyUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategyUsed: %w", err)
	}
	return oldValue.StrategyUsed, nil
}

// ClearStrategyUsed clears the value of the "strategy_used" field.
func (m *ResponseMutation) ClearStrategyUsed() {
	m.strategy_used = nil
	m.clearedFields[response.FieldStrategyUsed] = struct{}{}
}

// StrategyUsedCleared returns if the "strategy_used" field was cleared in this mutation.
func (m *ResponseMutation) StrategyUsedCleared() bool {
	_, ok := m.clearedFields[response.FieldStrategyUsed]
	return ok
}

// ResetStrategyUsed resets all changes to the "strategy_used" field.
func (m *ResponseMutation) ResetStrategyUsed() {
	m.strategy_used = nil
	delete(m.clearedFields, response.FieldStrategyUsed)
}

// SetPreprocessingUsed sets the "preprocessing_used" field.
func (m *ResponseMutation) SetPreprocessingUsed(s string) {
	m.preprocessing_used = &s
}

// PreprocessingUsed returns the value of the "preprocessing_used" field in the mutation.
func (m *ResponseMutation) PreprocessingUsed() (r string, exists bool) {
	v := m.preprocessing_used
	if v == nil {
		return
	}
	return *v, true
}

// OldPreprocessingUsed returns the old "preprocessing_used" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldPreprocessingUsed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreprocessingUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreprocessingUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreprocessingUsed: %w", err)
	}
	return oldValue.PreprocessingUsed, nil
}

// ClearPreprocessingUsed clears the value of the "preprocessing_used" field.
func (m *ResponseMutation) ClearPreprocessingUsed() {
	m.preprocessing_used = nil
	m.clearedFields[response.FieldPreprocessingUsed] = struct{}{}
}

// PreprocessingUsedCleared returns if the "preprocessing_used" field was cleared in this mutation.
func (m *ResponseMutation) PreprocessingUsedCleared() bool {
	_, ok := m.clearedFields[response.FieldPreprocessingUsed]
	return ok
}

// ResetPreprocessingUsed resets all changes to the "preprocessing_used" field.
func (m *ResponseMutation) ResetPreprocessingUsed() {
	m.preprocessing_used = nil
	delete(m.clearedFields, response.FieldPreprocessingUsed)
}

// SetQualityScore sets the "quality_score" field.
func (m *ResponseMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *ResponseMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldQualityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *ResponseMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *ResponseMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *ResponseMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
}

// SetAttemptedStrategies sets the "attempted_strategies" field.
func (m *ResponseMutation) SetAttemptedStrategies(s []string) {
	m.attempted_strategies = &s
	m.appendattempted_strategies = nil
}

// AttemptedStrategies returns the value of the "attempted_strategies" field in the mutation.
func (m *ResponseMutation) AttemptedStrategies() (r []string, exists bool) {
	v := m.attempted_strategies
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptedStrategies returns the old "attempted_strategies" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldAttemptedStrategies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptedStrategies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptedStrategies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptedStrategies: %w", err)
	}
	return oldValue.AttemptedStrategies, nil
}

// AppendAttemptedStrategies adds s to the "attempted_strategies" field.
func (m *ResponseMutation) AppendAttemptedStrategies(s []string) {
	m.appendattempted_strategies = append(m.appendattempted_strategies, s...)
}

// AppendedAttemptedStrategies returns the list of values that were appended to the "attempted_strategies" field in this mutation.
func (m *ResponseMutation) AppendedAttemptedStrategies() ([]string, bool) {
	if len(m.appendattempted_strategies) == 0 {
		return nil, false
	}
	return m.appendattempted_strategies, true
}

// ClearAttemptedStrategies clears the value of the "attempted_strategies" field.
func (m *ResponseMutation) ClearAttemptedStrategies() {
	m.attempted_strategies = nil
	m.appendattempted_strategies = nil
	m.clearedFields[response.FieldAttemptedStrategies] = struct{}{}
}

// AttemptedStrategiesCleared returns if the "attempted_strategies" field was cleared in this mutation.
func (m *ResponseMutation) AttemptedStrategiesCleared() bool {
	_, ok := m.clearedFields[response.FieldAttemptedStrategies]
	return ok
}

// ResetAttemptedStrategies resets all changes to the "attempted_strategies" field.
func (m *ResponseMutation) ResetAttemptedStrategies() {
	m.attempted_strategies = nil
	m.appendattempted_strategies = nil
	delete(m.clearedFields, response.FieldAttemptedStrategies)
}

// SetAnalysisText sets the "analysis_text" field.
func (m *ResponseMutation) SetAnalysisText(s string) {
	m.analysis_text = &s
}

// AnalysisText returns the value of the "analysis_text" field in the mutation.
func (m *ResponseMutation) AnalysisText() (r string, exists bool) {
	v := m.analysis_text
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisText returns the old "analysis_text" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldAnalysisText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisText: %w", err)
	}
	return oldValue.AnalysisText, nil
}

// ResetAnalysisText resets all changes to the "analysis_text" field.
func (m *ResponseMutation) ResetAnalysisText() {
	m.analysis_text = nil
}

// SetAnalysisCostTokens sets the "analysis_cost_tokens" field.
func (m *ResponseMutation) SetAnalysisCostTokens(i int) {
	m.analysis_cost_tokens = &i
	m.addanalysis_cost_tokens = nil
}

// AnalysisCostTokens returns the value of the "analysis_cost_tokens" field in the mutation.
func (m *ResponseMutation) AnalysisCostTokens() (r int, exists bool) {
	v := m.analysis_cost_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisCostTokens returns the old "analysis_cost_tokens" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldAnalysisCostTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisCostTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisCostTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisCostTokens: %w", err)
	}
	return oldValue.AnalysisCostTokens, nil
}

// AddAnalysisCostTokens adds i to the "analysis_cost_tokens" field.
func (m *ResponseMutation) AddAnalysisCostTokens(i int) {
	if m.addanalysis_cost_tokens != nil {
		*m.addanalysis_cost_tokens += i
	} else {
		m.addanalysis_cost_tokens = &i
	}
}

// AddedAnalysisCostTokens returns the value that was added to the "analysis_cost_tokens" field in this mutation.
func (m *ResponseMutation) AddedAnalysisCostTokens() (r int, exists bool) {
	v := m.addanalysis_cost_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnalysisCostTokens resets all changes to the "analysis_cost_tokens" field.
func (m *ResponseMutation) ResetAnalysisCostTokens() {
	m.analysis_cost_tokens = nil
	m.addanalysis_cost_tokens = nil
}

// SetAiModel sets the "ai_model" field.
func (m *ResponseMutation) SetAiModel(s string) {
	m.ai_model = &s
}

// AiModel returns the value of the "ai_model" field in the mutation.
func (m *ResponseMutation) AiModel() (r string, exists bool) {
	v := m.ai_model
	if v == nil {
		return
	}
	return *v, true
}

// OldAiModel returns the old "ai_model" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldAiModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiModel: %w", err)
	}
	return oldValue.AiModel, nil
}

// ClearAiModel clears the value of the "ai_model" field.
func (m *ResponseMutation) ClearAiModel() {
	m.ai_model = nil
	m.clearedFields[response.FieldAiModel] = struct{}{}
}

// AiModelCleared returns if the "ai_model" field was cleared in this mutation.
func (m *ResponseMutation) AiModelCleared() bool {
	_, ok := m.clearedFields[response.FieldAiModel]
	return ok
}

// ResetAiModel resets all changes to the "ai_model" field.
func (m *ResponseMutation) ResetAiModel() {
	m.ai_model = nil
	delete(m.clearedFields, response.FieldAiModel)
}

// SetOcrLanguage sets the "ocr_language" field.
func (m *ResponseMutation) SetOcrLanguage(s string) {
	m.ocr_language = &s
}

// OcrLanguage returns the value of the "ocr_language" field in the mutation.
func (m *ResponseMutation) OcrLanguage() (r string, exists bool) {
	v := m.ocr_language
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrLanguage returns the old "ocr_language" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldOcrLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrLanguage: %w", err)
	}
	return oldValue.OcrLanguage, nil
}

// ClearOcrLanguage clears the value of the "ocr_language" field.
func (m *ResponseMutation) ClearOcrLanguage() {
	m.ocr_language = nil
	m.clearedFields[response.FieldOcrLanguage] = struct{}{}
}

// OcrLanguageCleared returns if the "ocr_language" field was cleared in this mutation.
func (m *ResponseMutation) OcrLanguageCleared() bool {
	_, ok := m.clearedFields[response.FieldOcrLanguage]
	return ok
}

// ResetOcrLanguage resets all changes to the "ocr_language" field.
func (m *ResponseMutation) ResetOcrLanguage() {
	m.ocr_language = nil
	delete(m.clearedFields, response.FieldOcrLanguage)
}

// SetTextLength sets the "text_length" field.
func (m *ResponseMutation) SetTextLength(i int) {
	m.text_length = &i
	m.addtext_length = nil
}

// TextLength returns the value of the "text_length" field in the mutation.
func (m *ResponseMutation) TextLength() (r int, exists bool) {
	v := m.text_length
	if v == nil {
		return
	}
	return *v, true
}

// OldTextLength returns the old "text_length" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldTextLength(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextLength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextLength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextLength: %w", err)
	}
	return oldValue.TextLength, nil
}

// AddTextLength adds i to the "text_length" field.
func (m *ResponseMutation) AddTextLength(i int) {
	if m.addtext_length != nil {
		*m.addtext_length += i
	} else {
		m.addtext_length = &i
	}
}

// AddedTextLength returns the value that was added to the "text_length" field in this mutation.
func (m *ResponseMutation) AddedTextLength() (r int, exists bool) {
	v := m.addtext_length
	if v == nil {
		return
	}
	return *v, true
}

// ResetTextLength resets all changes to the "text_length" field.
func (m *ResponseMutation) ResetTextLength() {
	m.text_length = nil
	m.addtext_length = nil
}

// SetWordCount sets the "word_count" field.
func (m *ResponseMutation) SetWordCount(i int) {
	m.word_count = &i
	m.addword_count = nil
}

// WordCount returns the value of the "word_count" field in the mutation.
func (m *ResponseMutation) WordCount() (r int, exists bool) {
	v := m.word_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWordCount returns the old "word_count" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldWordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordCount: %w", err)
	}
	return oldValue.WordCount, nil
}

// AddWordCount adds i to the "word_count" field.
func (m *ResponseMutation) AddWordCount(i int) {
	if m.addword_count != nil {
		*m.addword_count += i
	} else {
		m.addword_count = &i
	}
}

// AddedWordCount returns the value that was added to the "word_count" field in this mutation.
func (m *ResponseMutation) AddedWordCount() (r int, exists bool) {
	v := m.addword_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordCount resets all changes to the "word_count" field.
func (m *ResponseMutation) ResetWordCount() {
	m.word_count = nil
	m.addword_count = nil
}

// SetStageDurations sets the "stage_durations" field.
func (m *ResponseMutation) SetStageDurations(value map[string]int64) {
	m.stage_durations = &value
}

// StageDurations returns the value of the "stage_durations" field in the mutation.
func (m *ResponseMutation) StageDurations() (r map[string]int64, exists bool) {
	v := m.stage_durations
	if v == nil {
		return
	}
	return *v, true
}

// OldStageDurations returns the old "stage_durations" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldStageDurations(ctx context.Context) (v map[string]int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageDurations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageDurations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageDurations: %w", err)
	}
	return oldValue.StageDurations, nil
}

// ClearStageDurations clears the value of the "stage_durations" field.
func (m *ResponseMutation) ClearStageDurations() {
	m.stage_durations = nil
	m.clearedFields[response.FieldStageDurations] = struct{}{}
}

// StageDurationsCleared returns if the "stage_durations" field was cleared in this mutation.
func (m *ResponseMutation) StageDurationsCleared() bool {
	_, ok := m.clearedFields[response.FieldStageDurations]
	return ok
}

// ResetStageDurations resets all changes to the "stage_durations" field.
func (m *ResponseMutation) ResetStageDurations() {
	m.stage_durations = nil
	delete(m.clearedFields, response.FieldStageDurations)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResponseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResponseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResponseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ResponseMutation builder.
func (m *ResponseMutation) Where(ps ...predicate.Response) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Response, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Response).
func (m *ResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResponseMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.job_id != nil {
		fields = append(fields, response.FieldJobID)
	}
	if m.owner_id != nil {
		fields = append(fields, response.FieldOwnerID)
	}
	if m.folder_id != nil {
		fields = append(fields, response.FieldFolderID)
	}
	if m.source_kind != nil {
		fields = append(fields, response.FieldSourceKind)
	}
	if m.final_text != nil {
		fields = append(fields, response.FieldFinalText)
	}
	if m.confidence != nil {
		fields = append(fields, response.FieldConfidence)
	}
	if m.strategy_used != nil {
		fields = append(fields, response.FieldStrategyUsed)
	}
	if m.preprocessing_used != nil {
		fields = append(fields, response.FieldPreprocessingUsed)
	}
	if m.quality_score != nil {
		fields = append(fields, response.FieldQualityScore)
	}
	if m.attempted_strategies != nil {
		fields = append(fields, response.FieldAttemptedStrategies)
	}
	if m.analysis_text != nil {
		fields = append(fields, response.FieldAnalysisText)
	}
	if m.analysis_cost_tokens != nil {
		fields = append(fields, response.FieldAnalysisCostTokens)
	}
	if m.ai_model != nil {
		fields = append(fields, response.FieldAiModel)
	}
	if m.ocr_language != nil {
		fields = append(fields, response.FieldOcrLanguage)
	}
	if m.text_length != nil {
		fields = append(fields, response.FieldTextLength)
	}
	if m.word_count != nil {
		fields = append(fields, response.FieldWordCount)
	}
	if m.stage_durations != nil {
		fields = append(fields, response.FieldStageDurations)
	}
	if m.created_at != nil {
		fields = append(fields, response.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case response.FieldJobID:
		return m.JobID()
	case response.FieldOwnerID:
		return m.OwnerID()
	case response.FieldFolderID:
		return m.FolderID()
	case response.FieldSourceKind:
		return m.SourceKind()
	case response.FieldFinalText:
		return m.FinalText()
	case response.FieldConfidence:
		return m.Confidence()
	case response.FieldStrategyUsed:
		return m.StrategyUsed()
	case response.FieldPreprocessingUsed:
		return m.PreprocessingUsed()
	case response.FieldQualityScore:
		return m.QualityScore()
	case response.FieldAttemptedStrategies:
		return m.AttemptedStrategies()
	case response.FieldAnalysisText:
		return m.AnalysisText()
	case response.FieldAnalysisCostTokens:
		return m.AnalysisCostTokens()
	case response.FieldAiModel:
		return m.AiModel()
	case response.FieldOcrLanguage:
		return m.OcrLanguage()
	case response.FieldTextLength:
		return m.TextLength()
	case response.FieldWordCount:
		return m.WordCount()
	case response.FieldStageDurations:
		return m.StageDurations()
	case response.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case response.FieldJobID:
		return m.OldJobID(ctx)
	case response.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case response.FieldFolderID:
		return m.OldFolderID(ctx)
	case response.FieldSourceKind:
		return m.OldSourceKind(ctx)
	case response.FieldFinalText:
		return m.OldFinalText(ctx)
	case response.FieldConfidence:
		return m.OldConfidence(ctx)
	case response.FieldStrategyUsed:
		return m.OldStrategyUsed(ctx)
	case response.FieldPreprocessingUsed:
		return m.OldPreprocessingUsed(ctx)
	case response.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case response.FieldAttemptedStrategies:
		return m.OldAttemptedStrategies(ctx)
	case response.FieldAnalysisText:
		return m.OldAnalysisText(ctx)
	case response.FieldAnalysisCostTokens:
		return m.OldAnalysisCostTokens(ctx)
	case response.FieldAiModel:
		return m.OldAiModel(ctx)
	case response.FieldOcrLanguage:
		return m.OldOcrLanguage(ctx)
	case response.FieldTextLength:
		return m.OldTextLength(ctx)
	case response.FieldWordCount:
		return m.OldWordCount(ctx)
	case response.FieldStageDurations:
		return m.OldStageDurations(ctx)
	case response.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Response field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case response.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case response.FieldOwnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case response.FieldFolderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFolderID(v)
		return nil
	case response.FieldSourceKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceKind(v)
		return nil
	case response.FieldFinalText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalText(v)
		return nil
	case response.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case response.FieldStrategyUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategyUsed(v)
		return nil
	case response.FieldPreprocessingUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreprocessingUsed(v)
		return nil
	case response.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case response.FieldAttemptedStrategies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptedStrategies(v)
		return nil
	case response.FieldAnalysisText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisText(v)
		return nil
	case response.FieldAnalysisCostTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisCostTokens(v)
		return nil
	case response.FieldAiModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiModel(v)
		return nil
	case response.FieldOcrLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrLanguage(v)
		return nil
	case response.FieldTextLength:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextLength(v)
		return nil
	case response.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordCount(v)
		return nil
	case response.FieldStageDurations:
		v, ok := value.(map[string]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageDurations(v)
		return nil
	case response.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Response field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResponseMutation) AddedFields() []string {
	var fields []string
	if m.addowner_id != nil {
		fields = append(fields, response.FieldOwnerID)
	}
	if m.addfolder_id != nil {
		fields = append(fields, response.FieldFolderID)
	}
	if m.addconfidence != nil {
		fields = append(fields, response.FieldConfidence)
	}
	if m.addquality_score != nil {
		fields = append(fields, response.FieldQualityScore)
	}
	if m.addanalysis_cost_tokens != nil {
		fields = append(fields, response.FieldAnalysisCostTokens)
	}
	if m.addtext_length != nil {
		fields = append(fields, response.FieldTextLength)
	}
	if m.addword_count != nil {
		fields = append(fields, response.FieldWordCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResponseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case response.FieldOwnerID:
		return m.AddedOwnerID()
	case response.FieldFolderID:
		return m.AddedFolderID()
	case response.FieldConfidence:
		return m.AddedConfidence()
	case response.FieldQualityScore:
		return m.AddedQualityScore()
	case response.FieldAnalysisCostTokens:
		return m.AddedAnalysisCostTokens()
	case response.FieldTextLength:
		return m.AddedTextLength()
	case response.FieldWordCount:
		return m.AddedWordCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case response.FieldOwnerID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOwnerID(v)
		return nil
	case response.FieldFolderID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFolderID(v)
		return nil
	case response.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case response.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	case response.FieldAnalysisCostTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnalysisCostTokens(v)
		return nil
	case response.FieldTextLength:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTextLength(v)
		return nil
	case response.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordCount(v)
		return nil
	}
	return fmt.Errorf("unknown Response numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResponseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(response.FieldFolderID) {
		fields = append(fields, response.FieldFolderID)
	}
	if m.FieldCleared(response.FieldStrategyUsed) {
		fields = append(fields, response.FieldStrategyUsed)
	}
	if m.FieldCleared(response.FieldPreprocessingUsed) {
		fields = append(fields, response.FieldPreprocessingUsed)
	}
	if m.FieldCleared(response.FieldAttemptedStrategies) {
		fields = append(fields, response.FieldAttemptedStrategies)
	}
	if m.FieldCleared(response.FieldAiModel) {
		fields = append(fields, response.FieldAiModel)
	}
	if m.FieldCleared(response.FieldOcrLanguage) {
		fields = append(fields, response.FieldOcrLanguage)
	}
	if m.FieldCleared(response.FieldStageDurations) {
		fields = append(fields, response.FieldStageDurations)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResponseMutation) ClearField(name string) error {
	switch name {
	case response.FieldFolderID:
		m.ClearFolderID()
		return nil
	case response.FieldStrategyUsed:
		m.ClearStrategyUsed()
		return nil
	case response.FieldPreprocessingUsed:
		m.ClearPreprocessingUsed()
		return nil
	case response.FieldAttemptedStrategies:
		m.ClearAttemptedStrategies()
		return nil
	case response.FieldAiModel:
		m.ClearAiModel()
		return nil
	case response.FieldOcrLanguage:
		m.ClearOcrLanguage()
		return nil
	case response.FieldStageDurations:
		m.ClearStageDurations()
		return nil
	}
	return fmt.Errorf("unknown Response nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResponseMutation) ResetField(name string) error {
	switch name {
	case response.FieldJobID:
		m.ResetJobID()
		return nil
	case response.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case response.FieldFolderID:
		m.ResetFolderID()
		return nil
	case response.FieldSourceKind:
		m.ResetSourceKind()
		return nil
	case response.FieldFinalText:
		m.ResetFinalText()
		return nil
	case response.FieldConfidence:
		m.ResetConfidence()
		return nil
	case response.FieldStrategyUsed:
		m.ResetStrategyUsed()
		return nil
	case response.FieldPreprocessingUsed:
		m.ResetPreprocessingUsed()
		return nil
	case response.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case response.FieldAttemptedStrategies:
		m.ResetAttemptedStrategies()
		return nil
	case response.FieldAnalysisText:
		m.ResetAnalysisText()
		return nil
	case response.FieldAnalysisCostTokens:
		m.ResetAnalysisCostTokens()
		return nil
	case response.FieldAiModel:
		m.ResetAiModel()
		return nil
	case response.FieldOcrLanguage:
		m.ResetOcrLanguage()
		return nil
	case response.FieldTextLength:
		m.ResetTextLength()
		return nil
	case response.FieldWordCount:
		m.ResetWordCount()
		return nil
	case response.FieldStageDurations:
		m.ResetStageDurations()
		return nil
	case response.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Response field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResponseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResponseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResponseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Response unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResponseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Response edge %s", name)
}
