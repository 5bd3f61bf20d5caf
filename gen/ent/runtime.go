// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/calebmayer/textsnap/db/ent/schema"
	"github.com/calebmayer/textsnap/gen/ent/response"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	responseFields := schema.Response{}.Fields()
	_ = responseFields
	// responseDescJobID is the schema descriptor for job_id field.
	responseDescJobID := responseFields[1].Descriptor()
	// response.JobIDValidator is a validator for the "job_id" field. It is called by the builders before save.
	response.JobIDValidator = responseDescJobID.Validators[0].(func(string) error)
	// responseDescSourceKind is the schema descriptor for source_kind field.
	responseDescSourceKind := responseFields[4].Descriptor()
	// response.SourceKindValidator is a validator for the "source_kind" field. It is called by the builders before save.
	response.SourceKindValidator = responseDescSourceKind.Validators[0].(func(string) error)
	// responseDescAnalysisCostTokens is the schema descriptor for analysis_cost_tokens field.
	responseDescAnalysisCostTokens := responseFields[12].Descriptor()
	// response.DefaultAnalysisCostTokens holds the default value on creation for the analysis_cost_tokens field.
	response.DefaultAnalysisCostTokens = responseDescAnalysisCostTokens.Default.(int)
	// responseDescTextLength is the schema descriptor for text_length field.
	responseDescTextLength := responseFields[15].Descriptor()
	// response.DefaultTextLength holds the default value on creation for the text_length field.
	response.DefaultTextLength = responseDescTextLength.Default.(int)
	// responseDescWordCount is the schema descriptor for word_count field.
	responseDescWordCount := responseFields[16].Descriptor()
	// response.DefaultWordCount holds the default value on creation for the word_count field.
	response.DefaultWordCount = responseDescWordCount.Default.(int)
	// responseDescCreatedAt is the schema descriptor for created_at field.
	responseDescCreatedAt := responseFields[18].Descriptor()
	// response.DefaultCreatedAt holds the default value on creation for the created_at field.
	response.DefaultCreatedAt = responseDescCreatedAt.Default.(func() time.Time)
	// responseDescID is the schema descriptor for id field.
	responseDescID := responseFields[0].Descriptor()
	// response.DefaultID holds the default value on creation for the id field.
	response.DefaultID = responseDescID.Default.(func() uuid.UUID)
}
