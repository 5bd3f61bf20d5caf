// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ResponsesColumns holds the columns for the "responses" table.
	ResponsesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeInt},
		{Name: "folder_id", Type: field.TypeInt, Nullable: true},
		{Name: "source_kind", Type: field.TypeString},
		{Name: "final_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "strategy_used", Type: field.TypeString, Nullable: true},
		{Name: "preprocessing_used", Type: field.TypeString, Nullable: true},
		{Name: "quality_score", Type: field.TypeFloat64},
		{Name: "attempted_strategies", Type: field.TypeJSON, Nullable: true},
		{Name: "analysis_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "analysis_cost_tokens", Type: field.TypeInt, Default: 0},
		{Name: "ai_model", Type: field.TypeString, Nullable: true},
		{Name: "ocr_language", Type: field.TypeString, Nullable: true},
		{Name: "text_length", Type: field.TypeInt, Default: 0},
		{Name: "word_count", Type: field.TypeInt, Default: 0},
		{Name: "stage_durations", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ResponsesTable holds the schema information for the "responses" table.
	ResponsesTable = &schema.Table{
		Name:       "responses",
		Columns:    ResponsesColumns,
		PrimaryKey: []*schema.Column{ResponsesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "response_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResponsesColumns[2], ResponsesColumns[18]},
			},
			{
				Name:    "response_folder_id",
				Unique:  false,
				Columns: []*schema.Column{ResponsesColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ResponsesTable,
	}
)

func init() {
	ResponsesTable.Annotation = &entsql.Annotation{
		Table: "responses",
	}
}
