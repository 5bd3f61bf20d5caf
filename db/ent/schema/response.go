package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Response is one stored pipeline outcome. Rows are append-only; a bad
// extraction is corrected by enqueueing a new job, never by editing here.
type Response struct{ ent.Schema }

func (Response) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "responses"},
	}
}

func (Response) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("job_id").NotEmpty().Unique(),
		field.Int("owner_id"),
		field.Int("folder_id").Optional().Nillable(),
		field.String("source_kind").NotEmpty(),
		field.String("final_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("confidence"),
		field.String("strategy_used").Optional(),
		field.String("preprocessing_used").Optional(),
		field.Float("quality_score"),
		field.JSON("attempted_strategies", []string{}).Optional(),
		field.String("analysis_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("analysis_cost_tokens").Default(0),
		field.String("ai_model").Optional(),
		field.String("ocr_language").Optional(),
		field.Int("text_length").Default(0),
		field.Int("word_count").Default(0),
		field.JSON("stage_durations", map[string]int64{}).Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Response) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
		index.Fields("folder_id"),
	}
}
