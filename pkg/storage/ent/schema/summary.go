package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Summary holds the schema definition for the Summary entity. Summaries are
// versioned per node; exactly one carries is_latest.
type Summary struct {
	ent.Schema
}

// Fields of the Summary.
func (Summary) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),

		field.UUID("node_id", uuid.UUID{}),

		// document is the structured summary (FACTS, DECISIONS,
		// OPEN_QUESTIONS, METADATA).
		field.JSON("document", map[string]any{}),

		field.UUID("generated_from_event", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Bool("is_latest").
			Default(true),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the Summary.
func (Summary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("node_id", "is_latest"),
	}
}

// Edges of the Summary.
func (Summary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("node", Node.Type).
			Ref("summaries").
			Field("node_id").
			Unique().
			Required(),
	}
}
