package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// GraphEdge holds the schema definition for the GraphEdge entity, one
// directed knowledge-graph relation owned by the node that produced it.
type GraphEdge struct {
	ent.Schema
}

// Fields of the GraphEdge.
func (GraphEdge) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),

		field.String("from_entity").
			NotEmpty(),

		field.String("to_entity").
			NotEmpty(),

		field.String("relation_type").
			Default("RELATED"),

		field.UUID("source_node", uuid.UUID{}),

		field.Float("confidence").
			Default(1),

		field.JSON("metadata", map[string]any{}).
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),

		// deleted_at implements soft deletion; live edges have it null.
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the GraphEdge.
func (GraphEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_node"),

		// Dedup key, unique among live edges only. Soft-deleted rows keep
		// their key, so the constraint is partial; the service-level FindEdge
		// check is an optimization on top of it.
		index.Fields("from_entity", "to_entity", "relation_type", "source_node").
			Unique().
			Annotations(entsql.IndexWhere("deleted_at IS NULL")),
	}
}
