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

// NodeEvent holds the schema definition for the NodeEvent entity, one
// append-only audit-log entry.
type NodeEvent struct {
	ent.Schema
}

// Fields of the NodeEvent.
func (NodeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),

		field.UUID("node_id", uuid.UUID{}),

		// event_type is NODE_CREATED, MESSAGE_ADDED, SUMMARY_UPDATED,
		// GRAPH_UPDATED, NODE_MERGED, NODE_DELETED, or NODE_COPIED.
		field.String("event_type").
			NotEmpty(),

		field.JSON("payload", map[string]any{}).
			Optional(),

		field.String("user_id").
			Optional(),

		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the NodeEvent.
func (NodeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("node_id", "timestamp"),

		index.Fields("event_type"),
	}
}

// Edges of the NodeEvent.
func (NodeEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("node", Node.Type).
			Ref("events").
			Field("node_id").
			Unique().
			Required(),
	}
}
