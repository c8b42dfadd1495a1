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

// Node holds the schema definition for the Node entity.
// This represents one branching conversation node in the workspace tree.
type Node struct {
	ent.Schema
}

// Fields of the Node.
func (Node) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),

		// parent_id links to the parent node. Null for root nodes.
		field.UUID("parent_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("project_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.String("title").
			NotEmpty(),

		// node_type is "standard" or "exploration".
		field.String("node_type").
			Default("standard"),

		// status is "active", "frozen", or "deleted".
		field.String("status").
			Default("active"),

		field.Float("position_x").
			Default(0),

		field.Float("position_y").
			Default(0),

		// inherited_context is the frozen lineage snapshot captured at
		// creation. Null for root nodes.
		field.JSON("inherited_context", map[string]any{}).
			Optional(),

		field.String("created_by").
			Optional(),

		field.JSON("metadata", map[string]any{}).
			Optional(),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the Node.
func (Node) Indexes() []ent.Index {
	return []ent.Index{
		// Index on parent_id for efficient child lookups
		index.Fields("parent_id"),

		index.Fields("project_id"),

		index.Fields("status"),
	}
}

// Edges of the Node.
func (Node) Edges() []ent.Edge {
	return []ent.Edge{
		// Parent edge: each node has at most one parent
		edge.To("parent", Node.Type).
			Field("parent_id").
			Unique(),

		// Children edge: each node can have multiple children
		edge.From("children", Node.Type).
			Ref("parent"),

		edge.To("messages", Message.Type),
		edge.To("summaries", Summary.Type),
		edge.To("events", NodeEvent.Type),
	}
}
