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

// Message holds the schema definition for the Message entity, one entry in a
// node's append-only conversation log.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Unique().
			Immutable(),

		field.UUID("node_id", uuid.UUID{}),

		// role is "user", "assistant", or "summary" (merge audit entries).
		field.String("role").
			NotEmpty(),

		field.Text("content"),

		field.Int("token_count").
			Optional().
			Nillable(),

		field.JSON("metadata", map[string]any{}).
			Optional(),

		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Annotations(entsql.Default("CURRENT_TIMESTAMP")),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("node_id", "timestamp"),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("node", Node.Type).
			Ref("messages").
			Field("node_id").
			Unique().
			Required(),
	}
}
