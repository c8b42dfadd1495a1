// Code generated by ent, DO NOT EDIT.

package summary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fractalhq/fractal/pkg/storage/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldID, id))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldNodeID, v))
}

// GeneratedFromEvent applies equality check predicate on the "generated_from_event" field. It's identical to GeneratedFromEventEQ.
func GeneratedFromEvent(v uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldGeneratedFromEvent, v))
}

// IsLatest applies equality check predicate on the "is_latest" field. It's identical to IsLatestEQ.
func IsLatest(v bool) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldIsLatest, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldNodeID, vs...))
}

// GeneratedFromEventEQ applies the EQ predicate on the "generated_from_event" field.
func GeneratedFromEventEQ(v uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldGeneratedFromEvent, v))
}

// GeneratedFromEventNEQ applies the NEQ predicate on the "generated_from_event" field.
func GeneratedFromEventNEQ(v uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldGeneratedFromEvent, v))
}

// GeneratedFromEventIn applies the In predicate on the "generated_from_event" field.
func GeneratedFromEventIn(vs ...uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldGeneratedFromEvent, vs...))
}

// GeneratedFromEventNotIn applies the NotIn predicate on the "generated_from_event" field.
func GeneratedFromEventNotIn(vs ...uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldGeneratedFromEvent, vs...))
}

// GeneratedFromEventGT applies the GT predicate on the "generated_from_event" field.
func GeneratedFromEventGT(v uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldGeneratedFromEvent, v))
}

// GeneratedFromEventGTE applies the GTE predicate on the "generated_from_event" field.
func GeneratedFromEventGTE(v uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldGeneratedFromEvent, v))
}

// GeneratedFromEventLT applies the LT predicate on the "generated_from_event" field.
func GeneratedFromEventLT(v uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldGeneratedFromEvent, v))
}

// GeneratedFromEventLTE applies the LTE predicate on the "generated_from_event" field.
func GeneratedFromEventLTE(v uuid.UUID) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldGeneratedFromEvent, v))
}

// GeneratedFromEventIsNil applies the IsNil predicate on the "generated_from_event" field.
func GeneratedFromEventIsNil() predicate.Summary {
	return predicate.Summary(sql.FieldIsNull(FieldGeneratedFromEvent))
}

// GeneratedFromEventNotNil applies the NotNil predicate on the "generated_from_event" field.
func GeneratedFromEventNotNil() predicate.Summary {
	return predicate.Summary(sql.FieldNotNull(FieldGeneratedFromEvent))
}

// IsLatestEQ applies the EQ predicate on the "is_latest" field.
func IsLatestEQ(v bool) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldIsLatest, v))
}

// IsLatestNEQ applies the NEQ predicate on the "is_latest" field.
func IsLatestNEQ(v bool) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldIsLatest, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldCreatedAt, v))
}

// HasNode applies the HasEdge predicate on the "node" edge.
func HasNode() predicate.Summary {
	return predicate.Summary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, NodeTable, NodeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNodeWith applies the HasEdge predicate on the "node" edge with a given conditions (other predicates).
func HasNodeWith(preds ...predicate.Node) predicate.Summary {
	return predicate.Summary(func(s *sql.Selector) {
		step := newNodeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.NotPredicates(p))
}
