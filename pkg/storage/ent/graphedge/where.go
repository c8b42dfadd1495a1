// Code generated by ent, DO NOT EDIT.

package graphedge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fractalhq/fractal/pkg/storage/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldID, id))
}

// FromEntity applies equality check predicate on the "from_entity" field. It's identical to FromEntityEQ.
func FromEntity(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldFromEntity, v))
}

// ToEntity applies equality check predicate on the "to_entity" field. It's identical to ToEntityEQ.
func ToEntity(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldToEntity, v))
}

// RelationType applies equality check predicate on the "relation_type" field. It's identical to RelationTypeEQ.
func RelationType(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldRelationType, v))
}

// SourceNode applies equality check predicate on the "source_node" field. It's identical to SourceNodeEQ.
func SourceNode(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldSourceNode, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldDeletedAt, v))
}

// FromEntityEQ applies the EQ predicate on the "from_entity" field.
func FromEntityEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldFromEntity, v))
}

// FromEntityNEQ applies the NEQ predicate on the "from_entity" field.
func FromEntityNEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldFromEntity, v))
}

// FromEntityIn applies the In predicate on the "from_entity" field.
func FromEntityIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldFromEntity, vs...))
}

// FromEntityNotIn applies the NotIn predicate on the "from_entity" field.
func FromEntityNotIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldFromEntity, vs...))
}

// FromEntityGT applies the GT predicate on the "from_entity" field.
func FromEntityGT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldFromEntity, v))
}

// FromEntityGTE applies the GTE predicate on the "from_entity" field.
func FromEntityGTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldFromEntity, v))
}

// FromEntityLT applies the LT predicate on the "from_entity" field.
func FromEntityLT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldFromEntity, v))
}

// FromEntityLTE applies the LTE predicate on the "from_entity" field.
func FromEntityLTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldFromEntity, v))
}

// FromEntityContains applies the Contains predicate on the "from_entity" field.
func FromEntityContains(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContains(FieldFromEntity, v))
}

// FromEntityHasPrefix applies the HasPrefix predicate on the "from_entity" field.
func FromEntityHasPrefix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasPrefix(FieldFromEntity, v))
}

// FromEntityHasSuffix applies the HasSuffix predicate on the "from_entity" field.
func FromEntityHasSuffix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasSuffix(FieldFromEntity, v))
}

// FromEntityEqualFold applies the EqualFold predicate on the "from_entity" field.
func FromEntityEqualFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEqualFold(FieldFromEntity, v))
}

// FromEntityContainsFold applies the ContainsFold predicate on the "from_entity" field.
func FromEntityContainsFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContainsFold(FieldFromEntity, v))
}

// ToEntityEQ applies the EQ predicate on the "to_entity" field.
func ToEntityEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldToEntity, v))
}

// ToEntityNEQ applies the NEQ predicate on the "to_entity" field.
func ToEntityNEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldToEntity, v))
}

// ToEntityIn applies the In predicate on the "to_entity" field.
func ToEntityIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldToEntity, vs...))
}

// ToEntityNotIn applies the NotIn predicate on the "to_entity" field.
func ToEntityNotIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldToEntity, vs...))
}

// ToEntityGT applies the GT predicate on the "to_entity" field.
func ToEntityGT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldToEntity, v))
}

// ToEntityGTE applies the GTE predicate on the "to_entity" field.
func ToEntityGTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldToEntity, v))
}

// ToEntityLT applies the LT predicate on the "to_entity" field.
func ToEntityLT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldToEntity, v))
}

// ToEntityLTE applies the LTE predicate on the "to_entity" field.
func ToEntityLTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldToEntity, v))
}

// ToEntityContains applies the Contains predicate on the "to_entity" field.
func ToEntityContains(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContains(FieldToEntity, v))
}

// ToEntityHasPrefix applies the HasPrefix predicate on the "to_entity" field.
func ToEntityHasPrefix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasPrefix(FieldToEntity, v))
}

// ToEntityHasSuffix applies the HasSuffix predicate on the "to_entity" field.
func ToEntityHasSuffix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasSuffix(FieldToEntity, v))
}

// ToEntityEqualFold applies the EqualFold predicate on the "to_entity" field.
func ToEntityEqualFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEqualFold(FieldToEntity, v))
}

// ToEntityContainsFold applies the ContainsFold predicate on the "to_entity" field.
func ToEntityContainsFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContainsFold(FieldToEntity, v))
}

// RelationTypeEQ applies the EQ predicate on the "relation_type" field.
func RelationTypeEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldRelationType, v))
}

// RelationTypeNEQ applies the NEQ predicate on the "relation_type" field.
func RelationTypeNEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldRelationType, v))
}

// RelationTypeIn applies the In predicate on the "relation_type" field.
func RelationTypeIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldRelationType, vs...))
}

// RelationTypeNotIn applies the NotIn predicate on the "relation_type" field.
func RelationTypeNotIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldRelationType, vs...))
}

// RelationTypeGT applies the GT predicate on the "relation_type" field.
func RelationTypeGT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldRelationType, v))
}

// RelationTypeGTE applies the GTE predicate on the "relation_type" field.
func RelationTypeGTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldRelationType, v))
}

// RelationTypeLT applies the LT predicate on the "relation_type" field.
func RelationTypeLT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldRelationType, v))
}

// RelationTypeLTE applies the LTE predicate on the "relation_type" field.
func RelationTypeLTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldRelationType, v))
}

// RelationTypeContains applies the Contains predicate on the "relation_type" field.
func RelationTypeContains(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContains(FieldRelationType, v))
}

// RelationTypeHasPrefix applies the HasPrefix predicate on the "relation_type" field.
func RelationTypeHasPrefix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasPrefix(FieldRelationType, v))
}

// RelationTypeHasSuffix applies the HasSuffix predicate on the "relation_type" field.
func RelationTypeHasSuffix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasSuffix(FieldRelationType, v))
}

// RelationTypeEqualFold applies the EqualFold predicate on the "relation_type" field.
func RelationTypeEqualFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEqualFold(FieldRelationType, v))
}

// RelationTypeContainsFold applies the ContainsFold predicate on the "relation_type" field.
func RelationTypeContainsFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContainsFold(FieldRelationType, v))
}

// SourceNodeEQ applies the EQ predicate on the "source_node" field.
func SourceNodeEQ(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldSourceNode, v))
}

// SourceNodeNEQ applies the NEQ predicate on the "source_node" field.
func SourceNodeNEQ(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldSourceNode, v))
}

// SourceNodeIn applies the In predicate on the "source_node" field.
func SourceNodeIn(vs ...uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldSourceNode, vs...))
}

// SourceNodeNotIn applies the NotIn predicate on the "source_node" field.
func SourceNodeNotIn(vs ...uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldSourceNode, vs...))
}

// SourceNodeGT applies the GT predicate on the "source_node" field.
func SourceNodeGT(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldSourceNode, v))
}

// SourceNodeGTE applies the GTE predicate on the "source_node" field.
func SourceNodeGTE(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldSourceNode, v))
}

// SourceNodeLT applies the LT predicate on the "source_node" field.
func SourceNodeLT(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldSourceNode, v))
}

// SourceNodeLTE applies the LTE predicate on the "source_node" field.
func SourceNodeLTE(v uuid.UUID) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldSourceNode, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldConfidence, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldCreatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotNull(FieldDeletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GraphEdge) predicate.GraphEdge {
	return predicate.GraphEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GraphEdge) predicate.GraphEdge {
	return predicate.GraphEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GraphEdge) predicate.GraphEdge {
	return predicate.GraphEdge(sql.NotPredicates(p))
}
