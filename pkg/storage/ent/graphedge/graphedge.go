// Code generated by ent, DO NOT EDIT.

package graphedge

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the graphedge type in the database.
	Label = "graph_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFromEntity holds the string denoting the from_entity field in the database.
	FieldFromEntity = "from_entity"
	// FieldToEntity holds the string denoting the to_entity field in the database.
	FieldToEntity = "to_entity"
	// FieldRelationType holds the string denoting the relation_type field in the database.
	FieldRelationType = "relation_type"
	// FieldSourceNode holds the string denoting the source_node field in the database.
	FieldSourceNode = "source_node"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// Table holds the table name of the graphedge in the database.
	Table = "graph_edges"
)

// Columns holds all SQL columns for graphedge fields.
var Columns = []string{
	FieldID,
	FieldFromEntity,
	FieldToEntity,
	FieldRelationType,
	FieldSourceNode,
	FieldConfidence,
	FieldMetadata,
	FieldCreatedAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FromEntityValidator is a validator for the "from_entity" field. It is called by the builders before save.
	FromEntityValidator func(string) error
	// ToEntityValidator is a validator for the "to_entity" field. It is called by the builders before save.
	ToEntityValidator func(string) error
	// DefaultRelationType holds the default value on creation for the "relation_type" field.
	DefaultRelationType string
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the GraphEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFromEntity orders the results by the from_entity field.
func ByFromEntity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromEntity, opts...).ToFunc()
}

// ByToEntity orders the results by the to_entity field.
func ByToEntity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToEntity, opts...).ToFunc()
}

// ByRelationType orders the results by the relation_type field.
func ByRelationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationType, opts...).ToFunc()
}

// BySourceNode orders the results by the source_node field.
func BySourceNode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceNode, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}
