// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fractalhq/fractal/pkg/storage/ent/graphedge"
	"github.com/google/uuid"
)

// GraphEdge is the model entity for the GraphEdge schema.
type GraphEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FromEntity holds the value of the "from_entity" field.
	FromEntity string `json:"from_entity,omitempty"`
	// ToEntity holds the value of the "to_entity" field.
	ToEntity string `json:"to_entity,omitempty"`
	// RelationType holds the value of the "relation_type" field.
	RelationType string `json:"relation_type,omitempty"`
	// SourceNode holds the value of the "source_node" field.
	SourceNode uuid.UUID `json:"source_node,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GraphEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case graphedge.FieldMetadata:
			values[i] = new([]byte)
		case graphedge.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case graphedge.FieldFromEntity, graphedge.FieldToEntity, graphedge.FieldRelationType:
			values[i] = new(sql.NullString)
		case graphedge.FieldCreatedAt, graphedge.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case graphedge.FieldID, graphedge.FieldSourceNode:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GraphEdge fields.
func (_m *GraphEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case graphedge.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case graphedge.FieldFromEntity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_entity", values[i])
			} else if value.Valid {
				_m.FromEntity = value.String
			}
		case graphedge.FieldToEntity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_entity", values[i])
			} else if value.Valid {
				_m.ToEntity = value.String
			}
		case graphedge.FieldRelationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relation_type", values[i])
			} else if value.Valid {
				_m.RelationType = value.String
			}
		case graphedge.FieldSourceNode:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field source_node", values[i])
			} else if value != nil {
				_m.SourceNode = *value
			}
		case graphedge.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case graphedge.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case graphedge.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case graphedge.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GraphEdge.
// This includes values selected through modifiers, order, etc.
func (_m *GraphEdge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GraphEdge.
// Note that you need to call GraphEdge.Unwrap() before calling this method if this GraphEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GraphEdge) Update() *GraphEdgeUpdateOne {
	return NewGraphEdgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GraphEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GraphEdge) Unwrap() *GraphEdge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GraphEdge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GraphEdge) String() string {
	var builder strings.Builder
	builder.WriteString("GraphEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("from_entity=")
	builder.WriteString(_m.FromEntity)
	builder.WriteString(", ")
	builder.WriteString("to_entity=")
	builder.WriteString(_m.ToEntity)
	builder.WriteString(", ")
	builder.WriteString("relation_type=")
	builder.WriteString(_m.RelationType)
	builder.WriteString(", ")
	builder.WriteString("source_node=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceNode))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// GraphEdges is a parsable slice of GraphEdge.
type GraphEdges []*GraphEdge
