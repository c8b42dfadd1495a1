// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fractalhq/fractal/pkg/storage/ent/graphedge"
	"github.com/fractalhq/fractal/pkg/storage/ent/predicate"
	"github.com/google/uuid"
)

// GraphEdgeUpdate is the builder for updating GraphEdge entities.
type GraphEdgeUpdate struct {
	config
	hooks    []Hook
	mutation *GraphEdgeMutation
}

// Where appends a list predicates to the GraphEdgeUpdate builder.
func (_u *GraphEdgeUpdate) Where(ps ...predicate.GraphEdge) *GraphEdgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFromEntity sets the "from_entity" field.
func (_u *GraphEdgeUpdate) SetFromEntity(v string) *GraphEdgeUpdate {
	_u.mutation.SetFromEntity(v)
	return _u
}

// SetNillableFromEntity sets the "from_entity" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillableFromEntity(v *string) *GraphEdgeUpdate {
	if v != nil {
		_u.SetFromEntity(*v)
	}
	return _u
}

// SetToEntity sets the "to_entity" field.
func (_u *GraphEdgeUpdate) SetToEntity(v string) *GraphEdgeUpdate {
	_u.mutation.SetToEntity(v)
	return _u
}

// SetNillableToEntity sets the "to_entity" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillableToEntity(v *string) *GraphEdgeUpdate {
	if v != nil {
		_u.SetToEntity(*v)
	}
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *GraphEdgeUpdate) SetRelationType(v string) *GraphEdgeUpdate {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillableRelationType(v *string) *GraphEdgeUpdate {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// SetSourceNode sets the "source_node" field.
func (_u *GraphEdgeUpdate) SetSourceNode(v uuid.UUID) *GraphEdgeUpdate {
	_u.mutation.SetSourceNode(v)
	return _u
}

// SetNillableSourceNode sets the "source_node" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillableSourceNode(v *uuid.UUID) *GraphEdgeUpdate {
	if v != nil {
		_u.SetSourceNode(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *GraphEdgeUpdate) SetConfidence(v float64) *GraphEdgeUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillableConfidence(v *float64) *GraphEdgeUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *GraphEdgeUpdate) AddConfidence(v float64) *GraphEdgeUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *GraphEdgeUpdate) SetMetadata(v map[string]interface{}) *GraphEdgeUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *GraphEdgeUpdate) ClearMetadata() *GraphEdgeUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *GraphEdgeUpdate) SetDeletedAt(v time.Time) *GraphEdgeUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillableDeletedAt(v *time.Time) *GraphEdgeUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *GraphEdgeUpdate) ClearDeletedAt() *GraphEdgeUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the GraphEdgeMutation object of the builder.
func (_u *GraphEdgeUpdate) Mutation() *GraphEdgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GraphEdgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphEdgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GraphEdgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphEdgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphEdgeUpdate) check() error {
	if v, ok := _u.mutation.FromEntity(); ok {
		if err := graphedge.FromEntityValidator(v); err != nil {
			return &ValidationError{Name: "from_entity", err: fmt.Errorf(`ent: validator failed for field "GraphEdge.from_entity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToEntity(); ok {
		if err := graphedge.ToEntityValidator(v); err != nil {
			return &ValidationError{Name: "to_entity", err: fmt.Errorf(`ent: validator failed for field "GraphEdge.to_entity": %w`, err)}
		}
	}
	return nil
}

func (_u *GraphEdgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphedge.Table, graphedge.Columns, sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromEntity(); ok {
		_spec.SetField(graphedge.FieldFromEntity, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToEntity(); ok {
		_spec.SetField(graphedge.FieldToEntity, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(graphedge.FieldRelationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceNode(); ok {
		_spec.SetField(graphedge.FieldSourceNode, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(graphedge.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(graphedge.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(graphedge.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(graphedge.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(graphedge.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(graphedge.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GraphEdgeUpdateOne is the builder for updating a single GraphEdge entity.
type GraphEdgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GraphEdgeMutation
}

// SetFromEntity sets the "from_entity" field.
func (_u *GraphEdgeUpdateOne) SetFromEntity(v string) *GraphEdgeUpdateOne {
	_u.mutation.SetFromEntity(v)
	return _u
}

// SetNillableFromEntity sets the "from_entity" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillableFromEntity(v *string) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetFromEntity(*v)
	}
	return _u
}

// SetToEntity sets the "to_entity" field.
func (_u *GraphEdgeUpdateOne) SetToEntity(v string) *GraphEdgeUpdateOne {
	_u.mutation.SetToEntity(v)
	return _u
}

// SetNillableToEntity sets the "to_entity" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillableToEntity(v *string) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetToEntity(*v)
	}
	return _u
}

// SetRelationType sets the "relation_type" field.
func (_u *GraphEdgeUpdateOne) SetRelationType(v string) *GraphEdgeUpdateOne {
	_u.mutation.SetRelationType(v)
	return _u
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillableRelationType(v *string) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetRelationType(*v)
	}
	return _u
}

// SetSourceNode sets the "source_node" field.
func (_u *GraphEdgeUpdateOne) SetSourceNode(v uuid.UUID) *GraphEdgeUpdateOne {
	_u.mutation.SetSourceNode(v)
	return _u
}

// SetNillableSourceNode sets the "source_node" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillableSourceNode(v *uuid.UUID) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetSourceNode(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *GraphEdgeUpdateOne) SetConfidence(v float64) *GraphEdgeUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillableConfidence(v *float64) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *GraphEdgeUpdateOne) AddConfidence(v float64) *GraphEdgeUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *GraphEdgeUpdateOne) SetMetadata(v map[string]interface{}) *GraphEdgeUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *GraphEdgeUpdateOne) ClearMetadata() *GraphEdgeUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *GraphEdgeUpdateOne) SetDeletedAt(v time.Time) *GraphEdgeUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillableDeletedAt(v *time.Time) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *GraphEdgeUpdateOne) ClearDeletedAt() *GraphEdgeUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the GraphEdgeMutation object of the builder.
func (_u *GraphEdgeUpdateOne) Mutation() *GraphEdgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the GraphEdgeUpdate builder.
func (_u *GraphEdgeUpdateOne) Where(ps ...predicate.GraphEdge) *GraphEdgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GraphEdgeUpdateOne) Select(field string, fields ...string) *GraphEdgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GraphEdge entity.
func (_u *GraphEdgeUpdateOne) Save(ctx context.Context) (*GraphEdge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphEdgeUpdateOne) SaveX(ctx context.Context) *GraphEdge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GraphEdgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphEdgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphEdgeUpdateOne) check() error {
	if v, ok := _u.mutation.FromEntity(); ok {
		if err := graphedge.FromEntityValidator(v); err != nil {
			return &ValidationError{Name: "from_entity", err: fmt.Errorf(`ent: validator failed for field "GraphEdge.from_entity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ToEntity(); ok {
		if err := graphedge.ToEntityValidator(v); err != nil {
			return &ValidationError{Name: "to_entity", err: fmt.Errorf(`ent: validator failed for field "GraphEdge.to_entity": %w`, err)}
		}
	}
	return nil
}

func (_u *GraphEdgeUpdateOne) sqlSave(ctx context.Context) (_node *GraphEdge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphedge.Table, graphedge.Columns, sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GraphEdge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graphedge.FieldID)
		for _, f := range fields {
			if !graphedge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != graphedge.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FromEntity(); ok {
		_spec.SetField(graphedge.FieldFromEntity, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToEntity(); ok {
		_spec.SetField(graphedge.FieldToEntity, field.TypeString, value)
	}
	if value, ok := _u.mutation.RelationType(); ok {
		_spec.SetField(graphedge.FieldRelationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceNode(); ok {
		_spec.SetField(graphedge.FieldSourceNode, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(graphedge.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(graphedge.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(graphedge.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(graphedge.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(graphedge.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(graphedge.FieldDeletedAt, field.TypeTime)
	}
	_node = &GraphEdge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
