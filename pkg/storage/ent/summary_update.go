// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fractalhq/fractal/pkg/storage/ent/node"
	"github.com/fractalhq/fractal/pkg/storage/ent/predicate"
	"github.com/fractalhq/fractal/pkg/storage/ent/summary"
	"github.com/google/uuid"
)

// SummaryUpdate is the builder for updating Summary entities.
type SummaryUpdate struct {
	config
	hooks    []Hook
	mutation *SummaryMutation
}

// Where appends a list predicates to the SummaryUpdate builder.
func (_u *SummaryUpdate) Where(ps ...predicate.Summary) *SummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *SummaryUpdate) SetNodeID(v uuid.UUID) *SummaryUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableNodeID(v *uuid.UUID) *SummaryUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetDocument sets the "document" field.
func (_u *SummaryUpdate) SetDocument(v map[string]interface{}) *SummaryUpdate {
	_u.mutation.SetDocument(v)
	return _u
}

// SetGeneratedFromEvent sets the "generated_from_event" field.
func (_u *SummaryUpdate) SetGeneratedFromEvent(v uuid.UUID) *SummaryUpdate {
	_u.mutation.SetGeneratedFromEvent(v)
	return _u
}

// SetNillableGeneratedFromEvent sets the "generated_from_event" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableGeneratedFromEvent(v *uuid.UUID) *SummaryUpdate {
	if v != nil {
		_u.SetGeneratedFromEvent(*v)
	}
	return _u
}

// ClearGeneratedFromEvent clears the value of the "generated_from_event" field.
func (_u *SummaryUpdate) ClearGeneratedFromEvent() *SummaryUpdate {
	_u.mutation.ClearGeneratedFromEvent()
	return _u
}

// SetIsLatest sets the "is_latest" field.
func (_u *SummaryUpdate) SetIsLatest(v bool) *SummaryUpdate {
	_u.mutation.SetIsLatest(v)
	return _u
}

// SetNillableIsLatest sets the "is_latest" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableIsLatest(v *bool) *SummaryUpdate {
	if v != nil {
		_u.SetIsLatest(*v)
	}
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *SummaryUpdate) SetNode(v *Node) *SummaryUpdate {
	return _u.SetNodeID(v.ID)
}

// Mutation returns the SummaryMutation object of the builder.
func (_u *SummaryUpdate) Mutation() *SummaryMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *SummaryUpdate) ClearNode() *SummaryUpdate {
	_u.mutation.ClearNode()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SummaryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryUpdate) check() error {
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Summary.node"`)
	}
	return nil
}

func (_u *SummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(summary.FieldDocument, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.GeneratedFromEvent(); ok {
		_spec.SetField(summary.FieldGeneratedFromEvent, field.TypeUUID, value)
	}
	if _u.mutation.GeneratedFromEventCleared() {
		_spec.ClearField(summary.FieldGeneratedFromEvent, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsLatest(); ok {
		_spec.SetField(summary.FieldIsLatest, field.TypeBool, value)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   summary.NodeTable,
			Columns: []string{summary.NodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   summary.NodeTable,
			Columns: []string{summary.NodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SummaryUpdateOne is the builder for updating a single Summary entity.
type SummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummaryMutation
}

// SetNodeID sets the "node_id" field.
func (_u *SummaryUpdateOne) SetNodeID(v uuid.UUID) *SummaryUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableNodeID(v *uuid.UUID) *SummaryUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetDocument sets the "document" field.
func (_u *SummaryUpdateOne) SetDocument(v map[string]interface{}) *SummaryUpdateOne {
	_u.mutation.SetDocument(v)
	return _u
}

// SetGeneratedFromEvent sets the "generated_from_event" field.
func (_u *SummaryUpdateOne) SetGeneratedFromEvent(v uuid.UUID) *SummaryUpdateOne {
	_u.mutation.SetGeneratedFromEvent(v)
	return _u
}

// SetNillableGeneratedFromEvent sets the "generated_from_event" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableGeneratedFromEvent(v *uuid.UUID) *SummaryUpdateOne {
	if v != nil {
		_u.SetGeneratedFromEvent(*v)
	}
	return _u
}

// ClearGeneratedFromEvent clears the value of the "generated_from_event" field.
func (_u *SummaryUpdateOne) ClearGeneratedFromEvent() *SummaryUpdateOne {
	_u.mutation.ClearGeneratedFromEvent()
	return _u
}

// SetIsLatest sets the "is_latest" field.
func (_u *SummaryUpdateOne) SetIsLatest(v bool) *SummaryUpdateOne {
	_u.mutation.SetIsLatest(v)
	return _u
}

// SetNillableIsLatest sets the "is_latest" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableIsLatest(v *bool) *SummaryUpdateOne {
	if v != nil {
		_u.SetIsLatest(*v)
	}
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *SummaryUpdateOne) SetNode(v *Node) *SummaryUpdateOne {
	return _u.SetNodeID(v.ID)
}

// Mutation returns the SummaryMutation object of the builder.
func (_u *SummaryUpdateOne) Mutation() *SummaryMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *SummaryUpdateOne) ClearNode() *SummaryUpdateOne {
	_u.mutation.ClearNode()
	return _u
}

// Where appends a list predicates to the SummaryUpdate builder.
func (_u *SummaryUpdateOne) Where(ps ...predicate.Summary) *SummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SummaryUpdateOne) Select(field string, fields ...string) *SummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Summary entity.
func (_u *SummaryUpdateOne) Save(ctx context.Context) (*Summary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryUpdateOne) SaveX(ctx context.Context) *Summary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryUpdateOne) check() error {
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Summary.node"`)
	}
	return nil
}

func (_u *SummaryUpdateOne) sqlSave(ctx context.Context) (_node *Summary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Summary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summary.FieldID)
		for _, f := range fields {
			if !summary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summary.FieldID {
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
	if value, ok := _u.mutation.Document(); ok {
		_spec.SetField(summary.FieldDocument, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.GeneratedFromEvent(); ok {
		_spec.SetField(summary.FieldGeneratedFromEvent, field.TypeUUID, value)
	}
	if _u.mutation.GeneratedFromEventCleared() {
		_spec.ClearField(summary.FieldGeneratedFromEvent, field.TypeUUID)
	}
	if value, ok := _u.mutation.IsLatest(); ok {
		_spec.SetField(summary.FieldIsLatest, field.TypeBool, value)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   summary.NodeTable,
			Columns: []string{summary.NodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   summary.NodeTable,
			Columns: []string{summary.NodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Summary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
