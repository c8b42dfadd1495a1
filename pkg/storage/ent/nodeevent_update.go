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
	"github.com/fractalhq/fractal/pkg/storage/ent/nodeevent"
	"github.com/fractalhq/fractal/pkg/storage/ent/predicate"
	"github.com/google/uuid"
)

// NodeEventUpdate is the builder for updating NodeEvent entities.
type NodeEventUpdate struct {
	config
	hooks    []Hook
	mutation *NodeEventMutation
}

// Where appends a list predicates to the NodeEventUpdate builder.
func (_u *NodeEventUpdate) Where(ps ...predicate.NodeEvent) *NodeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *NodeEventUpdate) SetNodeID(v uuid.UUID) *NodeEventUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *NodeEventUpdate) SetNillableNodeID(v *uuid.UUID) *NodeEventUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *NodeEventUpdate) SetEventType(v string) *NodeEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *NodeEventUpdate) SetNillableEventType(v *string) *NodeEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *NodeEventUpdate) SetPayload(v map[string]interface{}) *NodeEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *NodeEventUpdate) ClearPayload() *NodeEventUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *NodeEventUpdate) SetUserID(v string) *NodeEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *NodeEventUpdate) SetNillableUserID(v *string) *NodeEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *NodeEventUpdate) ClearUserID() *NodeEventUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *NodeEventUpdate) SetNode(v *Node) *NodeEventUpdate {
	return _u.SetNodeID(v.ID)
}

// Mutation returns the NodeEventMutation object of the builder.
func (_u *NodeEventUpdate) Mutation() *NodeEventMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *NodeEventUpdate) ClearNode() *NodeEventUpdate {
	_u.mutation.ClearNode()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NodeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NodeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := nodeevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "NodeEvent.event_type": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NodeEvent.node"`)
	}
	return nil
}

func (_u *NodeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(nodeevent.Table, nodeevent.Columns, sqlgraph.NewFieldSpec(nodeevent.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(nodeevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(nodeevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(nodeevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(nodeevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(nodeevent.FieldUserID, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   nodeevent.NodeTable,
			Columns: []string{nodeevent.NodeColumn},
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
			Table:   nodeevent.NodeTable,
			Columns: []string{nodeevent.NodeColumn},
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
			err = &NotFoundError{nodeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NodeEventUpdateOne is the builder for updating a single NodeEvent entity.
type NodeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NodeEventMutation
}

// SetNodeID sets the "node_id" field.
func (_u *NodeEventUpdateOne) SetNodeID(v uuid.UUID) *NodeEventUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *NodeEventUpdateOne) SetNillableNodeID(v *uuid.UUID) *NodeEventUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *NodeEventUpdateOne) SetEventType(v string) *NodeEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *NodeEventUpdateOne) SetNillableEventType(v *string) *NodeEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *NodeEventUpdateOne) SetPayload(v map[string]interface{}) *NodeEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *NodeEventUpdateOne) ClearPayload() *NodeEventUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *NodeEventUpdateOne) SetUserID(v string) *NodeEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *NodeEventUpdateOne) SetNillableUserID(v *string) *NodeEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *NodeEventUpdateOne) ClearUserID() *NodeEventUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetNode sets the "node" edge to the Node entity.
func (_u *NodeEventUpdateOne) SetNode(v *Node) *NodeEventUpdateOne {
	return _u.SetNodeID(v.ID)
}

// Mutation returns the NodeEventMutation object of the builder.
func (_u *NodeEventUpdateOne) Mutation() *NodeEventMutation {
	return _u.mutation
}

// ClearNode clears the "node" edge to the Node entity.
func (_u *NodeEventUpdateOne) ClearNode() *NodeEventUpdateOne {
	_u.mutation.ClearNode()
	return _u
}

// Where appends a list predicates to the NodeEventUpdate builder.
func (_u *NodeEventUpdateOne) Where(ps ...predicate.NodeEvent) *NodeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NodeEventUpdateOne) Select(field string, fields ...string) *NodeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NodeEvent entity.
func (_u *NodeEventUpdateOne) Save(ctx context.Context) (*NodeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NodeEventUpdateOne) SaveX(ctx context.Context) *NodeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NodeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NodeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NodeEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := nodeevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "NodeEvent.event_type": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "NodeEvent.node"`)
	}
	return nil
}

func (_u *NodeEventUpdateOne) sqlSave(ctx context.Context) (_node *NodeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(nodeevent.Table, nodeevent.Columns, sqlgraph.NewFieldSpec(nodeevent.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NodeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, nodeevent.FieldID)
		for _, f := range fields {
			if !nodeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != nodeevent.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(nodeevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(nodeevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(nodeevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(nodeevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(nodeevent.FieldUserID, field.TypeString)
	}
	if _u.mutation.NodeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   nodeevent.NodeTable,
			Columns: []string{nodeevent.NodeColumn},
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
			Table:   nodeevent.NodeTable,
			Columns: []string{nodeevent.NodeColumn},
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
	_node = &NodeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nodeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
