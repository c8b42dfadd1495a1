// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fractalhq/fractal/pkg/storage/ent/message"
	"github.com/fractalhq/fractal/pkg/storage/ent/node"
	"github.com/fractalhq/fractal/pkg/storage/ent/nodeevent"
	"github.com/fractalhq/fractal/pkg/storage/ent/summary"
	"github.com/google/uuid"
)

// NodeCreate is the builder for creating a Node entity.
type NodeCreate struct {
	config
	mutation *NodeMutation
	hooks    []Hook
}

// SetParentID sets the "parent_id" field.
func (_c *NodeCreate) SetParentID(v uuid.UUID) *NodeCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *NodeCreate) SetNillableParentID(v *uuid.UUID) *NodeCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *NodeCreate) SetProjectID(v uuid.UUID) *NodeCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *NodeCreate) SetNillableProjectID(v *uuid.UUID) *NodeCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *NodeCreate) SetTitle(v string) *NodeCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNodeType sets the "node_type" field.
func (_c *NodeCreate) SetNodeType(v string) *NodeCreate {
	_c.mutation.SetNodeType(v)
	return _c
}

// SetNillableNodeType sets the "node_type" field if the given value is not nil.
func (_c *NodeCreate) SetNillableNodeType(v *string) *NodeCreate {
	if v != nil {
		_c.SetNodeType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *NodeCreate) SetStatus(v string) *NodeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *NodeCreate) SetNillableStatus(v *string) *NodeCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPositionX sets the "position_x" field.
func (_c *NodeCreate) SetPositionX(v float64) *NodeCreate {
	_c.mutation.SetPositionX(v)
	return _c
}

// SetNillablePositionX sets the "position_x" field if the given value is not nil.
func (_c *NodeCreate) SetNillablePositionX(v *float64) *NodeCreate {
	if v != nil {
		_c.SetPositionX(*v)
	}
	return _c
}

// SetPositionY sets the "position_y" field.
func (_c *NodeCreate) SetPositionY(v float64) *NodeCreate {
	_c.mutation.SetPositionY(v)
	return _c
}

// SetNillablePositionY sets the "position_y" field if the given value is not nil.
func (_c *NodeCreate) SetNillablePositionY(v *float64) *NodeCreate {
	if v != nil {
		_c.SetPositionY(*v)
	}
	return _c
}

// SetInheritedContext sets the "inherited_context" field.
func (_c *NodeCreate) SetInheritedContext(v map[string]interface{}) *NodeCreate {
	_c.mutation.SetInheritedContext(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *NodeCreate) SetCreatedBy(v string) *NodeCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *NodeCreate) SetNillableCreatedBy(v *string) *NodeCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *NodeCreate) SetMetadata(v map[string]interface{}) *NodeCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NodeCreate) SetCreatedAt(v time.Time) *NodeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NodeCreate) SetNillableCreatedAt(v *time.Time) *NodeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NodeCreate) SetID(v uuid.UUID) *NodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetParent sets the "parent" edge to the Node entity.
func (_c *NodeCreate) SetParent(v *Node) *NodeCreate {
	return _c.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Node entity by IDs.
func (_c *NodeCreate) AddChildIDs(ids ...uuid.UUID) *NodeCreate {
	_c.mutation.AddChildIDs(ids...)
	return _c
}

// AddChildren adds the "children" edges to the Node entity.
func (_c *NodeCreate) AddChildren(v ...*Node) *NodeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChildIDs(ids...)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *NodeCreate) AddMessageIDs(ids ...uuid.UUID) *NodeCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *NodeCreate) AddMessages(v ...*Message) *NodeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddSummaryIDs adds the "summaries" edge to the Summary entity by IDs.
func (_c *NodeCreate) AddSummaryIDs(ids ...uuid.UUID) *NodeCreate {
	_c.mutation.AddSummaryIDs(ids...)
	return _c
}

// AddSummaries adds the "summaries" edges to the Summary entity.
func (_c *NodeCreate) AddSummaries(v ...*Summary) *NodeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSummaryIDs(ids...)
}

// AddEventIDs adds the "events" edge to the NodeEvent entity by IDs.
func (_c *NodeCreate) AddEventIDs(ids ...uuid.UUID) *NodeCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the NodeEvent entity.
func (_c *NodeCreate) AddEvents(v ...*NodeEvent) *NodeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the NodeMutation object of the builder.
func (_c *NodeCreate) Mutation() *NodeMutation {
	return _c.mutation
}

// Save creates the Node in the database.
func (_c *NodeCreate) Save(ctx context.Context) (*Node, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NodeCreate) SaveX(ctx context.Context) *Node {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NodeCreate) defaults() {
	if _, ok := _c.mutation.NodeType(); !ok {
		v := node.DefaultNodeType
		_c.mutation.SetNodeType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := node.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PositionX(); !ok {
		v := node.DefaultPositionX
		_c.mutation.SetPositionX(v)
	}
	if _, ok := _c.mutation.PositionY(); !ok {
		v := node.DefaultPositionY
		_c.mutation.SetPositionY(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := node.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NodeCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Node.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := node.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Node.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NodeType(); !ok {
		return &ValidationError{Name: "node_type", err: errors.New(`ent: missing required field "Node.node_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Node.status"`)}
	}
	if _, ok := _c.mutation.PositionX(); !ok {
		return &ValidationError{Name: "position_x", err: errors.New(`ent: missing required field "Node.position_x"`)}
	}
	if _, ok := _c.mutation.PositionY(); !ok {
		return &ValidationError{Name: "position_y", err: errors.New(`ent: missing required field "Node.position_y"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Node.created_at"`)}
	}
	return nil
}

func (_c *NodeCreate) sqlSave(ctx context.Context) (*Node, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NodeCreate) createSpec() (*Node, *sqlgraph.CreateSpec) {
	var (
		_node = &Node{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(node.Table, sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(node.FieldProjectID, field.TypeUUID, value)
		_node.ProjectID = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(node.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.NodeType(); ok {
		_spec.SetField(node.FieldNodeType, field.TypeString, value)
		_node.NodeType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(node.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PositionX(); ok {
		_spec.SetField(node.FieldPositionX, field.TypeFloat64, value)
		_node.PositionX = value
	}
	if value, ok := _c.mutation.PositionY(); ok {
		_spec.SetField(node.FieldPositionY, field.TypeFloat64, value)
		_node.PositionY = value
	}
	if value, ok := _c.mutation.InheritedContext(); ok {
		_spec.SetField(node.FieldInheritedContext, field.TypeJSON, value)
		_node.InheritedContext = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(node.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(node.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(node.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   node.ParentTable,
			Columns: []string{node.ParentColumn},
			Bidi:    true,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   node.ChildrenTable,
			Columns: []string{node.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(node.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.MessagesTable,
			Columns: []string{node.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SummariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.SummariesTable,
			Columns: []string{node.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   node.EventsTable,
			Columns: []string{node.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(nodeevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NodeCreateBulk is the builder for creating many Node entities in bulk.
type NodeCreateBulk struct {
	config
	err      error
	builders []*NodeCreate
}

// Save creates the Node entities in the database.
func (_c *NodeCreateBulk) Save(ctx context.Context) ([]*Node, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Node, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NodeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *NodeCreateBulk) SaveX(ctx context.Context) []*Node {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
