// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fractalhq/fractal/pkg/storage/ent/node"
	"github.com/fractalhq/fractal/pkg/storage/ent/summary"
	"github.com/google/uuid"
)

// SummaryCreate is the builder for creating a Summary entity.
type SummaryCreate struct {
	config
	mutation *SummaryMutation
	hooks    []Hook
}

// SetNodeID sets the "node_id" field.
func (_c *SummaryCreate) SetNodeID(v uuid.UUID) *SummaryCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetDocument sets the "document" field.
func (_c *SummaryCreate) SetDocument(v map[string]interface{}) *SummaryCreate {
	_c.mutation.SetDocument(v)
	return _c
}

// SetGeneratedFromEvent sets the "generated_from_event" field.
func (_c *SummaryCreate) SetGeneratedFromEvent(v uuid.UUID) *SummaryCreate {
	_c.mutation.SetGeneratedFromEvent(v)
	return _c
}

// SetNillableGeneratedFromEvent sets the "generated_from_event" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableGeneratedFromEvent(v *uuid.UUID) *SummaryCreate {
	if v != nil {
		_c.SetGeneratedFromEvent(*v)
	}
	return _c
}

// SetIsLatest sets the "is_latest" field.
func (_c *SummaryCreate) SetIsLatest(v bool) *SummaryCreate {
	_c.mutation.SetIsLatest(v)
	return _c
}

// SetNillableIsLatest sets the "is_latest" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableIsLatest(v *bool) *SummaryCreate {
	if v != nil {
		_c.SetIsLatest(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SummaryCreate) SetCreatedAt(v time.Time) *SummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableCreatedAt(v *time.Time) *SummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SummaryCreate) SetID(v uuid.UUID) *SummaryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNode sets the "node" edge to the Node entity.
func (_c *SummaryCreate) SetNode(v *Node) *SummaryCreate {
	return _c.SetNodeID(v.ID)
}

// Mutation returns the SummaryMutation object of the builder.
func (_c *SummaryCreate) Mutation() *SummaryMutation {
	return _c.mutation
}

// Save creates the Summary in the database.
func (_c *SummaryCreate) Save(ctx context.Context) (*Summary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SummaryCreate) SaveX(ctx context.Context) *Summary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SummaryCreate) defaults() {
	if _, ok := _c.mutation.IsLatest(); !ok {
		v := summary.DefaultIsLatest
		_c.mutation.SetIsLatest(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := summary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SummaryCreate) check() error {
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "Summary.node_id"`)}
	}
	if _, ok := _c.mutation.Document(); !ok {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required field "Summary.document"`)}
	}
	if _, ok := _c.mutation.IsLatest(); !ok {
		return &ValidationError{Name: "is_latest", err: errors.New(`ent: missing required field "Summary.is_latest"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Summary.created_at"`)}
	}
	if len(_c.mutation.NodeIDs()) == 0 {
		return &ValidationError{Name: "node", err: errors.New(`ent: missing required edge "Summary.node"`)}
	}
	return nil
}

func (_c *SummaryCreate) sqlSave(ctx context.Context) (*Summary, error) {
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

func (_c *SummaryCreate) createSpec() (*Summary, *sqlgraph.CreateSpec) {
	var (
		_node = &Summary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(summary.Table, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Document(); ok {
		_spec.SetField(summary.FieldDocument, field.TypeJSON, value)
		_node.Document = value
	}
	if value, ok := _c.mutation.GeneratedFromEvent(); ok {
		_spec.SetField(summary.FieldGeneratedFromEvent, field.TypeUUID, value)
		_node.GeneratedFromEvent = &value
	}
	if value, ok := _c.mutation.IsLatest(); ok {
		_spec.SetField(summary.FieldIsLatest, field.TypeBool, value)
		_node.IsLatest = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(summary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.NodeIDs(); len(nodes) > 0 {
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
		_node.NodeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SummaryCreateBulk is the builder for creating many Summary entities in bulk.
type SummaryCreateBulk struct {
	config
	err      error
	builders []*SummaryCreate
}

// Save creates the Summary entities in the database.
func (_c *SummaryCreateBulk) Save(ctx context.Context) ([]*Summary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Summary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummaryMutation)
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
func (_c *SummaryCreateBulk) SaveX(ctx context.Context) []*Summary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
