// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fractalhq/fractal/pkg/storage/ent/graphedge"
	"github.com/google/uuid"
)

// GraphEdgeCreate is the builder for creating a GraphEdge entity.
type GraphEdgeCreate struct {
	config
	mutation *GraphEdgeMutation
	hooks    []Hook
}

// SetFromEntity sets the "from_entity" field.
func (_c *GraphEdgeCreate) SetFromEntity(v string) *GraphEdgeCreate {
	_c.mutation.SetFromEntity(v)
	return _c
}

// SetToEntity sets the "to_entity" field.
func (_c *GraphEdgeCreate) SetToEntity(v string) *GraphEdgeCreate {
	_c.mutation.SetToEntity(v)
	return _c
}

// SetRelationType sets the "relation_type" field.
func (_c *GraphEdgeCreate) SetRelationType(v string) *GraphEdgeCreate {
	_c.mutation.SetRelationType(v)
	return _c
}

// SetNillableRelationType sets the "relation_type" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillableRelationType(v *string) *GraphEdgeCreate {
	if v != nil {
		_c.SetRelationType(*v)
	}
	return _c
}

// SetSourceNode sets the "source_node" field.
func (_c *GraphEdgeCreate) SetSourceNode(v uuid.UUID) *GraphEdgeCreate {
	_c.mutation.SetSourceNode(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *GraphEdgeCreate) SetConfidence(v float64) *GraphEdgeCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillableConfidence(v *float64) *GraphEdgeCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *GraphEdgeCreate) SetMetadata(v map[string]interface{}) *GraphEdgeCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GraphEdgeCreate) SetCreatedAt(v time.Time) *GraphEdgeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillableCreatedAt(v *time.Time) *GraphEdgeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *GraphEdgeCreate) SetDeletedAt(v time.Time) *GraphEdgeCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillableDeletedAt(v *time.Time) *GraphEdgeCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GraphEdgeCreate) SetID(v uuid.UUID) *GraphEdgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GraphEdgeMutation object of the builder.
func (_c *GraphEdgeCreate) Mutation() *GraphEdgeMutation {
	return _c.mutation
}

// Save creates the GraphEdge in the database.
func (_c *GraphEdgeCreate) Save(ctx context.Context) (*GraphEdge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GraphEdgeCreate) SaveX(ctx context.Context) *GraphEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphEdgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphEdgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GraphEdgeCreate) defaults() {
	if _, ok := _c.mutation.RelationType(); !ok {
		v := graphedge.DefaultRelationType
		_c.mutation.SetRelationType(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := graphedge.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := graphedge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GraphEdgeCreate) check() error {
	if _, ok := _c.mutation.FromEntity(); !ok {
		return &ValidationError{Name: "from_entity", err: errors.New(`ent: missing required field "GraphEdge.from_entity"`)}
	}
	if v, ok := _c.mutation.FromEntity(); ok {
		if err := graphedge.FromEntityValidator(v); err != nil {
			return &ValidationError{Name: "from_entity", err: fmt.Errorf(`ent: validator failed for field "GraphEdge.from_entity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToEntity(); !ok {
		return &ValidationError{Name: "to_entity", err: errors.New(`ent: missing required field "GraphEdge.to_entity"`)}
	}
	if v, ok := _c.mutation.ToEntity(); ok {
		if err := graphedge.ToEntityValidator(v); err != nil {
			return &ValidationError{Name: "to_entity", err: fmt.Errorf(`ent: validator failed for field "GraphEdge.to_entity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RelationType(); !ok {
		return &ValidationError{Name: "relation_type", err: errors.New(`ent: missing required field "GraphEdge.relation_type"`)}
	}
	if _, ok := _c.mutation.SourceNode(); !ok {
		return &ValidationError{Name: "source_node", err: errors.New(`ent: missing required field "GraphEdge.source_node"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "GraphEdge.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GraphEdge.created_at"`)}
	}
	return nil
}

func (_c *GraphEdgeCreate) sqlSave(ctx context.Context) (*GraphEdge, error) {
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

func (_c *GraphEdgeCreate) createSpec() (*GraphEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &GraphEdge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(graphedge.Table, sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FromEntity(); ok {
		_spec.SetField(graphedge.FieldFromEntity, field.TypeString, value)
		_node.FromEntity = value
	}
	if value, ok := _c.mutation.ToEntity(); ok {
		_spec.SetField(graphedge.FieldToEntity, field.TypeString, value)
		_node.ToEntity = value
	}
	if value, ok := _c.mutation.RelationType(); ok {
		_spec.SetField(graphedge.FieldRelationType, field.TypeString, value)
		_node.RelationType = value
	}
	if value, ok := _c.mutation.SourceNode(); ok {
		_spec.SetField(graphedge.FieldSourceNode, field.TypeUUID, value)
		_node.SourceNode = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(graphedge.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(graphedge.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(graphedge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(graphedge.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	return _node, _spec
}

// GraphEdgeCreateBulk is the builder for creating many GraphEdge entities in bulk.
type GraphEdgeCreateBulk struct {
	config
	err      error
	builders []*GraphEdgeCreate
}

// Save creates the GraphEdge entities in the database.
func (_c *GraphEdgeCreateBulk) Save(ctx context.Context) ([]*GraphEdge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GraphEdge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GraphEdgeMutation)
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
func (_c *GraphEdgeCreateBulk) SaveX(ctx context.Context) []*GraphEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
