// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fractalhq/fractal/pkg/storage/ent/graphedge"
	"github.com/fractalhq/fractal/pkg/storage/ent/predicate"
)

// GraphEdgeDelete is the builder for deleting a GraphEdge entity.
type GraphEdgeDelete struct {
	config
	hooks    []Hook
	mutation *GraphEdgeMutation
}

// Where appends a list predicates to the GraphEdgeDelete builder.
func (_d *GraphEdgeDelete) Where(ps ...predicate.GraphEdge) *GraphEdgeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GraphEdgeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GraphEdgeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GraphEdgeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(graphedge.Table, sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// GraphEdgeDeleteOne is the builder for deleting a single GraphEdge entity.
type GraphEdgeDeleteOne struct {
	_d *GraphEdgeDelete
}

// Where appends a list predicates to the GraphEdgeDelete builder.
func (_d *GraphEdgeDeleteOne) Where(ps ...predicate.GraphEdge) *GraphEdgeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GraphEdgeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{graphedge.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GraphEdgeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
