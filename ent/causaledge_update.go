// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codecoder-dev/codecoder/ent/causaledge"
	"github.com/codecoder-dev/codecoder/ent/predicate"
)

// CausalEdgeUpdate is the builder for updating CausalEdge entities.
type CausalEdgeUpdate struct {
	config
	hooks    []Hook
	mutation *CausalEdgeMutation
}

// Where appends a list predicates to the CausalEdgeUpdate builder.
func (_u *CausalEdgeUpdate) Where(ps ...predicate.CausalEdge) *CausalEdgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the CausalEdgeMutation object of the builder.
func (_u *CausalEdgeUpdate) Mutation() *CausalEdgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CausalEdgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CausalEdgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CausalEdgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CausalEdgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CausalEdgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(causaledge.Table, causaledge.Columns, sqlgraph.NewFieldSpec(causaledge.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{causaledge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CausalEdgeUpdateOne is the builder for updating a single CausalEdge entity.
type CausalEdgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CausalEdgeMutation
}

// Mutation returns the CausalEdgeMutation object of the builder.
func (_u *CausalEdgeUpdateOne) Mutation() *CausalEdgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the CausalEdgeUpdate builder.
func (_u *CausalEdgeUpdateOne) Where(ps ...predicate.CausalEdge) *CausalEdgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CausalEdgeUpdateOne) Select(field string, fields ...string) *CausalEdgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CausalEdge entity.
func (_u *CausalEdgeUpdateOne) Save(ctx context.Context) (*CausalEdge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CausalEdgeUpdateOne) SaveX(ctx context.Context) *CausalEdge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CausalEdgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CausalEdgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CausalEdgeUpdateOne) sqlSave(ctx context.Context) (_node *CausalEdge, err error) {
	_spec := sqlgraph.NewUpdateSpec(causaledge.Table, causaledge.Columns, sqlgraph.NewFieldSpec(causaledge.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CausalEdge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, causaledge.FieldID)
		for _, f := range fields {
			if !causaledge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != causaledge.FieldID {
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
	_node = &CausalEdge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{causaledge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
