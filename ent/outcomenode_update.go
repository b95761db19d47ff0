// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codecoder-dev/codecoder/ent/outcomenode"
	"github.com/codecoder-dev/codecoder/ent/predicate"
)

// OutcomeNodeUpdate is the builder for updating OutcomeNode entities.
type OutcomeNodeUpdate struct {
	config
	hooks    []Hook
	mutation *OutcomeNodeMutation
}

// Where appends a list predicates to the OutcomeNodeUpdate builder.
func (_u *OutcomeNodeUpdate) Where(ps ...predicate.OutcomeNode) *OutcomeNodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the OutcomeNodeMutation object of the builder.
func (_u *OutcomeNodeUpdate) Mutation() *OutcomeNodeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OutcomeNodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutcomeNodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OutcomeNodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutcomeNodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutcomeNodeUpdate) check() error {
	if _u.mutation.ActionCleared() && len(_u.mutation.ActionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OutcomeNode.action"`)
	}
	return nil
}

func (_u *OutcomeNodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outcomenode.Table, outcomenode.Columns, sqlgraph.NewFieldSpec(outcomenode.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(outcomenode.FieldMetrics, field.TypeJSON)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(outcomenode.FieldFeedback, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outcomenode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OutcomeNodeUpdateOne is the builder for updating a single OutcomeNode entity.
type OutcomeNodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OutcomeNodeMutation
}

// Mutation returns the OutcomeNodeMutation object of the builder.
func (_u *OutcomeNodeUpdateOne) Mutation() *OutcomeNodeMutation {
	return _u.mutation
}

// Where appends a list predicates to the OutcomeNodeUpdate builder.
func (_u *OutcomeNodeUpdateOne) Where(ps ...predicate.OutcomeNode) *OutcomeNodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OutcomeNodeUpdateOne) Select(field string, fields ...string) *OutcomeNodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OutcomeNode entity.
func (_u *OutcomeNodeUpdateOne) Save(ctx context.Context) (*OutcomeNode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OutcomeNodeUpdateOne) SaveX(ctx context.Context) *OutcomeNode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OutcomeNodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OutcomeNodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OutcomeNodeUpdateOne) check() error {
	if _u.mutation.ActionCleared() && len(_u.mutation.ActionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OutcomeNode.action"`)
	}
	return nil
}

func (_u *OutcomeNodeUpdateOne) sqlSave(ctx context.Context) (_node *OutcomeNode, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(outcomenode.Table, outcomenode.Columns, sqlgraph.NewFieldSpec(outcomenode.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OutcomeNode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, outcomenode.FieldID)
		for _, f := range fields {
			if !outcomenode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != outcomenode.FieldID {
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
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(outcomenode.FieldMetrics, field.TypeJSON)
	}
	if _u.mutation.FeedbackCleared() {
		_spec.ClearField(outcomenode.FieldFeedback, field.TypeString)
	}
	_node = &OutcomeNode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{outcomenode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
