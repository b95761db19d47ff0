// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codecoder-dev/codecoder/ent/actionnode"
	"github.com/codecoder-dev/codecoder/ent/decisionnode"
	"github.com/codecoder-dev/codecoder/ent/predicate"
)

// DecisionNodeUpdate is the builder for updating DecisionNode entities.
type DecisionNodeUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionNodeMutation
}

// Where appends a list predicates to the DecisionNodeUpdate builder.
func (_u *DecisionNodeUpdate) Where(ps ...predicate.DecisionNode) *DecisionNodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// AddActionIDs adds the "actions" edge to the ActionNode entity by IDs.
func (_u *DecisionNodeUpdate) AddActionIDs(ids ...string) *DecisionNodeUpdate {
	_u.mutation.AddActionIDs(ids...)
	return _u
}

// AddActions adds the "actions" edges to the ActionNode entity.
func (_u *DecisionNodeUpdate) AddActions(v ...*ActionNode) *DecisionNodeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActionIDs(ids...)
}

// Mutation returns the DecisionNodeMutation object of the builder.
func (_u *DecisionNodeUpdate) Mutation() *DecisionNodeMutation {
	return _u.mutation
}

// ClearActions clears all "actions" edges to the ActionNode entity.
func (_u *DecisionNodeUpdate) ClearActions() *DecisionNodeUpdate {
	_u.mutation.ClearActions()
	return _u
}

// RemoveActionIDs removes the "actions" edge to ActionNode entities by IDs.
func (_u *DecisionNodeUpdate) RemoveActionIDs(ids ...string) *DecisionNodeUpdate {
	_u.mutation.RemoveActionIDs(ids...)
	return _u
}

// RemoveActions removes "actions" edges to ActionNode entities.
func (_u *DecisionNodeUpdate) RemoveActions(v ...*ActionNode) *DecisionNodeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionNodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionNodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionNodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionNodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DecisionNodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(decisionnode.Table, decisionnode.Columns, sqlgraph.NewFieldSpec(decisionnode.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(decisionnode.FieldSessionID, field.TypeString)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(decisionnode.FieldReasoning, field.TypeString)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(decisionnode.FieldContext, field.TypeJSON)
	}
	if _u.mutation.ActionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   decisionnode.ActionsTable,
			Columns: []string{decisionnode.ActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionnode.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActionsIDs(); len(nodes) > 0 && !_u.mutation.ActionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   decisionnode.ActionsTable,
			Columns: []string{decisionnode.ActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionnode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   decisionnode.ActionsTable,
			Columns: []string{decisionnode.ActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionnode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionnode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionNodeUpdateOne is the builder for updating a single DecisionNode entity.
type DecisionNodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionNodeMutation
}

// AddActionIDs adds the "actions" edge to the ActionNode entity by IDs.
func (_u *DecisionNodeUpdateOne) AddActionIDs(ids ...string) *DecisionNodeUpdateOne {
	_u.mutation.AddActionIDs(ids...)
	return _u
}

// AddActions adds the "actions" edges to the ActionNode entity.
func (_u *DecisionNodeUpdateOne) AddActions(v ...*ActionNode) *DecisionNodeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActionIDs(ids...)
}

// Mutation returns the DecisionNodeMutation object of the builder.
func (_u *DecisionNodeUpdateOne) Mutation() *DecisionNodeMutation {
	return _u.mutation
}

// ClearActions clears all "actions" edges to the ActionNode entity.
func (_u *DecisionNodeUpdateOne) ClearActions() *DecisionNodeUpdateOne {
	_u.mutation.ClearActions()
	return _u
}

// RemoveActionIDs removes the "actions" edge to ActionNode entities by IDs.
func (_u *DecisionNodeUpdateOne) RemoveActionIDs(ids ...string) *DecisionNodeUpdateOne {
	_u.mutation.RemoveActionIDs(ids...)
	return _u
}

// RemoveActions removes "actions" edges to ActionNode entities.
func (_u *DecisionNodeUpdateOne) RemoveActions(v ...*ActionNode) *DecisionNodeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActionIDs(ids...)
}

// Where appends a list predicates to the DecisionNodeUpdate builder.
func (_u *DecisionNodeUpdateOne) Where(ps ...predicate.DecisionNode) *DecisionNodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionNodeUpdateOne) Select(field string, fields ...string) *DecisionNodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DecisionNode entity.
func (_u *DecisionNodeUpdateOne) Save(ctx context.Context) (*DecisionNode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionNodeUpdateOne) SaveX(ctx context.Context) *DecisionNode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionNodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionNodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DecisionNodeUpdateOne) sqlSave(ctx context.Context) (_node *DecisionNode, err error) {
	_spec := sqlgraph.NewUpdateSpec(decisionnode.Table, decisionnode.Columns, sqlgraph.NewFieldSpec(decisionnode.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DecisionNode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decisionnode.FieldID)
		for _, f := range fields {
			if !decisionnode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decisionnode.FieldID {
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
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(decisionnode.FieldSessionID, field.TypeString)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(decisionnode.FieldReasoning, field.TypeString)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(decisionnode.FieldContext, field.TypeJSON)
	}
	if _u.mutation.ActionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   decisionnode.ActionsTable,
			Columns: []string{decisionnode.ActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionnode.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActionsIDs(); len(nodes) > 0 && !_u.mutation.ActionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   decisionnode.ActionsTable,
			Columns: []string{decisionnode.ActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionnode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   decisionnode.ActionsTable,
			Columns: []string{decisionnode.ActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionnode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DecisionNode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decisionnode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
