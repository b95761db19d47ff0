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
	"github.com/codecoder-dev/codecoder/ent/outcomenode"
	"github.com/codecoder-dev/codecoder/ent/predicate"
)

// ActionNodeUpdate is the builder for updating ActionNode entities.
type ActionNodeUpdate struct {
	config
	hooks    []Hook
	mutation *ActionNodeMutation
}

// Where appends a list predicates to the ActionNodeUpdate builder.
func (_u *ActionNodeUpdate) Where(ps ...predicate.ActionNode) *ActionNodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// AddOutcomeIDs adds the "outcomes" edge to the OutcomeNode entity by IDs.
func (_u *ActionNodeUpdate) AddOutcomeIDs(ids ...string) *ActionNodeUpdate {
	_u.mutation.AddOutcomeIDs(ids...)
	return _u
}

// AddOutcomes adds the "outcomes" edges to the OutcomeNode entity.
func (_u *ActionNodeUpdate) AddOutcomes(v ...*OutcomeNode) *ActionNodeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutcomeIDs(ids...)
}

// Mutation returns the ActionNodeMutation object of the builder.
func (_u *ActionNodeUpdate) Mutation() *ActionNodeMutation {
	return _u.mutation
}

// ClearOutcomes clears all "outcomes" edges to the OutcomeNode entity.
func (_u *ActionNodeUpdate) ClearOutcomes() *ActionNodeUpdate {
	_u.mutation.ClearOutcomes()
	return _u
}

// RemoveOutcomeIDs removes the "outcomes" edge to OutcomeNode entities by IDs.
func (_u *ActionNodeUpdate) RemoveOutcomeIDs(ids ...string) *ActionNodeUpdate {
	_u.mutation.RemoveOutcomeIDs(ids...)
	return _u
}

// RemoveOutcomes removes "outcomes" edges to OutcomeNode entities.
func (_u *ActionNodeUpdate) RemoveOutcomes(v ...*OutcomeNode) *ActionNodeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutcomeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActionNodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionNodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActionNodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionNodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionNodeUpdate) check() error {
	if _u.mutation.DecisionCleared() && len(_u.mutation.DecisionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ActionNode.decision"`)
	}
	return nil
}

func (_u *ActionNodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionnode.Table, actionnode.Columns, sqlgraph.NewFieldSpec(actionnode.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(actionnode.FieldInput, field.TypeJSON)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(actionnode.FieldOutput, field.TypeJSON)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(actionnode.FieldDurationMs, field.TypeInt64)
	}
	if _u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actionnode.OutcomesTable,
			Columns: []string{actionnode.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outcomenode.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutcomesIDs(); len(nodes) > 0 && !_u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actionnode.OutcomesTable,
			Columns: []string{actionnode.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outcomenode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutcomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actionnode.OutcomesTable,
			Columns: []string{actionnode.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outcomenode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionnode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActionNodeUpdateOne is the builder for updating a single ActionNode entity.
type ActionNodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActionNodeMutation
}

// AddOutcomeIDs adds the "outcomes" edge to the OutcomeNode entity by IDs.
func (_u *ActionNodeUpdateOne) AddOutcomeIDs(ids ...string) *ActionNodeUpdateOne {
	_u.mutation.AddOutcomeIDs(ids...)
	return _u
}

// AddOutcomes adds the "outcomes" edges to the OutcomeNode entity.
func (_u *ActionNodeUpdateOne) AddOutcomes(v ...*OutcomeNode) *ActionNodeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutcomeIDs(ids...)
}

// Mutation returns the ActionNodeMutation object of the builder.
func (_u *ActionNodeUpdateOne) Mutation() *ActionNodeMutation {
	return _u.mutation
}

// ClearOutcomes clears all "outcomes" edges to the OutcomeNode entity.
func (_u *ActionNodeUpdateOne) ClearOutcomes() *ActionNodeUpdateOne {
	_u.mutation.ClearOutcomes()
	return _u
}

// RemoveOutcomeIDs removes the "outcomes" edge to OutcomeNode entities by IDs.
func (_u *ActionNodeUpdateOne) RemoveOutcomeIDs(ids ...string) *ActionNodeUpdateOne {
	_u.mutation.RemoveOutcomeIDs(ids...)
	return _u
}

// RemoveOutcomes removes "outcomes" edges to OutcomeNode entities.
func (_u *ActionNodeUpdateOne) RemoveOutcomes(v ...*OutcomeNode) *ActionNodeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutcomeIDs(ids...)
}

// Where appends a list predicates to the ActionNodeUpdate builder.
func (_u *ActionNodeUpdateOne) Where(ps ...predicate.ActionNode) *ActionNodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActionNodeUpdateOne) Select(field string, fields ...string) *ActionNodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActionNode entity.
func (_u *ActionNodeUpdateOne) Save(ctx context.Context) (*ActionNode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionNodeUpdateOne) SaveX(ctx context.Context) *ActionNode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActionNodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionNodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionNodeUpdateOne) check() error {
	if _u.mutation.DecisionCleared() && len(_u.mutation.DecisionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ActionNode.decision"`)
	}
	return nil
}

func (_u *ActionNodeUpdateOne) sqlSave(ctx context.Context) (_node *ActionNode, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionnode.Table, actionnode.Columns, sqlgraph.NewFieldSpec(actionnode.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActionNode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actionnode.FieldID)
		for _, f := range fields {
			if !actionnode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != actionnode.FieldID {
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
	if _u.mutation.InputCleared() {
		_spec.ClearField(actionnode.FieldInput, field.TypeJSON)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(actionnode.FieldOutput, field.TypeJSON)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(actionnode.FieldDurationMs, field.TypeInt64)
	}
	if _u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actionnode.OutcomesTable,
			Columns: []string{actionnode.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outcomenode.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutcomesIDs(); len(nodes) > 0 && !_u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actionnode.OutcomesTable,
			Columns: []string{actionnode.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outcomenode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutcomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   actionnode.OutcomesTable,
			Columns: []string{actionnode.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(outcomenode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ActionNode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionnode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
