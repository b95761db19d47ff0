// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codecoder-dev/codecoder/ent/actionnode"
	"github.com/codecoder-dev/codecoder/ent/decisionnode"
	"github.com/codecoder-dev/codecoder/ent/outcomenode"
)

// ActionNodeCreate is the builder for creating a ActionNode entity.
type ActionNodeCreate struct {
	config
	mutation *ActionNodeMutation
	hooks    []Hook
}

// SetDecisionID sets the "decision_id" field.
func (_c *ActionNodeCreate) SetDecisionID(v string) *ActionNodeCreate {
	_c.mutation.SetDecisionID(v)
	return _c
}

// SetActionType sets the "action_type" field.
func (_c *ActionNodeCreate) SetActionType(v actionnode.ActionType) *ActionNodeCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ActionNodeCreate) SetDescription(v string) *ActionNodeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *ActionNodeCreate) SetInput(v map[string]interface{}) *ActionNodeCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetOutput sets the "output" field.
func (_c *ActionNodeCreate) SetOutput(v map[string]interface{}) *ActionNodeCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ActionNodeCreate) SetTimestamp(v time.Time) *ActionNodeCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ActionNodeCreate) SetNillableTimestamp(v *time.Time) *ActionNodeCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ActionNodeCreate) SetDurationMs(v int64) *ActionNodeCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ActionNodeCreate) SetNillableDurationMs(v *int64) *ActionNodeCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActionNodeCreate) SetID(v string) *ActionNodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDecision sets the "decision" edge to the DecisionNode entity.
func (_c *ActionNodeCreate) SetDecision(v *DecisionNode) *ActionNodeCreate {
	return _c.SetDecisionID(v.ID)
}

// AddOutcomeIDs adds the "outcomes" edge to the OutcomeNode entity by IDs.
func (_c *ActionNodeCreate) AddOutcomeIDs(ids ...string) *ActionNodeCreate {
	_c.mutation.AddOutcomeIDs(ids...)
	return _c
}

// AddOutcomes adds the "outcomes" edges to the OutcomeNode entity.
func (_c *ActionNodeCreate) AddOutcomes(v ...*OutcomeNode) *ActionNodeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutcomeIDs(ids...)
}

// Mutation returns the ActionNodeMutation object of the builder.
func (_c *ActionNodeCreate) Mutation() *ActionNodeMutation {
	return _c.mutation
}

// Save creates the ActionNode in the database.
func (_c *ActionNodeCreate) Save(ctx context.Context) (*ActionNode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActionNodeCreate) SaveX(ctx context.Context) *ActionNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionNodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionNodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActionNodeCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := actionnode.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActionNodeCreate) check() error {
	if _, ok := _c.mutation.DecisionID(); !ok {
		return &ValidationError{Name: "decision_id", err: errors.New(`ent: missing required field "ActionNode.decision_id"`)}
	}
	if _, ok := _c.mutation.ActionType(); !ok {
		return &ValidationError{Name: "action_type", err: errors.New(`ent: missing required field "ActionNode.action_type"`)}
	}
	if v, ok := _c.mutation.ActionType(); ok {
		if err := actionnode.ActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "action_type", err: fmt.Errorf(`ent: validator failed for field "ActionNode.action_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ActionNode.description"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ActionNode.timestamp"`)}
	}
	if len(_c.mutation.DecisionIDs()) == 0 {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required edge "ActionNode.decision"`)}
	}
	return nil
}

func (_c *ActionNodeCreate) sqlSave(ctx context.Context) (*ActionNode, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ActionNode.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActionNodeCreate) createSpec() (*ActionNode, *sqlgraph.CreateSpec) {
	var (
		_node = &ActionNode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actionnode.Table, sqlgraph.NewFieldSpec(actionnode.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(actionnode.FieldActionType, field.TypeEnum, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(actionnode.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(actionnode.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(actionnode.FieldOutput, field.TypeJSON, value)
		_node.Output = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(actionnode.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(actionnode.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if nodes := _c.mutation.DecisionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   actionnode.DecisionTable,
			Columns: []string{actionnode.DecisionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(decisionnode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DecisionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OutcomesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ActionNodeCreateBulk is the builder for creating many ActionNode entities in bulk.
type ActionNodeCreateBulk struct {
	config
	err      error
	builders []*ActionNodeCreate
}

// Save creates the ActionNode entities in the database.
func (_c *ActionNodeCreateBulk) Save(ctx context.Context) ([]*ActionNode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActionNode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActionNodeMutation)
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
func (_c *ActionNodeCreateBulk) SaveX(ctx context.Context) []*ActionNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionNodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionNodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
