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
)

// DecisionNodeCreate is the builder for creating a DecisionNode entity.
type DecisionNodeCreate struct {
	config
	mutation *DecisionNodeMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *DecisionNodeCreate) SetSessionID(v string) *DecisionNodeCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *DecisionNodeCreate) SetNillableSessionID(v *string) *DecisionNodeCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *DecisionNodeCreate) SetAgentID(v string) *DecisionNodeCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *DecisionNodeCreate) SetPrompt(v string) *DecisionNodeCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *DecisionNodeCreate) SetReasoning(v string) *DecisionNodeCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *DecisionNodeCreate) SetNillableReasoning(v *string) *DecisionNodeCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DecisionNodeCreate) SetConfidence(v float64) *DecisionNodeCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *DecisionNodeCreate) SetNillableConfidence(v *float64) *DecisionNodeCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *DecisionNodeCreate) SetTimestamp(v time.Time) *DecisionNodeCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *DecisionNodeCreate) SetNillableTimestamp(v *time.Time) *DecisionNodeCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *DecisionNodeCreate) SetContext(v map[string]interface{}) *DecisionNodeCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DecisionNodeCreate) SetID(v string) *DecisionNodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddActionIDs adds the "actions" edge to the ActionNode entity by IDs.
func (_c *DecisionNodeCreate) AddActionIDs(ids ...string) *DecisionNodeCreate {
	_c.mutation.AddActionIDs(ids...)
	return _c
}

// AddActions adds the "actions" edges to the ActionNode entity.
func (_c *DecisionNodeCreate) AddActions(v ...*ActionNode) *DecisionNodeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActionIDs(ids...)
}

// Mutation returns the DecisionNodeMutation object of the builder.
func (_c *DecisionNodeCreate) Mutation() *DecisionNodeMutation {
	return _c.mutation
}

// Save creates the DecisionNode in the database.
func (_c *DecisionNodeCreate) Save(ctx context.Context) (*DecisionNode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DecisionNodeCreate) SaveX(ctx context.Context) *DecisionNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionNodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionNodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DecisionNodeCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := decisionnode.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := decisionnode.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DecisionNodeCreate) check() error {
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "DecisionNode.agent_id"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "DecisionNode.prompt"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "DecisionNode.confidence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "DecisionNode.timestamp"`)}
	}
	return nil
}

func (_c *DecisionNodeCreate) sqlSave(ctx context.Context) (*DecisionNode, error) {
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
			return nil, fmt.Errorf("unexpected DecisionNode.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DecisionNodeCreate) createSpec() (*DecisionNode, *sqlgraph.CreateSpec) {
	var (
		_node = &DecisionNode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(decisionnode.Table, sqlgraph.NewFieldSpec(decisionnode.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(decisionnode.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(decisionnode.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(decisionnode.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(decisionnode.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(decisionnode.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(decisionnode.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(decisionnode.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if nodes := _c.mutation.ActionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DecisionNodeCreateBulk is the builder for creating many DecisionNode entities in bulk.
type DecisionNodeCreateBulk struct {
	config
	err      error
	builders []*DecisionNodeCreate
}

// Save creates the DecisionNode entities in the database.
func (_c *DecisionNodeCreateBulk) Save(ctx context.Context) ([]*DecisionNode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DecisionNode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DecisionNodeMutation)
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
func (_c *DecisionNodeCreateBulk) SaveX(ctx context.Context) []*DecisionNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionNodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionNodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
