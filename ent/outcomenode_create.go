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
	"github.com/codecoder-dev/codecoder/ent/outcomenode"
)

// OutcomeNodeCreate is the builder for creating a OutcomeNode entity.
type OutcomeNodeCreate struct {
	config
	mutation *OutcomeNodeMutation
	hooks    []Hook
}

// SetActionID sets the "action_id" field.
func (_c *OutcomeNodeCreate) SetActionID(v string) *OutcomeNodeCreate {
	_c.mutation.SetActionID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OutcomeNodeCreate) SetStatus(v outcomenode.Status) *OutcomeNodeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *OutcomeNodeCreate) SetDescription(v string) *OutcomeNodeCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *OutcomeNodeCreate) SetMetrics(v map[string]interface{}) *OutcomeNodeCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *OutcomeNodeCreate) SetFeedback(v string) *OutcomeNodeCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *OutcomeNodeCreate) SetNillableFeedback(v *string) *OutcomeNodeCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *OutcomeNodeCreate) SetTimestamp(v time.Time) *OutcomeNodeCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *OutcomeNodeCreate) SetNillableTimestamp(v *time.Time) *OutcomeNodeCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OutcomeNodeCreate) SetID(v string) *OutcomeNodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAction sets the "action" edge to the ActionNode entity.
func (_c *OutcomeNodeCreate) SetAction(v *ActionNode) *OutcomeNodeCreate {
	return _c.SetActionID(v.ID)
}

// Mutation returns the OutcomeNodeMutation object of the builder.
func (_c *OutcomeNodeCreate) Mutation() *OutcomeNodeMutation {
	return _c.mutation
}

// Save creates the OutcomeNode in the database.
func (_c *OutcomeNodeCreate) Save(ctx context.Context) (*OutcomeNode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OutcomeNodeCreate) SaveX(ctx context.Context) *OutcomeNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutcomeNodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutcomeNodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OutcomeNodeCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := outcomenode.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OutcomeNodeCreate) check() error {
	if _, ok := _c.mutation.ActionID(); !ok {
		return &ValidationError{Name: "action_id", err: errors.New(`ent: missing required field "OutcomeNode.action_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "OutcomeNode.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := outcomenode.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OutcomeNode.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "OutcomeNode.description"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "OutcomeNode.timestamp"`)}
	}
	if len(_c.mutation.ActionIDs()) == 0 {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required edge "OutcomeNode.action"`)}
	}
	return nil
}

func (_c *OutcomeNodeCreate) sqlSave(ctx context.Context) (*OutcomeNode, error) {
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
			return nil, fmt.Errorf("unexpected OutcomeNode.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OutcomeNodeCreate) createSpec() (*OutcomeNode, *sqlgraph.CreateSpec) {
	var (
		_node = &OutcomeNode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(outcomenode.Table, sqlgraph.NewFieldSpec(outcomenode.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(outcomenode.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(outcomenode.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(outcomenode.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(outcomenode.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(outcomenode.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if nodes := _c.mutation.ActionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   outcomenode.ActionTable,
			Columns: []string{outcomenode.ActionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionnode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ActionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OutcomeNodeCreateBulk is the builder for creating many OutcomeNode entities in bulk.
type OutcomeNodeCreateBulk struct {
	config
	err      error
	builders []*OutcomeNodeCreate
}

// Save creates the OutcomeNode entities in the database.
func (_c *OutcomeNodeCreateBulk) Save(ctx context.Context) ([]*OutcomeNode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OutcomeNode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OutcomeNodeMutation)
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
func (_c *OutcomeNodeCreateBulk) SaveX(ctx context.Context) []*OutcomeNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OutcomeNodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OutcomeNodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
