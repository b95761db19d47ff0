// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codecoder-dev/codecoder/ent/causaledge"
)

// CausalEdgeCreate is the builder for creating a CausalEdge entity.
type CausalEdgeCreate struct {
	config
	mutation *CausalEdgeMutation
	hooks    []Hook
}

// SetSourceNode sets the "source_node" field.
func (_c *CausalEdgeCreate) SetSourceNode(v string) *CausalEdgeCreate {
	_c.mutation.SetSourceNode(v)
	return _c
}

// SetTargetNode sets the "target_node" field.
func (_c *CausalEdgeCreate) SetTargetNode(v string) *CausalEdgeCreate {
	_c.mutation.SetTargetNode(v)
	return _c
}

// SetRelationship sets the "relationship" field.
func (_c *CausalEdgeCreate) SetRelationship(v causaledge.Relationship) *CausalEdgeCreate {
	_c.mutation.SetRelationship(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *CausalEdgeCreate) SetWeight(v float64) *CausalEdgeCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_c *CausalEdgeCreate) SetNillableWeight(v *float64) *CausalEdgeCreate {
	if v != nil {
		_c.SetWeight(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CausalEdgeCreate) SetID(v string) *CausalEdgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CausalEdgeMutation object of the builder.
func (_c *CausalEdgeCreate) Mutation() *CausalEdgeMutation {
	return _c.mutation
}

// Save creates the CausalEdge in the database.
func (_c *CausalEdgeCreate) Save(ctx context.Context) (*CausalEdge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CausalEdgeCreate) SaveX(ctx context.Context) *CausalEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CausalEdgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CausalEdgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CausalEdgeCreate) defaults() {
	if _, ok := _c.mutation.Weight(); !ok {
		v := causaledge.DefaultWeight
		_c.mutation.SetWeight(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CausalEdgeCreate) check() error {
	if _, ok := _c.mutation.SourceNode(); !ok {
		return &ValidationError{Name: "source_node", err: errors.New(`ent: missing required field "CausalEdge.source_node"`)}
	}
	if _, ok := _c.mutation.TargetNode(); !ok {
		return &ValidationError{Name: "target_node", err: errors.New(`ent: missing required field "CausalEdge.target_node"`)}
	}
	if _, ok := _c.mutation.Relationship(); !ok {
		return &ValidationError{Name: "relationship", err: errors.New(`ent: missing required field "CausalEdge.relationship"`)}
	}
	if v, ok := _c.mutation.Relationship(); ok {
		if err := causaledge.RelationshipValidator(v); err != nil {
			return &ValidationError{Name: "relationship", err: fmt.Errorf(`ent: validator failed for field "CausalEdge.relationship": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "CausalEdge.weight"`)}
	}
	return nil
}

func (_c *CausalEdgeCreate) sqlSave(ctx context.Context) (*CausalEdge, error) {
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
			return nil, fmt.Errorf("unexpected CausalEdge.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CausalEdgeCreate) createSpec() (*CausalEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &CausalEdge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(causaledge.Table, sqlgraph.NewFieldSpec(causaledge.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceNode(); ok {
		_spec.SetField(causaledge.FieldSourceNode, field.TypeString, value)
		_node.SourceNode = value
	}
	if value, ok := _c.mutation.TargetNode(); ok {
		_spec.SetField(causaledge.FieldTargetNode, field.TypeString, value)
		_node.TargetNode = value
	}
	if value, ok := _c.mutation.Relationship(); ok {
		_spec.SetField(causaledge.FieldRelationship, field.TypeEnum, value)
		_node.Relationship = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(causaledge.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	return _node, _spec
}

// CausalEdgeCreateBulk is the builder for creating many CausalEdge entities in bulk.
type CausalEdgeCreateBulk struct {
	config
	err      error
	builders []*CausalEdgeCreate
}

// Save creates the CausalEdge entities in the database.
func (_c *CausalEdgeCreateBulk) Save(ctx context.Context) ([]*CausalEdge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CausalEdge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CausalEdgeMutation)
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
func (_c *CausalEdgeCreateBulk) SaveX(ctx context.Context) []*CausalEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CausalEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CausalEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
