// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codecoder-dev/codecoder/ent/permissionrequest"
)

// PermissionRequestCreate is the builder for creating a PermissionRequest entity.
type PermissionRequestCreate struct {
	config
	mutation *PermissionRequestMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *PermissionRequestCreate) SetTaskID(v string) *PermissionRequestCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetTool sets the "tool" field.
func (_c *PermissionRequestCreate) SetTool(v string) *PermissionRequestCreate {
	_c.mutation.SetTool(v)
	return _c
}

// SetInput sets the "input" field.
func (_c *PermissionRequestCreate) SetInput(v map[string]interface{}) *PermissionRequestCreate {
	_c.mutation.SetInput(v)
	return _c
}

// SetPattern sets the "pattern" field.
func (_c *PermissionRequestCreate) SetPattern(v string) *PermissionRequestCreate {
	_c.mutation.SetPattern(v)
	return _c
}

// SetNillablePattern sets the "pattern" field if the given value is not nil.
func (_c *PermissionRequestCreate) SetNillablePattern(v *string) *PermissionRequestCreate {
	if v != nil {
		_c.SetPattern(*v)
	}
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *PermissionRequestCreate) SetRiskLevel(v permissionrequest.RiskLevel) *PermissionRequestCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetAssessmentReason sets the "assessment_reason" field.
func (_c *PermissionRequestCreate) SetAssessmentReason(v string) *PermissionRequestCreate {
	_c.mutation.SetAssessmentReason(v)
	return _c
}

// SetNillableAssessmentReason sets the "assessment_reason" field if the given value is not nil.
func (_c *PermissionRequestCreate) SetNillableAssessmentReason(v *string) *PermissionRequestCreate {
	if v != nil {
		_c.SetAssessmentReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PermissionRequestCreate) SetCreatedAt(v time.Time) *PermissionRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PermissionRequestCreate) SetNillableCreatedAt(v *time.Time) *PermissionRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDecision sets the "decision" field.
func (_c *PermissionRequestCreate) SetDecision(v permissionrequest.Decision) *PermissionRequestCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_c *PermissionRequestCreate) SetNillableDecision(v *permissionrequest.Decision) *PermissionRequestCreate {
	if v != nil {
		_c.SetDecision(*v)
	}
	return _c
}

// SetDecidedBy sets the "decided_by" field.
func (_c *PermissionRequestCreate) SetDecidedBy(v permissionrequest.DecidedBy) *PermissionRequestCreate {
	_c.mutation.SetDecidedBy(v)
	return _c
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_c *PermissionRequestCreate) SetNillableDecidedBy(v *permissionrequest.DecidedBy) *PermissionRequestCreate {
	if v != nil {
		_c.SetDecidedBy(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *PermissionRequestCreate) SetDecidedAt(v time.Time) *PermissionRequestCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *PermissionRequestCreate) SetNillableDecidedAt(v *time.Time) *PermissionRequestCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PermissionRequestCreate) SetID(v string) *PermissionRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PermissionRequestMutation object of the builder.
func (_c *PermissionRequestCreate) Mutation() *PermissionRequestMutation {
	return _c.mutation
}

// Save creates the PermissionRequest in the database.
func (_c *PermissionRequestCreate) Save(ctx context.Context) (*PermissionRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PermissionRequestCreate) SaveX(ctx context.Context) *PermissionRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PermissionRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PermissionRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PermissionRequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := permissionrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PermissionRequestCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "PermissionRequest.task_id"`)}
	}
	if _, ok := _c.mutation.Tool(); !ok {
		return &ValidationError{Name: "tool", err: errors.New(`ent: missing required field "PermissionRequest.tool"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "PermissionRequest.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := permissionrequest.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "PermissionRequest.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PermissionRequest.created_at"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := permissionrequest.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "PermissionRequest.decision": %w`, err)}
		}
	}
	if v, ok := _c.mutation.DecidedBy(); ok {
		if err := permissionrequest.DecidedByValidator(v); err != nil {
			return &ValidationError{Name: "decided_by", err: fmt.Errorf(`ent: validator failed for field "PermissionRequest.decided_by": %w`, err)}
		}
	}
	return nil
}

func (_c *PermissionRequestCreate) sqlSave(ctx context.Context) (*PermissionRequest, error) {
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
			return nil, fmt.Errorf("unexpected PermissionRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PermissionRequestCreate) createSpec() (*PermissionRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &PermissionRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(permissionrequest.Table, sqlgraph.NewFieldSpec(permissionrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(permissionrequest.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.Tool(); ok {
		_spec.SetField(permissionrequest.FieldTool, field.TypeString, value)
		_node.Tool = value
	}
	if value, ok := _c.mutation.Input(); ok {
		_spec.SetField(permissionrequest.FieldInput, field.TypeJSON, value)
		_node.Input = value
	}
	if value, ok := _c.mutation.Pattern(); ok {
		_spec.SetField(permissionrequest.FieldPattern, field.TypeString, value)
		_node.Pattern = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(permissionrequest.FieldRiskLevel, field.TypeEnum, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.AssessmentReason(); ok {
		_spec.SetField(permissionrequest.FieldAssessmentReason, field.TypeString, value)
		_node.AssessmentReason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(permissionrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(permissionrequest.FieldDecision, field.TypeEnum, value)
		_node.Decision = &value
	}
	if value, ok := _c.mutation.DecidedBy(); ok {
		_spec.SetField(permissionrequest.FieldDecidedBy, field.TypeEnum, value)
		_node.DecidedBy = &value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(permissionrequest.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	return _node, _spec
}

// PermissionRequestCreateBulk is the builder for creating many PermissionRequest entities in bulk.
type PermissionRequestCreateBulk struct {
	config
	err      error
	builders []*PermissionRequestCreate
}

// Save creates the PermissionRequest entities in the database.
func (_c *PermissionRequestCreateBulk) Save(ctx context.Context) ([]*PermissionRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PermissionRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PermissionRequestMutation)
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
func (_c *PermissionRequestCreateBulk) SaveX(ctx context.Context) []*PermissionRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PermissionRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PermissionRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
