// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codecoder-dev/codecoder/ent/permissionrequest"
	"github.com/codecoder-dev/codecoder/ent/predicate"
)

// PermissionRequestUpdate is the builder for updating PermissionRequest entities.
type PermissionRequestUpdate struct {
	config
	hooks    []Hook
	mutation *PermissionRequestMutation
}

// Where appends a list predicates to the PermissionRequestUpdate builder.
func (_u *PermissionRequestUpdate) Where(ps ...predicate.PermissionRequest) *PermissionRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDecision sets the "decision" field.
func (_u *PermissionRequestUpdate) SetDecision(v permissionrequest.Decision) *PermissionRequestUpdate {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *PermissionRequestUpdate) SetNillableDecision(v *permissionrequest.Decision) *PermissionRequestUpdate {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// ClearDecision clears the value of the "decision" field.
func (_u *PermissionRequestUpdate) ClearDecision() *PermissionRequestUpdate {
	_u.mutation.ClearDecision()
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *PermissionRequestUpdate) SetDecidedBy(v permissionrequest.DecidedBy) *PermissionRequestUpdate {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *PermissionRequestUpdate) SetNillableDecidedBy(v *permissionrequest.DecidedBy) *PermissionRequestUpdate {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *PermissionRequestUpdate) ClearDecidedBy() *PermissionRequestUpdate {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *PermissionRequestUpdate) SetDecidedAt(v time.Time) *PermissionRequestUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *PermissionRequestUpdate) SetNillableDecidedAt(v *time.Time) *PermissionRequestUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *PermissionRequestUpdate) ClearDecidedAt() *PermissionRequestUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// Mutation returns the PermissionRequestMutation object of the builder.
func (_u *PermissionRequestUpdate) Mutation() *PermissionRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PermissionRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PermissionRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PermissionRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PermissionRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PermissionRequestUpdate) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := permissionrequest.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "PermissionRequest.decision": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DecidedBy(); ok {
		if err := permissionrequest.DecidedByValidator(v); err != nil {
			return &ValidationError{Name: "decided_by", err: fmt.Errorf(`ent: validator failed for field "PermissionRequest.decided_by": %w`, err)}
		}
	}
	return nil
}

func (_u *PermissionRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(permissionrequest.Table, permissionrequest.Columns, sqlgraph.NewFieldSpec(permissionrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.InputCleared() {
		_spec.ClearField(permissionrequest.FieldInput, field.TypeJSON)
	}
	if _u.mutation.PatternCleared() {
		_spec.ClearField(permissionrequest.FieldPattern, field.TypeString)
	}
	if _u.mutation.AssessmentReasonCleared() {
		_spec.ClearField(permissionrequest.FieldAssessmentReason, field.TypeString)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(permissionrequest.FieldDecision, field.TypeEnum, value)
	}
	if _u.mutation.DecisionCleared() {
		_spec.ClearField(permissionrequest.FieldDecision, field.TypeEnum)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(permissionrequest.FieldDecidedBy, field.TypeEnum, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(permissionrequest.FieldDecidedBy, field.TypeEnum)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(permissionrequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(permissionrequest.FieldDecidedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{permissionrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PermissionRequestUpdateOne is the builder for updating a single PermissionRequest entity.
type PermissionRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PermissionRequestMutation
}

// SetDecision sets the "decision" field.
func (_u *PermissionRequestUpdateOne) SetDecision(v permissionrequest.Decision) *PermissionRequestUpdateOne {
	_u.mutation.SetDecision(v)
	return _u
}

// SetNillableDecision sets the "decision" field if the given value is not nil.
func (_u *PermissionRequestUpdateOne) SetNillableDecision(v *permissionrequest.Decision) *PermissionRequestUpdateOne {
	if v != nil {
		_u.SetDecision(*v)
	}
	return _u
}

// ClearDecision clears the value of the "decision" field.
func (_u *PermissionRequestUpdateOne) ClearDecision() *PermissionRequestUpdateOne {
	_u.mutation.ClearDecision()
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *PermissionRequestUpdateOne) SetDecidedBy(v permissionrequest.DecidedBy) *PermissionRequestUpdateOne {
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *PermissionRequestUpdateOne) SetNillableDecidedBy(v *permissionrequest.DecidedBy) *PermissionRequestUpdateOne {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *PermissionRequestUpdateOne) ClearDecidedBy() *PermissionRequestUpdateOne {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *PermissionRequestUpdateOne) SetDecidedAt(v time.Time) *PermissionRequestUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *PermissionRequestUpdateOne) SetNillableDecidedAt(v *time.Time) *PermissionRequestUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *PermissionRequestUpdateOne) ClearDecidedAt() *PermissionRequestUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// Mutation returns the PermissionRequestMutation object of the builder.
func (_u *PermissionRequestUpdateOne) Mutation() *PermissionRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the PermissionRequestUpdate builder.
func (_u *PermissionRequestUpdateOne) Where(ps ...predicate.PermissionRequest) *PermissionRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PermissionRequestUpdateOne) Select(field string, fields ...string) *PermissionRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PermissionRequest entity.
func (_u *PermissionRequestUpdateOne) Save(ctx context.Context) (*PermissionRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PermissionRequestUpdateOne) SaveX(ctx context.Context) *PermissionRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PermissionRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PermissionRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PermissionRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Decision(); ok {
		if err := permissionrequest.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "PermissionRequest.decision": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DecidedBy(); ok {
		if err := permissionrequest.DecidedByValidator(v); err != nil {
			return &ValidationError{Name: "decided_by", err: fmt.Errorf(`ent: validator failed for field "PermissionRequest.decided_by": %w`, err)}
		}
	}
	return nil
}

func (_u *PermissionRequestUpdateOne) sqlSave(ctx context.Context) (_node *PermissionRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(permissionrequest.Table, permissionrequest.Columns, sqlgraph.NewFieldSpec(permissionrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PermissionRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, permissionrequest.FieldID)
		for _, f := range fields {
			if !permissionrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != permissionrequest.FieldID {
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
		_spec.ClearField(permissionrequest.FieldInput, field.TypeJSON)
	}
	if _u.mutation.PatternCleared() {
		_spec.ClearField(permissionrequest.FieldPattern, field.TypeString)
	}
	if _u.mutation.AssessmentReasonCleared() {
		_spec.ClearField(permissionrequest.FieldAssessmentReason, field.TypeString)
	}
	if value, ok := _u.mutation.Decision(); ok {
		_spec.SetField(permissionrequest.FieldDecision, field.TypeEnum, value)
	}
	if _u.mutation.DecisionCleared() {
		_spec.ClearField(permissionrequest.FieldDecision, field.TypeEnum)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(permissionrequest.FieldDecidedBy, field.TypeEnum, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(permissionrequest.FieldDecidedBy, field.TypeEnum)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(permissionrequest.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(permissionrequest.FieldDecidedAt, field.TypeTime)
	}
	_node = &PermissionRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{permissionrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
