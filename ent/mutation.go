// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codecoder-dev/codecoder/ent/actionnode"
	"github.com/codecoder-dev/codecoder/ent/causaledge"
	"github.com/codecoder-dev/codecoder/ent/decisionnode"
	"github.com/codecoder-dev/codecoder/ent/outcomenode"
	"github.com/codecoder-dev/codecoder/ent/permissionrequest"
	"github.com/codecoder-dev/codecoder/ent/predicate"
	"github.com/codecoder-dev/codecoder/ent/task"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActionNode        = "ActionNode"
	TypeCausalEdge        = "CausalEdge"
	TypeDecisionNode      = "DecisionNode"
	TypeOutcomeNode       = "OutcomeNode"
	TypePermissionRequest = "PermissionRequest"
	TypeTask              = "Task"
)

// ActionNodeMutation represents an operation that mutates the ActionNode nodes in the graph.
type ActionNodeMutation struct {
	config
	op              Op
	typ             string
	id              *string
	action_type     *actionnode.ActionType
	description     *string
	input           *map[string]interface{}
	output          *map[string]interface{}
	timestamp       *time.Time
	duration_ms     *int64
	addduration_ms  *int64
	clearedFields   map[string]struct{}
	decision        *string
	cleareddecision bool
	outcomes        map[string]struct{}
	removedoutcomes map[string]struct{}
	clearedoutcomes bool
	done            bool
	oldValue        func(context.Context) (*ActionNode, error)
	predicates      []predicate.ActionNode
}

var _ ent.Mutation = (*ActionNodeMutation)(nil)

// actionnodeOption allows management of the mutation configuration using functional options.
type actionnodeOption func(*ActionNodeMutation)

// newActionNodeMutation creates new mutation for the ActionNode entity.
func newActionNodeMutation(c config, op Op, opts ...actionnodeOption) *ActionNodeMutation {
	m := &ActionNodeMutation{
		config:        c,
		op:            op,
		typ:           TypeActionNode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActionNodeID sets the ID field of the mutation.
func withActionNodeID(id string) actionnodeOption {
	return func(m *ActionNodeMutation) {
		var (
			err   error
			once  sync.Once
			value *ActionNode
		)
		m.oldValue = func(ctx context.Context) (*ActionNode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActionNode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActionNode sets the old ActionNode of the mutation.
func withActionNode(node *ActionNode) actionnodeOption {
	return func(m *ActionNodeMutation) {
		m.oldValue = func(context.Context) (*ActionNode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActionNodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActionNodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActionNode entities.
func (m *ActionNodeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActionNodeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActionNodeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActionNode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDecisionID sets the "decision_id" field.
func (m *ActionNodeMutation) SetDecisionID(s string) {
	m.decision = &s
}

// DecisionID returns the value of the "decision_id" field in the mutation.
func (m *ActionNodeMutation) DecisionID() (r string, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionID returns the old "decision_id" field's value of the ActionNode entity.
// If the ActionNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionNodeMutation) OldDecisionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionID: %w", err)
	}
	return oldValue.DecisionID, nil
}

// ResetDecisionID resets all changes to the "decision_id" field.
func (m *ActionNodeMutation) ResetDecisionID() {
	m.decision = nil
}

// SetActionType sets the "action_type" field.
func (m *ActionNodeMutation) SetActionType(at actionnode.ActionType) {
	m.action_type = &at
}

// ActionType returns the value of the "action_type" field in the mutation.
func (m *ActionNodeMutation) ActionType() (r actionnode.ActionType, exists bool) {
	v := m.action_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActionType returns the old "action_type" field's value of the ActionNode entity.
// If the ActionNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionNodeMutation) OldActionType(ctx context.Context) (v actionnode.ActionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionType: %w", err)
	}
	return oldValue.ActionType, nil
}

// ResetActionType resets all changes to the "action_type" field.
func (m *ActionNodeMutation) ResetActionType() {
	m.action_type = nil
}

// SetDescription sets the "description" field.
func (m *ActionNodeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ActionNodeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ActionNode entity.
// If the ActionNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionNodeMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ActionNodeMutation) ResetDescription() {
	m.description = nil
}

// SetInput sets the "input" field.
func (m *ActionNodeMutation) SetInput(value map[string]interface{}) {
	m.input = &value
}

// Input returns the value of the "input" field in the mutation.
func (m *ActionNodeMutation) Input() (r map[string]interface{}, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the ActionNode entity.
// If the ActionNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionNodeMutation) OldInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *ActionNodeMutation) ClearInput() {
	m.input = nil
	m.clearedFields[actionnode.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *ActionNodeMutation) InputCleared() bool {
	_, ok := m.clearedFields[actionnode.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *ActionNodeMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, actionnode.FieldInput)
}

// SetOutput sets the "output" field.
func (m *ActionNodeMutation) SetOutput(value map[string]interface{}) {
	m.output = &value
}

// Output returns the value of the "output" field in the mutation.
func (m *ActionNodeMutation) Output() (r map[string]interface{}, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the ActionNode entity.
// If the ActionNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionNodeMutation) OldOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *ActionNodeMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[actionnode.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *ActionNodeMutation) OutputCleared() bool {
	_, ok := m.clearedFields[actionnode.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *ActionNodeMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, actionnode.FieldOutput)
}

// SetTimestamp sets the "timestamp" field.
func (m *ActionNodeMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ActionNodeMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ActionNode entity.
// If the ActionNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionNodeMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ActionNodeMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *ActionNodeMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ActionNodeMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ActionNode entity.
// If the ActionNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionNodeMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ActionNodeMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ActionNodeMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ActionNodeMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[actionnode.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ActionNodeMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[actionnode.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ActionNodeMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, actionnode.FieldDurationMs)
}

// ClearDecision clears the "decision" edge to the DecisionNode entity.
func (m *ActionNodeMutation) ClearDecision() {
	m.cleareddecision = true
	m.clearedFields[actionnode.FieldDecisionID] = struct{}{}
}

// DecisionCleared reports if the "decision" edge to the DecisionNode entity was cleared.
func (m *ActionNodeMutation) DecisionCleared() bool {
	return m.cleareddecision
}

// DecisionIDs returns the "decision" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DecisionID instead. It exists only for internal usage by the builders.
func (m *ActionNodeMutation) DecisionIDs() (ids []string) {
	if id := m.decision; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDecision resets all changes to the "decision" edge.
func (m *ActionNodeMutation) ResetDecision() {
	m.decision = nil
	m.cleareddecision = false
}

// AddOutcomeIDs adds the "outcomes" edge to the OutcomeNode entity by ids.
func (m *ActionNodeMutation) AddOutcomeIDs(ids ...string) {
	if m.outcomes == nil {
		m.outcomes = make(map[string]struct{})
	}
	for i := range ids {
		m.outcomes[ids[i]] = struct{}{}
	}
}

// ClearOutcomes clears the "outcomes" edge to the OutcomeNode entity.
func (m *ActionNodeMutation) ClearOutcomes() {
	m.clearedoutcomes = true
}

// OutcomesCleared reports if the "outcomes" edge to the OutcomeNode entity was cleared.
func (m *ActionNodeMutation) OutcomesCleared() bool {
	return m.clearedoutcomes
}

// RemoveOutcomeIDs removes the "outcomes" edge to the OutcomeNode entity by IDs.
func (m *ActionNodeMutation) RemoveOutcomeIDs(ids ...string) {
	if m.removedoutcomes == nil {
		m.removedoutcomes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.outcomes, ids[i])
		m.removedoutcomes[ids[i]] = struct{}{}
	}
}

// RemovedOutcomes returns the removed IDs of the "outcomes" edge to the OutcomeNode entity.
func (m *ActionNodeMutation) RemovedOutcomesIDs() (ids []string) {
	for id := range m.removedoutcomes {
		ids = append(ids, id)
	}
	return
}

// OutcomesIDs returns the "outcomes" edge IDs in the mutation.
func (m *ActionNodeMutation) OutcomesIDs() (ids []string) {
	for id := range m.outcomes {
		ids = append(ids, id)
	}
	return
}

// ResetOutcomes resets all changes to the "outcomes" edge.
func (m *ActionNodeMutation) ResetOutcomes() {
	m.outcomes = nil
	m.clearedoutcomes = false
	m.removedoutcomes = nil
}

// Where appends a list predicates to the ActionNodeMutation builder.
func (m *ActionNodeMutation) Where(ps ...predicate.ActionNode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActionNodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActionNodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActionNode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActionNodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActionNodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActionNode).
func (m *ActionNodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActionNodeMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.decision != nil {
		fields = append(fields, actionnode.FieldDecisionID)
	}
	if m.action_type != nil {
		fields = append(fields, actionnode.FieldActionType)
	}
	if m.description != nil {
		fields = append(fields, actionnode.FieldDescription)
	}
	if m.input != nil {
		fields = append(fields, actionnode.FieldInput)
	}
	if m.output != nil {
		fields = append(fields, actionnode.FieldOutput)
	}
	if m.timestamp != nil {
		fields = append(fields, actionnode.FieldTimestamp)
	}
	if m.duration_ms != nil {
		fields = append(fields, actionnode.FieldDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActionNodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case actionnode.FieldDecisionID:
		return m.DecisionID()
	case actionnode.FieldActionType:
		return m.ActionType()
	case actionnode.FieldDescription:
		return m.Description()
	case actionnode.FieldInput:
		return m.Input()
	case actionnode.FieldOutput:
		return m.Output()
	case actionnode.FieldTimestamp:
		return m.Timestamp()
	case actionnode.FieldDurationMs:
		return m.DurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActionNodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case actionnode.FieldDecisionID:
		return m.OldDecisionID(ctx)
	case actionnode.FieldActionType:
		return m.OldActionType(ctx)
	case actionnode.FieldDescription:
		return m.OldDescription(ctx)
	case actionnode.FieldInput:
		return m.OldInput(ctx)
	case actionnode.FieldOutput:
		return m.OldOutput(ctx)
	case actionnode.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case actionnode.FieldDurationMs:
		return m.OldDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown ActionNode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionNodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case actionnode.FieldDecisionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionID(v)
		return nil
	case actionnode.FieldActionType:
		v, ok := value.(actionnode.ActionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionType(v)
		return nil
	case actionnode.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case actionnode.FieldInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case actionnode.FieldOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case actionnode.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case actionnode.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ActionNode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActionNodeMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, actionnode.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActionNodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case actionnode.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionNodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case actionnode.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ActionNode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActionNodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(actionnode.FieldInput) {
		fields = append(fields, actionnode.FieldInput)
	}
	if m.FieldCleared(actionnode.FieldOutput) {
		fields = append(fields, actionnode.FieldOutput)
	}
	if m.FieldCleared(actionnode.FieldDurationMs) {
		fields = append(fields, actionnode.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActionNodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActionNodeMutation) ClearField(name string) error {
	switch name {
	case actionnode.FieldInput:
		m.ClearInput()
		return nil
	case actionnode.FieldOutput:
		m.ClearOutput()
		return nil
	case actionnode.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown ActionNode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActionNodeMutation) ResetField(name string) error {
	switch name {
	case actionnode.FieldDecisionID:
		m.ResetDecisionID()
		return nil
	case actionnode.FieldActionType:
		m.ResetActionType()
		return nil
	case actionnode.FieldDescription:
		m.ResetDescription()
		return nil
	case actionnode.FieldInput:
		m.ResetInput()
		return nil
	case actionnode.FieldOutput:
		m.ResetOutput()
		return nil
	case actionnode.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case actionnode.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	}
	return fmt.Errorf("unknown ActionNode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActionNodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.decision != nil {
		edges = append(edges, actionnode.EdgeDecision)
	}
	if m.outcomes != nil {
		edges = append(edges, actionnode.EdgeOutcomes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActionNodeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case actionnode.EdgeDecision:
		if id := m.decision; id != nil {
			return []ent.Value{*id}
		}
	case actionnode.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.outcomes))
		for id := range m.outcomes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActionNodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedoutcomes != nil {
		edges = append(edges, actionnode.EdgeOutcomes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActionNodeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case actionnode.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.removedoutcomes))
		for id := range m.removedoutcomes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActionNodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddecision {
		edges = append(edges, actionnode.EdgeDecision)
	}
	if m.clearedoutcomes {
		edges = append(edges, actionnode.EdgeOutcomes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActionNodeMutation) EdgeCleared(name string) bool {
	switch name {
	case actionnode.EdgeDecision:
		return m.cleareddecision
	case actionnode.EdgeOutcomes:
		return m.clearedoutcomes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActionNodeMutation) ClearEdge(name string) error {
	switch name {
	case actionnode.EdgeDecision:
		m.ClearDecision()
		return nil
	}
	return fmt.Errorf("unknown ActionNode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActionNodeMutation) ResetEdge(name string) error {
	switch name {
	case actionnode.EdgeDecision:
		m.ResetDecision()
		return nil
	case actionnode.EdgeOutcomes:
		m.ResetOutcomes()
		return nil
	}
	return fmt.Errorf("unknown ActionNode edge %s", name)
}

// CausalEdgeMutation represents an operation that mutates the CausalEdge nodes in the graph.
type CausalEdgeMutation struct {
	config
	op            Op
	typ           string
	id            *string
	source_node   *string
	target_node   *string
	relationship  *causaledge.Relationship
	weight        *float64
	addweight     *float64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CausalEdge, error)
	predicates    []predicate.CausalEdge
}

var _ ent.Mutation = (*CausalEdgeMutation)(nil)

// causaledgeOption allows management of the mutation configuration using functional options.
type causaledgeOption func(*CausalEdgeMutation)

// newCausalEdgeMutation creates new mutation for the CausalEdge entity.
func newCausalEdgeMutation(c config, op Op, opts ...causaledgeOption) *CausalEdgeMutation {
	m := &CausalEdgeMutation{
		config:        c,
		op:            op,
		typ:           TypeCausalEdge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCausalEdgeID sets the ID field of the mutation.
func withCausalEdgeID(id string) causaledgeOption {
	return func(m *CausalEdgeMutation) {
		var (
			err   error
			once  sync.Once
			value *CausalEdge
		)
		m.oldValue = func(ctx context.Context) (*CausalEdge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CausalEdge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCausalEdge sets the old CausalEdge of the mutation.
func withCausalEdge(node *CausalEdge) causaledgeOption {
	return func(m *CausalEdgeMutation) {
		m.oldValue = func(context.Context) (*CausalEdge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CausalEdgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CausalEdgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CausalEdge entities.
func (m *CausalEdgeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CausalEdgeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CausalEdgeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CausalEdge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceNode sets the "source_node" field.
func (m *CausalEdgeMutation) SetSourceNode(s string) {
	m.source_node = &s
}

// SourceNode returns the value of the "source_node" field in the mutation.
func (m *CausalEdgeMutation) SourceNode() (r string, exists bool) {
	v := m.source_node
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceNode returns the old "source_node" field's value of the CausalEdge entity.
// If the CausalEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CausalEdgeMutation) OldSourceNode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceNode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceNode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceNode: %w", err)
	}
	return oldValue.SourceNode, nil
}

// ResetSourceNode resets all changes to the "source_node" field.
func (m *CausalEdgeMutation) ResetSourceNode() {
	m.source_node = nil
}

// SetTargetNode sets the "target_node" field.
func (m *CausalEdgeMutation) SetTargetNode(s string) {
	m.target_node = &s
}

// TargetNode returns the value of the "target_node" field in the mutation.
func (m *CausalEdgeMutation) TargetNode() (r string, exists bool) {
	v := m.target_node
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetNode returns the old "target_node" field's value of the CausalEdge entity.
// If the CausalEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CausalEdgeMutation) OldTargetNode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetNode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetNode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetNode: %w", err)
	}
	return oldValue.TargetNode, nil
}

// ResetTargetNode resets all changes to the "target_node" field.
func (m *CausalEdgeMutation) ResetTargetNode() {
	m.target_node = nil
}

// SetRelationship sets the "relationship" field.
func (m *CausalEdgeMutation) SetRelationship(c causaledge.Relationship) {
	m.relationship = &c
}

// Relationship returns the value of the "relationship" field in the mutation.
func (m *CausalEdgeMutation) Relationship() (r causaledge.Relationship, exists bool) {
	v := m.relationship
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationship returns the old "relationship" field's value of the CausalEdge entity.
// If the CausalEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CausalEdgeMutation) OldRelationship(ctx context.Context) (v causaledge.Relationship, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationship is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationship requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationship: %w", err)
	}
	return oldValue.Relationship, nil
}

// ResetRelationship resets all changes to the "relationship" field.
func (m *CausalEdgeMutation) ResetRelationship() {
	m.relationship = nil
}

// SetWeight sets the "weight" field.
func (m *CausalEdgeMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *CausalEdgeMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the CausalEdge entity.
// If the CausalEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CausalEdgeMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *CausalEdgeMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *CausalEdgeMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *CausalEdgeMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// Where appends a list predicates to the CausalEdgeMutation builder.
func (m *CausalEdgeMutation) Where(ps ...predicate.CausalEdge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CausalEdgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CausalEdgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CausalEdge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CausalEdgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CausalEdgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CausalEdge).
func (m *CausalEdgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CausalEdgeMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.source_node != nil {
		fields = append(fields, causaledge.FieldSourceNode)
	}
	if m.target_node != nil {
		fields = append(fields, causaledge.FieldTargetNode)
	}
	if m.relationship != nil {
		fields = append(fields, causaledge.FieldRelationship)
	}
	if m.weight != nil {
		fields = append(fields, causaledge.FieldWeight)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CausalEdgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case causaledge.FieldSourceNode:
		return m.SourceNode()
	case causaledge.FieldTargetNode:
		return m.TargetNode()
	case causaledge.FieldRelationship:
		return m.Relationship()
	case causaledge.FieldWeight:
		return m.Weight()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CausalEdgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case causaledge.FieldSourceNode:
		return m.OldSourceNode(ctx)
	case causaledge.FieldTargetNode:
		return m.OldTargetNode(ctx)
	case causaledge.FieldRelationship:
		return m.OldRelationship(ctx)
	case causaledge.FieldWeight:
		return m.OldWeight(ctx)
	}
	return nil, fmt.Errorf("unknown CausalEdge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CausalEdgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case causaledge.FieldSourceNode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceNode(v)
		return nil
	case causaledge.FieldTargetNode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetNode(v)
		return nil
	case causaledge.FieldRelationship:
		v, ok := value.(causaledge.Relationship)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationship(v)
		return nil
	case causaledge.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	}
	return fmt.Errorf("unknown CausalEdge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CausalEdgeMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, causaledge.FieldWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CausalEdgeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case causaledge.FieldWeight:
		return m.AddedWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CausalEdgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case causaledge.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	}
	return fmt.Errorf("unknown CausalEdge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CausalEdgeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CausalEdgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CausalEdgeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CausalEdge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CausalEdgeMutation) ResetField(name string) error {
	switch name {
	case causaledge.FieldSourceNode:
		m.ResetSourceNode()
		return nil
	case causaledge.FieldTargetNode:
		m.ResetTargetNode()
		return nil
	case causaledge.FieldRelationship:
		m.ResetRelationship()
		return nil
	case causaledge.FieldWeight:
		m.ResetWeight()
		return nil
	}
	return fmt.Errorf("unknown CausalEdge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CausalEdgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CausalEdgeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CausalEdgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CausalEdgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CausalEdgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CausalEdgeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CausalEdgeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CausalEdge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CausalEdgeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CausalEdge edge %s", name)
}

// DecisionNodeMutation represents an operation that mutates the DecisionNode nodes in the graph.
type DecisionNodeMutation struct {
	config
	op             Op
	typ            string
	id             *string
	session_id     *string
	agent_id       *string
	prompt         *string
	reasoning      *string
	confidence     *float64
	addconfidence  *float64
	timestamp      *time.Time
	context        *map[string]interface{}
	clearedFields  map[string]struct{}
	actions        map[string]struct{}
	removedactions map[string]struct{}
	clearedactions bool
	done           bool
	oldValue       func(context.Context) (*DecisionNode, error)
	predicates     []predicate.DecisionNode
}

var _ ent.Mutation = (*DecisionNodeMutation)(nil)

// decisionnodeOption allows management of the mutation configuration using functional options.
type decisionnodeOption func(*DecisionNodeMutation)

// newDecisionNodeMutation creates new mutation for the DecisionNode entity.
func newDecisionNodeMutation(c config, op Op, opts ...decisionnodeOption) *DecisionNodeMutation {
	m := &DecisionNodeMutation{
		config:        c,
		op:            op,
		typ:           TypeDecisionNode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDecisionNodeID sets the ID field of the mutation.
func withDecisionNodeID(id string) decisionnodeOption {
	return func(m *DecisionNodeMutation) {
		var (
			err   error
			once  sync.Once
			value *DecisionNode
		)
		m.oldValue = func(ctx context.Context) (*DecisionNode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DecisionNode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDecisionNode sets the old DecisionNode of the mutation.
func withDecisionNode(node *DecisionNode) decisionnodeOption {
	return func(m *DecisionNodeMutation) {
		m.oldValue = func(context.Context) (*DecisionNode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DecisionNodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DecisionNodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DecisionNode entities.
func (m *DecisionNodeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DecisionNodeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DecisionNodeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DecisionNode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *DecisionNodeMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *DecisionNodeMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the DecisionNode entity.
// If the DecisionNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionNodeMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *DecisionNodeMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[decisionnode.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *DecisionNodeMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[decisionnode.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *DecisionNodeMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, decisionnode.FieldSessionID)
}

// SetAgentID sets the "agent_id" field.
func (m *DecisionNodeMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *DecisionNodeMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the DecisionNode entity.
// If the DecisionNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionNodeMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *DecisionNodeMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetPrompt sets the "prompt" field.
func (m *DecisionNodeMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *DecisionNodeMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the DecisionNode entity.
// If the DecisionNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionNodeMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *DecisionNodeMutation) ResetPrompt() {
	m.prompt = nil
}

// SetReasoning sets the "reasoning" field.
func (m *DecisionNodeMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *DecisionNodeMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the DecisionNode entity.
// If the DecisionNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionNodeMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *DecisionNodeMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[decisionnode.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *DecisionNodeMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[decisionnode.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *DecisionNodeMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, decisionnode.FieldReasoning)
}

// SetConfidence sets the "confidence" field.
func (m *DecisionNodeMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *DecisionNodeMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the DecisionNode entity.
// If the DecisionNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionNodeMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *DecisionNodeMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *DecisionNodeMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *DecisionNodeMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *DecisionNodeMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *DecisionNodeMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the DecisionNode entity.
// If the DecisionNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionNodeMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *DecisionNodeMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetContext sets the "context" field.
func (m *DecisionNodeMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *DecisionNodeMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the DecisionNode entity.
// If the DecisionNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DecisionNodeMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *DecisionNodeMutation) ClearContext() {
	m.context = nil
	m.clearedFields[decisionnode.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *DecisionNodeMutation) ContextCleared() bool {
	_, ok := m.clearedFields[decisionnode.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *DecisionNodeMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, decisionnode.FieldContext)
}

// AddActionIDs adds the "actions" edge to the ActionNode entity by ids.
func (m *DecisionNodeMutation) AddActionIDs(ids ...string) {
	if m.actions == nil {
		m.actions = make(map[string]struct{})
	}
	for i := range ids {
		m.actions[ids[i]] = struct{}{}
	}
}

// ClearActions clears the "actions" edge to the ActionNode entity.
func (m *DecisionNodeMutation) ClearActions() {
	m.clearedactions = true
}

// ActionsCleared reports if the "actions" edge to the ActionNode entity was cleared.
func (m *DecisionNodeMutation) ActionsCleared() bool {
	return m.clearedactions
}

// RemoveActionIDs removes the "actions" edge to the ActionNode entity by IDs.
func (m *DecisionNodeMutation) RemoveActionIDs(ids ...string) {
	if m.removedactions == nil {
		m.removedactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.actions, ids[i])
		m.removedactions[ids[i]] = struct{}{}
	}
}

// RemovedActions returns the removed IDs of the "actions" edge to the ActionNode entity.
func (m *DecisionNodeMutation) RemovedActionsIDs() (ids []string) {
	for id := range m.removedactions {
		ids = append(ids, id)
	}
	return
}

// ActionsIDs returns the "actions" edge IDs in the mutation.
func (m *DecisionNodeMutation) ActionsIDs() (ids []string) {
	for id := range m.actions {
		ids = append(ids, id)
	}
	return
}

// ResetActions resets all changes to the "actions" edge.
func (m *DecisionNodeMutation) ResetActions() {
	m.actions = nil
	m.clearedactions = false
	m.removedactions = nil
}

// Where appends a list predicates to the DecisionNodeMutation builder.
func (m *DecisionNodeMutation) Where(ps ...predicate.DecisionNode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DecisionNodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DecisionNodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DecisionNode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DecisionNodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DecisionNodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DecisionNode).
func (m *DecisionNodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DecisionNodeMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session_id != nil {
		fields = append(fields, decisionnode.FieldSessionID)
	}
	if m.agent_id != nil {
		fields = append(fields, decisionnode.FieldAgentID)
	}
	if m.prompt != nil {
		fields = append(fields, decisionnode.FieldPrompt)
	}
	if m.reasoning != nil {
		fields = append(fields, decisionnode.FieldReasoning)
	}
	if m.confidence != nil {
		fields = append(fields, decisionnode.FieldConfidence)
	}
	if m.timestamp != nil {
		fields = append(fields, decisionnode.FieldTimestamp)
	}
	if m.context != nil {
		fields = append(fields, decisionnode.FieldContext)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DecisionNodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case decisionnode.FieldSessionID:
		return m.SessionID()
	case decisionnode.FieldAgentID:
		return m.AgentID()
	case decisionnode.FieldPrompt:
		return m.Prompt()
	case decisionnode.FieldReasoning:
		return m.Reasoning()
	case decisionnode.FieldConfidence:
		return m.Confidence()
	case decisionnode.FieldTimestamp:
		return m.Timestamp()
	case decisionnode.FieldContext:
		return m.Context()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DecisionNodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case decisionnode.FieldSessionID:
		return m.OldSessionID(ctx)
	case decisionnode.FieldAgentID:
		return m.OldAgentID(ctx)
	case decisionnode.FieldPrompt:
		return m.OldPrompt(ctx)
	case decisionnode.FieldReasoning:
		return m.OldReasoning(ctx)
	case decisionnode.FieldConfidence:
		return m.OldConfidence(ctx)
	case decisionnode.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case decisionnode.FieldContext:
		return m.OldContext(ctx)
	}
	return nil, fmt.Errorf("unknown DecisionNode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionNodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case decisionnode.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case decisionnode.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case decisionnode.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case decisionnode.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case decisionnode.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case decisionnode.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case decisionnode.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	}
	return fmt.Errorf("unknown DecisionNode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DecisionNodeMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, decisionnode.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DecisionNodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case decisionnode.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DecisionNodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case decisionnode.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown DecisionNode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DecisionNodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(decisionnode.FieldSessionID) {
		fields = append(fields, decisionnode.FieldSessionID)
	}
	if m.FieldCleared(decisionnode.FieldReasoning) {
		fields = append(fields, decisionnode.FieldReasoning)
	}
	if m.FieldCleared(decisionnode.FieldContext) {
		fields = append(fields, decisionnode.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DecisionNodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DecisionNodeMutation) ClearField(name string) error {
	switch name {
	case decisionnode.FieldSessionID:
		m.ClearSessionID()
		return nil
	case decisionnode.FieldReasoning:
		m.ClearReasoning()
		return nil
	case decisionnode.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown DecisionNode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DecisionNodeMutation) ResetField(name string) error {
	switch name {
	case decisionnode.FieldSessionID:
		m.ResetSessionID()
		return nil
	case decisionnode.FieldAgentID:
		m.ResetAgentID()
		return nil
	case decisionnode.FieldPrompt:
		m.ResetPrompt()
		return nil
	case decisionnode.FieldReasoning:
		m.ResetReasoning()
		return nil
	case decisionnode.FieldConfidence:
		m.ResetConfidence()
		return nil
	case decisionnode.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case decisionnode.FieldContext:
		m.ResetContext()
		return nil
	}
	return fmt.Errorf("unknown DecisionNode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DecisionNodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.actions != nil {
		edges = append(edges, decisionnode.EdgeActions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DecisionNodeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case decisionnode.EdgeActions:
		ids := make([]ent.Value, 0, len(m.actions))
		for id := range m.actions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DecisionNodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedactions != nil {
		edges = append(edges, decisionnode.EdgeActions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DecisionNodeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case decisionnode.EdgeActions:
		ids := make([]ent.Value, 0, len(m.removedactions))
		for id := range m.removedactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DecisionNodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedactions {
		edges = append(edges, decisionnode.EdgeActions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DecisionNodeMutation) EdgeCleared(name string) bool {
	switch name {
	case decisionnode.EdgeActions:
		return m.clearedactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DecisionNodeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown DecisionNode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DecisionNodeMutation) ResetEdge(name string) error {
	switch name {
	case decisionnode.EdgeActions:
		m.ResetActions()
		return nil
	}
	return fmt.Errorf("unknown DecisionNode edge %s", name)
}

// OutcomeNodeMutation represents an operation that mutates the OutcomeNode nodes in the graph.
type OutcomeNodeMutation struct {
	config
	op            Op
	typ           string
	id            *string
	status        *outcomenode.Status
	description   *string
	metrics       *map[string]interface{}
	feedback      *string
	timestamp     *time.Time
	clearedFields map[string]struct{}
	action        *string
	clearedaction bool
	done          bool
	oldValue      func(context.Context) (*OutcomeNode, error)
	predicates    []predicate.OutcomeNode
}

var _ ent.Mutation = (*OutcomeNodeMutation)(nil)

// outcomenodeOption allows management of the mutation configuration using functional options.
type outcomenodeOption func(*OutcomeNodeMutation)

// newOutcomeNodeMutation creates new mutation for the OutcomeNode entity.
func newOutcomeNodeMutation(c config, op Op, opts ...outcomenodeOption) *OutcomeNodeMutation {
	m := &OutcomeNodeMutation{
		config:        c,
		op:            op,
		typ:           TypeOutcomeNode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOutcomeNodeID sets the ID field of the mutation.
func withOutcomeNodeID(id string) outcomenodeOption {
	return func(m *OutcomeNodeMutation) {
		var (
			err   error
			once  sync.Once
			value *OutcomeNode
		)
		m.oldValue = func(ctx context.Context) (*OutcomeNode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OutcomeNode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOutcomeNode sets the old OutcomeNode of the mutation.
func withOutcomeNode(node *OutcomeNode) outcomenodeOption {
	return func(m *OutcomeNodeMutation) {
		m.oldValue = func(context.Context) (*OutcomeNode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OutcomeNodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OutcomeNodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OutcomeNode entities.
func (m *OutcomeNodeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OutcomeNodeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OutcomeNodeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OutcomeNode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActionID sets the "action_id" field.
func (m *OutcomeNodeMutation) SetActionID(s string) {
	m.action = &s
}

// ActionID returns the value of the "action_id" field in the mutation.
func (m *OutcomeNodeMutation) ActionID() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldActionID returns the old "action_id" field's value of the OutcomeNode entity.
// If the OutcomeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeNodeMutation) OldActionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionID: %w", err)
	}
	return oldValue.ActionID, nil
}

// ResetActionID resets all changes to the "action_id" field.
func (m *OutcomeNodeMutation) ResetActionID() {
	m.action = nil
}

// SetStatus sets the "status" field.
func (m *OutcomeNodeMutation) SetStatus(o outcomenode.Status) {
	m.status = &o
}

// Status returns the value of the "status" field in the mutation.
func (m *OutcomeNodeMutation) Status() (r outcomenode.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the OutcomeNode entity.
// If the OutcomeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeNodeMutation) OldStatus(ctx context.Context) (v outcomenode.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OutcomeNodeMutation) ResetStatus() {
	m.status = nil
}

// SetDescription sets the "description" field.
func (m *OutcomeNodeMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *OutcomeNodeMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the OutcomeNode entity.
// If the OutcomeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeNodeMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *OutcomeNodeMutation) ResetDescription() {
	m.description = nil
}

// SetMetrics sets the "metrics" field.
func (m *OutcomeNodeMutation) SetMetrics(value map[string]interface{}) {
	m.metrics = &value
}

// Metrics returns the value of the "metrics" field in the mutation.
func (m *OutcomeNodeMutation) Metrics() (r map[string]interface{}, exists bool) {
	v := m.metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldMetrics returns the old "metrics" field's value of the OutcomeNode entity.
// If the OutcomeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeNodeMutation) OldMetrics(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetrics: %w", err)
	}
	return oldValue.Metrics, nil
}

// ClearMetrics clears the value of the "metrics" field.
func (m *OutcomeNodeMutation) ClearMetrics() {
	m.metrics = nil
	m.clearedFields[outcomenode.FieldMetrics] = struct{}{}
}

// MetricsCleared returns if the "metrics" field was cleared in this mutation.
func (m *OutcomeNodeMutation) MetricsCleared() bool {
	_, ok := m.clearedFields[outcomenode.FieldMetrics]
	return ok
}

// ResetMetrics resets all changes to the "metrics" field.
func (m *OutcomeNodeMutation) ResetMetrics() {
	m.metrics = nil
	delete(m.clearedFields, outcomenode.FieldMetrics)
}

// SetFeedback sets the "feedback" field.
func (m *OutcomeNodeMutation) SetFeedback(s string) {
	m.feedback = &s
}

// Feedback returns the value of the "feedback" field in the mutation.
func (m *OutcomeNodeMutation) Feedback() (r string, exists bool) {
	v := m.feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedback returns the old "feedback" field's value of the OutcomeNode entity.
// If the OutcomeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeNodeMutation) OldFeedback(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedback: %w", err)
	}
	return oldValue.Feedback, nil
}

// ClearFeedback clears the value of the "feedback" field.
func (m *OutcomeNodeMutation) ClearFeedback() {
	m.feedback = nil
	m.clearedFields[outcomenode.FieldFeedback] = struct{}{}
}

// FeedbackCleared returns if the "feedback" field was cleared in this mutation.
func (m *OutcomeNodeMutation) FeedbackCleared() bool {
	_, ok := m.clearedFields[outcomenode.FieldFeedback]
	return ok
}

// ResetFeedback resets all changes to the "feedback" field.
func (m *OutcomeNodeMutation) ResetFeedback() {
	m.feedback = nil
	delete(m.clearedFields, outcomenode.FieldFeedback)
}

// SetTimestamp sets the "timestamp" field.
func (m *OutcomeNodeMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *OutcomeNodeMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the OutcomeNode entity.
// If the OutcomeNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OutcomeNodeMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *OutcomeNodeMutation) ResetTimestamp() {
	m.timestamp = nil
}

// ClearAction clears the "action" edge to the ActionNode entity.
func (m *OutcomeNodeMutation) ClearAction() {
	m.clearedaction = true
	m.clearedFields[outcomenode.FieldActionID] = struct{}{}
}

// ActionCleared reports if the "action" edge to the ActionNode entity was cleared.
func (m *OutcomeNodeMutation) ActionCleared() bool {
	return m.clearedaction
}

// ActionIDs returns the "action" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ActionID instead. It exists only for internal usage by the builders.
func (m *OutcomeNodeMutation) ActionIDs() (ids []string) {
	if id := m.action; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAction resets all changes to the "action" edge.
func (m *OutcomeNodeMutation) ResetAction() {
	m.action = nil
	m.clearedaction = false
}

// Where appends a list predicates to the OutcomeNodeMutation builder.
func (m *OutcomeNodeMutation) Where(ps ...predicate.OutcomeNode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OutcomeNodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OutcomeNodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OutcomeNode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OutcomeNodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OutcomeNodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OutcomeNode).
func (m *OutcomeNodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OutcomeNodeMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.action != nil {
		fields = append(fields, outcomenode.FieldActionID)
	}
	if m.status != nil {
		fields = append(fields, outcomenode.FieldStatus)
	}
	if m.description != nil {
		fields = append(fields, outcomenode.FieldDescription)
	}
	if m.metrics != nil {
		fields = append(fields, outcomenode.FieldMetrics)
	}
	if m.feedback != nil {
		fields = append(fields, outcomenode.FieldFeedback)
	}
	if m.timestamp != nil {
		fields = append(fields, outcomenode.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OutcomeNodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case outcomenode.FieldActionID:
		return m.ActionID()
	case outcomenode.FieldStatus:
		return m.Status()
	case outcomenode.FieldDescription:
		return m.Description()
	case outcomenode.FieldMetrics:
		return m.Metrics()
	case outcomenode.FieldFeedback:
		return m.Feedback()
	case outcomenode.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OutcomeNodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case outcomenode.FieldActionID:
		return m.OldActionID(ctx)
	case outcomenode.FieldStatus:
		return m.OldStatus(ctx)
	case outcomenode.FieldDescription:
		return m.OldDescription(ctx)
	case outcomenode.FieldMetrics:
		return m.OldMetrics(ctx)
	case outcomenode.FieldFeedback:
		return m.OldFeedback(ctx)
	case outcomenode.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown OutcomeNode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutcomeNodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case outcomenode.FieldActionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionID(v)
		return nil
	case outcomenode.FieldStatus:
		v, ok := value.(outcomenode.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case outcomenode.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case outcomenode.FieldMetrics:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetrics(v)
		return nil
	case outcomenode.FieldFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedback(v)
		return nil
	case outcomenode.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown OutcomeNode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OutcomeNodeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OutcomeNodeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OutcomeNodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OutcomeNode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OutcomeNodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(outcomenode.FieldMetrics) {
		fields = append(fields, outcomenode.FieldMetrics)
	}
	if m.FieldCleared(outcomenode.FieldFeedback) {
		fields = append(fields, outcomenode.FieldFeedback)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OutcomeNodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OutcomeNodeMutation) ClearField(name string) error {
	switch name {
	case outcomenode.FieldMetrics:
		m.ClearMetrics()
		return nil
	case outcomenode.FieldFeedback:
		m.ClearFeedback()
		return nil
	}
	return fmt.Errorf("unknown OutcomeNode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OutcomeNodeMutation) ResetField(name string) error {
	switch name {
	case outcomenode.FieldActionID:
		m.ResetActionID()
		return nil
	case outcomenode.FieldStatus:
		m.ResetStatus()
		return nil
	case outcomenode.FieldDescription:
		m.ResetDescription()
		return nil
	case outcomenode.FieldMetrics:
		m.ResetMetrics()
		return nil
	case outcomenode.FieldFeedback:
		m.ResetFeedback()
		return nil
	case outcomenode.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown OutcomeNode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OutcomeNodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.action != nil {
		edges = append(edges, outcomenode.EdgeAction)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OutcomeNodeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case outcomenode.EdgeAction:
		if id := m.action; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OutcomeNodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OutcomeNodeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OutcomeNodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaction {
		edges = append(edges, outcomenode.EdgeAction)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OutcomeNodeMutation) EdgeCleared(name string) bool {
	switch name {
	case outcomenode.EdgeAction:
		return m.clearedaction
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OutcomeNodeMutation) ClearEdge(name string) error {
	switch name {
	case outcomenode.EdgeAction:
		m.ClearAction()
		return nil
	}
	return fmt.Errorf("unknown OutcomeNode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OutcomeNodeMutation) ResetEdge(name string) error {
	switch name {
	case outcomenode.EdgeAction:
		m.ResetAction()
		return nil
	}
	return fmt.Errorf("unknown OutcomeNode edge %s", name)
}

// PermissionRequestMutation represents an operation that mutates the PermissionRequest nodes in the graph.
type PermissionRequestMutation struct {
	config
	op                Op
	typ               string
	id                *string
	task_id           *string
	tool              *string
	input             *map[string]interface{}
	pattern           *string
	risk_level        *permissionrequest.RiskLevel
	assessment_reason *string
	created_at        *time.Time
	decision          *permissionrequest.Decision
	decided_by        *permissionrequest.DecidedBy
	decided_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*PermissionRequest, error)
	predicates        []predicate.PermissionRequest
}

var _ ent.Mutation = (*PermissionRequestMutation)(nil)

// permissionrequestOption allows management of the mutation configuration using functional options.
type permissionrequestOption func(*PermissionRequestMutation)

// newPermissionRequestMutation creates new mutation for the PermissionRequest entity.
func newPermissionRequestMutation(c config, op Op, opts ...permissionrequestOption) *PermissionRequestMutation {
	m := &PermissionRequestMutation{
		config:        c,
		op:            op,
		typ:           TypePermissionRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPermissionRequestID sets the ID field of the mutation.
func withPermissionRequestID(id string) permissionrequestOption {
	return func(m *PermissionRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *PermissionRequest
		)
		m.oldValue = func(ctx context.Context) (*PermissionRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PermissionRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPermissionRequest sets the old PermissionRequest of the mutation.
func withPermissionRequest(node *PermissionRequest) permissionrequestOption {
	return func(m *PermissionRequestMutation) {
		m.oldValue = func(context.Context) (*PermissionRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PermissionRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PermissionRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PermissionRequest entities.
func (m *PermissionRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PermissionRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PermissionRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PermissionRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *PermissionRequestMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *PermissionRequestMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the PermissionRequest entity.
// If the PermissionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionRequestMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *PermissionRequestMutation) ResetTaskID() {
	m.task_id = nil
}

// SetTool sets the "tool" field.
func (m *PermissionRequestMutation) SetTool(s string) {
	m.tool = &s
}

// Tool returns the value of the "tool" field in the mutation.
func (m *PermissionRequestMutation) Tool() (r string, exists bool) {
	v := m.tool
	if v == nil {
		return
	}
	return *v, true
}

// OldTool returns the old "tool" field's value of the PermissionRequest entity.
// If the PermissionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionRequestMutation) OldTool(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTool: %w", err)
	}
	return oldValue.Tool, nil
}

// ResetTool resets all changes to the "tool" field.
func (m *PermissionRequestMutation) ResetTool() {
	m.tool = nil
}

// SetInput sets the "input" field.
func (m *PermissionRequestMutation) SetInput(value map[string]interface{}) {
	m.input = &value
}

// Input returns the value of the "input" field in the mutation.
func (m *PermissionRequestMutation) Input() (r map[string]interface{}, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the PermissionRequest entity.
// If the PermissionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionRequestMutation) OldInput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *PermissionRequestMutation) ClearInput() {
	m.input = nil
	m.clearedFields[permissionrequest.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *PermissionRequestMutation) InputCleared() bool {
	_, ok := m.clearedFields[permissionrequest.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *PermissionRequestMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, permissionrequest.FieldInput)
}

// SetPattern sets the "pattern" field.
func (m *PermissionRequestMutation) SetPattern(s string) {
	m.pattern = &s
}

// Pattern returns the value of the "pattern" field in the mutation.
func (m *PermissionRequestMutation) Pattern() (r string, exists bool) {
	v := m.pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldPattern returns the old "pattern" field's value of the PermissionRequest entity.
// If the PermissionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionRequestMutation) OldPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPattern: %w", err)
	}
	return oldValue.Pattern, nil
}

// ClearPattern clears the value of the "pattern" field.
func (m *PermissionRequestMutation) ClearPattern() {
	m.pattern = nil
	m.clearedFields[permissionrequest.FieldPattern] = struct{}{}
}

// PatternCleared returns if the "pattern" field was cleared in this mutation.
func (m *PermissionRequestMutation) PatternCleared() bool {
	_, ok := m.clearedFields[permissionrequest.FieldPattern]
	return ok
}

// ResetPattern resets all changes to the "pattern" field.
func (m *PermissionRequestMutation) ResetPattern() {
	m.pattern = nil
	delete(m.clearedFields, permissionrequest.FieldPattern)
}

// SetRiskLevel sets the "risk_level" field.
func (m *PermissionRequestMutation) SetRiskLevel(pl permissionrequest.RiskLevel) {
	m.risk_level = &pl
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *PermissionRequestMutation) RiskLevel() (r permissionrequest.RiskLevel, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the PermissionRequest entity.
// If the PermissionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionRequestMutation) OldRiskLevel(ctx context.Context) (v permissionrequest.RiskLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *PermissionRequestMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetAssessmentReason sets the "assessment_reason" field.
func (m *PermissionRequestMutation) SetAssessmentReason(s string) {
	m.assessment_reason = &s
}

// AssessmentReason returns the value of the "assessment_reason" field in the mutation.
func (m *PermissionRequestMutation) AssessmentReason() (r string, exists bool) {
	v := m.assessment_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentReason returns the old "assessment_reason" field's value of the PermissionRequest entity.
// If the PermissionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionRequestMutation) OldAssessmentReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentReason: %w", err)
	}
	return oldValue.AssessmentReason, nil
}

// ClearAssessmentReason clears the value of the "assessment_reason" field.
func (m *PermissionRequestMutation) ClearAssessmentReason() {
	m.assessment_reason = nil
	m.clearedFields[permissionrequest.FieldAssessmentReason] = struct{}{}
}

// AssessmentReasonCleared returns if the "assessment_reason" field was cleared in this mutation.
func (m *PermissionRequestMutation) AssessmentReasonCleared() bool {
	_, ok := m.clearedFields[permissionrequest.FieldAssessmentReason]
	return ok
}

// ResetAssessmentReason resets all changes to the "assessment_reason" field.
func (m *PermissionRequestMutation) ResetAssessmentReason() {
	m.assessment_reason = nil
	delete(m.clearedFields, permissionrequest.FieldAssessmentReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *PermissionRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PermissionRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PermissionRequest entity.
// If the PermissionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PermissionRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDecision sets the "decision" field.
func (m *PermissionRequestMutation) SetDecision(pe permissionrequest.Decision) {
	m.decision = &pe
}

// Decision returns the value of the "decision" field in the mutation.
func (m *PermissionRequestMutation) Decision() (r permissionrequest.Decision, exists bool) {
	v := m.decision
	if v == nil {
		return
	}
	return *v, true
}

// OldDecision returns the old "decision" field's value of the PermissionRequest entity.
// If the PermissionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionRequestMutation) OldDecision(ctx context.Context) (v *permissionrequest.Decision, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecision: %w", err)
	}
	return oldValue.Decision, nil
}

// ClearDecision clears the value of the "decision" field.
func (m *PermissionRequestMutation) ClearDecision() {
	m.decision = nil
	m.clearedFields[permissionrequest.FieldDecision] = struct{}{}
}

// DecisionCleared returns if the "decision" field was cleared in this mutation.
func (m *PermissionRequestMutation) DecisionCleared() bool {
	_, ok := m.clearedFields[permissionrequest.FieldDecision]
	return ok
}

// ResetDecision resets all changes to the "decision" field.
func (m *PermissionRequestMutation) ResetDecision() {
	m.decision = nil
	delete(m.clearedFields, permissionrequest.FieldDecision)
}

// SetDecidedBy sets the "decided_by" field.
func (m *PermissionRequestMutation) SetDecidedBy(pb permissionrequest.DecidedBy) {
	m.decided_by = &pb
}

// DecidedBy returns the value of the "decided_by" field in the mutation.
func (m *PermissionRequestMutation) DecidedBy() (r permissionrequest.DecidedBy, exists bool) {
	v := m.decided_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedBy returns the old "decided_by" field's value of the PermissionRequest entity.
// If the PermissionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionRequestMutation) OldDecidedBy(ctx context.Context) (v *permissionrequest.DecidedBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedBy: %w", err)
	}
	return oldValue.DecidedBy, nil
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (m *PermissionRequestMutation) ClearDecidedBy() {
	m.decided_by = nil
	m.clearedFields[permissionrequest.FieldDecidedBy] = struct{}{}
}

// DecidedByCleared returns if the "decided_by" field was cleared in this mutation.
func (m *PermissionRequestMutation) DecidedByCleared() bool {
	_, ok := m.clearedFields[permissionrequest.FieldDecidedBy]
	return ok
}

// ResetDecidedBy resets all changes to the "decided_by" field.
func (m *PermissionRequestMutation) ResetDecidedBy() {
	m.decided_by = nil
	delete(m.clearedFields, permissionrequest.FieldDecidedBy)
}

// SetDecidedAt sets the "decided_at" field.
func (m *PermissionRequestMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *PermissionRequestMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the PermissionRequest entity.
// If the PermissionRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PermissionRequestMutation) OldDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (m *PermissionRequestMutation) ClearDecidedAt() {
	m.decided_at = nil
	m.clearedFields[permissionrequest.FieldDecidedAt] = struct{}{}
}

// DecidedAtCleared returns if the "decided_at" field was cleared in this mutation.
func (m *PermissionRequestMutation) DecidedAtCleared() bool {
	_, ok := m.clearedFields[permissionrequest.FieldDecidedAt]
	return ok
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *PermissionRequestMutation) ResetDecidedAt() {
	m.decided_at = nil
	delete(m.clearedFields, permissionrequest.FieldDecidedAt)
}

// Where appends a list predicates to the PermissionRequestMutation builder.
func (m *PermissionRequestMutation) Where(ps ...predicate.PermissionRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PermissionRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PermissionRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PermissionRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PermissionRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PermissionRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PermissionRequest).
func (m *PermissionRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PermissionRequestMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.task_id != nil {
		fields = append(fields, permissionrequest.FieldTaskID)
	}
	if m.tool != nil {
		fields = append(fields, permissionrequest.FieldTool)
	}
	if m.input != nil {
		fields = append(fields, permissionrequest.FieldInput)
	}
	if m.pattern != nil {
		fields = append(fields, permissionrequest.FieldPattern)
	}
	if m.risk_level != nil {
		fields = append(fields, permissionrequest.FieldRiskLevel)
	}
	if m.assessment_reason != nil {
		fields = append(fields, permissionrequest.FieldAssessmentReason)
	}
	if m.created_at != nil {
		fields = append(fields, permissionrequest.FieldCreatedAt)
	}
	if m.decision != nil {
		fields = append(fields, permissionrequest.FieldDecision)
	}
	if m.decided_by != nil {
		fields = append(fields, permissionrequest.FieldDecidedBy)
	}
	if m.decided_at != nil {
		fields = append(fields, permissionrequest.FieldDecidedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PermissionRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case permissionrequest.FieldTaskID:
		return m.TaskID()
	case permissionrequest.FieldTool:
		return m.Tool()
	case permissionrequest.FieldInput:
		return m.Input()
	case permissionrequest.FieldPattern:
		return m.Pattern()
	case permissionrequest.FieldRiskLevel:
		return m.RiskLevel()
	case permissionrequest.FieldAssessmentReason:
		return m.AssessmentReason()
	case permissionrequest.FieldCreatedAt:
		return m.CreatedAt()
	case permissionrequest.FieldDecision:
		return m.Decision()
	case permissionrequest.FieldDecidedBy:
		return m.DecidedBy()
	case permissionrequest.FieldDecidedAt:
		return m.DecidedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PermissionRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case permissionrequest.FieldTaskID:
		return m.OldTaskID(ctx)
	case permissionrequest.FieldTool:
		return m.OldTool(ctx)
	case permissionrequest.FieldInput:
		return m.OldInput(ctx)
	case permissionrequest.FieldPattern:
		return m.OldPattern(ctx)
	case permissionrequest.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case permissionrequest.FieldAssessmentReason:
		return m.OldAssessmentReason(ctx)
	case permissionrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case permissionrequest.FieldDecision:
		return m.OldDecision(ctx)
	case permissionrequest.FieldDecidedBy:
		return m.OldDecidedBy(ctx)
	case permissionrequest.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PermissionRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PermissionRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case permissionrequest.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case permissionrequest.FieldTool:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTool(v)
		return nil
	case permissionrequest.FieldInput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case permissionrequest.FieldPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPattern(v)
		return nil
	case permissionrequest.FieldRiskLevel:
		v, ok := value.(permissionrequest.RiskLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case permissionrequest.FieldAssessmentReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentReason(v)
		return nil
	case permissionrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case permissionrequest.FieldDecision:
		v, ok := value.(permissionrequest.Decision)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecision(v)
		return nil
	case permissionrequest.FieldDecidedBy:
		v, ok := value.(permissionrequest.DecidedBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedBy(v)
		return nil
	case permissionrequest.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PermissionRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PermissionRequestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PermissionRequestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PermissionRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PermissionRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PermissionRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(permissionrequest.FieldInput) {
		fields = append(fields, permissionrequest.FieldInput)
	}
	if m.FieldCleared(permissionrequest.FieldPattern) {
		fields = append(fields, permissionrequest.FieldPattern)
	}
	if m.FieldCleared(permissionrequest.FieldAssessmentReason) {
		fields = append(fields, permissionrequest.FieldAssessmentReason)
	}
	if m.FieldCleared(permissionrequest.FieldDecision) {
		fields = append(fields, permissionrequest.FieldDecision)
	}
	if m.FieldCleared(permissionrequest.FieldDecidedBy) {
		fields = append(fields, permissionrequest.FieldDecidedBy)
	}
	if m.FieldCleared(permissionrequest.FieldDecidedAt) {
		fields = append(fields, permissionrequest.FieldDecidedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PermissionRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PermissionRequestMutation) ClearField(name string) error {
	switch name {
	case permissionrequest.FieldInput:
		m.ClearInput()
		return nil
	case permissionrequest.FieldPattern:
		m.ClearPattern()
		return nil
	case permissionrequest.FieldAssessmentReason:
		m.ClearAssessmentReason()
		return nil
	case permissionrequest.FieldDecision:
		m.ClearDecision()
		return nil
	case permissionrequest.FieldDecidedBy:
		m.ClearDecidedBy()
		return nil
	case permissionrequest.FieldDecidedAt:
		m.ClearDecidedAt()
		return nil
	}
	return fmt.Errorf("unknown PermissionRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PermissionRequestMutation) ResetField(name string) error {
	switch name {
	case permissionrequest.FieldTaskID:
		m.ResetTaskID()
		return nil
	case permissionrequest.FieldTool:
		m.ResetTool()
		return nil
	case permissionrequest.FieldInput:
		m.ResetInput()
		return nil
	case permissionrequest.FieldPattern:
		m.ResetPattern()
		return nil
	case permissionrequest.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case permissionrequest.FieldAssessmentReason:
		m.ResetAssessmentReason()
		return nil
	case permissionrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case permissionrequest.FieldDecision:
		m.ResetDecision()
		return nil
	case permissionrequest.FieldDecidedBy:
		m.ResetDecidedBy()
		return nil
	case permissionrequest.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	}
	return fmt.Errorf("unknown PermissionRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PermissionRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PermissionRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PermissionRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PermissionRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PermissionRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PermissionRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PermissionRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PermissionRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PermissionRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PermissionRequest edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	agent_id              *string
	prompt                *string
	user_id               *string
	platform              *string
	source                *task.Source
	status                *task.Status
	created_at            *time.Time
	updated_at            *time.Time
	output                *string
	error                 *string
	pending_permission_id *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Task, error)
	predicates            []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *TaskMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *TaskMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *TaskMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetPrompt sets the "prompt" field.
func (m *TaskMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *TaskMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *TaskMutation) ResetPrompt() {
	m.prompt = nil
}

// SetUserID sets the "user_id" field.
func (m *TaskMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TaskMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *TaskMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[task.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *TaskMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[task.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TaskMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, task.FieldUserID)
}

// SetPlatform sets the "platform" field.
func (m *TaskMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *TaskMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ClearPlatform clears the value of the "platform" field.
func (m *TaskMutation) ClearPlatform() {
	m.platform = nil
	m.clearedFields[task.FieldPlatform] = struct{}{}
}

// PlatformCleared returns if the "platform" field was cleared in this mutation.
func (m *TaskMutation) PlatformCleared() bool {
	_, ok := m.clearedFields[task.FieldPlatform]
	return ok
}

// ResetPlatform resets all changes to the "platform" field.
func (m *TaskMutation) ResetPlatform() {
	m.platform = nil
	delete(m.clearedFields, task.FieldPlatform)
}

// SetSource sets the "source" field.
func (m *TaskMutation) SetSource(t task.Source) {
	m.source = &t
}

// Source returns the value of the "source" field in the mutation.
func (m *TaskMutation) Source() (r task.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSource(ctx context.Context) (v task.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *TaskMutation) ResetSource() {
	m.source = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOutput sets the "output" field.
func (m *TaskMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *TaskMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldOutput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *TaskMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[task.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *TaskMutation) OutputCleared() bool {
	_, ok := m.clearedFields[task.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *TaskMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, task.FieldOutput)
}

// SetError sets the "error" field.
func (m *TaskMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *TaskMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *TaskMutation) ClearError() {
	m.error = nil
	m.clearedFields[task.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *TaskMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[task.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *TaskMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, task.FieldError)
}

// SetPendingPermissionID sets the "pending_permission_id" field.
func (m *TaskMutation) SetPendingPermissionID(s string) {
	m.pending_permission_id = &s
}

// PendingPermissionID returns the value of the "pending_permission_id" field in the mutation.
func (m *TaskMutation) PendingPermissionID() (r string, exists bool) {
	v := m.pending_permission_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPendingPermissionID returns the old "pending_permission_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPendingPermissionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPendingPermissionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPendingPermissionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPendingPermissionID: %w", err)
	}
	return oldValue.PendingPermissionID, nil
}

// ClearPendingPermissionID clears the value of the "pending_permission_id" field.
func (m *TaskMutation) ClearPendingPermissionID() {
	m.pending_permission_id = nil
	m.clearedFields[task.FieldPendingPermissionID] = struct{}{}
}

// PendingPermissionIDCleared returns if the "pending_permission_id" field was cleared in this mutation.
func (m *TaskMutation) PendingPermissionIDCleared() bool {
	_, ok := m.clearedFields[task.FieldPendingPermissionID]
	return ok
}

// ResetPendingPermissionID resets all changes to the "pending_permission_id" field.
func (m *TaskMutation) ResetPendingPermissionID() {
	m.pending_permission_id = nil
	delete(m.clearedFields, task.FieldPendingPermissionID)
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.agent_id != nil {
		fields = append(fields, task.FieldAgentID)
	}
	if m.prompt != nil {
		fields = append(fields, task.FieldPrompt)
	}
	if m.user_id != nil {
		fields = append(fields, task.FieldUserID)
	}
	if m.platform != nil {
		fields = append(fields, task.FieldPlatform)
	}
	if m.source != nil {
		fields = append(fields, task.FieldSource)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	if m.output != nil {
		fields = append(fields, task.FieldOutput)
	}
	if m.error != nil {
		fields = append(fields, task.FieldError)
	}
	if m.pending_permission_id != nil {
		fields = append(fields, task.FieldPendingPermissionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldAgentID:
		return m.AgentID()
	case task.FieldPrompt:
		return m.Prompt()
	case task.FieldUserID:
		return m.UserID()
	case task.FieldPlatform:
		return m.Platform()
	case task.FieldSource:
		return m.Source()
	case task.FieldStatus:
		return m.Status()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	case task.FieldOutput:
		return m.Output()
	case task.FieldError:
		return m.Error()
	case task.FieldPendingPermissionID:
		return m.PendingPermissionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldAgentID:
		return m.OldAgentID(ctx)
	case task.FieldPrompt:
		return m.OldPrompt(ctx)
	case task.FieldUserID:
		return m.OldUserID(ctx)
	case task.FieldPlatform:
		return m.OldPlatform(ctx)
	case task.FieldSource:
		return m.OldSource(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case task.FieldOutput:
		return m.OldOutput(ctx)
	case task.FieldError:
		return m.OldError(ctx)
	case task.FieldPendingPermissionID:
		return m.OldPendingPermissionID(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case task.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case task.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case task.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case task.FieldSource:
		v, ok := value.(task.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case task.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case task.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case task.FieldPendingPermissionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPendingPermissionID(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldUserID) {
		fields = append(fields, task.FieldUserID)
	}
	if m.FieldCleared(task.FieldPlatform) {
		fields = append(fields, task.FieldPlatform)
	}
	if m.FieldCleared(task.FieldOutput) {
		fields = append(fields, task.FieldOutput)
	}
	if m.FieldCleared(task.FieldError) {
		fields = append(fields, task.FieldError)
	}
	if m.FieldCleared(task.FieldPendingPermissionID) {
		fields = append(fields, task.FieldPendingPermissionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldUserID:
		m.ClearUserID()
		return nil
	case task.FieldPlatform:
		m.ClearPlatform()
		return nil
	case task.FieldOutput:
		m.ClearOutput()
		return nil
	case task.FieldError:
		m.ClearError()
		return nil
	case task.FieldPendingPermissionID:
		m.ClearPendingPermissionID()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldAgentID:
		m.ResetAgentID()
		return nil
	case task.FieldPrompt:
		m.ResetPrompt()
		return nil
	case task.FieldUserID:
		m.ResetUserID()
		return nil
	case task.FieldPlatform:
		m.ResetPlatform()
		return nil
	case task.FieldSource:
		m.ResetSource()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case task.FieldOutput:
		m.ResetOutput()
		return nil
	case task.FieldError:
		m.ResetError()
		return nil
	case task.FieldPendingPermissionID:
		m.ResetPendingPermissionID()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}
