// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codecoder-dev/codecoder/ent/actionnode"
	"github.com/codecoder-dev/codecoder/ent/decisionnode"
)

// ActionNode is the model entity for the ActionNode schema.
type ActionNode struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DecisionID holds the value of the "decision_id" field.
	DecisionID string `json:"decision_id,omitempty"`
	// ActionType holds the value of the "action_type" field.
	ActionType actionnode.ActionType `json:"action_type,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Input holds the value of the "input" field.
	Input map[string]interface{} `json:"input,omitempty"`
	// Output holds the value of the "output" field.
	Output map[string]interface{} `json:"output,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int64 `json:"duration_ms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ActionNodeQuery when eager-loading is set.
	Edges        ActionNodeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ActionNodeEdges holds the relations/edges for other nodes in the graph.
type ActionNodeEdges struct {
	// Decision holds the value of the decision edge.
	Decision *DecisionNode `json:"decision,omitempty"`
	// Outcomes holds the value of the outcomes edge.
	Outcomes []*OutcomeNode `json:"outcomes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// DecisionOrErr returns the Decision value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ActionNodeEdges) DecisionOrErr() (*DecisionNode, error) {
	if e.Decision != nil {
		return e.Decision, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: decisionnode.Label}
	}
	return nil, &NotLoadedError{edge: "decision"}
}

// OutcomesOrErr returns the Outcomes value or an error if the edge
// was not loaded in eager-loading.
func (e ActionNodeEdges) OutcomesOrErr() ([]*OutcomeNode, error) {
	if e.loadedTypes[1] {
		return e.Outcomes, nil
	}
	return nil, &NotLoadedError{edge: "outcomes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ActionNode) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case actionnode.FieldInput, actionnode.FieldOutput:
			values[i] = new([]byte)
		case actionnode.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case actionnode.FieldID, actionnode.FieldDecisionID, actionnode.FieldActionType, actionnode.FieldDescription:
			values[i] = new(sql.NullString)
		case actionnode.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ActionNode fields.
func (_m *ActionNode) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case actionnode.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case actionnode.FieldDecisionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision_id", values[i])
			} else if value.Valid {
				_m.DecisionID = value.String
			}
		case actionnode.FieldActionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_type", values[i])
			} else if value.Valid {
				_m.ActionType = actionnode.ActionType(value.String)
			}
		case actionnode.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case actionnode.FieldInput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Input); err != nil {
					return fmt.Errorf("unmarshal field input: %w", err)
				}
			}
		case actionnode.FieldOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Output); err != nil {
					return fmt.Errorf("unmarshal field output: %w", err)
				}
			}
		case actionnode.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case actionnode.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int64)
				*_m.DurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ActionNode.
// This includes values selected through modifiers, order, etc.
func (_m *ActionNode) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDecision queries the "decision" edge of the ActionNode entity.
func (_m *ActionNode) QueryDecision() *DecisionNodeQuery {
	return NewActionNodeClient(_m.config).QueryDecision(_m)
}

// QueryOutcomes queries the "outcomes" edge of the ActionNode entity.
func (_m *ActionNode) QueryOutcomes() *OutcomeNodeQuery {
	return NewActionNodeClient(_m.config).QueryOutcomes(_m)
}

// Update returns a builder for updating this ActionNode.
// Note that you need to call ActionNode.Unwrap() before calling this method if this ActionNode
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ActionNode) Update() *ActionNodeUpdateOne {
	return NewActionNodeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ActionNode entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ActionNode) Unwrap() *ActionNode {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ActionNode is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ActionNode) String() string {
	var builder strings.Builder
	builder.WriteString("ActionNode(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("decision_id=")
	builder.WriteString(_m.DecisionID)
	builder.WriteString(", ")
	builder.WriteString("action_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActionType))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("input=")
	builder.WriteString(fmt.Sprintf("%v", _m.Input))
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(fmt.Sprintf("%v", _m.Output))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ActionNodes is a parsable slice of ActionNode.
type ActionNodes []*ActionNode
