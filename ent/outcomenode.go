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
	"github.com/codecoder-dev/codecoder/ent/outcomenode"
)

// OutcomeNode is the model entity for the OutcomeNode schema.
type OutcomeNode struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ActionID holds the value of the "action_id" field.
	ActionID string `json:"action_id,omitempty"`
	// Status holds the value of the "status" field.
	Status outcomenode.Status `json:"status,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Metrics holds the value of the "metrics" field.
	Metrics map[string]interface{} `json:"metrics,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback string `json:"feedback,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OutcomeNodeQuery when eager-loading is set.
	Edges        OutcomeNodeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OutcomeNodeEdges holds the relations/edges for other nodes in the graph.
type OutcomeNodeEdges struct {
	// Action holds the value of the action edge.
	Action *ActionNode `json:"action,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ActionOrErr returns the Action value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OutcomeNodeEdges) ActionOrErr() (*ActionNode, error) {
	if e.Action != nil {
		return e.Action, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: actionnode.Label}
	}
	return nil, &NotLoadedError{edge: "action"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OutcomeNode) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case outcomenode.FieldMetrics:
			values[i] = new([]byte)
		case outcomenode.FieldID, outcomenode.FieldActionID, outcomenode.FieldStatus, outcomenode.FieldDescription, outcomenode.FieldFeedback:
			values[i] = new(sql.NullString)
		case outcomenode.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OutcomeNode fields.
func (_m *OutcomeNode) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case outcomenode.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case outcomenode.FieldActionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_id", values[i])
			} else if value.Valid {
				_m.ActionID = value.String
			}
		case outcomenode.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = outcomenode.Status(value.String)
			}
		case outcomenode.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case outcomenode.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case outcomenode.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		case outcomenode.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OutcomeNode.
// This includes values selected through modifiers, order, etc.
func (_m *OutcomeNode) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAction queries the "action" edge of the OutcomeNode entity.
func (_m *OutcomeNode) QueryAction() *ActionNodeQuery {
	return NewOutcomeNodeClient(_m.config).QueryAction(_m)
}

// Update returns a builder for updating this OutcomeNode.
// Note that you need to call OutcomeNode.Unwrap() before calling this method if this OutcomeNode
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OutcomeNode) Update() *OutcomeNodeUpdateOne {
	return NewOutcomeNodeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OutcomeNode entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OutcomeNode) Unwrap() *OutcomeNode {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OutcomeNode is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OutcomeNode) String() string {
	var builder strings.Builder
	builder.WriteString("OutcomeNode(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("action_id=")
	builder.WriteString(_m.ActionID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// OutcomeNodes is a parsable slice of OutcomeNode.
type OutcomeNodes []*OutcomeNode
