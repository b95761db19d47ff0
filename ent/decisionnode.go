// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codecoder-dev/codecoder/ent/decisionnode"
)

// DecisionNode is the model entity for the DecisionNode schema.
type DecisionNode struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// Agent self-estimate in [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// files, tools, external_sources, codebase_state
	Context map[string]interface{} `json:"context,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DecisionNodeQuery when eager-loading is set.
	Edges        DecisionNodeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DecisionNodeEdges holds the relations/edges for other nodes in the graph.
type DecisionNodeEdges struct {
	// Actions holds the value of the actions edge.
	Actions []*ActionNode `json:"actions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ActionsOrErr returns the Actions value or an error if the edge
// was not loaded in eager-loading.
func (e DecisionNodeEdges) ActionsOrErr() ([]*ActionNode, error) {
	if e.loadedTypes[0] {
		return e.Actions, nil
	}
	return nil, &NotLoadedError{edge: "actions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DecisionNode) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case decisionnode.FieldContext:
			values[i] = new([]byte)
		case decisionnode.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case decisionnode.FieldID, decisionnode.FieldSessionID, decisionnode.FieldAgentID, decisionnode.FieldPrompt, decisionnode.FieldReasoning:
			values[i] = new(sql.NullString)
		case decisionnode.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DecisionNode fields.
func (_m *DecisionNode) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case decisionnode.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case decisionnode.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case decisionnode.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case decisionnode.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case decisionnode.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case decisionnode.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case decisionnode.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case decisionnode.FieldContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Context); err != nil {
					return fmt.Errorf("unmarshal field context: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DecisionNode.
// This includes values selected through modifiers, order, etc.
func (_m *DecisionNode) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryActions queries the "actions" edge of the DecisionNode entity.
func (_m *DecisionNode) QueryActions() *ActionNodeQuery {
	return NewDecisionNodeClient(_m.config).QueryActions(_m)
}

// Update returns a builder for updating this DecisionNode.
// Note that you need to call DecisionNode.Unwrap() before calling this method if this DecisionNode
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DecisionNode) Update() *DecisionNodeUpdateOne {
	return NewDecisionNodeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DecisionNode entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DecisionNode) Unwrap() *DecisionNode {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DecisionNode is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DecisionNode) String() string {
	var builder strings.Builder
	builder.WriteString("DecisionNode(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(fmt.Sprintf("%v", _m.Context))
	builder.WriteByte(')')
	return builder.String()
}

// DecisionNodes is a parsable slice of DecisionNode.
type DecisionNodes []*DecisionNode
