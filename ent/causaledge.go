// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codecoder-dev/codecoder/ent/causaledge"
)

// CausalEdge is the model entity for the CausalEdge schema.
type CausalEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SourceNode holds the value of the "source_node" field.
	SourceNode string `json:"source_node,omitempty"`
	// TargetNode holds the value of the "target_node" field.
	TargetNode string `json:"target_node,omitempty"`
	// Relationship holds the value of the "relationship" field.
	Relationship causaledge.Relationship `json:"relationship,omitempty"`
	// Link strength in [0,1]
	Weight       float64 `json:"weight,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CausalEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case causaledge.FieldWeight:
			values[i] = new(sql.NullFloat64)
		case causaledge.FieldID, causaledge.FieldSourceNode, causaledge.FieldTargetNode, causaledge.FieldRelationship:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CausalEdge fields.
func (_m *CausalEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case causaledge.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case causaledge.FieldSourceNode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_node", values[i])
			} else if value.Valid {
				_m.SourceNode = value.String
			}
		case causaledge.FieldTargetNode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_node", values[i])
			} else if value.Valid {
				_m.TargetNode = value.String
			}
		case causaledge.FieldRelationship:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relationship", values[i])
			} else if value.Valid {
				_m.Relationship = causaledge.Relationship(value.String)
			}
		case causaledge.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CausalEdge.
// This includes values selected through modifiers, order, etc.
func (_m *CausalEdge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CausalEdge.
// Note that you need to call CausalEdge.Unwrap() before calling this method if this CausalEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CausalEdge) Update() *CausalEdgeUpdateOne {
	return NewCausalEdgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CausalEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CausalEdge) Unwrap() *CausalEdge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CausalEdge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CausalEdge) String() string {
	var builder strings.Builder
	builder.WriteString("CausalEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_node=")
	builder.WriteString(_m.SourceNode)
	builder.WriteString(", ")
	builder.WriteString("target_node=")
	builder.WriteString(_m.TargetNode)
	builder.WriteString(", ")
	builder.WriteString("relationship=")
	builder.WriteString(fmt.Sprintf("%v", _m.Relationship))
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
	builder.WriteByte(')')
	return builder.String()
}

// CausalEdges is a parsable slice of CausalEdge.
type CausalEdges []*CausalEdge
