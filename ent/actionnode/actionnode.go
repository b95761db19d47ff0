// Code generated by ent, DO NOT EDIT.

package actionnode

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the actionnode type in the database.
	Label = "action_node"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "action_id"
	// FieldDecisionID holds the string denoting the decision_id field in the database.
	FieldDecisionID = "decision_id"
	// FieldActionType holds the string denoting the action_type field in the database.
	FieldActionType = "action_type"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldInput holds the string denoting the input field in the database.
	FieldInput = "input"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// EdgeDecision holds the string denoting the decision edge name in mutations.
	EdgeDecision = "decision"
	// EdgeOutcomes holds the string denoting the outcomes edge name in mutations.
	EdgeOutcomes = "outcomes"
	// DecisionNodeFieldID holds the string denoting the ID field of the DecisionNode.
	DecisionNodeFieldID = "decision_id"
	// OutcomeNodeFieldID holds the string denoting the ID field of the OutcomeNode.
	OutcomeNodeFieldID = "outcome_id"
	// Table holds the table name of the actionnode in the database.
	Table = "action_nodes"
	// DecisionTable is the table that holds the decision relation/edge.
	DecisionTable = "action_nodes"
	// DecisionInverseTable is the table name for the DecisionNode entity.
	// It exists in this package in order to avoid circular dependency with the "decisionnode" package.
	DecisionInverseTable = "decision_nodes"
	// DecisionColumn is the table column denoting the decision relation/edge.
	DecisionColumn = "decision_id"
	// OutcomesTable is the table that holds the outcomes relation/edge.
	OutcomesTable = "outcome_nodes"
	// OutcomesInverseTable is the table name for the OutcomeNode entity.
	// It exists in this package in order to avoid circular dependency with the "outcomenode" package.
	OutcomesInverseTable = "outcome_nodes"
	// OutcomesColumn is the table column denoting the outcomes relation/edge.
	OutcomesColumn = "action_id"
)

// Columns holds all SQL columns for actionnode fields.
var Columns = []string{
	FieldID,
	FieldDecisionID,
	FieldActionType,
	FieldDescription,
	FieldInput,
	FieldOutput,
	FieldTimestamp,
	FieldDurationMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// ActionType defines the type for the "action_type" enum field.
type ActionType string

// ActionType values.
const (
	ActionTypeCodeChange    ActionType = "code_change"
	ActionTypeToolExecution ActionType = "tool_execution"
	ActionTypeAPICall       ActionType = "api_call"
	ActionTypeFileOperation ActionType = "file_operation"
	ActionTypeSearch        ActionType = "search"
	ActionTypeOther         ActionType = "other"
)

func (at ActionType) String() string {
	return string(at)
}

// ActionTypeValidator is a validator for the "action_type" field enum values. It is called by the builders before save.
func ActionTypeValidator(at ActionType) error {
	switch at {
	case ActionTypeCodeChange, ActionTypeToolExecution, ActionTypeAPICall, ActionTypeFileOperation, ActionTypeSearch, ActionTypeOther:
		return nil
	default:
		return fmt.Errorf("actionnode: invalid enum value for action_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the ActionNode queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDecisionID orders the results by the decision_id field.
func ByDecisionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionID, opts...).ToFunc()
}

// ByActionType orders the results by the action_type field.
func ByActionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionType, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByDecisionField orders the results by decision field.
func ByDecisionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDecisionStep(), sql.OrderByField(field, opts...))
	}
}

// ByOutcomesCount orders the results by outcomes count.
func ByOutcomesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutcomesStep(), opts...)
	}
}

// ByOutcomes orders the results by outcomes terms.
func ByOutcomes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutcomesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDecisionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DecisionInverseTable, DecisionNodeFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DecisionTable, DecisionColumn),
	)
}
func newOutcomesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutcomesInverseTable, OutcomeNodeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutcomesTable, OutcomesColumn),
	)
}
