// Code generated by ent, DO NOT EDIT.

package permissionrequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the permissionrequest type in the database.
	Label = "permission_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "permission_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldTool holds the string denoting the tool field in the database.
	FieldTool = "tool"
	// FieldInput holds the string denoting the input field in the database.
	FieldInput = "input"
	// FieldPattern holds the string denoting the pattern field in the database.
	FieldPattern = "pattern"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldAssessmentReason holds the string denoting the assessment_reason field in the database.
	FieldAssessmentReason = "assessment_reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDecision holds the string denoting the decision field in the database.
	FieldDecision = "decision"
	// FieldDecidedBy holds the string denoting the decided_by field in the database.
	FieldDecidedBy = "decided_by"
	// FieldDecidedAt holds the string denoting the decided_at field in the database.
	FieldDecidedAt = "decided_at"
	// Table holds the table name of the permissionrequest in the database.
	Table = "permission_requests"
)

// Columns holds all SQL columns for permissionrequest fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldTool,
	FieldInput,
	FieldPattern,
	FieldRiskLevel,
	FieldAssessmentReason,
	FieldCreatedAt,
	FieldDecision,
	FieldDecidedBy,
	FieldDecidedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// RiskLevel defines the type for the "risk_level" enum field.
type RiskLevel string

// RiskLevel values.
const (
	RiskLevelSafe     RiskLevel = "safe"
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

func (rl RiskLevel) String() string {
	return string(rl)
}

// RiskLevelValidator is a validator for the "risk_level" field enum values. It is called by the builders before save.
func RiskLevelValidator(rl RiskLevel) error {
	switch rl {
	case RiskLevelSafe, RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical:
		return nil
	default:
		return fmt.Errorf("permissionrequest: invalid enum value for risk_level field: %q", rl)
	}
}

// Decision defines the type for the "decision" enum field.
type Decision string

// Decision values.
const (
	DecisionOnce   Decision = "once"
	DecisionAlways Decision = "always"
	DecisionReject Decision = "reject"
)

func (d Decision) String() string {
	return string(d)
}

// DecisionValidator is a validator for the "decision" field enum values. It is called by the builders before save.
func DecisionValidator(d Decision) error {
	switch d {
	case DecisionOnce, DecisionAlways, DecisionReject:
		return nil
	default:
		return fmt.Errorf("permissionrequest: invalid enum value for decision field: %q", d)
	}
}

// DecidedBy defines the type for the "decided_by" enum field.
type DecidedBy string

// DecidedBy values.
const (
	DecidedByAuto    DecidedBy = "auto"
	DecidedByTimeout DecidedBy = "timeout"
	DecidedByHuman   DecidedBy = "human"
)

func (db DecidedBy) String() string {
	return string(db)
}

// DecidedByValidator is a validator for the "decided_by" field enum values. It is called by the builders before save.
func DecidedByValidator(db DecidedBy) error {
	switch db {
	case DecidedByAuto, DecidedByTimeout, DecidedByHuman:
		return nil
	default:
		return fmt.Errorf("permissionrequest: invalid enum value for decided_by field: %q", db)
	}
}

// OrderOption defines the ordering options for the PermissionRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByTool orders the results by the tool field.
func ByTool(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTool, opts...).ToFunc()
}

// ByPattern orders the results by the pattern field.
func ByPattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPattern, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByAssessmentReason orders the results by the assessment_reason field.
func ByAssessmentReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDecision orders the results by the decision field.
func ByDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecision, opts...).ToFunc()
}

// ByDecidedBy orders the results by the decided_by field.
func ByDecidedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecidedBy, opts...).ToFunc()
}

// ByDecidedAt orders the results by the decided_at field.
func ByDecidedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecidedAt, opts...).ToFunc()
}
