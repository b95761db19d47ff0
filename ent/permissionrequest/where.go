// Code generated by ent, DO NOT EDIT.

package permissionrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codecoder-dev/codecoder/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldTaskID, v))
}

// Tool applies equality check predicate on the "tool" field. It's identical to ToolEQ.
func Tool(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldTool, v))
}

// Pattern applies equality check predicate on the "pattern" field. It's identical to PatternEQ.
func Pattern(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldPattern, v))
}

// AssessmentReason applies equality check predicate on the "assessment_reason" field. It's identical to AssessmentReasonEQ.
func AssessmentReason(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldAssessmentReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// DecidedAt applies equality check predicate on the "decided_at" field. It's identical to DecidedAtEQ.
func DecidedAt(v time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldDecidedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldContainsFold(FieldTaskID, v))
}

// ToolEQ applies the EQ predicate on the "tool" field.
func ToolEQ(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldTool, v))
}

// ToolNEQ applies the NEQ predicate on the "tool" field.
func ToolNEQ(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNEQ(FieldTool, v))
}

// ToolIn applies the In predicate on the "tool" field.
func ToolIn(vs ...string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIn(FieldTool, vs...))
}

// ToolNotIn applies the NotIn predicate on the "tool" field.
func ToolNotIn(vs ...string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotIn(FieldTool, vs...))
}

// ToolGT applies the GT predicate on the "tool" field.
func ToolGT(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldGT(FieldTool, v))
}

// ToolGTE applies the GTE predicate on the "tool" field.
func ToolGTE(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldGTE(FieldTool, v))
}

// ToolLT applies the LT predicate on the "tool" field.
func ToolLT(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldLT(FieldTool, v))
}

// ToolLTE applies the LTE predicate on the "tool" field.
func ToolLTE(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldLTE(FieldTool, v))
}

// ToolContains applies the Contains predicate on the "tool" field.
func ToolContains(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldContains(FieldTool, v))
}

// ToolHasPrefix applies the HasPrefix predicate on the "tool" field.
func ToolHasPrefix(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldHasPrefix(FieldTool, v))
}

// ToolHasSuffix applies the HasSuffix predicate on the "tool" field.
func ToolHasSuffix(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldHasSuffix(FieldTool, v))
}

// ToolEqualFold applies the EqualFold predicate on the "tool" field.
func ToolEqualFold(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEqualFold(FieldTool, v))
}

// ToolContainsFold applies the ContainsFold predicate on the "tool" field.
func ToolContainsFold(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldContainsFold(FieldTool, v))
}

// InputIsNil applies the IsNil predicate on the "input" field.
func InputIsNil() predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIsNull(FieldInput))
}

// InputNotNil applies the NotNil predicate on the "input" field.
func InputNotNil() predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotNull(FieldInput))
}

// PatternEQ applies the EQ predicate on the "pattern" field.
func PatternEQ(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldPattern, v))
}

// PatternNEQ applies the NEQ predicate on the "pattern" field.
func PatternNEQ(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNEQ(FieldPattern, v))
}

// PatternIn applies the In predicate on the "pattern" field.
func PatternIn(vs ...string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIn(FieldPattern, vs...))
}

// PatternNotIn applies the NotIn predicate on the "pattern" field.
func PatternNotIn(vs ...string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotIn(FieldPattern, vs...))
}

// PatternGT applies the GT predicate on the "pattern" field.
func PatternGT(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldGT(FieldPattern, v))
}

// PatternGTE applies the GTE predicate on the "pattern" field.
func PatternGTE(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldGTE(FieldPattern, v))
}

// PatternLT applies the LT predicate on the "pattern" field.
func PatternLT(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldLT(FieldPattern, v))
}

// PatternLTE applies the LTE predicate on the "pattern" field.
func PatternLTE(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldLTE(FieldPattern, v))
}

// PatternContains applies the Contains predicate on the "pattern" field.
func PatternContains(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldContains(FieldPattern, v))
}

// PatternHasPrefix applies the HasPrefix predicate on the "pattern" field.
func PatternHasPrefix(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldHasPrefix(FieldPattern, v))
}

// PatternHasSuffix applies the HasSuffix predicate on the "pattern" field.
func PatternHasSuffix(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldHasSuffix(FieldPattern, v))
}

// PatternIsNil applies the IsNil predicate on the "pattern" field.
func PatternIsNil() predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIsNull(FieldPattern))
}

// PatternNotNil applies the NotNil predicate on the "pattern" field.
func PatternNotNil() predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotNull(FieldPattern))
}

// PatternEqualFold applies the EqualFold predicate on the "pattern" field.
func PatternEqualFold(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEqualFold(FieldPattern, v))
}

// PatternContainsFold applies the ContainsFold predicate on the "pattern" field.
func PatternContainsFold(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldContainsFold(FieldPattern, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v RiskLevel) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v RiskLevel) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...RiskLevel) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...RiskLevel) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// AssessmentReasonEQ applies the EQ predicate on the "assessment_reason" field.
func AssessmentReasonEQ(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldAssessmentReason, v))
}

// AssessmentReasonNEQ applies the NEQ predicate on the "assessment_reason" field.
func AssessmentReasonNEQ(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNEQ(FieldAssessmentReason, v))
}

// AssessmentReasonIn applies the In predicate on the "assessment_reason" field.
func AssessmentReasonIn(vs ...string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIn(FieldAssessmentReason, vs...))
}

// AssessmentReasonNotIn applies the NotIn predicate on the "assessment_reason" field.
func AssessmentReasonNotIn(vs ...string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotIn(FieldAssessmentReason, vs...))
}

// AssessmentReasonGT applies the GT predicate on the "assessment_reason" field.
func AssessmentReasonGT(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldGT(FieldAssessmentReason, v))
}

// AssessmentReasonGTE applies the GTE predicate on the "assessment_reason" field.
func AssessmentReasonGTE(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldGTE(FieldAssessmentReason, v))
}

// AssessmentReasonLT applies the LT predicate on the "assessment_reason" field.
func AssessmentReasonLT(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldLT(FieldAssessmentReason, v))
}

// AssessmentReasonLTE applies the LTE predicate on the "assessment_reason" field.
func AssessmentReasonLTE(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldLTE(FieldAssessmentReason, v))
}

// AssessmentReasonContains applies the Contains predicate on the "assessment_reason" field.
func AssessmentReasonContains(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldContains(FieldAssessmentReason, v))
}

// AssessmentReasonHasPrefix applies the HasPrefix predicate on the "assessment_reason" field.
func AssessmentReasonHasPrefix(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldHasPrefix(FieldAssessmentReason, v))
}

// AssessmentReasonHasSuffix applies the HasSuffix predicate on the "assessment_reason" field.
func AssessmentReasonHasSuffix(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldHasSuffix(FieldAssessmentReason, v))
}

// AssessmentReasonIsNil applies the IsNil predicate on the "assessment_reason" field.
func AssessmentReasonIsNil() predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIsNull(FieldAssessmentReason))
}

// AssessmentReasonNotNil applies the NotNil predicate on the "assessment_reason" field.
func AssessmentReasonNotNil() predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotNull(FieldAssessmentReason))
}

// AssessmentReasonEqualFold applies the EqualFold predicate on the "assessment_reason" field.
func AssessmentReasonEqualFold(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEqualFold(FieldAssessmentReason, v))
}

// AssessmentReasonContainsFold applies the ContainsFold predicate on the "assessment_reason" field.
func AssessmentReasonContainsFold(v string) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldContainsFold(FieldAssessmentReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v Decision) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v Decision) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...Decision) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...Decision) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotIn(FieldDecision, vs...))
}

// DecisionIsNil applies the IsNil predicate on the "decision" field.
func DecisionIsNil() predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIsNull(FieldDecision))
}

// DecisionNotNil applies the NotNil predicate on the "decision" field.
func DecisionNotNil() predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotNull(FieldDecision))
}

// DecidedByEQ applies the EQ predicate on the "decided_by" field.
func DecidedByEQ(v DecidedBy) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldDecidedBy, v))
}

// DecidedByNEQ applies the NEQ predicate on the "decided_by" field.
func DecidedByNEQ(v DecidedBy) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNEQ(FieldDecidedBy, v))
}

// DecidedByIn applies the In predicate on the "decided_by" field.
func DecidedByIn(vs ...DecidedBy) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIn(FieldDecidedBy, vs...))
}

// DecidedByNotIn applies the NotIn predicate on the "decided_by" field.
func DecidedByNotIn(vs ...DecidedBy) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotIn(FieldDecidedBy, vs...))
}

// DecidedByIsNil applies the IsNil predicate on the "decided_by" field.
func DecidedByIsNil() predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIsNull(FieldDecidedBy))
}

// DecidedByNotNil applies the NotNil predicate on the "decided_by" field.
func DecidedByNotNil() predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotNull(FieldDecidedBy))
}

// DecidedAtEQ applies the EQ predicate on the "decided_at" field.
func DecidedAtEQ(v time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldEQ(FieldDecidedAt, v))
}

// DecidedAtNEQ applies the NEQ predicate on the "decided_at" field.
func DecidedAtNEQ(v time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNEQ(FieldDecidedAt, v))
}

// DecidedAtIn applies the In predicate on the "decided_at" field.
func DecidedAtIn(vs ...time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIn(FieldDecidedAt, vs...))
}

// DecidedAtNotIn applies the NotIn predicate on the "decided_at" field.
func DecidedAtNotIn(vs ...time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotIn(FieldDecidedAt, vs...))
}

// DecidedAtGT applies the GT predicate on the "decided_at" field.
func DecidedAtGT(v time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldGT(FieldDecidedAt, v))
}

// DecidedAtGTE applies the GTE predicate on the "decided_at" field.
func DecidedAtGTE(v time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldGTE(FieldDecidedAt, v))
}

// DecidedAtLT applies the LT predicate on the "decided_at" field.
func DecidedAtLT(v time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldLT(FieldDecidedAt, v))
}

// DecidedAtLTE applies the LTE predicate on the "decided_at" field.
func DecidedAtLTE(v time.Time) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldLTE(FieldDecidedAt, v))
}

// DecidedAtIsNil applies the IsNil predicate on the "decided_at" field.
func DecidedAtIsNil() predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldIsNull(FieldDecidedAt))
}

// DecidedAtNotNil applies the NotNil predicate on the "decided_at" field.
func DecidedAtNotNil() predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.FieldNotNull(FieldDecidedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PermissionRequest) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PermissionRequest) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PermissionRequest) predicate.PermissionRequest {
	return predicate.PermissionRequest(sql.NotPredicates(p))
}
