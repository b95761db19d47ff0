// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActionNode is the predicate function for actionnode builders.
type ActionNode func(*sql.Selector)

// CausalEdge is the predicate function for causaledge builders.
type CausalEdge func(*sql.Selector)

// DecisionNode is the predicate function for decisionnode builders.
type DecisionNode func(*sql.Selector)

// OutcomeNode is the predicate function for outcomenode builders.
type OutcomeNode func(*sql.Selector)

// PermissionRequest is the predicate function for permissionrequest builders.
type PermissionRequest func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
