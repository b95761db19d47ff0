// Code generated by ent, DO NOT EDIT.

package causaledge

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the causaledge type in the database.
	Label = "causal_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "edge_id"
	// FieldSourceNode holds the string denoting the source_node field in the database.
	FieldSourceNode = "source_node"
	// FieldTargetNode holds the string denoting the target_node field in the database.
	FieldTargetNode = "target_node"
	// FieldRelationship holds the string denoting the relationship field in the database.
	FieldRelationship = "relationship"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// Table holds the table name of the causaledge in the database.
	Table = "causal_edges"
)

// Columns holds all SQL columns for causaledge fields.
var Columns = []string{
	FieldID,
	FieldSourceNode,
	FieldTargetNode,
	FieldRelationship,
	FieldWeight,
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
	// DefaultWeight holds the default value on creation for the "weight" field.
	DefaultWeight float64
)

// Relationship defines the type for the "relationship" enum field.
type Relationship string

// Relationship values.
const (
	RelationshipCauses     Relationship = "causes"
	RelationshipLeadsTo    Relationship = "leads_to"
	RelationshipResultsIn  Relationship = "results_in"
	RelationshipInfluences Relationship = "influences"
)

func (r Relationship) String() string {
	return string(r)
}

// RelationshipValidator is a validator for the "relationship" field enum values. It is called by the builders before save.
func RelationshipValidator(r Relationship) error {
	switch r {
	case RelationshipCauses, RelationshipLeadsTo, RelationshipResultsIn, RelationshipInfluences:
		return nil
	default:
		return fmt.Errorf("causaledge: invalid enum value for relationship field: %q", r)
	}
}

// OrderOption defines the ordering options for the CausalEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceNode orders the results by the source_node field.
func BySourceNode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceNode, opts...).ToFunc()
}

// ByTargetNode orders the results by the target_node field.
func ByTargetNode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetNode, opts...).ToFunc()
}

// ByRelationship orders the results by the relationship field.
func ByRelationship(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationship, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}
