// Code generated by ent, DO NOT EDIT.

package causaledge

import (
	"entgo.io/ent/dialect/sql"
	"github.com/codecoder-dev/codecoder/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldContainsFold(FieldID, id))
}

// SourceNode applies equality check predicate on the "source_node" field. It's identical to SourceNodeEQ.
func SourceNode(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldEQ(FieldSourceNode, v))
}

// TargetNode applies equality check predicate on the "target_node" field. It's identical to TargetNodeEQ.
func TargetNode(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldEQ(FieldTargetNode, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v float64) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldEQ(FieldWeight, v))
}

// SourceNodeEQ applies the EQ predicate on the "source_node" field.
func SourceNodeEQ(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldEQ(FieldSourceNode, v))
}

// SourceNodeNEQ applies the NEQ predicate on the "source_node" field.
func SourceNodeNEQ(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldNEQ(FieldSourceNode, v))
}

// SourceNodeIn applies the In predicate on the "source_node" field.
func SourceNodeIn(vs ...string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldIn(FieldSourceNode, vs...))
}

// SourceNodeNotIn applies the NotIn predicate on the "source_node" field.
func SourceNodeNotIn(vs ...string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldNotIn(FieldSourceNode, vs...))
}

// SourceNodeGT applies the GT predicate on the "source_node" field.
func SourceNodeGT(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldGT(FieldSourceNode, v))
}

// SourceNodeGTE applies the GTE predicate on the "source_node" field.
func SourceNodeGTE(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldGTE(FieldSourceNode, v))
}

// SourceNodeLT applies the LT predicate on the "source_node" field.
func SourceNodeLT(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldLT(FieldSourceNode, v))
}

// SourceNodeLTE applies the LTE predicate on the "source_node" field.
func SourceNodeLTE(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldLTE(FieldSourceNode, v))
}

// SourceNodeContains applies the Contains predicate on the "source_node" field.
func SourceNodeContains(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldContains(FieldSourceNode, v))
}

// SourceNodeHasPrefix applies the HasPrefix predicate on the "source_node" field.
func SourceNodeHasPrefix(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldHasPrefix(FieldSourceNode, v))
}

// SourceNodeHasSuffix applies the HasSuffix predicate on the "source_node" field.
func SourceNodeHasSuffix(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldHasSuffix(FieldSourceNode, v))
}

// SourceNodeEqualFold applies the EqualFold predicate on the "source_node" field.
func SourceNodeEqualFold(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldEqualFold(FieldSourceNode, v))
}

// SourceNodeContainsFold applies the ContainsFold predicate on the "source_node" field.
func SourceNodeContainsFold(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldContainsFold(FieldSourceNode, v))
}

// TargetNodeEQ applies the EQ predicate on the "target_node" field.
func TargetNodeEQ(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldEQ(FieldTargetNode, v))
}

// TargetNodeNEQ applies the NEQ predicate on the "target_node" field.
func TargetNodeNEQ(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldNEQ(FieldTargetNode, v))
}

// TargetNodeIn applies the In predicate on the "target_node" field.
func TargetNodeIn(vs ...string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldIn(FieldTargetNode, vs...))
}

// TargetNodeNotIn applies the NotIn predicate on the "target_node" field.
func TargetNodeNotIn(vs ...string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldNotIn(FieldTargetNode, vs...))
}

// TargetNodeGT applies the GT predicate on the "target_node" field.
func TargetNodeGT(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldGT(FieldTargetNode, v))
}

// TargetNodeGTE applies the GTE predicate on the "target_node" field.
func TargetNodeGTE(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldGTE(FieldTargetNode, v))
}

// TargetNodeLT applies the LT predicate on the "target_node" field.
func TargetNodeLT(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldLT(FieldTargetNode, v))
}

// TargetNodeLTE applies the LTE predicate on the "target_node" field.
func TargetNodeLTE(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldLTE(FieldTargetNode, v))
}

// TargetNodeContains applies the Contains predicate on the "target_node" field.
func TargetNodeContains(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldContains(FieldTargetNode, v))
}

// TargetNodeHasPrefix applies the HasPrefix predicate on the "target_node" field.
func TargetNodeHasPrefix(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldHasPrefix(FieldTargetNode, v))
}

// TargetNodeHasSuffix applies the HasSuffix predicate on the "target_node" field.
func TargetNodeHasSuffix(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldHasSuffix(FieldTargetNode, v))
}

// TargetNodeEqualFold applies the EqualFold predicate on the "target_node" field.
func TargetNodeEqualFold(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldEqualFold(FieldTargetNode, v))
}

// TargetNodeContainsFold applies the ContainsFold predicate on the "target_node" field.
func TargetNodeContainsFold(v string) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldContainsFold(FieldTargetNode, v))
}

// RelationshipEQ applies the EQ predicate on the "relationship" field.
func RelationshipEQ(v Relationship) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldEQ(FieldRelationship, v))
}

// RelationshipNEQ applies the NEQ predicate on the "relationship" field.
func RelationshipNEQ(v Relationship) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldNEQ(FieldRelationship, v))
}

// RelationshipIn applies the In predicate on the "relationship" field.
func RelationshipIn(vs ...Relationship) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldIn(FieldRelationship, vs...))
}

// RelationshipNotIn applies the NotIn predicate on the "relationship" field.
func RelationshipNotIn(vs ...Relationship) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldNotIn(FieldRelationship, vs...))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v float64) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v float64) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...float64) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...float64) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v float64) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v float64) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v float64) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v float64) predicate.CausalEdge {
	return predicate.CausalEdge(sql.FieldLTE(FieldWeight, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CausalEdge) predicate.CausalEdge {
	return predicate.CausalEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CausalEdge) predicate.CausalEdge {
	return predicate.CausalEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CausalEdge) predicate.CausalEdge {
	return predicate.CausalEdge(sql.NotPredicates(p))
}
