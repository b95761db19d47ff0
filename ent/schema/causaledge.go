package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CausalEdge holds the schema definition for the CausalEdge entity: a typed,
// weighted link between any two causal nodes. Source and target are node ids
// rather than foreign keys because an edge may span node kinds.
type CausalEdge struct {
	ent.Schema
}

// Fields of the CausalEdge.
func (CausalEdge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("edge_id").
			Unique().
			Immutable(),
		field.String("source_node").
			Immutable(),
		field.String("target_node").
			Immutable(),
		field.Enum("relationship").
			Values("causes", "leads_to", "results_in", "influences").
			Immutable(),
		field.Float("weight").
			Default(1).
			Immutable().
			Comment("Link strength in [0,1]"),
	}
}

// Indexes of the CausalEdge.
func (CausalEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_node"),
		index.Fields("target_node"),
	}
}
