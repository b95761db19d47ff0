package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DecisionNode holds the schema definition for the DecisionNode entity: the
// root of one causal chain. Nodes are append-only; mistakes are recorded as
// new nodes with corrective edges, never as updates.
type DecisionNode struct {
	ent.Schema
}

// Fields of the DecisionNode.
func (DecisionNode) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("decision_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Optional().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Text("prompt").
			Immutable(),
		field.Text("reasoning").
			Optional().
			Immutable(),
		field.Float("confidence").
			Default(0).
			Immutable().
			Comment("Agent self-estimate in [0,1]"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.JSON("context", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("files, tools, external_sources, codebase_state"),
	}
}

// Edges of the DecisionNode.
func (DecisionNode) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("actions", ActionNode.Type),
	}
}

// Indexes of the DecisionNode.
func (DecisionNode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "timestamp"),
		index.Fields("session_id"),
		index.Fields("timestamp"),
	}
}
