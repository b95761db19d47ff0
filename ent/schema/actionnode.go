package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActionNode holds the schema definition for the ActionNode entity: one
// concrete act taken under a Decision.
type ActionNode struct {
	ent.Schema
}

// Fields of the ActionNode.
func (ActionNode) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("action_id").
			Unique().
			Immutable(),
		field.String("decision_id").
			Immutable(),
		field.Enum("action_type").
			Values("code_change", "tool_execution", "api_call", "file_operation", "search", "other").
			Immutable(),
		field.Text("description").
			Immutable(),
		field.JSON("input", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.JSON("output", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.Int64("duration_ms").
			Optional().
			Nillable().
			Immutable(),
	}
}

// Edges of the ActionNode.
func (ActionNode) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("decision", DecisionNode.Type).
			Ref("actions").
			Field("decision_id").
			Unique().
			Required().
			Immutable(),
		edge.To("outcomes", OutcomeNode.Type),
	}
}

// Indexes of the ActionNode.
func (ActionNode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("decision_id"),
		index.Fields("action_type", "timestamp"),
		index.Fields("timestamp"),
	}
}
