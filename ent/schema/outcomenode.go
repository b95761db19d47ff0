package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutcomeNode holds the schema definition for the OutcomeNode entity: the
// observed result of one Action.
type OutcomeNode struct {
	ent.Schema
}

// Fields of the OutcomeNode.
func (OutcomeNode) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("outcome_id").
			Unique().
			Immutable(),
		field.String("action_id").
			Immutable(),
		field.Enum("status").
			Values("success", "failure", "partial").
			Immutable(),
		field.Text("description").
			Immutable(),
		field.JSON("metrics", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Text("feedback").
			Optional().
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the OutcomeNode.
func (OutcomeNode) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("action", ActionNode.Type).
			Ref("outcomes").
			Field("action_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the OutcomeNode.
func (OutcomeNode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action_id"),
		index.Fields("status", "timestamp"),
	}
}
