package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity: one supervised agent
// run with its full lifecycle state.
//
// Tasks reference their Decision chain by id only. Deleting a task never
// deletes causal nodes; the causal graph is the durable record.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Text("prompt").
			Immutable(),

		// Submission context
		field.String("user_id").
			Optional().
			Immutable(),
		field.String("platform").
			Optional().
			Immutable(),
		field.Enum("source").
			Values("local", "remote", "scheduled").
			Default("local").
			Immutable(),

		// Lifecycle: pending → running → (awaiting_approval ↔ running)* →
		// terminal. Terminal states are sticky.
		field.Enum("status").
			Values("pending", "running", "awaiting_approval", "completed", "failed", "cancelled").
			Default("pending"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),

		field.Text("output").
			Optional().
			Comment("Final agent output, set on completion"),
		field.Text("error").
			Optional().
			Comment("Failure reason, set on failed"),
		field.String("pending_permission_id").
			Optional().
			Nillable().
			Comment("Permission request parking this task, nil unless awaiting_approval"),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("agent_id", "created_at"),
		index.Fields("created_at"),
	}
}
