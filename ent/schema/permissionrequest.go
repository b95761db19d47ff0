package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PermissionRequest holds the schema definition for the PermissionRequest
// entity: one mediated decision about a tool call on behalf of a task.
type PermissionRequest struct {
	ent.Schema
}

// Fields of the PermissionRequest.
func (PermissionRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("permission_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("tool").
			Immutable(),
		field.JSON("input", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.String("pattern").
			Optional().
			Immutable(),
		field.Enum("risk_level").
			Values("safe", "low", "medium", "high", "critical").
			Immutable(),
		field.Text("assessment_reason").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		// Resolution, unset while pending.
		field.Enum("decision").
			Values("once", "always", "reject").
			Optional().
			Nillable(),
		field.Enum("decided_by").
			Values("auto", "timeout", "human").
			Optional().
			Nillable(),
		field.Time("decided_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the PermissionRequest.
func (PermissionRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
		index.Fields("created_at"),
	}
}
