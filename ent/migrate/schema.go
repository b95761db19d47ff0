// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActionNodesColumns holds the columns for the "action_nodes" table.
	ActionNodesColumns = []*schema.Column{
		{Name: "action_id", Type: field.TypeString, Unique: true},
		{Name: "action_type", Type: field.TypeEnum, Enums: []string{"code_change", "tool_execution", "api_call", "file_operation", "search", "other"}},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "decision_id", Type: field.TypeString},
	}
	// ActionNodesTable holds the schema information for the "action_nodes" table.
	ActionNodesTable = &schema.Table{
		Name:       "action_nodes",
		Columns:    ActionNodesColumns,
		PrimaryKey: []*schema.Column{ActionNodesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "action_nodes_decision_nodes_actions",
				Columns:    []*schema.Column{ActionNodesColumns[7]},
				RefColumns: []*schema.Column{DecisionNodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "actionnode_decision_id",
				Unique:  false,
				Columns: []*schema.Column{ActionNodesColumns[7]},
			},
			{
				Name:    "actionnode_action_type_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActionNodesColumns[1], ActionNodesColumns[5]},
			},
			{
				Name:    "actionnode_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ActionNodesColumns[5]},
			},
		},
	}
	// CausalEdgesColumns holds the columns for the "causal_edges" table.
	CausalEdgesColumns = []*schema.Column{
		{Name: "edge_id", Type: field.TypeString, Unique: true},
		{Name: "source_node", Type: field.TypeString},
		{Name: "target_node", Type: field.TypeString},
		{Name: "relationship", Type: field.TypeEnum, Enums: []string{"causes", "leads_to", "results_in", "influences"}},
		{Name: "weight", Type: field.TypeFloat64, Default: 1},
	}
	// CausalEdgesTable holds the schema information for the "causal_edges" table.
	CausalEdgesTable = &schema.Table{
		Name:       "causal_edges",
		Columns:    CausalEdgesColumns,
		PrimaryKey: []*schema.Column{CausalEdgesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "causaledge_source_node",
				Unique:  false,
				Columns: []*schema.Column{CausalEdgesColumns[1]},
			},
			{
				Name:    "causaledge_target_node",
				Unique:  false,
				Columns: []*schema.Column{CausalEdgesColumns[2]},
			},
		},
	}
	// DecisionNodesColumns holds the columns for the "decision_nodes" table.
	DecisionNodesColumns = []*schema.Column{
		{Name: "decision_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
	}
	// DecisionNodesTable holds the schema information for the "decision_nodes" table.
	DecisionNodesTable = &schema.Table{
		Name:       "decision_nodes",
		Columns:    DecisionNodesColumns,
		PrimaryKey: []*schema.Column{DecisionNodesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decisionnode_agent_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DecisionNodesColumns[2], DecisionNodesColumns[6]},
			},
			{
				Name:    "decisionnode_session_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionNodesColumns[1]},
			},
			{
				Name:    "decisionnode_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DecisionNodesColumns[6]},
			},
		},
	}
	// OutcomeNodesColumns holds the columns for the "outcome_nodes" table.
	OutcomeNodesColumns = []*schema.Column{
		{Name: "outcome_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"success", "failure", "partial"}},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "action_id", Type: field.TypeString},
	}
	// OutcomeNodesTable holds the schema information for the "outcome_nodes" table.
	OutcomeNodesTable = &schema.Table{
		Name:       "outcome_nodes",
		Columns:    OutcomeNodesColumns,
		PrimaryKey: []*schema.Column{OutcomeNodesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "outcome_nodes_action_nodes_outcomes",
				Columns:    []*schema.Column{OutcomeNodesColumns[6]},
				RefColumns: []*schema.Column{ActionNodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "outcomenode_action_id",
				Unique:  false,
				Columns: []*schema.Column{OutcomeNodesColumns[6]},
			},
			{
				Name:    "outcomenode_status_timestamp",
				Unique:  false,
				Columns: []*schema.Column{OutcomeNodesColumns[1], OutcomeNodesColumns[5]},
			},
		},
	}
	// PermissionRequestsColumns holds the columns for the "permission_requests" table.
	PermissionRequestsColumns = []*schema.Column{
		{Name: "permission_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "tool", Type: field.TypeString},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "pattern", Type: field.TypeString, Nullable: true},
		{Name: "risk_level", Type: field.TypeEnum, Enums: []string{"safe", "low", "medium", "high", "critical"}},
		{Name: "assessment_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "decision", Type: field.TypeEnum, Nullable: true, Enums: []string{"once", "always", "reject"}},
		{Name: "decided_by", Type: field.TypeEnum, Nullable: true, Enums: []string{"auto", "timeout", "human"}},
		{Name: "decided_at", Type: field.TypeTime, Nullable: true},
	}
	// PermissionRequestsTable holds the schema information for the "permission_requests" table.
	PermissionRequestsTable = &schema.Table{
		Name:       "permission_requests",
		Columns:    PermissionRequestsColumns,
		PrimaryKey: []*schema.Column{PermissionRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "permissionrequest_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PermissionRequestsColumns[1], PermissionRequestsColumns[7]},
			},
			{
				Name:    "permissionrequest_created_at",
				Unique:  false,
				Columns: []*schema.Column{PermissionRequestsColumns[7]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "platform", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"local", "remote", "scheduled"}, Default: "local"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "awaiting_approval", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "pending_permission_id", Type: field.TypeString, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6]},
			},
			{
				Name:    "task_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[7]},
			},
			{
				Name:    "task_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActionNodesTable,
		CausalEdgesTable,
		DecisionNodesTable,
		OutcomeNodesTable,
		PermissionRequestsTable,
		TasksTable,
	}
)

func init() {
	ActionNodesTable.ForeignKeys[0].RefTable = DecisionNodesTable
	OutcomeNodesTable.ForeignKeys[0].RefTable = ActionNodesTable
}
