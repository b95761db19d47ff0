package causal

import (
	"time"

	"github.com/codecoder-dev/codecoder/ent"
)

// ActionType classifies what an action did.
type ActionType string

// Action types.
const (
	ActionCodeChange    ActionType = "code_change"
	ActionToolExecution ActionType = "tool_execution"
	ActionAPICall       ActionType = "api_call"
	ActionFileOperation ActionType = "file_operation"
	ActionSearch        ActionType = "search"
	ActionOther         ActionType = "other"
)

// OutcomeStatus classifies how an action ended.
type OutcomeStatus string

// Outcome statuses.
const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeFailure OutcomeStatus = "failure"
	OutcomePartial OutcomeStatus = "partial"
)

// Relationship types an edge can carry.
type Relationship string

// Relationships.
const (
	RelCauses     Relationship = "causes"
	RelLeadsTo    Relationship = "leads_to"
	RelResultsIn  Relationship = "results_in"
	RelInfluences Relationship = "influences"
)

// DecisionInput is the payload for recording a decision; the store assigns
// the id and timestamp.
type DecisionInput struct {
	SessionID  string         `json:"session_id,omitempty"`
	AgentID    string         `json:"agent_id"`
	Prompt     string         `json:"prompt"`
	Reasoning  string         `json:"reasoning,omitempty"`
	Confidence float64        `json:"confidence"`
	Context    map[string]any `json:"context,omitempty"`
}

// ActionInput is the payload for recording an action under a decision.
type ActionInput struct {
	Type        ActionType     `json:"action_type"`
	Description string         `json:"description"`
	Input       map[string]any `json:"input,omitempty"`
	Output      map[string]any `json:"output,omitempty"`
	DurationMS  *int64         `json:"duration_ms,omitempty"`
}

// OutcomeInput is the payload for recording an action's outcome.
type OutcomeInput struct {
	Status      OutcomeStatus  `json:"status"`
	Description string         `json:"description"`
	Metrics     map[string]any `json:"metrics,omitempty"`
	Feedback    string         `json:"feedback,omitempty"`
}

// Chain is one decision with everything reachable from it.
type Chain struct {
	Decision *ent.DecisionNode             `json:"decision"`
	Actions  []*ent.ActionNode             `json:"actions"`
	Outcomes map[string][]*ent.OutcomeNode `json:"outcomes"`
	Edges    []*ent.CausalEdge             `json:"edges"`
}

// QueryFilter narrows a chain query. Zero values mean "no constraint".
type QueryFilter struct {
	AgentID       string
	SessionID     string
	ActionType    ActionType
	OutcomeStatus OutcomeStatus
	Since         time.Time
	Until         time.Time
	MinConfidence float64
	Limit         int
}

// Stats are aggregate counters over the whole graph.
type Stats struct {
	Decisions   int            `json:"decisions"`
	Actions     int            `json:"actions"`
	Outcomes    int            `json:"outcomes"`
	Edges       int            `json:"edges"`
	SuccessRate float64        `json:"success_rate"`
	TopAgents   []AgentCount   `json:"top_agents"`
	ActionTypes map[string]int `json:"action_types"`
}

// AgentCount is one row of the top-agents ranking.
type AgentCount struct {
	AgentID   string `json:"agent_id"`
	Decisions int    `json:"decisions"`
}
