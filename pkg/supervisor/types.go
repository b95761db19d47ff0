package supervisor

import (
	"time"

	"github.com/codecoder-dev/codecoder/pkg/permission"
)

// Config tunes the supervisor.
type Config struct {
	// Workers is the number of concurrent tasks.
	Workers int
	// ToolTimeout bounds each tool call.
	ToolTimeout time.Duration
	// SubscriberDepth is the per-subscriber event buffer size.
	SubscriberDepth int
	// PollInterval is the worker claim-poll period.
	PollInterval time.Duration
	// ProjectSensitivity feeds the permission engine's adaptive adjustment.
	ProjectSensitivity permission.Sensitivity
}

// DefaultConfig returns the stock supervisor settings.
func DefaultConfig() Config {
	return Config{
		Workers:            4,
		ToolTimeout:        60 * time.Second,
		SubscriberDepth:    256,
		PollInterval:       250 * time.Millisecond,
		ProjectSensitivity: permission.SensitivityLow,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.ToolTimeout <= 0 {
		c.ToolTimeout = d.ToolTimeout
	}
	if c.SubscriberDepth <= 0 {
		c.SubscriberDepth = d.SubscriberDepth
	}
	if c.PollInterval <= 0 {
		c.PollInterval = d.PollInterval
	}
	if c.ProjectSensitivity == "" {
		c.ProjectSensitivity = d.ProjectSensitivity
	}
	return c
}

// SubmitInput describes a new task.
type SubmitInput struct {
	AgentID  string                `json:"agent_id"`
	Prompt   string                `json:"prompt"`
	UserID   string                `json:"user_id,omitempty"`
	Platform string                `json:"platform,omitempty"`
	Source   permission.TaskSource `json:"source,omitempty"`
}

// InteractDecision is a human resolution of a pending permission.
type InteractDecision string

// Interact decisions.
const (
	DecisionApproveOnce   InteractDecision = "once"
	DecisionApproveAlways InteractDecision = "always"
	DecisionReject        InteractDecision = "reject"
)

// ListFilter narrows List results.
type ListFilter struct {
	Status string
	Limit  int
}

// execCounts tracks per-task tool results for adaptive risk.
type execCounts struct {
	successes int
	errors    int
	iteration int
}
