// Package agent defines the in-process agent contract the task supervisor
// drives, plus the stock runner kinds.
package agent

import (
	"context"
	"fmt"
)

// ToolCall is one tool invocation an agent wants the supervisor to mediate.
type ToolCall struct {
	Name  string         `json:"name"`
	Input map[string]any `json:"input"`
}

// ToolResult is what the supervisor feeds back after executing (or refusing)
// a tool call.
type ToolResult struct {
	Output map[string]any `json:"output,omitempty"`
	Err    string         `json:"error,omitempty"`
}

// Step is the agent's next move. Exactly one of Tool or Final is set; a step
// may additionally carry a Thought.
type Step struct {
	Thought string    `json:"thought,omitempty"`
	Tool    *ToolCall `json:"tool,omitempty"`
	Final   string    `json:"final,omitempty"`
}

// Done reports whether the step ends the run.
func (s Step) Done() bool { return s.Tool == nil }

// Runner produces one task's steps. Next receives the result of the previous
// step's tool call (nil on the first call). Runners are single-use and not
// safe for concurrent use; the supervisor drives each run sequentially.
type Runner interface {
	Next(ctx context.Context, prev *ToolResult) (Step, error)
}

// Spec describes the task handed to a runner.
type Spec struct {
	TaskID  string
	AgentID string
	Prompt  string
}

// Kind names a built-in agent. Agent kinds are a closed set.
type Kind string

// Built-in agent kinds.
const (
	// KindEcho completes immediately, echoing the prompt. Used for wiring
	// checks and load tests.
	KindEcho Kind = "echo"
	// KindEditor is a minimal file-editing agent driven entirely by
	// structured directives in the prompt.
	KindEditor Kind = "editor"
)

// New constructs a runner for one task. Unknown kinds are an error so a
// mistyped agent id fails at submit time, not mid-run.
func New(kind Kind, spec Spec) (Runner, error) {
	switch kind {
	case KindEcho:
		return &echoRunner{spec: spec}, nil
	case KindEditor:
		return newEditorRunner(spec), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", kind)
	}
}

// Known reports whether kind names a built-in agent.
func Known(kind Kind) bool {
	switch kind {
	case KindEcho, KindEditor:
		return true
	}
	return false
}

// echoRunner finishes on the first step.
type echoRunner struct {
	spec Spec
}

func (r *echoRunner) Next(_ context.Context, _ *ToolResult) (Step, error) {
	return Step{Final: r.spec.Prompt}, nil
}
