package agent

import (
	"context"
	"fmt"
	"strings"
)

// editorRunner turns directive lines in the prompt into tool calls, one per
// step. Supported directives:
//
//	read <path>
//	write <path> <content>
//	run <command>
//
// Lines without a directive prefix are ignored. The final output summarizes
// each step's result.
type editorRunner struct {
	spec    Spec
	calls   []ToolCall
	next    int
	results []string
}

func newEditorRunner(spec Spec) *editorRunner {
	r := &editorRunner{spec: spec}
	for _, line := range strings.Split(spec.Prompt, "\n") {
		line = strings.TrimSpace(line)
		directive, rest, _ := strings.Cut(line, " ")
		switch directive {
		case "read":
			if rest != "" {
				r.calls = append(r.calls, ToolCall{Name: "Read", Input: map[string]any{"file_path": rest}})
			}
		case "write":
			path, content, _ := strings.Cut(rest, " ")
			if path != "" {
				r.calls = append(r.calls, ToolCall{Name: "Write", Input: map[string]any{
					"file_path": path,
					"content":   content,
				}})
			}
		case "run":
			if rest != "" {
				r.calls = append(r.calls, ToolCall{Name: "Bash", Input: map[string]any{"command": rest}})
			}
		}
	}
	return r
}

func (r *editorRunner) Next(_ context.Context, prev *ToolResult) (Step, error) {
	if prev != nil {
		if prev.Err != "" {
			r.results = append(r.results, "error: "+prev.Err)
		} else {
			r.results = append(r.results, "ok")
		}
	}

	if r.next >= len(r.calls) {
		if len(r.calls) == 0 {
			return Step{Final: "no directives found in prompt"}, nil
		}
		return Step{Final: fmt.Sprintf("%d steps: %s", len(r.calls), strings.Join(r.results, ", "))}, nil
	}

	call := r.calls[r.next]
	r.next++
	return Step{
		Thought: fmt.Sprintf("step %d/%d: %s", r.next, len(r.calls), call.Name),
		Tool:    &call,
	}, nil
}

// ScriptedRunner replays a fixed list of steps; tests and custom harnesses
// use it to drive the supervisor deterministically.
type ScriptedRunner struct {
	Steps   []Step
	Results []*ToolResult

	pos int
}

// Next replays the scripted steps and records every result it is fed.
func (r *ScriptedRunner) Next(_ context.Context, prev *ToolResult) (Step, error) {
	if prev != nil {
		r.Results = append(r.Results, prev)
	}
	if r.pos >= len(r.Steps) {
		return Step{Final: "done"}, nil
	}
	step := r.Steps[r.pos]
	r.pos++
	return step, nil
}
