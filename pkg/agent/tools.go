package agent

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Executor runs an approved tool call. Implementations must honor the
// context deadline; the supervisor enforces the per-tool timeout through it.
type Executor interface {
	Execute(ctx context.Context, call ToolCall) ToolResult
}

// maxToolOutput truncates captured tool output kept in memory.
const maxToolOutput = 64 * 1024

// LocalExecutor executes the built-in tool set against the local filesystem
// and shell.
type LocalExecutor struct {
	// WorkDir is the working directory for Bash and the base for relative
	// paths. Empty means the process working directory.
	WorkDir string
}

// Execute dispatches one tool call. Unknown tools fail rather than silently
// succeed.
func (e *LocalExecutor) Execute(ctx context.Context, call ToolCall) ToolResult {
	switch call.Name {
	case "Read":
		return e.read(call.Input)
	case "Write":
		return e.write(call.Input)
	case "Edit":
		return e.edit(call.Input)
	case "Bash":
		return e.bash(ctx, call.Input)
	case "LS":
		return e.ls(call.Input)
	case "Glob":
		return e.glob(call.Input)
	default:
		return ToolResult{Err: fmt.Sprintf("unsupported tool %q", call.Name)}
	}
}

func (e *LocalExecutor) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || e.WorkDir == "" {
		return path
	}
	return filepath.Join(e.WorkDir, path)
}

func stringInput(input map[string]any, key string) (string, error) {
	v, ok := input[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("missing %s", key)
	}
	return v, nil
}

func (e *LocalExecutor) read(input map[string]any) ToolResult {
	path, err := stringInput(input, "file_path")
	if err != nil {
		return ToolResult{Err: err.Error()}
	}
	data, err := os.ReadFile(e.resolve(path))
	if err != nil {
		return ToolResult{Err: err.Error()}
	}
	return ToolResult{Output: map[string]any{"content": truncate(string(data))}}
}

func (e *LocalExecutor) write(input map[string]any) ToolResult {
	path, err := stringInput(input, "file_path")
	if err != nil {
		return ToolResult{Err: err.Error()}
	}
	content, _ := input["content"].(string)

	full := e.resolve(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return ToolResult{Err: err.Error()}
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		return ToolResult{Err: err.Error()}
	}
	return ToolResult{Output: map[string]any{"bytes": len(content)}}
}

func (e *LocalExecutor) edit(input map[string]any) ToolResult {
	path, err := stringInput(input, "file_path")
	if err != nil {
		return ToolResult{Err: err.Error()}
	}
	oldStr, err := stringInput(input, "old_string")
	if err != nil {
		return ToolResult{Err: err.Error()}
	}
	newStr, _ := input["new_string"].(string)

	full := e.resolve(path)
	data, err := os.ReadFile(full)
	if err != nil {
		return ToolResult{Err: err.Error()}
	}
	content := string(data)
	if !strings.Contains(content, oldStr) {
		return ToolResult{Err: "old_string not found in file"}
	}
	if err := os.WriteFile(full, []byte(strings.Replace(content, oldStr, newStr, 1)), 0o644); err != nil {
		return ToolResult{Err: err.Error()}
	}
	return ToolResult{Output: map[string]any{"replaced": 1}}
}

func (e *LocalExecutor) bash(ctx context.Context, input map[string]any) ToolResult {
	command, err := stringInput(input, "command")
	if err != nil {
		return ToolResult{Err: err.Error()}
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = e.WorkDir
	out, err := cmd.CombinedOutput()

	result := ToolResult{Output: map[string]any{"output": truncate(string(out))}}
	switch {
	case ctx.Err() != nil:
		result.Err = "tool_timeout"
	case err != nil:
		result.Err = err.Error()
	}
	return result
}

func (e *LocalExecutor) ls(input map[string]any) ToolResult {
	path, _ := input["path"].(string)
	if path == "" {
		path = "."
	}
	entries, err := os.ReadDir(e.resolve(path))
	if err != nil {
		return ToolResult{Err: err.Error()}
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return ToolResult{Output: map[string]any{"entries": names}}
}

func (e *LocalExecutor) glob(input map[string]any) ToolResult {
	pattern, err := stringInput(input, "pattern")
	if err != nil {
		return ToolResult{Err: err.Error()}
	}
	matches, err := filepath.Glob(e.resolve(pattern))
	if err != nil {
		return ToolResult{Err: err.Error()}
	}
	return ToolResult{Output: map[string]any{"matches": matches}}
}

func truncate(s string) string {
	if len(s) > maxToolOutput {
		return s[:maxToolOutput] + "\n[truncated]"
	}
	return s
}
