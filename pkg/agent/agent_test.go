package agent

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEchoRunner(t *testing.T) {
	runner, err := New(KindEcho, Spec{TaskID: "tsk_1", Prompt: "hello"})
	require.NoError(t, err)

	step, err := runner.Next(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, step.Done())
	assert.Equal(t, "hello", step.Final)
}

func TestUnknownKind(t *testing.T) {
	_, err := New(Kind("oracle"), Spec{})
	assert.Error(t, err)
	assert.False(t, Known(Kind("oracle")))
	assert.True(t, Known(KindEditor))
}

func TestEditorRunnerDirectives(t *testing.T) {
	prompt := "write notes.txt hello world\nrun echo done\nnot a directive"
	runner, err := New(KindEditor, Spec{Prompt: prompt})
	require.NoError(t, err)
	ctx := context.Background()

	step, err := runner.Next(ctx, nil)
	require.NoError(t, err)
	require.NotNil(t, step.Tool)
	assert.Equal(t, "Write", step.Tool.Name)
	assert.Equal(t, "notes.txt", step.Tool.Input["file_path"])
	assert.Equal(t, "hello world", step.Tool.Input["content"])

	step, err = runner.Next(ctx, &ToolResult{Output: map[string]any{"bytes": 11}})
	require.NoError(t, err)
	require.NotNil(t, step.Tool)
	assert.Equal(t, "Bash", step.Tool.Name)

	step, err = runner.Next(ctx, &ToolResult{Err: "denied"})
	require.NoError(t, err)
	assert.True(t, step.Done())
	assert.Contains(t, step.Final, "ok")
	assert.Contains(t, step.Final, "error: denied")
}

func TestEditorRunnerNoDirectives(t *testing.T) {
	runner := newEditorRunner(Spec{Prompt: "just prose"})
	step, err := runner.Next(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, step.Done())
}

func TestScriptedRunner(t *testing.T) {
	runner := &ScriptedRunner{Steps: []Step{
		{Tool: &ToolCall{Name: "Read", Input: map[string]any{"file_path": "x"}}},
		{Final: "finished"},
	}}
	ctx := context.Background()

	step, err := runner.Next(ctx, nil)
	require.NoError(t, err)
	require.NotNil(t, step.Tool)

	step, err = runner.Next(ctx, &ToolResult{Err: "nope"})
	require.NoError(t, err)
	assert.Equal(t, "finished", step.Final)
	require.Len(t, runner.Results, 1)
	assert.Equal(t, "nope", runner.Results[0].Err)
}

func TestLocalExecutorFileTools(t *testing.T) {
	dir := t.TempDir()
	exec := &LocalExecutor{WorkDir: dir}
	ctx := context.Background()

	result := exec.Execute(ctx, ToolCall{Name: "Write", Input: map[string]any{
		"file_path": "a.txt", "content": "one two",
	}})
	require.Empty(t, result.Err)

	result = exec.Execute(ctx, ToolCall{Name: "Edit", Input: map[string]any{
		"file_path": "a.txt", "old_string": "two", "new_string": "three",
	}})
	require.Empty(t, result.Err)

	result = exec.Execute(ctx, ToolCall{Name: "Read", Input: map[string]any{"file_path": "a.txt"}})
	require.Empty(t, result.Err)
	assert.Equal(t, "one three", result.Output["content"])

	result = exec.Execute(ctx, ToolCall{Name: "LS", Input: map[string]any{}})
	require.Empty(t, result.Err)
	assert.Equal(t, []string{"a.txt"}, result.Output["entries"])

	result = exec.Execute(ctx, ToolCall{Name: "Glob", Input: map[string]any{"pattern": "*.txt"}})
	require.Empty(t, result.Err)
	assert.Len(t, result.Output["matches"], 1)
}

func TestLocalExecutorBash(t *testing.T) {
	exec := &LocalExecutor{WorkDir: t.TempDir()}
	ctx := context.Background()

	result := exec.Execute(ctx, ToolCall{Name: "Bash", Input: map[string]any{"command": "echo hi"}})
	require.Empty(t, result.Err)
	assert.Contains(t, result.Output["output"], "hi")

	result = exec.Execute(ctx, ToolCall{Name: "Bash", Input: map[string]any{"command": "exit 3"}})
	assert.NotEmpty(t, result.Err)
}

func TestLocalExecutorBashTimeout(t *testing.T) {
	exec := &LocalExecutor{WorkDir: t.TempDir()}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	result := exec.Execute(ctx, ToolCall{Name: "Bash", Input: map[string]any{"command": "sleep 5"}})
	assert.Equal(t, "tool_timeout", result.Err)
}

func TestLocalExecutorUnknownTool(t *testing.T) {
	exec := &LocalExecutor{}
	result := exec.Execute(context.Background(), ToolCall{Name: "Teleport"})
	assert.NotEmpty(t, result.Err)
}

func TestEditMissingOldString(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f.txt"), []byte("abc"), 0o644))

	exec := &LocalExecutor{WorkDir: dir}
	result := exec.Execute(context.Background(), ToolCall{Name: "Edit", Input: map[string]any{
		"file_path": "f.txt", "old_string": "zzz", "new_string": "y",
	}})
	assert.Equal(t, "old_string not found in file", result.Err)
}
