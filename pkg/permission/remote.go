package permission

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// remoteSafeTools bypass approval entirely for remote-sourced tasks.
var remoteSafeTools = map[string]bool{
	"Read":         true,
	"Glob":         true,
	"Grep":         true,
	"LS":           true,
	"NotebookRead": true,
	"WebSearch":    true,
}

// remoteDangerousTools always need a human for remote-sourced tasks, even
// when auto-approve would otherwise fire.
var remoteDangerousTools = map[string]bool{
	"Bash":         true,
	"Write":        true,
	"Edit":         true,
	"NotebookEdit": true,
	"Task":         true,
}

// mcpToolPrefix marks tools exposed by external MCP servers.
const mcpToolPrefix = "mcp__"

// RemoteSafeTools returns the documented safe set, sorted.
func RemoteSafeTools() []string {
	out := make([]string, 0, len(remoteSafeTools))
	for tool := range remoteSafeTools {
		out = append(out, tool)
	}
	sort.Strings(out)
	return out
}

// Allowlist is the user-level remote tool allowlist. It persists to a JSON
// file and survives restarts.
type Allowlist struct {
	mu    sync.Mutex
	path  string
	tools map[string]bool
}

type allowlistFile struct {
	Tools []string `json:"tools"`
}

// LoadAllowlist reads the allowlist file, or starts empty when the file does
// not exist yet.
func LoadAllowlist(path string) (*Allowlist, error) {
	al := &Allowlist{path: path, tools: make(map[string]bool)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return al, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read tool allowlist: %w", err)
	}

	var file allowlistFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tool allowlist %s: %w", path, err)
	}
	for _, tool := range file.Tools {
		al.tools[tool] = true
	}
	return al, nil
}

// Contains reports whether a tool is user-allowlisted.
func (a *Allowlist) Contains(tool string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tools[tool]
}

// Add allowlists a tool and persists the change.
func (a *Allowlist) Add(tool string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.tools[tool] {
		return nil
	}
	a.tools[tool] = true
	return a.save()
}

// Remove drops a tool from the allowlist and persists the change.
func (a *Allowlist) Remove(tool string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.tools[tool] {
		return nil
	}
	delete(a.tools, tool)
	return a.save()
}

// Tools returns the allowlisted tools, sorted.
func (a *Allowlist) Tools() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.tools))
	for tool := range a.tools {
		out = append(out, tool)
	}
	sort.Strings(out)
	return out
}

// save writes the file under the held mutex, via temp file and rename.
func (a *Allowlist) save() error {
	tools := make([]string, 0, len(a.tools))
	for tool := range a.tools {
		tools = append(tools, tool)
	}
	sort.Strings(tools)

	data, err := json.MarshalIndent(allowlistFile{Tools: tools}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tool allowlist: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(a.path), 0o700); err != nil {
		return fmt.Errorf("failed to create allowlist directory: %w", err)
	}
	tmp := a.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write tool allowlist: %w", err)
	}
	if err := os.Rename(tmp, a.path); err != nil {
		return fmt.Errorf("failed to replace tool allowlist: %w", err)
	}
	return nil
}

// remoteGateResult is the remote gate's say on a tool call.
type remoteGateResult int

const (
	// remotePass defers to the normal decision procedure.
	remotePass remoteGateResult = iota
	// remoteBypass approves without consulting the threshold.
	remoteBypass
	// remoteHuman forces a human decision.
	remoteHuman
)

// remoteGate applies the remote-source policy: safe tools bypass approval,
// dangerous tools always need a human, MCP-prefixed and unknown tools need a
// human unless user-allowlisted.
func remoteGate(tool string, allowlist *Allowlist) (remoteGateResult, string) {
	switch {
	case remoteSafeTools[tool]:
		return remoteBypass, "safe tool on remote source"
	case allowlist != nil && allowlist.Contains(tool):
		return remotePass, "user-allowlisted remote tool"
	case remoteDangerousTools[tool]:
		return remoteHuman, "dangerous tool on remote source"
	case strings.HasPrefix(tool, mcpToolPrefix):
		return remoteHuman, "mcp tool not allowlisted for remote source"
	default:
		return remoteHuman, "unknown tool on remote source"
	}
}
