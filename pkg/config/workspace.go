package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workspace is the resolved on-disk home of the runtime: agent definitions,
// session records, logs, the credential vault, and the knowledge database.
type Workspace struct {
	Root string
}

// ResolveWorkspace picks the workspace root: CODECODER_WORKSPACE wins, then
// the configured path, then ~/.codecoder/workspace.
func ResolveWorkspace(configured string) string {
	if v := os.Getenv("CODECODER_WORKSPACE"); v != "" {
		return v
	}
	if configured != "" {
		return configured
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory; fall back to the working directory.
		return ".codecoder/workspace"
	}
	return filepath.Join(home, ".codecoder", "workspace")
}

// EnsureLayout creates the workspace directory tree with 0700 permissions.
// It is idempotent and never loosens existing permissions.
func (w Workspace) EnsureLayout() error {
	for _, dir := range []string{
		w.Root,
		w.HandsDir(),
		w.StorageDir(),
		w.SessionsDir(),
		w.LogDir(),
		w.ObservabilityLogDir(),
		w.ToolOutputDir(),
		w.KnowledgeDir(),
		w.TrackingDir(),
		w.CacheDir(),
	} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create workspace directory %s: %w", dir, err)
		}
	}
	return nil
}

// HandsDir holds agent definitions and their output.
func (w Workspace) HandsDir() string { return filepath.Join(w.Root, "hands") }

// StorageDir holds session records, messages, and databases.
func (w Workspace) StorageDir() string { return filepath.Join(w.Root, "storage") }

// SessionsDir holds browser session blobs.
func (w Workspace) SessionsDir() string { return filepath.Join(w.StorageDir(), "sessions") }

// LogDir holds runtime logs.
func (w Workspace) LogDir() string { return filepath.Join(w.Root, "log") }

// ObservabilityLogDir holds trace files.
func (w Workspace) ObservabilityLogDir() string {
	return filepath.Join(w.LogDir(), "observability")
}

// ToolOutputDir holds captured tool stdout and stderr.
func (w Workspace) ToolOutputDir() string { return filepath.Join(w.Root, "tool-output") }

// KnowledgeDir holds the causal graph database and credential material.
func (w Workspace) KnowledgeDir() string { return filepath.Join(w.Root, "knowledge") }

// DatabasePath is the knowledge database file.
func (w Workspace) DatabasePath() string {
	return filepath.Join(w.KnowledgeDir(), "codecoder.db")
}

// VaultPath is the encrypted credential store file.
func (w Workspace) VaultPath() string {
	return filepath.Join(w.KnowledgeDir(), "credentials.vault")
}

// VaultKeyPath is the per-install vault secret file.
func (w Workspace) VaultKeyPath() string {
	return filepath.Join(w.KnowledgeDir(), "vault.key")
}

// TrackingDir holds task and permission audit files.
func (w Workspace) TrackingDir() string { return filepath.Join(w.Root, "tracking") }

// AllowlistPath is the persisted remote-tool allowlist.
func (w Workspace) AllowlistPath() string {
	return filepath.Join(w.TrackingDir(), "remote_tools.json")
}

// CacheDir holds disposable derived data.
func (w Workspace) CacheDir() string { return filepath.Join(w.Root, "cache") }

// MCPAuthPath is the MCP transport credential file, written with mode 0600.
func (w Workspace) MCPAuthPath() string { return filepath.Join(w.Root, "mcp-auth.json") }
