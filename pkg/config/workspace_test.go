package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWorkspacePrecedence(t *testing.T) {
	t.Setenv("CODECODER_WORKSPACE", "/tmp/env-ws")
	assert.Equal(t, "/tmp/env-ws", ResolveWorkspace("/tmp/configured"))

	t.Setenv("CODECODER_WORKSPACE", "")
	assert.Equal(t, "/tmp/configured", ResolveWorkspace("/tmp/configured"))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".codecoder", "workspace"), ResolveWorkspace(""))
}

func TestEnsureLayout(t *testing.T) {
	ws := Workspace{Root: filepath.Join(t.TempDir(), "workspace")}
	require.NoError(t, ws.EnsureLayout())
	require.NoError(t, ws.EnsureLayout(), "idempotent")

	for _, dir := range []string{
		ws.Root,
		ws.HandsDir(),
		ws.StorageDir(),
		ws.SessionsDir(),
		ws.LogDir(),
		ws.ObservabilityLogDir(),
		ws.ToolOutputDir(),
		ws.KnowledgeDir(),
		ws.TrackingDir(),
		ws.CacheDir(),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir())
		assert.Equal(t, os.FileMode(0o700), info.Mode().Perm(), dir)
	}
}

func TestWorkspacePaths(t *testing.T) {
	ws := Workspace{Root: "/ws"}

	assert.Equal(t, "/ws/storage/sessions", ws.SessionsDir())
	assert.Equal(t, "/ws/log/observability", ws.ObservabilityLogDir())
	assert.Equal(t, "/ws/knowledge/codecoder.db", ws.DatabasePath())
	assert.Equal(t, "/ws/knowledge/credentials.vault", ws.VaultPath())
	assert.Equal(t, "/ws/knowledge/vault.key", ws.VaultKeyPath())
	assert.Equal(t, "/ws/tracking/remote_tools.json", ws.AllowlistPath())
	assert.Equal(t, "/ws/mcp-auth.json", ws.MCPAuthPath())
}
