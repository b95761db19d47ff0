package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Gateway.Bind)
	assert.Equal(t, 8420, cfg.Gateway.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "low", cfg.AutoApprove.Threshold)
	assert.GreaterOrEqual(t, cfg.Supervisor.Workers, 1)
}

func TestLoadMergesOverlays(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.json", `{"gateway":{"port":9000},"log":{"level":"debug"}}`)
	writeConfig(t, dir, "secrets.json", `{"gateway":{"api_key":"sekrit"}}`)
	writeConfig(t, dir, "providers.json", `{"providers":{"main":{"kind":"anthropic","model":"opus"}}}`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Gateway.Port)
	assert.Equal(t, "sekrit", cfg.Gateway.APIKey)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "anthropic", cfg.Providers["main"].Kind)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.json", `{"gateway":{"port":9000}}`)

	t.Setenv("CODECODER_GATEWAY_PORT", "9999")
	t.Setenv("CODECODER_LOG_LEVEL", "error")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Gateway.Port)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.json", `{"auto_approve":{"threshold":"critical"}}`)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "critical")
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.json", `{not json`)

	_, err := Load(dir)
	require.Error(t, err)
}

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.json", `{"gateway":{"port":9000}}`)

	initial, err := Load(dir)
	require.NoError(t, err)

	w, err := NewWatcher(dir, initial)
	require.NoError(t, err)
	defer w.Stop()

	reloaded := make(chan *Config, 1)
	w.OnReload(func(newCfg, oldCfg *Config) {
		assert.Equal(t, 9000, oldCfg.Gateway.Port)
		reloaded <- newCfg
	})
	w.Start(t.Context())

	writeConfig(t, dir, "config.json", `{"gateway":{"port":9100}}`)

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 9100, cfg.Gateway.Port)
		assert.Equal(t, 9100, w.Current().Gateway.Port)
	case <-time.After(5 * time.Second):
		t.Fatal("reload not observed")
	}
}

func TestWatcherKeepsConfigOnInvalidReload(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.json", `{"gateway":{"port":9000}}`)

	initial, err := Load(dir)
	require.NoError(t, err)

	w, err := NewWatcher(dir, initial)
	require.NoError(t, err)
	defer w.Stop()

	failed := make(chan error, 1)
	w.OnError(func(err error) { failed <- err })
	w.Start(t.Context())

	writeConfig(t, dir, "config.json", `{broken`)

	select {
	case err := <-failed:
		require.Error(t, err)
		assert.Equal(t, 9000, w.Current().Gateway.Port, "previous config must stay live")
	case <-time.After(5 * time.Second):
		t.Fatal("error callback not observed")
	}
}
