package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"dario.cat/mergo"
)

// Overlay files merged on top of config.json, in order. Later files win.
var overlayFiles = []string{
	"secrets.json",
	"channels.json",
	"providers.json",
	"trading.json",
}

// Load reads config.json plus overlays from dir, merges them onto the
// defaults, applies env overrides and validates. A missing directory or
// missing files yield the defaults; malformed JSON is an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	if err := mergeFile(cfg, filepath.Join(dir, "config.json")); err != nil {
		return nil, err
	}
	for _, name := range overlayFiles {
		if err := mergeFile(cfg, filepath.Join(dir, name)); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// mergeFile merges one JSON file into cfg. Missing files are skipped.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}

	var overlay Config
	if err := json.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	if err := mergo.Merge(cfg, overlay, mergo.WithOverride); err != nil {
		return fmt.Errorf("merging %s: %w", filepath.Base(path), err)
	}
	slog.Debug("Merged config file", "path", path)
	return nil
}

// applyEnvOverrides overlays specific env leaves onto the merged config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CODECODER_GATEWAY_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Gateway.Port = port
		} else {
			slog.Warn("Ignoring non-numeric CODECODER_GATEWAY_PORT", "value", v)
		}
	}
	if v := os.Getenv("CODECODER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("CODECODER_WORKSPACE"); v != "" {
		cfg.Workspace.Path = v
	}
}
