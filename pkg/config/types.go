package config

import (
	"fmt"
	"runtime"
)

// Config is the merged, typed configuration: config.json plus overlays
// (secrets.json, channels.json, providers.json, trading.json), env overrides
// applied last.
type Config struct {
	Workspace     WorkspaceConfig           `json:"workspace"`
	Gateway       GatewayConfig             `json:"gateway"`
	Log           LogConfig                 `json:"log"`
	Observability ObservabilityConfig       `json:"observability"`
	Supervisor    SupervisorConfig          `json:"supervisor"`
	AutoApprove   AutoApproveConfig         `json:"auto_approve"`
	MCP           MCPConfig                 `json:"mcp"`
	Channels      map[string]ChannelConfig  `json:"channels"`
	Providers     map[string]ProviderConfig `json:"providers"`
	Trading       TradingConfig             `json:"trading"`
}

// WorkspaceConfig selects the workspace root (env var still wins).
type WorkspaceConfig struct {
	Path string `json:"path"`
}

// GatewayConfig controls the local HTTP RPC surface.
type GatewayConfig struct {
	Bind   string `json:"bind"`
	Port   int    `json:"port"`
	APIKey string `json:"api_key"`
}

// LogConfig controls process-level slog output.
type LogConfig struct {
	Level string `json:"level"`
}

// ObservabilityConfig mirrors trace.Config at the file level. Enabled is a
// pointer so an absent key keeps the default instead of forcing false.
type ObservabilityConfig struct {
	Enabled  *bool   `json:"enabled"`
	Level    string  `json:"level"`
	Sampling float64 `json:"sampling"`
}

// SupervisorConfig tunes the task worker pool.
type SupervisorConfig struct {
	Workers         int `json:"workers"`
	ToolTimeoutMS   int `json:"tool_timeout_ms"`
	SubscriberDepth int `json:"subscriber_depth"`
}

// AutoApproveConfig is the file-level counterpart of the permission engine's
// auto-approve policy.
type AutoApproveConfig struct {
	Enabled   bool     `json:"enabled"`
	Threshold string   `json:"threshold"`
	Tools     []string `json:"tools"`
	TimeoutMS int      `json:"timeout_ms"`
}

// MCPConfig controls the MCP surface.
type MCPConfig struct {
	EnabledTools []string `json:"enabled_tools"`
}

// ChannelConfig describes one external channel adapter (normalized contract;
// adapters themselves live outside this repo).
type ChannelConfig struct {
	Kind     string `json:"kind"`
	Enabled  bool   `json:"enabled"`
	TokenEnv string `json:"token_env"`
	Target   string `json:"target"`
}

// ProviderConfig describes one LLM provider endpoint.
type ProviderConfig struct {
	Kind      string `json:"kind"`
	Model     string `json:"model"`
	BaseURL   string `json:"base_url"`
	APIKeyEnv string `json:"api_key_env"`
}

// TradingConfig is the trading.json overlay.
type TradingConfig struct {
	Enabled  bool     `json:"enabled"`
	Exchange string   `json:"exchange"`
	Pairs    []string `json:"pairs"`
}

// Default returns the baseline configuration before file and env overlays.
func Default() *Config {
	return &Config{
		Gateway: GatewayConfig{
			Bind: "127.0.0.1",
			Port: 8420,
		},
		Log: LogConfig{Level: "info"},
		Observability: ObservabilityConfig{
			Level:    "info",
			Sampling: 1.0,
		},
		Supervisor: SupervisorConfig{
			Workers:         runtime.NumCPU(),
			ToolTimeoutMS:   60_000,
			SubscriberDepth: 256,
		},
		AutoApprove: AutoApproveConfig{
			Threshold: "low",
		},
	}
}

// Validate checks cross-field constraints; an invalid config is rejected at
// load and on hot reload.
func (c *Config) Validate() error {
	if c.Gateway.Port < 0 || c.Gateway.Port > 65535 {
		return fmt.Errorf("gateway.port %d out of range", c.Gateway.Port)
	}
	if c.Supervisor.Workers < 1 {
		return fmt.Errorf("supervisor.workers must be >= 1, got %d", c.Supervisor.Workers)
	}
	if c.Observability.Sampling < 0 || c.Observability.Sampling > 1 {
		return fmt.Errorf("observability.sampling %v out of [0,1]", c.Observability.Sampling)
	}
	switch c.AutoApprove.Threshold {
	case "", "safe", "low", "medium", "high":
	case "critical":
		return fmt.Errorf("auto_approve.threshold critical is not allowed")
	default:
		return fmt.Errorf("unknown auto_approve.threshold %q", c.AutoApprove.Threshold)
	}
	return nil
}
