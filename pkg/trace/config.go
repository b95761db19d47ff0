package trace

import (
	"os"
	"strconv"
	"strings"
)

// Level is the minimum severity an entry needs to reach the sink.
type Level int

// Log levels, ordered.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a level name to a Level. Unknown names map to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Config controls tracer behaviour. Env vars override file config.
type Config struct {
	Enabled  bool    `json:"enabled"`
	Level    string  `json:"level"`
	Sampling float64 `json:"sampling"`
}

// DefaultConfig returns the tracer defaults: enabled, info, keep everything.
func DefaultConfig() Config {
	return Config{Enabled: true, Level: "info", Sampling: 1.0}
}

// ApplyEnv overlays CCODE_OBSERVABILITY_* env vars onto the config.
func (c Config) ApplyEnv() Config {
	if v := os.Getenv("CCODE_OBSERVABILITY_ENABLED"); v != "" {
		c.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("CCODE_OBSERVABILITY_LEVEL"); v != "" {
		c.Level = v
	}
	if v := os.Getenv("CCODE_OBSERVABILITY_TRACE_SAMPLING"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			c.Sampling = f
		}
	}
	return c
}
