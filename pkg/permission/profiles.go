package permission

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Stock auto-approve profiles. These are the pre-built policies wired into
// the engine by the CLI and the supervisor defaults.

// readOnlyTools is the allow-list the safe-only profile restricts itself to.
var readOnlyTools = []string{"Glob", "Grep", "LS", "NotebookRead", "Read", "WebSearch"}

// SafeOnlyPolicy auto-approves read-only tools up to low risk and never
// waits out an unattended timeout.
func SafeOnlyPolicy() Policy {
	return Policy{
		AllowedTools: append([]string(nil), readOnlyTools...),
		Threshold:    RiskLow,
	}
}

// PermissivePolicy allows every tool, auto-approves up to medium risk, and
// approves unattended calls after a 30 second wait. High risk still needs a
// human; critical remains unapprovable.
func PermissivePolicy() Policy {
	return Policy{
		Threshold:         RiskMedium,
		UnattendedTimeout: 30 * time.Second,
	}
}

// Environment variables read by PolicyFromEnv.
const (
	envAutoApprove          = "CODECODER_AUTO_APPROVE"
	envAutoApproveThreshold = "CODECODER_AUTO_APPROVE_THRESHOLD"
	envAutoApproveTools     = "CODECODER_AUTO_APPROVE_TOOLS"
	envAutoApproveTimeout   = "CODECODER_AUTO_APPROVE_TIMEOUT"
)

// PolicyFromEnv builds a policy from CODECODER_AUTO_APPROVE* variables.
// When CODECODER_AUTO_APPROVE is unset or false it returns SafeOnlyPolicy.
// A "critical" threshold is clamped to high with a warning.
func PolicyFromEnv() Policy {
	enabled, _ := strconv.ParseBool(os.Getenv(envAutoApprove))
	if !enabled {
		return SafeOnlyPolicy()
	}

	policy := Policy{Threshold: RiskLow}

	if raw := os.Getenv(envAutoApproveThreshold); raw != "" {
		level, err := ParseRiskLevel(raw)
		if err != nil {
			slog.Warn("Invalid auto-approve threshold, using low",
				"value", raw, "error", err)
			level = RiskLow
		}
		if level > RiskHigh {
			slog.Warn("Critical auto-approve threshold is not allowed, clamping to high")
			level = RiskHigh
		}
		policy.Threshold = level
	}

	if raw := os.Getenv(envAutoApproveTools); raw != "" {
		for _, tool := range strings.Split(raw, ",") {
			if tool = strings.TrimSpace(tool); tool != "" {
				policy.AllowedTools = append(policy.AllowedTools, tool)
			}
		}
	}

	if raw := os.Getenv(envAutoApproveTimeout); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			slog.Warn("Invalid auto-approve timeout, ignoring", "value", raw)
		} else {
			policy.UnattendedTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	return policy
}
