// Package permission evaluates tool calls against a layered policy: static
// risk assessment, adaptive context adjustment, allow-lists and thresholds,
// and the remote-source gate.
package permission

import (
	"fmt"
	"regexp"
	"strings"
)

// RiskLevel is totally ordered: safe < low < medium < high < critical.
type RiskLevel int

// Risk levels.
const (
	RiskSafe RiskLevel = iota
	RiskLow
	RiskMedium
	RiskHigh
	RiskCritical
)

var riskNames = [...]string{"safe", "low", "medium", "high", "critical"}

// String returns the level name.
func (r RiskLevel) String() string {
	if r < RiskSafe || r > RiskCritical {
		return fmt.Sprintf("risk(%d)", int(r))
	}
	return riskNames[r]
}

// ParseRiskLevel maps a name to its level.
func ParseRiskLevel(s string) (RiskLevel, error) {
	for i, name := range riskNames {
		if name == strings.ToLower(strings.TrimSpace(s)) {
			return RiskLevel(i), nil
		}
	}
	return RiskMedium, fmt.Errorf("unknown risk level %q", s)
}

// clamp keeps a level within the safe..critical range.
func (r RiskLevel) clamp() RiskLevel {
	if r < RiskSafe {
		return RiskSafe
	}
	if r > RiskCritical {
		return RiskCritical
	}
	return r
}

// baseRisk is the static per-tool risk table. Unknown tools default to
// medium.
var baseRisk = map[string]RiskLevel{
	"Read":         RiskSafe,
	"Glob":         RiskSafe,
	"Grep":         RiskSafe,
	"LS":           RiskSafe,
	"NotebookRead": RiskSafe,
	"WebFetch":     RiskLow,
	"WebSearch":    RiskLow,
	"Write":        RiskMedium,
	"Edit":         RiskMedium,
	"NotebookEdit": RiskMedium,
	"Bash":         RiskHigh,
	"Task":         RiskHigh,
}

// bashRule is one command-severity rule. Rules are scanned in severity
// order; the highest matching severity wins.
type bashRule struct {
	level RiskLevel
	re    *regexp.Regexp
}

// bashRules, ordered critical → low. Bash commands matching nothing default
// to high.
var bashRules = []bashRule{
	// critical
	{RiskCritical, regexp.MustCompile(`(?i)\bsudo\b`)},
	{RiskCritical, regexp.MustCompile(`(?i)\brm\s+(?:-[a-z]*\s+)*-[a-z]*r[a-z]*\s+/\s*(?:$|[;&|])|\brm\s+-[a-z]*r[a-z]*\s+/$`)},
	{RiskCritical, regexp.MustCompile(`(?i)\b(?:shutdown|reboot|halt|poweroff)\b|\binit\s+[06]\b`)},
	{RiskCritical, regexp.MustCompile(`(?i)\b(?:mkfs|fdisk)\b|\bdd\b[^|;&]*\bof=/dev/`)},
	{RiskCritical, regexp.MustCompile(`(?i)\bch(?:mod|own)\b[^|;&]*\s-[a-z]*R[a-z]*\s[^|;&]*\s/\s*(?:$|[;&|])`)},
	{RiskCritical, regexp.MustCompile(`(?i)\bgit\s+push\b[^|;&]*(?:--force\b|\s-f\b)`)},

	// high
	{RiskHigh, regexp.MustCompile(`(?i)\brm\s+(?:-[a-z]*\s+)*-[a-z]*r[a-z]*\s+(?:~/?|/\w+)`)},
	{RiskHigh, regexp.MustCompile(`(?i)\bgit\s+push\b`)},
	{RiskHigh, regexp.MustCompile(`(?i)\bgit\s+reset\s+--hard\b`)},
	{RiskHigh, regexp.MustCompile(`(?i)\bcurl\b[^|;&]*-X\s*(?:POST|PUT|DELETE|PATCH)\b`)},
	{RiskHigh, regexp.MustCompile(`(?i)\b(?:npm|cargo)\s+publish\b`)},
	{RiskHigh, regexp.MustCompile(`(?i)\bdocker\s+(?:push|rmi|rm)\b`)},

	// medium
	{RiskMedium, regexp.MustCompile(`(?i)\bgit\s+(?:add|commit|checkout|branch|switch|merge|rebase)\b`)},
	{RiskMedium, regexp.MustCompile(`(?i)\bnpm\s+(?:install|uninstall|i|add|remove)\b|\bcargo\s+(?:add|remove)\b`)},
	{RiskMedium, regexp.MustCompile(`(?i)\b(?:mkdir|touch)\b`)},

	// low
	{RiskLow, regexp.MustCompile(`(?i)\bgit\s+(?:status|log|diff|show|blame|remote(?:\s+-v)?)\b`)},
	{RiskLow, regexp.MustCompile(`(?i)\bcurl\b`)},
	{RiskLow, regexp.MustCompile(`(?i)^\s*(?:ls|cat|head|tail|pwd|which|whoami|echo|wc|date|env)\b`)},
}

// secret-ish file extensions and privileged path prefixes for Write/Edit.
var (
	secretFileRe   = regexp.MustCompile(`(?i)\.(?:env|pem|key|crt|p12)$`)
	systemPathRe   = regexp.MustCompile(`^/(?:etc|usr|var)(?:/|$)`)
	manifestFileRe = regexp.MustCompile(`(?i)(?:^|/)(?:package\.json|cargo\.toml|go\.mod)$`)
)

// Assessment is the result of the pure risk-assessment step.
type Assessment struct {
	Tool   string    `json:"tool"`
	Level  RiskLevel `json:"level"`
	Reason string    `json:"reason"`
}

// Assess computes the static risk of one tool call. Pure function; input is
// the tool's structured argument map.
func Assess(tool string, input map[string]any) Assessment {
	level, known := baseRisk[tool]
	if !known {
		level = RiskMedium
	}
	reason := "base risk for " + tool

	switch tool {
	case "Bash":
		command, _ := input["command"].(string)
		level, reason = assessBash(command)
	case "Write", "Edit", "NotebookEdit":
		if path, ok := input["file_path"].(string); ok {
			if pathLevel, pathReason, matched := assessPath(path); matched && pathLevel > level {
				level, reason = pathLevel, pathReason
			}
		}
	}
	return Assessment{Tool: tool, Level: level, Reason: reason}
}

func assessBash(command string) (RiskLevel, string) {
	if strings.TrimSpace(command) == "" {
		return RiskHigh, "empty bash command"
	}
	for _, rule := range bashRules {
		if rule.re.MatchString(command) {
			return rule.level, fmt.Sprintf("bash command matched %s rule", rule.level)
		}
	}
	return RiskHigh, "bash command matched no rule"
}

func assessPath(path string) (RiskLevel, string, bool) {
	switch {
	case secretFileRe.MatchString(path):
		return RiskHigh, "write to secret-bearing file", true
	case systemPathRe.MatchString(path):
		return RiskHigh, "write under system path", true
	case manifestFileRe.MatchString(path):
		return RiskMedium, "write to dependency manifest", true
	}
	return RiskSafe, "", false
}
