package scanner

import (
	"log/slog"
	"regexp"
)

// Severity of one injection pattern.
type Severity string

// Severities and their confidence weights.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityWeights = map[Severity]float64{
	SeverityLow:      0.1,
	SeverityMedium:   0.3,
	SeverityHigh:     0.6,
	SeverityCritical: 1.0,
}

// Pattern families.
const (
	FamilyJailbreak           = "jailbreak"
	FamilyRoleOverride        = "role_override"
	FamilyInstructionLeak     = "instruction_leak"
	FamilyDelimiterAttack     = "delimiter_attack"
	FamilyEncodingBypass      = "encoding_bypass"
	FamilyContextManipulation = "context_manipulation"
)

// patternDef is one detection rule before compilation.
type patternDef struct {
	family   string
	name     string
	pattern  string
	severity Severity
}

// compiledPattern is a detection rule ready to match.
type compiledPattern struct {
	Family   string
	Name     string
	Regex    *regexp.Regexp
	Severity Severity
}

// builtinPatterns is the stock rule set covering the six families.
var builtinPatterns = []patternDef{
	// jailbreak
	{FamilyJailbreak, "dan_mode", `(?i)\b(?:DAN|do anything now)\b.{0,40}\bmode\b|\bjailbreak\b`, SeverityHigh},
	{FamilyJailbreak, "no_restrictions", `(?i)\byou (?:have|are under) no (?:restrictions|rules|limitations)\b`, SeverityHigh},
	{FamilyJailbreak, "developer_mode", `(?i)\bdeveloper mode\b.{0,30}\b(?:enabled|activated)\b`, SeverityMedium},
	{FamilyJailbreak, "hypothetical_evil", `(?i)\bpretend (?:you are|to be) (?:an? )?(?:evil|unrestricted|uncensored)\b`, SeverityHigh},

	// role_override
	{FamilyRoleOverride, "ignore_previous", `(?i)\bignore (?:all )?(?:previous|prior|above|earlier) (?:instructions?|prompts?|messages?|rules?)\b`, SeverityHigh},
	{FamilyRoleOverride, "disregard_prior", `(?i)\bdisregard (?:all )?(?:prior|previous|above|earlier)\b`, SeverityHigh},
	{FamilyRoleOverride, "forget_everything", `(?i)\bforget everything\b`, SeverityHigh},
	{FamilyRoleOverride, "new_persona", `(?i)\byou are now\b.{0,60}\b(?:not|no longer)\b.{0,30}\bassistant\b`, SeverityMedium},
	{FamilyRoleOverride, "act_as_system", `(?i)\bact as (?:the )?(?:system|root|administrator)\b`, SeverityMedium},

	// instruction_leak
	{FamilyInstructionLeak, "dump_system_prompt", `(?i)\b(?:dump|reveal|show|print|repeat|output)\b.{0,40}\bsystem prompt\b`, SeverityHigh},
	{FamilyInstructionLeak, "show_instructions", `(?i)\bwhat (?:are|were) your (?:initial |original )?instructions\b`, SeverityMedium},
	{FamilyInstructionLeak, "verbatim_prompt", `(?i)\brepeat\b.{0,30}\b(?:verbatim|word for word)\b.{0,40}\b(?:prompt|instructions)\b`, SeverityHigh},

	// delimiter_attack
	{FamilyDelimiterAttack, "system_close_tag", `(?i)</?(?:system|assistant)>`, SeverityCritical},
	{FamilyDelimiterAttack, "inst_marker", `(?i)\[/?INST\]`, SeverityCritical},
	{FamilyDelimiterAttack, "admin_block", `(?i)\[\[.{0,40}ADMIN.{0,40}\]\]`, SeverityHigh},
	{FamilyDelimiterAttack, "role_marker", `(?im)^\s*(?:system|assistant)\s*:`, SeverityMedium},

	// encoding_bypass
	{FamilyEncodingBypass, "base64_blob", `\b(?:[A-Za-z0-9+/]{4}){16,}(?:==|=)?\b`, SeverityLow},
	{FamilyEncodingBypass, "decode_request", `(?i)\b(?:decode|execute|run)\b.{0,20}\b(?:base64|rot13|hex)\b`, SeverityMedium},
	{FamilyEncodingBypass, "unicode_escape_run", `(?:\\u[0-9a-fA-F]{4}){8,}`, SeverityLow},

	// context_manipulation
	{FamilyContextManipulation, "fake_conversation", `(?i)\bthe (?:user|assistant) (?:said|replied|responded)\s*:\s*"`, SeverityLow},
	{FamilyContextManipulation, "authority_claim", `(?i)\b(?:i am|this is) (?:your|the) (?:developer|creator|administrator|owner)\b`, SeverityMedium},
	{FamilyContextManipulation, "urgency_override", `(?i)\b(?:emergency|urgent) override\b`, SeverityMedium},
}

// compilePatterns compiles the builtin set. Invalid patterns are logged and
// skipped.
func compilePatterns() []compiledPattern {
	out := make([]compiledPattern, 0, len(builtinPatterns))
	for _, def := range builtinPatterns {
		re, err := regexp.Compile(def.pattern)
		if err != nil {
			slog.Error("Failed to compile injection pattern, skipping",
				"family", def.family, "name", def.name, "error", err)
			continue
		}
		out = append(out, compiledPattern{
			Family:   def.family,
			Name:     def.name,
			Regex:    re,
			Severity: def.severity,
		})
	}
	return out
}
