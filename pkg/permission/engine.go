package permission

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/codecoder-dev/codecoder/pkg/ident"
)

// TaskSource identifies where a task came from.
type TaskSource string

// Task sources.
const (
	SourceLocal     TaskSource = "local"
	SourceRemote    TaskSource = "remote"
	SourceScheduled TaskSource = "scheduled"
)

// TaskContext is the task-level context attached to a permission request.
type TaskContext struct {
	Source    TaskSource `json:"source"`
	UserID    string     `json:"user_id,omitempty"`
	SessionID string     `json:"session_id,omitempty"`
}

// Request is one tool call awaiting a permission decision.
type Request struct {
	Tool    string           `json:"tool"`
	Input   map[string]any   `json:"input"`
	Pattern string           `json:"pattern,omitempty"`
	Context TaskContext      `json:"context"`
	Exec    ExecutionContext `json:"exec"`
}

// Verdict of a permission evaluation.
type Verdict string

// Verdicts.
const (
	VerdictApproved Verdict = "approved"
	VerdictRejected Verdict = "rejected"
	// VerdictDefer parks the task until a human decides.
	VerdictDefer Verdict = "defer"
)

// Scope of an approval.
type Scope string

// Approval scopes.
const (
	ScopeOnce   Scope = "once"
	ScopeAlways Scope = "always"
)

// DecidedBy tags who made the decision.
type DecidedBy string

// Deciders.
const (
	DecidedByAuto    DecidedBy = "auto"
	DecidedByTimeout DecidedBy = "timeout"
	DecidedByHuman   DecidedBy = "human"
)

// Decision is the engine's answer for one request.
type Decision struct {
	PermissionID string    `json:"permission_id"`
	Verdict      Verdict   `json:"verdict"`
	Scope        Scope     `json:"scope,omitempty"`
	Risk         RiskLevel `json:"risk"`
	Reason       string    `json:"reason"`
	DecidedBy    DecidedBy `json:"decided_by,omitempty"`
}

// Policy configures the auto-approve behavior. An empty AllowedTools list
// accepts all tools.
type Policy struct {
	AllowedTools      []string
	Threshold         RiskLevel
	UnattendedTimeout time.Duration
}

// Engine evaluates tool calls. Safe for concurrent use.
type Engine struct {
	policy    Policy
	allowlist *Allowlist
	gen       *ident.Generator
	audit     auditLog
	logger    *slog.Logger
}

// NewEngine builds an engine from a policy and an optional persisted remote
// allowlist.
func NewEngine(policy Policy, allowlist *Allowlist, gen *ident.Generator) *Engine {
	if policy.Threshold > RiskHigh {
		// Critical is never auto-approvable, so a critical threshold is a
		// misconfiguration; clamp to high.
		policy.Threshold = RiskHigh
	}
	return &Engine{
		policy:    policy,
		allowlist: allowlist,
		gen:       gen,
		logger:    slog.Default().With("component", "permission"),
	}
}

// Allowlist returns the engine's remote allowlist, which may be nil.
func (e *Engine) Allowlist() *Allowlist { return e.allowlist }

// AuditEntries returns a snapshot of the decision audit ring, oldest first.
func (e *Engine) AuditEntries() []AuditEntry { return e.audit.snapshot() }

// Evaluate decides one tool call. It never panics: internal assessment
// failures degrade to a human deferral with reason "assessment_failed".
// The context cancels the unattended-approval sleep.
func (e *Engine) Evaluate(ctx context.Context, req Request) (decision Decision) {
	permID := e.gen.New(ident.PrefixPermission)

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Permission assessment panicked, deferring to human",
				"tool", req.Tool, "panic", r)
			decision = Decision{
				PermissionID: permID,
				Verdict:      VerdictDefer,
				Risk:         RiskHigh,
				Reason:       "assessment_failed",
			}
		}
	}()

	assessment := Assess(req.Tool, req.Input)
	risk := Adjust(assessment.Level, req.Exec)

	decision = Decision{PermissionID: permID, Risk: risk}

	if risk == RiskCritical {
		decision.Verdict = VerdictRejected
		decision.DecidedBy = DecidedByAuto
		decision.Reason = "critical risk is never auto-approved"
		e.record(decision, req, AuditRejected)
		return decision
	}

	if req.Context.Source == SourceRemote {
		switch result, reason := remoteGate(req.Tool, e.allowlist); result {
		case remoteBypass:
			decision.Verdict = VerdictApproved
			decision.Scope = ScopeOnce
			decision.DecidedBy = DecidedByAuto
			decision.Reason = reason
			e.record(decision, req, AuditApproved)
			return decision
		case remoteHuman:
			decision.Verdict = VerdictDefer
			decision.Reason = reason
			return decision
		case remotePass:
			// Fall through to the normal procedure.
		}
	}

	if len(e.policy.AllowedTools) > 0 && !slices.Contains(e.policy.AllowedTools, req.Tool) {
		decision.Verdict = VerdictDefer
		decision.Reason = "tool not in auto-approve allowlist"
		return decision
	}

	if risk <= e.policy.Threshold {
		decision.Verdict = VerdictApproved
		decision.Scope = ScopeOnce
		decision.DecidedBy = DecidedByAuto
		decision.Reason = assessment.Reason
		e.record(decision, req, AuditApproved)
		return decision
	}

	if req.Exec.Unattended && e.policy.UnattendedTimeout > 0 {
		timer := time.NewTimer(e.policy.UnattendedTimeout)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			decision.Verdict = VerdictRejected
			decision.DecidedBy = DecidedByAuto
			decision.Reason = "cancelled during unattended approval wait"
			e.record(decision, req, AuditRejected)
			return decision
		case <-timer.C:
			decision.Verdict = VerdictApproved
			decision.Scope = ScopeOnce
			decision.DecidedBy = DecidedByTimeout
			decision.Reason = "unattended timeout approval"
			e.record(decision, req, AuditTimeoutApproved)
			return decision
		}
	}

	decision.Verdict = VerdictRejected
	decision.DecidedBy = DecidedByAuto
	decision.Reason = "risk above auto-approve threshold"
	e.record(decision, req, AuditRejected)
	return decision
}

// RecordHumanDecision audits the resolution of a deferred request. The task
// supervisor calls this when interact() settles a pending permission.
func (e *Engine) RecordHumanDecision(permissionID, tool string, risk RiskLevel, approved bool, reason string) {
	tag := AuditRejected
	if approved {
		tag = AuditApproved
	}
	e.audit.record(AuditEntry{
		Timestamp:    time.Now(),
		PermissionID: permissionID,
		Tool:         tool,
		Risk:         risk,
		Decision:     tag,
		Reason:       reason,
	})
}

func (e *Engine) record(d Decision, req Request, tag string) {
	e.audit.record(AuditEntry{
		Timestamp:    time.Now(),
		PermissionID: d.PermissionID,
		Tool:         req.Tool,
		Pattern:      req.Pattern,
		Risk:         d.Risk,
		Decision:     tag,
		Reason:       d.Reason,
	})
	e.logger.Debug("Permission decision",
		"permission_id", d.PermissionID,
		"tool", req.Tool,
		"risk", d.Risk.String(),
		"decision", tag,
		"reason", d.Reason)
}
