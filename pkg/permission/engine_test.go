package permission

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecoder-dev/codecoder/pkg/ident"
)

func newTestEngine(t *testing.T, policy Policy) *Engine {
	t.Helper()
	allowlist, err := LoadAllowlist(filepath.Join(t.TempDir(), "tool-allowlist.json"))
	require.NoError(t, err)
	return NewEngine(policy, allowlist, ident.NewGenerator(ident.NewClock()))
}

func TestCriticalAlwaysRejected(t *testing.T) {
	// Even the permissive profile with unattended mode cannot approve
	// critical commands.
	engine := newTestEngine(t, PermissivePolicy())

	decision := engine.Evaluate(context.Background(), Request{
		Tool:    "Bash",
		Input:   map[string]any{"command": "sudo rm -rf /"},
		Context: TaskContext{Source: SourceLocal},
		Exec:    ExecutionContext{Unattended: true},
	})
	assert.Equal(t, VerdictRejected, decision.Verdict)
	assert.Equal(t, RiskCritical, decision.Risk)
	assert.NotEmpty(t, decision.PermissionID)
}

func TestSafeToolBypassesRemoteGate(t *testing.T) {
	// The safe set approves remote calls before the allow-list or threshold
	// are consulted.
	engine := newTestEngine(t, SafeOnlyPolicy())

	decision := engine.Evaluate(context.Background(), Request{
		Tool:    "Read",
		Input:   map[string]any{"file_path": "/workspace/main.go"},
		Context: TaskContext{Source: SourceRemote},
		Exec:    ExecutionContext{Errors: 2}, // adjusted above the threshold
	})
	assert.Equal(t, VerdictApproved, decision.Verdict)
	assert.Equal(t, ScopeOnce, decision.Scope)
	assert.Equal(t, DecidedByAuto, decision.DecidedBy)
}

func TestRemoteDangerousToolDefers(t *testing.T) {
	engine := newTestEngine(t, PermissivePolicy())

	decision := engine.Evaluate(context.Background(), Request{
		Tool:    "Write",
		Input:   map[string]any{"file_path": "/workspace/file.txt"},
		Context: TaskContext{Source: SourceRemote},
	})
	assert.Equal(t, VerdictDefer, decision.Verdict)
}

func TestRemoteMCPToolDefersUnlessAllowlisted(t *testing.T) {
	engine := newTestEngine(t, PermissivePolicy())

	req := Request{
		Tool:    "mcp__github__create_issue",
		Context: TaskContext{Source: SourceRemote},
	}
	assert.Equal(t, VerdictDefer, engine.Evaluate(context.Background(), req).Verdict)

	require.NoError(t, engine.Allowlist().Add("mcp__github__create_issue"))
	decision := engine.Evaluate(context.Background(), req)
	assert.Equal(t, VerdictApproved, decision.Verdict, "allowlisted tool falls through to auto-approve")
}

func TestAutoApproveUnderThreshold(t *testing.T) {
	engine := newTestEngine(t, Policy{Threshold: RiskLow})

	decision := engine.Evaluate(context.Background(), Request{
		Tool:    "Bash",
		Input:   map[string]any{"command": "git status"},
		Context: TaskContext{Source: SourceLocal},
	})
	assert.Equal(t, VerdictApproved, decision.Verdict)
	assert.Equal(t, ScopeOnce, decision.Scope)
	assert.Equal(t, DecidedByAuto, decision.DecidedBy)
}

func TestToolOutsidePolicyAllowlistDefers(t *testing.T) {
	engine := newTestEngine(t, Policy{Threshold: RiskHigh, AllowedTools: []string{"Read"}})

	decision := engine.Evaluate(context.Background(), Request{
		Tool:    "Write",
		Input:   map[string]any{"file_path": "/workspace/file.txt"},
		Context: TaskContext{Source: SourceLocal},
	})
	assert.Equal(t, VerdictDefer, decision.Verdict)
}

func TestUnattendedTimeoutApproval(t *testing.T) {
	engine := newTestEngine(t, Policy{Threshold: RiskSafe, UnattendedTimeout: 20 * time.Millisecond})

	start := time.Now()
	decision := engine.Evaluate(context.Background(), Request{
		Tool:    "Write",
		Input:   map[string]any{"file_path": "/workspace/file.txt"},
		Context: TaskContext{Source: SourceLocal},
		Exec:    ExecutionContext{Unattended: true},
	})
	assert.Equal(t, VerdictApproved, decision.Verdict)
	assert.Equal(t, DecidedByTimeout, decision.DecidedBy)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestUnattendedWaitCancellation(t *testing.T) {
	engine := newTestEngine(t, Policy{Threshold: RiskSafe, UnattendedTimeout: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	decision := engine.Evaluate(ctx, Request{
		Tool:    "Write",
		Input:   map[string]any{"file_path": "/workspace/file.txt"},
		Context: TaskContext{Source: SourceLocal},
		Exec:    ExecutionContext{Unattended: true},
	})
	assert.Equal(t, VerdictRejected, decision.Verdict)
}

func TestAboveThresholdAttendedRejects(t *testing.T) {
	engine := newTestEngine(t, Policy{Threshold: RiskSafe})

	decision := engine.Evaluate(context.Background(), Request{
		Tool:    "Bash",
		Input:   map[string]any{"command": "git push origin main"},
		Context: TaskContext{Source: SourceLocal},
	})
	assert.Equal(t, VerdictRejected, decision.Verdict)
}

func TestEvaluateWritesAudit(t *testing.T) {
	engine := newTestEngine(t, Policy{Threshold: RiskLow})

	engine.Evaluate(context.Background(), Request{
		Tool:    "Bash",
		Input:   map[string]any{"command": "ls"},
		Context: TaskContext{Source: SourceLocal},
	})
	engine.Evaluate(context.Background(), Request{
		Tool:    "Bash",
		Input:   map[string]any{"command": "sudo reboot"},
		Context: TaskContext{Source: SourceLocal},
	})

	entries := engine.AuditEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, AuditApproved, entries[0].Decision)
	assert.Equal(t, AuditRejected, entries[1].Decision)
	assert.NotEmpty(t, entries[0].PermissionID)
}

func TestRecordHumanDecision(t *testing.T) {
	engine := newTestEngine(t, SafeOnlyPolicy())

	engine.RecordHumanDecision("perm_abc", "Write", RiskMedium, true, "approved by operator")
	entries := engine.AuditEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, AuditApproved, entries[0].Decision)
	assert.Equal(t, "perm_abc", entries[0].PermissionID)
}

func TestAuditRingEvictsFIFO(t *testing.T) {
	var ring auditLog
	for i := 0; i < maxAuditEntries+5; i++ {
		ring.record(AuditEntry{PermissionID: ident.PrefixPermission, Tool: "Read", Reason: "r"})
	}
	entries := ring.snapshot()
	assert.Len(t, entries, maxAuditEntries)
}

func TestCriticalThresholdClamped(t *testing.T) {
	engine := newTestEngine(t, Policy{Threshold: RiskCritical})
	assert.Equal(t, RiskHigh, engine.policy.Threshold)
}
