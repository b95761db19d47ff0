package permission

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowlistPersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tool-allowlist.json")

	first, err := LoadAllowlist(path)
	require.NoError(t, err)
	require.NoError(t, first.Add("mcp__jira__create_ticket"))
	require.NoError(t, first.Add("CustomDeploy"))
	require.NoError(t, first.Remove("CustomDeploy"))

	second, err := LoadAllowlist(path)
	require.NoError(t, err)
	assert.True(t, second.Contains("mcp__jira__create_ticket"))
	assert.False(t, second.Contains("CustomDeploy"))
	assert.Equal(t, []string{"mcp__jira__create_ticket"}, second.Tools())
}

func TestLoadAllowlistRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tool-allowlist.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tools": "not-a-list"}`), 0o600))

	_, err := LoadAllowlist(path)
	assert.Error(t, err)
}

func TestRemoteGateClassification(t *testing.T) {
	allowlist, err := LoadAllowlist(filepath.Join(t.TempDir(), "al.json"))
	require.NoError(t, err)
	require.NoError(t, allowlist.Add("mcp__github__get_issue"))

	tests := []struct {
		tool string
		want remoteGateResult
	}{
		{"Read", remoteBypass},
		{"Grep", remoteBypass},
		{"WebSearch", remoteBypass},
		{"Bash", remoteHuman},
		{"Write", remoteHuman},
		{"mcp__github__get_issue", remotePass},
		{"mcp__github__create_issue", remoteHuman},
		{"SomethingNovel", remoteHuman},
	}
	for _, tc := range tests {
		got, _ := remoteGate(tc.tool, allowlist)
		assert.Equal(t, tc.want, got, "tool %s", tc.tool)
	}
}

func TestRemoteSafeToolsSorted(t *testing.T) {
	tools := RemoteSafeTools()
	assert.Contains(t, tools, "Read")
	assert.Contains(t, tools, "WebSearch")
	assert.IsIncreasing(t, tools)
}

func TestStockProfiles(t *testing.T) {
	safe := SafeOnlyPolicy()
	assert.Equal(t, RiskLow, safe.Threshold)
	assert.Zero(t, safe.UnattendedTimeout)
	assert.Contains(t, safe.AllowedTools, "Read")
	assert.Contains(t, safe.AllowedTools, "Grep")
	assert.NotContains(t, safe.AllowedTools, "Write")
	assert.NotContains(t, safe.AllowedTools, "Bash")

	permissive := PermissivePolicy()
	assert.Equal(t, RiskMedium, permissive.Threshold)
	assert.Empty(t, permissive.AllowedTools)
	assert.Equal(t, 30*time.Second, permissive.UnattendedTimeout)
}

func TestPolicyFromEnvDisabled(t *testing.T) {
	t.Setenv(envAutoApprove, "")
	policy := PolicyFromEnv()
	assert.Equal(t, SafeOnlyPolicy(), policy)
}

func TestPolicyFromEnvClampsCritical(t *testing.T) {
	t.Setenv(envAutoApprove, "true")
	t.Setenv(envAutoApproveThreshold, "critical")
	policy := PolicyFromEnv()
	assert.Equal(t, RiskHigh, policy.Threshold)
}

func TestPolicyFromEnvFull(t *testing.T) {
	t.Setenv(envAutoApprove, "1")
	t.Setenv(envAutoApproveThreshold, "medium")
	t.Setenv(envAutoApproveTools, "Read, Write ,Bash")
	t.Setenv(envAutoApproveTimeout, "1500")

	policy := PolicyFromEnv()
	assert.Equal(t, RiskMedium, policy.Threshold)
	assert.Equal(t, []string{"Read", "Write", "Bash"}, policy.AllowedTools)
	assert.Equal(t, 1500*time.Millisecond, policy.UnattendedTimeout)
}
