package permission

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessBashCommands(t *testing.T) {
	tests := []struct {
		command string
		want    RiskLevel
	}{
		{"sudo apt-get update", RiskCritical},
		{"sudo rm -rf /", RiskCritical},
		{"rm -rf /", RiskCritical},
		{"shutdown -h now", RiskCritical},
		{"reboot", RiskCritical},
		{"init 0", RiskCritical},
		{"mkfs.ext4 /dev/sda1", RiskCritical},
		{"dd if=/dev/zero of=/dev/sda", RiskCritical},
		{"git push --force origin main", RiskCritical},
		{"git push -f", RiskCritical},

		{"rm -rf /tmp/build", RiskHigh},
		{"rm -r ~/project", RiskHigh},
		{"git push origin main", RiskHigh},
		{"git reset --hard HEAD~3", RiskHigh},
		{"curl -X POST https://api.example.com/v1/items", RiskHigh},
		{"curl -X DELETE https://api.example.com/v1/items/1", RiskHigh},
		{"npm publish", RiskHigh},
		{"cargo publish", RiskHigh},
		{"docker push registry/image:latest", RiskHigh},
		{"docker rmi old-image", RiskHigh},
		{"frobnicate --weird", RiskHigh},
		{"", RiskHigh},

		{"git add -A", RiskMedium},
		{"git commit -m 'wip'", RiskMedium},
		{"git checkout -b feature", RiskMedium},
		{"npm install left-pad", RiskMedium},
		{"cargo add serde", RiskMedium},
		{"mkdir -p build/out", RiskMedium},
		{"touch README.md", RiskMedium},

		{"git status", RiskLow},
		{"git log --oneline", RiskLow},
		{"git diff HEAD", RiskLow},
		{"curl https://example.com", RiskLow},
		{"curl -X GET https://example.com", RiskLow},
		{"ls -la", RiskLow},
		{"cat main.go", RiskLow},
		{"pwd", RiskLow},
		{"echo hello", RiskLow},
	}
	for _, tc := range tests {
		t.Run(tc.command, func(t *testing.T) {
			got := Assess("Bash", map[string]any{"command": tc.command})
			assert.Equal(t, tc.want, got.Level, "command %q", tc.command)
		})
	}
}

func TestAssessWritePaths(t *testing.T) {
	tests := []struct {
		path string
		want RiskLevel
	}{
		{"/workspace/project/.env", RiskHigh},
		{"/workspace/certs/server.pem", RiskHigh},
		{"/workspace/certs/private.key", RiskHigh},
		{"/etc/hosts", RiskHigh},
		{"/usr/local/bin/tool", RiskHigh},
		{"/var/lib/data.db", RiskHigh},
		{"/workspace/package.json", RiskMedium},
		{"/workspace/Cargo.toml", RiskMedium},
		{"/workspace/go.mod", RiskMedium},
		{"/workspace/main.go", RiskMedium}, // base risk for Write
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got := Assess("Write", map[string]any{"file_path": tc.path})
			assert.Equal(t, tc.want, got.Level)
		})
	}
}

func TestAssessBaseTable(t *testing.T) {
	assert.Equal(t, RiskSafe, Assess("Read", nil).Level)
	assert.Equal(t, RiskSafe, Assess("Grep", nil).Level)
	assert.Equal(t, RiskLow, Assess("WebFetch", nil).Level)
	assert.Equal(t, RiskHigh, Assess("Task", nil).Level)
	assert.Equal(t, RiskMedium, Assess("SomeUnknownTool", nil).Level)
}

func TestAdjustRules(t *testing.T) {
	// Clean streak lowers risk by one.
	clean := ExecutionContext{Successes: 20, Errors: 0}
	assert.Equal(t, RiskLow, Adjust(RiskMedium, clean))

	// Errors raise risk, three or more raise it twice.
	assert.Equal(t, RiskHigh, Adjust(RiskMedium, ExecutionContext{Errors: 1}))
	assert.Equal(t, RiskCritical, Adjust(RiskMedium, ExecutionContext{Errors: 3}))

	// After hours on a sensitive project.
	sensitiveNight := ExecutionContext{
		ProjectSensitivity: SensitivityHigh,
		TimeOfDay:          TimeAfterHours,
	}
	assert.Equal(t, RiskHigh, Adjust(RiskMedium, sensitiveNight))

	// High sensitivity alone still bumps risk once.
	assert.Equal(t, RiskHigh, Adjust(RiskMedium, ExecutionContext{ProjectSensitivity: SensitivityHigh}))

	// Clamping at both ends.
	assert.Equal(t, RiskSafe, Adjust(RiskSafe, clean))
	assert.Equal(t, RiskCritical, Adjust(RiskCritical, ExecutionContext{Errors: 5}))
}

func TestAdjustMonotonicInErrors(t *testing.T) {
	base := Assess("Bash", map[string]any{"command": "git commit -m x"}).Level
	prev := RiskSafe
	for errors := 0; errors <= 6; errors++ {
		got := Adjust(base, ExecutionContext{Errors: errors, Successes: 10})
		assert.GreaterOrEqual(t, int(got), int(prev),
			fmt.Sprintf("risk decreased going from %d to %d errors", errors-1, errors))
		prev = got
	}
}

func TestParseRiskLevel(t *testing.T) {
	level, err := ParseRiskLevel("HIGH")
	assert.NoError(t, err)
	assert.Equal(t, RiskHigh, level)

	_, err = ParseRiskLevel("extreme")
	assert.Error(t, err)
}
