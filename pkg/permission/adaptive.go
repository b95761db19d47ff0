package permission

// Sensitivity of the project being operated on.
type Sensitivity string

// Sensitivity values.
const (
	SensitivityLow    Sensitivity = "low"
	SensitivityMedium Sensitivity = "medium"
	SensitivityHigh   Sensitivity = "high"
)

// TimeOfDay buckets for adaptive adjustment.
type TimeOfDay string

// Time-of-day values.
const (
	TimeBusiness   TimeOfDay = "business"
	TimeAfterHours TimeOfDay = "after_hours"
)

// ExecutionContext carries per-session signals that modulate assessed risk.
type ExecutionContext struct {
	SessionID          string      `json:"session_id"`
	Iteration          int         `json:"iteration"`
	Errors             int         `json:"errors"`
	Successes          int         `json:"successes"`
	ProjectSensitivity Sensitivity `json:"project_sensitivity"`
	TimeOfDay          TimeOfDay   `json:"time_of_day"`
	Unattended         bool        `json:"unattended"`
}

// successRate is successes over total attempts; zero attempts rate zero.
func (e ExecutionContext) successRate() float64 {
	total := e.Successes + e.Errors
	if total == 0 {
		return 0
	}
	return float64(e.Successes) / float64(total)
}

// Adjust applies the adaptive rules to a base risk level and clamps the
// result to safe..critical. The adjustment is monotonically non-decreasing
// in the error count.
func Adjust(base RiskLevel, ec ExecutionContext) RiskLevel {
	delta := 0
	if ec.successRate() >= 0.95 && ec.Errors == 0 {
		delta--
	}
	if ec.Errors >= 1 {
		delta++
	}
	if ec.Errors >= 3 {
		delta++
	}
	if ec.TimeOfDay == TimeAfterHours && ec.ProjectSensitivity == SensitivityHigh {
		delta++
	}
	// High sensitivity alone raises risk when nothing else moved it.
	if delta == 0 && ec.ProjectSensitivity == SensitivityHigh {
		delta++
	}
	return (base + RiskLevel(delta)).clamp()
}
