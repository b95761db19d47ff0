package causal

import (
	"sort"
	"strings"
	"time"
)

// Pattern analytics are pure functions over chains returned by Query. They
// never touch the database themselves.

// Pattern is one (agent, action type) grouping with its outcome profile.
type Pattern struct {
	AgentID       string  `json:"agent_id"`
	ActionType    string  `json:"action_type"`
	Occurrences   int     `json:"occurrences"`
	SuccessRate   float64 `json:"success_rate"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// FindPatterns groups actions by (agent_id, action_type) and reports the
// groups with at least minOccurrences actions, most frequent first.
func FindPatterns(chains []*Chain, minOccurrences, limit int) []Pattern {
	type bucket struct {
		actions       int
		successes     int
		confidenceSum float64
	}
	type key struct{ agent, actionType string }

	buckets := make(map[key]*bucket)
	for _, chain := range chains {
		for _, action := range chain.Actions {
			k := key{chain.Decision.AgentID, string(action.ActionType)}
			b := buckets[k]
			if b == nil {
				b = &bucket{}
				buckets[k] = b
			}
			b.actions++
			b.confidenceSum += chain.Decision.Confidence
			for _, outcome := range chain.Outcomes[action.ID] {
				if string(outcome.Status) == string(OutcomeSuccess) {
					b.successes++
					break
				}
			}
		}
	}

	patterns := make([]Pattern, 0, len(buckets))
	for k, b := range buckets {
		if b.actions < minOccurrences {
			continue
		}
		patterns = append(patterns, Pattern{
			AgentID:       k.agent,
			ActionType:    k.actionType,
			Occurrences:   b.actions,
			SuccessRate:   float64(b.successes) / float64(b.actions),
			AvgConfidence: b.confidenceSum / float64(b.actions),
		})
	}

	sort.Slice(patterns, func(i, j int) bool {
		if patterns[i].Occurrences != patterns[j].Occurrences {
			return patterns[i].Occurrences > patterns[j].Occurrences
		}
		if patterns[i].AgentID != patterns[j].AgentID {
			return patterns[i].AgentID < patterns[j].AgentID
		}
		return patterns[i].ActionType < patterns[j].ActionType
	})
	if limit > 0 && len(patterns) > limit {
		patterns = patterns[:limit]
	}
	return patterns
}

// similarityThreshold is the minimum Jaccard score for SimilarDecisions.
const similarityThreshold = 0.2

// SimilarDecision pairs a past decision with its prompt similarity.
type SimilarDecision struct {
	Chain      *Chain  `json:"chain"`
	Similarity float64 `json:"similarity"`
}

// SimilarDecisions ranks chains by Jaccard similarity between the query
// prompt and each decision prompt, over stop-word-filtered keyword sets.
func SimilarDecisions(chains []*Chain, prompt string, limit int) []SimilarDecision {
	query := keywords(prompt)
	if len(query) == 0 {
		return nil
	}

	var out []SimilarDecision
	for _, chain := range chains {
		score := jaccard(query, keywords(chain.Decision.Prompt))
		if score >= similarityThreshold {
			out = append(out, SimilarDecision{Chain: chain, Similarity: score})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Similarity != out[j].Similarity {
			return out[i].Similarity > out[j].Similarity
		}
		return out[i].Chain.Decision.ID < out[j].Chain.Decision.ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Trend compares success rates across two adjacent periods.
type Trend struct {
	PeriodDays     int            `json:"period_days"`
	BeforeRate     float64        `json:"before_rate"`
	AfterRate      float64        `json:"after_rate"`
	BeforeChains   int            `json:"before_chains"`
	AfterChains    int            `json:"after_chains"`
	ActionTypeDiff map[string]int `json:"action_type_diff"`
}

// TrendAnalysis splits chains into the last periodDays versus the prior
// periodDays and reports the success-rate shift plus the change in
// action-type mix. Chains older than both windows are ignored.
func TrendAnalysis(chains []*Chain, periodDays int, now time.Time) Trend {
	if periodDays <= 0 {
		periodDays = 7
	}
	recent := now.AddDate(0, 0, -periodDays)
	prior := now.AddDate(0, 0, -2*periodDays)

	trend := Trend{PeriodDays: periodDays, ActionTypeDiff: make(map[string]int)}
	var beforeSucc, beforeTotal, afterSucc, afterTotal int

	for _, chain := range chains {
		ts := chain.Decision.Timestamp
		switch {
		case !ts.Before(recent):
			trend.AfterChains++
			s, t := chainOutcomeCounts(chain)
			afterSucc += s
			afterTotal += t
			for _, action := range chain.Actions {
				trend.ActionTypeDiff[string(action.ActionType)]++
			}
		case !ts.Before(prior):
			trend.BeforeChains++
			s, t := chainOutcomeCounts(chain)
			beforeSucc += s
			beforeTotal += t
			for _, action := range chain.Actions {
				trend.ActionTypeDiff[string(action.ActionType)]--
			}
		}
	}

	if beforeTotal > 0 {
		trend.BeforeRate = float64(beforeSucc) / float64(beforeTotal)
	}
	if afterTotal > 0 {
		trend.AfterRate = float64(afterSucc) / float64(afterTotal)
	}
	return trend
}

func chainOutcomeCounts(chain *Chain) (successes, total int) {
	for _, outcomes := range chain.Outcomes {
		for _, o := range outcomes {
			total++
			if string(o.Status) == string(OutcomeSuccess) {
				successes++
			}
		}
	}
	return successes, total
}

// Lesson is a recurring failure with its recorded feedback.
type Lesson struct {
	ActionType  string `json:"action_type"`
	Feedback    string `json:"feedback"`
	Occurrences int    `json:"occurrences"`
}

// ExtractLessons collects failure feedback grouped by action type, most
// frequent first. Failures without feedback carry no lesson and are skipped.
func ExtractLessons(chains []*Chain) []Lesson {
	type key struct{ actionType, feedback string }
	counts := make(map[key]int)

	for _, chain := range chains {
		for _, action := range chain.Actions {
			for _, outcome := range chain.Outcomes[action.ID] {
				if string(outcome.Status) != string(OutcomeFailure) || outcome.Feedback == "" {
					continue
				}
				counts[key{string(action.ActionType), outcome.Feedback}]++
			}
		}
	}

	lessons := make([]Lesson, 0, len(counts))
	for k, n := range counts {
		lessons = append(lessons, Lesson{ActionType: k.actionType, Feedback: k.feedback, Occurrences: n})
	}
	sort.Slice(lessons, func(i, j int) bool {
		if lessons[i].Occurrences != lessons[j].Occurrences {
			return lessons[i].Occurrences > lessons[j].Occurrences
		}
		if lessons[i].ActionType != lessons[j].ActionType {
			return lessons[i].ActionType < lessons[j].ActionType
		}
		return lessons[i].Feedback < lessons[j].Feedback
	})
	return lessons
}

// AgentInsight summarizes one agent's record.
type AgentInsight struct {
	AgentID       string         `json:"agent_id"`
	Decisions     int            `json:"decisions"`
	Actions       int            `json:"actions"`
	SuccessRate   float64        `json:"success_rate"`
	AvgConfidence float64        `json:"avg_confidence"`
	ActionTypes   map[string]int `json:"action_types"`
	Lessons       []Lesson       `json:"lessons"`
}

// AgentInsights summarizes the chains belonging to one agent.
func AgentInsights(chains []*Chain, agentID string) AgentInsight {
	insight := AgentInsight{AgentID: agentID, ActionTypes: make(map[string]int)}

	var own []*Chain
	var confidenceSum float64
	var successes, total int
	for _, chain := range chains {
		if chain.Decision.AgentID != agentID {
			continue
		}
		own = append(own, chain)
		insight.Decisions++
		insight.Actions += len(chain.Actions)
		confidenceSum += chain.Decision.Confidence
		for _, action := range chain.Actions {
			insight.ActionTypes[string(action.ActionType)]++
		}
		s, t := chainOutcomeCounts(chain)
		successes += s
		total += t
	}

	if insight.Decisions > 0 {
		insight.AvgConfidence = confidenceSum / float64(insight.Decisions)
	}
	if total > 0 {
		insight.SuccessRate = float64(successes) / float64(total)
	}
	insight.Lessons = ExtractLessons(own)
	return insight
}

// stopWords excluded from prompt keyword sets.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"to": true, "of": true, "in": true, "on": true, "for": true, "with": true,
	"is": true, "are": true, "was": true, "be": true, "this": true, "that": true,
	"it": true, "as": true, "at": true, "by": true, "from": true, "into": true,
	"please": true, "then": true, "can": true, "do": true, "use": true,
}

// keywords lowercases, splits on non-alphanumerics, and drops stop words and
// single characters.
func keywords(text string) map[string]bool {
	out := make(map[string]bool)
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	for _, f := range fields {
		if len(f) < 2 || stopWords[f] {
			continue
		}
		out[f] = true
	}
	return out
}

// jaccard is |a∩b| / |a∪b|.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for k := range a {
		if b[k] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
