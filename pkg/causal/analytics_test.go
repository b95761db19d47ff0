package causal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecoder-dev/codecoder/ent"
	"github.com/codecoder-dev/codecoder/ent/actionnode"
	"github.com/codecoder-dev/codecoder/ent/outcomenode"
)

// fixtureChain builds an in-memory chain with one action per outcome status.
func fixtureChain(id, agent, prompt string, confidence float64, ts time.Time, statuses ...OutcomeStatus) *Chain {
	chain := &Chain{
		Decision: &ent.DecisionNode{
			ID: id, AgentID: agent, Prompt: prompt,
			Confidence: confidence, Timestamp: ts,
		},
		Outcomes: make(map[string][]*ent.OutcomeNode),
	}
	for i, status := range statuses {
		actionID := id + "-a" + string(rune('0'+i))
		chain.Actions = append(chain.Actions, &ent.ActionNode{
			ID: actionID, DecisionID: id,
			ActionType: actionnode.ActionTypeToolExecution,
			Timestamp:  ts,
		})
		chain.Outcomes[actionID] = []*ent.OutcomeNode{{
			ID: actionID + "-o", ActionID: actionID,
			Status:    outcomenode.Status(status),
			Feedback:  "flaky network",
			Timestamp: ts,
		}}
	}
	return chain
}

func TestFindPatterns(t *testing.T) {
	now := time.Now()
	chains := []*Chain{
		fixtureChain("dec_1", "editor", "fix parser", 0.8, now, OutcomeSuccess, OutcomeSuccess),
		fixtureChain("dec_2", "editor", "fix lexer", 0.6, now, OutcomeFailure),
		fixtureChain("dec_3", "reviewer", "review diff", 0.9, now, OutcomeSuccess),
	}

	patterns := FindPatterns(chains, 2, 10)
	require.Len(t, patterns, 1, "reviewer has only one action, below min_occurrences")
	assert.Equal(t, "editor", patterns[0].AgentID)
	assert.Equal(t, 3, patterns[0].Occurrences)
	assert.InDelta(t, 2.0/3.0, patterns[0].SuccessRate, 1e-9)
	assert.InDelta(t, (0.8+0.8+0.6)/3, patterns[0].AvgConfidence, 1e-9)
}

func TestSimilarDecisions(t *testing.T) {
	now := time.Now()
	chains := []*Chain{
		fixtureChain("dec_1", "editor", "refactor the parser module tests", 0.8, now),
		fixtureChain("dec_2", "editor", "deploy production cluster", 0.8, now),
	}

	similar := SimilarDecisions(chains, "refactor parser tests", 10)
	require.Len(t, similar, 1)
	assert.Equal(t, "dec_1", similar[0].Chain.Decision.ID)
	assert.GreaterOrEqual(t, similar[0].Similarity, similarityThreshold)
}

func TestSimilarDecisionsEmptyPrompt(t *testing.T) {
	assert.Nil(t, SimilarDecisions(nil, "the and of", 10), "stop words only yields no keywords")
}

func TestTrendAnalysis(t *testing.T) {
	now := time.Now()
	chains := []*Chain{
		fixtureChain("dec_1", "editor", "old work", 0.5, now.AddDate(0, 0, -10), OutcomeFailure),
		fixtureChain("dec_2", "editor", "new work", 0.5, now.AddDate(0, 0, -2), OutcomeSuccess),
		fixtureChain("dec_3", "editor", "ancient", 0.5, now.AddDate(0, 0, -40), OutcomeSuccess),
	}

	trend := TrendAnalysis(chains, 7, now)
	assert.Equal(t, 1, trend.BeforeChains)
	assert.Equal(t, 1, trend.AfterChains)
	assert.Equal(t, 0.0, trend.BeforeRate)
	assert.Equal(t, 1.0, trend.AfterRate)
	assert.Equal(t, 0, trend.ActionTypeDiff["tool_execution"], "one added, one removed")
}

func TestExtractLessons(t *testing.T) {
	now := time.Now()
	chains := []*Chain{
		fixtureChain("dec_1", "editor", "x", 0.5, now, OutcomeFailure, OutcomeFailure),
		fixtureChain("dec_2", "editor", "y", 0.5, now, OutcomeSuccess),
	}

	lessons := ExtractLessons(chains)
	require.Len(t, lessons, 1)
	assert.Equal(t, "tool_execution", lessons[0].ActionType)
	assert.Equal(t, "flaky network", lessons[0].Feedback)
	assert.Equal(t, 2, lessons[0].Occurrences)
}

func TestAgentInsights(t *testing.T) {
	now := time.Now()
	chains := []*Chain{
		fixtureChain("dec_1", "editor", "x", 0.8, now, OutcomeSuccess),
		fixtureChain("dec_2", "editor", "y", 0.6, now, OutcomeFailure),
		fixtureChain("dec_3", "reviewer", "z", 0.9, now, OutcomeSuccess),
	}

	insight := AgentInsights(chains, "editor")
	assert.Equal(t, 2, insight.Decisions)
	assert.Equal(t, 2, insight.Actions)
	assert.InDelta(t, 0.5, insight.SuccessRate, 1e-9)
	assert.InDelta(t, 0.7, insight.AvgConfidence, 1e-9)
	assert.Equal(t, 2, insight.ActionTypes["tool_execution"])
	require.Len(t, insight.Lessons, 1)
}

func TestJaccard(t *testing.T) {
	a := keywords("fix the parser bug")
	b := keywords("fix parser tests")
	// intersection {fix, parser}, union {fix, parser, bug, tests}
	assert.InDelta(t, 0.5, jaccard(a, b), 1e-9)
}
