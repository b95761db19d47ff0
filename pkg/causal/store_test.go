package causal

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecoder-dev/codecoder/pkg/database"
	"github.com/codecoder-dev/codecoder/pkg/ident"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	client, err := database.NewClient(context.Background(),
		database.DefaultConfig(filepath.Join(t.TempDir(), "codecoder.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	clock := ident.NewClock()
	return NewStore(client.Client, clock, ident.NewGenerator(clock))
}

func recordChain(t *testing.T, store *Store, agent, prompt string) (decisionID string, actionIDs []string) {
	t.Helper()
	ctx := context.Background()

	decisionID, err := store.RecordDecision(ctx, DecisionInput{
		AgentID: agent, Prompt: prompt, Confidence: 0.8,
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		actionID, err := store.RecordAction(ctx, decisionID, ActionInput{
			Type: ActionToolExecution, Description: "run tool",
		})
		require.NoError(t, err)
		actionIDs = append(actionIDs, actionID)

		_, err = store.RecordOutcome(ctx, actionID, OutcomeInput{
			Status: OutcomeSuccess, Description: "ok",
		})
		require.NoError(t, err)
	}
	return decisionID, actionIDs
}

func TestChainStructure(t *testing.T) {
	store := newTestStore(t)
	decisionID, actionIDs := recordChain(t, store, "editor", "edit file")

	chain, err := store.GetChain(context.Background(), decisionID)
	require.NoError(t, err)

	// Two actions, each with exactly one outcome.
	require.Len(t, chain.Actions, 2)
	for _, actionID := range actionIDs {
		require.Len(t, chain.Outcomes[actionID], 1)
	}

	// Every action has exactly one inbound decision edge, every outcome one
	// inbound action edge.
	inbound := make(map[string]int)
	for _, edge := range chain.Edges {
		inbound[edge.TargetNode]++
	}
	for _, action := range chain.Actions {
		assert.Equal(t, 1, inbound[action.ID])
		for _, outcome := range chain.Outcomes[action.ID] {
			assert.Equal(t, 1, inbound[outcome.ID])
		}
	}

	// Temporal ordering along the chain.
	for _, action := range chain.Actions {
		assert.False(t, action.Timestamp.Before(chain.Decision.Timestamp))
		for _, outcome := range chain.Outcomes[action.ID] {
			assert.False(t, outcome.Timestamp.Before(action.Timestamp))
		}
	}
}

func TestGetChainNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetChain(context.Background(), "dec_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordActionUnknownDecision(t *testing.T) {
	store := newTestStore(t)
	_, err := store.RecordAction(context.Background(), "dec_missing", ActionInput{
		Type: ActionSearch, Description: "grep",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordDecisionValidation(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.RecordDecision(ctx, DecisionInput{Prompt: "p"})
	assert.True(t, IsValidationError(err))

	_, err = store.RecordDecision(ctx, DecisionInput{AgentID: "a", Prompt: "p", Confidence: 1.5})
	assert.True(t, IsValidationError(err))
}

func TestLinkTemporalOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, _ := recordChain(t, store, "editor", "first")
	second, _ := recordChain(t, store, "editor", "second")

	// Forward in time is fine.
	_, err := store.Link(ctx, first, second, RelInfluences, 0.5)
	require.NoError(t, err)

	// Backwards is rejected.
	_, err = store.Link(ctx, second, first, RelInfluences, 0.5)
	assert.ErrorIs(t, err, ErrTemporalOrder)

	// Weight outside [0,1] is rejected.
	_, err = store.Link(ctx, first, second, RelInfluences, 1.5)
	assert.True(t, IsValidationError(err))
}

func TestQueryOrderingAndLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		recordChain(t, store, "editor", "work")
	}

	chains, err := store.Query(ctx, QueryFilter{AgentID: "editor"})
	require.NoError(t, err)
	require.Len(t, chains, 3)
	for i := 1; i < len(chains); i++ {
		assert.False(t, chains[i-1].Decision.Timestamp.Before(chains[i].Decision.Timestamp),
			"results must be newest first")
	}

	chains, err = store.Query(ctx, QueryFilter{AgentID: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, chains)

	_, err = store.Query(ctx, QueryFilter{Limit: MaxQueryLimit + 1})
	assert.ErrorIs(t, err, ErrLimitExceeded)
}

func TestQueryFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	recordChain(t, store, "editor", "work")

	chains, err := store.Query(ctx, QueryFilter{ActionType: ActionToolExecution, OutcomeStatus: OutcomeSuccess})
	require.NoError(t, err)
	assert.Len(t, chains, 1)

	chains, err = store.Query(ctx, QueryFilter{ActionType: ActionCodeChange})
	require.NoError(t, err)
	assert.Empty(t, chains)

	chains, err = store.Query(ctx, QueryFilter{MinConfidence: 0.9})
	require.NoError(t, err)
	assert.Empty(t, chains)
}

func TestStats(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	recordChain(t, store, "editor", "a")
	recordChain(t, store, "reviewer", "b")

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Decisions)
	assert.Equal(t, 4, stats.Actions)
	assert.Equal(t, 4, stats.Outcomes)
	assert.Equal(t, 8, stats.Edges)
	assert.Equal(t, 1.0, stats.SuccessRate)
	assert.Len(t, stats.TopAgents, 2)
	assert.Equal(t, 4, stats.ActionTypes["tool_execution"])
}
