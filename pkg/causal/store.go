// Package causal implements the append-only Decision/Action/Outcome graph
// and the pattern analytics built on top of it.
package causal

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/codecoder-dev/codecoder/ent"
	"github.com/codecoder-dev/codecoder/ent/actionnode"
	"github.com/codecoder-dev/codecoder/ent/causaledge"
	"github.com/codecoder-dev/codecoder/ent/decisionnode"
	"github.com/codecoder-dev/codecoder/ent/outcomenode"
	"github.com/codecoder-dev/codecoder/pkg/ident"
)

// Query limits. Queries over MaxQueryLimit fail; callers retry with a
// tighter filter instead of the store doing unbounded work.
const (
	DefaultQueryLimit = 100
	MaxQueryLimit     = 1000
)

// Store is the causal graph store: single writer, many readers. Nodes and
// edges are never updated once written.
type Store struct {
	client *ent.Client
	gen    *ident.Generator
	clock  *ident.Clock

	// Serializes writes so chain timestamps stay non-decreasing.
	writeMu sync.Mutex

	logger *slog.Logger
}

// NewStore creates a Store over an open database client.
func NewStore(client *ent.Client, clock *ident.Clock, gen *ident.Generator) *Store {
	return &Store{
		client: client,
		gen:    gen,
		clock:  clock,
		logger: slog.Default().With("component", "causal"),
	}
}

// RecordDecision appends a decision node and returns its id.
func (s *Store) RecordDecision(ctx context.Context, in DecisionInput) (string, error) {
	if in.AgentID == "" {
		return "", NewValidationError("agent_id", "required")
	}
	if in.Prompt == "" {
		return "", NewValidationError("prompt", "required")
	}
	if in.Confidence < 0 || in.Confidence > 1 {
		return "", NewValidationError("confidence", "must be within [0,1]")
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	id := s.gen.New(ident.PrefixDecision)
	builder := s.client.DecisionNode.Create().
		SetID(id).
		SetSessionID(in.SessionID).
		SetAgentID(in.AgentID).
		SetPrompt(in.Prompt).
		SetReasoning(in.Reasoning).
		SetConfidence(in.Confidence).
		SetTimestamp(s.clock.Now())
	if in.Context != nil {
		builder.SetContext(in.Context)
	}
	if _, err := builder.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to record decision: %w", err)
	}
	return id, nil
}

// RecordAction appends an action under a decision, together with its single
// inbound decision edge, and returns the action id.
func (s *Store) RecordAction(ctx context.Context, decisionID string, in ActionInput) (string, error) {
	if in.Type == "" {
		return "", NewValidationError("action_type", "required")
	}
	if in.Description == "" {
		return "", NewValidationError("description", "required")
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	parent, err := s.client.DecisionNode.Get(ctx, decisionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load decision %s: %w", decisionID, err)
	}

	ts := s.clock.Now()
	if ts.Before(parent.Timestamp) {
		ts = parent.Timestamp
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	id := s.gen.New(ident.PrefixAction)
	builder := tx.ActionNode.Create().
		SetID(id).
		SetDecisionID(decisionID).
		SetActionType(actionnode.ActionType(in.Type)).
		SetDescription(in.Description).
		SetTimestamp(ts)
	if in.Input != nil {
		builder.SetInput(in.Input)
	}
	if in.Output != nil {
		builder.SetOutput(in.Output)
	}
	if in.DurationMS != nil {
		builder.SetDurationMs(*in.DurationMS)
	}
	if _, err := builder.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to record action: %w", err)
	}

	if err := s.createEdge(ctx, tx, decisionID, id, RelLeadsTo, 1); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit action: %w", err)
	}
	return id, nil
}

// RecordOutcome appends an outcome under an action, together with its single
// inbound action edge, and returns the outcome id.
func (s *Store) RecordOutcome(ctx context.Context, actionID string, in OutcomeInput) (string, error) {
	if in.Status == "" {
		return "", NewValidationError("status", "required")
	}
	if in.Description == "" {
		return "", NewValidationError("description", "required")
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	parent, err := s.client.ActionNode.Get(ctx, actionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load action %s: %w", actionID, err)
	}

	ts := s.clock.Now()
	if ts.Before(parent.Timestamp) {
		ts = parent.Timestamp
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	id := s.gen.New(ident.PrefixOutcome)
	builder := tx.OutcomeNode.Create().
		SetID(id).
		SetActionID(actionID).
		SetStatus(outcomenode.Status(in.Status)).
		SetDescription(in.Description).
		SetFeedback(in.Feedback).
		SetTimestamp(ts)
	if in.Metrics != nil {
		builder.SetMetrics(in.Metrics)
	}
	if _, err := builder.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to record outcome: %w", err)
	}

	if err := s.createEdge(ctx, tx, actionID, id, RelResultsIn, 1); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit outcome: %w", err)
	}
	return id, nil
}

// Link adds a typed edge between two existing nodes. Edges must respect
// temporal ordering: ts(source) ≤ ts(target).
func (s *Store) Link(ctx context.Context, source, target string, rel Relationship, weight float64) (string, error) {
	if weight < 0 || weight > 1 {
		return "", NewValidationError("weight", "must be within [0,1]")
	}

	srcTS, err := s.nodeTimestamp(ctx, source)
	if err != nil {
		return "", err
	}
	dstTS, err := s.nodeTimestamp(ctx, target)
	if err != nil {
		return "", err
	}
	if srcTS.After(dstTS) {
		return "", ErrTemporalOrder
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	id := s.gen.New(ident.PrefixEdge)
	_, err = s.client.CausalEdge.Create().
		SetID(id).
		SetSourceNode(source).
		SetTargetNode(target).
		SetRelationship(causaledge.Relationship(rel)).
		SetWeight(weight).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create edge: %w", err)
	}
	return id, nil
}

func (s *Store) createEdge(ctx context.Context, tx *ent.Tx, source, target string, rel Relationship, weight float64) error {
	_, err := tx.CausalEdge.Create().
		SetID(s.gen.New(ident.PrefixEdge)).
		SetSourceNode(source).
		SetTargetNode(target).
		SetRelationship(causaledge.Relationship(rel)).
		SetWeight(weight).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create %s edge: %w", rel, err)
	}
	return nil
}

// nodeTimestamp resolves any node id to its timestamp using the id prefix.
func (s *Store) nodeTimestamp(ctx context.Context, id string) (ts time.Time, err error) {
	switch {
	case strings.HasPrefix(id, ident.PrefixDecision+"_"):
		node, err := s.client.DecisionNode.Get(ctx, id)
		if err != nil {
			return ts, mapNotFound(err)
		}
		return node.Timestamp, nil
	case strings.HasPrefix(id, ident.PrefixAction+"_"):
		node, err := s.client.ActionNode.Get(ctx, id)
		if err != nil {
			return ts, mapNotFound(err)
		}
		return node.Timestamp, nil
	case strings.HasPrefix(id, ident.PrefixOutcome+"_"):
		node, err := s.client.OutcomeNode.Get(ctx, id)
		if err != nil {
			return ts, mapNotFound(err)
		}
		return node.Timestamp, nil
	default:
		return ts, ErrNotFound
	}
}

func mapNotFound(err error) error {
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// GetChain returns a decision with all its actions, outcomes, and edges.
func (s *Store) GetChain(ctx context.Context, decisionID string) (*Chain, error) {
	decision, err := s.client.DecisionNode.Get(ctx, decisionID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	actions, err := s.client.ActionNode.Query().
		Where(actionnode.DecisionIDEQ(decisionID)).
		Order(ent.Asc(actionnode.FieldTimestamp), ent.Asc(actionnode.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load actions: %w", err)
	}

	actionIDs := make([]string, len(actions))
	for i, a := range actions {
		actionIDs[i] = a.ID
	}

	outcomes := make(map[string][]*ent.OutcomeNode)
	if len(actionIDs) > 0 {
		rows, err := s.client.OutcomeNode.Query().
			Where(outcomenode.ActionIDIn(actionIDs...)).
			Order(ent.Asc(outcomenode.FieldTimestamp)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load outcomes: %w", err)
		}
		for _, o := range rows {
			outcomes[o.ActionID] = append(outcomes[o.ActionID], o)
		}
	}

	sources := append([]string{decisionID}, actionIDs...)
	edges, err := s.client.CausalEdge.Query().
		Where(causaledge.SourceNodeIn(sources...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load edges: %w", err)
	}

	return &Chain{
		Decision: decision,
		Actions:  actions,
		Outcomes: outcomes,
		Edges:    edges,
	}, nil
}

// Query returns chains matching the filter, ordered by decision timestamp
// descending with decision id as a deterministic tiebreak.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]*Chain, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultQueryLimit
	}
	if limit > MaxQueryLimit {
		return nil, ErrLimitExceeded
	}

	q := s.client.DecisionNode.Query()
	if filter.AgentID != "" {
		q = q.Where(decisionnode.AgentIDEQ(filter.AgentID))
	}
	if filter.SessionID != "" {
		q = q.Where(decisionnode.SessionIDEQ(filter.SessionID))
	}
	if !filter.Since.IsZero() {
		q = q.Where(decisionnode.TimestampGTE(filter.Since))
	}
	if !filter.Until.IsZero() {
		q = q.Where(decisionnode.TimestampLT(filter.Until))
	}
	if filter.MinConfidence > 0 {
		q = q.Where(decisionnode.ConfidenceGTE(filter.MinConfidence))
	}
	if filter.ActionType != "" {
		q = q.Where(decisionnode.HasActionsWith(actionnode.ActionTypeEQ(actionnode.ActionType(filter.ActionType))))
	}
	if filter.OutcomeStatus != "" {
		q = q.Where(decisionnode.HasActionsWith(
			actionnode.HasOutcomesWith(outcomenode.StatusEQ(outcomenode.Status(filter.OutcomeStatus)))))
	}

	decisions, err := q.
		Order(decisionnode.ByTimestamp(sql.OrderDesc()), decisionnode.ByID()).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query decisions: %w", err)
	}

	chains := make([]*Chain, 0, len(decisions))
	for _, d := range decisions {
		chain, err := s.GetChain(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		chains = append(chains, chain)
	}
	return chains, nil
}

// Stats aggregates counters over the whole graph.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	decisions, err := s.client.DecisionNode.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count decisions: %w", err)
	}
	actions, err := s.client.ActionNode.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count actions: %w", err)
	}
	outcomes, err := s.client.OutcomeNode.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count outcomes: %w", err)
	}
	edges, err := s.client.CausalEdge.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count edges: %w", err)
	}
	successes, err := s.client.OutcomeNode.Query().
		Where(outcomenode.StatusEQ(outcomenode.StatusSuccess)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count successes: %w", err)
	}

	stats := &Stats{
		Decisions:   decisions,
		Actions:     actions,
		Outcomes:    outcomes,
		Edges:       edges,
		ActionTypes: make(map[string]int),
	}
	if outcomes > 0 {
		stats.SuccessRate = float64(successes) / float64(outcomes)
	}

	var agentRows []struct {
		AgentID string `json:"agent_id"`
		Count   int    `json:"count"`
	}
	err = s.client.DecisionNode.Query().
		GroupBy(decisionnode.FieldAgentID).
		Aggregate(ent.Count()).
		Scan(ctx, &agentRows)
	if err != nil {
		return nil, fmt.Errorf("failed to rank agents: %w", err)
	}
	sort.Slice(agentRows, func(i, j int) bool {
		if agentRows[i].Count != agentRows[j].Count {
			return agentRows[i].Count > agentRows[j].Count
		}
		return agentRows[i].AgentID < agentRows[j].AgentID
	})
	for i, row := range agentRows {
		if i == 5 {
			break
		}
		stats.TopAgents = append(stats.TopAgents, AgentCount{AgentID: row.AgentID, Decisions: row.Count})
	}

	var typeRows []struct {
		ActionType string `json:"action_type"`
		Count      int    `json:"count"`
	}
	err = s.client.ActionNode.Query().
		GroupBy(actionnode.FieldActionType).
		Aggregate(ent.Count()).
		Scan(ctx, &typeRows)
	if err != nil {
		return nil, fmt.Errorf("failed to group action types: %w", err)
	}
	for _, row := range typeRows {
		stats.ActionTypes[row.ActionType] = row.Count
	}

	return stats, nil
}
