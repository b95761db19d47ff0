package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/codecoder-dev/codecoder/pkg/causal"
	"github.com/codecoder-dev/codecoder/pkg/permission"
	"github.com/codecoder-dev/codecoder/pkg/sessionstore"
	"github.com/codecoder-dev/codecoder/pkg/supervisor"
	"github.com/codecoder-dev/codecoder/pkg/vault"
)

func decode[T any](params json.RawMessage) (T, error) {
	var v T
	if len(params) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(params, &v); err != nil {
		return v, causal.NewValidationError("params", err.Error())
	}
	return v, nil
}

// methodTable wires every RPC method name to its handler. Methods whose
// backing service was not provided are simply absent.
func (s *Server) methodTable() map[string]rpcHandler {
	m := make(map[string]rpcHandler)

	if s.deps.Supervisor != nil {
		m["task.submit"] = s.taskSubmit
		m["task.get"] = s.taskGet
		m["task.list"] = s.taskList
		m["task.interact"] = s.taskInteract
		m["task.cancel"] = s.taskCancel
		m["task.delete"] = s.taskDelete
	}
	if s.deps.Graph != nil {
		m["graph.record_decision"] = s.graphRecordDecision
		m["graph.record_action"] = s.graphRecordAction
		m["graph.record_outcome"] = s.graphRecordOutcome
		m["graph.link"] = s.graphLink
		m["graph.get_chain"] = s.graphGetChain
		m["graph.query"] = s.graphQuery
		m["graph.stats"] = s.graphStats
		m["graph.patterns"] = s.graphPatterns
		m["graph.similar"] = s.graphSimilar
		m["graph.trend"] = s.graphTrend
		m["graph.lessons"] = s.graphLessons
		m["graph.insights"] = s.graphInsights
	}
	if s.deps.Vault != nil {
		m["vault.add"] = s.vaultAdd
		m["vault.get"] = s.vaultGet
		m["vault.list"] = s.vaultList
		m["vault.update"] = s.vaultUpdate
		m["vault.update_oauth_tokens"] = s.vaultUpdateOAuthTokens
		m["vault.delete"] = s.vaultDelete
	}
	if s.deps.Resolver != nil {
		m["vault.resolve"] = s.vaultResolve
	}
	if s.deps.Engine != nil {
		m["permission.audit"] = s.permissionAudit
		m["permission.remote_tools"] = s.permissionRemoteTools
		m["permission.allow_remote_tool"] = s.permissionAllowTool
		m["permission.disallow_remote_tool"] = s.permissionDisallowTool
	}
	if s.deps.Scanner != nil {
		m["scanner.scan"] = s.scannerScan
	}
	if s.deps.Sessions != nil {
		m["session.save"] = s.sessionSave
		m["session.load"] = s.sessionLoad
		m["session.list"] = s.sessionList
		m["session.clear"] = s.sessionClear
		m["session.has_valid"] = s.sessionHasValid
		m["session.cleanup"] = s.sessionCleanup
	}
	return m
}

// --- task.* ---

func (s *Server) taskSubmit(ctx context.Context, params json.RawMessage) (any, error) {
	in, err := decode[supervisor.SubmitInput](params)
	if err != nil {
		return nil, err
	}
	return s.deps.Supervisor.Submit(ctx, in)
}

type taskIDParams struct {
	TaskID string `json:"task_id"`
}

func (s *Server) taskGet(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decode[taskIDParams](params)
	if err != nil {
		return nil, err
	}
	return s.deps.Supervisor.Get(ctx, p.TaskID)
}

func (s *Server) taskList(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		Status string `json:"status"`
		Limit  int    `json:"limit"`
	}](params)
	if err != nil {
		return nil, err
	}
	return s.deps.Supervisor.List(ctx, supervisor.ListFilter{Status: p.Status, Limit: p.Limit})
}

func (s *Server) taskInteract(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		TaskID   string `json:"task_id"`
		Decision string `json:"decision"`
	}](params)
	if err != nil {
		return nil, err
	}
	switch supervisor.InteractDecision(p.Decision) {
	case supervisor.DecisionApproveOnce, supervisor.DecisionApproveAlways, supervisor.DecisionReject:
	default:
		return nil, causal.NewValidationError("decision", fmt.Sprintf("unknown decision %q", p.Decision))
	}
	if err := s.deps.Supervisor.Interact(ctx, p.TaskID, supervisor.InteractDecision(p.Decision)); err != nil {
		return nil, err
	}
	return map[string]any{"task_id": p.TaskID, "decision": p.Decision}, nil
}

func (s *Server) taskCancel(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decode[taskIDParams](params)
	if err != nil {
		return nil, err
	}
	if err := s.deps.Supervisor.Cancel(ctx, p.TaskID); err != nil {
		return nil, err
	}
	return map[string]any{"task_id": p.TaskID, "cancelled": true}, nil
}

func (s *Server) taskDelete(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decode[taskIDParams](params)
	if err != nil {
		return nil, err
	}
	if err := s.deps.Supervisor.Delete(ctx, p.TaskID); err != nil {
		return nil, err
	}
	return map[string]any{"task_id": p.TaskID, "deleted": true}, nil
}

// --- graph.* ---

func (s *Server) graphRecordDecision(ctx context.Context, params json.RawMessage) (any, error) {
	in, err := decode[causal.DecisionInput](params)
	if err != nil {
		return nil, err
	}
	id, err := s.deps.Graph.RecordDecision(ctx, in)
	if err != nil {
		return nil, err
	}
	return map[string]any{"decision_id": id}, nil
}

func (s *Server) graphRecordAction(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		DecisionID string `json:"decision_id"`
		causal.ActionInput
	}](params)
	if err != nil {
		return nil, err
	}
	id, err := s.deps.Graph.RecordAction(ctx, p.DecisionID, p.ActionInput)
	if err != nil {
		return nil, err
	}
	return map[string]any{"action_id": id}, nil
}

func (s *Server) graphRecordOutcome(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		ActionID string `json:"action_id"`
		causal.OutcomeInput
	}](params)
	if err != nil {
		return nil, err
	}
	id, err := s.deps.Graph.RecordOutcome(ctx, p.ActionID, p.OutcomeInput)
	if err != nil {
		return nil, err
	}
	return map[string]any{"outcome_id": id}, nil
}

func (s *Server) graphLink(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		Source       string  `json:"source"`
		Target       string  `json:"target"`
		Relationship string  `json:"relationship"`
		Weight       float64 `json:"weight"`
	}](params)
	if err != nil {
		return nil, err
	}
	id, err := s.deps.Graph.Link(ctx, p.Source, p.Target, causal.Relationship(p.Relationship), p.Weight)
	if err != nil {
		return nil, err
	}
	return map[string]any{"edge_id": id}, nil
}

func (s *Server) graphGetChain(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		DecisionID string `json:"decision_id"`
	}](params)
	if err != nil {
		return nil, err
	}
	return s.deps.Graph.GetChain(ctx, p.DecisionID)
}

// queryParams is the wire shape of a chain query.
type queryParams struct {
	AgentID       string    `json:"agent_id"`
	SessionID     string    `json:"session_id"`
	ActionType    string    `json:"action_type"`
	OutcomeStatus string    `json:"outcome_status"`
	Since         time.Time `json:"since"`
	Until         time.Time `json:"until"`
	MinConfidence float64   `json:"min_confidence"`
	Limit         int       `json:"limit"`
}

func (p queryParams) filter() causal.QueryFilter {
	return causal.QueryFilter{
		AgentID:       p.AgentID,
		SessionID:     p.SessionID,
		ActionType:    causal.ActionType(p.ActionType),
		OutcomeStatus: causal.OutcomeStatus(p.OutcomeStatus),
		Since:         p.Since,
		Until:         p.Until,
		MinConfidence: p.MinConfidence,
		Limit:         p.Limit,
	}
}

func (s *Server) graphQuery(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decode[queryParams](params)
	if err != nil {
		return nil, err
	}
	return s.deps.Graph.Query(ctx, p.filter())
}

func (s *Server) graphStats(ctx context.Context, _ json.RawMessage) (any, error) {
	return s.deps.Graph.Stats(ctx)
}

func (s *Server) graphPatterns(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		queryParams
		MinOccurrences int `json:"min_occurrences"`
		TopN           int `json:"top_n"`
	}](params)
	if err != nil {
		return nil, err
	}
	chains, err := s.deps.Graph.Query(ctx, p.filter())
	if err != nil {
		return nil, err
	}
	return causal.FindPatterns(chains, p.MinOccurrences, p.TopN), nil
}

func (s *Server) graphSimilar(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		queryParams
		Prompt string `json:"prompt"`
		TopN   int    `json:"top_n"`
	}](params)
	if err != nil {
		return nil, err
	}
	if p.Prompt == "" {
		return nil, causal.NewValidationError("prompt", "required")
	}
	chains, err := s.deps.Graph.Query(ctx, p.filter())
	if err != nil {
		return nil, err
	}
	return causal.SimilarDecisions(chains, p.Prompt, p.TopN), nil
}

func (s *Server) graphTrend(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		queryParams
		PeriodDays int `json:"period_days"`
	}](params)
	if err != nil {
		return nil, err
	}
	if p.PeriodDays <= 0 {
		p.PeriodDays = 7
	}
	chains, err := s.deps.Graph.Query(ctx, p.filter())
	if err != nil {
		return nil, err
	}
	return causal.TrendAnalysis(chains, p.PeriodDays, time.Now()), nil
}

func (s *Server) graphLessons(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decode[queryParams](params)
	if err != nil {
		return nil, err
	}
	chains, err := s.deps.Graph.Query(ctx, p.filter())
	if err != nil {
		return nil, err
	}
	return causal.ExtractLessons(chains), nil
}

func (s *Server) graphInsights(ctx context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		AgentID string `json:"agent_id"`
	}](params)
	if err != nil {
		return nil, err
	}
	if p.AgentID == "" {
		return nil, causal.NewValidationError("agent_id", "required")
	}
	chains, err := s.deps.Graph.Query(ctx, causal.QueryFilter{AgentID: p.AgentID})
	if err != nil {
		return nil, err
	}
	return causal.AgentInsights(chains, p.AgentID), nil
}

// --- vault.* ---

func (s *Server) vaultAdd(_ context.Context, params json.RawMessage) (any, error) {
	in, err := decode[vault.AddInput](params)
	if err != nil {
		return nil, err
	}
	id, err := s.deps.Vault.Add(in)
	if err != nil {
		return nil, err
	}
	return map[string]any{"credential_id": id}, nil
}

// vaultGet returns the redacted summary. Secret material never crosses the
// RPC boundary; injection happens through vault.resolve.
func (s *Server) vaultGet(_ context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		CredentialID string `json:"credential_id"`
	}](params)
	if err != nil {
		return nil, err
	}
	summary, err := s.deps.Vault.Describe(p.CredentialID)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *Server) vaultList(_ context.Context, _ json.RawMessage) (any, error) {
	return s.deps.Vault.List(), nil
}

func (s *Server) vaultUpdate(_ context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		CredentialID string `json:"credential_id"`
		vault.UpdateInput
	}](params)
	if err != nil {
		return nil, err
	}
	if err := s.deps.Vault.Update(p.CredentialID, p.UpdateInput); err != nil {
		return nil, err
	}
	return map[string]any{"credential_id": p.CredentialID, "updated": true}, nil
}

func (s *Server) vaultUpdateOAuthTokens(_ context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		CredentialID string     `json:"credential_id"`
		AccessToken  string     `json:"access_token"`
		RefreshToken string     `json:"refresh_token"`
		ExpiresAt    *time.Time `json:"expires_at"`
	}](params)
	if err != nil {
		return nil, err
	}
	if p.AccessToken == "" {
		return nil, causal.NewValidationError("access_token", "required")
	}
	if err := s.deps.Vault.UpdateOAuthTokens(p.CredentialID, p.AccessToken, p.RefreshToken, p.ExpiresAt); err != nil {
		return nil, err
	}
	return map[string]any{"credential_id": p.CredentialID, "updated": true}, nil
}

func (s *Server) vaultDelete(_ context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		CredentialID string `json:"credential_id"`
	}](params)
	if err != nil {
		return nil, err
	}
	if err := s.deps.Vault.Delete(p.CredentialID); err != nil {
		return nil, err
	}
	return map[string]any{"credential_id": p.CredentialID, "deleted": true}, nil
}

func (s *Server) vaultResolve(_ context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		Target string `json:"target"`
	}](params)
	if err != nil {
		return nil, err
	}
	if p.Target == "" {
		return nil, causal.NewValidationError("target", "required")
	}
	res, err := s.deps.Resolver.Resolve(p.Target)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return map[string]any{"matched": false}, nil
	}
	// Secret material stays in the vault; the caller gets headers only.
	return map[string]any{
		"matched":       true,
		"credential_id": res.Credential.ID,
		"type":          res.Credential.Type,
		"headers":       res.Headers,
		"needs_refresh": res.NeedsRefresh,
		"use_session":   res.UseSession,
	}, nil
}

// --- permission.* ---

func (s *Server) permissionAudit(_ context.Context, _ json.RawMessage) (any, error) {
	return s.deps.Engine.AuditEntries(), nil
}

func (s *Server) permissionRemoteTools(_ context.Context, _ json.RawMessage) (any, error) {
	out := map[string]any{"safe": permission.RemoteSafeTools()}
	if al := s.deps.Engine.Allowlist(); al != nil {
		out["allowlisted"] = al.Tools()
	}
	return out, nil
}

type toolParams struct {
	Tool string `json:"tool"`
}

func (s *Server) permissionAllowTool(_ context.Context, params json.RawMessage) (any, error) {
	p, err := decode[toolParams](params)
	if err != nil {
		return nil, err
	}
	if p.Tool == "" {
		return nil, causal.NewValidationError("tool", "required")
	}
	al := s.deps.Engine.Allowlist()
	if al == nil {
		return nil, fmt.Errorf("no allowlist configured")
	}
	if err := al.Add(p.Tool); err != nil {
		return nil, err
	}
	return map[string]any{"tool": p.Tool, "allowed": true}, nil
}

func (s *Server) permissionDisallowTool(_ context.Context, params json.RawMessage) (any, error) {
	p, err := decode[toolParams](params)
	if err != nil {
		return nil, err
	}
	al := s.deps.Engine.Allowlist()
	if al == nil {
		return nil, fmt.Errorf("no allowlist configured")
	}
	if err := al.Remove(p.Tool); err != nil {
		return nil, err
	}
	return map[string]any{"tool": p.Tool, "allowed": false}, nil
}

// --- scanner.* ---

func (s *Server) scannerScan(_ context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		Text string `json:"text"`
	}](params)
	if err != nil {
		return nil, err
	}
	return s.deps.Scanner.Scan(p.Text), nil
}

// --- session.* ---

func (s *Server) sessionSave(_ context.Context, params json.RawMessage) (any, error) {
	p, err := decode[struct {
		CredentialID string            `json:"credential_id"`
		Service      string            `json:"service"`
		Blob         sessionstore.Blob `json:"blob"`
	}](params)
	if err != nil {
		return nil, err
	}
	if p.Service == "" {
		return nil, causal.NewValidationError("service", "required")
	}
	path, err := s.deps.Sessions.Save(p.CredentialID, p.Service, p.Blob)
	if err != nil {
		return nil, err
	}
	return map[string]any{"service": p.Service, "path": path}, nil
}

type serviceParams struct {
	Service string `json:"service"`
}

func (s *Server) sessionLoad(_ context.Context, params json.RawMessage) (any, error) {
	p, err := decode[serviceParams](params)
	if err != nil {
		return nil, err
	}
	return s.deps.Sessions.Load(p.Service)
}

func (s *Server) sessionList(_ context.Context, _ json.RawMessage) (any, error) {
	return s.deps.Sessions.List()
}

func (s *Server) sessionClear(_ context.Context, params json.RawMessage) (any, error) {
	p, err := decode[serviceParams](params)
	if err != nil {
		return nil, err
	}
	if err := s.deps.Sessions.Clear(p.Service); err != nil {
		return nil, err
	}
	return map[string]any{"service": p.Service, "cleared": true}, nil
}

func (s *Server) sessionHasValid(_ context.Context, params json.RawMessage) (any, error) {
	p, err := decode[serviceParams](params)
	if err != nil {
		return nil, err
	}
	return map[string]any{"service": p.Service, "valid": s.deps.Sessions.HasValid(p.Service)}, nil
}

func (s *Server) sessionCleanup(_ context.Context, _ json.RawMessage) (any, error) {
	removed, err := s.deps.Sessions.CleanupExpired()
	if err != nil {
		return nil, err
	}
	return map[string]any{"removed": removed}, nil
}
