package mcp

import (
	"context"
	"encoding/json"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/codecoder-dev/codecoder/pkg/causal"
	"github.com/codecoder-dev/codecoder/pkg/permission"
	"github.com/codecoder-dev/codecoder/pkg/supervisor"
)

func objectSchema(props string) json.RawMessage {
	return json.RawMessage(`{"type":"object","properties":` + props + `}`)
}

// registerTools wires every enabled tool to its backing service.
func (s *Server) registerTools() {
	if s.deps.Supervisor != nil {
		s.addTool("task_submit", "Submit a new agent task.",
			objectSchema(`{"agent_id":{"type":"string"},"prompt":{"type":"string"},"source":{"type":"string"}}`),
			s.taskSubmit)
		s.addTool("task_get", "Fetch one task by id.",
			objectSchema(`{"task_id":{"type":"string"}}`),
			s.taskGet)
		s.addTool("task_list", "List tasks, newest first.",
			objectSchema(`{"status":{"type":"string"},"limit":{"type":"integer"}}`),
			s.taskList)
		s.addTool("task_interact", "Resolve a task's pending permission (once, always, reject).",
			objectSchema(`{"task_id":{"type":"string"},"decision":{"type":"string"}}`),
			s.taskInteract)
		s.addTool("task_cancel", "Cancel a running or pending task.",
			objectSchema(`{"task_id":{"type":"string"}}`),
			s.taskCancel)
	}
	if s.deps.Graph != nil {
		s.addTool("graph_query", "Query decision chains from the causal graph.",
			objectSchema(`{"agent_id":{"type":"string"},"session_id":{"type":"string"},"limit":{"type":"integer"}}`),
			s.graphQuery)
		s.addTool("graph_get_chain", "Fetch one decision chain.",
			objectSchema(`{"decision_id":{"type":"string"}}`),
			s.graphGetChain)
		s.addTool("graph_patterns", "Find recurring (agent, action) patterns.",
			objectSchema(`{"agent_id":{"type":"string"},"min_occurrences":{"type":"integer"},"top_n":{"type":"integer"}}`),
			s.graphPatterns)
		s.addTool("graph_similar", "Find past decisions similar to a prompt.",
			objectSchema(`{"prompt":{"type":"string"},"top_n":{"type":"integer"}}`),
			s.graphSimilar)
		s.addTool("graph_trend", "Compare outcome rates between the last period and the one before it.",
			objectSchema(`{"period_days":{"type":"integer"}}`),
			s.graphTrend)
	}
	if s.deps.Scanner != nil {
		s.addTool("scanner_scan", "Scan text for prompt-injection patterns.",
			objectSchema(`{"text":{"type":"string"}}`),
			s.scannerScan)
	}
	if s.deps.Vault != nil {
		s.addTool("vault_list", "List stored credentials (redacted).",
			objectSchema(`{}`),
			s.vaultList)
	}
	if s.deps.Sessions != nil {
		s.addTool("session_list", "List stored browser sessions and their validity.",
			objectSchema(`{}`),
			s.sessionList)
	}
	if s.deps.Engine != nil {
		s.addTool("permission_audit", "Recent permission decisions, oldest first.",
			objectSchema(`{}`),
			s.permissionAudit)
		s.addTool("permission_remote_tools", "Remote-safe tool set and the user allowlist.",
			objectSchema(`{}`),
			s.permissionRemoteTools)
	}
}

func (s *Server) taskSubmit(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	in, err := decodeArgs[supervisor.SubmitInput](req)
	if err != nil {
		return errorResult(err)
	}
	task, err := s.deps.Supervisor.Submit(ctx, in)
	if err != nil {
		return errorResult(err)
	}
	return textResult(task)
}

type taskIDArgs struct {
	TaskID string `json:"task_id"`
}

func (s *Server) taskGet(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, err := decodeArgs[taskIDArgs](req)
	if err != nil {
		return errorResult(err)
	}
	task, err := s.deps.Supervisor.Get(ctx, args.TaskID)
	if err != nil {
		return errorResult(err)
	}
	return textResult(task)
}

func (s *Server) taskList(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, err := decodeArgs[struct {
		Status string `json:"status"`
		Limit  int    `json:"limit"`
	}](req)
	if err != nil {
		return errorResult(err)
	}
	tasks, err := s.deps.Supervisor.List(ctx, supervisor.ListFilter{Status: args.Status, Limit: args.Limit})
	if err != nil {
		return errorResult(err)
	}
	return textResult(tasks)
}

func (s *Server) taskInteract(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, err := decodeArgs[struct {
		TaskID   string `json:"task_id"`
		Decision string `json:"decision"`
	}](req)
	if err != nil {
		return errorResult(err)
	}
	if err := s.deps.Supervisor.Interact(ctx, args.TaskID, supervisor.InteractDecision(args.Decision)); err != nil {
		return errorResult(err)
	}
	return textResult(map[string]any{"task_id": args.TaskID, "decision": args.Decision})
}

func (s *Server) taskCancel(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, err := decodeArgs[taskIDArgs](req)
	if err != nil {
		return errorResult(err)
	}
	if err := s.deps.Supervisor.Cancel(ctx, args.TaskID); err != nil {
		return errorResult(err)
	}
	return textResult(map[string]any{"task_id": args.TaskID, "cancelled": true})
}

type graphQueryArgs struct {
	AgentID   string `json:"agent_id"`
	SessionID string `json:"session_id"`
	Limit     int    `json:"limit"`
}

func (a graphQueryArgs) filter() causal.QueryFilter {
	return causal.QueryFilter{AgentID: a.AgentID, SessionID: a.SessionID, Limit: a.Limit}
}

func (s *Server) graphQuery(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, err := decodeArgs[graphQueryArgs](req)
	if err != nil {
		return errorResult(err)
	}
	chains, err := s.deps.Graph.Query(ctx, args.filter())
	if err != nil {
		return errorResult(err)
	}
	return textResult(chains)
}

func (s *Server) graphGetChain(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, err := decodeArgs[struct {
		DecisionID string `json:"decision_id"`
	}](req)
	if err != nil {
		return errorResult(err)
	}
	chain, err := s.deps.Graph.GetChain(ctx, args.DecisionID)
	if err != nil {
		return errorResult(err)
	}
	return textResult(chain)
}

func (s *Server) graphPatterns(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, err := decodeArgs[struct {
		graphQueryArgs
		MinOccurrences int `json:"min_occurrences"`
		TopN           int `json:"top_n"`
	}](req)
	if err != nil {
		return errorResult(err)
	}
	chains, err := s.deps.Graph.Query(ctx, args.filter())
	if err != nil {
		return errorResult(err)
	}
	return textResult(causal.FindPatterns(chains, args.MinOccurrences, args.TopN))
}

func (s *Server) graphSimilar(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, err := decodeArgs[struct {
		graphQueryArgs
		Prompt string `json:"prompt"`
		TopN   int    `json:"top_n"`
	}](req)
	if err != nil {
		return errorResult(err)
	}
	chains, err := s.deps.Graph.Query(ctx, args.filter())
	if err != nil {
		return errorResult(err)
	}
	return textResult(causal.SimilarDecisions(chains, args.Prompt, args.TopN))
}

func (s *Server) graphTrend(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, err := decodeArgs[struct {
		graphQueryArgs
		PeriodDays int `json:"period_days"`
	}](req)
	if err != nil {
		return errorResult(err)
	}
	if args.PeriodDays <= 0 {
		args.PeriodDays = 7
	}
	chains, err := s.deps.Graph.Query(ctx, args.filter())
	if err != nil {
		return errorResult(err)
	}
	return textResult(causal.TrendAnalysis(chains, args.PeriodDays, time.Now()))
}

func (s *Server) scannerScan(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, err := decodeArgs[struct {
		Text string `json:"text"`
	}](req)
	if err != nil {
		return errorResult(err)
	}
	return textResult(s.deps.Scanner.Scan(args.Text))
}

func (s *Server) vaultList(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	return textResult(s.deps.Vault.List())
}

func (s *Server) sessionList(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	infos, err := s.deps.Sessions.List()
	if err != nil {
		return errorResult(err)
	}
	return textResult(infos)
}

func (s *Server) permissionAudit(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	return textResult(s.deps.Engine.AuditEntries())
}

func (s *Server) permissionRemoteTools(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	out := map[string]any{"safe": permission.RemoteSafeTools()}
	if al := s.deps.Engine.Allowlist(); al != nil {
		out["allowlisted"] = al.Tools()
	}
	return textResult(out)
}
