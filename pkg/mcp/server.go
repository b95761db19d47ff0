// Package mcp exposes the runtime to MCP clients: task, graph, vault,
// scanner, and permission operations as tools, plus read-only resources for
// the audit log and graph statistics.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/codecoder-dev/codecoder/pkg/causal"
	"github.com/codecoder-dev/codecoder/pkg/permission"
	"github.com/codecoder-dev/codecoder/pkg/scanner"
	"github.com/codecoder-dev/codecoder/pkg/sessionstore"
	"github.com/codecoder-dev/codecoder/pkg/supervisor"
	"github.com/codecoder-dev/codecoder/pkg/vault"
	"github.com/codecoder-dev/codecoder/pkg/version"
)

// Deps are the services the MCP surface fronts. Nil services disable their
// tools.
type Deps struct {
	Supervisor *supervisor.Supervisor
	Vault      *vault.Vault
	Sessions   *sessionstore.Store
	Graph      *causal.Store
	Engine     *permission.Engine
	Scanner    *scanner.Scanner
}

// Server wraps the SDK server with tool filtering.
type Server struct {
	deps    Deps
	sdk     *mcpsdk.Server
	enabled []string
	logger  *slog.Logger
}

// NewServer builds the MCP server. enabledTools filters which tools are
// registered; empty means all.
func NewServer(deps Deps, enabledTools []string) *Server {
	s := &Server{
		deps:    deps,
		enabled: enabledTools,
		logger:  slog.Default().With("component", "mcp"),
	}
	s.sdk = mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    "codecoder",
		Version: version.Version,
	}, nil)
	s.registerTools()
	s.registerResources()
	s.registerPrompts()
	return s
}

// Run serves MCP over the given transport until ctx is cancelled.
func (s *Server) Run(ctx context.Context, transport mcpsdk.Transport) error {
	return s.sdk.Run(ctx, transport)
}

// RunStdio serves MCP over stdin/stdout.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.Run(ctx, &mcpsdk.StdioTransport{})
}

// HTTPHandler returns the streamable HTTP handler for mounting under a mux.
func (s *Server) HTTPHandler() http.Handler {
	return mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server {
		return s.sdk
	}, nil)
}

// toolEnabled applies the enabled-tools allowlist.
func (s *Server) toolEnabled(name string) bool {
	if len(s.enabled) == 0 {
		return true
	}
	return slices.Contains(s.enabled, name)
}

// addTool registers one tool unless filtered out.
func (s *Server) addTool(name, description string, schema json.RawMessage, handler mcpsdk.ToolHandler) {
	if !s.toolEnabled(name) {
		return
	}
	var js jsonschema.Schema
	if err := json.Unmarshal(schema, &js); err != nil {
		panic(fmt.Sprintf("invalid tool schema for %s: %v", name, err))
	}
	s.sdk.AddTool(&mcpsdk.Tool{
		Name:        name,
		Description: description,
		InputSchema: &js,
	}, handler)
}

// textResult marshals v to JSON and wraps it as a text content result.
func textResult(v any) (*mcpsdk.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil
}

// errorResult reports a tool-level failure without failing the protocol call.
func errorResult(err error) (*mcpsdk.CallToolResult, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: err.Error()}},
		IsError: true,
	}, nil
}

func decodeArgs[T any](req *mcpsdk.CallToolRequest) (T, error) {
	var v T
	if len(req.Params.Arguments) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(req.Params.Arguments, &v); err != nil {
		return v, fmt.Errorf("invalid arguments: %w", err)
	}
	return v, nil
}

// registerResources exposes read-only views as MCP resources.
func (s *Server) registerResources() {
	if s.deps.Engine != nil {
		s.sdk.AddResource(&mcpsdk.Resource{
			URI:         "codecoder://permission/audit",
			Name:        "permission-audit",
			Description: "Recent permission decisions, oldest first.",
			MIMEType:    "application/json",
		}, func(_ context.Context, req *mcpsdk.ReadResourceRequest) (*mcpsdk.ReadResourceResult, error) {
			data, err := json.MarshalIndent(s.deps.Engine.AuditEntries(), "", "  ")
			if err != nil {
				return nil, err
			}
			return &mcpsdk.ReadResourceResult{
				Contents: []*mcpsdk.ResourceContents{{
					URI:      req.Params.URI,
					MIMEType: "application/json",
					Text:     string(data),
				}},
			}, nil
		})
	}
	if s.deps.Graph != nil {
		s.sdk.AddResource(&mcpsdk.Resource{
			URI:         "codecoder://graph/stats",
			Name:        "graph-stats",
			Description: "Aggregate causal graph statistics.",
			MIMEType:    "application/json",
		}, func(ctx context.Context, req *mcpsdk.ReadResourceRequest) (*mcpsdk.ReadResourceResult, error) {
			stats, err := s.deps.Graph.Stats(ctx)
			if err != nil {
				return nil, err
			}
			data, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return nil, err
			}
			return &mcpsdk.ReadResourceResult{
				Contents: []*mcpsdk.ResourceContents{{
					URI:      req.Params.URI,
					MIMEType: "application/json",
					Text:     string(data),
				}},
			}, nil
		})
	}
}

// registerPrompts exposes canned prompt templates.
func (s *Server) registerPrompts() {
	if s.deps.Graph == nil {
		return
	}
	s.sdk.AddPrompt(&mcpsdk.Prompt{
		Name:        "review_agent_history",
		Description: "Summarize an agent's decision history from the causal graph.",
		Arguments: []*mcpsdk.PromptArgument{
			{Name: "agent_id", Description: "Agent to review.", Required: true},
		},
	}, func(ctx context.Context, req *mcpsdk.GetPromptRequest) (*mcpsdk.GetPromptResult, error) {
		agentID := req.Params.Arguments["agent_id"]
		if agentID == "" {
			return nil, fmt.Errorf("agent_id argument required")
		}
		chains, err := s.deps.Graph.Query(ctx, causal.QueryFilter{AgentID: agentID})
		if err != nil {
			return nil, err
		}
		insight := causal.AgentInsights(chains, agentID)
		data, err := json.MarshalIndent(insight, "", "  ")
		if err != nil {
			return nil, err
		}
		return &mcpsdk.GetPromptResult{
			Description: "Agent history review",
			Messages: []*mcpsdk.PromptMessage{{
				Role: "user",
				Content: &mcpsdk.TextContent{
					Text: fmt.Sprintf("Review this agent's recorded history and point out recurring failures:\n%s", data),
				},
			}},
		}, nil
	})
}
