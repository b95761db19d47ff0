// Package api exposes the runtime over a local HTTP surface: a namespaced
// RPC dispatcher, an anonymous health endpoint, and websocket event streams.
package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codecoder-dev/codecoder/pkg/causal"
	"github.com/codecoder-dev/codecoder/pkg/database"
	"github.com/codecoder-dev/codecoder/pkg/permission"
	"github.com/codecoder-dev/codecoder/pkg/resolver"
	"github.com/codecoder-dev/codecoder/pkg/scanner"
	"github.com/codecoder-dev/codecoder/pkg/sessionstore"
	"github.com/codecoder-dev/codecoder/pkg/supervisor"
	"github.com/codecoder-dev/codecoder/pkg/vault"
	"github.com/codecoder-dev/codecoder/pkg/version"
)

// Deps are the services the API fronts. Nil services disable their methods.
type Deps struct {
	Supervisor *supervisor.Supervisor
	Vault      *vault.Vault
	Resolver   *resolver.Resolver
	Sessions   *sessionstore.Store
	Graph      *causal.Store
	Engine     *permission.Engine
	Scanner    *scanner.Scanner
	DB         *sql.DB
}

// Server is the HTTP gateway.
type Server struct {
	deps    Deps
	apiKey  string
	logger  *slog.Logger
	methods map[string]rpcHandler
}

// NewServer builds the gateway. An empty apiKey disables authentication,
// which is only sane for loopback binds.
func NewServer(deps Deps, apiKey string) *Server {
	s := &Server{
		deps:   deps,
		apiKey: apiKey,
		logger: slog.Default().With("component", "api"),
	}
	s.methods = s.methodTable()
	return s
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.handleHealth)

	authed := r.Group("/", s.authMiddleware())
	authed.POST("/rpc", s.handleRPC)
	authed.GET("/ws", s.handleWS)
	return r
}

// authMiddleware accepts either "Authorization: Bearer <key>" or an
// "X-API-Key" header. It rejects before any dispatch happens.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.apiKey == "" {
			c.Next()
			return
		}

		key := c.GetHeader("X-API-Key")
		if key == "" {
			if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				key = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if key != s.apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, rpcResponse{
				Error: &rpcError{Code: codeUnauthorized, Message: "missing or invalid API key"},
			})
			return
		}
		c.Next()
	}
}

// handleHealth reports liveness for the process and its dependencies. It is
// deliberately anonymous so orchestration probes need no key.
func (s *Server) handleHealth(c *gin.Context) {
	out := gin.H{"status": "ok", "version": version.Version}
	status := http.StatusOK

	if s.deps.DB != nil {
		dbHealth, err := database.Health(c.Request.Context(), s.deps.DB)
		if err != nil {
			out["status"] = "degraded"
			out["database"] = gin.H{"error": err.Error()}
			status = http.StatusServiceUnavailable
		} else {
			out["database"] = dbHealth
		}
	}
	if s.deps.Supervisor != nil {
		out["supervisor"] = s.deps.Supervisor.Health()
	}
	c.JSON(status, out)
}

// handleRPC decodes the envelope and dispatches to the method table. The
// method key is "<namespace>.<method>"; callers may send the namespace as a
// separate field or folded into method. Args also travels as "params".
func (s *Server) handleRPC(c *gin.Context) {
	var req struct {
		Namespace string          `json:"namespace"`
		Method    string          `json:"method"`
		Args      json.RawMessage `json:"args"`
		Params    json.RawMessage `json:"params"`
		ID        json.RawMessage `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, rpcResponse{
			Error: &rpcError{Code: codeInvalidArgument, Message: "malformed request body"},
		})
		return
	}

	method := req.Method
	if req.Namespace != "" {
		method = req.Namespace + "." + req.Method
	}
	args := req.Args
	if args == nil {
		args = req.Params
	}

	handler, ok := s.methods[method]
	if !ok {
		c.JSON(http.StatusNotFound, rpcResponse{
			Error: &rpcError{Code: codeUnknownMethod, Message: "unknown method " + method},
			ID:    req.ID,
		})
		return
	}

	result, err := handler(c.Request.Context(), args)
	if err != nil {
		status, rpcErr := mapError(err)
		s.logger.Debug("RPC method failed", "method", method, "code", rpcErr.Code)
		c.JSON(status, rpcResponse{Error: rpcErr, ID: req.ID})
		return
	}
	c.JSON(http.StatusOK, rpcResponse{Result: result, ID: req.ID})
}

// rpcHandler is one dispatched method.
type rpcHandler func(ctx context.Context, params json.RawMessage) (any, error)
