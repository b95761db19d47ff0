// codecoder runtime: hosts the task supervisor, the local HTTP gateway,
// and the MCP surface over the shared knowledge database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codecoder-dev/codecoder/pkg/agent"
	"github.com/codecoder-dev/codecoder/pkg/api"
	"github.com/codecoder-dev/codecoder/pkg/causal"
	"github.com/codecoder-dev/codecoder/pkg/config"
	"github.com/codecoder-dev/codecoder/pkg/database"
	"github.com/codecoder-dev/codecoder/pkg/ident"
	"github.com/codecoder-dev/codecoder/pkg/mcp"
	"github.com/codecoder-dev/codecoder/pkg/permission"
	"github.com/codecoder-dev/codecoder/pkg/resolver"
	"github.com/codecoder-dev/codecoder/pkg/scanner"
	"github.com/codecoder-dev/codecoder/pkg/sessionstore"
	"github.com/codecoder-dev/codecoder/pkg/supervisor"
	"github.com/codecoder-dev/codecoder/pkg/trace"
	"github.com/codecoder-dev/codecoder/pkg/vault"
	"github.com/codecoder-dev/codecoder/pkg/version"
)

// Process exit codes.
const (
	exitOK     = 0
	exitConfig = 1
	exitBind   = 2
	exitSignal = 130
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func usage() {
	fmt.Fprintf(os.Stderr, `codecoder %s

Usage:
  codecoder serve [--config-dir DIR] [--port N] [--api-key K]
  codecoder mcp serve [--config-dir DIR] [--transport http|stdio] [--port N] [--api-key K]
`, version.Version)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(exitConfig)
	}

	switch os.Args[1] {
	case "serve":
		os.Exit(runServe(os.Args[2:]))
	case "mcp":
		if len(os.Args) < 3 || os.Args[2] != "serve" {
			usage()
			os.Exit(exitConfig)
		}
		os.Exit(runMCP(os.Args[3:]))
	case "version", "--version", "-v":
		fmt.Println(version.Version)
		os.Exit(exitOK)
	default:
		usage()
		os.Exit(exitConfig)
	}
}

// runtime bundles the wired services shared by the serve and mcp commands.
type runtime struct {
	cfg      *config.Config
	db       *database.Client
	vault    *vault.Vault
	resolver *resolver.Resolver
	sessions *sessionstore.Store
	graph    *causal.Store
	engine   *permission.Engine
	scanner  *scanner.Scanner
	sup      *supervisor.Supervisor
}

func (rt *runtime) close() {
	if err := rt.db.Close(); err != nil {
		slog.Error("Error closing database client", "error", err)
	}
}

// buildRuntime loads configuration and wires every service. Any failure here
// is a configuration problem.
func buildRuntime(ctx context.Context, configDir string) (*runtime, error) {
	// .env is optional; missing files are not an error.
	envPath := filepath.Join(configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("No .env file loaded", "path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}
	setupLogging(cfg.Log.Level)

	ws := config.Workspace{Root: config.ResolveWorkspace(cfg.Workspace.Path)}
	if err := ws.EnsureLayout(); err != nil {
		return nil, err
	}
	slog.Info("Workspace ready", "root", ws.Root)

	clock := ident.NewClock()
	gen := ident.NewGenerator(clock)

	sink, err := trace.NewSink(ws.ObservabilityLogDir())
	if err != nil {
		return nil, fmt.Errorf("creating trace sink: %w", err)
	}
	tracer := trace.New(traceConfig(cfg.Observability), clock, sink)

	db, err := database.NewClient(ctx, database.DefaultConfig(ws.DatabasePath()))
	if err != nil {
		return nil, fmt.Errorf("opening knowledge database: %w", err)
	}

	v, err := vault.Open(ws.VaultPath(), &vault.FileKeySource{Path: ws.VaultKeyPath()}, clock)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("opening credential vault: %w", err)
	}

	sessions, err := sessionstore.New(ws.SessionsDir())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	allowlist, err := permission.LoadAllowlist(ws.AllowlistPath())
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("loading remote-tool allowlist: %w", err)
	}

	engine := permission.NewEngine(policyFromConfig(cfg.AutoApprove), allowlist, gen)
	graph := causal.NewStore(db.Client, clock, gen)
	scan := scanner.New(scanner.Options{})

	workDir, err := os.Getwd()
	if err != nil {
		workDir = ws.Root
	}

	sup := supervisor.New(db.Client, engine, graph, tracer, scan, clock, gen,
		&agent.LocalExecutor{WorkDir: workDir},
		supervisorConfig(cfg.Supervisor))

	return &runtime{
		cfg:      cfg,
		db:       db,
		vault:    v,
		resolver: resolver.New(v, clock),
		sessions: sessions,
		graph:    graph,
		engine:   engine,
		scanner:  scan,
		sup:      sup,
	}, nil
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func traceConfig(oc config.ObservabilityConfig) trace.Config {
	tc := trace.DefaultConfig()
	if oc.Enabled != nil {
		tc.Enabled = *oc.Enabled
	}
	if oc.Level != "" {
		tc.Level = oc.Level
	}
	if oc.Sampling > 0 {
		tc.Sampling = oc.Sampling
	}
	return tc.ApplyEnv()
}

// policyFromConfig builds the auto-approve policy. File config wins when
// enabled; otherwise the CODECODER_AUTO_APPROVE* env vars decide.
func policyFromConfig(ac config.AutoApproveConfig) permission.Policy {
	if !ac.Enabled {
		return permission.PolicyFromEnv()
	}
	policy := permission.Policy{AllowedTools: ac.Tools}
	level, err := permission.ParseRiskLevel(ac.Threshold)
	if err != nil {
		slog.Warn("Invalid auto_approve.threshold, using low", "value", ac.Threshold)
		level = permission.RiskLow
	}
	if level > permission.RiskHigh {
		slog.Warn("Critical auto-approve threshold is not allowed, clamping to high")
		level = permission.RiskHigh
	}
	policy.Threshold = level
	if ac.TimeoutMS > 0 {
		policy.UnattendedTimeout = time.Duration(ac.TimeoutMS) * time.Millisecond
	}
	return policy
}

func supervisorConfig(sc config.SupervisorConfig) supervisor.Config {
	cfg := supervisor.DefaultConfig()
	if sc.Workers > 0 {
		cfg.Workers = sc.Workers
	}
	if sc.ToolTimeoutMS > 0 {
		cfg.ToolTimeout = time.Duration(sc.ToolTimeoutMS) * time.Millisecond
	}
	if sc.SubscriberDepth > 0 {
		cfg.SubscriberDepth = sc.SubscriberDepth
	}
	return cfg
}

// runServe starts the supervisor and the HTTP gateway, then blocks until a
// shutdown signal or a server error.
func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configDir := fs.String("config-dir", getEnv("CODECODER_CONFIG_DIR", "."), "configuration directory")
	port := fs.Int("port", 0, "gateway port (overrides config)")
	apiKey := fs.String("api-key", "", "gateway API key (overrides config)")
	_ = fs.Parse(args)

	ctx := context.Background()

	rt, err := buildRuntime(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize", "error", err)
		return exitConfig
	}
	defer rt.close()

	if *port != 0 {
		rt.cfg.Gateway.Port = *port
	}
	if *apiKey != "" {
		rt.cfg.Gateway.APIKey = *apiKey
	}

	// Hot reload: config changes apply to the pieces that can take them
	// live; the rest need a restart and we say so.
	watcher, err := config.NewWatcher(*configDir, rt.cfg)
	if err != nil {
		slog.Warn("Config watcher unavailable, hot reload disabled", "error", err)
	} else {
		watcher.OnReload(func(newCfg, oldCfg *config.Config) {
			if newCfg.Gateway != oldCfg.Gateway || newCfg.Supervisor != oldCfg.Supervisor {
				slog.Warn("Gateway and supervisor settings apply on next restart")
			}
			setupLogging(newCfg.Log.Level)
		})
		watcher.Start(ctx)
		defer watcher.Stop()
	}

	if err := rt.sup.Start(ctx); err != nil {
		slog.Error("Failed to start supervisor", "error", err)
		return exitConfig
	}
	defer rt.sup.Stop()

	gateway := api.NewServer(api.Deps{
		Supervisor: rt.sup,
		Vault:      rt.vault,
		Resolver:   rt.resolver,
		Sessions:   rt.sessions,
		Graph:      rt.graph,
		Engine:     rt.engine,
		Scanner:    rt.scanner,
		DB:         rt.db.DB(),
	}, rt.cfg.Gateway.APIKey)

	addr := net.JoinHostPort(rt.cfg.Gateway.Bind, fmt.Sprint(rt.cfg.Gateway.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		slog.Error("Failed to bind gateway address", "addr", addr, "error", err)
		return exitBind
	}

	httpServer := &http.Server{Handler: gateway.Router()}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Gateway listening", "addr", ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	slog.Info("codecoder started",
		"version", version.Version,
		"workers", rt.sup.Health()["workers"])

	code := exitOK
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
		if sig == syscall.SIGINT {
			code = exitSignal
		}
	case err := <-errCh:
		slog.Error("Gateway error triggered shutdown", "error", err)
		code = exitBind
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Gateway shutdown error", "error", err)
	}
	rt.sup.Stop()

	slog.Info("Shutdown complete")
	return code
}

// requireKey gates an HTTP handler on X-API-Key or a bearer token.
func requireKey(key string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := r.Header.Get("X-API-Key")
		if got == "" {
			got = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		}
		if got != key {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// runMCP serves the MCP surface over stdio or streamable HTTP.
func runMCP(args []string) int {
	fs := flag.NewFlagSet("mcp serve", flag.ExitOnError)
	configDir := fs.String("config-dir", getEnv("CODECODER_CONFIG_DIR", "."), "configuration directory")
	transport := fs.String("transport", "stdio", "transport: stdio or http")
	port := fs.Int("port", 8421, "HTTP transport port")
	apiKey := fs.String("api-key", "", "require this key on the HTTP transport")
	_ = fs.Parse(args)

	if *transport != "stdio" && *transport != "http" {
		slog.Error("Unknown transport", "transport", *transport)
		return exitConfig
	}

	// stdout carries the protocol on stdio; logging must stay on stderr.
	setupLogging(getEnv("CODECODER_LOG_LEVEL", "info"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	rt, err := buildRuntime(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize", "error", err)
		return exitConfig
	}
	defer rt.close()

	if err := rt.sup.Start(ctx); err != nil {
		slog.Error("Failed to start supervisor", "error", err)
		return exitConfig
	}
	defer rt.sup.Stop()

	server := mcp.NewServer(mcp.Deps{
		Supervisor: rt.sup,
		Vault:      rt.vault,
		Sessions:   rt.sessions,
		Graph:      rt.graph,
		Engine:     rt.engine,
		Scanner:    rt.scanner,
	}, rt.cfg.MCP.EnabledTools)

	if *transport == "stdio" {
		slog.Info("MCP serving on stdio", "version", version.Version)
		if err := server.RunStdio(ctx); err != nil && ctx.Err() == nil {
			slog.Error("MCP stdio server error", "error", err)
			return exitConfig
		}
		if ctx.Err() != nil {
			return exitSignal
		}
		return exitOK
	}

	addr := net.JoinHostPort("127.0.0.1", fmt.Sprint(*port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		slog.Error("Failed to bind MCP address", "addr", addr, "error", err)
		return exitBind
	}

	var handler http.Handler = server.HTTPHandler()
	if *apiKey != "" {
		handler = requireKey(*apiKey, handler)
	}

	httpServer := &http.Server{Handler: handler}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("MCP serving over HTTP", "addr", ln.Addr().String())
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	code := exitOK
	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
		code = exitSignal
	case err := <-errCh:
		slog.Error("MCP server error triggered shutdown", "error", err)
		code = exitBind
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("MCP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
	return code
}
