// Package supervisor owns the task state machine: it creates, runs, parks,
// resumes, and terminates agent tasks, mediates their tool calls through the
// permission engine, and records every side effect in the causal graph.
package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codecoder-dev/codecoder/ent"
	entperm "github.com/codecoder-dev/codecoder/ent/permissionrequest"
	enttask "github.com/codecoder-dev/codecoder/ent/task"
	"github.com/codecoder-dev/codecoder/pkg/agent"
	"github.com/codecoder-dev/codecoder/pkg/causal"
	"github.com/codecoder-dev/codecoder/pkg/events"
	"github.com/codecoder-dev/codecoder/pkg/ident"
	"github.com/codecoder-dev/codecoder/pkg/permission"
	"github.com/codecoder-dev/codecoder/pkg/scanner"
	"github.com/codecoder-dev/codecoder/pkg/trace"
)

// terminal statuses are sticky.
func isTerminal(status enttask.Status) bool {
	switch status {
	case enttask.StatusCompleted, enttask.StatusFailed, enttask.StatusCancelled:
		return true
	}
	return false
}

// approvalDecision is what Interact hands to a parked task.
type approvalDecision struct {
	approve bool
	scope   permission.Scope
}

// pendingApproval is one permission parking a task. It stays registered
// (decided=true) until the task moves on, which is what makes a second
// interact() report ErrAlreadyDecided instead of ErrNoPendingPermission.
type pendingApproval struct {
	permissionID string
	tool         string
	risk         permission.RiskLevel
	decision     chan approvalDecision
	decided      bool
}

// Supervisor is the process-wide task service. Construct once in main.
type Supervisor struct {
	client   *ent.Client
	bus      *events.Bus
	engine   *permission.Engine
	graph    *causal.Store
	tracer   *trace.Tracer
	scan     *scanner.Scanner
	clock    *ident.Clock
	gen      *ident.Generator
	executor agent.Executor
	cfg      Config
	logger   *slog.Logger

	// newRunner is swappable so tests can script agents.
	newRunner func(spec agent.Spec) (agent.Runner, error)

	// mu guards the registries below. Lock order: mu before any causal or
	// vault write, never the other way around.
	mu      sync.Mutex
	pending map[string]*pendingApproval
	always  map[string]map[string]bool
	cancels map[string]context.CancelFunc
	counts  map[string]*execCounts

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool
}

// New creates a Supervisor. The bus is created internally with the
// configured subscriber depth.
func New(client *ent.Client, engine *permission.Engine, graph *causal.Store,
	tracer *trace.Tracer, scan *scanner.Scanner, clock *ident.Clock,
	gen *ident.Generator, executor agent.Executor, cfg Config) *Supervisor {

	cfg = cfg.withDefaults()
	return &Supervisor{
		client:   client,
		bus:      events.NewBus(cfg.SubscriberDepth),
		engine:   engine,
		graph:    graph,
		tracer:   tracer,
		scan:     scan,
		clock:    clock,
		gen:      gen,
		executor: executor,
		cfg:      cfg,
		logger:   slog.Default().With("component", "supervisor"),
		newRunner: func(spec agent.Spec) (agent.Runner, error) {
			return agent.New(agent.Kind(spec.AgentID), spec)
		},
		pending: make(map[string]*pendingApproval),
		always:  make(map[string]map[string]bool),
		cancels: make(map[string]context.CancelFunc),
		counts:  make(map[string]*execCounts),
		stopCh:  make(chan struct{}),
	}
}

// Bus exposes the event fanout for the API layer.
func (s *Supervisor) Bus() *events.Bus { return s.bus }

// Submit validates and persists a new pending task. Remote prompts are
// scanned for injection; a detected prompt is replaced by its sanitized form
// before any agent sees it.
func (s *Supervisor) Submit(ctx context.Context, in SubmitInput) (*ent.Task, error) {
	if in.AgentID == "" {
		return nil, fmt.Errorf("%w: agent_id required", ErrUnknownAgent)
	}
	if !agent.Known(agent.Kind(in.AgentID)) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, in.AgentID)
	}
	if in.Prompt == "" {
		return nil, causal.NewValidationError("prompt", "required")
	}
	if in.Source == "" {
		in.Source = permission.SourceLocal
	}

	prompt := in.Prompt
	taskID := s.gen.New(ident.PrefixTask)

	if result := s.scan.Scan(in.Prompt); result.Detected {
		s.logger.Warn("Prompt tripped injection scanner",
			"task_id", taskID, "confidence", result.Confidence, "source", in.Source)
		s.bus.Publish(taskID, events.EventTypePromptScan, map[string]any{
			"confidence": result.Confidence,
			"patterns":   len(result.Patterns),
		})
		if in.Source == permission.SourceRemote {
			if result.Sanitized == "" {
				return nil, ErrPromptRejected
			}
			prompt = result.Sanitized
		}
	}

	task, err := s.client.Task.Create().
		SetID(taskID).
		SetAgentID(in.AgentID).
		SetPrompt(prompt).
		SetUserID(in.UserID).
		SetPlatform(in.Platform).
		SetSource(enttask.Source(in.Source)).
		SetStatus(enttask.StatusPending).
		SetCreatedAt(s.clock.Now()).
		SetUpdatedAt(s.clock.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.publishStatus(task.ID, enttask.StatusPending)
	return task, nil
}

// Get returns one task.
func (s *Supervisor) Get(ctx context.Context, taskID string) (*ent.Task, error) {
	task, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	return task, nil
}

// List returns tasks, newest first.
func (s *Supervisor) List(ctx context.Context, filter ListFilter) ([]*ent.Task, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	q := s.client.Task.Query()
	if filter.Status != "" {
		q = q.Where(enttask.StatusEQ(enttask.Status(filter.Status)))
	}
	tasks, err := q.
		Order(ent.Desc(enttask.FieldCreatedAt), ent.Asc(enttask.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Interact resolves a task's pending permission. Repeated calls for the same
// permission return ErrAlreadyDecided; calls on a terminal task return
// ErrTerminalState.
func (s *Supervisor) Interact(ctx context.Context, taskID string, decision InteractDecision) error {
	task, err := s.Get(ctx, taskID)
	if err != nil {
		return err
	}
	if isTerminal(task.Status) {
		return ErrTerminalState
	}

	s.mu.Lock()
	p := s.pending[taskID]
	if p == nil {
		s.mu.Unlock()
		return ErrNoPendingPermission
	}
	if p.decided {
		s.mu.Unlock()
		return ErrAlreadyDecided
	}
	p.decided = true
	s.mu.Unlock()

	approve := decision != DecisionReject
	scope := permission.ScopeOnce
	if decision == DecisionApproveAlways {
		scope = permission.ScopeAlways
	}

	if err := s.resolvePermission(ctx, p.permissionID, decision); err != nil {
		s.logger.Error("Failed to persist permission resolution",
			"task_id", taskID, "permission_id", p.permissionID, "error", err)
	}
	s.engine.RecordHumanDecision(p.permissionID, p.tool, p.risk, approve, "resolved via interact")

	// Buffered channel; the parked task is the only receiver.
	p.decision <- approvalDecision{approve: approve, scope: scope}
	return nil
}

func (s *Supervisor) resolvePermission(ctx context.Context, permissionID string, decision InteractDecision) error {
	return s.client.PermissionRequest.UpdateOneID(permissionID).
		SetDecision(permissionDecision(decision)).
		SetDecidedBy(entperm.DecidedByHuman).
		SetDecidedAt(s.clock.Now()).
		Exec(ctx)
}

// Cancel requests cooperative cancellation of a running or parked task.
// Pending tasks are cancelled directly.
func (s *Supervisor) Cancel(ctx context.Context, taskID string) error {
	task, err := s.Get(ctx, taskID)
	if err != nil {
		return err
	}
	if isTerminal(task.Status) {
		return ErrTerminalState
	}

	s.mu.Lock()
	cancel := s.cancels[taskID]
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		return nil
	}

	// Not claimed by a worker yet.
	if err := s.setStatus(ctx, taskID, enttask.StatusCancelled, ""); err != nil {
		return err
	}
	s.bus.EndStream(taskID)
	return nil
}

// Delete cancels a task if needed and removes its row. Causal nodes survive;
// the graph is the durable record.
func (s *Supervisor) Delete(ctx context.Context, taskID string) error {
	task, err := s.Get(ctx, taskID)
	if err != nil {
		return err
	}
	if !isTerminal(task.Status) {
		if err := s.Cancel(ctx, taskID); err != nil && err != ErrTerminalState {
			return err
		}
	}

	if err := s.client.Task.DeleteOneID(taskID).Exec(ctx); err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	s.bus.Drop(taskID)
	return nil
}

// Subscribe streams a task's events starting after sinceSeq.
func (s *Supervisor) Subscribe(taskID string, sinceSeq int64) (<-chan events.Event, func()) {
	return s.bus.Subscribe(taskID, sinceSeq)
}

// setStatus persists a status transition and publishes it. Terminal states
// are never overwritten.
func (s *Supervisor) setStatus(ctx context.Context, taskID string, status enttask.Status, errMsg string) error {
	update := s.client.Task.UpdateOneID(taskID).
		Where(enttask.StatusNotIn(enttask.StatusCompleted, enttask.StatusFailed, enttask.StatusCancelled)).
		SetStatus(status).
		SetUpdatedAt(s.clock.Now())
	if errMsg != "" {
		update = update.SetError(errMsg)
	}
	if status != enttask.StatusAwaitingApproval {
		update = update.ClearPendingPermissionID()
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrTerminalState
		}
		return fmt.Errorf("failed to update task status: %w", err)
	}
	s.publishStatus(taskID, status)
	switch status {
	case enttask.StatusFailed:
		s.publishFinish(taskID, false, "", errMsg)
	case enttask.StatusCancelled:
		s.publishFinish(taskID, false, "", "cancelled")
	}
	return nil
}

func (s *Supervisor) publishStatus(taskID string, status enttask.Status) {
	s.bus.Publish(taskID, events.EventTypeTaskStatus, map[string]any{
		"status":    string(status),
		"timestamp": time.Now().Format(time.RFC3339Nano),
	})
}

// publishFinish is the last event on a task stream before it closes. It
// carries the final output on success and the failure reason otherwise.
func (s *Supervisor) publishFinish(taskID string, success bool, output, errMsg string) {
	payload := map[string]any{"success": success}
	if output != "" {
		payload["output"] = output
	}
	if errMsg != "" {
		payload["error"] = errMsg
	}
	s.bus.Publish(taskID, events.EventTypeFinish, payload)
}

func permissionDecision(d InteractDecision) entperm.Decision {
	switch d {
	case DecisionApproveAlways:
		return entperm.DecisionAlways
	case DecisionReject:
		return entperm.DecisionReject
	default:
		return entperm.DecisionOnce
	}
}
