package supervisor

import (
	"context"
	"fmt"
	"time"

	"github.com/codecoder-dev/codecoder/ent"
	entperm "github.com/codecoder-dev/codecoder/ent/permissionrequest"
	enttask "github.com/codecoder-dev/codecoder/ent/task"
	"github.com/codecoder-dev/codecoder/pkg/agent"
	"github.com/codecoder-dev/codecoder/pkg/causal"
	"github.com/codecoder-dev/codecoder/pkg/events"
	"github.com/codecoder-dev/codecoder/pkg/permission"
	"github.com/codecoder-dev/codecoder/pkg/trace"
)

// runTask drives one claimed task to a terminal state. Called from a worker
// goroutine; the whole run happens inside one trace.
func (s *Supervisor) runTask(task *ent.Task) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.mu.Lock()
	s.cancels[task.ID] = cancel
	s.counts[task.ID] = &execCounts{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.cancels, task.ID)
		delete(s.counts, task.ID)
		delete(s.pending, task.ID)
		delete(s.always, task.ID)
		s.mu.Unlock()
		s.bus.EndStream(task.ID)
	}()

	err := s.tracer.RunWithContext(ctx, "supervisor", func(ctx context.Context) error {
		return s.execute(ctx, task)
	})
	if err != nil {
		s.logger.Error("Task run ended with error", "task_id", task.ID, "error", err)
	}
}

func (s *Supervisor) execute(ctx context.Context, task *ent.Task) error {
	s.tracer.Log(ctx, trace.EventFunctionStart, map[string]any{
		"task_id": task.ID, "agent_id": task.AgentID,
	}, trace.LevelInfo, trace.LogOptions{FunctionName: "execute"})

	decisionID, err := s.graph.RecordDecision(ctx, causal.DecisionInput{
		SessionID:  task.ID,
		AgentID:    task.AgentID,
		Prompt:     task.Prompt,
		Reasoning:  "task execution",
		Confidence: 1,
		Context:    map[string]any{"source": string(task.Source)},
	})
	if err != nil {
		return s.failTask(ctx, task.ID, fmt.Sprintf("failed to record decision: %v", err))
	}

	runner, err := s.newRunner(agent.Spec{TaskID: task.ID, AgentID: task.AgentID, Prompt: task.Prompt})
	if err != nil {
		return s.failTask(ctx, task.ID, err.Error())
	}

	var prev *agent.ToolResult
	for {
		if ctx.Err() != nil {
			return s.cancelTask(ctx, task.ID, decisionID)
		}

		step, err := runner.Next(ctx, prev)
		if err != nil {
			msg := fmt.Sprintf("agent error: %v", err)
			s.recordTerminalFailure(context.WithoutCancel(ctx), decisionID, "agent error", msg)
			return s.failTask(ctx, task.ID, msg)
		}

		if step.Thought != "" {
			s.bus.Publish(task.ID, events.EventTypeThought, map[string]any{"thought": step.Thought})
			s.tracer.Log(ctx, trace.EventPoint, map[string]any{"thought": step.Thought},
				trace.LevelDebug, trace.LogOptions{FunctionName: "execute"})
			// Each thought opens a new decision; later actions hang off the
			// most recent one.
			id, derr := s.graph.RecordDecision(ctx, causal.DecisionInput{
				SessionID:  task.ID,
				AgentID:    task.AgentID,
				Prompt:     task.Prompt,
				Reasoning:  step.Thought,
				Confidence: 1,
				Context:    map[string]any{"source": string(task.Source)},
			})
			if derr != nil {
				s.logger.Error("Failed to record thought decision", "task_id", task.ID, "error", derr)
			} else {
				decisionID = id
			}
		}

		if step.Done() {
			return s.completeTask(ctx, task.ID, step.Final)
		}
		if step.Tool == nil {
			prev = nil
			continue
		}

		result, terminalErr := s.runTool(ctx, task, decisionID, *step.Tool)
		if terminalErr != nil {
			return terminalErr
		}
		prev = result
	}
}

// runTool gates one tool call through the permission engine, executes it,
// and records the action and its outcome in the causal graph. A non-nil
// error means the task reached a terminal state.
func (s *Supervisor) runTool(ctx context.Context, task *ent.Task, decisionID string, call agent.ToolCall) (*agent.ToolResult, error) {
	s.mu.Lock()
	counts := s.counts[task.ID]
	counts.iteration++
	s.mu.Unlock()

	approved, permissionID, reason, err := s.authorize(ctx, task, call)
	if err != nil {
		if ctx.Err() != nil {
			return nil, s.cancelTask(ctx, task.ID, decisionID)
		}
		return nil, s.failTask(ctx, task.ID, err.Error())
	}
	if !approved {
		s.recordRejectedAction(ctx, decisionID, call, reason)
		return nil, s.failTask(ctx, task.ID, fmt.Sprintf("permission_rejected: %s", call.Name))
	}

	s.bus.Publish(task.ID, events.EventTypeToolCall, map[string]any{
		"tool":          call.Name,
		"permission_id": permissionID,
	})
	s.tracer.Log(ctx, trace.EventAPICallStart, map[string]any{"tool": call.Name},
		trace.LevelInfo, trace.LogOptions{FunctionName: "runTool"})

	started := s.clock.Now()
	toolCtx, cancel := context.WithTimeout(ctx, s.cfg.ToolTimeout)
	result := s.executor.Execute(toolCtx, call)
	cancel()
	durationMS := time.Since(started).Milliseconds()

	durationF := float64(durationMS)
	s.tracer.Log(ctx, trace.EventAPICallEnd, map[string]any{
		"tool": call.Name, "error": result.Err,
	}, trace.LevelInfo, trace.LogOptions{FunctionName: "runTool", DurationMS: &durationF})

	s.mu.Lock()
	if result.Err == "" {
		counts.successes++
	} else {
		counts.errors++
	}
	s.mu.Unlock()

	s.recordToolAction(ctx, decisionID, call, result, durationMS)

	s.bus.Publish(task.ID, events.EventTypeToolResult, map[string]any{
		"tool":        call.Name,
		"error":       result.Err,
		"duration_ms": durationMS,
	})
	return &result, nil
}

// authorize decides one tool call: always-scope cache, then the engine, then
// a human if the engine defers. Returns approved, the permission id, and a
// rejection reason.
func (s *Supervisor) authorize(ctx context.Context, task *ent.Task, call agent.ToolCall) (bool, string, string, error) {
	s.mu.Lock()
	if s.always[task.ID][call.Name] {
		s.mu.Unlock()
		return true, "", "", nil
	}
	counts := s.counts[task.ID]
	exec := permission.ExecutionContext{
		SessionID:          task.ID,
		Iteration:          counts.iteration,
		Errors:             counts.errors,
		Successes:          counts.successes,
		ProjectSensitivity: s.cfg.ProjectSensitivity,
		TimeOfDay:          timeOfDay(s.clock.Now()),
		Unattended:         task.Source == enttask.SourceScheduled,
	}
	s.mu.Unlock()

	decision := s.engine.Evaluate(ctx, permission.Request{
		Tool:  call.Name,
		Input: call.Input,
		Context: permission.TaskContext{
			Source:    permission.TaskSource(task.Source),
			UserID:    task.UserID,
			SessionID: task.ID,
		},
		Exec: exec,
	})

	if err := s.persistPermission(ctx, task.ID, call, decision); err != nil {
		s.logger.Error("Failed to persist permission request",
			"task_id", task.ID, "permission_id", decision.PermissionID, "error", err)
	}

	switch decision.Verdict {
	case permission.VerdictApproved:
		if decision.Scope == permission.ScopeAlways {
			s.rememberAlways(task.ID, call.Name)
		}
		return true, decision.PermissionID, "", nil
	case permission.VerdictRejected:
		return false, decision.PermissionID, decision.Reason, nil
	default:
		return s.awaitHuman(ctx, task, call, decision)
	}
}

// awaitHuman parks the task in awaiting_approval until Interact resolves the
// permission or the task is cancelled.
func (s *Supervisor) awaitHuman(ctx context.Context, task *ent.Task, call agent.ToolCall, decision permission.Decision) (bool, string, string, error) {
	p := &pendingApproval{
		permissionID: decision.PermissionID,
		tool:         call.Name,
		risk:         decision.Risk,
		decision:     make(chan approvalDecision, 1),
	}
	s.mu.Lock()
	s.pending[task.ID] = p
	s.mu.Unlock()

	err := s.client.Task.UpdateOneID(task.ID).
		SetStatus(enttask.StatusAwaitingApproval).
		SetPendingPermissionID(decision.PermissionID).
		SetUpdatedAt(s.clock.Now()).
		Exec(ctx)
	if err != nil {
		return false, decision.PermissionID, "", fmt.Errorf("failed to park task: %w", err)
	}
	s.publishStatus(task.ID, enttask.StatusAwaitingApproval)
	s.bus.Publish(task.ID, events.EventTypeAwaitingApproval, map[string]any{
		"permission_id": decision.PermissionID,
		"tool":          call.Name,
		"risk":          decision.Risk.String(),
		"reason":        decision.Reason,
	})

	var resolved approvalDecision
	select {
	case resolved = <-p.decision:
	case <-ctx.Done():
		return false, decision.PermissionID, "", ctx.Err()
	}

	s.mu.Lock()
	delete(s.pending, task.ID)
	s.mu.Unlock()

	s.bus.Publish(task.ID, events.EventTypePermissionDecided, map[string]any{
		"permission_id": decision.PermissionID,
		"approved":      resolved.approve,
		"scope":         string(resolved.scope),
	})

	if !resolved.approve {
		return false, decision.PermissionID, "rejected by human", nil
	}
	if resolved.scope == permission.ScopeAlways {
		s.rememberAlways(task.ID, call.Name)
	}
	if err := s.setStatus(ctx, task.ID, enttask.StatusRunning, ""); err != nil {
		return false, decision.PermissionID, "", err
	}
	return true, decision.PermissionID, "", nil
}

func (s *Supervisor) rememberAlways(taskID, tool string) {
	s.mu.Lock()
	if s.always[taskID] == nil {
		s.always[taskID] = make(map[string]bool)
	}
	s.always[taskID][tool] = true
	s.mu.Unlock()
}

// persistPermission writes the permission request row, including the
// resolution for decisions the engine made itself.
func (s *Supervisor) persistPermission(ctx context.Context, taskID string, call agent.ToolCall, d permission.Decision) error {
	create := s.client.PermissionRequest.Create().
		SetID(d.PermissionID).
		SetTaskID(taskID).
		SetTool(call.Name).
		SetInput(call.Input).
		SetRiskLevel(entperm.RiskLevel(d.Risk.String())).
		SetAssessmentReason(d.Reason).
		SetCreatedAt(s.clock.Now())

	switch d.Verdict {
	case permission.VerdictApproved:
		resolution := entperm.DecisionOnce
		if d.Scope == permission.ScopeAlways {
			resolution = entperm.DecisionAlways
		}
		create = create.
			SetDecision(resolution).
			SetDecidedBy(entperm.DecidedBy(d.DecidedBy)).
			SetDecidedAt(s.clock.Now())
	case permission.VerdictRejected:
		create = create.
			SetDecision(entperm.DecisionReject).
			SetDecidedBy(entperm.DecidedBy(d.DecidedBy)).
			SetDecidedAt(s.clock.Now())
	}
	return create.Exec(ctx)
}

func (s *Supervisor) recordToolAction(ctx context.Context, decisionID string, call agent.ToolCall, result agent.ToolResult, durationMS int64) {
	actionID, err := s.graph.RecordAction(ctx, decisionID, causal.ActionInput{
		Type:        actionTypeFor(call.Name),
		Description: fmt.Sprintf("%s tool call", call.Name),
		Input:       call.Input,
		Output:      result.Output,
		DurationMS:  &durationMS,
	})
	if err != nil {
		s.logger.Error("Failed to record action", "decision_id", decisionID, "error", err)
		return
	}

	outcome := causal.OutcomeInput{Status: causal.OutcomeSuccess, Description: "tool succeeded"}
	if result.Err != "" {
		outcome = causal.OutcomeInput{
			Status:      causal.OutcomeFailure,
			Description: "tool failed",
			Feedback:    result.Err,
		}
	}
	if _, err := s.graph.RecordOutcome(ctx, actionID, outcome); err != nil {
		s.logger.Error("Failed to record outcome", "action_id", actionID, "error", err)
	}
}

func (s *Supervisor) recordRejectedAction(ctx context.Context, decisionID string, call agent.ToolCall, reason string) {
	actionID, err := s.graph.RecordAction(ctx, decisionID, causal.ActionInput{
		Type:        actionTypeFor(call.Name),
		Description: fmt.Sprintf("%s tool call (not executed)", call.Name),
		Input:       call.Input,
	})
	if err != nil {
		s.logger.Error("Failed to record rejected action", "decision_id", decisionID, "error", err)
		return
	}
	_, err = s.graph.RecordOutcome(ctx, actionID, causal.OutcomeInput{
		Status:      causal.OutcomeFailure,
		Description: "permission_rejected",
		Feedback:    reason,
	})
	if err != nil {
		s.logger.Error("Failed to record rejected outcome", "action_id", actionID, "error", err)
	}
}

func (s *Supervisor) completeTask(ctx context.Context, taskID, output string) error {
	err := s.client.Task.UpdateOneID(taskID).
		Where(enttask.StatusNotIn(enttask.StatusCompleted, enttask.StatusFailed, enttask.StatusCancelled)).
		SetStatus(enttask.StatusCompleted).
		SetOutput(output).
		SetUpdatedAt(s.clock.Now()).
		ClearPendingPermissionID().
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrTerminalState
		}
		return fmt.Errorf("failed to complete task: %w", err)
	}
	s.bus.Publish(taskID, events.EventTypeOutput, map[string]any{"output": output})
	s.publishStatus(taskID, enttask.StatusCompleted)
	s.publishFinish(taskID, true, output, "")
	return nil
}

func (s *Supervisor) failTask(ctx context.Context, taskID, errMsg string) error {
	// The run context may already be cancelled; terminal writes still go
	// through.
	return s.setStatus(context.WithoutCancel(ctx), taskID, enttask.StatusFailed, errMsg)
}

func (s *Supervisor) cancelTask(ctx context.Context, taskID, decisionID string) error {
	ctx = context.WithoutCancel(ctx)
	s.recordTerminalFailure(ctx, decisionID, "task cancelled", "cancelled")
	return s.setStatus(ctx, taskID, enttask.StatusCancelled, "")
}

// recordTerminalFailure closes a decision chain when the run dies between
// tool calls: cancellation or an agent boundary error. The graph keeps its
// shape (every outcome hangs off an action) by recording a synthetic
// not-executed action.
func (s *Supervisor) recordTerminalFailure(ctx context.Context, decisionID, description, feedback string) {
	if decisionID == "" {
		return
	}
	actionID, err := s.graph.RecordAction(ctx, decisionID, causal.ActionInput{
		Type:        causal.ActionOther,
		Description: description,
	})
	if err != nil {
		s.logger.Error("Failed to record terminal action", "decision_id", decisionID, "error", err)
		return
	}
	_, err = s.graph.RecordOutcome(ctx, actionID, causal.OutcomeInput{
		Status:      causal.OutcomeFailure,
		Description: description,
		Feedback:    feedback,
	})
	if err != nil {
		s.logger.Error("Failed to record terminal outcome", "action_id", actionID, "error", err)
	}
}

func actionTypeFor(tool string) causal.ActionType {
	switch tool {
	case "Bash", "Task":
		return causal.ActionToolExecution
	case "Write", "Edit", "NotebookEdit":
		return causal.ActionCodeChange
	case "Read", "LS", "NotebookRead":
		return causal.ActionFileOperation
	case "Glob", "Grep", "WebSearch":
		return causal.ActionSearch
	case "WebFetch":
		return causal.ActionAPICall
	default:
		return causal.ActionOther
	}
}

// timeOfDay buckets a wall-clock instant for adaptive risk: weekdays 09:00
// to 17:59 local count as business hours.
func timeOfDay(t time.Time) permission.TimeOfDay {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return permission.TimeAfterHours
	}
	if h := t.Hour(); h < 9 || h >= 18 {
		return permission.TimeAfterHours
	}
	return permission.TimeBusiness
}
