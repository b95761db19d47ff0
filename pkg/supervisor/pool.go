package supervisor

import (
	"context"
	"fmt"
	"time"

	"github.com/codecoder-dev/codecoder/ent"
	enttask "github.com/codecoder-dev/codecoder/ent/task"
)

// Start recovers orphaned tasks and launches the worker pool. Workers
// poll-claim pending tasks oldest first; SQLite serializes the claim through
// the single connection, so two workers cannot win the same task.
func (s *Supervisor) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return fmt.Errorf("supervisor already started")
	}
	s.started = true
	s.mu.Unlock()

	if err := s.recoverOrphans(ctx); err != nil {
		return err
	}

	for i := 0; i < s.cfg.Workers; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}
	s.logger.Info("Supervisor started", "workers", s.cfg.Workers)
	return nil
}

// Stop cancels every in-flight task and waits for the workers to drain.
func (s *Supervisor) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)

		s.mu.Lock()
		for _, cancel := range s.cancels {
			cancel()
		}
		s.mu.Unlock()
	})
	s.wg.Wait()
	s.logger.Info("Supervisor stopped")
}

// Health reports pool liveness for the health endpoint.
func (s *Supervisor) Health() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]any{
		"started":       s.started,
		"workers":       s.cfg.Workers,
		"running_tasks": len(s.cancels),
	}
}

func (s *Supervisor) worker(id int) {
	defer s.wg.Done()
	logger := s.logger.With("worker_id", id)

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
		}

		// Drain the backlog before sleeping again.
		for {
			select {
			case <-s.stopCh:
				return
			default:
			}

			task, err := s.claimNext(context.Background())
			if err != nil {
				logger.Error("Failed to claim task", "error", err)
				break
			}
			if task == nil {
				break
			}
			s.runTask(task)
		}
	}
}

// claimNext atomically moves the oldest pending task to running. Returns
// (nil, nil) when the queue is empty or the claim lost a race.
func (s *Supervisor) claimNext(ctx context.Context) (*ent.Task, error) {
	task, err := s.client.Task.Query().
		Where(enttask.StatusEQ(enttask.StatusPending)).
		Order(ent.Asc(enttask.FieldCreatedAt), ent.Asc(enttask.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query pending tasks: %w", err)
	}

	n, err := s.client.Task.Update().
		Where(enttask.IDEQ(task.ID), enttask.StatusEQ(enttask.StatusPending)).
		SetStatus(enttask.StatusRunning).
		SetUpdatedAt(s.clock.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task %s: %w", task.ID, err)
	}
	if n == 0 {
		return nil, nil
	}

	s.publishStatus(task.ID, enttask.StatusRunning)
	return task, nil
}

// recoverOrphans fails tasks a previous process left in a non-terminal
// claimed state. Their pending permissions and parked goroutines died with
// that process, so resuming them is not possible.
func (s *Supervisor) recoverOrphans(ctx context.Context) error {
	orphans, err := s.client.Task.Query().
		Where(enttask.StatusIn(enttask.StatusRunning, enttask.StatusAwaitingApproval)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	for _, task := range orphans {
		err := s.client.Task.UpdateOneID(task.ID).
			SetStatus(enttask.StatusFailed).
			SetError("orphaned by restart").
			SetUpdatedAt(s.clock.Now()).
			ClearPendingPermissionID().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to recover orphan %s: %w", task.ID, err)
		}
		s.logger.Warn("Recovered orphaned task", "task_id", task.ID, "was_status", task.Status)
	}
	return nil
}
