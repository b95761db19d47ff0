package supervisor

import "errors"

var (
	// ErrNotFound is returned when a task does not exist.
	ErrNotFound = errors.New("task not found")

	// ErrTerminalState is returned when an operation targets a task that
	// already completed, failed, or was cancelled.
	ErrTerminalState = errors.New("task is in a terminal state")

	// ErrAlreadyDecided is returned when interact() hits a permission that
	// was already resolved.
	ErrAlreadyDecided = errors.New("permission already decided")

	// ErrNoPendingPermission is returned when interact() targets a task
	// with nothing awaiting approval.
	ErrNoPendingPermission = errors.New("no pending permission")

	// ErrUnknownAgent is returned at submit time for an unknown agent kind.
	ErrUnknownAgent = errors.New("unknown agent")

	// ErrPromptRejected is returned when a remote prompt trips the
	// injection scanner and cannot be sanitized into something usable.
	ErrPromptRejected = errors.New("prompt rejected by injection scanner")
)
