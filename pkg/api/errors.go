package api

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"github.com/codecoder-dev/codecoder/pkg/causal"
	"github.com/codecoder-dev/codecoder/pkg/supervisor"
	"github.com/codecoder-dev/codecoder/pkg/vault"
)

// rpcError is the uniform error envelope every endpoint returns.
type rpcError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// rpcResponse wraps one RPC result or error. Exactly one of Result and Error
// is set; ID echoes the request id when the caller supplied one.
type rpcResponse struct {
	Result any             `json:"result,omitempty"`
	Error  *rpcError       `json:"error,omitempty"`
	ID     json.RawMessage `json:"id,omitempty"`
}

// Error codes.
const (
	codeInvalidArgument     = "invalid_argument"
	codeUnknownMethod       = "unknown_method"
	codeUnauthorized        = "unauthorized"
	codeNotFound            = "not_found"
	codeAlreadyDecided      = "already_decided"
	codeTerminalState       = "terminal_state"
	codeNoPendingPermission = "no_pending_permission"
	codePromptRejected      = "prompt_rejected"
	codeConflict            = "conflict"
	codeLimitExceeded       = "limit_exceeded"
	codeVaultLocked         = "vault_locked"
	codeVaultCorrupt        = "vault_corrupt"
	codeInternal            = "internal"
)

// mapError translates service sentinels into an HTTP status and error code.
func mapError(err error) (int, *rpcError) {
	switch {
	case errors.Is(err, supervisor.ErrNotFound),
		errors.Is(err, vault.ErrNotFound),
		errors.Is(err, causal.ErrNotFound),
		errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound, &rpcError{Code: codeNotFound, Message: err.Error()}
	case errors.Is(err, supervisor.ErrAlreadyDecided):
		return http.StatusConflict, &rpcError{Code: codeAlreadyDecided, Message: err.Error()}
	case errors.Is(err, supervisor.ErrTerminalState):
		return http.StatusConflict, &rpcError{Code: codeTerminalState, Message: err.Error()}
	case errors.Is(err, supervisor.ErrNoPendingPermission):
		return http.StatusConflict, &rpcError{Code: codeNoPendingPermission, Message: err.Error()}
	case errors.Is(err, supervisor.ErrPromptRejected):
		return http.StatusUnprocessableEntity, &rpcError{Code: codePromptRejected, Message: err.Error()}
	case errors.Is(err, supervisor.ErrUnknownAgent),
		errors.Is(err, causal.ErrTemporalOrder),
		causal.IsValidationError(err):
		return http.StatusBadRequest, &rpcError{Code: codeInvalidArgument, Message: err.Error()}
	case errors.Is(err, causal.ErrLimitExceeded):
		return http.StatusBadRequest, &rpcError{Code: codeLimitExceeded, Message: err.Error()}
	case errors.Is(err, vault.ErrCredentialConflict),
		errors.Is(err, vault.ErrPatternConflict):
		return http.StatusConflict, &rpcError{Code: codeConflict, Message: err.Error()}
	case errors.Is(err, vault.ErrVaultLocked):
		return http.StatusServiceUnavailable, &rpcError{Code: codeVaultLocked, Message: err.Error()}
	case errors.Is(err, vault.ErrVaultCorrupt):
		return http.StatusInternalServerError, &rpcError{Code: codeVaultCorrupt, Message: err.Error()}
	default:
		return http.StatusInternalServerError, &rpcError{Code: codeInternal, Message: err.Error()}
	}
}
