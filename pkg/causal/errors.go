package causal

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a node does not exist.
	ErrNotFound = errors.New("causal node not found")

	// ErrTemporalOrder is returned when an edge would point backwards in
	// time.
	ErrTemporalOrder = errors.New("edge violates temporal ordering")

	// ErrLimitExceeded is returned when a query asks for more than MaxQueryLimit
	// results; callers retry with a tighter filter.
	ErrLimitExceeded = errors.New("query limit exceeded")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
