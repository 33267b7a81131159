package app

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrInternalError = errors.New("internal error")

	// ErrRetryable marks a transient data-access failure: the durable
	// scheduler is expected to re-invoke the job later.
	ErrRetryable = errors.New("retryable failure")

	// ErrPostponeLimitReached is returned once the daily postponement cap
	// has been exhausted.
	ErrPostponeLimitReached = errors.New("postpone limit reached")

	ErrPositionUnavailable = errors.New("position provider unavailable")
	ErrPositionTimeout     = errors.New("position acquisition timed out")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError

	return errors.As(err, &validationErr)
}

func IsRetryable(err error) bool {
	return errors.Is(err, ErrRetryable)
}
