package app_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/montagezeit/reminder-engine/internal/app"
)

func TestNewValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name            string
		field           string
		message         string
		expectedError   string
		expectedField   string
		expectedMessage string
	}{
		{
			name:            "reminder_type validation error",
			field:           "reminder_type",
			message:         "invalid reminder type: weekly",
			expectedError:   "validation error: reminder_type - invalid reminder type: weekly",
			expectedField:   "reminder_type",
			expectedMessage: "invalid reminder type: weekly",
		},
		{
			name:            "timeout validation error",
			field:           "timeout_ms",
			message:         "must be positive",
			expectedError:   "validation error: timeout_ms - must be positive",
			expectedField:   "timeout_ms",
			expectedMessage: "must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := app.NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedField, err.Field)
			assert.Equal(t, tt.expectedMessage, err.Message)
			assert.Equal(t, tt.expectedError, err.Error())
		})
	}
}

func TestIsValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "is ValidationError",
			err:      app.NewValidationError("field", "message"),
			expected: true,
		},
		{
			name:     "wrapped ValidationError",
			err:      fmt.Errorf("wrapped: %w", app.NewValidationError("field", "message")),
			expected: true,
		},
		{
			name:     "not ValidationError - generic error",
			err:      errors.New("generic error"),
			expected: false,
		},
		{
			name:     "not ValidationError - nil",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, app.IsValidationError(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "bare retryable sentinel",
			err:      app.ErrRetryable,
			expected: true,
		},
		{
			name:     "wrapped retryable failure",
			err:      fmt.Errorf("%w: fetch work entry: boom", app.ErrRetryable),
			expected: true,
		},
		{
			name:     "validation error is not retryable",
			err:      app.NewValidationError("field", "message"),
			expected: false,
		},
		{
			name:     "nil is not retryable",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, app.IsRetryable(tt.err))
		})
	}
}

func TestSentinelErrorsSuccess(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "ErrValidation exists",
			err:  app.ErrValidation,
		},
		{
			name: "ErrInternalError exists",
			err:  app.ErrInternalError,
		},
		{
			name: "ErrPostponeLimitReached exists",
			err:  app.ErrPostponeLimitReached,
		},
		{
			name: "ErrPositionUnavailable exists",
			err:  app.ErrPositionUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Error(t, tt.err)
		})
	}
}
