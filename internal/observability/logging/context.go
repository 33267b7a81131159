package logging

import (
	"context"

	"github.com/google/uuid"
)

// Module labels log records with the subsystem that produced them.
type Module string

const (
	ModuleHTTP      Module = "http"
	ModuleScheduler Module = "scheduler"
	ModuleEngine    Module = "engine"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	moduleKey    contextKey = "module"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}

	return ""
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) Module {
	if v, ok := ctx.Value(moduleKey).(Module); ok {
		return v
	}

	return ""
}

// ValidateAndExtractRequestID accepts a caller-supplied request id when it is
// a valid UUID and otherwise issues a fresh one.
func ValidateAndExtractRequestID(raw string) string {
	if raw != "" {
		if _, err := uuid.Parse(raw); err == nil {
			return raw
		}
	}

	return uuid.NewString()
}
