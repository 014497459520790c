// Package shared provides helpers used across API handlers: request context
// keys, JSON responses, and request decoding.
package shared

import (
	"context"

	"github.com/google/uuid"

	"github.com/coursetrack/coursetrack-api/internal/domain"
)

// ContextKey is the key type for values stored in the request context.
type ContextKey string

// Context keys for various values
const (
	// ActorContextKey is the context key for the resolved request actor
	ActorContextKey ContextKey = "actor"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a fresh trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SetActor stores the resolved actor in the context. The identity middleware
// calls this once per authenticated request.
func SetActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, ActorContextKey, actor)
}

// GetActor retrieves the actor from the context.
// The second return value reports whether an actor was present.
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(ActorContextKey).(domain.Actor)
	return actor, ok
}
