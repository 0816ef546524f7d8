package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the type for values this package stores in a request context.
type ContextKey string

const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TraceIDHeader carries the trace ID back to the client.
	TraceIDHeader = "X-Trace-ID"
)

// SetTraceID adds a fresh trace ID to the context.
// This is useful for correlating logs with a single request.
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
