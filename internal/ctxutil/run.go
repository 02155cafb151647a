// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// RunIDKey is the context key for the invocation ID.
// Exported so it can be used consistently across packages.
type RunIDKey struct{}

// NewRunID returns a fresh invocation ID.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID returns a context with the invocation ID embedded.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey{}, runID)
}

// RunIDFromContext returns the invocation ID from context, or empty string if not set.
func RunIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(RunIDKey{}).(string); ok {
		return v
	}
	return ""
}
