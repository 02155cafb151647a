// Package logging provides structured logging configuration using log/slog.
//
// Log records go to stderr by default so that command output on stdout stays
// machine-readable. Every record logged through FromContext carries the
// invocation's run_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/example/evn/internal/ctxutil"
)

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string, w io.Writer) {
	slog.SetDefault(New(level, format, w))
}

// New builds a logger without installing it as the default.
func New(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel converts a string log level to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// FromContext returns the default logger enriched with the run ID stored in
// ctx, if any.
//
// Usage:
//
//	logging.FromContext(ctx).Debug("decoded code", "category", rec.Category())
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()
	if runID := ctxutil.RunIDFromContext(ctx); runID != "" {
		logger = logger.With("run_id", runID)
	}
	return logger
}

// WithFields returns a logger with additional structured fields.
func WithFields(ctx context.Context, args ...any) *slog.Logger {
	return FromContext(ctx).With(args...)
}
