// Package log provides a structured logging interface for NumGo operations.
//
// This package defines a minimal, slog-compatible logging interface that
// allows for flexible implementation switching while providing numeric
// workload specific structured logging. The default implementation is backed
// by zerolog; any backend satisfying Logger can be swapped in.
//
// Key features:
//   - slog-compatible interface for future-proofing
//   - standard attribute keys for shapes, operations, and timing
//   - context-aware logging with field chaining
//   - test-friendly with a buffer-backed TestLogger
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ComponentKey, "linalg",
//	)
//	logger.Info("factorization complete",
//	    log.OperationKey, "svd",
//	    log.RowsKey, 100,
//	    log.ColsKey, 10,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// The interface provides leveled logging with structured field support and
// supports chaining through With, allowing creation of contextual loggers
// with pre-populated fields. It is implementation-agnostic so backends can
// be switched without touching call sites.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If the first field is an error, stack trace information recorded by
	// pkg/errors is included in the output.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to avoid expensive field construction for suppressed levels.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
