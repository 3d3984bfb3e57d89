package flatstore

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with flatstore-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogLoad logs a snapshot load.
func (l *Logger) LogLoad(ctx context.Context, location string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"location", location,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "load completed",
			"location", location,
			"records", count,
		)
	}
}

// LogFlush logs a snapshot flush.
func (l *Logger) LogFlush(ctx context.Context, location string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "flush failed",
			"location", location,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "flush completed",
			"location", location,
			"records", count,
		)
	}
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(ctx context.Context, key string, hit bool) {
	l.DebugContext(ctx, "search completed",
		"key", key,
		"hit", hit,
	)
}

// LogAppend logs an append operation.
func (l *Logger) LogAppend(ctx context.Context, fields int) {
	l.DebugContext(ctx, "append completed",
		"fields", fields,
	)
}

// LogUpdate logs an update operation.
func (l *Logger) LogUpdate(ctx context.Context, key string) {
	l.DebugContext(ctx, "update completed",
		"key", key,
	)
}
