package colstore

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with colstore-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithColumn adds a column field to the logger.
func (l *Logger) WithColumn(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("column", name),
	}
}

// WithChunk adds the chunk time range to the logger.
func (l *Logger) WithChunk(meta ChunkMeta) *Logger {
	return &Logger{
		Logger: l.Logger.With(
			slog.Time("start_at", meta.StartAt),
			slog.Duration("interval", meta.Interval),
		),
	}
}

// LogIndexBuild logs the construction of an index over a column.
func (l *Logger) LogIndexBuild(ctx context.Context, column, index string, rows int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"column", column,
			"index", index,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "index build completed",
			"column", column,
			"index", index,
			"rows", rows,
			"duration", duration,
		)
	}
}

// LogSelect logs a selection over a chunk.
func (l *Logger) LogSelect(ctx context.Context, matchers, candidates, matched int, exact bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "select failed",
			"matchers", matchers,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "select completed",
			"matchers", matchers,
			"candidates", candidates,
			"matched", matched,
			"exact", exact,
		)
	}
}
