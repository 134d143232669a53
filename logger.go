package hammingheap

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hammingheap-specific context.
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

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithBits adds a bits (code width) field to the logger.
func (l *Logger) WithBits(bits int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bits", bits),
	}
}

// LogAdd logs an add operation.
func (l *Logger) LogAdd(ctx context.Context, id uint32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "add failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "add completed",
			"id", id,
		)
	}
}

// LogSearch logs a search operation.
func (l *Logger) LogSearch(ctx context.Context, k, resultsFound int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"k", k,
			"results", resultsFound,
		)
	}
}

// LogBatchSearch logs a batch search operation.
func (l *Logger) LogBatchSearch(ctx context.Context, count, k int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch search failed",
			"queries", count,
			"k", k,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch search completed",
			"queries", count,
			"k", k,
		)
	}
}
