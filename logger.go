package colscan

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with colscan-specific context.
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
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithTable adds a table field to the logger.
func (l *Logger) WithTable(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("table", name),
	}
}

// LogTableCreated logs the construction of a table.
func (l *Logger) LogTableCreated(ctx context.Context, columns int) {
	l.DebugContext(ctx, "table created",
		"columns", columns,
	)
}

// LogScan logs a scan. Table loggers carry the table name via WithTable.
func (l *Logger) LogScan(ctx context.Context, stats ScanStats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scan failed",
			"constraints", stats.Constraints,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "scan completed",
		"rows", stats.Rows,
		"candidates", stats.Candidates,
		"matched", stats.Matched,
		"consumed", stats.Consumed,
		"filtered", stats.Filtered,
		"recheck", stats.Recheck,
		"sorted", stats.Sorted,
		"mode", stats.Mode,
	)
}

// LogScanAll logs a batch of concurrent scans.
func (l *Logger) LogScanAll(ctx context.Context, queries int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch scan failed",
			"queries", queries,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "batch scan completed",
		"queries", queries,
	)
}
