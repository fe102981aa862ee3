package unitgo

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/unitgo/storage"
)

// Logger wraps slog.Logger with unitgo-specific context.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewJSONLoggerTo(os.Stderr, level)
}

// NewJSONLoggerTo is NewJSONLogger writing to w.
func NewJSONLoggerTo(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewTextLoggerTo(os.Stderr, level)
}

// NewTextLoggerTo is NewTextLogger writing to w.
func NewTextLoggerTo(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithUnit adds a unit field to the logger.
func (l *Logger) WithUnit(unit string) *Logger {
	return &Logger{
		Logger: l.Logger.With("unit", unit),
	}
}

// WithOperation adds an operation field to the logger.
func (l *Logger) WithOperation(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// LogConversion logs a unit conversion. The target unit is taken from
// WithUnit.
func (l *Logger) LogConversion(ctx context.Context, value float64, from string, result float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "conversion failed",
			"value", value,
			"from", from,
			"kind", KindOf(err).String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "conversion completed",
			"value", value,
			"from", from,
			"result", result,
		)
	}
}

// LogPropagation logs an uncertainty propagation. The operation and
// result unit are taken from WithOperation and WithUnit.
func (l *Logger) LogPropagation(ctx context.Context, value, uncertainty float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "propagation failed",
			"kind", KindOf(err).String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "propagation completed",
			"value", value,
			"uncertainty", uncertainty,
		)
	}
}

// LogPoolStats logs a storage pool snapshot. Fallback allocations are
// reported at warn level.
func (l *Logger) LogPoolStats(ctx context.Context, s storage.Stats) {
	if s.Fallbacks > 0 {
		l.WarnContext(ctx, "storage pool overflowed",
			"capacity", s.Capacity,
			"peak", s.Peak,
			"fallbacks", s.Fallbacks,
		)
	} else {
		l.DebugContext(ctx, "storage pool stats",
			"capacity", s.Capacity,
			"active", s.Active,
			"peak", s.Peak,
			"reserved_bytes", s.ReservedBytes,
		)
	}
}
