// Package logging builds the service's slog logger and carries it through
// context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "catalog loaded")
//
// Error logs name the operation, the identifier involved and the full error
// chain:
//
//	logger.ErrorContext(ctx, "failed to construct action",
//	    slog.String(logging.KeyOperation, "Construct"),
//	    slog.String(logging.KeyActionType, id),
//	    slog.Any(logging.KeyError, err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Attribute keys shared by every component.
const (
	KeyOperation  = "operation"
	KeyActionType = "action_type"
	KeySource     = "source"
	KeyError      = "error"
)

type contextKey struct{}

// New creates a logger writing to w. level is one of debug, info, warn or
// error (case-insensitive, anything else means info). format "text" selects
// the text handler; anything else selects JSON. Debug output includes
// source locations.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// OrDiscard returns logger, or a logger that drops everything when logger
// is nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
