package app

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/wikt2sql/internal/config"
	"github.com/heartmarshall/wikt2sql/pkg/ctxutil"
)

// NewLogger creates a *slog.Logger writing to w based on the provided
// LogConfig. The process-wide default logger is left untouched.
//
// Format "json" produces structured JSON output.
// Format "text" produces human-readable output with source info.
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// WithRunID returns log with the run ID from ctx attached, or log itself when
// ctx carries none. Callers attach it once, at the top of the run.
func WithRunID(ctx context.Context, log *slog.Logger) *slog.Logger {
	runID, ok := ctxutil.RunIDFromCtx(ctx)
	if !ok {
		return log
	}
	return log.With(slog.String("run_id", runID.String()))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
