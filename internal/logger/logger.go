// Package logger builds the diagnostics logger: the program's own
// operational output, kept apart from the records it generates.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger creates a new slog Logger writing to stdout with the specified
// level and format. If jsonOutput is true, logs are formatted as JSON,
// otherwise as text.
func NewLogger(levelStr string, jsonOutput bool) *slog.Logger {
	return New(os.Stdout, levelStr, jsonOutput)
}

// New is NewLogger with an explicit destination.
func New(w io.Writer, levelStr string, jsonOutput bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(levelStr),
	}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a configured level name to a slog level.
// Unknown names fall back to info.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
