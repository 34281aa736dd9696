package record

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"text/template"
)

// line is the data made available to the format template.
type line struct {
	Timestamp string
	Level     string
	Message   string
}

// Handler is a slog.Handler that writes one templated line per record.
// Records below the configured level are dropped by Enabled.
type Handler struct {
	opts Options
	tmpl *template.Template
	mu   sync.Mutex
	w    io.Writer
}

// NewHandler creates a handler writing to w. It fails if the format
// template cannot be parsed.
func NewHandler(w io.Writer, opts Options) (*Handler, error) {
	tmpl, err := template.New("record").Option("missingkey=error").Parse(opts.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse record format: %w", err)
	}

	return &Handler{
		opts: opts,
		tmpl: tmpl,
		w:    w,
	}, nil
}

// Open validates opts and opens opts.Path for appending, creating the file
// if it does not exist. The parent directory must already exist.
// The returned handler owns the file for the rest of the process lifetime.
func Open(opts Options) (*Handler, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(opts.Path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	h, err := NewHandler(f, opts)
	if err != nil {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("Error closing log file after handler failure", "path", opts.Path, "error", closeErr)
		}
		return nil, err
	}

	return h, nil
}

// Options returns the options the handler was built with.
func (h *Handler) Options() Options {
	return h.opts
}

// Enabled reports whether level meets the severity threshold.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

// Handle renders r and appends it as a single line.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	err := h.tmpl.Execute(&buf, line{
		Timestamp: r.Time.Local().Format(TimestampLayout),
		Level:     LevelName(r.Level),
		Message:   r.Message,
	})
	if err != nil {
		return fmt.Errorf("failed to render record: %w", err)
	}
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := h.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// WithAttrs returns h unchanged: the line template has no slot for attributes.
func (h *Handler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup returns h unchanged.
func (h *Handler) WithGroup(_ string) slog.Handler {
	return h
}
