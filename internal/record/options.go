// Package record renders synthetic application log records and appends them
// to a sink file. The sink is exposed as a slog.Handler so that the severity
// threshold is applied the same way slog applies it everywhere else.
package record

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultPath is where records are appended.
	DefaultPath = "/tmp/app-logs/app3.log"

	// DefaultFormat renders a JSON-shaped line. Values are substituted
	// verbatim, without escaping.
	DefaultFormat = `{"timestamp": "{{.Timestamp}}", "level": "{{.Level}}", "message": "{{.Message}}"}`

	// TimestampLayout is local wall-clock time with comma-separated milliseconds.
	TimestampLayout = "2006-01-02 15:04:05,000"
)

// ErrInvalidOptions is returned when sink options fail validation.
var ErrInvalidOptions = errors.New("invalid sink options")

// Options describes the sink: where records go, the minimum severity that is
// written and the line template. Options are built once and passed by value.
type Options struct {
	Path   string     `validate:"required"`
	Level  slog.Level `validate:"min=-4,max=12"`
	Format string     `validate:"required"`
}

// DefaultOptions returns the fixed sink configuration: the app3 log file,
// an INFO threshold and the JSON-shaped line template.
func DefaultOptions() Options {
	return Options{
		Path:   DefaultPath,
		Level:  slog.LevelInfo,
		Format: DefaultFormat,
	}
}

// Validate checks the options with the struct tags above.
func (o Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}
