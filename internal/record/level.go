package record

import (
	"fmt"
	"log/slog"
)

// LevelCritical sits above slog.LevelError for records that need it.
const LevelCritical = slog.Level(12)

// LevelName returns the upper-case severity name written into a record line.
// Levels without a name render as "Level <n>".
func LevelName(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("Level %d", int(level))
	}
}
