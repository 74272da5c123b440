package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mistweaverco/skeleton/internal/lib/version"
)

// DebugEnv names the environment variable selecting the log level
const DebugEnv = "SKELETON_DEBUG"

// levelFromEnv maps the SKELETON_DEBUG value to a level.
// Release builds default to errors only, development builds to warnings.
func levelFromEnv(value string) slog.Level {
	switch strings.ToLower(value) {
	case "debug", "1", "true":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if version.IsDevelopment() {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func NewLogger() *slog.Logger {
	return NewLoggerTo(os.Stderr)
}

// NewLoggerTo returns a JSON logger writing to w at the level from the environment
func NewLoggerTo(w io.Writer) *slog.Logger {
	level := levelFromEnv(os.Getenv(DebugEnv))
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
