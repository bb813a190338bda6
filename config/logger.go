package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the process logger from GO_ENV and LOG_LEVEL.
// Production emits JSON for log shipping; everything else gets text.
func NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel(os.Getenv("LOG_LEVEL"))}
	var handler slog.Handler
	if os.Getenv("GO_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

// logLevel maps a LOG_LEVEL value to a slog level. Unknown or empty
// values fall back to info.
func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
