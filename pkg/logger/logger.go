// Package logger builds slog loggers from the application config.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/voidtraders/voidtrade/pkg/config"
)

// New creates a slog.Logger writing to w, honoring the level and
// format from the config. Invalid values default to Info level and
// text format.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a string log level to slog.Level.
// Valid levels: "debug", "info", "warn", "error" (case-insensitive).
// Invalid levels default to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Writer resolves a log destination name to an io.Writer, defaulting
// to stderr. The "file" destination is handled by the iologger package
// because it needs the log directory.
func Writer(destination string) io.Writer {
	switch strings.ToLower(destination) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}
