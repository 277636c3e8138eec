package logger_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voidtraders/voidtrade/pkg/config"
	"github.com/voidtraders/voidtrade/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		msg   string
		level string
		want  slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"mixed case", "DeBuG", slog.LevelDebug},
		{"empty defaults to info", "", slog.LevelInfo},
		{"garbage defaults to info", "loud", slog.LevelInfo},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, logger.ParseLevel(v.level), v.msg)
	}
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, config.LogConfig{Format: "text", Level: "info"})
	l.Info("price updated", "commodity", "Drugs", "price", 42)

	out := buf.String()
	assert.Contains(t, out, "price updated")
	assert.Contains(t, out, "commodity=Drugs")
	assert.False(t, strings.HasPrefix(out, "{"))
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, config.LogConfig{Format: "json", Level: "debug"})
	l.Debug("market event")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{"))
	assert.Contains(t, out, `"msg":"market event"`)
}

func TestNewLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, config.LogConfig{Format: "text", Level: "warn"})
	l.Info("should be dropped")
	l.Warn("should be kept")

	out := buf.String()
	assert.NotContains(t, out, "should be dropped")
	assert.Contains(t, out, "should be kept")
}
