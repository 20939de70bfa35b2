package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"TRACE", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.name, slog.LevelInfo))
		})
	}
}

func TestNewWritesJSONWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: slog.LevelInfo, Output: &buf})

	l.Info("selected adapter", "name", "fake")
	l.Debug("dropped")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "selected adapter", rec["msg"])
	assert.Equal(t, "fake", rec["name"])
	assert.NotContains(t, buf.String(), "dropped")
}

func TestNewForceText(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: slog.LevelDebug, Output: &buf, ForceText: true})

	l.Debug("redraw skipped", "reason", "not ready")

	assert.Contains(t, buf.String(), "msg=\"redraw skipped\"")
	assert.Contains(t, buf.String(), "reason=\"not ready\"")
}
