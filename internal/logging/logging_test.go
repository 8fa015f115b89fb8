package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestNew_TextFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "warn", Output: &buf, Service: "test"})
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "tt", 1100.0)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "service=test")
	assert.Contains(t, out, "tt=1100")
	assert.NoError(t, l.Close())
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", JSON: true, Output: &buf})
	require.NoError(t, err)

	l.Debug("solved", "iterations", 7)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "solved", rec["msg"])
	assert.Equal(t, float64(7), rec["iterations"])
}

func TestNew_File(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	l, err := New(Config{LogDir: dir, Service: "runner", Output: &buf})
	require.NoError(t, err)

	l.Info("run started")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	matches, err := filepath.Glob(filepath.Join(dir, "runner_*.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"run started"`)
	assert.Contains(t, buf.String(), "run started")
}

func TestNew_QuietAndErrors(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Quiet: true, Output: &buf})
	require.NoError(t, err)
	l.Error("nothing")
	assert.Empty(t, buf.String())

	_, err = New(Config{Level: "verbose"})
	assert.ErrorIs(t, err, ErrUnknownLevel)

	Nop().Info("discarded")
}
