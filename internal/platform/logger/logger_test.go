// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/dataincloud/resource-api/internal/config"
	"github.com/dataincloud/resource-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault puts back the slog default replaced by Setup.
func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestSetupWithWriter(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	log, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "info", Port: 8080}, &buf)
	require.NoError(t, err)
	require.NotNil(t, log)

	log.Debug("debug message")
	log.Info("info message", "user_id", 7)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug output must be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.EqualValues(t, 7, entry["user_id"])

	assert.Same(t, log, slog.Default(), "Setup installs the logger as the default")
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  slog.Level
		ok    bool
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug, ok: true},
		{name: "info", input: "info", want: slog.LevelInfo, ok: true},
		{name: "warn", input: "warn", want: slog.LevelWarn, ok: true},
		{name: "error", input: "error", want: slog.LevelError, ok: true},
		{name: "case insensitive", input: "DEBUG", want: slog.LevelDebug, ok: true},
		{name: "unknown", input: "verbose", want: slog.LevelInfo, ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := logger.ParseLevel(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	log, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "invalid_level"}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	scoped := slog.New(slog.NewJSONHandler(&buf, nil)).With("trace_id", "abc")
	fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	t.Run("stored logger is returned", func(t *testing.T) {
		ctx := logger.WithLogger(context.Background(), scoped)

		assert.Same(t, scoped, logger.FromContext(ctx))
		assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback))
	})

	t.Run("fallback when absent", func(t *testing.T) {
		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
		assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	})
}
