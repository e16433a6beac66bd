package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kashikuroni/YP-Blogicum/internal/logger"
)

func withCapturedOutput(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})
	logger.SetLogger(slog.New(handler))
	return &buf
}

func TestLogger_Info(t *testing.T) {
	buf := withCapturedOutput(t, slog.LevelInfo)

	logger.Info("test message",
		slog.String("key", "value"),
		slog.Int("count", 42),
	)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "value")
	assert.Contains(t, output, "42")
}

func TestLogger_DebugFilteredAtInfoLevel(t *testing.T) {
	buf := withCapturedOutput(t, slog.LevelInfo)

	logger.Debug("hidden message")

	assert.Empty(t, buf.String())
}

func TestLogger_WithRequestID(t *testing.T) {
	buf := withCapturedOutput(t, slog.LevelInfo)

	logger.WithRequestID("req-123").Info("listing posts")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "listing posts", entry["msg"])
}

func TestLogger_WithViewer(t *testing.T) {
	t.Run("named viewer", func(t *testing.T) {
		buf := withCapturedOutput(t, slog.LevelInfo)

		logger.WithViewer("alice").Info("creating post")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "alice", entry["viewer"])
	})

	t.Run("anonymous viewer", func(t *testing.T) {
		buf := withCapturedOutput(t, slog.LevelInfo)

		logger.WithViewer("").Info("listing posts")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "anonymous", entry["viewer"])
	})
}

func TestLogger_JSONOutput(t *testing.T) {
	buf := withCapturedOutput(t, slog.LevelInfo)

	logger.Error("update failed", slog.String("post_id", "p1"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "p1", entry["post_id"])
}
