package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureDefault swaps the default logger for the duration of a test
func captureDefault(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(cfg, &buf)
	return &buf
}

func TestJSONLogging(t *testing.T) {
	buf := captureDefault(t, Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	})

	slog.Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "test-service", logEntry[AttrKeyService])
	assert.Equal(t, "1.0.0", logEntry[AttrKeyVersion])
	assert.Equal(t, "test", logEntry[AttrKeyEnvironment])
	assert.Equal(t, "test message", logEntry["msg"])
	assert.Equal(t, "INFO", logEntry["level"])
	assert.Equal(t, "value", logEntry["key"])
	assert.Equal(t, float64(42), logEntry["number"])
}

func TestLevelFiltering(t *testing.T) {
	buf := captureDefault(t, Config{Level: "WARN", Format: "text"})

	slog.Info("dropped")
	slog.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestFromContext(t *testing.T) {
	t.Run("adds request and user ids", func(t *testing.T) {
		buf := captureDefault(t, Config{Level: "info", Format: "json"})

		ctx := WithRequestID(context.Background(), "test-req-123")
		ctx = WithUserID(ctx, "user-9")
		FromContext(ctx).Info("scoped")

		var logEntry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
		assert.Equal(t, "test-req-123", logEntry[AttrKeyRequestID])
		assert.Equal(t, "user-9", logEntry[AttrKeyUserID])
	})

	t.Run("bare context has no ids", func(t *testing.T) {
		buf := captureDefault(t, Config{Level: "info", Format: "json"})

		FromContext(context.Background()).Info("plain")

		var logEntry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
		assert.NotContains(t, logEntry, AttrKeyRequestID)
		assert.NotContains(t, logEntry, AttrKeyUserID)
	})

	t.Run("request id round trip", func(t *testing.T) {
		id := GenerateRequestID()
		got, ok := RequestIDFromContext(WithRequestID(context.Background(), id))
		assert.True(t, ok)
		assert.Equal(t, id, got)

		_, ok = RequestIDFromContext(context.Background())
		assert.False(t, ok)
	})
}

func TestConfigPresets(t *testing.T) {
	def := DefaultConfig()
	assert.Equal(t, DefaultServiceName, def.ServiceName)
	assert.Equal(t, slog.LevelInfo, def.LogLevel())
	assert.False(t, def.IsJSON())

	prod := ProductionConfig()
	assert.True(t, prod.IsJSON())
	assert.Equal(t, EnvironmentProduction, prod.Environment)
	assert.False(t, prod.AddSource)

	dev := DevelopmentConfig()
	assert.Equal(t, slog.LevelDebug, dev.LogLevel())
	assert.True(t, dev.AddSource)

	assert.Equal(t, slog.LevelWarn, Config{Level: "warning"}.LogLevel())
	assert.Equal(t, slog.LevelError, Config{Level: "ERROR"}.LogLevel())
	assert.Equal(t, slog.LevelInfo, Config{Level: "chatty"}.LogLevel())
}
