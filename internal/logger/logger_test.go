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

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
	}

	InitLoggerWithWriter(config, &buf)

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	assert.Equal(t, "test-service", logEntry["service"])
	assert.Equal(t, "1.0.0", logEntry["version"])
	assert.Equal(t, "test", logEntry["environment"])
	assert.Equal(t, "test message", logEntry["msg"])
	assert.Equal(t, "INFO", logEntry["level"])
	assert.Equal(t, "value", logEntry["key"])
	assert.Equal(t, float64(42), logEntry["number"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	InitLoggerWithWriter(Config{Level: "warn", Format: "json"}, &buf)

	Info("dropped")
	assert.Zero(t, buf.Len(), "info should be filtered at warn level")

	Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestSessionIDContext(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	InitLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)

	ctx := WithSessionID(context.Background(), "test-session-123")
	assert.Equal(t, "test-session-123", GetSessionID(ctx))

	FromContext(ctx).Info("scoped")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	assert.Equal(t, "test-session-123", logEntry[AttrKeySessionID])

	_, ok := SessionIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGenerateSessionID_Unique(t *testing.T) {
	a := GenerateSessionID()
	b := GenerateSessionID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestConfigDefaults(t *testing.T) {
	config := DefaultConfig()

	assert.NotEmpty(t, config.ServiceName)
	assert.NotEmpty(t, config.Level)
	assert.NotEmpty(t, config.Format)
}

func TestBaseAttributes_OmitsEmpty(t *testing.T) {
	attrs := Config{ServiceName: "lootmap", Version: "dev"}.BaseAttributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, AttrKeyService, attrs[0].Key)
	assert.Equal(t, AttrKeyVersion, attrs[1].Key)
}

func TestWithCommand(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	base := DefaultConfig()
	base.Format = LogFormatJSON
	InitLoggerWithWriter(base.WithCommand("spawns"), &buf)
	assert.Empty(t, base.Command, "WithCommand must not modify the receiver")

	Info("loaded")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	assert.Equal(t, "spawns", logEntry[AttrKeyCommand])
	assert.Equal(t, DefaultServiceName, logEntry[AttrKeyService])
}

func TestParseLevel(t *testing.T) {
	level, ok := ParseLevel(" Warning ")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)

	_, ok = ParseLevel("verbose")
	assert.False(t, ok)
}

func TestLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Config{Level: in}.LogLevel(), in)
	}
}
