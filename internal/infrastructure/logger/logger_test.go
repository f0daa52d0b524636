package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New(DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("test message")
}

func TestNewForEnvironment(t *testing.T) {
	dev, err := NewForEnvironment("development")
	require.NoError(t, err)
	assert.NotNil(t, dev)

	prod, err := NewForEnvironment("production")
	require.NoError(t, err)
	assert.NotNil(t, prod)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"WARN", zapcore.WarnLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), tt.input)
	}
}

func TestCreateEncoder(t *testing.T) {
	console := createEncoder(&Config{Format: "console", TimeFormat: "15:04:05"})
	assert.NotNil(t, console)

	json := createEncoder(&Config{Format: "json", TimeFormat: "15:04:05"})
	assert.NotNil(t, json)
}

func TestFileOutput(t *testing.T) {
	path := t.TempDir() + "/app.log"
	logger, err := New(&Config{Level: "info", Format: "json", Output: path, TimeFormat: "15:04:05"})
	require.NoError(t, err)

	logger.Info("written to file")
	require.NoError(t, logger.Sync())

	assert.FileExists(t, path)
}
