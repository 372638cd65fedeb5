package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(Config{Level: "warn", Format: "json", OutputPath: path})
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", zap.String("url", "https://example.com"))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "https://example.com", entry["url"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_InvalidLevelDefaultsToInfo(t *testing.T) {
	log, err := New(Config{Level: "loud", Format: "console", OutputPath: "stderr"})
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_UnwritablePath(t *testing.T) {
	_, err := New(Config{OutputPath: filepath.Join(t.TempDir(), "missing", "app.log")})
	assert.Error(t, err)
}

func TestNewDefault(t *testing.T) {
	log := NewDefault()
	require.NotNil(t, log)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewEncoder(t *testing.T) {
	tests := []struct {
		format   string
		expected string
	}{
		{"json", `"level":"warn"`},
		{"console", "WARN"},
		{"", "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			buf, err := newEncoder(tt.format).EncodeEntry(zapcore.Entry{Level: zapcore.WarnLevel, Message: "hello"}, nil)
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.expected)
			assert.Contains(t, buf.String(), "hello")
		})
	}
}

func TestOpenSink_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0o644))

	sink, err := openSink(path)
	require.NoError(t, err)
	_, err = sink.Write([]byte("next\n"))
	require.NoError(t, err)
	require.NoError(t, sink.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing\nnext\n", string(data))
}
