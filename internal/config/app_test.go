package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAppConfig(t *testing.T) {
	config := DefaultAppConfig()

	assert.NotEmpty(t, config.Download.OutputDir)
	assert.Equal(t, 8, config.Download.ProbeConcurrency)
	assert.Equal(t, time.Minute, config.Download.PlaylistTimeout)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)
	assert.Equal(t, "stderr", config.Logging.OutputPath)
	assert.True(t, config.History.Enabled)
	assert.Equal(t, "$HOME/.ytdlui/history.db", config.History.DatabasePath)
	assert.False(t, config.YTDLP.Install)
	assert.NoError(t, config.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	home := t.TempDir()
	t.Setenv("HOME", home)

	config, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8, config.Download.ProbeConcurrency)
	assert.Equal(t, filepath.Join(home, ".ytdlui", "history.db"), config.History.DatabasePath)
	assert.Equal(t, "stderr", config.Logging.OutputPath)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
download:
  output_dir: ` + dir + `
  probe_concurrency: 3
  playlist_timeout: 15s
logging:
  level: debug
  format: json
history:
  enabled: false
ytdlp:
  install: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, dir, config.Download.OutputDir)
	assert.Equal(t, 3, config.Download.ProbeConcurrency)
	assert.Equal(t, 15*time.Second, config.Download.PlaylistTimeout)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
	assert.False(t, config.History.Enabled)
	assert.True(t, config.YTDLP.Install)
	// untouched keys keep their defaults
	assert.Equal(t, "stderr", config.Logging.OutputPath)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("YTDLUI_LOGGING_LEVEL", "warn")
	t.Setenv("YTDLUI_DOWNLOAD_PROBE_CONCURRENCY", "2")

	config, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, 2, config.Download.ProbeConcurrency)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*AppConfig)
	}{
		{"zero concurrency", func(c *AppConfig) { c.Download.ProbeConcurrency = 0 }},
		{"negative playlist timeout", func(c *AppConfig) { c.Download.PlaylistTimeout = -time.Second }},
		{"unknown level", func(c *AppConfig) { c.Logging.Level = "verbose" }},
		{"unknown format", func(c *AppConfig) { c.Logging.Format = "xml" }},
		{"history without path", func(c *AppConfig) { c.History.DatabasePath = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultAppConfig()
			tt.modify(config)
			assert.Error(t, config.Validate())
		})
	}
}
