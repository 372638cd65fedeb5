package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ytget/ytdlui/internal/platform"
)

// EnvPrefix is the prefix of environment variables overriding the config file
const EnvPrefix = "YTDLUI"

// AppConfig is the process configuration
type AppConfig struct {
	Download DownloadConfig `mapstructure:"download"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	History  HistoryConfig  `mapstructure:"history"`
	YTDLP    YTDLPConfig    `mapstructure:"ytdlp"`
}

// DownloadConfig contains download-related configuration
type DownloadConfig struct {
	OutputDir        string `mapstructure:"output_dir"`
	ProbeConcurrency int    `mapstructure:"probe_concurrency"`
	// PlaylistTimeout bounds one bulk playlist listing, 0 disables the limit
	PlaylistTimeout time.Duration `mapstructure:"playlist_timeout"`
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, or file path
}

// HistoryConfig contains run history configuration
type HistoryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	DatabasePath string `mapstructure:"database_path"`
}

// YTDLPConfig contains yt-dlp binary configuration
type YTDLPConfig struct {
	Install bool `mapstructure:"install"`
}

// DefaultAppConfig returns a configuration with default values
func DefaultAppConfig() *AppConfig {
	outputDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		outputDir = "$HOME/Downloads"
	}

	return &AppConfig{
		Download: DownloadConfig{
			OutputDir:        outputDir,
			ProbeConcurrency: 8,
			PlaylistTimeout:  platform.DefaultPlaylistTimeout,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stderr",
		},
		History: HistoryConfig{
			Enabled:      true,
			DatabasePath: "$HOME/.ytdlui/history.db",
		},
		YTDLP: YTDLPConfig{
			Install: false,
		},
	}
}

// Load loads configuration from file and environment. An empty configPath
// searches the standard locations; a missing file is not an error.
func Load(configPath string) (*AppConfig, error) {
	defaults := DefaultAppConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v, defaults)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.ytdlui")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &AppConfig{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Download.OutputDir = expandPath(config.Download.OutputDir)
	config.History.DatabasePath = expandPath(config.History.DatabasePath)
	if config.Logging.OutputPath != "stdout" && config.Logging.OutputPath != "stderr" {
		config.Logging.OutputPath = expandPath(config.Logging.OutputPath)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults registers every key so environment overrides reach Unmarshal
func setDefaults(v *viper.Viper, d *AppConfig) {
	v.SetDefault("download.output_dir", d.Download.OutputDir)
	v.SetDefault("download.probe_concurrency", d.Download.ProbeConcurrency)
	v.SetDefault("download.playlist_timeout", d.Download.PlaylistTimeout)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output_path", d.Logging.OutputPath)
	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.database_path", d.History.DatabasePath)
	v.SetDefault("ytdlp.install", d.YTDLP.Install)
}

// Validate checks the configuration
func (c *AppConfig) Validate() error {
	if c.Download.ProbeConcurrency < 1 {
		return fmt.Errorf("probe concurrency must be at least 1")
	}
	if c.Download.PlaylistTimeout < 0 {
		return fmt.Errorf("playlist timeout must not be negative")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %q", c.Logging.Format)
	}

	if c.History.Enabled && c.History.DatabasePath == "" {
		return fmt.Errorf("history database path not configured")
	}

	return nil
}

// expandPath expands environment variables and ~ in paths
func expandPath(path string) string {
	path = os.ExpandEnv(path)

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return path
}
