package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/ytdlui/internal/config"
	"github.com/ytget/ytdlui/pkg/logger"
)

var (
	configPath string
	verbose    bool
	rootCmd    = &cobra.Command{
		Use:   "ytdlui",
		Short: "ytdlui CLI - download videos and playlists with yt-dlp",
		Long:  `A command-line front end for yt-dlp sharing the probe, format and download core of the desktop app.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at the configured level instead of warnings only")

	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errDownloadsFailed) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// loadConfig loads the config named by --config
func loadConfig() (*config.AppConfig, error) {
	return config.Load(configPath)
}

// newLogger builds the logger; without --verbose only warnings and errors are shown
func newLogger(cfg *config.AppConfig) (*zap.Logger, error) {
	level := cfg.Logging.Level
	if !verbose {
		level = "warn"
	}

	return logger.New(logger.Config{
		Level:      level,
		Format:     cfg.Logging.Format,
		OutputPath: cfg.Logging.OutputPath,
	})
}
