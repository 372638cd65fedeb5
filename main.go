package main

import (
	"context"
	"fmt"
	"os"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ytget/ytdlui/internal/app"
	"github.com/ytget/ytdlui/internal/config"
	"github.com/ytget/ytdlui/internal/platform"
	"github.com/ytget/ytdlui/internal/ui"
	"github.com/ytget/ytdlui/pkg/logger"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.ytdlui"
	AppName = "youtube-dl UI"
)

var configPath = pflag.StringP("config", "c", "", "Path to config file")

func main() {
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		OutputPath: cfg.Logging.OutputPath,
	})
	if err != nil {
		log = logger.NewDefault()
		log.Warn("falling back to stderr logging", zap.Error(err))
	}
	defer log.Sync()

	log.Info("starting", zap.String("app", AppName), zap.String("version", version))

	myApp := fyneapp.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp, cfg.Download.OutputDir)

	// The previous session's temp directory is removed before this one is recorded.
	tempDir, err := platform.NewSessionTempDir()
	if err != nil {
		log.Warn("failed to create temp directory", zap.Error(err))
	}
	if err := settings.RotateTemp(tempDir); err != nil {
		log.Warn("failed to remove previous temp directory", zap.Error(err))
	}

	core := app.NewCore(context.Background(), cfg, log, tempDir)
	defer func() {
		if err := core.Close(); err != nil {
			log.Warn("failed to close", zap.Error(err))
		}
	}()

	myWindow := myApp.NewWindow(AppName)
	ui.NewRootUI(myWindow, settings, core.Controller, log.Named("ui"))

	myWindow.ShowAndRun()
}
