package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/ytdlui/internal/app"
	"github.com/ytget/ytdlui/internal/platform"
)

// errDownloadsFailed makes the process exit with status 2
var errDownloadsFailed = errors.New("some URLs could not be downloaded")

var (
	outputDir     string
	installYTDLP  bool
	downloadFlags = defaultFormatFlags()
)

var downloadCmd = &cobra.Command{
	Use:   "download [url]...",
	Short: "Download every URL in order",
	Long: `Probe every URL, then download them one by one. Playlists go into a
subdirectory named after the playlist. Ctrl+C stops after the current file.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runDownload,
}

func init() {
	f := downloadCmd.Flags()
	f.StringVarP(&outputDir, "output", "o", "", "Output directory (default from config)")
	f.StringVarP(&downloadFlags.format, "format", "f", downloadFlags.format, "Output kind: default, video+audio, audio_only")
	f.StringVar(&downloadFlags.video, "video", downloadFlags.video, "Video container: mp4, mkv")
	f.StringVar(&downloadFlags.audio, "audio", downloadFlags.audio, "Audio format: m4a, webm, mp3, ogg")
	f.StringVarP(&downloadFlags.resolution, "resolution", "r", downloadFlags.resolution, "Maximum resolution: 2160p, 1440p, 1080p, 720p, 480p, 360p")
	f.BoolVar(&downloadFlags.hdr, "hdr", false, "Prefer HDR video")
	f.BoolVar(&installYTDLP, "install", false, "Download yt-dlp if it is not installed")
}

func runDownload(cmd *cobra.Command, args []string) error {
	opts, err := downloadFlags.downloadOptions()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if installYTDLP {
		cfg.YTDLP.Install = true
	}
	if outputDir != "" {
		cfg.Download.OutputDir = outputDir
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	tempDir, err := platform.NewSessionTempDir()
	if err != nil {
		log.Warn("failed to create temp directory", zap.Error(err))
	}
	defer func() {
		if err := platform.CleanupTemp(tempDir); err != nil {
			log.Warn("failed to remove temp directory", zap.Error(err))
		}
	}()

	core := app.NewCore(cmd.Context(), cfg, log, tempDir)
	defer func() {
		if err := core.Close(); err != nil {
			log.Warn("failed to close", zap.Error(err))
		}
	}()

	bars := newProgressBars(color.Output)
	controller := core.Controller
	controller.OnProgress(bars.Update)
	controller.SetOptions(opts)
	controller.SetOutputDir(cfg.Download.OutputDir)
	controller.SetURLs(args)

	// The first interrupt stops after the current file, a second one kills the process.
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigCtx.Done():
			stop()
			controller.Cancel()
		case <-done:
		}
	}()

	summary, err := controller.Run(context.Background())
	bars.Wait()
	if err != nil {
		return err
	}

	printSummary(color.Output, summary)
	if len(summary.FailedURLs) > 0 {
		return errDownloadsFailed
	}
	return nil
}
