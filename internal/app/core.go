package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/ytget/ytdlui/internal/config"
	"github.com/ytget/ytdlui/internal/download"
	"github.com/ytget/ytdlui/internal/history"
	"github.com/ytget/ytdlui/internal/platform"
	"github.com/ytget/ytdlui/internal/probe"
)

// Core is the download stack shared by the desktop app and the CLI
type Core struct {
	Controller *download.Controller
	// History is nil when run history is disabled or could not be opened
	History *history.Store

	logger *zap.Logger
}

// NewCore wires yt-dlp, the prober, the run history and the controller.
// tempDir receives yt-dlp's intermediate files; empty keeps yt-dlp's default.
// A history database that cannot be opened disables history instead of failing,
// and a failed yt-dlp install falls back to whatever binary is on PATH.
func NewCore(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger, tempDir string) *Core {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.YTDLP.Install {
		logger.Info("resolving yt-dlp binary")
		if err := platform.EnsureInstalled(ctx); err != nil {
			logger.Warn("yt-dlp install failed, using the binary on PATH", zap.Error(err))
		}
	}

	ytdlp := platform.NewYTDLP(
		platform.WithTempDir(tempDir),
		platform.WithYTDLPLogger(logger.Named("ytdlp")),
	)

	titles := platform.NewPlaylistTitleSource()
	titles.SetTimeout(cfg.Download.PlaylistTimeout)

	prober := probe.New(ytdlp,
		probe.WithTitleSource(titles),
		probe.WithConcurrency(cfg.Download.ProbeConcurrency),
		probe.WithLogger(logger.Named("probe")),
	)

	core := &Core{logger: logger}
	opts := []download.Option{download.WithLogger(logger.Named("download"))}

	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.DatabasePath)
		if err != nil {
			logger.Warn("run history disabled",
				zap.String("database_path", cfg.History.DatabasePath),
				zap.Error(err))
		} else {
			core.History = store
			opts = append(opts, download.WithRecorder(store))
		}
	}

	core.Controller = download.NewController(prober, ytdlp, opts...)
	return core
}

// Close stops background probes and closes the run history
func (c *Core) Close() error {
	c.Controller.Close()
	if c.History != nil {
		return c.History.Close()
	}
	return nil
}
