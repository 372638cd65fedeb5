package download

import (
	"context"

	"github.com/ytget/ytdlui/internal/format"
	"github.com/ytget/ytdlui/internal/model"
)

// Prober resolves metadata for one URL. It must not fail loudly.
type Prober interface {
	Probe(ctx context.Context, url string) model.ProbeResult
}

// Downloader fetches one URL with the given format spec, reporting
// progress as a percentage between 0 and 100.
type Downloader interface {
	Download(ctx context.Context, req model.DownloadRequest, spec format.Spec, onPercent func(float64)) error
}

// Recorder persists finished runs.
type Recorder interface {
	Record(ctx context.Context, summary model.RunSummary) error
}
