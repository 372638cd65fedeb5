package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"go.uber.org/zap"

	"github.com/ytget/ytdlui/internal/format"
	"github.com/ytget/ytdlui/internal/model"
)

// Progress reporting
const (
	DefaultProgressInterval = 500 * time.Millisecond
)

// OutputTemplateName is the yt-dlp output template for downloaded files
const OutputTemplateName = "%(title).100s.%(ext)s"

// flatInfo is the subset of yt-dlp's --dump-single-json document we read
type flatInfo struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Extractor string        `json:"extractor"`
	Entries   *[]*flatEntry `json:"entries"`
}

type flatEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// YTDLP is the boundary to the yt-dlp binary
type YTDLP struct {
	tempDir          string
	progressInterval time.Duration
	logger           *zap.Logger
}

// YTDLPOption configures YTDLP
type YTDLPOption func(*YTDLP)

// WithTempDir makes yt-dlp keep intermediate files in dir
func WithTempDir(dir string) YTDLPOption {
	return func(y *YTDLP) {
		y.tempDir = dir
	}
}

// WithProgressInterval sets how often progress is reported
func WithProgressInterval(d time.Duration) YTDLPOption {
	return func(y *YTDLP) {
		if d > 0 {
			y.progressInterval = d
		}
	}
}

// WithYTDLPLogger sets the logger
func WithYTDLPLogger(logger *zap.Logger) YTDLPOption {
	return func(y *YTDLP) {
		if logger != nil {
			y.logger = logger
		}
	}
}

// NewYTDLP creates a new yt-dlp boundary
func NewYTDLP(opts ...YTDLPOption) *YTDLP {
	y := &YTDLP{
		progressInterval: DefaultProgressInterval,
		logger:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(y)
	}
	return y
}

// EnsureInstalled downloads yt-dlp when it is not available on the system
func EnsureInstalled(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("failed to install yt-dlp: %w", err)
	}
	return nil
}

// ExtractFlat resolves url without downloading and without expanding collection entries
func (y *YTDLP) ExtractFlat(ctx context.Context, url string) (*model.MediaInfo, error) {
	res, err := ytdlp.New().
		FlatPlaylist().
		DumpSingleJSON().
		Quiet().
		NoWarnings().
		Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp extraction failed: %w", err)
	}
	return ParseFlatInfo([]byte(res.Stdout))
}

// ParseFlatInfo decodes a --flat-playlist --dump-single-json document
func ParseFlatInfo(data []byte) (*model.MediaInfo, error) {
	var raw flatInfo
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}

	info := &model.MediaInfo{
		ID:        raw.ID,
		Title:     raw.Title,
		Extractor: raw.Extractor,
	}
	if raw.Entries != nil {
		info.HasEntries = true
		info.Entries = make([]model.Entry, 0, len(*raw.Entries))
		for _, e := range *raw.Entries {
			if e == nil {
				info.Entries = append(info.Entries, model.Entry{})
				continue
			}
			info.Entries = append(info.Entries, model.Entry{ID: e.ID, Title: e.Title})
		}
	}
	return info, nil
}

// OutputTemplate returns the output template for files written to dir
func OutputTemplate(dir string) string {
	return filepath.Join(dir, OutputTemplateName)
}

// Download fetches req.URL into req.OutputDir using spec
func (y *YTDLP) Download(ctx context.Context, req model.DownloadRequest, spec format.Spec, onPercent func(float64)) error {
	dl := y.command(req, spec)

	dl.ProgressFunc(y.progressInterval, func(update ytdlp.ProgressUpdate) {
		if onPercent == nil {
			return
		}
		if percent, ok := downloadPercent(update); ok {
			onPercent(percent)
		}
	})

	y.logger.Debug("starting yt-dlp download",
		zap.String("url", req.URL),
		zap.String("format", spec.Selector),
		zap.String("dir", req.OutputDir))

	if _, err := dl.Run(ctx, req.URL); err != nil {
		return fmt.Errorf("yt-dlp download failed for %s: %w", req.URL, err)
	}
	return nil
}

// downloadPercent reports progress only while bytes are being transferred
func downloadPercent(update ytdlp.ProgressUpdate) (float64, bool) {
	if update.Status != ytdlp.ProgressStatusDownloading {
		return 0, false
	}
	return min(update.Percent(), 100), true
}

func (y *YTDLP) command(req model.DownloadRequest, spec format.Spec) *ytdlp.Command {
	dl := ytdlp.New().
		NoWarnings().
		Format(spec.Selector).
		Output(OutputTemplate(req.OutputDir))

	if y.tempDir != "" {
		dl.Paths("temp:" + y.tempDir)
	}
	if spec.MergeFormat != "" {
		dl.MergeOutputFormat(spec.MergeFormat)
	}
	if pp := spec.PostProcess; pp != nil {
		dl.ExtractAudio().AudioFormat(pp.AudioFormat)
		if pp.AudioQuality != "" {
			dl.AudioQuality(pp.AudioQuality)
		}
		if pp.Args != "" {
			dl.PostProcessorArgs(pp.Args)
		}
	}
	return dl
}
