package download

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/ytdlui/internal/format"
	"github.com/ytget/ytdlui/internal/model"
	"github.com/ytget/ytdlui/internal/platform"
)

// ErrRunInProgress is returned when a run is started while another one is active
var ErrRunInProgress = errors.New("download run already in progress")

// probeHandle is one in-flight or finished probe. result is readable after done is closed.
type probeHandle struct {
	done   chan struct{}
	result model.ProbeResult
}

func (h *probeHandle) finished() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// run is the snapshot a run works on. Nothing in it is shared with the controller.
type run struct {
	id         string
	urls       []string
	probes     []*probeHandle
	orphans    []*probeHandle
	spec       format.Spec
	outputDir  string
	onProgress func(model.Progress)
	onFinished func(model.RunSummary)
	startedAt  time.Time
	failed     []string
}

// Controller owns the URL list, the probe cache and the run state machine
type Controller struct {
	prober     Prober
	downloader Downloader
	recorder   Recorder
	logger     *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	urls       []string
	probes     map[string]*probeHandle
	orphans    []*probeHandle
	options    model.DownloadOptions
	outputDir  string
	state      model.RunState
	onProgress func(model.Progress)
	onFinished func(model.RunSummary)

	cancelled atomic.Bool
}

// Option configures a Controller
type Option func(*Controller)

// WithRecorder persists every finished run
func WithRecorder(r Recorder) Option {
	return func(c *Controller) {
		c.recorder = r
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController creates a new controller
func NewController(prober Prober, downloader Downloader, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		prober:     prober,
		downloader: downloader,
		logger:     zap.NewNop(),
		ctx:        ctx,
		cancel:     cancel,
		probes:     make(map[string]*probeHandle),
		state:      model.RunStateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnProgress sets the callback for download progress.
// It is called from the run goroutine.
func (c *Controller) OnProgress(fn func(model.Progress)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onProgress = fn
}

// OnFinished sets the callback fired once at the end of every run, cancelled or not.
// It is called from the run goroutine.
func (c *Controller) OnFinished(fn func(model.RunSummary)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onFinished = fn
}

// SetURLs replaces the URL list. New URLs are probed in the background; probes
// of removed URLs are kept so the next run can wait on them.
func (c *Controller) SetURLs(urls []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	present := make(map[string]struct{}, len(urls))
	for _, url := range urls {
		present[url] = struct{}{}
	}

	orphans := c.orphans[:0]
	for _, h := range c.orphans {
		if !h.finished() {
			orphans = append(orphans, h)
		}
	}
	for url, h := range c.probes {
		if _, ok := present[url]; ok {
			continue
		}
		delete(c.probes, url)
		if !h.finished() {
			orphans = append(orphans, h)
		}
	}
	c.orphans = orphans

	for _, url := range urls {
		if _, ok := c.probes[url]; !ok {
			c.probes[url] = c.launchProbe(url)
		}
	}
	c.urls = append([]string(nil), urls...)
}

// URLs returns the current URL list
func (c *Controller) URLs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.urls...)
}

// SetOptions sets the options used by the next run
func (c *Controller) SetOptions(opts model.DownloadOptions) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.options = opts
}

// SetOutputDir sets the output directory used by the next run
func (c *Controller) SetOutputDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outputDir = dir
}

// State returns the state of the current or last run
func (c *Controller) State() model.RunState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Busy reports whether a run is in flight
func (c *Controller) Busy() bool {
	return c.State().IsActive()
}

// Cancel asks the current run to stop at the next URL or entry boundary.
// The file being transferred is not interrupted.
func (c *Controller) Cancel() {
	if c.cancelled.CompareAndSwap(false, true) {
		c.logger.Info("download run cancel requested")
	}
}

// Close stops background probes. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.cancel()
}

// Start begins a run in the background
func (c *Controller) Start(ctx context.Context) error {
	r, err := c.begin()
	if err != nil {
		return err
	}
	go c.execute(ctx, r)
	return nil
}

// Run performs a run and returns its summary
func (c *Controller) Run(ctx context.Context) (model.RunSummary, error) {
	r, err := c.begin()
	if err != nil {
		return model.RunSummary{}, err
	}
	return c.execute(ctx, r), nil
}

func (c *Controller) launchProbe(url string) *probeHandle {
	h := &probeHandle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		h.result = c.prober.Probe(c.ctx, url)
	}()
	return h
}

// begin snapshots everything a run needs and moves to WaitingOnProbes
func (c *Controller) begin() (*run, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.IsActive() {
		return nil, ErrRunInProgress
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	r := &run{
		id:         id.String(),
		urls:       append([]string(nil), c.urls...),
		probes:     make([]*probeHandle, len(c.urls)),
		orphans:    c.orphans,
		spec:       format.Plan(c.options),
		outputDir:  c.outputDir,
		onProgress: c.onProgress,
		onFinished: c.onFinished,
		startedAt:  time.Now(),
	}
	for i, url := range c.urls {
		r.probes[i] = c.probes[url]
	}
	c.orphans = nil

	c.cancelled.Store(false)
	c.state = model.RunStateWaitingOnProbes
	return r, nil
}

// keepOrphans hands unfinished orphans back so the next run waits on them
func (c *Controller) keepOrphans(orphans []*probeHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, h := range orphans {
		if !h.finished() {
			c.orphans = append(c.orphans, h)
		}
	}
}

func (c *Controller) setState(state model.RunState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
}

func (c *Controller) isCancelled(ctx context.Context) bool {
	return c.cancelled.Load() || ctx.Err() != nil
}

func (c *Controller) execute(ctx context.Context, r *run) model.RunSummary {
	logger := c.logger.With(zap.String("run_id", r.id))
	logger.Info("download run started", zap.Int("urls", len(r.urls)))

	state := c.process(ctx, r, logger)

	summary := model.RunSummary{
		ID:         r.id,
		State:      state,
		TotalCount: len(r.urls),
		FailedURLs: append([]string{}, r.failed...),
		StartedAt:  r.startedAt,
		FinishedAt: time.Now(),
	}
	c.setState(state)

	logger.Info("download run finished",
		zap.String("state", state.String()),
		zap.Int("succeeded", summary.Succeeded()),
		zap.Int("failed", len(summary.FailedURLs)))

	if c.recorder != nil {
		if err := c.recorder.Record(context.WithoutCancel(ctx), summary); err != nil {
			logger.Warn("failed to record run", zap.Error(err))
		}
	}
	if r.onFinished != nil {
		r.onFinished(summary)
	}
	return summary
}

func (c *Controller) process(ctx context.Context, r *run, logger *zap.Logger) model.RunState {
	for _, h := range append(r.probes, r.orphans...) {
		select {
		case <-h.done:
		case <-ctx.Done():
			c.keepOrphans(r.orphans)
			return model.RunStateCancelled
		}
	}

	c.setState(model.RunStateDownloading)
	outputDir := platform.ResolveOutputDir(r.outputDir)
	total := len(r.urls)

	for i, url := range r.urls {
		if c.isCancelled(ctx) {
			return model.RunStateCancelled
		}

		result := r.probes[i].result
		if result.Failed() {
			logger.Warn("skipping URL without metadata", zap.String("url", url), zap.Error(result.Err))
			r.failed = append(r.failed, url)
			continue
		}

		progress := model.Progress{ItemIndex: i, ItemTotal: total, ItemTitle: result.Title}

		if !result.IsCollection() {
			if err := c.downloadOne(ctx, r, url, outputDir, progress); err != nil && !c.isCancelled(ctx) {
				logger.Error("download failed", zap.String("url", url), zap.Error(err))
				r.failed = append(r.failed, url)
			}
			continue
		}

		entryDir := c.collectionDir(outputDir, result.Title, logger)
		entryFailed := false
		for j, entry := range result.Entries {
			if c.isCancelled(ctx) {
				return model.RunStateCancelled
			}

			p := progress
			p.EntryIndex = j
			p.EntryTotal = len(result.Entries)
			p.EntryTitle = entry.Title

			entryURL := result.EntryURL(j)
			if err := c.downloadOne(ctx, r, entryURL, entryDir, p); err != nil && !c.isCancelled(ctx) {
				logger.Error("entry download failed",
					zap.String("url", url),
					zap.String("entry", entryURL),
					zap.Error(err))
				entryFailed = true
			}
		}
		if entryFailed {
			r.failed = append(r.failed, url)
		}
	}

	if c.isCancelled(ctx) {
		return model.RunStateCancelled
	}
	return model.RunStateCompleted
}

func (c *Controller) downloadOne(ctx context.Context, r *run, url, dir string, p model.Progress) error {
	onPercent := func(percent float64) {
		// nothing is reported once the run is cancelled
		if c.cancelled.Load() || r.onProgress == nil {
			return
		}
		p.Percent = percent
		r.onProgress(p)
	}
	return c.downloader.Download(ctx, model.DownloadRequest{URL: url, OutputDir: dir}, r.spec, onPercent)
}

// collectionDir returns the per-collection subdirectory, or outputDir when it cannot be created
func (c *Controller) collectionDir(outputDir, title string, logger *zap.Logger) string {
	dir := filepath.Join(outputDir, platform.SanitizeDirName(title))
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		logger.Debug("falling back to output directory", zap.String("dir", dir), zap.Error(err))
		return outputDir
	}
	return dir
}
