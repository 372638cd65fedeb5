package probe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/ytget/ytdlui/internal/model"
)

// ErrExtract is wrapped by every probe failure
var ErrExtract = errors.New("metadata extraction failed")

// DefaultConcurrency bounds simultaneous entry re-probes of one collection
const DefaultConcurrency = 8

// Collection-capable sources and their canonical per-entry URL prefixes
var collectionSources = []struct {
	extractorPrefix string
	baseURL         string
}{
	{"youtube", "https://youtu.be/"},
	{"vimeo", "https://vimeo.com/"},
}

// CollectionBaseURL returns the per-entry URL prefix for an extractor name, or
// "" when the source is not collection-capable.
func CollectionBaseURL(extractor string) string {
	for _, src := range collectionSources {
		if strings.HasPrefix(extractor, src.extractorPrefix) {
			return src.baseURL
		}
	}
	return ""
}

// Prober resolves URLs into probe results
type Prober struct {
	extractor   Extractor
	titles      TitleSource
	concurrency int
	logger      *zap.Logger
}

// Option configures a Prober
type Option func(*Prober)

// WithTitleSource sets a bulk title resolver tried before per-entry re-probes
func WithTitleSource(ts TitleSource) Option {
	return func(p *Prober) {
		p.titles = ts
	}
}

// WithConcurrency sets the per-collection re-probe limit
func WithConcurrency(n int) Option {
	return func(p *Prober) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(p *Prober) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a new prober
func New(extractor Extractor, opts ...Option) *Prober {
	p := &Prober{
		extractor:   extractor,
		concurrency: DefaultConcurrency,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe resolves url. It never fails loudly: extraction errors leave the title
// empty and are reported through ProbeResult.Err. For collections whose entries
// lack titles, Probe returns only after every entry has been re-probed.
func (p *Prober) Probe(ctx context.Context, url string) model.ProbeResult {
	result := model.ProbeResult{URL: url}

	info, err := p.extractor.ExtractFlat(ctx, url)
	if err == nil && info == nil {
		err = errors.New("empty extraction result")
	}
	if err != nil {
		result.Err = fmt.Errorf("%w: %s: %v", ErrExtract, url, err)
		p.logger.Debug("probe failed", zap.String("url", url), zap.Error(err))
		return result
	}

	result.Title = info.Title
	result.CollectionBaseURL = CollectionBaseURL(info.Extractor)

	if !info.HasEntries || result.CollectionBaseURL == "" {
		result.ID = info.ID
		return result
	}

	result.Entries = append([]model.Entry(nil), info.Entries...)

	// Without every entry id the collection is downloaded as a whole.
	if result.MissingEntryIDs() {
		result.ID = info.ID
		return result
	}

	if result.MissingEntryTitles() {
		p.resolveEntryTitles(ctx, &result)
	}

	p.logger.Debug("probe resolved collection",
		zap.String("url", url),
		zap.String("title", result.Title),
		zap.Int("entries", len(result.Entries)))

	return result
}

// resolveEntryTitles fills missing entry titles in place, keeping entry order.
func (p *Prober) resolveEntryTitles(ctx context.Context, result *model.ProbeResult) {
	if p.titles != nil {
		titles, err := p.titles.CollectionTitles(ctx, result.URL)
		if err != nil {
			p.logger.Debug("bulk title lookup failed", zap.String("url", result.URL), zap.Error(err))
		}
		for i := range result.Entries {
			if result.Entries[i].Title == "" {
				result.Entries[i].Title = titles[result.Entries[i].ID]
			}
		}
	}

	children := pool.New().WithMaxGoroutines(p.concurrency)
	for i := range result.Entries {
		if result.Entries[i].Title != "" {
			continue
		}
		entryURL := result.EntryURL(i)
		children.Go(func() {
			child := p.Probe(ctx, entryURL)
			// each goroutine owns exactly one index
			result.Entries[i].Title = child.Title
		})
	}
	children.Wait()
}
