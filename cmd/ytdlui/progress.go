package main

import (
	"io"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/ytget/ytdlui/internal/model"
)

// progressBars shows one bar per downloaded file
type progressBars struct {
	progress *mpb.Progress

	mu  sync.Mutex
	bar *mpb.Bar
	// item and entry index of the current bar
	key [2]int
}

func newProgressBars(out io.Writer) *progressBars {
	return &progressBars{
		progress: mpb.New(mpb.WithOutput(out), mpb.WithAutoRefresh()),
	}
}

// Update is called from the run goroutine
func (b *progressBars) Update(p model.Progress) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := [2]int{p.ItemIndex, p.EntryIndex}
	if b.bar == nil || key != b.key {
		b.finishLocked()
		b.bar = b.progress.AddBar(100,
			mpb.PrependDecorators(decor.Name(barName(p)+" ")),
			mpb.AppendDecorators(decor.Percentage()),
		)
		b.key = key
	}
	b.bar.SetCurrent(int64(p.Percent))
}

// Wait stops the last bar and flushes the output
func (b *progressBars) Wait() {
	b.mu.Lock()
	b.finishLocked()
	b.mu.Unlock()
	b.progress.Wait()
}

func (b *progressBars) finishLocked() {
	if b.bar != nil && !b.bar.Completed() {
		b.bar.Abort(false)
	}
}

// barName labels a bar with the entry line inside collections, else the item line
func barName(p model.Progress) string {
	if sub := p.Subtitle(); sub != "" {
		return sub
	}
	return p.Title()
}
