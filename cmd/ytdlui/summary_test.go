package main

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/ytdlui/internal/model"
)

func withoutColor(t *testing.T) {
	t.Helper()
	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })
}

func TestPrintSummary(t *testing.T) {
	withoutColor(t)

	tests := []struct {
		name     string
		summary  model.RunSummary
		expected string
	}{
		{
			name:     "all succeeded",
			summary:  model.RunSummary{State: model.RunStateCompleted, TotalCount: 2, FailedURLs: []string{}},
			expected: "Downloaded 2 (of 2) URL(s)\n",
		},
		{
			name:     "partial failure",
			summary:  model.RunSummary{State: model.RunStateCompleted, TotalCount: 2, FailedURLs: []string{"https://x/bad"}},
			expected: "Downloaded 1 (of 2) URL(s)\nFailed: https://x/bad\n",
		},
		{
			name:     "everything failed",
			summary:  model.RunSummary{State: model.RunStateCompleted, TotalCount: 1, FailedURLs: []string{"https://x/bad"}},
			expected: "Failed: https://x/bad\n",
		},
		{
			name:     "cancelled",
			summary:  model.RunSummary{State: model.RunStateCancelled, TotalCount: 3},
			expected: "Download cancelled\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printSummary(&buf, tt.summary)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestPrintHistory(t *testing.T) {
	withoutColor(t)

	var buf bytes.Buffer
	printHistory(&buf, nil, 0)
	assert.Equal(t, "No runs recorded\n", buf.String())

	started := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)
	runs := []model.RunSummary{{
		ID:         "0190a1b2-c3d4-7e5f",
		State:      model.RunStateCompleted,
		TotalCount: 3,
		FailedURLs: []string{"https://x/bad"},
		StartedAt:  started,
		FinishedAt: started.Add(90 * time.Second),
	}}
	buf.Reset()
	printHistory(&buf, runs, 1)

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "0190a1b2  Completed ")
	assert.Contains(t, out, "2/3")
	assert.Contains(t, out, "2024-05-01 10:00:00")
	assert.Contains(t, out, "1m30s")
	assert.NotContains(t, out, "Showing")

	buf.Reset()
	printHistory(&buf, runs, 42)
	assert.Contains(t, buf.String(), "Showing 1 of 42 runs\n")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 8))
	assert.Equal(t, "abcdefgh", truncate("abcdefghij", 8))
}

func TestBarName(t *testing.T) {
	assert.Equal(t, "1 (of 2)  Clip", barName(model.Progress{ItemTotal: 2, ItemTitle: "Clip"}))
	assert.Equal(t, "3 (of 4)  Track", barName(model.Progress{
		ItemTotal: 1, ItemTitle: "List",
		EntryIndex: 2, EntryTotal: 4, EntryTitle: "Track",
	}))
}

func TestProgressBars(t *testing.T) {
	bars := newProgressBars(io.Discard)

	bars.Update(model.Progress{ItemTotal: 2, ItemTitle: "a", Percent: 50})
	first := bars.bar
	bars.Update(model.Progress{ItemTotal: 2, ItemTitle: "a", Percent: 100})
	assert.Same(t, first, bars.bar)

	bars.Update(model.Progress{ItemIndex: 1, ItemTotal: 2, ItemTitle: "b", Percent: 10})
	assert.NotSame(t, first, bars.bar)

	bars.Wait()
}
