package model

import (
	"fmt"
	"strings"
	"time"
)

// MaxTitleLength bounds titles in progress labels and output file names
const MaxTitleLength = 100

// Progress is emitted while a file is being downloaded
type Progress struct {
	ItemIndex  int // 0-based
	ItemTotal  int
	ItemTitle  string
	EntryIndex int // 0-based, meaningful only when EntryTotal > 0
	EntryTotal int
	EntryTitle string
	Percent    float64 // 0 to 100
}

// Title returns the item line, e.g. "2 (of 5)  Some title"
func (p Progress) Title() string {
	return counterLabel(p.ItemIndex, p.ItemTotal, p.ItemTitle)
}

// Subtitle returns the entry line, or "" outside of collections
func (p Progress) Subtitle() string {
	if p.EntryTotal == 0 {
		return ""
	}
	return counterLabel(p.EntryIndex, p.EntryTotal, p.EntryTitle)
}

func counterLabel(index, total int, title string) string {
	return fmt.Sprintf("%d (of %d)  %s", index+1, total, TruncateTitle(title))
}

// TruncateTitle cuts title to MaxTitleLength runes
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= MaxTitleLength {
		return title
	}
	return string(runes[:MaxTitleLength])
}

// RunSummary describes a finished run
type RunSummary struct {
	ID         string
	State      RunState
	TotalCount int
	FailedURLs []string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Succeeded returns the number of URLs that did not fail
func (s RunSummary) Succeeded() int {
	return s.TotalCount - len(s.FailedURLs)
}

// Cancelled reports whether the run was stopped by the user
func (s RunSummary) Cancelled() bool {
	return s.State == RunStateCancelled
}

// Message renders the end-of-run report shown to the user
func (s RunSummary) Message() string {
	var b strings.Builder

	if len(s.FailedURLs) == 0 || s.Succeeded() > 0 {
		b.WriteString("::: Download Completed :::\n")
		b.WriteString(fmt.Sprintf("%d (of %d) URL(s)", s.Succeeded(), s.TotalCount))
		if len(s.FailedURLs) > 0 {
			b.WriteString("\n\n")
		}
	}

	if len(s.FailedURLs) > 0 {
		b.WriteString("::: Error :::\n")
		b.WriteString(strings.Join(s.FailedURLs, "\n"))
	}

	b.WriteString("\n")
	return b.String()
}
