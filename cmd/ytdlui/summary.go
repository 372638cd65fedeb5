package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/ytget/ytdlui/internal/model"
)

// printSummary reports a finished run
func printSummary(w io.Writer, s model.RunSummary) {
	if s.Cancelled() {
		color.New(color.FgYellow).Fprintln(w, "Download cancelled")
		return
	}

	if len(s.FailedURLs) == 0 || s.Succeeded() > 0 {
		color.New(color.FgGreen, color.Bold).Fprintf(w, "Downloaded %d (of %d) URL(s)\n", s.Succeeded(), s.TotalCount)
	}

	red := color.New(color.FgRed)
	for _, url := range s.FailedURLs {
		red.Fprintf(w, "Failed: %s\n", url)
	}
}

// printHistory prints one line per recorded run. total is the number of runs
// stored, which may exceed len(runs) when the listing was limited.
func printHistory(w io.Writer, runs []model.RunSummary, total int64) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded")
		return
	}

	bold := color.New(color.Bold)
	bold.Fprintf(w, "%-8s  %-10s  %-7s  %-19s  %s\n", "ID", "STATE", "OK", "STARTED", "DURATION")
	for _, r := range runs {
		state := r.State.String()
		switch {
		case r.Cancelled():
			state = color.YellowString("%-10s", state)
		case len(r.FailedURLs) > 0:
			state = color.RedString("%-10s", state)
		default:
			state = color.GreenString("%-10s", state)
		}
		fmt.Fprintf(w, "%-8s  %s  %-7s  %-19s  %s\n",
			truncate(r.ID, 8),
			state,
			fmt.Sprintf("%d/%d", r.Succeeded(), r.TotalCount),
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.FinishedAt.Sub(r.StartedAt).Round(time.Second))
	}
	if total > int64(len(runs)) {
		fmt.Fprintf(w, "Showing %d of %d runs\n", len(runs), total)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
