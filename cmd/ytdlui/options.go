package main

import (
	"fmt"

	"github.com/ytget/ytdlui/internal/model"
)

// formatFlags are the format options of the download command
type formatFlags struct {
	format     string
	video      string
	audio      string
	resolution string
	hdr        bool
}

func defaultFormatFlags() formatFlags {
	return formatFlags{
		format:     model.OutputVideoAudio.String(),
		video:      "mp4",
		audio:      "m4a",
		resolution: "1080p",
	}
}

// downloadOptions validates the flags and maps them to the options of a run
func (f formatFlags) downloadOptions() (model.DownloadOptions, error) {
	kind := model.OutputKind(f.format)
	if !kind.IsValid() {
		return model.DownloadOptions{}, fmt.Errorf("unknown format %q, expected one of %v", f.format, model.OutputKinds)
	}
	if !model.Contains(model.AudioFormats, f.audio) {
		return model.DownloadOptions{}, fmt.Errorf("unknown audio format %q, expected one of %v", f.audio, model.AudioFormats)
	}

	if kind == model.OutputAudioOnly {
		return model.DownloadOptions{OutputKind: kind, Audio: f.audio}, nil
	}

	if !model.Contains(model.VideoFormats, f.video) {
		return model.DownloadOptions{}, fmt.Errorf("unknown video format %q, expected one of %v", f.video, model.VideoFormats)
	}
	width, ok := model.ResolutionWidth[f.resolution]
	if !ok {
		return model.DownloadOptions{}, fmt.Errorf("unknown resolution %q, expected one of %v", f.resolution, model.Resolutions)
	}

	return model.DownloadOptions{
		OutputKind: kind,
		Video:      f.video,
		Audio:      f.audio,
		Width:      width,
		HDR:        model.Bool(f.hdr),
	}, nil
}
