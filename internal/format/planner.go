package format

import (
	"fmt"
	"strings"

	"github.com/ytget/ytdlui/internal/model"
)

// Fallback is the last-resort alternative of every selector
const Fallback = "best"

// Codec constraints per video container
const (
	excludeAV1  = "vcodec!*=av01"
	excludeVP92 = "vcodec!*=vp9.2"
)

// Spec is the planned format selection for one run
type Spec struct {
	// Selector is the yt-dlp --format expression, alternatives joined by "/".
	Selector string
	// MergeFormat is the --merge-output-format container, empty for audio.
	MergeFormat string
	// PostProcess is nil when the downloaded file is kept as is.
	PostProcess *PostProcess
}

// PostProcess is an audio extraction step run after the download
type PostProcess struct {
	AudioFormat  string
	AudioQuality string
	// Args are extra ffmpeg arguments for the extraction step.
	Args string
}

// Plan builds the Spec for opts. Invalid or incomplete options silently plan
// to Fallback.
func Plan(opts model.DownloadOptions) Spec {
	fallback := Spec{Selector: Fallback}

	if opts.IsEmpty() {
		return fallback
	}
	if !opts.OutputKind.IsValid() || !model.Contains(model.AudioFormats, opts.Audio) {
		return fallback
	}

	audio := fmt.Sprintf("bestaudio[ext=%s]", audioContainer(opts.Audio))

	if opts.OutputKind == model.OutputAudioOnly {
		spec := Spec{Selector: join(audio, Fallback)}
		switch opts.Audio {
		case "mp3":
			spec.PostProcess = &PostProcess{AudioFormat: "mp3", AudioQuality: "0"}
		case "ogg":
			spec.PostProcess = &PostProcess{AudioFormat: "vorbis", Args: "-c:a copy"}
		}
		return spec
	}

	if !model.Contains(model.VideoFormats, opts.Video) || !model.IsKnownWidth(opts.Width) || opts.HDR == nil {
		return fallback
	}

	container, codec := videoContainer(opts.Video)
	video := fmt.Sprintf("bestvideo[ext=%s][%s][width<=%s]", container, codec, opts.Width)

	alternatives := []string{video + "+" + audio}
	if *opts.HDR && container == "webm" {
		hdr := strings.Replace(video, "!*=", "*=", 1)
		alternatives = append([]string{hdr + "+" + audio}, alternatives...)
	}

	return Spec{
		Selector:    join(append(alternatives, Fallback)...),
		MergeFormat: opts.Video,
	}
}

func audioContainer(audio string) string {
	if audio == "m4a" {
		return "m4a"
	}
	return "webm"
}

func videoContainer(video string) (container, codec string) {
	if video == "mp4" {
		return "mp4", excludeAV1
	}
	return "webm", excludeVP92
}

func join(alternatives ...string) string {
	return strings.Join(alternatives, "/")
}
