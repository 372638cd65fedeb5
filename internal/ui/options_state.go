package ui

import (
	"github.com/ytget/ytdlui/internal/config"
	"github.com/ytget/ytdlui/internal/model"
)

// mp4 cannot carry the two highest resolutions or webm audio
const (
	hdrVideoFormat   = "mkv"
	mp4VideoFormat   = "mp4"
	mp4AudioFormat   = "m4a"
	mp4MaxResolution = "1080p"
)

// OptionsView is what the option widgets show for a saved options document.
// Values are always members of their item lists, or empty when the list is empty.
type OptionsView struct {
	Kind model.OutputKind

	Video      string
	Audio      string
	Resolution string
	HDR        bool

	VideoItems      []string
	AudioItems      []string
	ResolutionItems []string

	VideoEnabled      bool
	AudioEnabled      bool
	ResolutionEnabled bool
	HDREnabled        bool
}

// NewOptionsView derives widget items, values and enablement from opts.
// opts is not modified: forced values are only shown, never saved.
func NewOptionsView(opts config.Options) OptionsView {
	kind := opts.OutputKind
	if !kind.IsValid() {
		kind = model.OutputDefault
	}
	saved := *opts.For(kind)

	v := OptionsView{
		Kind:              kind,
		HDR:               saved.HDR,
		VideoEnabled:      true,
		AudioEnabled:      true,
		ResolutionEnabled: true,
		HDREnabled:        true,
	}

	if kind == model.OutputAudioOnly {
		v.AudioItems = append([]string(nil), model.AudioFormats...)
		v.Audio = pick(v.AudioItems, saved.Audio)

		v.VideoEnabled = false
		v.ResolutionEnabled = false
		v.HDREnabled = false
		return v
	}

	v.VideoItems = append([]string(nil), model.VideoFormats...)
	v.AudioItems = append([]string(nil), model.AudioFormats[:2]...)
	v.ResolutionItems = append([]string(nil), model.Resolutions...)
	v.Video = pick(v.VideoItems, saved.Video)
	v.Resolution = pick(v.ResolutionItems, saved.Resolution)
	v.Audio = pick(v.AudioItems, saved.Audio)

	switch {
	case v.HDR:
		v.Video = hdrVideoFormat
		v.VideoEnabled = false
	case v.Video == mp4VideoFormat:
		if !model.Contains(model.Resolutions[2:], v.Resolution) {
			v.Resolution = mp4MaxResolution
		}
		v.ResolutionItems = v.ResolutionItems[2:]
		v.Audio = mp4AudioFormat
		v.AudioEnabled = false
	}

	if kind == model.OutputDefault {
		v.VideoEnabled = false
		v.AudioEnabled = false
		v.ResolutionEnabled = false
		v.HDREnabled = false
	}
	return v
}

// DownloadOptions builds the options of a run from the shown values
func (v OptionsView) DownloadOptions() model.DownloadOptions {
	opts := model.DownloadOptions{
		OutputKind: v.Kind,
		Audio:      v.Audio,
	}
	if v.Kind != model.OutputAudioOnly {
		opts.Video = v.Video
		opts.Width = model.ResolutionWidth[v.Resolution]
		opts.HDR = model.Bool(v.HDR)
	}
	return opts
}

// pick returns value when it is one of items, otherwise the first item
func pick(items []string, value string) string {
	if model.Contains(items, value) {
		return value
	}
	if len(items) == 0 {
		return ""
	}
	return items[0]
}
