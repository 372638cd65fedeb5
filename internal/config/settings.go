package config

import (
	"encoding/json"

	"fyne.io/fyne/v2"

	"github.com/ytget/ytdlui/internal/model"
	"github.com/ytget/ytdlui/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputPath = "output_path"
	KeyOptions    = "options"
	KeyTemp       = "temp"
	KeyLanguage   = "language"
)

// DefaultLanguage follows the system locale
const DefaultLanguage = "system"

// KindOptions holds the widget values remembered for one output kind
type KindOptions struct {
	Video      string `json:"video,omitempty"`
	Audio      string `json:"audio"`
	Resolution string `json:"resolution,omitempty"`
	HDR        bool   `json:"hdr"`
}

// Options is the persisted options document, one entry per output kind
type Options struct {
	OutputKind model.OutputKind `json:"output_format"`
	Default    KindOptions      `json:"default"`
	VideoAudio KindOptions      `json:"video+audio"`
	AudioOnly  KindOptions      `json:"audio_only"`
}

// DefaultOptions returns the options used on first launch
func DefaultOptions() Options {
	video := KindOptions{Video: "mp4", Audio: "m4a", Resolution: "1080p"}
	return Options{
		OutputKind: model.OutputDefault,
		Default:    video,
		VideoAudio: video,
		AudioOnly:  KindOptions{Audio: "m4a"},
	}
}

// For returns the remembered values of kind
func (o *Options) For(kind model.OutputKind) *KindOptions {
	switch kind {
	case model.OutputVideoAudio:
		return &o.VideoAudio
	case model.OutputAudioOnly:
		return &o.AudioOnly
	default:
		return &o.Default
	}
}

// Current returns the remembered values of the selected output kind
func (o *Options) Current() *KindOptions {
	return o.For(o.OutputKind)
}

// Settings manages user preferences persisted by the platform
type Settings struct {
	app               fyne.App
	defaultOutputPath string
}

// NewSettings creates a new settings manager. defaultOutputPath is used when no
// output path was saved yet; when empty the user's Downloads directory is used.
func NewSettings(app fyne.App, defaultOutputPath string) *Settings {
	return &Settings{app: app, defaultOutputPath: defaultOutputPath}
}

// GetOutputPath returns the configured output directory
func (s *Settings) GetOutputPath() string {
	dir := s.app.Preferences().String(KeyOutputPath)
	if dir != "" {
		return dir
	}

	dir = s.defaultOutputPath
	if dir == "" {
		var err error
		dir, err = platform.GetHomeDownloadsDir()
		if err != nil {
			dir = platform.ExecutableDir()
		}
	}
	s.SetOutputPath(dir)
	return dir
}

// SetOutputPath sets the output directory
func (s *Settings) SetOutputPath(dir string) {
	s.app.Preferences().SetString(KeyOutputPath, dir)
}

// GetOptions returns the saved options, writing the defaults on first read.
// An unreadable document is replaced with the defaults.
func (s *Settings) GetOptions() Options {
	raw := s.app.Preferences().String(KeyOptions)
	if raw != "" {
		var opts Options
		if err := json.Unmarshal([]byte(raw), &opts); err == nil && opts.OutputKind.IsValid() {
			return opts
		}
	}

	opts := DefaultOptions()
	s.SetOptions(opts)
	return opts
}

// SetOptions saves the options document
func (s *Settings) SetOptions(opts Options) {
	data, err := json.Marshal(opts)
	if err != nil {
		return
	}
	s.app.Preferences().SetString(KeyOptions, string(data))
}

// GetLanguage returns the UI language code
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the UI language code
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetTemp returns the temp directory recorded by the previous session
func (s *Settings) GetTemp() string {
	return s.app.Preferences().String(KeyTemp)
}

// SetTemp records the temp directory of the current session
func (s *Settings) SetTemp(dir string) {
	s.app.Preferences().SetString(KeyTemp, dir)
}

// RotateTemp removes the previous session's temp directory and records current
// in its place. The record is replaced even when removal fails.
func (s *Settings) RotateTemp(current string) error {
	err := platform.CleanupTemp(s.GetTemp())
	s.SetTemp(current)
	return err
}
