package model

// OutputKind selects what a download produces.
type OutputKind string

const (
	OutputDefault    OutputKind = "default"
	OutputVideoAudio OutputKind = "video+audio"
	OutputAudioOnly  OutputKind = "audio_only"
)

// String returns the string representation of OutputKind
func (k OutputKind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the known output kinds
func (k OutputKind) IsValid() bool {
	for _, known := range OutputKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Fixed option enumerations, in display order.
var (
	OutputKinds  = []OutputKind{OutputDefault, OutputVideoAudio, OutputAudioOnly}
	VideoFormats = []string{"mp4", "mkv"}
	AudioFormats = []string{"m4a", "webm", "mp3", "ogg"}
	Resolutions  = []string{"2160p", "1440p", "1080p", "720p", "480p", "360p"}
)

// ResolutionWidth maps a resolution label to the maximum pixel width passed to
// the format selector.
var ResolutionWidth = map[string]string{
	"2160p": "3840",
	"1440p": "2560",
	"1080p": "1920",
	"720p":  "1280",
	"480p":  "854",
	"360p":  "640",
}

// DownloadOptions is the format selection for one run. The zero value means
// "no options", which plans to plain "best".
type DownloadOptions struct {
	OutputKind OutputKind
	Video      string
	Audio      string
	Width      string
	// HDR is nil when the caller never set it.
	HDR *bool
}

// IsEmpty reports whether no option was set at all
func (o DownloadOptions) IsEmpty() bool {
	return o.OutputKind == "" && o.Video == "" && o.Audio == "" && o.Width == "" && o.HDR == nil
}

// Bool returns a pointer to b, for filling DownloadOptions.HDR
func Bool(b bool) *bool {
	return &b
}

// IsKnownWidth reports whether width appears in the resolution table
func IsKnownWidth(width string) bool {
	for _, w := range ResolutionWidth {
		if w == width {
			return true
		}
	}
	return false
}

// Contains reports whether value is one of values
func Contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
