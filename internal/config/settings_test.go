package config

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ytdlui/internal/model"
	"github.com/ytget/ytdlui/internal/platform"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "/srv/media")

	assert.Equal(t, app, settings.app)
	assert.Equal(t, "/srv/media", settings.defaultOutputPath)
}

func TestOutputPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "/srv/media")

	// default is written on first read
	assert.Equal(t, "/srv/media", settings.GetOutputPath())
	assert.Equal(t, "/srv/media", app.Preferences().String(KeyOutputPath))

	settings.SetOutputPath("/custom/downloads")
	assert.Equal(t, "/custom/downloads", settings.GetOutputPath())
}

func TestOutputPath_HomeDownloadsFallback(t *testing.T) {
	settings := NewSettings(test.NewApp(), "")

	expected, err := platform.GetHomeDownloadsDir()
	require.NoError(t, err)
	assert.Equal(t, expected, settings.GetOutputPath())
}

func TestOptions_Defaults(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, "")

	opts := settings.GetOptions()

	assert.Equal(t, DefaultOptions(), opts)
	assert.Equal(t, model.OutputDefault, opts.OutputKind)
	assert.Equal(t, KindOptions{Video: "mp4", Audio: "m4a", Resolution: "1080p"}, opts.Default)
	assert.Equal(t, KindOptions{Video: "mp4", Audio: "m4a", Resolution: "1080p"}, opts.VideoAudio)
	assert.Equal(t, KindOptions{Audio: "m4a"}, opts.AudioOnly)
	assert.NotEmpty(t, app.Preferences().String(KeyOptions))
}

func TestOptions_RoundTrip(t *testing.T) {
	settings := NewSettings(test.NewApp(), "")

	opts := settings.GetOptions()
	opts.OutputKind = model.OutputVideoAudio
	opts.Current().Video = "mkv"
	opts.Current().HDR = true
	opts.AudioOnly.Audio = "ogg"
	settings.SetOptions(opts)

	got := settings.GetOptions()
	assert.Equal(t, model.OutputVideoAudio, got.OutputKind)
	assert.Equal(t, KindOptions{Video: "mkv", Audio: "m4a", Resolution: "1080p", HDR: true}, got.VideoAudio)
	assert.Equal(t, "ogg", got.AudioOnly.Audio)
	assert.Equal(t, DefaultOptions().Default, got.Default)
}

func TestOptions_InvalidDocumentIsReplaced(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{broken"},
		{"unknown output kind", `{"output_format":"video_only"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := test.NewApp()
			app.Preferences().SetString(KeyOptions, tt.raw)

			opts := NewSettings(app, "").GetOptions()

			assert.Equal(t, DefaultOptions(), opts)
			assert.NotEqual(t, tt.raw, app.Preferences().String(KeyOptions))
		})
	}
}

func TestOptionsFor(t *testing.T) {
	opts := DefaultOptions()

	assert.Same(t, &opts.Default, opts.For(model.OutputDefault))
	assert.Same(t, &opts.VideoAudio, opts.For(model.OutputVideoAudio))
	assert.Same(t, &opts.AudioOnly, opts.For(model.OutputAudioOnly))
	assert.Same(t, &opts.Default, opts.For("unknown"))
}

func TestRotateTemp(t *testing.T) {
	settings := NewSettings(test.NewApp(), "")

	previous, err := platform.NewSessionTempDir()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(previous, "leftover.part"), []byte("x"), 0o644))
	settings.SetTemp(previous)

	current, err := platform.NewSessionTempDir()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(current) })

	require.NoError(t, settings.RotateTemp(current))

	assert.False(t, platform.IsDir(previous))
	assert.Equal(t, current, settings.GetTemp())
}

func TestRotateTemp_FirstLaunch(t *testing.T) {
	settings := NewSettings(test.NewApp(), "")

	assert.Empty(t, settings.GetTemp())
	assert.NoError(t, settings.RotateTemp("/tmp/ytdlui-new"))
	assert.Equal(t, "/tmp/ytdlui-new", settings.GetTemp())
}

func TestLanguage(t *testing.T) {
	settings := NewSettings(test.NewApp(), "")

	assert.Equal(t, DefaultLanguage, settings.GetLanguage())

	settings.SetLanguage("pt")
	assert.Equal(t, "pt", settings.GetLanguage())
}
