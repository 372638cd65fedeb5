package ui

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ytdlui/internal/config"
	"github.com/ytget/ytdlui/internal/model"
)

type fakeController struct {
	mu         sync.Mutex
	urls       []string
	options    model.DownloadOptions
	outputDir  string
	starts     int
	cancels    int
	startErr   error
	onProgress func(model.Progress)
	onFinished func(model.RunSummary)
}

func (f *fakeController) SetURLs(urls []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = urls
}

func (f *fakeController) URLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.urls
}

func (f *fakeController) SetOptions(opts model.DownloadOptions) { f.options = opts }
func (f *fakeController) SetOutputDir(dir string)               { f.outputDir = dir }
func (f *fakeController) OnProgress(fn func(model.Progress))    { f.onProgress = fn }
func (f *fakeController) OnFinished(fn func(model.RunSummary))  { f.onFinished = fn }
func (f *fakeController) Cancel()                               { f.cancels++ }

func (f *fakeController) Start(ctx context.Context) error {
	f.starts++
	return f.startErr
}

func newTestRootUI(t *testing.T, outputPath string) (*RootUI, *fakeController, *config.Settings) {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)
	window := app.NewWindow("test")

	settings := config.NewSettings(app, outputPath)
	controller := &fakeController{}
	return NewRootUI(window, settings, controller, nil), controller, settings
}

func TestRootUI_WiresControllerCallbacks(t *testing.T) {
	_, controller, _ := newTestRootUI(t, t.TempDir())

	assert.NotNil(t, controller.onProgress)
	assert.NotNil(t, controller.onFinished)
}

func TestRootUI_TextChangesReplaceURLList(t *testing.T) {
	ui, controller, _ := newTestRootUI(t, t.TempDir())

	ui.urlEntry.SetText("https://a.example/1\n  https://b.example/2\thttps://a.example/1\n")

	assert.Equal(t, []string{"https://a.example/1", "https://b.example/2", "https://a.example/1"}, controller.URLs())
}

func TestRootUI_PathValidation(t *testing.T) {
	dir := t.TempDir()
	ui, _, settings := newTestRootUI(t, dir)

	assert.Equal(t, dir, ui.pathEntry.Text)
	assert.False(t, ui.downloadBtn.Disabled())
	assert.Equal(t, "download", ui.downloadBtn.Text)

	missing := filepath.Join(dir, "missing")
	ui.pathEntry.SetText(missing)
	assert.True(t, ui.downloadBtn.Disabled())
	assert.Equal(t, "directory does not exist", ui.downloadBtn.Text)
	assert.Equal(t, dir, settings.GetOutputPath())

	other := t.TempDir()
	ui.pathEntry.SetText(other)
	assert.False(t, ui.downloadBtn.Disabled())
	assert.Equal(t, other, settings.GetOutputPath())
}

func TestRootUI_DownloadWithoutURLsDoesNothing(t *testing.T) {
	ui, controller, _ := newTestRootUI(t, t.TempDir())

	test.Tap(ui.downloadBtn)

	assert.Zero(t, controller.starts)
}

func TestRootUI_DownloadStartsRun(t *testing.T) {
	dir := t.TempDir()
	ui, controller, _ := newTestRootUI(t, dir)

	ui.urlEntry.SetText("https://a.example/1")
	test.Tap(ui.downloadBtn)

	assert.Equal(t, 1, controller.starts)
	assert.Equal(t, dir, controller.outputDir)
	assert.Equal(t, model.OutputDefault, controller.options.OutputKind)
	assert.Equal(t, "1920", controller.options.Width)
}

func TestRootUI_StartErrorHidesProgress(t *testing.T) {
	ui, controller, _ := newTestRootUI(t, t.TempDir())
	controller.startErr = errors.New("busy")

	ui.urlEntry.SetText("https://a.example/1")
	test.Tap(ui.downloadBtn)

	assert.Equal(t, 1, controller.starts)
}

func TestRootUI_OptionChangesArePersisted(t *testing.T) {
	ui, _, settings := newTestRootUI(t, t.TempDir())

	ui.formatSelect.SetSelected(model.OutputVideoAudio.String())
	assert.False(t, ui.videoSelect.Disabled())
	assert.True(t, ui.audioSelect.Disabled(), "mp4 locks audio")

	ui.videoSelect.SetSelected("mkv")
	assert.False(t, ui.audioSelect.Disabled())
	assert.Equal(t, model.Resolutions, ui.resolutionSelect.Options)

	ui.audioSelect.SetSelected("webm")
	ui.hdrCheck.SetChecked(true)
	assert.True(t, ui.videoSelect.Disabled())

	saved := settings.GetOptions()
	assert.Equal(t, model.OutputVideoAudio, saved.OutputKind)
	assert.Equal(t, config.KindOptions{Video: "mkv", Audio: "webm", Resolution: "1080p", HDR: true}, saved.VideoAudio)
	assert.Equal(t, config.DefaultOptions().Default, saved.Default)
}

func TestRootUI_AudioOnlyOptions(t *testing.T) {
	ui, controller, _ := newTestRootUI(t, t.TempDir())

	ui.formatSelect.SetSelected(model.OutputAudioOnly.String())
	ui.audioSelect.SetSelected("mp3")

	assert.True(t, ui.videoSelect.Disabled())
	assert.True(t, ui.resolutionSelect.Disabled())
	assert.True(t, ui.hdrCheck.Disabled())

	ui.urlEntry.SetText("https://a.example/1")
	test.Tap(ui.downloadBtn)

	assert.Equal(t, model.DownloadOptions{OutputKind: model.OutputAudioOnly, Audio: "mp3"}, controller.options)
}

func TestRootUI_FinishedClearsText(t *testing.T) {
	ui, controller, _ := newTestRootUI(t, t.TempDir())
	ui.urlEntry.SetText("https://a.example/1")

	controller.onFinished(model.RunSummary{State: model.RunStateCompleted, TotalCount: 1, FailedURLs: []string{}})

	assert.Empty(t, ui.urlEntry.Text)
}

func TestRootUI_CancelledRunKeepsText(t *testing.T) {
	ui, controller, _ := newTestRootUI(t, t.TempDir())
	ui.urlEntry.SetText("https://a.example/1")

	controller.onFinished(model.RunSummary{State: model.RunStateCancelled, TotalCount: 1})

	assert.Equal(t, "https://a.example/1", ui.urlEntry.Text)
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _, settings := newTestRootUI(t, filepath.Join(t.TempDir(), "missing"))

	ui.onLanguageChange("ru")

	assert.Equal(t, "ru", settings.GetLanguage())
	assert.Equal(t, "папка не существует", ui.downloadBtn.Text)
	assert.Equal(t, "Формат", ui.formatLabel.Text)
}

func TestProgressDialog(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)
	window := app.NewWindow("test")
	window.Resize(fyne.NewSize(800, 600))

	cancels := 0
	p := NewProgressDialog(window, NewLocalization(), func() { cancels++ })
	p.Show()
	assert.Equal(t, "please wait...", p.label.Text)
	assert.False(t, p.bar.Visible())

	p.Update(model.Progress{ItemIndex: 0, ItemTotal: 2, ItemTitle: "Clip", Percent: 40})
	assert.Equal(t, "1 (of 2)  Clip\n", p.label.Text)
	assert.True(t, p.bar.Visible())
	assert.InDelta(t, 40, p.bar.Value, 0.001)

	test.Tap(p.cancelBtn)
	test.Tap(p.cancelBtn)
	require.Equal(t, 1, cancels)
	assert.Equal(t, "please wait...", p.label.Text)

	p.Update(model.Progress{ItemIndex: 1, ItemTotal: 2, ItemTitle: "Other", Percent: 10})
	assert.Equal(t, "please wait...", p.label.Text)

	p.Show()
	assert.False(t, p.cancelBtn.Disabled())
	p.Hide()
}

func TestProgressText(t *testing.T) {
	tests := []struct {
		name     string
		progress model.Progress
		expected string
	}{
		{
			name:     "single item",
			progress: model.Progress{ItemIndex: 1, ItemTotal: 3, ItemTitle: "Song"},
			expected: "2 (of 3)  Song\n",
		},
		{
			name: "collection entry",
			progress: model.Progress{
				ItemIndex: 0, ItemTotal: 1, ItemTitle: "List",
				EntryIndex: 4, EntryTotal: 10, EntryTitle: "Track",
			},
			expected: "1 (of 1)  List\n5 (of 10)  Track",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProgressText(tt.progress))
		})
	}
}

func TestParseURLs(t *testing.T) {
	assert.Empty(t, ParseURLs(" \n\t "))
	assert.Equal(t, []string{"a", "b", "a"}, ParseURLs("a b\na"))
}
