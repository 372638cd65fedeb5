package ui

import (
	"context"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/ytdlui/internal/config"
	"github.com/ytget/ytdlui/internal/model"
	"github.com/ytget/ytdlui/internal/platform"
)

// RunController is the part of download.Controller the window drives
type RunController interface {
	SetURLs(urls []string)
	URLs() []string
	SetOptions(opts model.DownloadOptions)
	SetOutputDir(dir string)
	OnProgress(fn func(model.Progress))
	OnFinished(fn func(model.RunSummary))
	Start(ctx context.Context) error
	Cancel()
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	controller   RunController
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	urlEntry    *widget.Entry
	downloadBtn *widget.Button
	pathEntry   *widget.Entry
	browseBtn   *widget.Button

	saveToLabel     *widget.Label
	formatLabel     *widget.Label
	videoLabel      *widget.Label
	audioLabel      *widget.Label
	resolutionLabel *widget.Label

	formatSelect     *widget.Select
	videoSelect      *widget.Select
	audioSelect      *widget.Select
	resolutionSelect *widget.Select
	hdrCheck         *widget.Check

	progress *ProgressDialog

	options config.Options
	// set while widgets are being refilled so their change handlers stay quiet
	refreshing bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, controller RunController, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		controller:   controller,
		settings:     settings,
		localization: localization,
		logger:       logger,
		options:      settings.GetOptions(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	controller.OnProgress(ui.onProgress)
	controller.OnFinished(ui.onFinished)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewMultiLineEntry()
	ui.urlEntry.Wrapping = fyne.TextWrapOff
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURLs))
	ui.urlEntry.OnChanged = ui.onURLsChanged

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.saveToLabel = widget.NewLabel(ui.localization.GetText(KeySaveTo))
	ui.pathEntry = widget.NewEntry()
	ui.pathEntry.OnChanged = ui.onPathChanged
	ui.browseBtn = widget.NewButton(BrowseButtonLabel, ui.onBrowseClick)
	pathRow := container.NewBorder(nil, nil, ui.saveToLabel, ui.browseBtn, ui.pathEntry)

	ui.formatLabel = widget.NewLabel(ui.localization.GetText(KeyFormat))
	kinds := make([]string, len(model.OutputKinds))
	for i, kind := range model.OutputKinds {
		kinds[i] = kind.String()
	}
	ui.formatSelect = widget.NewSelect(kinds, ui.onFormatChanged)

	ui.videoLabel = widget.NewLabel(ui.localization.GetText(KeyVideo))
	ui.videoSelect = widget.NewSelect(nil, ui.onVideoChanged)

	ui.audioLabel = widget.NewLabel(ui.localization.GetText(KeyAudio))
	ui.audioSelect = widget.NewSelect(nil, ui.onAudioChanged)

	ui.resolutionLabel = widget.NewLabel(ui.localization.GetText(KeyUpTo))
	ui.resolutionSelect = widget.NewSelect(nil, ui.onResolutionChanged)

	ui.hdrCheck = widget.NewCheck(ui.localization.GetText(KeyHDR), ui.onHDRChanged)

	optionsRow := container.NewHBox(
		ui.formatLabel, ui.formatSelect,
		ui.videoLabel, ui.videoSelect,
		ui.resolutionLabel, ui.resolutionSelect,
		ui.hdrCheck,
		ui.audioLabel, ui.audioSelect,
	)

	bottom := container.NewVBox(
		container.NewHScroll(optionsRow),
		pathRow,
		ui.downloadBtn,
	)

	ui.progress = NewProgressDialog(ui.window, ui.localization, ui.controller.Cancel)

	ui.refreshOptions()
	ui.pathEntry.SetText(ui.settings.GetOutputPath())
	ui.onPathChanged(ui.pathEntry.Text)

	ui.window.SetContent(container.NewBorder(nil, bottom, nil, nil, ui.urlEntry))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.logger.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openFolderItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenFolder), ui.onOpenFolder)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(code)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openFolderItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURLs))
	ui.saveToLabel.SetText(ui.localization.GetText(KeySaveTo))
	ui.formatLabel.SetText(ui.localization.GetText(KeyFormat))
	ui.videoLabel.SetText(ui.localization.GetText(KeyVideo))
	ui.audioLabel.SetText(ui.localization.GetText(KeyAudio))
	ui.resolutionLabel.SetText(ui.localization.GetText(KeyUpTo))
	ui.hdrCheck.Text = ui.localization.GetText(KeyHDR)
	ui.hdrCheck.Refresh()
	ui.progress.Refresh()

	ui.onPathChanged(ui.pathEntry.Text)
}

// onURLsChanged hands the whitespace-separated URL list to the controller
func (ui *RootUI) onURLsChanged(text string) {
	ui.controller.SetURLs(ParseURLs(text))
}

// onPathChanged enables download only while the path is an existing directory
func (ui *RootUI) onPathChanged(path string) {
	if !platform.IsDir(path) {
		ui.downloadBtn.SetText(ui.localization.GetText(KeyDirectoryMissing))
		ui.downloadBtn.Disable()
		return
	}

	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.downloadBtn.Enable()
	ui.settings.SetOutputPath(path)
}

func (ui *RootUI) onBrowseClick() {
	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.logger.Warn("folder dialog failed", zap.Error(err))
			return
		}
		if uri == nil {
			return
		}
		ui.pathEntry.SetText(uri.Path())
	}, ui.window)

	if platform.IsDir(ui.pathEntry.Text) {
		if location, err := storage.ListerForURI(storage.NewFileURI(ui.pathEntry.Text)); err == nil {
			folderDialog.SetLocation(location)
		}
	}
	folderDialog.Show()
}

// onDownloadClick starts a run over the current URL list
func (ui *RootUI) onDownloadClick() {
	if len(ui.controller.URLs()) == 0 {
		return
	}

	opts := NewOptionsView(ui.options).DownloadOptions()
	ui.controller.SetOptions(opts)
	ui.controller.SetOutputDir(ui.pathEntry.Text)

	ui.progress.Show()
	if err := ui.controller.Start(context.Background()); err != nil {
		ui.logger.Error("failed to start download run", zap.Error(err))
		ui.progress.Hide()
		dialog.ShowInformation(ui.localization.GetText(KeyInfo),
			ui.localization.GetText(KeyErrorStartRun)+": "+err.Error(), ui.window)
		return
	}

	ui.logger.Info("download run requested",
		zap.String("output_kind", opts.OutputKind.String()),
		zap.String("output_dir", ui.pathEntry.Text))
}

// onProgress is called from the run goroutine
func (ui *RootUI) onProgress(progress model.Progress) {
	fyne.Do(func() {
		ui.progress.Update(progress)
	})
}

// onFinished is called from the run goroutine
func (ui *RootUI) onFinished(summary model.RunSummary) {
	fyne.Do(func() {
		ui.progress.Hide()
		if summary.Cancelled() {
			return
		}
		ui.urlEntry.SetText("")
		ui.showInfoDialog(summary)
	})
}

// showInfoDialog reports a completed run
func (ui *RootUI) showInfoDialog(summary model.RunSummary) {
	message := widget.NewLabel(summary.Message())
	openBtn := widget.NewButton(ui.localization.GetText(KeyOpenFolder), ui.onOpenFolder)

	content := container.NewVBox(message, container.NewCenter(openBtn))
	info := dialog.NewCustom(ui.localization.GetText(KeyInfo), ui.localization.GetText(KeyOK), content, ui.window)
	info.Resize(fyne.NewSize(InfoLabelMinWidth, content.MinSize().Height))
	info.Show()
}

func (ui *RootUI) onOpenFolder() {
	dir := platform.ResolveOutputDir(ui.pathEntry.Text)
	if err := platform.RevealDirectory(dir); err != nil {
		ui.logger.Warn("failed to open folder", zap.String("dir", dir), zap.Error(err))
		dialog.ShowInformation(ui.localization.GetText(KeyInfo),
			ui.localization.GetText(KeyErrorOpenFolder)+": "+dir, ui.window)
	}
}

func (ui *RootUI) onFormatChanged(value string) {
	if ui.refreshing {
		return
	}
	ui.options.OutputKind = model.OutputKind(value)
	ui.refreshOptions()
	ui.saveOptions()
}

func (ui *RootUI) onVideoChanged(value string) {
	if ui.refreshing {
		return
	}
	ui.options.Current().Video = value
	ui.refreshOptions()
	ui.saveOptions()
}

func (ui *RootUI) onHDRChanged(checked bool) {
	if ui.refreshing {
		return
	}
	ui.options.Current().HDR = checked
	ui.refreshOptions()
	ui.saveOptions()
}

func (ui *RootUI) onAudioChanged(value string) {
	if ui.refreshing {
		return
	}
	ui.options.Current().Audio = value
	ui.saveOptions()
}

func (ui *RootUI) onResolutionChanged(value string) {
	if ui.refreshing {
		return
	}
	ui.options.Current().Resolution = value
	ui.saveOptions()
}

func (ui *RootUI) saveOptions() {
	ui.settings.SetOptions(ui.options)
}

// refreshOptions refills the option widgets from the saved options
func (ui *RootUI) refreshOptions() {
	view := NewOptionsView(ui.options)

	ui.refreshing = true
	defer func() { ui.refreshing = false }()

	ui.formatSelect.SetSelected(view.Kind.String())
	setSelect(ui.videoSelect, view.VideoItems, view.Video, view.VideoEnabled)
	setSelect(ui.audioSelect, view.AudioItems, view.Audio, view.AudioEnabled)
	setSelect(ui.resolutionSelect, view.ResolutionItems, view.Resolution, view.ResolutionEnabled)

	ui.hdrCheck.SetChecked(view.HDR)
	setEnabled(ui.hdrCheck, view.HDREnabled)
}

func setSelect(s *widget.Select, items []string, value string, enabled bool) {
	s.Options = items
	if value == "" {
		s.ClearSelected()
	} else {
		s.SetSelected(value)
	}
	s.Refresh()
	setEnabled(s, enabled)
}

func setEnabled(w fyne.Disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}

// ParseURLs splits the text box content on any whitespace, keeping order and duplicates
func ParseURLs(text string) []string {
	return strings.Fields(text)
}
