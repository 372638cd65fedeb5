package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytdlui/internal/model"
)

// ProgressDialog is the modal shown while a run is in flight. It starts
// indeterminate and switches to a percentage bar on the first progress event.
type ProgressDialog struct {
	localization *Localization
	onCancel     func()

	label     *widget.Label
	bar       *widget.ProgressBar
	waiting   *widget.ProgressBarInfinite
	cancelBtn *widget.Button
	dialog    dialog.Dialog

	cancelled bool
}

// NewProgressDialog creates a hidden progress dialog. onCancel runs when the
// user presses Cancel.
func NewProgressDialog(window fyne.Window, localization *Localization, onCancel func()) *ProgressDialog {
	p := &ProgressDialog{
		localization: localization,
		onCancel:     onCancel,
		label:        widget.NewLabel(""),
		bar:          widget.NewProgressBar(),
		waiting:      widget.NewProgressBarInfinite(),
	}
	p.label.Alignment = fyne.TextAlignCenter
	p.label.Wrapping = fyne.TextWrapOff
	p.bar.Max = 100
	p.cancelBtn = widget.NewButton(localization.GetText(KeyCancel), p.cancel)

	content := container.NewVBox(
		p.label,
		container.NewStack(p.bar, p.waiting),
		container.NewCenter(p.cancelBtn),
	)
	p.dialog = dialog.NewCustomWithoutButtons(localization.GetText(KeyProgressTitle), content, window)
	p.dialog.Resize(fyne.NewSize(ProgressDialogWidth, ProgressDialogHeight))
	return p
}

// Show resets the dialog to its waiting state and shows it
func (p *ProgressDialog) Show() {
	p.cancelled = false
	p.cancelBtn.Enable()
	p.SetWaiting()
	p.dialog.Show()
}

// SetWaiting shows the indeterminate bar with the waiting text
func (p *ProgressDialog) SetWaiting() {
	p.label.SetText(p.localization.GetText(KeyPleaseWait))
	p.bar.Hide()
	p.waiting.Show()
	p.waiting.Start()
}

// Update shows a progress event. Events arriving after Cancel are ignored.
func (p *ProgressDialog) Update(progress model.Progress) {
	if p.cancelled {
		return
	}
	p.label.SetText(ProgressText(progress))
	p.waiting.Stop()
	p.waiting.Hide()
	p.bar.Show()
	p.bar.SetValue(progress.Percent)
}

// Hide closes the dialog
func (p *ProgressDialog) Hide() {
	p.waiting.Stop()
	p.dialog.Hide()
}

// Refresh updates the static texts after a language change
func (p *ProgressDialog) Refresh() {
	p.cancelBtn.SetText(p.localization.GetText(KeyCancel))
}

func (p *ProgressDialog) cancel() {
	if p.cancelled {
		return
	}
	p.cancelled = true
	p.cancelBtn.Disable()
	p.SetWaiting()
	if p.onCancel != nil {
		p.onCancel()
	}
}

// ProgressText renders the two label lines of a progress event
func ProgressText(progress model.Progress) string {
	return progress.Title() + ProgressLineSeparator + progress.Subtitle()
}
