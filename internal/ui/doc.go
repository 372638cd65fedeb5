package ui

// Package ui contains the Fyne-based desktop user interface: the URL text box,
// the output path and format option rows, the modal progress dialog and the
// end-of-run info dialog. It forwards user intents to download.Controller and
// renders its signals on the UI thread. All UI strings go through Localization.
