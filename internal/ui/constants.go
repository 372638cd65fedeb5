package ui

// Window and dialog sizing
const (
	WindowWidth  float32 = 534
	WindowHeight float32 = 350

	ProgressDialogWidth  float32 = 600
	ProgressDialogHeight float32 = 150

	InfoLabelMinWidth float32 = 300
	BrowseButtonLabel         = "..."
)

// Text fragments
const (
	ProgressLineSeparator = "\n"
)
