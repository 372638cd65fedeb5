package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Accent colors of the progress bar gradient and the focused text box border
var (
	accentColor = color.RGBA{R: 60, G: 148, B: 222, A: 255}  // #3c94de
	focusColor  = color.RGBA{R: 65, G: 173, B: 255, A: 255}  // #41adff
	lightTint   = color.RGBA{R: 231, G: 244, B: 255, A: 255} // #e7f4ff
)

// CompactTheme is the default theme with tighter spacing and the blue accent
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return accentColor
	case theme.ColorNameFocus:
		return focusColor
	case theme.ColorNameSelection:
		if variant == theme.VariantLight {
			return lightTint
		}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameText:
		return 13
	}

	return theme.DefaultTheme().Size(name)
}
