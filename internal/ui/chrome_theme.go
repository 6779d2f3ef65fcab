package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/settings-sidebar/internal/chrome"
)

// ChromeTheme is the fixed application theme. It supplies the window-control
// button colors and a compact sidebar; everything else comes from the default theme.
type ChromeTheme struct{}

var _ chrome.Palette = (*ChromeTheme)(nil)

// NewChromeTheme creates the application theme
func NewChromeTheme() fyne.Theme {
	return &ChromeTheme{}
}

// Color returns theme colors
func (t *ChromeTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case chrome.ColorNameCloseButton:
		return color.RGBA{R: 255, G: 95, B: 87, A: 255} // Red
	case chrome.ColorNameMinimizeButton:
		return color.RGBA{R: 254, G: 188, B: 46, A: 255} // Amber
	case chrome.ColorNameZoomButton:
		return color.RGBA{R: 40, G: 200, B: 64, A: 255} // Green
	case chrome.ColorNameInactiveButton:
		if variant == theme.VariantDark {
			return color.RGBA{R: 77, G: 77, B: 77, A: 255}
		}
		return color.RGBA{R: 205, G: 205, B: 205, A: 255}
	case theme.ColorNameSelection:
		if variant == theme.VariantDark {
			return color.RGBA{R: 58, G: 58, B: 60, A: 255}
		}
		return color.RGBA{R: 220, G: 220, B: 224, A: 255} // Sidebar row highlight
	}

	return theme.DefaultTheme().Color(name, variant)
}

// ButtonColor returns the window-control button colors
func (t *ChromeTheme) ButtonColor(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case chrome.ColorNameCloseButton, chrome.ColorNameMinimizeButton,
		chrome.ColorNameZoomButton, chrome.ColorNameInactiveButton:
		return t.Color(name, variant)
	}
	return nil
}

// Font returns theme fonts
func (t *ChromeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ChromeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact sidebar rows
func (t *ChromeTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameSelectionRadius:
		return 5 // Rounded sidebar highlight
	}

	return theme.DefaultTheme().Size(name)
}
