package chrome

import "fyne.io/fyne/v2"

// Button geometry, in Fyne units
const (
	ButtonDiameter float32 = 12
	ButtonSpacing  float32 = 8
	ButtonInset    float32 = 8
	TitleSpacing   float32 = 12
)

// Theme color names for the window-control buttons
const (
	ColorNameCloseButton    fyne.ThemeColorName = "chromeCloseButton"
	ColorNameMinimizeButton fyne.ThemeColorName = "chromeMinimizeButton"
	ColorNameZoomButton     fyne.ThemeColorName = "chromeZoomButton"
	ColorNameInactiveButton fyne.ThemeColorName = "chromeInactiveButton"
)
