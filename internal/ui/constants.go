package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Selection
const (
	// NoSelection is the sidebar selection index before a row is selected
	NoSelection = -1
)

// Detail pane headings
const (
	ShortcutHeading   = "Shortcut Settings"
	AppearanceHeading = "Appearance Settings"
)

// Detail pane minimum sizes
const (
	ShortcutMinWidth    float32 = 400
	ShortcutMinHeight   float32 = 400
	AppearanceMinWidth  float32 = 400
	AppearanceMinHeight float32 = 500
)

// Menu
const (
	QuitLabelFormat = "Quit %s"
)
