package config

import "fmt"

// Application identity
const (
	DefaultAppID   = "com.ytget.settings-sidebar"
	DefaultAppName = "Settings"
)

// Default window geometry
const (
	DefaultWidth             float32 = 659
	DefaultHeight            float32 = 400
	DefaultSidebarWidth      float32 = 180
	DefaultSidebarTopPadding float32 = 43
	DefaultButtonOffset      float32 = 12
)

// Limits applied by Normalize
const (
	MinWindowWidth  float32 = 320
	MinWindowHeight float32 = 240
	MinSidebarWidth float32 = 120
	MaxButtonOffset float32 = 48
	MaxSidebarShare float32 = 0.5
)

// Window holds the fixed geometry and identity of the settings window
type Window struct {
	AppID   string
	AppName string

	Width  float32
	Height float32

	// SidebarWidth is the fixed width of the leading pane
	SidebarWidth float32
	// SidebarTopPadding is the height of the title strip above the sidebar list
	SidebarTopPadding float32
	// ButtonOffset shifts the window-control buttons right and down
	ButtonOffset float32
}

// DefaultWindow returns the window configuration used by the application
func DefaultWindow() Window {
	return Window{
		AppID:             DefaultAppID,
		AppName:           DefaultAppName,
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		SidebarWidth:      DefaultSidebarWidth,
		SidebarTopPadding: DefaultSidebarTopPadding,
		ButtonOffset:      DefaultButtonOffset,
	}
}

// Validate reports the first invalid field
func (w Window) Validate() error {
	if w.AppID == "" {
		return fmt.Errorf("app id must not be empty")
	}
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %.0fx%.0f", w.Width, w.Height)
	}
	if w.SidebarWidth <= 0 {
		return fmt.Errorf("sidebar width must be positive, got %.0f", w.SidebarWidth)
	}
	if w.SidebarWidth >= w.Width {
		return fmt.Errorf("sidebar width %.0f must be less than window width %.0f", w.SidebarWidth, w.Width)
	}
	if w.SidebarTopPadding < 0 {
		return fmt.Errorf("sidebar top padding must not be negative, got %.0f", w.SidebarTopPadding)
	}
	if w.ButtonOffset < 0 {
		return fmt.Errorf("button offset must not be negative, got %.0f", w.ButtonOffset)
	}
	return nil
}

// Normalize returns a copy with empty fields defaulted and sizes clamped
func (w Window) Normalize() Window {
	if w.AppID == "" {
		w.AppID = DefaultAppID
	}
	if w.AppName == "" {
		w.AppName = DefaultAppName
	}
	if w.Width < MinWindowWidth {
		w.Width = MinWindowWidth
	}
	if w.Height < MinWindowHeight {
		w.Height = MinWindowHeight
	}
	if w.SidebarWidth < MinSidebarWidth {
		w.SidebarWidth = MinSidebarWidth
	}
	if limit := w.Width * MaxSidebarShare; w.SidebarWidth > limit {
		w.SidebarWidth = limit
	}
	if w.SidebarTopPadding < 0 {
		w.SidebarTopPadding = 0
	}
	if w.ButtonOffset < 0 {
		w.ButtonOffset = 0
	}
	if w.ButtonOffset > MaxButtonOffset {
		w.ButtonOffset = MaxButtonOffset
	}
	return w
}
