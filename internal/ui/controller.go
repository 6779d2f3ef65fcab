package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/settings-sidebar/internal/chrome"
	"github.com/ytget/settings-sidebar/internal/config"
)

// WindowController installs the window content behind a resize observer and
// keeps the window-control buttons offset while it is open.
type WindowController struct {
	window   fyne.Window
	observer *chrome.ResizeObserver
	adjuster *chrome.Adjuster
}

// NewWindowController sets content on window and registers the chrome adjuster.
// A nil window panics: the controller is only ever created for an existing window.
func NewWindowController(window fyne.Window, content fyne.CanvasObject, controls *chrome.Controls, cfg config.Window) *WindowController {
	if window == nil {
		panic("ui: NewWindowController requires a window")
	}

	wc := &WindowController{
		window:   window,
		observer: chrome.NewResizeObserver(),
		adjuster: chrome.NewAdjuster(controls, cfg.ButtonOffset, cfg.ButtonOffset),
	}
	wc.adjuster.Register(wc.observer)
	window.SetContent(wc.observer.Wrap(content))
	return wc
}

// Window returns the controlled window
func (wc *WindowController) Window() fyne.Window {
	return wc.window
}

// Observing reports whether resize notifications still reach the adjuster
func (wc *WindowController) Observing() bool {
	return wc.adjuster.Registered()
}

// Close deregisters the chrome adjuster
func (wc *WindowController) Close() {
	wc.adjuster.Stop()
}
