package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/ytget/settings-sidebar/internal/chrome"
	"github.com/ytget/settings-sidebar/internal/config"
)

// Shell owns the settings window and everything shown in it for the lifetime
// of the application.
type Shell struct {
	app    fyne.App
	window fyne.Window
	cfg    config.Window

	controls   *chrome.Controls
	sidebar    *Sidebar
	split      *SplitContainer
	controller *WindowController

	quit func()
}

// NewShell creates the main window with its content and menu. The window is not
// shown until Run, and the initial sidebar selection waits for the event loop.
func NewShell(app fyne.App, cfg config.Window) *Shell {
	return newShell(app, cfg, newLoopScheduler(app.Lifecycle(), fyne.Do).Schedule)
}

func newShell(app fyne.App, cfg config.Window, schedule func(func())) *Shell {
	s := &Shell{
		app:  app,
		cfg:  cfg,
		quit: app.Quit,
	}

	// Title is hidden; the controls row stands in for the title bar
	s.window = app.NewWindow("")
	s.window.SetPadded(false)
	s.window.SetMaster()
	s.window.Resize(fyne.NewSize(cfg.Width, cfg.Height))
	s.window.CenterOnScreen()

	// the window is neither minimizable nor zoomable, so only close is active
	s.controls = chrome.NewControls("", s.window.Close, nil, nil)
	s.sidebar = NewSidebar(schedule)
	s.split = NewSplitContainer(s.sidebar, s.controls, cfg)
	s.controller = NewWindowController(s.window, s.split.Content(), s.controls, cfg)

	s.window.SetOnClosed(s.teardown)
	s.createMenu()

	log.Printf("Settings window created (%.0fx%.0f)", cfg.Width, cfg.Height)
	return s
}

// Run shows the window and runs the event loop until the application quits
func (s *Shell) Run() {
	s.window.ShowAndRun()
}

// Window returns the main window
func (s *Shell) Window() fyne.Window {
	return s.window
}

// Sidebar returns the sidebar list
func (s *Shell) Sidebar() *Sidebar {
	return s.sidebar
}

// Split returns the split container
func (s *Shell) Split() *SplitContainer {
	return s.split
}

// Controller returns the window controller
func (s *Shell) Controller() *WindowController {
	return s.controller
}

// Controls returns the window-control buttons
func (s *Shell) Controls() *chrome.Controls {
	return s.controls
}

// createMenu installs the application menu with its single Quit item
func (s *Shell) createMenu() {
	quitItem := fyne.NewMenuItem(fmt.Sprintf(QuitLabelFormat, s.cfg.AppName), s.onQuit)
	quitItem.IsQuit = true
	quitItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierShortcutDefault}

	s.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(s.cfg.AppName, quitItem),
	))
}

// onQuit handles the Quit menu item
func (s *Shell) onQuit() {
	log.Printf("Quit requested")
	s.quit()
}

// teardown releases the window controller once the window has closed
func (s *Shell) teardown() {
	s.controller.Close()
	log.Printf("Settings window closed")
}
