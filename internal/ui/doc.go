package ui

// Package ui contains the Fyne-based settings window: the sidebar list, the split
// container that swaps detail panes on selection, the window controller that keeps
// the window-control buttons offset, and the application shell that owns them all.
