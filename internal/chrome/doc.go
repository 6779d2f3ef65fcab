package chrome

// Package chrome draws the window-control buttons of the settings window and keeps
// them offset from the title strip edge. Controls owns the buttons and their title
// label, ResizeObserver reports content size changes, and Adjuster re-applies the
// button offset on every reported resize.
