package chrome

import (
	"log"

	"fyne.io/fyne/v2"
)

// Adjuster keeps the window-control buttons shifted by a fixed offset.
// Each resize notification resets the controls to their base layout and then
// shifts them, so repeated resizes do not accumulate the offset.
type Adjuster struct {
	controls *Controls
	leading  float32
	top      float32
	cancel   func()
}

// NewAdjuster creates an adjuster that shifts controls by leading/top
func NewAdjuster(controls *Controls, leading, top float32) *Adjuster {
	return &Adjuster{
		controls: controls,
		leading:  leading,
		top:      top,
	}
}

// Register subscribes the adjuster to observer, replacing any earlier registration
func (a *Adjuster) Register(observer *ResizeObserver) {
	a.Stop()
	a.cancel = observer.Subscribe(a.HandleResize)
	log.Printf("Chrome adjuster registered (offset %.0f,%.0f)", a.leading, a.top)
}

// Registered reports whether the adjuster currently receives resize notifications
func (a *Adjuster) Registered() bool {
	return a.cancel != nil
}

// HandleResize re-applies the button offset after a resize
func (a *Adjuster) HandleResize(fyne.Size) {
	a.controls.Reset()
	ShiftButtons(a.controls, a.leading, a.top)
}

// Stop deregisters the adjuster. It is safe to call more than once.
func (a *Adjuster) Stop() {
	if a.cancel == nil {
		return
	}
	a.cancel()
	a.cancel = nil
	log.Printf("Chrome adjuster deregistered")
}
