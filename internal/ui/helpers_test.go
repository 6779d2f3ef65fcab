package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/settings-sidebar/internal/chrome"
	"github.com/ytget/settings-sidebar/internal/config"
)

// deferredQueue collects scheduled functions until flush, standing in for the
// next turn of the event loop.
type deferredQueue struct {
	pending []func()
}

func (q *deferredQueue) schedule(fn func()) {
	q.pending = append(q.pending, fn)
}

func (q *deferredQueue) flush() {
	pending := q.pending
	q.pending = nil
	for _, fn := range pending {
		fn()
	}
}

// newTestSplit builds a split container shown in a test window
func newTestSplit(t *testing.T) (*SplitContainer, *Sidebar, *deferredQueue) {
	t.Helper()
	test.NewTempApp(t)

	queue := &deferredQueue{}
	sidebar := NewSidebar(queue.schedule)
	controls := chrome.NewControls("", func() {}, nil, nil)
	split := NewSplitContainer(sidebar, controls, config.DefaultWindow())

	w := test.NewWindow(split.Content())
	w.Resize(fyne.NewSize(config.DefaultWidth, config.DefaultHeight))
	t.Cleanup(w.Close)

	return split, sidebar, queue
}
