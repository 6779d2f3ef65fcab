package chrome

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// ResizeObserver is a stacking layout that notifies its subscribers each time the
// container it lays out changes size. Wrap window content with it to observe
// window resizes.
type ResizeObserver struct {
	lastSize    fyne.Size
	subscribers []resizeSubscriber
	nextID      int
}

type resizeSubscriber struct {
	id       int
	onResize func(fyne.Size)
}

// NewResizeObserver creates an observer with no subscribers
func NewResizeObserver() *ResizeObserver {
	return &ResizeObserver{}
}

// Wrap returns a container that stacks content and reports its size changes
func (o *ResizeObserver) Wrap(content ...fyne.CanvasObject) *fyne.Container {
	return container.New(o, content...)
}

// Subscribe registers onResize and returns a function that removes it
func (o *ResizeObserver) Subscribe(onResize func(fyne.Size)) (cancel func()) {
	id := o.nextID
	o.nextID++
	o.subscribers = append(o.subscribers, resizeSubscriber{id: id, onResize: onResize})

	return func() {
		for i, sub := range o.subscribers {
			if sub.id == id {
				o.subscribers = append(o.subscribers[:i], o.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of registered callbacks
func (o *ResizeObserver) Subscribers() int {
	return len(o.subscribers)
}

// Layout implements fyne.Layout
func (o *ResizeObserver) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, obj := range objects {
		obj.Resize(size)
		obj.Move(fyne.NewPos(0, 0))
	}

	if size == o.lastSize {
		return
	}
	o.lastSize = size

	// copy so a callback may unsubscribe while we iterate
	subs := make([]resizeSubscriber, len(o.subscribers))
	copy(subs, o.subscribers)
	for _, sub := range subs {
		sub.onResize(size)
	}
}

// MinSize implements fyne.Layout
func (o *ResizeObserver) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minSize := fyne.NewSize(0, 0)
	for _, obj := range objects {
		minSize = minSize.Max(obj.MinSize())
	}
	return minSize
}
