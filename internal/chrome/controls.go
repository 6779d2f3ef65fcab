package chrome

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Controls groups the close, minimize and zoom buttons with the window title
// label in a single shared container.
type Controls struct {
	Close    *TrafficLight
	Minimize *TrafficLight
	Zoom     *TrafficLight
	Title    *widget.Label

	// Container holds the buttons followed by the title label
	Container *fyne.Container

	layout *controlsLayout
}

// NewControls creates the window-control row. A nil handler leaves that button inactive.
func NewControls(title string, onClose, onMinimize, onZoom func()) *Controls {
	c := &Controls{
		Close:    NewTrafficLight(ButtonClose, onClose),
		Minimize: NewTrafficLight(ButtonMinimize, onMinimize),
		Zoom:     NewTrafficLight(ButtonZoom, onZoom),
		Title:    widget.NewLabel(title),
	}
	c.Title.TextStyle = fyne.TextStyle{Bold: true}
	c.layout = &controlsLayout{}
	c.Container = container.New(c.layout, c.Close, c.Minimize, c.Zoom, c.Title)
	return c
}

// Buttons returns the three control buttons in close, minimize, zoom order
func (c *Controls) Buttons() []fyne.CanvasObject {
	return []fyne.CanvasObject{c.Close, c.Minimize, c.Zoom}
}

// Reset clears any shift and lays the container out again, moving every object
// back to its base position.
func (c *Controls) Reset() {
	c.layout.shift = fyne.NewPos(0, 0)
	c.Container.Layout.Layout(c.Container.Objects, c.Container.Size())
}

// Shift returns the offset the layout currently adds to the base positions
func (c *Controls) Shift() fyne.Position {
	return c.layout.shift
}

// ShiftButtons moves the three buttons by leading/top and every text label in their
// shared container by top. The shift is relative to the current positions and is
// kept by the layout, so a later refresh of the container does not undo it.
func ShiftButtons(c *Controls, leading, top float32) {
	c.layout.shift = fyne.NewPos(c.layout.shift.X+leading, c.layout.shift.Y+top)

	for _, button := range c.Buttons() {
		moveBy(button, leading, top)
	}

	for _, obj := range c.Container.Objects {
		if isTextLabel(obj) {
			moveBy(obj, 0, top)
		}
	}
}

func moveBy(obj fyne.CanvasObject, dx, dy float32) {
	pos := obj.Position()
	obj.Move(fyne.NewPos(pos.X+dx, pos.Y+dy))
}

func isTextLabel(obj fyne.CanvasObject) bool {
	switch obj.(type) {
	case *widget.Label, *canvas.Text, *widget.RichText:
		return true
	default:
		return false
	}
}

// controlsLayout places the buttons in a row at the top-leading corner and any
// remaining objects after them, top aligned. shift is added to the buttons, and
// its vertical part to text labels.
type controlsLayout struct {
	shift fyne.Position
}

func (l *controlsLayout) Layout(objects []fyne.CanvasObject, _ fyne.Size) {
	x := ButtonInset
	buttons := 0
	for _, obj := range objects {
		if _, ok := obj.(*TrafficLight); ok {
			obj.Resize(fyne.NewSize(ButtonDiameter, ButtonDiameter))
			obj.Move(fyne.NewPos(x+l.shift.X, ButtonInset+l.shift.Y))
			x += ButtonDiameter + ButtonSpacing
			buttons++
		}
	}

	if buttons > 0 {
		x += TitleSpacing - ButtonSpacing
	}
	for _, obj := range objects {
		if _, ok := obj.(*TrafficLight); ok {
			continue
		}
		obj.Resize(obj.MinSize())
		y := float32(0)
		if isTextLabel(obj) {
			y = l.shift.Y
		}
		obj.Move(fyne.NewPos(x, y))
		x += obj.MinSize().Width
	}
}

func (l *controlsLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	width := ButtonInset
	height := 2*ButtonInset + ButtonDiameter
	buttons := 0
	for _, obj := range objects {
		if _, ok := obj.(*TrafficLight); ok {
			width += ButtonDiameter + ButtonSpacing
			buttons++
			continue
		}
		objMin := obj.MinSize()
		width += objMin.Width
		if objMin.Height > height {
			height = objMin.Height
		}
	}
	if buttons > 0 {
		width += TitleSpacing - ButtonSpacing
	}
	return fyne.NewSize(width, height)
}
