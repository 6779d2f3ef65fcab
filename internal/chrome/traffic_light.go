package chrome

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Palette is implemented by themes that define the window-control button colors.
// Buttons drawn under any other theme use built-in colors.
type Palette interface {
	ButtonColor(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color
}

// ButtonKind identifies one of the three standard window-control buttons
type ButtonKind int

const (
	ButtonClose ButtonKind = iota
	ButtonMinimize
	ButtonZoom
)

// String returns the button name used in logs
func (k ButtonKind) String() string {
	switch k {
	case ButtonClose:
		return "close"
	case ButtonMinimize:
		return "minimize"
	case ButtonZoom:
		return "zoom"
	default:
		return "unknown"
	}
}

// ColorName returns the theme color used to fill an enabled button
func (k ButtonKind) ColorName() fyne.ThemeColorName {
	switch k {
	case ButtonClose:
		return ColorNameCloseButton
	case ButtonMinimize:
		return ColorNameMinimizeButton
	case ButtonZoom:
		return ColorNameZoomButton
	default:
		return ColorNameInactiveButton
	}
}

// fallbackColor is used when the active theme does not define the chrome colors
func (k ButtonKind) fallbackColor() color.Color {
	switch k {
	case ButtonClose:
		return color.RGBA{R: 255, G: 95, B: 87, A: 255}
	case ButtonMinimize:
		return color.RGBA{R: 254, G: 188, B: 46, A: 255}
	case ButtonZoom:
		return color.RGBA{R: 40, G: 200, B: 64, A: 255}
	default:
		return color.RGBA{R: 205, G: 205, B: 205, A: 255}
	}
}

// TrafficLight is a round window-control button.
// A button without an OnTapped handler is drawn inactive and ignores taps.
type TrafficLight struct {
	widget.BaseWidget

	Kind     ButtonKind
	OnTapped func()
}

// NewTrafficLight creates a window-control button of the given kind
func NewTrafficLight(kind ButtonKind, onTapped func()) *TrafficLight {
	b := &TrafficLight{Kind: kind, OnTapped: onTapped}
	b.ExtendBaseWidget(b)
	return b
}

// Enabled reports whether the button reacts to taps
func (b *TrafficLight) Enabled() bool {
	return b.OnTapped != nil
}

// Tapped implements fyne.Tappable
func (b *TrafficLight) Tapped(*fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

// MinSize returns the fixed button size
func (b *TrafficLight) MinSize() fyne.Size {
	return fyne.NewSize(ButtonDiameter, ButtonDiameter)
}

// CreateRenderer creates the widget renderer
func (b *TrafficLight) CreateRenderer() fyne.WidgetRenderer {
	r := &trafficLightRenderer{button: b, circle: canvas.NewCircle(color.Transparent)}
	r.Refresh()
	return r
}

func (b *TrafficLight) fillColor() color.Color {
	name := ColorNameInactiveButton
	if b.Enabled() {
		name = b.Kind.ColorName()
	}

	if app := fyne.CurrentApp(); app != nil {
		if palette, ok := app.Settings().Theme().(Palette); ok {
			if c := palette.ButtonColor(name, app.Settings().ThemeVariant()); c != nil {
				return c
			}
		}
	}

	if !b.Enabled() {
		return ButtonKind(-1).fallbackColor()
	}
	return b.Kind.fallbackColor()
}

type trafficLightRenderer struct {
	button *TrafficLight
	circle *canvas.Circle
}

func (r *trafficLightRenderer) Layout(size fyne.Size) {
	r.circle.Resize(size)
	r.circle.Move(fyne.NewPos(0, 0))
}

func (r *trafficLightRenderer) MinSize() fyne.Size {
	return r.button.MinSize()
}

func (r *trafficLightRenderer) Refresh() {
	r.circle.FillColor = r.button.fillColor()
	r.circle.Refresh()
}

func (r *trafficLightRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.circle}
}

func (r *trafficLightRenderer) Destroy() {}
