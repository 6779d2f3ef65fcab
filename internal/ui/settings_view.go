package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// SettingsView hosts the content of one detail pane, pinned to all four edges,
// and never reports a minimum size smaller than its hint.
type SettingsView struct {
	widget.BaseWidget

	content fyne.CanvasObject
	minSize fyne.Size
}

// NewSettingsView creates a settings view for content. A nil content panics: a
// settings view is only ever built around a pane.
func NewSettingsView(content fyne.CanvasObject, minSize fyne.Size) *SettingsView {
	if content == nil {
		panic("ui: NewSettingsView requires content")
	}

	v := &SettingsView{content: content, minSize: minSize}
	v.ExtendBaseWidget(v)
	return v
}

// Content returns the hosted pane content
func (v *SettingsView) Content() fyne.CanvasObject {
	return v.content
}

// MinSizeHint returns the minimum size requested for this pane
func (v *SettingsView) MinSizeHint() fyne.Size {
	return v.minSize
}

// CreateRenderer creates the widget renderer
func (v *SettingsView) CreateRenderer() fyne.WidgetRenderer {
	return &settingsViewRenderer{view: v}
}

type settingsViewRenderer struct {
	view *SettingsView
}

func (r *settingsViewRenderer) Layout(size fyne.Size) {
	r.view.content.Resize(size)
	r.view.content.Move(fyne.NewPos(0, 0))
}

func (r *settingsViewRenderer) MinSize() fyne.Size {
	return r.view.content.MinSize().Max(r.view.minSize)
}

func (r *settingsViewRenderer) Refresh() {
	r.view.content.Refresh()
}

func (r *settingsViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.content}
}

func (r *settingsViewRenderer) Destroy() {}
