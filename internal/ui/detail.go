package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/ytget/settings-sidebar/internal/model"
)

// DetailView is one constructed detail pane. Every construction gets a new ID,
// so a replaced pane can be told apart from its successor.
type DetailView struct {
	ID   string
	Item model.SidebarItem

	view *SettingsView
}

// Content returns the canvas object installed in the trailing pane
func (d *DetailView) Content() fyne.CanvasObject {
	return d.view
}

// View returns the hosting settings view
func (d *DetailView) View() *SettingsView {
	return d.view
}

// detailFactories binds every sidebar item to the constructor of its pane
var detailFactories = map[model.SidebarItem]func() *DetailView{
	model.ItemShortcut:   newShortcutView,
	model.ItemAppearance: newAppearanceView,
}

// NewDetailView constructs a fresh pane for item. Views are never cached.
func NewDetailView(item model.SidebarItem) *DetailView {
	factory, ok := detailFactories[item]
	if !ok {
		panic(fmt.Sprintf("ui: no detail view registered for sidebar item %d", int(item)))
	}
	return factory()
}

func newShortcutView() *DetailView {
	return newDetailView(model.ItemShortcut, ShortcutHeading, fyne.NewSize(ShortcutMinWidth, ShortcutMinHeight))
}

func newAppearanceView() *DetailView {
	return newDetailView(model.ItemAppearance, AppearanceHeading, fyne.NewSize(AppearanceMinWidth, AppearanceMinHeight))
}

func newDetailView(item model.SidebarItem, heading string, minSize fyne.Size) *DetailView {
	label := widget.NewLabel(heading)
	label.Alignment = fyne.TextAlignCenter

	return &DetailView{
		ID:   uuid.NewString(),
		Item: item,
		view: NewSettingsView(container.NewCenter(container.NewVBox(label)), minSize),
	}
}
