package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/settings-sidebar/internal/chrome"
	"github.com/ytget/settings-sidebar/internal/config"
	"github.com/ytget/settings-sidebar/internal/model"
)

// SplitContainer shows the sidebar in a fixed-width leading pane and the active
// detail view in the trailing pane.
type SplitContainer struct {
	sidebar    *Sidebar
	detailHost *fyne.Container
	content    *fyne.Container
	active     *DetailView
}

// NewSplitContainer builds the split layout with the Shortcut pane installed and
// subscribes to sidebar selection changes. controls are placed in the title strip
// above the sidebar list.
func NewSplitContainer(sidebar *Sidebar, controls *chrome.Controls, cfg config.Window) *SplitContainer {
	sc := &SplitContainer{
		sidebar:    sidebar,
		detailHost: container.NewStack(),
	}
	sc.ShowItem(model.ItemShortcut)
	sidebar.SetOnSelect(sc.ShowItem)

	titleStrip := container.NewStack(fixedSpacer(cfg.SidebarWidth, cfg.SidebarTopPadding), controls.Container)
	list := container.NewStack(fixedSpacer(cfg.SidebarWidth, 0), sidebar.View())
	leading := container.NewHBox(container.NewBorder(titleStrip, nil, nil, nil, list), widget.NewSeparator())

	sc.content = container.NewBorder(nil, nil, leading, nil, sc.detailHost)
	return sc
}

// ShowItem replaces the trailing pane with a newly constructed view for item.
// The pane is rebuilt even when item is already shown.
func (sc *SplitContainer) ShowItem(item model.SidebarItem) {
	view := NewDetailView(item)

	sc.detailHost.RemoveAll()
	sc.detailHost.Add(view.Content())

	previous := sc.active
	sc.active = view
	if previous != nil {
		log.Printf("Detail view %s (%s) replaced by %s (%s)", previous.ID, previous.Item, view.ID, item)
	} else {
		log.Printf("Detail view %s (%s) installed", view.ID, item)
	}
}

// Active returns the detail view currently shown
func (sc *SplitContainer) Active() *DetailView {
	return sc.active
}

// DetailObjects returns the objects in the trailing pane
func (sc *SplitContainer) DetailObjects() []fyne.CanvasObject {
	return sc.detailHost.Objects
}

// Content returns the root container of the split layout
func (sc *SplitContainer) Content() fyne.CanvasObject {
	return sc.content
}

// fixedSpacer returns a transparent rectangle that holds a minimum size
func fixedSpacer(width, height float32) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(width, height))
	return spacer
}
