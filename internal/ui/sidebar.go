package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/settings-sidebar/internal/model"
)

// Sidebar is the single-selection list of settings panes
type Sidebar struct {
	items    []model.SidebarItem
	list     *widget.List
	selected int
	onSelect func(model.SidebarItem)
	schedule func(func())
}

// NewSidebar creates a sidebar listing every model.SidebarItem in declaration order.
// schedule runs a function after the current event has been handled; nil uses fyne.Do.
func NewSidebar(schedule func(func())) *Sidebar {
	if schedule == nil {
		schedule = fyne.Do
	}

	return &Sidebar{
		items:    model.SidebarItems(),
		selected: NoSelection,
		schedule: schedule,
	}
}

// SetOnSelect registers the observer notified with the newly selected item.
// Only one observer is kept; a later call replaces the earlier one.
func (s *Sidebar) SetOnSelect(onSelect func(model.SidebarItem)) {
	s.onSelect = onSelect
}

// View returns the list widget. The first call builds it and schedules the
// selection of row 0 once the list has been laid out.
func (s *Sidebar) View() *widget.List {
	if s.list != nil {
		return s.list
	}

	s.list = widget.NewList(
		func() int {
			return len(s.items)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(s.items[id].String())
		},
	)
	s.list.OnSelected = s.onListSelected
	s.list.OnUnselected = s.onListUnselected

	s.schedule(func() {
		s.list.Select(0)
	})

	return s.list
}

// Select selects the row of item, notifying the observer if the selection changes
func (s *Sidebar) Select(item model.SidebarItem) {
	if idx := item.Index(); idx >= 0 {
		s.View().Select(idx)
	}
}

// SelectedIndex returns the selected row, or NoSelection
func (s *Sidebar) SelectedIndex() int {
	return s.selected
}

// Selected returns the selected item
func (s *Sidebar) Selected() (model.SidebarItem, bool) {
	return model.SidebarItemAt(s.selected)
}

// Items returns a copy of the items shown in the list, in row order
func (s *Sidebar) Items() []model.SidebarItem {
	items := make([]model.SidebarItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Sidebar) onListSelected(id widget.ListItemID) {
	item, ok := model.SidebarItemAt(id)
	if !ok {
		return
	}
	s.selected = id
	log.Printf("Sidebar selected row %d (%s)", id, item)

	if s.onSelect != nil {
		s.onSelect(item)
	}
}

// onListUnselected clears the selection state without notifying the observer
func (s *Sidebar) onListUnselected(id widget.ListItemID) {
	if s.selected == id {
		s.selected = NoSelection
	}
}
