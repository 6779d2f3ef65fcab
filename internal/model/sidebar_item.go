package model

// SidebarItem identifies one selectable entry in the settings sidebar
type SidebarItem int

const (
	// ItemShortcut selects the keyboard shortcut settings pane
	ItemShortcut SidebarItem = iota

	// ItemAppearance selects the appearance settings pane
	ItemAppearance
)

// sidebarItems lists every item in declaration order
var sidebarItems = []SidebarItem{ItemShortcut, ItemAppearance}

// String returns the display name shown in the sidebar row
func (si SidebarItem) String() string {
	switch si {
	case ItemShortcut:
		return "Shortcut"
	case ItemAppearance:
		return "Appearance"
	default:
		return "Unknown"
	}
}

// IsValid reports whether the item belongs to the closed item set
func (si SidebarItem) IsValid() bool {
	return si >= ItemShortcut && si <= ItemAppearance
}

// Index returns the row index of the item, or -1 for an unknown item
func (si SidebarItem) Index() int {
	if !si.IsValid() {
		return -1
	}
	return int(si)
}

// SidebarItems returns all items in declaration order.
// The returned slice is a copy and may be modified by the caller.
func SidebarItems() []SidebarItem {
	items := make([]SidebarItem, len(sidebarItems))
	copy(items, sidebarItems)
	return items
}

// SidebarItemAt maps a row index to its item
func SidebarItemAt(index int) (SidebarItem, bool) {
	if index < 0 || index >= len(sidebarItems) {
		return 0, false
	}
	return sidebarItems[index], true
}
