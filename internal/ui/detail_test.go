package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/settings-sidebar/internal/model"
)

func TestNewDetailView_EveryItem(t *testing.T) {
	test.NewTempApp(t)

	tests := []struct {
		item    model.SidebarItem
		minSize fyne.Size
	}{
		{model.ItemShortcut, fyne.NewSize(ShortcutMinWidth, ShortcutMinHeight)},
		{model.ItemAppearance, fyne.NewSize(AppearanceMinWidth, AppearanceMinHeight)},
	}

	for _, tt := range tests {
		t.Run(tt.item.String(), func(t *testing.T) {
			view := NewDetailView(tt.item)
			require.NotNil(t, view)

			assert.Equal(t, tt.item, view.Item)
			assert.NotEmpty(t, view.ID)
			assert.Equal(t, tt.minSize, view.View().MinSizeHint())
			assert.GreaterOrEqual(t, view.Content().MinSize().Height, tt.minSize.Height)
			assert.GreaterOrEqual(t, view.Content().MinSize().Width, tt.minSize.Width)
		})
	}
}

func TestNewDetailView_RegistryCoversAllItems(t *testing.T) {
	for _, item := range model.SidebarItems() {
		_, ok := detailFactories[item]
		assert.True(t, ok, "no factory for %s", item)
	}
	assert.Len(t, detailFactories, len(model.SidebarItems()))
}

func TestNewDetailView_FreshInstances(t *testing.T) {
	test.NewTempApp(t)

	first := NewDetailView(model.ItemShortcut)
	second := NewDetailView(model.ItemShortcut)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotSame(t, first.View(), second.View())
}

func TestNewDetailView_Heading(t *testing.T) {
	test.NewTempApp(t)

	view := NewDetailView(model.ItemAppearance)
	w := test.NewWindow(view.Content())
	defer w.Close()

	found := false
	for _, obj := range test.LaidOutObjects(w.Content()) {
		if label, ok := obj.(*widget.Label); ok && label.Text == AppearanceHeading {
			found = true
		}
	}
	assert.True(t, found, "expected heading %q in appearance view", AppearanceHeading)
}

func TestNewDetailView_UnknownItemPanics(t *testing.T) {
	test.NewTempApp(t)

	assert.Panics(t, func() {
		NewDetailView(model.SidebarItem(99))
	})
}

func TestNewSettingsView_NilContentPanics(t *testing.T) {
	assert.PanicsWithValue(t, "ui: NewSettingsView requires content", func() {
		NewSettingsView(nil, fyne.NewSize(1, 1))
	})
}

func TestSettingsView_FillsBounds(t *testing.T) {
	test.NewTempApp(t)

	label := widget.NewLabel("content")
	view := NewSettingsView(label, fyne.NewSize(50, 60))
	w := test.NewWindow(view)
	defer w.Close()

	view.Resize(fyne.NewSize(300, 200))

	assert.Same(t, label, view.Content())
	assert.Equal(t, fyne.NewSize(300, 200), label.Size())
	assert.Equal(t, fyne.NewPos(0, 0), label.Position())
	assert.GreaterOrEqual(t, view.MinSize().Height, float32(60))
}
