package config

import (
	"testing"
)

func TestDefaultWindow(t *testing.T) {
	cfg := DefaultWindow()

	if cfg.Width != 659 || cfg.Height != 400 {
		t.Errorf("Expected default size 659x400, got %.0fx%.0f", cfg.Width, cfg.Height)
	}
	if cfg.SidebarTopPadding != 43 {
		t.Errorf("Expected sidebar top padding 43, got %.0f", cfg.SidebarTopPadding)
	}
	if cfg.ButtonOffset != 12 {
		t.Errorf("Expected button offset 12, got %.0f", cfg.ButtonOffset)
	}
	if cfg.AppID != DefaultAppID {
		t.Errorf("Expected app id %s, got %s", DefaultAppID, cfg.AppID)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default configuration should be valid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Window)
		wantErr bool
	}{
		{"defaults", func(w *Window) {}, false},
		{"empty app id", func(w *Window) { w.AppID = "" }, true},
		{"zero width", func(w *Window) { w.Width = 0 }, true},
		{"negative height", func(w *Window) { w.Height = -1 }, true},
		{"zero sidebar", func(w *Window) { w.SidebarWidth = 0 }, true},
		{"sidebar wider than window", func(w *Window) { w.SidebarWidth = w.Width }, true},
		{"negative padding", func(w *Window) { w.SidebarTopPadding = -5 }, true},
		{"negative offset", func(w *Window) { w.ButtonOffset = -1 }, true},
		{"zero offset", func(w *Window) { w.ButtonOffset = 0 }, false},
	}

	for _, test := range tests {
		cfg := DefaultWindow()
		test.mutate(&cfg)
		err := cfg.Validate()
		if (err != nil) != test.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", test.name, err, test.wantErr)
		}
	}
}

func TestNormalize(t *testing.T) {
	cfg := Window{
		Width:             100,
		Height:            50,
		SidebarWidth:      10,
		SidebarTopPadding: -3,
		ButtonOffset:      100,
	}.Normalize()

	if cfg.AppID != DefaultAppID || cfg.AppName != DefaultAppName {
		t.Errorf("Empty identity should default, got %q/%q", cfg.AppID, cfg.AppName)
	}
	if cfg.Width != MinWindowWidth || cfg.Height != MinWindowHeight {
		t.Errorf("Size should be clamped to minimum, got %.0fx%.0f", cfg.Width, cfg.Height)
	}
	if cfg.SidebarWidth != MinSidebarWidth {
		t.Errorf("Sidebar width should be clamped to %.0f, got %.0f", MinSidebarWidth, cfg.SidebarWidth)
	}
	if cfg.SidebarTopPadding != 0 {
		t.Errorf("Negative padding should be clamped to 0, got %.0f", cfg.SidebarTopPadding)
	}
	if cfg.ButtonOffset != MaxButtonOffset {
		t.Errorf("Offset should be clamped to %.0f, got %.0f", MaxButtonOffset, cfg.ButtonOffset)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Normalized configuration should be valid, got %v", err)
	}
}

func TestNormalize_SidebarShare(t *testing.T) {
	cfg := DefaultWindow()
	cfg.SidebarWidth = 600

	normalized := cfg.Normalize()
	if normalized.SidebarWidth != cfg.Width*MaxSidebarShare {
		t.Errorf("Sidebar width should be limited to half the window, got %.1f", normalized.SidebarWidth)
	}
}

func TestNormalize_KeepsDefaults(t *testing.T) {
	if DefaultWindow().Normalize() != DefaultWindow() {
		t.Error("Normalize should not change the default configuration")
	}
}
