package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/settings-sidebar/internal/config"
	"github.com/ytget/settings-sidebar/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", config.DefaultAppName, version)

	cfg := config.DefaultWindow()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid window configuration: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(cfg.AppID)
	myApp.Settings().SetTheme(ui.NewChromeTheme())

	// Build the settings window and run until quit
	shell := ui.NewShell(myApp, cfg)
	shell.Run()
}
