package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/whydidisavethis/linksaver/internal/api"
	"github.com/whydidisavethis/linksaver/internal/config"
	"github.com/whydidisavethis/linksaver/internal/session"
	"github.com/whydidisavethis/linksaver/internal/submit"
	"github.com/whydidisavethis/linksaver/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.whydidisavethis.linksaver"
	AppName = "Why Did I Save This"

	ConfigFileName = "linksaver.yaml"

	WindowWidth  = 420
	WindowHeight = 760
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	appCfg := loadAppConfig()
	settings := config.NewSettings(myApp, appCfg)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	endpoint := settings.GetBackendEndpoint()
	client := api.NewClient(endpoint, appCfg.RequestTimeout())
	store := session.NewStore(client, session.NewPreferencesStorage(myApp))
	tracker := submit.NewService(client, submit.NewWebSocketDialer(endpoint))

	// Restore any stored session before building the UI so the first
	// screen matches the actual login state
	store.Restore(context.Background())

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, store, client, tracker, settings)

	// A share-sheet deep link may arrive as the launch argument
	if len(os.Args) > 1 {
		rootUI.HandleShareLink(os.Args[1])
	}

	// Show and run
	myWindow.ShowAndRun()

	tracker.Close()
}

// loadAppConfig reads the optional YAML config next to the executable,
// falling back to built-in defaults.
func loadAppConfig() config.AppConfig {
	path := ConfigFileName
	if exe, err := os.Executable(); err == nil {
		path = filepath.Join(filepath.Dir(exe), ConfigFileName)
	}

	cfg, err := config.LoadAppConfigFile(path)
	if err != nil {
		log.Printf("main: config %s unreadable, using defaults: %v", path, err)
		return config.DefaultAppConfig()
	}
	return cfg
}
