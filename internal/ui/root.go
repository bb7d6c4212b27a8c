package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/whydidisavethis/linksaver/internal/api"
	"github.com/whydidisavethis/linksaver/internal/config"
	"github.com/whydidisavethis/linksaver/internal/session"
	"github.com/whydidisavethis/linksaver/internal/submit"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	session  *session.Store
	client   *api.Client
	tracker  submit.Tracker
	settings *config.Settings

	content  *fyne.Container
	loggedIn bool

	loginScreen    *LoginScreen
	addScreen      *AddScreen
	itemsScreen    *ItemsScreen
	settingsScreen *SettingsScreen

	// share link delivered before login, replayed once the session exists
	pendingShare string
}

// NewRootUI creates and initializes the main UI. The session store must have
// been restored already; its readiness gates the first screen.
func NewRootUI(window fyne.Window, app fyne.App, store *session.Store,
	client *api.Client, tracker submit.Tracker, settings *config.Settings) *RootUI {

	ui := &RootUI{
		window:   window,
		app:      app,
		session:  store,
		client:   client,
		tracker:  tracker,
		settings: settings,
		content:  container.NewStack(),
	}

	store.SetChangeCallback(ui.onSessionChange)

	ui.loggedIn = store.IsLoggedIn()
	ui.rebuild()
	window.SetContent(ui.content)

	log.Printf("ui: root initialized, logged in: %v", ui.loggedIn)
	return ui
}

// Window returns the main application window
func (ui *RootUI) Window() fyne.Window {
	return ui.window
}

// HandleShareLink routes an inbound share-sheet deep link to the add screen.
// Links arriving before login are replayed after the session exists.
func (ui *RootUI) HandleShareLink(raw string) {
	if !ui.session.IsLoggedIn() {
		log.Printf("ui: share link received before login, holding it")
		ui.pendingShare = raw
		return
	}
	if ui.addScreen != nil {
		ui.addScreen.HandleShareLink(raw)
	}
}

// onSessionChange reacts to session store updates. Runs on service
// goroutines, so all UI work goes through fyne.Do.
func (ui *RootUI) onSessionChange() {
	fyne.Do(func() {
		if ui.session.IsLoggedIn() != ui.loggedIn {
			ui.loggedIn = ui.session.IsLoggedIn()
			ui.rebuild()

			if ui.loggedIn && ui.pendingShare != "" {
				raw := ui.pendingShare
				ui.pendingShare = ""
				ui.addScreen.HandleShareLink(raw)
			}
			return
		}

		// Same view, refresh its status widgets
		if ui.loggedIn {
			ui.settingsScreen.refresh()
		} else if ui.loginScreen != nil {
			ui.loginScreen.refresh()
		}
	})
}

// rebuild swaps between the login view and the main tab view
func (ui *RootUI) rebuild() {
	ui.content.Objects = nil

	if !ui.loggedIn {
		// Navigating away tears the tracker's channel down
		if ui.addScreen != nil {
			ui.addScreen.Teardown()
			ui.addScreen = nil
			ui.itemsScreen = nil
			ui.settingsScreen = nil
		}
		ui.loginScreen = NewLoginScreen(ui)
		ui.content.Objects = append(ui.content.Objects, ui.loginScreen.Container())
		ui.content.Refresh()
		return
	}

	ui.loginScreen = nil
	ui.itemsScreen = NewItemsScreen(ui)
	ui.addScreen = NewAddScreen(ui)
	ui.settingsScreen = NewSettingsScreen(ui)

	tabs := container.NewAppTabs(
		container.NewTabItemWithIcon("Saved", theme.ListIcon(), ui.itemsScreen.Container()),
		container.NewTabItemWithIcon("Add", theme.ContentAddIcon(), ui.addScreen.Container()),
		container.NewTabItemWithIcon("Settings", theme.SettingsIcon(), ui.settingsScreen.Container()),
	)
	tabs.SetTabLocation(container.TabLocationBottom)

	ui.content.Objects = append(ui.content.Objects, tabs)
	ui.content.Refresh()
}

// showPopUp shows a transient message the way list actions report outcomes
func (ui *RootUI) showPopUp(message string) {
	widget.ShowPopUp(widget.NewLabel(message), ui.window.Canvas())
}
