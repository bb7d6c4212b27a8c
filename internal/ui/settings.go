package ui

import (
	"context"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// SettingsScreen holds app preferences and account actions
type SettingsScreen struct {
	ui *RootUI

	endpointEntry *widget.Entry
	pageSizeEntry *widget.Entry
	autofillCheck *widget.Check
	errorLabel    *widget.Label
	spinner       *widget.ProgressBarInfinite

	root fyne.CanvasObject
}

// NewSettingsScreen builds the settings view
func NewSettingsScreen(ui *RootUI) *SettingsScreen {
	s := &SettingsScreen{ui: ui}

	username := ""
	if user := ui.session.User(); user != nil {
		username = user.Username
	}

	s.endpointEntry = widget.NewEntry()
	s.endpointEntry.SetText(ui.settings.GetBackendEndpoint())
	s.pageSizeEntry = widget.NewEntry()
	s.pageSizeEntry.SetText(strconv.Itoa(ui.settings.GetPageSize()))
	s.autofillCheck = widget.NewCheck("Autofill shared links automatically", func(on bool) {
		ui.settings.SetAutofillShared(on)
	})
	s.autofillCheck.SetChecked(ui.settings.GetAutofillShared())

	saveBtn := widget.NewButton("Save Settings", s.onSaveSettings)

	logoutBtn := widget.NewButton("Log Out", s.onLogout)
	logoutBtn.Importance = widget.WarningImportance
	deleteBtn := widget.NewButton("Delete Account", s.onDeleteAccount)
	deleteBtn.Importance = widget.DangerImportance

	s.errorLabel = widget.NewLabel("")
	s.errorLabel.Wrapping = fyne.TextWrapWord
	s.errorLabel.Hide()
	s.spinner = widget.NewProgressBarInfinite()
	s.spinner.Hide()

	form := container.NewVBox(
		widget.NewLabelWithStyle("Signed in as "+username, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabel("Backend endpoint (takes effect after restart)"),
		s.endpointEntry,
		widget.NewLabel("Items per page"),
		s.pageSizeEntry,
		s.autofillCheck,
		saveBtn,
		widget.NewSeparator(),
		logoutBtn,
		deleteBtn,
		s.spinner,
		s.errorLabel,
	)

	s.root = container.NewVScroll(form)
	return s
}

// Container returns the screen's root object
func (s *SettingsScreen) Container() fyne.CanvasObject {
	return s.root
}

// refresh mirrors the session's busy/error state into the widgets
func (s *SettingsScreen) refresh() {
	if s.ui.session.Busy() {
		s.spinner.Show()
	} else {
		s.spinner.Hide()
	}
	if msg := s.ui.session.LastError(); msg != "" {
		s.errorLabel.SetText(msg)
		s.errorLabel.Show()
	} else {
		s.errorLabel.Hide()
	}
}

func (s *SettingsScreen) onSaveSettings() {
	s.ui.settings.SetBackendEndpoint(s.endpointEntry.Text)
	if size, err := strconv.Atoi(s.pageSizeEntry.Text); err == nil {
		s.ui.settings.SetPageSize(size)
		s.pageSizeEntry.SetText(strconv.Itoa(s.ui.settings.GetPageSize()))
	}
	s.ui.showPopUp("Settings saved.")
}

func (s *SettingsScreen) onLogout() {
	go s.ui.session.LogOut(context.Background())
}

func (s *SettingsScreen) onDeleteAccount() {
	dialog.ShowConfirm("Delete account",
		"This permanently removes your account and all saved items. Continue?",
		func(ok bool) {
			if !ok {
				return
			}
			go s.ui.session.DeleteUser(context.Background())
		}, s.ui.window)
}
