package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// LoginScreen holds the login and signup forms shown while logged out
type LoginScreen struct {
	ui *RootUI

	loginUsername  *widget.Entry
	loginPassword  *widget.Entry
	signupUsername *widget.Entry
	signupPassword *widget.Entry
	errorLabel     *widget.Label
	spinner        *widget.ProgressBarInfinite

	root fyne.CanvasObject
}

// NewLoginScreen builds the logged-out view
func NewLoginScreen(ui *RootUI) *LoginScreen {
	s := &LoginScreen{ui: ui}

	s.loginUsername = widget.NewEntry()
	s.loginUsername.SetPlaceHolder("Username")
	s.loginPassword = widget.NewPasswordEntry()
	s.loginPassword.SetPlaceHolder("Password")
	s.loginPassword.OnSubmitted = func(string) { s.onLogin() }

	loginBtn := widget.NewButton("Log In", s.onLogin)
	loginBtn.Importance = widget.HighImportance

	s.signupUsername = widget.NewEntry()
	s.signupUsername.SetPlaceHolder("Username")
	s.signupPassword = widget.NewPasswordEntry()
	s.signupPassword.SetPlaceHolder("Password")

	signupBtn := widget.NewButton("Create Account", s.onSignup)

	s.errorLabel = widget.NewLabel("")
	s.errorLabel.Wrapping = fyne.TextWrapWord
	s.errorLabel.Hide()
	s.spinner = widget.NewProgressBarInfinite()
	s.spinner.Hide()

	loginTab := container.NewVBox(
		widget.NewLabelWithStyle("Why Did I Save This", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		s.loginUsername,
		s.loginPassword,
		loginBtn,
	)
	signupTab := container.NewVBox(
		widget.NewLabelWithStyle("New here?", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		s.signupUsername,
		s.signupPassword,
		signupBtn,
	)

	tabs := container.NewAppTabs(
		container.NewTabItem("Log In", loginTab),
		container.NewTabItem("Sign Up", signupTab),
	)

	s.root = container.NewVBox(tabs, s.spinner, s.errorLabel)
	return s
}

// Container returns the screen's root object
func (s *LoginScreen) Container() fyne.CanvasObject {
	return s.root
}

// refresh mirrors the session's busy/error state into the widgets
func (s *LoginScreen) refresh() {
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

func (s *LoginScreen) onLogin() {
	username := s.loginUsername.Text
	password := s.loginPassword.Text
	if username == "" || password == "" {
		s.ui.showPopUp("Username and password are required")
		return
	}

	go s.ui.session.LogIn(context.Background(), username, password)
}

func (s *LoginScreen) onSignup() {
	username := s.signupUsername.Text
	password := s.signupPassword.Text
	if username == "" || password == "" {
		s.ui.showPopUp("Username and password are required")
		return
	}

	go func() {
		// No auto-login; the user logs in explicitly afterwards
		if s.ui.session.SignUp(context.Background(), username, password) {
			fyne.Do(func() {
				dialog.ShowInformation("Account created",
					"Your account is ready. Log in to get started.", s.ui.window)
			})
		}
	}()
}
