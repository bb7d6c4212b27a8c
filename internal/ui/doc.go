// Package ui builds the Fyne screens: login/signup, the saved-items list, the
// add-item form with link autofill, and settings. Screens talk to the session
// store, the API client, and the submission tracker; service callbacks are
// marshalled onto the UI thread with fyne.Do.
package ui
