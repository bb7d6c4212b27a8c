package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyBackendEndpoint = "backend_endpoint"
	KeyPageSize        = "items_page_size"
	KeyAutofillShared  = "autofill_shared_links"
)

// Default values
const (
	DefaultPageSize       = 20
	DefaultAutofillShared = true
)

// Settings manages application configuration
type Settings struct {
	app      fyne.App
	defaults AppConfig
}

// NewSettings creates a new settings manager. defaults supplies the values
// used before the user overrides anything.
func NewSettings(app fyne.App, defaults AppConfig) *Settings {
	return &Settings{app: app, defaults: defaults}
}

// GetBackendEndpoint returns the configured backend base URL
func (s *Settings) GetBackendEndpoint() string {
	endpoint := s.app.Preferences().String(KeyBackendEndpoint)
	if endpoint == "" {
		return s.defaults.BackendEndpoint
	}
	return endpoint
}

// SetBackendEndpoint overrides the backend base URL. An empty value falls
// back to the bundled default.
func (s *Settings) SetBackendEndpoint(endpoint string) {
	s.app.Preferences().SetString(KeyBackendEndpoint, endpoint)
}

// GetPageSize returns the items-per-page size for list screens
func (s *Settings) GetPageSize() int {
	value := s.app.Preferences().Int(KeyPageSize)
	if value <= 0 {
		s.SetPageSize(DefaultPageSize)
		return DefaultPageSize
	}
	return value
}

// SetPageSize sets the items-per-page size, clamped to a sane range
func (s *Settings) SetPageSize(size int) {
	if size < 5 {
		size = 5
	}
	if size > 100 {
		size = 100
	}
	s.app.Preferences().SetInt(KeyPageSize, size)
}

// GetAutofillShared returns whether shared links are submitted automatically
func (s *Settings) GetAutofillShared() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutofillShared, DefaultAutofillShared)
}

// SetAutofillShared sets whether shared links are submitted automatically
func (s *Settings) SetAutofillShared(autofill bool) {
	s.app.Preferences().SetBool(KeyAutofillShared, autofill)
}
