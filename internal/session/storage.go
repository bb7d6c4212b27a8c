package session

import "fyne.io/fyne/v2"

// StorageKey is the single preferences key holding the bearer token.
// Kept as one opaque value, cleared wholesale on logout.
const StorageKey = "auth-key"

// TokenStorage persists the bearer token across launches
type TokenStorage interface {
	Token() string
	SetToken(token string) error
	Clear() error
}

// PreferencesStorage stores the token in the app preferences
type PreferencesStorage struct {
	prefs fyne.Preferences
}

// NewPreferencesStorage creates token storage backed by the Fyne app preferences
func NewPreferencesStorage(app fyne.App) *PreferencesStorage {
	return &PreferencesStorage{prefs: app.Preferences()}
}

// Token returns the stored token, empty when absent
func (p *PreferencesStorage) Token() string {
	return p.prefs.String(StorageKey)
}

// SetToken persists the token
func (p *PreferencesStorage) SetToken(token string) error {
	p.prefs.SetString(StorageKey, token)
	return nil
}

// Clear removes the stored token
func (p *PreferencesStorage) Clear() error {
	p.prefs.RemoveValue(StorageKey)
	return nil
}
