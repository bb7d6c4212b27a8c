package session

import (
	"context"
	"log"
	"sync"

	"github.com/whydidisavethis/linksaver/internal/api"
	"github.com/whydidisavethis/linksaver/internal/model"
)

// Client is the slice of the API client the session needs
type Client interface {
	Login(ctx context.Context, username, password string) (*api.TokenResponse, error)
	Signup(ctx context.Context, username, password string) (*model.User, error)
	GetUserFromToken(ctx context.Context, token string) (*model.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	SetAuthToken(token string)
}

// Store holds the bearer token and user profile for the app's lifetime.
// One auth action runs at a time; Busy and LastError reflect the latest one.
// Auth actions never return errors past this boundary, only success flags.
type Store struct {
	client  Client
	storage TokenStorage

	mu        sync.Mutex
	ready     bool
	busy      bool
	token     string
	user      *model.User
	lastError string
	onChange  func()
}

// NewStore creates a session store
func NewStore(client Client, storage TokenStorage) *Store {
	return &Store{client: client, storage: storage}
}

// SetChangeCallback sets the callback invoked after every state change.
// It may run on any goroutine.
func (s *Store) SetChangeCallback(callback func()) {
	s.mu.Lock()
	s.onChange = callback
	s.mu.Unlock()
}

// Ready reports whether Restore has run; gates the first navigable screen
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Busy reports whether an auth action is in flight
func (s *Store) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// LastError returns the error message of the latest auth action, if any
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// IsLoggedIn reports whether a session is populated
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Token returns the current bearer token, empty when logged out
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the current profile, nil when logged out
func (s *Store) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Restore hydrates the session from the persisted token on startup. An
// invalid or expired token is cleared and the session left empty. Ready is
// set either way.
func (s *Store) Restore(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.ready = true
		s.mu.Unlock()
		s.notify()
	}()

	token := s.storage.Token()
	if token == "" {
		log.Printf("session: no stored token")
		return
	}

	user, err := s.client.GetUserFromToken(ctx, token)
	if err != nil {
		log.Printf("session: stored token rejected: %v", err)
		s.storage.Clear()
		return
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	s.client.SetAuthToken(token)
	log.Printf("session: restored for user %s", user.Username)
}

// LogIn exchanges credentials for a token, persists it, and hydrates the
// profile. Any failure clears a partially stored token and records the
// server's message.
func (s *Store) LogIn(ctx context.Context, username, password string) bool {
	if !s.begin() {
		return false
	}

	resp, err := s.client.Login(ctx, username, password)
	if err != nil {
		s.storage.Clear()
		s.finish(err.Error())
		return false
	}

	if err := s.storage.SetToken(resp.AccessToken); err != nil {
		s.storage.Clear()
		s.finish("could not store session: " + err.Error())
		return false
	}

	user, err := s.client.GetUserFromToken(ctx, resp.AccessToken)
	if err != nil {
		s.storage.Clear()
		s.finish(err.Error())
		return false
	}

	s.mu.Lock()
	s.token = resp.AccessToken
	s.user = user
	s.mu.Unlock()
	s.client.SetAuthToken(resp.AccessToken)

	log.Printf("session: logged in as %s", user.Username)
	s.finish("")
	return true
}

// LogOut clears the persisted token and in-memory session unconditionally,
// even if storage deletion fails.
func (s *Store) LogOut(ctx context.Context) {
	if !s.begin() {
		return
	}

	if err := s.storage.Clear(); err != nil {
		log.Printf("session: clearing stored token failed: %v", err)
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	s.client.SetAuthToken("")

	log.Printf("session: logged out")
	s.finish("")
}

// SignUp creates an account. It does not log the user in.
func (s *Store) SignUp(ctx context.Context, username, password string) bool {
	if !s.begin() {
		return false
	}

	if _, err := s.client.Signup(ctx, username, password); err != nil {
		s.finish(err.Error())
		return false
	}

	log.Printf("session: account created for %s", username)
	s.finish("")
	return true
}

// DeleteUser removes the current account and then behaves like LogOut
func (s *Store) DeleteUser(ctx context.Context) bool {
	if !s.begin() {
		return false
	}

	s.mu.Lock()
	user := s.user
	s.mu.Unlock()
	if user == nil {
		s.finish("not logged in")
		return false
	}

	if err := s.client.DeleteUser(ctx, user.ID); err != nil {
		s.finish(err.Error())
		return false
	}

	if err := s.storage.Clear(); err != nil {
		log.Printf("session: clearing stored token failed: %v", err)
	}
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	s.client.SetAuthToken("")

	log.Printf("session: account deleted")
	s.finish("")
	return true
}

// RefreshUser re-fetches the profile, replacing the user (and its items)
// wholesale
func (s *Store) RefreshUser(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	if token == "" {
		return &api.Error{Kind: api.KindAuth, Message: "not logged in"}
	}

	user, err := s.client.GetUserFromToken(ctx, token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.notify()
	return nil
}

// begin claims the single action slot and resets the error state
func (s *Store) begin() bool {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		log.Printf("session: action rejected, another one is in flight")
		return false
	}
	s.busy = true
	s.lastError = ""
	s.mu.Unlock()
	s.notify()
	return true
}

// finish releases the action slot and records the outcome
func (s *Store) finish(errMsg string) {
	s.mu.Lock()
	s.busy = false
	s.lastError = errMsg
	s.mu.Unlock()
	s.notify()
}

// notify invokes the change callback if one is set
func (s *Store) notify() {
	s.mu.Lock()
	callback := s.onChange
	s.mu.Unlock()
	if callback != nil {
		callback()
	}
}
