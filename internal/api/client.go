package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/whydidisavethis/linksaver/internal/model"
)

// DefaultTimeout bounds every HTTP call when no timeout is configured
const DefaultTimeout = 10 * time.Second

// Client performs typed REST calls against the backend.
// Every failure is normalized into *Error; no call is retried.
type Client struct {
	base       string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// TokenResponse is the payload of a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ItemPayload is the create payload for a saved item
type ItemPayload struct {
	UserID     int64    `json:"user_id"`
	SourceURL  string   `json:"source_url,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
	Creator    string   `json:"creator,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
}

// ItemUpdate is a partial update; nil fields are left untouched
type ItemUpdate struct {
	SourceURL  *string  `json:"source_url,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Creator    *string  `json:"creator,omitempty"`
	ImageURL   *string  `json:"image_url,omitempty"`
}

// NewClient creates an API client for the given base endpoint
func NewClient(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		base:       strings.TrimRight(base, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured backend endpoint
func (c *Client) BaseURL() string {
	return c.base
}

// SetAuthToken stores the bearer token applied to authenticated calls.
// An empty token clears it.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) authToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login exchanges credentials for a bearer token.
// The token endpoint expects form-encoded fields, not JSON.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var out TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/token", "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()), "", &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup creates an account. It does not log the user in.
func (c *Client) Signup(ctx context.Context, username, password string) (*model.User, error) {
	body := map[string]string{"username": username, "password": password}
	var out model.User
	if err := c.doJSON(ctx, http.MethodPost, "/users/", body, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserFromToken fetches the profile owning the given token. Used to
// hydrate the session after login and after a token restore.
func (c *Client) GetUserFromToken(ctx context.Context, token string) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodGet, "/users/me", "", nil, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddItem creates a saved item
func (c *Client) AddItem(ctx context.Context, payload ItemPayload) (*model.Item, error) {
	var out model.Item
	if err := c.doJSON(ctx, http.MethodPost, "/items/", payload, c.authToken(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchItem loads one item by ID
func (c *Client) FetchItem(ctx context.Context, id int64) (*model.Item, error) {
	var out model.Item
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/items/%d", id), "", nil, c.authToken(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateItem applies a partial update to an item
func (c *Client) UpdateItem(ctx context.Context, id int64, update ItemUpdate) (*model.Item, error) {
	var out model.Item
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/items/%d", id), update, c.authToken(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteItem removes an item
func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/items/%d", id), "", nil, c.authToken(), nil)
}

// FetchUserItems lists a user's items with optional search query and paging
func (c *Client) FetchUserItems(ctx context.Context, userID int64, query string, offset, limit int) ([]model.Item, error) {
	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}
	params.Set("offset", strconv.Itoa(offset))
	params.Set("limit", strconv.Itoa(limit))

	path := fmt.Sprintf("/users/%d/items?%s", userID, params.Encode())
	var out []model.Item
	if err := c.do(ctx, http.MethodGet, path, "", nil, c.authToken(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteUser removes the account
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", userID), "", nil, c.authToken(), nil)
}

// SubmitURL enqueues a link for asynchronous enrichment and returns the
// server-issued task ID. A 2xx response without a task_id is an error.
func (c *Client) SubmitURL(ctx context.Context, link string) (string, error) {
	var out struct {
		TaskID  string `json:"task_id"`
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/submit_url", map[string]string{"url": link}, "", &out); err != nil {
		return "", err
	}
	if out.TaskID == "" {
		msg := out.Message
		if msg == "" {
			msg = "server did not return a task ID"
		}
		return "", &Error{Kind: KindNetwork, Message: msg, Status: http.StatusOK}
	}
	return out.TaskID, nil
}

// doJSON marshals body as JSON and delegates to do
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, token string, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("encode request: %v", err)}
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(data), token, out)
}

// do performs one HTTP round trip and normalizes every failure.
// out may be nil for calls that expect no body (204 deletes).
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("build request: %v", err)}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Printf("api: %s %s", method, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: fmt.Sprintf("read response: %v", err), Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fallback := fmt.Sprintf("request failed (HTTP %d)", resp.StatusCode)
		apiErr := normalizeError(resp.StatusCode, data, fallback)
		log.Printf("api: %s %s -> %d: %s", method, path, resp.StatusCode, apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		// Surface the body as text so the user sees what the server sent
		text := strings.TrimSpace(string(data))
		if len(text) > 200 {
			text = text[:200]
		}
		return &Error{
			Kind:    KindNetwork,
			Message: fmt.Sprintf("unexpected response (HTTP %d): %s", resp.StatusCode, text),
			Status:  resp.StatusCode,
		}
	}
	return nil
}
