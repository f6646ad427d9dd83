// Package api is the HTTP client for the dashboard backend. Every call
// issues one request against the configured base URL, attaches the stored
// bearer token when present, and rejects with a normalized *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/models"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/session"
)

type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
	log     zerolog.Logger
}

func New(baseURL string, timeout time.Duration, store session.Store, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
	}
}

// Login authenticates and persists the returned token and user snapshot
// into the session store before returning. A failed login leaves any prior
// session untouched.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	payload := map[string]string{"email": email, "password": password}
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", payload, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := c.store.Set(resp.Token, &resp.User); err != nil {
			return nil, fmt.Errorf("failed to persist session: %w", err)
		}
	}
	return &resp, nil
}

// Signup creates an account and, like Login, persists the returned session.
func (c *Client) Signup(ctx context.Context, fullName, email, password string) (*models.AuthResponse, error) {
	payload := map[string]string{"fullName": fullName, "email": email, "password": password}
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", payload, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := c.store.Set(resp.Token, &resp.User); err != nil {
			return nil, fmt.Errorf("failed to persist session: %w", err)
		}
	}
	return &resp, nil
}

// Logout tells the server to end the session, then clears the local session
// regardless of how that call went.
func (c *Client) Logout(ctx context.Context) error {
	if c.store.Token() != "" {
		if err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
			c.log.Warn().Err(err).Msg("server logout failed, clearing local session anyway")
		}
	}
	return c.store.Clear()
}

func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateProfile(ctx context.Context, fullName, email string) (*models.User, error) {
	payload := map[string]string{"fullName": fullName, "email": email}
	var u models.User
	if err := c.do(ctx, http.MethodPut, "/profile", payload, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) (string, error) {
	payload := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPut, "/profile/password", payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) ListUsers(ctx context.Context, page, limit int) (*models.UserPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	var p models.UserPage
	if err := c.do(ctx, http.MethodGet, "/users?"+q.Encode(), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) ActivateUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/users/"+url.PathEscape(id)+"/activate", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) DeactivateUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/users/"+url.PathEscape(id)+"/deactivate", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// do issues one request and normalizes every failure mode into *Error.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
