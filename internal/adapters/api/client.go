package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/herbalife-clubes/admin-bot/internal/domain/common/errorz"
	"github.com/herbalife-clubes/admin-bot/pkg/logger/types"
)

type adminKey struct{}

// WithAdmin binds the acting admin to the request context. The client
// resolves the bearer token for that admin on every call, so a cleared
// session can never leak a stale Authorization header.
func WithAdmin(ctx context.Context, adminID int64) context.Context {
	return context.WithValue(ctx, adminKey{}, adminID)
}

func AdminFrom(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(adminKey{}).(int64)
	return id, ok
}

// SessionStore is the token side of the session storage. Clear must drop
// both the token and the cached profile.
type SessionStore interface {
	Token(ctx context.Context, adminID int64) (string, error)
	Clear(ctx context.Context, adminID int64) error
}

// StatusError is any non-2xx response other than 401.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: unexpected status %d: %s", e.Code, e.Body)
}

type Options struct {
	BaseURL  string
	Timeout  time.Duration
	Sessions SessionStore
	Logger   *types.Logger
}

// Client is the single configured HTTP client for the clubs backend. It
// attaches the admin's bearer token to every request and intercepts 401 by
// clearing the stored session; the failing call still returns an error so
// the initiating handler observes the failure. Requests are never retried.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions SessionStore
	logger   *types.Logger
}

func NewClient(opts Options) *Client {
	return &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		http:     &http.Client{Timeout: opts.Timeout},
		sessions: opts.Sessions,
		logger:   opts.Logger,
	}
}

func (c *Client) Get(ctx context.Context, path string, params url.Values, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, params, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, params url.Values, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, params, body, out)
}

func (c *Client) Put(ctx context.Context, path string, params url.Values, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, path, params, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, params url.Values, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPatch, path, params, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, params url.Values) error {
	return c.doJSON(ctx, http.MethodDelete, path, params, nil, nil)
}

// GetBinary fetches a raw payload (server-rendered PDF exports).
func (c *Client) GetBinary(ctx context.Context, path string, params url.Values) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func (c *Client) doJSON(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	resp, err := c.do(ctx, method, path, params, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body interface{}) (*http.Response, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, application/pdf")
	req.Header.Set("X-Request-ID", uuid.NewString())

	adminID, hasAdmin := AdminFrom(ctx)
	if hasAdmin {
		token, errToken := c.sessions.Token(ctx, adminID)
		if errToken != nil {
			return nil, errToken
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if c.logger != nil {
		c.logger.Debugf("%s %s", method, u)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		if hasAdmin {
			if errClear := c.sessions.Clear(ctx, adminID); errClear != nil && c.logger != nil {
				c.logger.Errorf("(user: %d) error while clearing expired session: %v", adminID, errClear)
			}
		}
		return nil, errorz.ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	return resp, nil
}
