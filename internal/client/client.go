/*
Package client is the HTTP client of the tracker API.

A Client targets one base URL. Each request reads the bearer token from the injected
TokenSource at dispatch time, so logging in or out takes effect on the next call without
rebuilding the client. Success bodies are decoded as-is; failures surface as *APIError or,
when the server could not be reached, as errors wrapping ErrTransport. There are no retries.
*/
package client

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

	"github.com/rs/zerolog"

	"gametracker/internal/pkg/logx"
)

// DefaultTimeout bounds every request unless WithTimeout overrides it.
const DefaultTimeout = 15 * time.Second

// maxErrorBody caps how much of a failed response is read.
const maxErrorBody = 64 << 10

// TokenSource yields the current bearer token, or "" when signed out.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

// Token implements TokenSource.
func (f TokenFunc) Token() string { return f() }

// Client sends JSON requests to the tracker API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	timeout        time.Duration
	onUnauthorized func()
	logger         zerolog.Logger

	Auth         *AuthAPI
	Games        *GamesAPI
	Achievements *AchievementsAPI
	Chatbot      *ChatbotAPI
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout. Zero or less disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithUnauthorizedHook registers fn to run after any 401 response. The session layer uses
// it to drop a token the server no longer accepts.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New returns a client for baseURL, for example http://localhost:5000/api. A nil tokens
// sends every request anonymously.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	if tokens == nil {
		tokens = TokenFunc(func() string { return "" })
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		timeout:    DefaultTimeout,
		logger:     logx.Component("client"),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthAPI{c: c}
	c.Games = &GamesAPI{c: c}
	c.Achievements = &AchievementsAPI{c: c}
	c.Chatbot = &ChatbotAPI{c: c}
	return c
}

// Do sends one request. body, when non-nil, is encoded as JSON; out, when non-nil, receives
// the decoded success body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer res.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", res.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("request completed")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := decodeError(res)
		if res.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return apiErr
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s response: %w", ErrTransport, method, path, err)
	}
	return nil
}

func decodeError(res *http.Response) *APIError {
	apiErr := &APIError{Status: res.StatusCode}

	data, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	if err == nil && len(data) > 0 {
		var body struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &body) == nil {
			apiErr.Code = body.Code
			apiErr.Message = body.Message
		}
	}
	return apiErr
}

func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var out T
	err := c.Do(ctx, method, path, query, body, &out)
	return out, err
}

func segment(id string) string {
	return "/" + url.PathEscape(id)
}
