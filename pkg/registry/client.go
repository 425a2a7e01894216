package registry

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

	apierr "github.com/UraniumCorporation/maiar-audit/pkg/errors"
)

// Client provides shared HTTP functionality for the registry API clients.
// It applies the identifying user agent, merges request headers, scopes the
// bearer token to the GitHub API host, and classifies failures into the
// audit's error taxonomy.
type Client struct {
	http    *http.Client
	headers map[string]string
	token   string

	// apiHost is the host the bearer token and rate-limit handling are
	// scoped to. Defaults to the GitHub API host.
	apiHost string
}

// NewClient creates a Client with the given bearer token and per-request
// timeout. Pass an empty token for unauthenticated requests (lower rate
// limits). Headers are applied to all requests made through this client;
// pass nil if no default headers are needed.
func NewClient(token string, timeout time.Duration, headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(timeout),
		headers: headers,
		token:   token,
		apiHost: githubAPIHost,
	}
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
// It uses the client's default headers.
func (c *Client) Get(ctx context.Context, rawURL string, v any) error {
	return c.GetWithHeaders(ctx, rawURL, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with
// defaults. Request-specific headers override client defaults for the same
// key. The response body is JSON-decoded into v; a decode failure is
// classified as a malformed response, never silently swallowed.
func (c *Client) GetWithHeaders(ctx context.Context, rawURL string, headers map[string]string, v any) error {
	body, err := c.doRequest(ctx, rawURL, headers)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apierr.Wrap(apierr.ErrCodeMalformedResponse, err, "invalid JSON response from %s", rawURL)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apierr.Wrap(apierr.ErrCodeNetwork, err, "invalid request for %s", rawURL)
	}

	req.Header.Set("User-Agent", userAgent)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if c.token != "" && req.URL.Host == c.apiHost {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apierr.Wrap(apierr.ErrCodeNetwork, err, "request to %s failed", rawURL)
	}
	defer resp.Body.Close()

	// Rate-limit exhaustion is decided from headers alone, before the body
	// is read or parsed.
	if err := checkRateLimit(resp.Header); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Wrap(apierr.ErrCodeNetwork, err, "reading response from %s", rawURL)
	}

	if resp.StatusCode >= 400 {
		return nil, statusError(resp.StatusCode, body)
	}
	return body, nil
}

// checkRateLimit inspects the x-ratelimit-* headers GitHub attaches to API
// responses. If the remaining quota is exactly zero, it fails with a
// rate-limit error carrying a human-readable reset time.
func checkRateLimit(h http.Header) error {
	if h.Get("x-ratelimit-remaining") != "0" {
		return nil
	}
	var resetAt time.Time
	if secs, err := strconv.ParseInt(h.Get("x-ratelimit-reset"), 10, 64); err == nil {
		resetAt = time.Unix(secs, 0)
	}
	return &apierr.RateLimitError{ResetAt: resetAt}
}

// statusError maps a non-rate-limited HTTP error status to a coded error.
// If the body is a JSON object with a "message" field (GitHub's error
// shape), that message is surfaced; otherwise the status text is used.
func statusError(status int, body []byte) error {
	msg := http.StatusText(status)
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(body), &payload); err == nil {
		if payload.Message != "" {
			msg = payload.Message
		} else if payload.Error != "" {
			msg = payload.Error
		}
	}

	code := apierr.ErrCodeUpstream
	switch status {
	case http.StatusNotFound:
		code = apierr.ErrCodeNotFound
	case http.StatusForbidden:
		code = apierr.ErrCodeForbidden
	}
	return &apierr.Error{
		Code:    code,
		Message: fmt.Sprintf("%s (status %d)", msg, status),
	}
}

// URLEncode percent-encodes a string for use in URLs, e.g. scoped npm
// package names. This is a convenience wrapper around [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }
