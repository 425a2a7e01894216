// Package registry provides the HTTP adapter shared by the GitHub and npm
// API clients. It owns the identifying user agent, bearer-token scoping,
// rate-limit handling, and the mapping of HTTP failures onto the audit's
// error taxonomy.
package registry

import (
	"net/http"
	"strings"
	"time"
)

const (
	// userAgent identifies maiar-audit to the upstream registries.
	userAgent = "maiar-audit"

	// githubAPIHost is the host the bearer token is scoped to.
	githubAPIHost = "api.github.com"

	// DefaultTimeout is the per-request timeout used when none is configured.
	DefaultTimeout = 10 * time.Second
)

// NewHTTPClient creates an HTTP client with the given per-request timeout.
// A zero or negative timeout falls back to [DefaultTimeout].
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

var repoURLReplacer = strings.NewReplacer(
	"git@github.com:", "https://github.com/",
	"git://github.com/", "https://github.com/",
)

// NormalizeRepoURL converts various repository URL formats to canonical
// HTTPS form. Handles git@, git://, and git+ prefixes, and removes .git
// suffixes. Returns empty string if raw is empty.
func NormalizeRepoURL(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "git+")
	s = repoURLReplacer.Replace(s)
	return strings.TrimSuffix(s, ".git")
}
