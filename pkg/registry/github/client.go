// Package github provides a client for the GitHub REST API endpoints the
// audit needs: repository metadata and repository topics.
package github

import (
	"context"
	"fmt"
	"time"

	"github.com/UraniumCorporation/maiar-audit/pkg/registry"
)

// topicsAcceptHeader is required by the repository topics endpoint.
const topicsAcceptHeader = "application/vnd.github.mercy-preview+json"

// Repository holds the repository metadata fields the audit inspects.
type Repository struct {
	Name        string     `json:"name"`
	FullName    string     `json:"full_name"`
	Owner       Owner      `json:"owner"`
	Stars       int        `json:"stargazers_count"`
	Description string     `json:"description"`
	Topics      []string   `json:"topics"`
	UpdatedAt   *time.Time `json:"updated_at"`
	Private     bool       `json:"private"`
}

// Owner is the repository owner account.
type Owner struct {
	Login string `json:"login"`
}

// Client provides access to the GitHub API for repository metadata.
type Client struct {
	*registry.Client
	baseURL string
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (lower
// rate limits).
func NewClient(token string, timeout time.Duration) *Client {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	return &Client{
		Client:  registry.NewClient(token, timeout, headers),
		baseURL: "https://api.github.com",
	}
}

// FetchRepository retrieves repository metadata by owner and repo name.
func (c *Client) FetchRepository(ctx context.Context, owner, repo string) (*Repository, error) {
	var data Repository
	url := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, owner, repo)
	if err := c.Get(ctx, url, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// FetchTopics retrieves the repository's topic list. The endpoint requires
// a preview Accept header distinct from the client default.
func (c *Client) FetchTopics(ctx context.Context, owner, repo string) ([]string, error) {
	var data struct {
		Names []string `json:"names"`
	}
	url := fmt.Sprintf("%s/repos/%s/%s/topics", c.baseURL, owner, repo)
	headers := map[string]string{"Accept": topicsAcceptHeader}
	if err := c.GetWithHeaders(ctx, url, headers, &data); err != nil {
		return nil, err
	}
	return data.Names, nil
}

// CanonicalURL builds the public-facing repository link from submission
// fields, independent of what the API payload reports.
func CanonicalURL(owner, repo string) string {
	return fmt.Sprintf("https://github.com/%s/%s", owner, repo)
}
