// Package npm provides a client for the npm registry. The registry's
// package documents carry dynamically shaped fields (author and repository
// may be a bare string or an object); this package normalizes them to one
// canonical form at the boundary before any comparison logic runs.
package npm

import (
	"context"
	"fmt"
	"time"

	"github.com/UraniumCorporation/maiar-audit/pkg/registry"
)

// Person is the canonical form of an npm author or maintainer entry.
type Person struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Package holds the normalized package metadata the audit inspects.
type Package struct {
	Name        string     // registry-reported package name
	Version     string     // latest dist-tag
	ModifiedAt  *time.Time // last publish timestamp
	Author      *Person    // nil when the document has no author
	Maintainers []Person   // never nil, defaults to empty
	Private     bool
	// RepositoryRef is the declared repository reference reduced to a
	// plain string (the url field if an object, empty if neither string
	// nor object) and normalized to canonical HTTPS form.
	RepositoryRef string
}

// Client provides access to the npm registry API.
type Client struct {
	*registry.Client
	baseURL string
}

// NewClient creates an npm registry client. Requests are unauthenticated.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		Client:  registry.NewClient("", timeout, nil),
		baseURL: "https://registry.npmjs.org",
	}
}

// FetchPackage retrieves and normalizes the package document for name.
// Scoped names are URL-encoded for the request path.
func (c *Client) FetchPackage(ctx context.Context, name string) (*Package, error) {
	var data packageResponse
	url := c.baseURL + "/" + registry.URLEncode(name)
	if err := c.Get(ctx, url, &data); err != nil {
		return nil, err
	}

	pkg := &Package{
		Name:          data.Name,
		Version:       data.DistTags.Latest,
		ModifiedAt:    data.Time.Modified,
		Author:        NormalizePerson(data.Author),
		Maintainers:   normalizeMaintainers(data.Maintainers),
		Private:       data.Private,
		RepositoryRef: registry.NormalizeRepoURL(NormalizeRepositoryRef(data.Repository)),
	}
	return pkg, nil
}

// CanonicalURL builds the public-facing package link from the submitted
// package name.
func CanonicalURL(name string) string {
	return fmt.Sprintf("https://www.npmjs.com/package/%s", name)
}

type packageResponse struct {
	Name     string `json:"name"`
	DistTags struct {
		Latest string `json:"latest"`
	} `json:"dist-tags"`
	Time struct {
		Modified *time.Time `json:"modified"`
	} `json:"time"`
	Author      any   `json:"author"`
	Maintainers []any `json:"maintainers"`
	Repository  any   `json:"repository"`
	Private     bool  `json:"private"`
}
