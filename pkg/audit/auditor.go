// Package audit implements the plugin submission audit: a fixed sequence
// of registry lookups with field-level checks, accumulating human-readable
// issues into a pass/fail verdict.
//
// Checks are independent: a failed fetch contributes exactly one issue and
// the remaining reachable checks still run, so the result always carries
// the full best-effort picture including whatever metadata was fetched.
package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apierr "github.com/UraniumCorporation/maiar-audit/pkg/errors"
	"github.com/UraniumCorporation/maiar-audit/pkg/registry/github"
	"github.com/UraniumCorporation/maiar-audit/pkg/registry/npm"
)

// requiredTopic is the tag every plugin repository must carry.
const requiredTopic = "maiar"

// minDescriptionLen is the minimum trimmed length of a repository description.
const minDescriptionLen = 10

// Issue strings for the fixed validation failures.
const (
	IssueMissingFields    = "Missing required fields in submission"
	IssueRepoNotFound     = "GitHub repository not found"
	IssueRepoPrivate      = "Repository must be public"
	IssueShortDescription = "Repository must have a clear, descriptive description (minimum 10 characters)"
	IssueMissingTopic     = `Repository must have the "maiar" topic tagged`
	IssuePackageNotFound  = "npm package not found"
	IssuePackagePrivate   = "npm package must be public"
	IssueRepoURLMismatch  = "npm package repository URL must match GitHub repository"
)

// Submission is the candidate plugin's identifying triple.
type Submission struct {
	Repo           string `json:"repo"`
	Owner          string `json:"owner"`
	NPMPackageName string `json:"npm_package_name"`
}

// RepoMetadata summarizes the fetched GitHub repository.
type RepoMetadata struct {
	Name        string     `json:"name"`
	Owner       string     `json:"owner"`
	FullName    string     `json:"full_name"`
	Stars       int        `json:"stars"`
	Description string     `json:"description"`
	Topics      []string   `json:"topics"`
	UpdatedAt   *time.Time `json:"updated_at"`
	Public      bool       `json:"public"`
	URL         string     `json:"url"`
}

// PackageMetadata summarizes the fetched npm package. Name is taken from
// the submission, not the registry payload.
type PackageMetadata struct {
	Name          string       `json:"name"`
	Version       string       `json:"version"`
	LastPublished *time.Time   `json:"last_published"`
	Author        *npm.Person  `json:"author"`
	Maintainers   []npm.Person `json:"maintainers"`
	URL           string       `json:"url"`
}

// Metadata carries whatever was successfully fetched, even when the audit
// fails. Either side is nil if its fetch never succeeded.
type Metadata struct {
	GitHub *RepoMetadata    `json:"github"`
	NPM    *PackageMetadata `json:"npm"`
}

// Result is the audit outcome. Passed is true iff Issues is empty.
type Result struct {
	ID       string   `json:"audit_id"`
	Passed   bool     `json:"passed"`
	Issues   []string `json:"issues"`
	Metadata Metadata `json:"metadata"`
}

// RepoFetcher fetches repository metadata and topics from the
// source-hosting API.
type RepoFetcher interface {
	FetchRepository(ctx context.Context, owner, repo string) (*github.Repository, error)
	FetchTopics(ctx context.Context, owner, repo string) ([]string, error)
}

// PackageFetcher fetches package metadata from the package registry.
type PackageFetcher interface {
	FetchPackage(ctx context.Context, name string) (*npm.Package, error)
}

// Auditor validates plugin submissions against the two registries. It holds
// only long-lived read-only clients; there is no state shared across
// invocations.
type Auditor struct {
	github RepoFetcher
	npm    PackageFetcher
}

// New creates an Auditor using the given registry clients.
func New(gh RepoFetcher, pkg PackageFetcher) *Auditor {
	return &Auditor{github: gh, npm: pkg}
}

// Audit runs the full validation sequence for sub. It never panics: any
// unexpected failure is recovered into an issue, so callers always get a
// complete Result.
func (a *Auditor) Audit(ctx context.Context, sub Submission) (res Result) {
	res.ID = uuid.NewString()
	res.Issues = []string{}

	defer func() {
		if r := recover(); r != nil {
			res.Issues = append(res.Issues, fmt.Sprintf("Unexpected error during audit: %v", r))
		}
		res.Passed = len(res.Issues) == 0
	}()

	if sub.Repo == "" || sub.Owner == "" || sub.NPMPackageName == "" {
		res.Issues = append(res.Issues, IssueMissingFields)
		return res
	}

	repo := a.auditRepository(ctx, sub, &res)
	a.auditPackage(ctx, sub, repo, &res)
	return res
}

// auditRepository runs the repository fetch and the repository-derived
// checks. It returns the fetched payload, or nil if the fetch failed.
func (a *Auditor) auditRepository(ctx context.Context, sub Submission, res *Result) *github.Repository {
	repo, err := a.github.FetchRepository(ctx, sub.Owner, sub.Repo)
	if err != nil {
		res.Issues = append(res.Issues, classifyRepoError(err))
		return nil
	}

	res.Metadata.GitHub = &RepoMetadata{
		Name:        repo.Name,
		Owner:       repo.Owner.Login,
		FullName:    repo.FullName,
		Stars:       repo.Stars,
		Description: repo.Description,
		Topics:      repo.Topics,
		UpdatedAt:   repo.UpdatedAt,
		Public:      !repo.Private,
		URL:         github.CanonicalURL(sub.Owner, sub.Repo),
	}

	if repo.Private {
		res.Issues = append(res.Issues, IssueRepoPrivate)
	}
	if len(strings.TrimSpace(repo.Description)) < minDescriptionLen {
		res.Issues = append(res.Issues, IssueShortDescription)
	}

	topics, err := a.github.FetchTopics(ctx, sub.Owner, sub.Repo)
	switch {
	case err != nil:
		res.Issues = append(res.Issues, "Error checking repository topics: "+apierr.UserMessage(err))
	case !hasTopic(topics, requiredTopic):
		res.Issues = append(res.Issues, IssueMissingTopic)
	}

	return repo
}

// auditPackage runs the package fetch and the package-derived checks. The
// cross-reference against the repository only runs when the repository
// fetch succeeded.
func (a *Auditor) auditPackage(ctx context.Context, sub Submission, repo *github.Repository, res *Result) {
	pkg, err := a.npm.FetchPackage(ctx, sub.NPMPackageName)
	if err != nil {
		if apierr.Is(err, apierr.ErrCodeNotFound) {
			res.Issues = append(res.Issues, IssuePackageNotFound)
		} else {
			res.Issues = append(res.Issues, "Error accessing npm package: "+apierr.UserMessage(err))
		}
		return
	}

	res.Metadata.NPM = &PackageMetadata{
		Name:          sub.NPMPackageName,
		Version:       pkg.Version,
		LastPublished: pkg.ModifiedAt,
		Author:        pkg.Author,
		Maintainers:   pkg.Maintainers,
		URL:           npm.CanonicalURL(sub.NPMPackageName),
	}

	if pkg.Private {
		res.Issues = append(res.Issues, IssuePackagePrivate)
	}
	if repo != nil && !strings.Contains(pkg.RepositoryRef, sub.Owner+"/"+sub.Repo) {
		res.Issues = append(res.Issues, IssueRepoURLMismatch)
	}
}

func classifyRepoError(err error) string {
	switch {
	case apierr.IsRateLimited(err):
		return err.Error()
	case apierr.Is(err, apierr.ErrCodeNotFound):
		return IssueRepoNotFound
	case apierr.Is(err, apierr.ErrCodeForbidden):
		return "GitHub API access forbidden: " + apierr.UserMessage(err)
	default:
		return "Error accessing GitHub repository: " + apierr.UserMessage(err)
	}
}

func hasTopic(topics []string, want string) bool {
	for _, t := range topics {
		if t == want {
			return true
		}
	}
	return false
}
