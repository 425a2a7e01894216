package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// Regex patterns for submission field validation.
var (
	// GitHub usernames/orgs: 1-39 alphanumeric or hyphen, not starting with hyphen
	validOwner = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)
	// GitHub repo names: 1-100 alphanumeric, hyphen, underscore, or dot
	validRepo = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,100}$`)
	// npm names: lowercase, optionally scoped (@scope/name)
	validNpmName = regexp.MustCompile(`^(@[a-z0-9-~][a-z0-9-._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)
)

// ValidateOwner validates a GitHub username or organization name.
func ValidateOwner(owner string) error {
	if owner == "" {
		return New(ErrCodeInvalidSubmission, "owner is required")
	}
	if !validOwner.MatchString(owner) {
		return New(ErrCodeInvalidSubmission, "invalid owner format: must be 1-39 alphanumeric characters or hyphens, cannot start with hyphen")
	}
	return nil
}

// ValidateRepo validates a GitHub repository name.
func ValidateRepo(repo string) error {
	if repo == "" {
		return New(ErrCodeInvalidSubmission, "repo is required")
	}
	if !validRepo.MatchString(repo) {
		return New(ErrCodeInvalidSubmission, "invalid repo format: must be 1-100 alphanumeric characters, hyphens, underscores, or dots")
	}
	return nil
}

// ValidateNpmPackageName validates an npm package name, scoped or unscoped.
// It rejects names that could be used for path traversal once URL-encoded
// handling slips, so validation is intentionally conservative.
func ValidateNpmPackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidSubmission, "npm package name is required")
	}
	if len(name) > 214 {
		return New(ErrCodeInvalidSubmission, "npm package name too long (max 214 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSubmission, "npm package name contains invalid control characters")
		}
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidSubmission, "npm package name contains invalid characters: %q", "..")
	}
	if strings.ToLower(name) != name {
		return New(ErrCodeInvalidSubmission, "npm package names must be lowercase: %q", name)
	}
	if !validNpmName.MatchString(name) {
		return New(ErrCodeInvalidSubmission, "invalid npm package name: %q", name)
	}
	return nil
}
