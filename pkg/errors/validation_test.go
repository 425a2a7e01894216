package errors

import (
	"strings"
	"testing"
)

func TestValidateOwner(t *testing.T) {
	tests := []struct {
		name    string
		owner   string
		wantErr bool
	}{
		{"valid org", "UraniumCorporation", false},
		{"valid with hyphen", "maiar-ai", false},
		{"single char", "a", false},
		{"empty", "", true},
		{"leading hyphen", "-bad", true},
		{"too long", strings.Repeat("a", 40), true},
		{"slash", "a/b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOwner(tt.owner)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOwner(%q) error = %v, wantErr %v", tt.owner, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSubmission) {
				t.Errorf("ValidateOwner(%q) code = %q, want INVALID_SUBMISSION", tt.owner, GetCode(err))
			}
		})
	}
}

func TestValidateRepo(t *testing.T) {
	tests := []struct {
		name    string
		repo    string
		wantErr bool
	}{
		{"valid", "plugin-terminal", false},
		{"with dots", "my.plugin_v2", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 101), true},
		{"space", "bad repo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateRepo(tt.repo); (err != nil) != tt.wantErr {
				t.Errorf("ValidateRepo(%q) error = %v, wantErr %v", tt.repo, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNpmPackageName(t *testing.T) {
	tests := []struct {
		name    string
		pkg     string
		wantErr bool
	}{
		{"scoped", "@maiar-ai/plugin-terminal", false},
		{"unscoped", "lodash", false},
		{"empty", "", true},
		{"uppercase", "MyPackage", true},
		{"traversal", "@scope/..", true},
		{"too long", strings.Repeat("a", 215), true},
		{"bare scope", "@scope/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateNpmPackageName(tt.pkg); (err != nil) != tt.wantErr {
				t.Errorf("ValidateNpmPackageName(%q) error = %v, wantErr %v", tt.pkg, err, tt.wantErr)
			}
		})
	}
}
