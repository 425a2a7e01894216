package cli

import (
	"testing"

	"github.com/UraniumCorporation/maiar-audit/pkg/audit"
)

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name       string
		sub        audit.Submission
		wantIssues int
	}{
		{
			name:       "valid scoped submission",
			sub:        audit.Submission{Repo: "plugin-terminal", Owner: "UraniumCorporation", NPMPackageName: "@maiar-ai/plugin-terminal"},
			wantIssues: 0,
		},
		{
			name: "empty fields are left to the auditor",
			sub:  audit.Submission{Repo: "", Owner: "acme", NPMPackageName: "plugin-x"},
			// The auditor owns the missing-fields issue; no format issues here.
			wantIssues: 0,
		},
		{
			name:       "bad owner",
			sub:        audit.Submission{Repo: "plugin-x", Owner: "-bad", NPMPackageName: "plugin-x"},
			wantIssues: 1,
		},
		{
			name:       "uppercase npm name",
			sub:        audit.Submission{Repo: "plugin-x", Owner: "acme", NPMPackageName: "Plugin-X"},
			wantIssues: 1,
		},
		{
			name:       "multiple violations accumulate",
			sub:        audit.Submission{Repo: "bad repo", Owner: "-bad", NPMPackageName: "Bad"},
			wantIssues: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := validateSubmission(tt.sub)
			if len(issues) != tt.wantIssues {
				t.Errorf("validateSubmission() = %v, want %d issues", issues, tt.wantIssues)
			}
		})
	}
}
