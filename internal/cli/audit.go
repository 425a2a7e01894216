package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/UraniumCorporation/maiar-audit/pkg/audit"
	apierr "github.com/UraniumCorporation/maiar-audit/pkg/errors"
	"github.com/UraniumCorporation/maiar-audit/pkg/registry/github"
	"github.com/UraniumCorporation/maiar-audit/pkg/registry/npm"
)

// newAuditCmd creates the audit command.
func newAuditCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "audit <submission-json>",
		Short: "Audit a plugin submission against GitHub and npm",
		Long: `Audit a plugin submission against the GitHub API and the npm registry.

The submission is a JSON object with three required fields:

  {"repo": "plugin-terminal", "owner": "UraniumCorporation", "npm_package_name": "@maiar-ai/plugin-terminal"}

The verdict is reported on stdout; the exit code is 0 whenever the audit
completed, regardless of pass or fail. Set GITHUB_TOKEN (or github_token in
the config file) to raise the GitHub rate limit.

Examples:
  maiar-audit audit '{"repo":"plugin-terminal","owner":"UraniumCorporation","npm_package_name":"@maiar-ai/plugin-terminal"}'
  maiar-audit audit --timeout 30s '<submission-json>'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd.Context(), args[0], timeout)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-request timeout (overrides config file)")

	return cmd
}

func runAudit(ctx context.Context, rawSubmission string, timeout time.Duration) error {
	logger := loggerFromContext(ctx)

	var sub audit.Submission
	if err := json.Unmarshal([]byte(rawSubmission), &sub); err != nil {
		return fmt.Errorf("invalid submission JSON: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if timeout > 0 {
		cfg.Timeout = duration{timeout}
	}

	// Structurally invalid fields are terminal: report without fetching.
	if issues := validateSubmission(sub); len(issues) > 0 {
		renderResult(audit.Result{ID: uuid.NewString(), Issues: issues})
		return nil
	}

	auditor := audit.New(
		github.NewClient(cfg.GitHubToken, cfg.Timeout.Duration),
		npm.NewClient(cfg.Timeout.Duration),
	)

	logger.Debug("Starting audit",
		"owner", sub.Owner, "repo", sub.Repo, "package", sub.NPMPackageName,
		"authenticated", cfg.GitHubToken != "")

	p := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Auditing submission...")
	spinner.Start()
	res := auditor.Audit(ctx, sub)
	spinner.Stop()
	p.done(fmt.Sprintf("Audited %s/%s", sub.Owner, sub.Repo))

	logger.Debug("Audit complete", "audit_id", res.ID, "passed", res.Passed, "issues", len(res.Issues))

	renderResult(res)
	return nil
}

// validateSubmission applies format checks to non-empty fields. Empty
// fields are left to the auditor, which reports the canonical
// missing-fields issue.
func validateSubmission(sub audit.Submission) []string {
	if sub.Repo == "" || sub.Owner == "" || sub.NPMPackageName == "" {
		return nil
	}

	var issues []string
	for _, err := range []error{
		apierr.ValidateOwner(sub.Owner),
		apierr.ValidateRepo(sub.Repo),
		apierr.ValidateNpmPackageName(sub.NPMPackageName),
	} {
		if err != nil {
			issues = append(issues, apierr.UserMessage(err))
		}
	}
	return issues
}
