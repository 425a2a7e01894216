package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/UraniumCorporation/maiar-audit/pkg/audit"
)

// notAvailable is the sentinel shown for any metadata field that was never
// fetched, keeping the report shape stable regardless of which checks
// failed.
const notAvailable = "N/A"

// renderResult prints the verdict banner, the itemized issues, and the
// metadata summary followed by its JSON form.
func renderResult(res audit.Result) {
	printNewline()
	if res.Passed {
		fmt.Fprintln(out, StyleSuccess.Render(iconSuccess+" Submission passed all checks"))
	} else {
		fmt.Fprintln(out, StyleFailure.Render(iconError+" Submission failed validation"))
		printNewline()
		for _, issue := range res.Issues {
			printError("%s", issue)
		}
	}

	printNewline()
	fmt.Fprintln(out, StyleTitle.Render("GitHub repository"))
	renderGitHub(res.Metadata.GitHub)

	printNewline()
	fmt.Fprintln(out, StyleTitle.Render("npm package"))
	renderNPM(res.Metadata.NPM)

	printNewline()
	fmt.Fprintln(out, StyleTitle.Render("Result"))
	renderJSON(res)
}

func renderGitHub(m *audit.RepoMetadata) {
	if m == nil {
		m = &audit.RepoMetadata{}
	}
	printKeyValue("Name", orNA(m.Name))
	printKeyValue("Owner", orNA(m.Owner))
	printKeyValue("Full name", orNA(m.FullName))
	printKeyValue("Stars", strconv.Itoa(m.Stars))
	printKeyValue("Description", orNA(m.Description))
	printKeyValue("Topics", formatList(m.Topics))
	printKeyValue("Updated", formatTime(m.UpdatedAt))
	printKeyValue("Public", strconv.FormatBool(m.Public))
	printKeyValue("URL", orNA(m.URL))
}

func renderNPM(m *audit.PackageMetadata) {
	if m == nil {
		m = &audit.PackageMetadata{}
	}
	printKeyValue("Name", orNA(m.Name))
	printKeyValue("Version", orNA(m.Version))
	printKeyValue("Published", formatTime(m.LastPublished))
	author := notAvailable
	if m.Author != nil {
		author = m.Author.Name
	}
	printKeyValue("Author", orNA(author))
	maintainers := make([]string, 0, len(m.Maintainers))
	for _, p := range m.Maintainers {
		maintainers = append(maintainers, p.Name)
	}
	printKeyValue("Maintainers", formatList(maintainers))
	printKeyValue("URL", orNA(m.URL))
}

// renderJSON prints the whole result, so the run ID and verdict travel
// with the metadata in the machine-readable form.
func renderJSON(res audit.Result) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		printWarning("could not serialize result: %v", err)
		return
	}
	fmt.Fprintln(out, string(data))
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return notAvailable
	}
	return t.Format(time.RFC3339)
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	return strings.Join(items, ", ")
}
