package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

// Issue is a single problem found during validation.
type Issue struct {
	Line    int
	Message string
}

// Report collects the issues found in a changelog file.
type Report struct {
	Issues []Issue
}

func (r *Report) add(line int, format string, args ...interface{}) {
	r.Issues = append(r.Issues, Issue{Line: line, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

var (
	dateRegex    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	versionRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	validTypes   = map[string]bool{
		"Added":      true,
		"Changed":    true,
		"Deprecated": true,
		"Removed":    true,
		"Fixed":      true,
		"Security":   true,
	}
)

// Validate checks a changelog against the Keep a Changelog conventions.
func Validate(source []byte) *Report {
	report := &Report{}
	lines := strings.Split(string(source), "\n")

	hasTitle := false
	hasUnreleased := false
	versions := make(map[string]bool)

	changelog, _ := Parse(source)

	for i, line := range lines {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "# "):
			hasTitle = true
			if !strings.Contains(strings.ToLower(trimmed), "changelog") {
				report.add(lineNum, "Title should contain 'Changelog'")
			}
		case strings.HasPrefix(trimmed, "## ["):
			version, unreleased := checkVersionHeading(trimmed, lineNum, report)
			if unreleased {
				hasUnreleased = true
			} else if version != "" {
				versions[version] = true
			}
		case strings.HasPrefix(trimmed, "### "):
			changeType := strings.TrimPrefix(trimmed, "### ")
			if !validTypes[changeType] {
				report.add(lineNum, "Invalid change type '%s'. Valid types: Added, Changed, Deprecated, Removed, Fixed, Security", changeType)
			}
		}
	}

	if !hasTitle {
		report.add(0, "Missing changelog title (# Changelog)")
	}
	if !hasUnreleased {
		report.add(0, "Missing [Unreleased] section")
	}

	if changelog != nil {
		for version := range versions {
			if _, ok := changelog.Links[version]; !ok {
				report.add(0, "Missing link definition for version [%s]", version)
			}
		}
		if hasUnreleased {
			if _, ok := changelog.Links["Unreleased"]; !ok {
				report.add(0, "Missing link definition for [Unreleased]")
			}
		}
	}

	return report
}

// checkVersionHeading validates a "## [...]" line. It returns the version it
// names, if any, and whether the heading is the Unreleased section.
func checkVersionHeading(heading string, lineNum int, report *Report) (string, bool) {
	end := strings.Index(heading, "]")
	if end <= 4 {
		return "", false
	}
	version := heading[4:end]

	if strings.EqualFold(version, "unreleased") {
		return "", true
	}

	if !versionRegex.MatchString(version) {
		report.add(lineNum, "Version '%s' should follow semantic versioning (X.Y.Z)", version)
	}

	if !strings.Contains(heading, " - ") {
		report.add(lineNum, "Version '%s' is missing a release date", version)
		return version, false
	}

	parts := strings.SplitN(heading[end+1:], " - ", 2)
	if len(parts) == 2 {
		date := strings.TrimSpace(parts[1])
		if !dateRegex.MatchString(date) {
			report.add(lineNum, "Date '%s' should be in ISO 8601 format (YYYY-MM-DD)", date)
		}
	}

	return version, false
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a changelog follows Keep a Changelog conventions",
	Long: `Validate that a changelog file follows the Keep a Changelog format.

Checks include:
- File has a title (# Changelog)
- Has an [Unreleased] section
- Version entries use correct format: ## [X.Y.Z] - YYYY-MM-DD
- Dates are in ISO 8601 format (YYYY-MM-DD)
- Change types are valid (Added, Changed, Deprecated, Removed, Fixed, Security)
- Link definitions exist for all versions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		report := Validate(content)

		if report.OK() {
			fmt.Println("✓ Changelog is valid")
			return nil
		}

		fmt.Printf("Found %d issue(s):\n\n", len(report.Issues))
		for _, issue := range report.Issues {
			if issue.Line > 0 {
				fmt.Printf("  Line %d: %s\n", issue.Line, issue.Message)
			} else {
				fmt.Printf("  %s\n", issue.Message)
			}
		}

		os.Exit(1)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringP("file", "f", "CHANGELOG.md", "Path to the changelog file")
	rootCmd.AddCommand(validateCmd)
}
