package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// Options controls issue rendering.
type Options struct {
	UseColors        bool // force colors; otherwise auto-detected
	PrintIssuedLines bool // show the source line and a caret under each issue
	PrintLinterName  bool // append "(linter)" to each issue
}

// Reporter handles formatting and outputting linting results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(opts.UseColors),
		printLines:      opts.PrintIssuedLines,
		printLinterName: opts.PrintLinterName,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}

	// FORCE_COLOR is honoured by most CI systems
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// SortIssues orders issues by file, then line, then column
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

// PrintIssues outputs issues in golangci-lint format
func (r *Reporter) PrintIssues(issues []Issue) {
	SortIssues(issues)
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (linter)
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	text := issue.Text
	if issue.Severity == SeverityError {
		text = RenderStyle(StyleError, "error", r.useColors) + ": " + text
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleLocation, location, r.useColors),
		text,
		RenderStyle(StyleMuted, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		column := issue.Pos.Column
		if issue.SourceCol > 0 {
			column = issue.SourceCol
		}
		caret := r.buildCaretIndicator(issue.SourceLines[0], column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(severityStyle(issue.Severity), caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up under tabbed source.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(issues []Issue, truncated int) {
	totalIssues := len(issues)
	errors, warnings := CountSeverities(issues)

	fmt.Fprintln(r.w, "")

	switch {
	case errors > 0 && warnings > 0 && truncated > 0:
		fmt.Fprintf(r.w, "%s (%s, %s; %s truncated):\n",
			pluralizeCount(totalIssues, "issue", "issues"),
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"),
			pluralizeCount(truncated, "issue", "issues"))
	case errors > 0 && warnings > 0:
		fmt.Fprintf(r.w, "%s (%s, %s):\n",
			pluralizeCount(totalIssues, "issue", "issues"),
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	case truncated > 0:
		fmt.Fprintf(r.w, "%s (%s truncated):\n",
			pluralizeCount(totalIssues, "issue", "issues"),
			pluralizeCount(truncated, "issue", "issues"))
	default:
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(totalIssues, "issue", "issues"))
	}

	linterCounts := make(map[string]int)
	for _, issue := range issues {
		linterCounts[issue.FromLinter]++
	}
	linters := make([]string, 0, len(linterCounts))
	for linter := range linterCounts {
		linters = append(linters, linter)
	}
	sort.Sort(natural.StringSlice(linters))

	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, linterCounts[linter])
	}

	if totalIssues > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleMuted, "Hint: Run with --output-format full to see statistics and Quick Wins", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
