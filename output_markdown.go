package twcss

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes the lint result as a Markdown report, suitable for
// CI job summaries
func WriteMarkdown(w io.Writer, result *LintResult) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Utility class lint report")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "- **Issues:** %d (%d errors, %d warnings)\n", len(result.Issues), result.ErrorCount, result.WarningCount)
	fmt.Fprintf(bw, "- **Files scanned:** %d\n", result.Stats.FilesScanned)
	fmt.Fprintf(bw, "- **Distinct classes:** %d (%.1f%% compiled)\n", result.Stats.UniqueTokens, result.Stats.CompiledPercentage())
	if result.TruncatedCount > 0 {
		fmt.Fprintf(bw, "- **Truncated:** %d\n", result.TruncatedCount)
	}

	if len(result.Issues) > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "## Issues")
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "| Location | Severity | Linter | Message |")
		fmt.Fprintln(bw, "|---|---|---|---|")
		for _, issue := range result.Issues {
			fmt.Fprintf(bw, "| `%s:%d:%d` | %s | %s | %s |\n",
				issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column,
				severityLabel(issue.Severity), issue.FromLinter, markdownCell(issue.Text))
		}
	}

	if len(result.QuickWins) > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "## Quick wins")
		fmt.Fprintln(bw)
		for i, win := range result.QuickWins {
			fmt.Fprintf(bw, "%d. `%s` → `%s` (%d)\n", i+1, win.Class, win.Suggestion, win.Occurrences)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "## Warnings")
		fmt.Fprintln(bw)
		for _, warning := range result.Warnings {
			fmt.Fprintf(bw, "- %s\n", warning)
		}
	}

	return bw.Flush()
}

func severityLabel(s string) string {
	if s == "" {
		return "info"
	}
	return s
}

func markdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
