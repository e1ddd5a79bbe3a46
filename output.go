package twcss

import (
	"fmt"
	"io"

	"github.com/yacobolo/twcss/internal/report"
)

// OutputFormat selects how lint results are written
type OutputFormat string

// Output formats
const (
	OutputIssues   OutputFormat = "issues"
	OutputSummary  OutputFormat = "summary"
	OutputFull     OutputFormat = "full"
	OutputJSON     OutputFormat = "json"
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat selects the appropriate output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit quiet flag wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}

	return DetermineDefaultOutputFormat()
}

// DetermineDefaultOutputFormat returns the default output format.
// Issues only, like golangci-lint.
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) error {
	opts := report.Options{
		UseColors:        config.UseColors,
		PrintIssuedLines: config.PrintIssuedLines,
		PrintLinterName:  config.PrintLinterName,
	}

	switch format {
	case OutputIssues:
		reporter := report.NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.TruncatedCount)

	case OutputSummary:
		writeStatistics(report.NewVerboseReporter(w, report.ShouldUseColors(config.UseColors)), result)

	case OutputFull:
		reporter := report.NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.TruncatedCount)
		writeStatistics(report.NewVerboseReporter(w, reporter.UseColors()), result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("write json: %w", err)
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

func writeStatistics(r *report.VerboseReporter, result *LintResult) {
	r.PrintStatistics(result.Stats)
	r.PrintCoverage(result.Stats)
	r.PrintCategories(result.Stats)
	r.PrintQuickWins(result.QuickWins)
	r.PrintWarnings(result.Warnings)
}
