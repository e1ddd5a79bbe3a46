package twcss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Summary   JSONSummary    `json:"summary"`
	Stats     JSONStats      `json:"stats"`
	Issues    []JSONIssue    `json:"issues"`
	QuickWins []JSONQuickWin `json:"quick_wins"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains class compilation statistics
type JSONStats struct {
	ClassOccurrences   int            `json:"class_occurrences"`
	DistinctClasses    int            `json:"distinct_classes"`
	Compiled           int            `json:"compiled"`
	Unknown            int            `json:"unknown"`
	InvalidValues      int            `json:"invalid_values"`
	CompiledPercentage float64        `json:"compiled_percentage"`
	Categories         map[string]int `json:"categories"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Linter     string `json:"linter"`
	Source     string `json:"source,omitempty"`     // Optional source line
	Suggestion string `json:"suggestion,omitempty"` // Replacement class, if any
}

// JSONQuickWin represents a frequent typo with a known fix
type JSONQuickWin struct {
	Class       string `json:"class"`
	Occurrences int    `json:"occurrences"`
	Suggestion  string `json:"suggestion"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result, time.Now())
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult, now time.Time) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		suggestion := ""
		if issue.Replacement != nil {
			suggestion = issue.Replacement.NewText
		}
		jsonIssues[i] = JSONIssue{
			File:       issue.Pos.Filename,
			Line:       issue.Pos.Line,
			Column:     issue.Pos.Column,
			Severity:   issue.Severity,
			Message:    issue.Text,
			Linter:     issue.FromLinter,
			Source:     source,
			Suggestion: suggestion,
		}
	}

	wins := make([]JSONQuickWin, len(result.QuickWins))
	for i, win := range result.QuickWins {
		wins[i] = JSONQuickWin{
			Class:       win.Class,
			Occurrences: win.Occurrences,
			Suggestion:  win.Suggestion,
		}
	}

	categories := result.Stats.Categories
	if categories == nil {
		categories = map[string]int{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.Stats.FilesScanned,
		},
		Stats: JSONStats{
			ClassOccurrences:   result.Stats.TokensFound,
			DistinctClasses:    result.Stats.UniqueTokens,
			Compiled:           result.Stats.Compiled,
			Unknown:            result.Stats.Unknown,
			InvalidValues:      result.Stats.Invalid,
			CompiledPercentage: result.Stats.CompiledPercentage(),
			Categories:         categories,
		},
		Issues:    jsonIssues,
		QuickWins: wins,
	}
}
