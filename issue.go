package twcss

import "github.com/yacobolo/twcss/internal/report"

// Issue represents a single linting violation in golangci-lint format.
type Issue = report.Issue

// IssuePos specifies the exact location of an issue.
type IssuePos = report.IssuePos

// Replacement provides an automated fix suggestion.
type Replacement = report.Replacement

// QuickWin is a frequently mistyped class with a known fix.
type QuickWin = report.QuickWin

// LintStats summarises a lint run.
type LintStats = report.Stats

// IssueSeverity constants
const (
	SeverityError   = report.SeverityError
	SeverityWarning = report.SeverityWarning
	SeverityInfo    = report.SeverityInfo
)

// Linter names
const (
	LinterUnknownClass     = "unknown-class"
	LinterInvalidValue     = "invalid-value"
	LinterDuplicateClass   = "duplicate-class"
	LinterConflictingClass = "conflicting-class"
)

// Issue texts
const (
	IssueUnknownClass        = "unknown class %q"
	IssueUnknownClassSuggest = "unknown class %q (did you mean %q?)"
	IssueInvalidValue        = "invalid value in class %q"
	IssueDuplicateClass      = "duplicate class %q in the same attribute"
	IssueConflictingClass    = "class %q overrides %q (both set %s)"
)
