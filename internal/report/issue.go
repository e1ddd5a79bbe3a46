// Package report renders lint results for terminals.
package report

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "unknown-class"
	Text        string       `json:"Text"`        // "unknown class \"bgg-blue-500\" (did you mean \"bg-blue-500\"?)"
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue, trimmed
	SourceCol   int          `json:"SourceCol"`   // Pos.Column within SourceLines[0]; 0 means same as Pos.Column
	Pos         IssuePos     `json:"Pos"`         // File location
	LineRange   *LineRange   `json:"LineRange"`   // Optional range
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/views/page.templ"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, exact start of the token)
}

// LineRange specifies a range of lines
type LineRange struct {
	From int `json:"From"`
	To   int `json:"To"`
}

// Replacement provides automated fix suggestion (future --fix flag)
type Replacement struct {
	NewText      string // "bg-blue-500"
	InlineLength int    // Length of text to replace
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Stats summarises a lint run.
type Stats struct {
	FilesScanned int
	FilesSkipped int
	TokensFound  int            // every token occurrence
	UniqueTokens int            // distinct tokens
	Compiled     int            // distinct tokens that compiled
	Unknown      int            // distinct tokens with no utility family
	Invalid      int            // distinct tokens with a bad value
	Categories   map[string]int // compiled distinct tokens per utility category
}

// CompiledPercentage is Compiled as a share of UniqueTokens.
func (s Stats) CompiledPercentage() float64 {
	if s.UniqueTokens == 0 {
		return 100
	}
	return float64(s.Compiled) / float64(s.UniqueTokens) * 100
}

// QuickWin is a frequently mistyped class with a known fix.
type QuickWin struct {
	Class       string // "bgg-blue-500"
	Occurrences int    // 12
	Suggestion  string // "bg-blue-500"
}

// CountSeverities counts error and warning issues.
func CountSeverities(issues []Issue) (errors, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
