package twcss

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"github.com/yacobolo/twcss/internal/report"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths []string    // Patterns to scan (e.g., "web/**/*.templ")
	Generator *Generator  // nil uses New() with Logger
	Logger    *zap.Logger // nil discards
	Verbose   bool
	Strict    bool // Warnings fail the run as well as errors

	// golangci-style output configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (unknown-class) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)
}

// LintResult contains linting analysis results
type LintResult struct {
	Issues         []Issue
	Stats          LintStats
	QuickWins      []QuickWin // Most frequent typos with a suggestion
	Warnings       []string
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to limits
}

// Failed reports whether the run should exit non-zero.
func (r *LintResult) Failed(strict bool) bool {
	return r.ErrorCount > 0 || (strict && r.WarningCount > 0)
}

// Lint scans the configured paths and checks every class token
func Lint(config LintConfig) (*LintResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	gen := config.Generator
	if gen == nil {
		var err error
		if gen, err = New(WithLogger(log)); err != nil {
			return nil, err
		}
	}

	references, stats, err := ScanFiles(config.ScanPaths, log)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	result := LintReferences(gen, references)
	result.Stats.FilesScanned = stats.FilesScanned
	result.Stats.FilesSkipped = stats.FilesSkipped
	if stats.FilesFailed > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d file(s) could not be read; run with --verbose for details", stats.FilesFailed))
	}

	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}
	result.ErrorCount, result.WarningCount = report.CountSeverities(result.Issues)

	log.Debug("lint finished",
		zap.Int("issues", len(result.Issues)),
		zap.Int("truncated", result.TruncatedCount))
	return result, nil
}

type tokenResult struct {
	rule   Rule
	err    error
	prefix string // modifier chain plus important marker
}

// LintReferences checks already-scanned references. Issues come back sorted
// by position.
func LintReferences(gen *Generator, references []ClassReference) *LintResult {
	result := &LintResult{Stats: LintStats{Categories: make(map[string]int)}}
	results := make(map[string]tokenResult)
	unknown := make(map[string]int)
	suggestions := make(map[string]string)

	for _, ref := range references {
		result.Stats.TokensFound++
		tr, ok := results[ref.Token]
		if !ok {
			tr = lintToken(gen, ref.Token, &result.Stats)
			results[ref.Token] = tr
		}

		var unknownErr *UnknownClassError
		switch {
		case tr.err == nil:
		case errors.As(tr.err, &unknownErr):
			issue := newIssue(ref, LinterUnknownClass, fmt.Sprintf(IssueUnknownClass, ref.Token))
			if unknownErr.Suggestion != "" {
				issue.Text = fmt.Sprintf(IssueUnknownClassSuggest, ref.Token, unknownErr.Suggestion)
				issue.Replacement = &Replacement{NewText: unknownErr.Suggestion, InlineLength: len(ref.Token)}
				unknown[ref.Token]++
				suggestions[ref.Token] = unknownErr.Suggestion
			}
			result.Issues = append(result.Issues, issue)
		default:
			result.Issues = append(result.Issues, newIssue(ref, LinterInvalidValue, fmt.Sprintf(IssueInvalidValue, ref.Token)))
		}
	}

	result.Issues = append(result.Issues, attributeIssues(references, results)...)
	report.SortIssues(result.Issues)
	result.QuickWins = quickWins(unknown, suggestions)
	result.ErrorCount, result.WarningCount = report.CountSeverities(result.Issues)
	return result
}

func lintToken(gen *Generator, token string, stats *LintStats) tokenResult {
	stats.UniqueTokens++

	rule, err := gen.Compile(token)
	_, base := gen.decomposer.Decompose(token)
	important, _ := stripImportant(base)
	prefix := strings.TrimSuffix(token, base)
	if important {
		prefix += "!"
	}

	switch {
	case err == nil:
		stats.Compiled++
		if cat, ok := gen.Category(token); ok {
			stats.Categories[string(cat)]++
		}
	case errors.Is(err, ErrUnknownClass):
		stats.Unknown++
	default:
		stats.Invalid++
	}
	return tokenResult{rule: rule, err: err, prefix: prefix}
}

func newIssue(ref ClassReference, linter, text string) Issue {
	severity := SeverityError
	if linter == LinterDuplicateClass || linter == LinterConflictingClass {
		severity = SeverityWarning
	}
	return Issue{
		FromLinter:  linter,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{ref.Location.Text},
		SourceCol:   ref.Location.TextColumn,
		Pos: IssuePos{
			Filename: ref.Location.File,
			Line:     ref.Location.Line,
			Column:   ref.Location.Column,
		},
	}
}

type attributeKey struct {
	file  string
	line  int
	value string
}

// attributeIssues flags tokens repeated within one attribute value and
// tokens that set exactly the same properties as an earlier token in the
// same modifier context ("p-4 p-2").
func attributeIssues(references []ClassReference, results map[string]tokenResult) []Issue {
	var issues []Issue
	seen := make(map[attributeKey]map[string]bool)
	owners := make(map[attributeKey]map[string]string)

	for _, ref := range references {
		key := attributeKey{file: ref.Location.File, line: ref.Location.Line, value: ref.Value}
		if seen[key] == nil {
			seen[key] = make(map[string]bool)
			owners[key] = make(map[string]string)
		}

		if seen[key][ref.Token] {
			issues = append(issues, newIssue(ref, LinterDuplicateClass, fmt.Sprintf(IssueDuplicateClass, ref.Token)))
			continue
		}
		seen[key][ref.Token] = true

		tr := results[ref.Token]
		props := propertySet(tr.rule)
		if tr.err != nil || props == "" {
			continue
		}
		sig := tr.prefix + "\x00" + strings.Join(tr.rule.AtRules, "\x00") + "\x00" + props
		if earlier, ok := owners[key][sig]; ok {
			text := fmt.Sprintf(IssueConflictingClass, ref.Token, earlier, strings.ReplaceAll(props, ",", ", "))
			issues = append(issues, newIssue(ref, LinterConflictingClass, text))
			continue
		}
		owners[key][sig] = ref.Token
	}
	return issues
}

// propertySet returns the sorted, comma-joined non-custom properties of r.
func propertySet(r Rule) string {
	var props []string
	for _, d := range r.Declarations {
		if !strings.HasPrefix(d.Property, "--") {
			props = append(props, d.Property)
		}
	}
	slices.Sort(props)
	return strings.Join(slices.Compact(props), ",")
}

// quickWins ranks fixable unknown classes by frequency
func quickWins(freq map[string]int, suggestions map[string]string) []QuickWin {
	wins := make([]QuickWin, 0, len(freq))
	for class, count := range freq {
		wins = append(wins, QuickWin{Class: class, Occurrences: count, Suggestion: suggestions[class]})
	}

	sort.Slice(wins, func(i, j int) bool {
		if wins[i].Occurrences != wins[j].Occurrences {
			return wins[i].Occurrences > wins[j].Occurrences
		}
		return natural.Less(wins[i].Class, wins[j].Class)
	})

	if len(wins) > 10 {
		wins = wins[:10]
	}
	return wins
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 {
		perLinter := make(map[string]int)
		var kept []Issue
		for _, issue := range issues {
			if perLinter[issue.FromLinter] < config.MaxIssuesPerLinter {
				kept = append(kept, issue)
				perLinter[issue.FromLinter]++
			}
		}
		issues = kept
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
