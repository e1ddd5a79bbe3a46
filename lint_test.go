package twcss

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refsFromLine(line string) []ClassReference {
	return extractClassesFromLine(line, 1, "page.templ")
}

func TestLintReferences(t *testing.T) {
	gen := MustNew()

	tests := []struct {
		name        string
		line        string
		wantLinters []string
		wantText    []string
	}{
		{
			name: "clean",
			line: `<div class="p-4 md:text-lg hover:bg-blue-600">`,
		},
		{
			name:        "unknown with suggestion",
			line:        `<div class="p-4 bgg-blue-500">`,
			wantLinters: []string{LinterUnknownClass},
			wantText:    []string{`unknown class "bgg-blue-500" (did you mean "bg-blue-500"?)`},
		},
		{
			name:        "unknown without suggestion",
			line:        `<div class="qqqq-wwww">`,
			wantLinters: []string{LinterUnknownClass},
			wantText:    []string{`unknown class "qqqq-wwww"`},
		},
		{
			name:        "invalid value",
			line:        `<div class="rounded-banana">`,
			wantLinters: []string{LinterInvalidValue},
			wantText:    []string{`invalid value in class "rounded-banana"`},
		},
		{
			name:        "duplicate",
			line:        `<div class="p-4 m-2 p-4">`,
			wantLinters: []string{LinterDuplicateClass},
			wantText:    []string{`duplicate class "p-4" in the same attribute`},
		},
		{
			name:        "conflicting",
			line:        `<div class="p-4 m-2 p-2">`,
			wantLinters: []string{LinterConflictingClass},
			wantText:    []string{`class "p-2" overrides "p-4" (both set padding)`},
		},
		{
			name: "different modifiers do not conflict",
			line: `<div class="p-4 md:p-2 hover:p-1">`,
		},
		{
			name: "overlapping but different property sets do not conflict",
			line: `<div class="text-lg leading-6 border border-dashed">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LintReferences(gen, refsFromLine(tt.line))

			var linters, texts []string
			for _, issue := range result.Issues {
				linters = append(linters, issue.FromLinter)
				texts = append(texts, issue.Text)
			}
			assert.Equal(t, tt.wantLinters, linters)
			assert.Equal(t, tt.wantText, texts)
		})
	}
}

func TestLintReferencesIssueDetails(t *testing.T) {
	result := LintReferences(MustNew(), refsFromLine(`  <div class="p-4 bgg-blue-500">`))
	require.Len(t, result.Issues, 1)

	issue := result.Issues[0]
	assert.Equal(t, SeverityError, issue.Severity)
	assert.Equal(t, IssuePos{Filename: "page.templ", Line: 1, Column: 19}, issue.Pos)
	assert.Equal(t, []string{`<div class="p-4 bgg-blue-500">`}, issue.SourceLines)
	require.NotNil(t, issue.Replacement)
	assert.Equal(t, "bg-blue-500", issue.Replacement.NewText)
	assert.Equal(t, len("bgg-blue-500"), issue.Replacement.InlineLength)

	assert.Equal(t, 1, result.ErrorCount)
	assert.True(t, result.Failed(false))
}

func TestLintReferencesStats(t *testing.T) {
	refs := append(refsFromLine(`<div class="p-4 md:p-4 text-lg bgg-blue-500">`),
		refsFromLine(`<div class="p-4 rounded-banana bgg-blue-500">`)...)
	result := LintReferences(MustNew(), refs)

	assert.Equal(t, 7, result.Stats.TokensFound)
	assert.Equal(t, 5, result.Stats.UniqueTokens)
	assert.Equal(t, 3, result.Stats.Compiled)
	assert.Equal(t, 1, result.Stats.Unknown)
	assert.Equal(t, 1, result.Stats.Invalid)
	assert.Equal(t, map[string]int{"Spacing": 2, "Typography": 1}, result.Stats.Categories)

	assert.Equal(t, []QuickWin{{Class: "bgg-blue-500", Occurrences: 2, Suggestion: "bg-blue-500"}}, result.QuickWins)
}

func TestLintWarningsOnlyFailInStrictMode(t *testing.T) {
	result := LintReferences(MustNew(), refsFromLine(`<div class="p-4 p-4">`))

	assert.Equal(t, 0, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)
	assert.False(t, result.Failed(false))
	assert.True(t, result.Failed(true))
}

func TestQuickWinsOrdering(t *testing.T) {
	wins := quickWins(
		map[string]int{"p-10x": 2, "p-2x": 2, "bgg-red-500": 5},
		map[string]string{"p-10x": "p-10", "p-2x": "p-2", "bgg-red-500": "bg-red-500"},
	)

	var classes []string
	for _, w := range wins {
		classes = append(classes, w.Class)
	}
	assert.Equal(t, []string{"bgg-red-500", "p-2x", "p-10x"}, classes)
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{FromLinter: LinterUnknownClass, Text: "a"},
		{FromLinter: LinterUnknownClass, Text: "a"},
		{FromLinter: LinterUnknownClass, Text: "b"},
		{FromLinter: LinterInvalidValue, Text: "c"},
	}

	limited, truncated := limitIssues(issues, LintConfig{MaxIssuesPerLinter: 2})
	assert.Len(t, limited, 3)
	assert.Equal(t, 1, truncated)

	limited, truncated = limitIssues(issues, LintConfig{MaxSameIssues: 1})
	assert.Len(t, limited, 3)
	assert.Equal(t, 1, truncated)
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.templ"), "<div class=\"p-4 bgg-blue-500\">\n<p class=\"p-4 p-4\">\n")
	writeFile(t, filepath.Join(dir, "b.html"), `<div class="rounded-banana">`)

	result, err := Lint(LintConfig{ScanPaths: []string{filepath.Join(dir, "*")}, MaxSameIssues: 5})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesScanned)
	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)
	require.Len(t, result.Issues, 3)
	assert.Equal(t, filepath.Join(dir, "a.templ"), result.Issues[0].Pos.Filename)
	assert.Equal(t, filepath.Join(dir, "b.html"), result.Issues[2].Pos.Filename)
}

func TestLintCaretOnIndentedLine(t *testing.T) {
	refs := extractClassesFromLine("        <div class=\"p-4 bgg-red-500\">", 3, "a.templ")
	result := LintReferences(MustNew(), refs)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, 25, result.Issues[0].Pos.Column)
	assert.Equal(t, 17, result.Issues[0].SourceCol)

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, result, OutputIssues, LintConfig{PrintIssuedLines: true}))

	out := buf.String()
	assert.Contains(t, out, "a.templ:3:25:")
	assert.Contains(t, out, "\t<div class=\"p-4 bgg-red-500\">\n\t"+strings.Repeat(" ", 16)+"^\n")
}
