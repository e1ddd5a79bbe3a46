package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityStyle(t *testing.T) {
	assert.Equal(t, StyleError, severityStyle(SeverityError))
	assert.Equal(t, StyleWarning, severityStyle(SeverityWarning))
	assert.Equal(t, StyleWarning, severityStyle(SeverityInfo))
}

func TestRenderStyleWithoutColors(t *testing.T) {
	assert.Equal(t, "bg-blue-500", RenderStyle(StyleSuggestion, "bg-blue-500", false))
}

func TestPrintQuickWinsPlain(t *testing.T) {
	var buf bytes.Buffer
	NewVerboseReporter(&buf, false).PrintQuickWins([]QuickWin{
		{Class: "bgg-blue-500", Occurrences: 3, Suggestion: "bg-blue-500"},
		{Class: "roundd-lg", Occurrences: 1, Suggestion: "rounded-lg"},
	})

	want := "\nQuick Wins\n-------------\n" +
		"1. \"bgg-blue-500\" - 3 occurrences → Use bg-blue-500\n" +
		"2. \"roundd-lg\" - 1 occurrence → Use rounded-lg\n"
	assert.Equal(t, want, buf.String())
}
