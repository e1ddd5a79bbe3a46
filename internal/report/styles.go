package report

import "github.com/charmbracelet/lipgloss"

// Terminal palette, keyed by what is printed rather than by colour.
// Lipgloss degrades colours to what the terminal supports.
var (
	// StyleLocation renders file:line:col prefixes and section headers.
	StyleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleError marks unknown and invalid classes.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleWarning marks duplicate and conflicting classes.
	StyleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleClass renders an offending class name inside a quick win.
	StyleClass = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	// StyleSuggestion renders a replacement class and the quick wins header.
	StyleSuggestion = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleMuted renders linter names and hints.
	StyleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// severityStyle picks the caret and label style for an issue.
func severityStyle(severity string) lipgloss.Style {
	if severity == SeverityError {
		return StyleError
	}
	return StyleWarning
}

// RenderStyle applies a lipgloss style to text when colors are enabled.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
