package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/maruel/natural"
)

// VerboseReporter handles detailed statistics and suggestions
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(s Stats) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleLocation, "Utility Class Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Files Scanned:     %d\n", s.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:     %d\n", s.FilesSkipped)
	fmt.Fprintf(r.w, "Class Occurrences: %d\n", s.TokensFound)
	fmt.Fprintf(r.w, "Distinct Classes:  %d\n", s.UniqueTokens)
	fmt.Fprintf(r.w, "Compiled:          %d (%.1f%%)\n", s.Compiled, s.CompiledPercentage())
	fmt.Fprintf(r.w, "Unknown:           %d\n", s.Unknown)
	fmt.Fprintf(r.w, "Invalid Values:    %d\n", s.Invalid)
}

// PrintCoverage shows a progress bar of compiled classes
func (r *VerboseReporter) PrintCoverage(s Stats) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleLocation, "Compile Coverage", r.useColors))
	fmt.Fprintln(r.w, "----------------")
	printProgressBar(r.w, s.CompiledPercentage())
}

// PrintCategories breaks compiled classes down by utility category,
// largest first
func (r *VerboseReporter) PrintCategories(s Stats) {
	if len(s.Categories) == 0 {
		return
	}

	names := make([]string, 0, len(s.Categories))
	for name := range s.Categories {
		names = append(names, name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		ci, cj := s.Categories[names[i]], s.Categories[names[j]]
		if ci != cj {
			return ci > cj
		}
		return natural.Less(names[i], names[j])
	})

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleLocation, "Categories", r.useColors))
	fmt.Fprintln(r.w, "----------")
	for _, name := range names {
		fmt.Fprintf(r.w, "%-14s %d\n", name+":", s.Categories[name])
	}
}

// PrintQuickWins shows the most frequent fixable typos
func (r *VerboseReporter) PrintQuickWins(wins []QuickWin) {
	if len(wins) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleSuggestion, "Quick Wins", r.useColors))
	fmt.Fprintln(r.w, "-------------")

	for i, win := range wins {
		if i >= 10 {
			break
		}
		fmt.Fprintf(r.w, "%d. \"%s\" - %s → Use %s\n",
			i+1,
			RenderStyle(StyleClass, win.Class, r.useColors),
			pluralizeCount(win.Occurrences, "occurrence", "occurrences"),
			RenderStyle(StyleSuggestion, win.Suggestion, r.useColors))
	}
}

// PrintWarnings shows linter warnings
func (r *VerboseReporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleWarning, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
