package twcss

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/yacobolo/twcss/internal/variant"
)

// DarkMode selects how the dark: modifier is rendered.
type DarkMode string

const (
	// DarkModeMedia wraps rules in @media (prefers-color-scheme: dark).
	DarkModeMedia DarkMode = "media"
	// DarkModeClass scopes rules under an ancestor class (".dark").
	DarkModeClass DarkMode = "class"
)

// Breakpoint is a named min-width in pixels.
type Breakpoint struct {
	Name     string
	MinWidth int
}

// Theme carries the configuration consumed by rule assembly.
type Theme struct {
	Breakpoints []Breakpoint // ascending by MinWidth
	DarkMode    DarkMode
	DarkClass   string // ancestor class for DarkModeClass, without the dot
}

// DefaultTheme returns the stock breakpoints with media-query dark mode.
func DefaultTheme() Theme {
	return Theme{
		Breakpoints: []Breakpoint{
			{Name: "sm", MinWidth: 640},
			{Name: "md", MinWidth: 768},
			{Name: "lg", MinWidth: 1024},
			{Name: "xl", MinWidth: 1280},
			{Name: "2xl", MinWidth: 1536},
		},
		DarkMode:  DarkModeMedia,
		DarkClass: "dark",
	}
}

// ThemeFromMap builds a theme from a name → min-width map, sorting the
// breakpoints by width. Empty mode and class fall back to the defaults.
func ThemeFromMap(breakpoints map[string]int, mode DarkMode, darkClass string) Theme {
	t := DefaultTheme()
	if len(breakpoints) > 0 {
		t.Breakpoints = t.Breakpoints[:0]
		for name, px := range breakpoints {
			t.Breakpoints = append(t.Breakpoints, Breakpoint{Name: name, MinWidth: px})
		}
		slices.SortFunc(t.Breakpoints, func(a, b Breakpoint) int {
			if a.MinWidth != b.MinWidth {
				return a.MinWidth - b.MinWidth
			}
			if a.Name < b.Name {
				return -1
			}
			return 1
		})
	}
	if mode != "" {
		t.DarkMode = mode
	}
	if darkClass != "" {
		t.DarkClass = darkClass
	}
	return t
}

// Validate checks breakpoint names and widths and the dark-mode settings.
func (t Theme) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(t.Breakpoints))
	for _, b := range t.Breakpoints {
		switch {
		case b.Name == "":
			errs = append(errs, errors.New("breakpoint with empty name"))
		case strings.ContainsAny(b.Name, ":[]() \t"):
			errs = append(errs, fmt.Errorf("breakpoint %q: name must not contain ':', brackets, parentheses or spaces", b.Name))
		case variant.Reserved(b.Name):
			errs = append(errs, fmt.Errorf("breakpoint %q: name is already a modifier", b.Name))
		case seen[b.Name]:
			errs = append(errs, fmt.Errorf("duplicate breakpoint %q", b.Name))
		case b.MinWidth <= 0:
			errs = append(errs, fmt.Errorf("breakpoint %q: min-width must be positive, got %d", b.Name, b.MinWidth))
		}
		seen[b.Name] = true
	}

	switch t.DarkMode {
	case DarkModeMedia:
	case DarkModeClass:
		if t.DarkClass == "" {
			errs = append(errs, errors.New("dark mode \"class\" needs a dark class"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown dark mode %q (want %q or %q)", t.DarkMode, DarkModeMedia, DarkModeClass))
	}
	return errors.Join(errs...)
}

// minWidth returns the media query for a breakpoint name.
func (t Theme) minWidth(name string) (string, bool) {
	for _, b := range t.Breakpoints {
		if b.Name == name {
			return "@media (min-width: " + strconv.Itoa(b.MinWidth) + "px)", true
		}
	}
	return "", false
}

func (t Theme) breakpointNames() []string {
	names := make([]string, len(t.Breakpoints))
	for i, b := range t.Breakpoints {
		names[i] = b.Name
	}
	return names
}
