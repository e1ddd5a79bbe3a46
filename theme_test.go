package twcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultThemeIsValid(t *testing.T) {
	theme := DefaultTheme()
	require.NoError(t, theme.Validate())
	assert.Equal(t, []string{"sm", "md", "lg", "xl", "2xl"}, theme.breakpointNames())

	q, ok := theme.minWidth("2xl")
	require.True(t, ok)
	assert.Equal(t, "@media (min-width: 1536px)", q)

	_, ok = theme.minWidth("3xl")
	assert.False(t, ok)
}

func TestThemeFromMap(t *testing.T) {
	theme := ThemeFromMap(map[string]int{"desktop": 1200, "tablet": 700, "phone": 400}, DarkModeClass, "night")

	assert.Equal(t, []Breakpoint{
		{Name: "phone", MinWidth: 400},
		{Name: "tablet", MinWidth: 700},
		{Name: "desktop", MinWidth: 1200},
	}, theme.Breakpoints)
	assert.Equal(t, DarkModeClass, theme.DarkMode)
	assert.Equal(t, "night", theme.DarkClass)
	require.NoError(t, theme.Validate())
}

func TestThemeFromMapDefaults(t *testing.T) {
	theme := ThemeFromMap(nil, "", "")
	assert.Equal(t, DefaultTheme(), theme)
}

func TestThemeValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Theme)
		wantErr string
	}{
		{
			name:    "empty breakpoint name",
			mutate:  func(th *Theme) { th.Breakpoints[0].Name = "" },
			wantErr: "empty name",
		},
		{
			name:    "non-positive width",
			mutate:  func(th *Theme) { th.Breakpoints[1].MinWidth = 0 },
			wantErr: "must be positive",
		},
		{
			name:    "breakpoint named like a pseudo-class",
			mutate:  func(th *Theme) { th.Breakpoints[0].Name = "hover" },
			wantErr: "already a modifier",
		},
		{
			name:    "breakpoint named like a structural pseudo-class",
			mutate:  func(th *Theme) { th.Breakpoints[0].Name = "first" },
			wantErr: "already a modifier",
		},
		{
			name:    "breakpoint named dark",
			mutate:  func(th *Theme) { th.Breakpoints[0].Name = "dark" },
			wantErr: "already a modifier",
		},
		{
			name:    "breakpoint named like a group modifier",
			mutate:  func(th *Theme) { th.Breakpoints[0].Name = "group-hover" },
			wantErr: "already a modifier",
		},
		{
			name:    "breakpoint name with colon",
			mutate:  func(th *Theme) { th.Breakpoints[0].Name = "md:wide" },
			wantErr: "must not contain",
		},
		{
			name:    "breakpoint name with bracket",
			mutate:  func(th *Theme) { th.Breakpoints[0].Name = "[tablet]" },
			wantErr: "must not contain",
		},
		{
			name:    "breakpoint name with parenthesis",
			mutate:  func(th *Theme) { th.Breakpoints[0].Name = "w(600)" },
			wantErr: "must not contain",
		},
		{
			name:    "class strategy without class",
			mutate:  func(th *Theme) { th.DarkMode, th.DarkClass = DarkModeClass, "" },
			wantErr: "needs a dark class",
		},
		{
			name:    "unknown strategy",
			mutate:  func(th *Theme) { th.DarkMode = "auto" },
			wantErr: "unknown dark mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := DefaultTheme()
			tt.mutate(&theme)
			err := theme.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
