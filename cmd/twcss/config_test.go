package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/twcss"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

// chdir switches to dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetKoanf()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".twcss.yaml")
	configContent := `
verbose: true

generate:
  content:
    - "views/**/*.templ"
  output: dist/site.css

lint:
  strict: true
  max-same-issues: 3

theme:
  dark-mode: class
  dark-class: night
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, []string{"views/**/*.templ"}, k.Strings("generate.content"))
	assert.Equal(t, "dist/site.css", k.String("generate.output"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, 3, k.Int("lint.max-same-issues"))
	assert.Equal(t, "class", k.String("theme.dark-mode"))
	assert.Equal(t, "night", k.String("theme.dark-class"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// A missing config file is not an error
	require.NoError(t, loadConfigFromPath("/nonexistent/.twcss.yaml"))

	config := buildBuildConfig()
	assert.Equal(t, defaultContent, config.Content)
	assert.Equal(t, "web/static/css/app.css", config.Output)

	theme, err := buildTheme()
	require.NoError(t, err)
	assert.Equal(t, twcss.DefaultTheme(), theme)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".twcss.yaml")
	configContent := `
generate:
  output: from-file.css
lint:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("TWCSS_GENERATE_OUTPUT", "from-env.css")
	t.Setenv("TWCSS_LINT_STRICT", "true")
	t.Setenv("TWCSS_LINT_OUTPUT_FORMAT", "json")
	t.Setenv("TWCSS_THEME_BREAKPOINTS_TABLET", "700")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env.css", k.String("generate.output"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, "json", k.String("lint.output-format"))
	assert.Equal(t, 700, k.Int("theme.breakpoints.tablet"))
}

func TestEnvConfigKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{env: "TWCSS_VERBOSE", want: "verbose"},
		{env: "TWCSS_GENERATE_OUTPUT", want: "generate.output"},
		{env: "TWCSS_LINT_MAX_SAME_ISSUES", want: "lint.max-same-issues"},
		{env: "TWCSS_THEME_DARK_MODE", want: "theme.dark-mode"},
		{env: "TWCSS_THEME_BREAKPOINTS_2XL", want: "theme.breakpoints.2xl"},
		{env: "TWCSS_DARK_CLASS", want: "dark-class"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envConfigKey(tt.env))
		})
	}
}

func TestBuildLintConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildLintConfig()
	assert.Equal(t, defaultContent, config.ScanPaths)
	assert.False(t, config.Strict)
	assert.Equal(t, 0, config.MaxIssuesPerLinter)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
}

func TestBuildLintConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".twcss.yaml")
	configContent := `
generate:
  content:
    - "src/**/*.templ"
lint:
  strict: true
  max-issues-per-linter: 10
  print-lines: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildLintConfig()
	assert.True(t, config.Strict)
	assert.Equal(t, []string{"src/**/*.templ"}, config.ScanPaths, "lint falls back to generate content")
	assert.Equal(t, 10, config.MaxIssuesPerLinter)
	assert.False(t, config.PrintIssuedLines)
}

func TestGetStringsSplitsCommaList(t *testing.T) {
	resetKoanf()
	t.Setenv("TWCSS_LINT_CONTENT", "a/*.templ, b/*.go")
	require.NoError(t, loadConfigFromPath("/nonexistent/.twcss.yaml"))

	assert.Equal(t, []string{"a/*.templ", "b/*.go"}, getStrings("lint.content", nil))
}

func TestBuildTheme(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".twcss.yaml")
	configContent := `
theme:
  dark-mode: class
  breakpoints:
    tablet: 700
    desktop: 1200
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	theme, err := buildTheme()
	require.NoError(t, err)
	assert.Equal(t, []twcss.Breakpoint{
		{Name: "tablet", MinWidth: 700},
		{Name: "desktop", MinWidth: 1200},
	}, theme.Breakpoints)
	assert.Equal(t, twcss.DarkModeClass, theme.DarkMode)
	assert.Equal(t, "dark", theme.DarkClass)
}

func TestBuildTheme_Invalid(t *testing.T) {
	resetKoanf()
	t.Setenv("TWCSS_THEME_DARK_MODE", "sometimes")
	require.NoError(t, loadConfigFromPath("/nonexistent/.twcss.yaml"))

	_, err := buildTheme()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme config")
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created .twcss.yaml")

	data, err := os.ReadFile(".twcss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "generate:")
	assert.Contains(t, string(data), "lint:")
	assert.Contains(t, string(data), "breakpoints:")

	// The written defaults load back into the default theme
	resetKoanf()
	require.NoError(t, loadConfigFromPath(".twcss.yaml"))
	theme, err := buildTheme()
	require.NoError(t, err)
	assert.Equal(t, twcss.DefaultTheme(), theme)
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile(".twcss.yaml", []byte("existing"), 0644))

	_, err := execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile(".twcss.yaml", []byte("existing"), 0644))

	_, err := execute(t, "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(".twcss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "generate:")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "twcss dev\n", out)
}
