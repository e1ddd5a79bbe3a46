package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/yacobolo/twcss"
)

const defaultConfigPath = ".twcss.yaml"

var k = koanf.New(".")

// Flags that live at the top level of the config rather than under the
// command's section.
var globalFlagKeys = map[string]string{
	"verbose":    "verbose",
	"quiet":      "quiet",
	"color":      "color",
	"config":     "config",
	"dark-mode":  "theme.dark-mode",
	"dark-class": "theme.dark-class",
}

// Config sections; env names map onto these ("TWCSS_LINT_OUTPUT_FORMAT").
var configSections = map[string]bool{"generate": true, "lint": true, "theme": true}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Set flags always win. Unset flags only supply their default when
	// neither the file nor the environment provided the key.
	fs := cmd.Flags()
	provider := posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		return flagConfigKey(cmd, f), posflag.FlagVal(fs, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TWCSS_* prefix)
	if err := k.Load(env.Provider("TWCSS_", ".", envConfigKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envConfigKey maps an environment variable name to a config key:
//
//	TWCSS_VERBOSE                  -> verbose
//	TWCSS_GENERATE_OUTPUT          -> generate.output
//	TWCSS_LINT_OUTPUT_FORMAT       -> lint.output-format
//	TWCSS_THEME_BREAKPOINTS_TABLET -> theme.breakpoints.tablet
func envConfigKey(s string) string {
	parts := strings.Split(strings.ToLower(strings.TrimPrefix(s, "TWCSS_")), "_")
	if len(parts) < 2 || !configSections[parts[0]] {
		return strings.Join(parts, "-")
	}
	if parts[0] == "theme" && parts[1] == "breakpoints" && len(parts) > 2 {
		return "theme.breakpoints." + strings.Join(parts[2:], "-")
	}
	return parts[0] + "." + strings.Join(parts[1:], "-")
}

// flagConfigKey maps a command flag to its config key.
func flagConfigKey(cmd *cobra.Command, f *pflag.Flag) string {
	if key, ok := globalFlagKeys[f.Name]; ok {
		return key
	}
	return cmd.Name() + "." + f.Name
}

// buildTheme assembles the theme from theme.* keys; missing keys keep the
// defaults.
func buildTheme() (twcss.Theme, error) {
	var breakpoints map[string]int
	if names := k.MapKeys("theme.breakpoints"); len(names) > 0 {
		breakpoints = make(map[string]int, len(names))
		for _, name := range names {
			breakpoints[name] = k.Int("theme.breakpoints." + name)
		}
	}

	theme := twcss.ThemeFromMap(breakpoints,
		twcss.DarkMode(getString("theme.dark-mode", "")),
		getString("theme.dark-class", ""))
	if err := theme.Validate(); err != nil {
		return theme, fmt.Errorf("theme config: %w", err)
	}
	return theme, nil
}

// newGenerator builds a generator for the configured theme.
func newGenerator(log *zap.Logger) (*twcss.Generator, error) {
	theme, err := buildTheme()
	if err != nil {
		return nil, err
	}
	return twcss.New(twcss.WithTheme(theme), twcss.WithLogger(log))
}

// newLogger returns a development console logger when verbose is set.
func newLogger() (*zap.Logger, error) {
	if !getBool("verbose", false) {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// buildBuildConfig constructs the library's BuildConfig from koanf state.
func buildBuildConfig() twcss.BuildConfig {
	return twcss.BuildConfig{
		Content: getStrings("generate.content", defaultContent),
		Output:  getString("generate.output", "web/static/css/app.css"),
	}
}

// buildLintConfig constructs the library's LintConfig from koanf state.
// Lint falls back to the generate content globs.
func buildLintConfig() twcss.LintConfig {
	return twcss.LintConfig{
		ScanPaths:          getStrings("lint.content", getStrings("generate.content", defaultContent)),
		Verbose:            getBool("verbose", false),
		Strict:             getBool("lint.strict", false),
		MaxIssuesPerLinter: getInt("lint.max-issues-per-linter", 0),
		MaxSameIssues:      getInt("lint.max-same-issues", 0),
		PrintIssuedLines:   getBool("lint.print-lines", true),
		PrintLinterName:    getBool("lint.print-linter-name", true),
		UseColors:          getBool("color", false),
	}
}

var defaultContent = []string{
	"internal/web/**/*.templ",
	"internal/web/**/*.go",
}

// getString returns the config value for key, or defaultVal when unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getStrings returns the list at key, or defaultVal when unset or empty.
// A comma-separated string (from the environment) is split.
func getStrings(key string, defaultVal []string) []string {
	values := k.Strings(key)
	if s, ok := k.Get(key).(string); ok {
		values = []string{s}
	}

	var out []string
	for _, v := range values {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
