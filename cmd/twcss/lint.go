package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/twcss"
)

// errLintFailed makes the process exit 1 without printing anything more;
// the report has already been written.
var errLintFailed = errors.New("lint failed")

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint utility class usage in Go/templ files",
	Long: `Check every class in Go, templ and HTML files against the compiler.
Reports unknown classes (with a suggestion when one is close), invalid
values, duplicates within one attribute and classes that override each other.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		gen, err := newGenerator(log)
		if err != nil {
			return err
		}
		return runLint(cmd, gen, log)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("content", defaultContent, "File patterns to scan for class references")
	f.Bool("strict", false, "Exit 1 on warnings too (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (unknown-class) suffix on issues")
}

// runLint is shared between `twcss lint` and `twcss generate --lint`.
func runLint(cmd *cobra.Command, gen *twcss.Generator, log *zap.Logger) error {
	lintConfig := buildLintConfig()
	lintConfig.Generator = gen
	lintConfig.Logger = log

	lintResult, err := twcss.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBool("quiet", false)
	format := twcss.DetermineOutputFormat(getString("lint.output-format", ""), quiet)

	if !quiet {
		if err := twcss.WriteOutput(cmd.OutOrStdout(), lintResult, format, lintConfig); err != nil {
			return err
		}
	}

	// Errors always fail; warnings only in strict mode
	if lintResult.Failed(lintConfig.Strict) {
		return errLintFailed
	}
	return nil
}
