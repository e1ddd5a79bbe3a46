package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/twcss"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "build"},
	Short:   "Compile the classes used in templates into a stylesheet",
	Long: `Scan content files for class attributes, compile every utility class
found and write one stylesheet. Classes that do not compile are reported
as warnings and left out.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringSlice("content", defaultContent, "Glob patterns of files to scan for classes")
	f.StringP("output", "o", "web/static/css/app.css", "Stylesheet path")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	gen, err := newGenerator(log)
	if err != nil {
		return err
	}

	config := buildBuildConfig()
	config.Generator = gen
	config.Logger = log

	result, err := twcss.Build(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if !getBool("quiet", false) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Generated %s\n", config.Output)
		fmt.Fprintf(out, "  Files scanned: %d\n", result.FilesScanned)
		fmt.Fprintf(out, "  Classes compiled: %d / %d\n", result.Compiled, result.ClassesFound)
		fmt.Fprintf(out, "  Rules: %d (%d bytes)\n", result.Rules, result.Bytes)

		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  Warning: %s\n", w)
		}
	}

	// Run lint after generate if --lint flag set
	if getBool("generate.lint", false) {
		return runLint(cmd, gen, log)
	}

	return nil
}
