package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var compileCmd = &cobra.Command{
	Use:   "compile CLASS...",
	Short: "Print the CSS for the given classes",
	Long: `Compile the classes given as arguments and print the stylesheet they
produce. With --declarations only the property/value pairs of each class are
printed, without selector or at-rules.`,
	Example: `  twcss compile p-4 md:text-lg hover:bg-blue-600
  twcss compile --declarations "w-(--my-width)"`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().BoolP("declarations", "d", false, "Print only the declarations of each class")
}

func runCompile(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	gen, err := newGenerator(log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !getBool("compile.declarations", false) {
		session := gen.NewSession()
		errs := session.AddClasses(args)
		if err := session.WriteCSS(out); err != nil {
			return err
		}
		return errs
	}

	var errs error
	for _, class := range args {
		decls, err := gen.ClassToDeclarations(class)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		fmt.Fprintln(out, class)
		for _, d := range decls {
			fmt.Fprintf(out, "  %s;\n", d)
		}
	}
	return errs
}
