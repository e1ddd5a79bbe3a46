package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns [PREFIX]",
	Short: "List the utility patterns the compiler knows",
	Long: `List every registered utility pattern. Patterns ending in "-" take a
value ("bg-" matches "bg-blue-500"); the others are exact classes or
bare forms ("flex", "border"). An optional argument filters by prefix.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := newGenerator(nil)
		if err != nil {
			return err
		}

		patterns := gen.Patterns()
		if len(args) == 1 {
			kept := patterns[:0]
			for _, p := range patterns {
				if strings.HasPrefix(p, args[0]) {
					kept = append(kept, p)
				}
			}
			patterns = kept
		}
		sort.Sort(natural.StringSlice(patterns))

		out := cmd.OutOrStdout()
		for _, p := range patterns {
			fmt.Fprintln(out, p)
		}
		return nil
	},
}
