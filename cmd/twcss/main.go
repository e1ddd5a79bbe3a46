// Command twcss compiles the utility classes used in Go/templ templates into
// a stylesheet and lints their usage.
//
// Usage:
//
//	twcss [generate]            scan content and write the stylesheet
//	twcss lint                  report unknown, invalid and conflicting classes
//	twcss compile p-4 md:p-2    print the CSS for classes
//	twcss patterns [PREFIX]     list known utility patterns
//	twcss init                  write a default .twcss.yaml
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errLintFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
