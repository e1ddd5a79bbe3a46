package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .twcss.yaml config file",
	Long:  `Create a .twcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# twcss configuration
# Docs: https://github.com/yacobolo/twcss

# Shared settings
verbose: false

# Stylesheet generation
generate:
  content:
    - "internal/web/**/*.templ"
    - "internal/web/**/*.go"
  output: web/static/css/app.css

# Linting settings (content defaults to generate.content)
lint:
  strict: false
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true

# Theme
theme:
  dark-mode: media         # media | class
  dark-class: dark         # ancestor class when dark-mode is class
  breakpoints:             # min-width in px
    sm: 640
    md: 768
    lg: 1024
    xl: 1280
    2xl: 1536
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
