package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .sassgen.yaml config file",
	Long:  `Create a .sassgen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".sassgen.yaml"); err == nil && !force {
			return fmt.Errorf(".sassgen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".sassgen.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .sassgen.yaml")
		return nil
	},
}

const defaultConfig = `# sassgen configuration
# Docs: https://github.com/yacobolo/sassgen

# Shared settings
verbose: false

# Conversion settings
convert:
  include:
    - "**/*.html"
  # out-dir: styles        # default: next to each input file
  # selector: "main"       # only convert matching subtrees
  slug-names: false
  report: text             # text | json
  format: true
  comment-names: true
  print-comments: true
  max-class-length: 50     # 0 = unlimited

# SCSS output formatting
formatter:
  indent-size: 2
  indent-char: " "
  preserve-newlines: true
  max-preserve-newlines: 1
  newline-at-end: true
  wrap-line-length: 0      # 0 = no wrapping
  indent-empty-lines: false

# Class name slugging
classname:
  lowercase: true
  replace-with: "-"
  prefix: ""
  suffix: ""
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
