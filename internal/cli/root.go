package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rulesync",
	Short: "Regenerate rule indexes from rule document metadata",
	Long: `rulesync reads the metadata block at the top of every *-rules.md file in a
directory, validates that each declares a title, description and category, and
rewrites README.md and agent-rules.md from their templates in templates/.

Each rule document starts with a comment block:

  <!--
  title: Go Style
  description: Formatting and naming conventions
  category: Languages
  -->

If any document is invalid, a report is printed and nothing is written.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - One or more rule documents failed validation
  21 - Template not found
  22 - Generated files are out of date (check only)`,
	Args:         RejectArgs,
	RunE:         runSync,
	SilenceUsage: true,
}

type rootFlagValues struct {
	dir        string
	configPath string
}

var rootFlags rootFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVarP(&rootFlags.dir, "dir", "d", ".",
		"Directory containing the *-rules.md files and the templates/ directory")
	rootCmd.PersistentFlags().StringVarP(&rootFlags.configPath, "config", "c", "",
		"Path to a rulesync.yaml file\n"+
			"(default: rulesync.yaml in --dir, if present)")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
