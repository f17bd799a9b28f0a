package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RejectArgs refuses positional arguments. The rules directory is passed
// with --dir so that a stray path is not mistaken for it.
func RejectArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return fmt.Errorf(`accepts 0 arg(s), received %d

Usage: %s

Example:
  %s --dir %s`, len(args), cmd.UseLine(), cmd.CommandPath(), args[0])
}
