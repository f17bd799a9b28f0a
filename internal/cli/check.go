package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/rulesync/internal/files/filesystem"
	"github.com/vvka-141/rulesync/internal/logging"
	"github.com/vvka-141/rulesync/internal/services"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate rule documents and detect out-of-date outputs",
	Long: `Check runs the same scan, validation and rendering as a sync but writes
nothing. It fails if any rule document is invalid or if README.md or
agent-rules.md differ from what a sync would produce.

Line-ending and trailing-whitespace differences are ignored.

Examples:
  # In CI, fail the build when someone forgot to run rulesync
  rulesync check --dir ./rules`,
	Args: RejectArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signalContext()
	defer cancel()
	return checkWith(ctx, optionsFromFlags(cmd), os.Stderr)
}

// checkWith runs a check writing all console output to w.
func checkWith(ctx context.Context, opts runOptions, w io.Writer) error {
	logger := logging.NewConsoleLoggerTo(w, opts.verbose)

	cfg, err := loadConfig(opts, logger)
	if err != nil {
		return err
	}

	svc := services.NewSyncService(logger, filesystem.NewOSFileSystem())
	result, err := svc.Check(ctx, cfg)
	if err != nil {
		if len(result.Stale) > 0 {
			fmt.Fprintln(w, mutedStyle.Render("Run 'rulesync --dir "+opts.dir+"' to regenerate."))
			return err
		}
		reportFailure(w, err, opts.verbose)
		return err
	}

	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("%d rule file(s) checked.", result.Scanned)))
	return nil
}
