package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/rulesync/internal/config"
	"github.com/vvka-141/rulesync/internal/files/filesystem"
	"github.com/vvka-141/rulesync/internal/logging"
	"github.com/vvka-141/rulesync/internal/services"
	"github.com/vvka-141/rulesync/pkg/rulesync"
)

// runOptions are the resolved command-line inputs shared by sync and check.
type runOptions struct {
	dir        string
	configPath string
	verbose    bool
}

func optionsFromFlags(cmd *cobra.Command) runOptions {
	return runOptions{
		dir:        rootFlags.dir,
		configPath: rootFlags.configPath,
		verbose:    getVerboseFlag(cmd),
	}
}

// loadConfig resolves the rules directory and overlays rulesync.yaml.
func loadConfig(opts runOptions, logger rulesync.Logger) (*config.Config, error) {
	info, err := os.Stat(opts.dir)
	if err != nil {
		return nil, fmt.Errorf("rules directory %s: %w", opts.dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("rules directory %s is not a directory: %w", opts.dir, rulesync.ErrInvalidConfig)
	}

	cfg, err := config.Load(opts.dir, opts.configPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%v: %w", err, rulesync.ErrInvalidConfig)
		}
		return nil, err
	}

	logger.Verbose("Rules directory: %s", cfg.RulesDir)
	logger.Verbose("Templates: %s, %s", cfg.TemplatePath(cfg.Readme), cfg.TemplatePath(cfg.Index))
	return cfg, nil
}

// signalContext is cancelled on Ctrl+C or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signalContext()
	defer cancel()
	return syncWith(ctx, optionsFromFlags(cmd), os.Stderr)
}

// syncWith runs a sync writing all console output to w.
func syncWith(ctx context.Context, opts runOptions, w io.Writer) error {
	logger := logging.NewConsoleLoggerTo(w, opts.verbose)

	cfg, err := loadConfig(opts, logger)
	if err != nil {
		return err
	}

	svc := services.NewSyncService(logger, filesystem.NewOSFileSystem())
	result, err := svc.Sync(ctx, cfg)
	if err != nil {
		reportFailure(w, err, opts.verbose)
		return err
	}

	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf("Synced %d rule file(s) into %d output(s).",
		result.Scanned, len(result.Written))))
	return nil
}

// reportFailure prints the human-readable form of errors the user can fix.
func reportFailure(w io.Writer, err error, verbose bool) {
	var vErr *rulesync.ValidationFailedError
	if errors.As(err, &vErr) {
		writeValidationReport(w, vErr.Errors, verbose)
		return
	}

	var tErr *rulesync.TemplateNotFoundError
	if errors.As(err, &tErr) {
		fmt.Fprintln(w, errorStyle.Render("Template not found: "+tErr.Path))
	}
}
