package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ZingerLittleBee/DiskLens/internal/cache"
	"github.com/ZingerLittleBee/DiskLens/internal/core"
	"github.com/ZingerLittleBee/DiskLens/internal/export"
	"github.com/ZingerLittleBee/DiskLens/internal/scanner"
	"github.com/ZingerLittleBee/DiskLens/internal/storage"
	"github.com/ZingerLittleBee/DiskLens/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run())
}

// cliError carries the exit code spec.md §6 assigns to runtime failures
// (root unreadable, export write failure), distinct from cobra's own
// flag-parse errors which fall through to exit code 2.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func run() int {
	root := newRootCmd()
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		var ce *cliError
		if errors.As(err, &ce) {
			fmt.Fprintln(os.Stderr, ce.err)
			return ce.code
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return 0
}

type rootOptions struct {
	maxDepth       int
	concurrency    int
	followSymlinks bool
	exportJSON     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{maxDepth: -1}

	cmd := &cobra.Command{
		Use:     "disklens [path]",
		Short:   "Interactive, concurrent disk usage analyzer",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("max-depth") && opts.maxDepth < 0 {
				return &cliError{code: 1, err: fmt.Errorf("invalid --max-depth %d: must be 0 or greater", opts.maxDepth)}
			}
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return runDiskLens(path, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.maxDepth, "max-depth", "d", -1, "Max recursion depth (default: unlimited)")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 0, "Override max concurrent directory reads")
	cmd.Flags().BoolVar(&opts.followSymlinks, "follow-symlinks", false, "Follow symlinks instead of recording them as leaves")
	cmd.Flags().StringVar(&opts.exportJSON, "export-json", "", "Non-interactive: scan, write a JSON report to this path, and exit")

	return cmd
}

func runDiskLens(path string, opts *rootOptions) error {
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		if err == nil {
			err = fmt.Errorf("%s is not a directory", path)
		}
		return &cliError{code: 1, err: fmt.Errorf("cannot read %s: %w", path, err)}
	}

	cfg := scanner.DefaultScanConfig()
	if opts.maxDepth >= 0 {
		cfg.MaxDepth = &opts.maxDepth
	}
	cfg.MaxConcurrentIO = opts.concurrency
	cfg.FollowSymlinks = opts.followSymlinks
	cfg.StorageType = storage.Probe(path)

	diskCache := cache.New(cache.DefaultDir())
	ctrl := core.NewController(diskCache)

	if opts.exportJSON != "" {
		return runExportOnly(ctrl, path, cfg, opts.exportJSON)
	}

	app := ui.NewApp(ctrl, path, cfg)
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return &cliError{code: 1, err: err}
	}
	return nil
}

// runExportOnly drives a scan to completion without the TUI, writing a
// JSON report and exiting (spec.md §6's --export-json flag).
func runExportOnly(ctrl *core.Controller, path string, cfg scanner.ScanConfig, out string) error {
	events := ctrl.Run(context.Background(), path, cfg)
	for event := range events {
		complete, ok := event.(core.ScanCompleteEvent)
		if !ok {
			continue
		}
		if complete.Err != nil {
			return &cliError{code: 1, err: complete.Err}
		}
		if err := export.Write(out, complete.Result); err != nil {
			return &cliError{code: 1, err: fmt.Errorf("write %s: %w", out, err)}
		}
		return nil
	}
	return &cliError{code: 1, err: fmt.Errorf("scan of %s produced no result", path)}
}
