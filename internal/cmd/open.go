package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/stephan-zhuchen/fastgit/internal/logging"
	"github.com/stephan-zhuchen/fastgit/internal/services"
)

// OpenCmd opens a repository and prints its summary
type OpenCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
	Path   string `arg:"" optional:"" help:"Repository path (defaults to the current directory)" default:"." type:"path"`
}

// Run executes the open command
func (o *OpenCmd) Run(ctx context.Context, cli *CLI) error {
	logging.Logger.Info("Executing open command", "path", o.Path)

	snap, err := openRepository(ctx, cli.Container, o.Path, false)
	if err != nil {
		return err
	}
	return printSnapshot(snap, o.Format)
}

// RefreshCmd reloads a repository, bypassing the cache
type RefreshCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
	Path   string `arg:"" optional:"" help:"Repository path (defaults to the current directory)" default:"." type:"path"`
}

// Run executes the refresh command
func (r *RefreshCmd) Run(ctx context.Context, cli *CLI) error {
	logging.Logger.Info("Executing refresh command", "path", r.Path)

	snap, err := openRepository(ctx, cli.Container, r.Path, true)
	if err != nil {
		return err
	}
	return printSnapshot(snap, r.Format)
}

// RestoreCmd reopens the repository that was active when fastgit last ran
type RestoreCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
}

// Run executes the restore command
func (r *RestoreCmd) Run(ctx context.Context, cli *CLI) error {
	logging.Logger.Info("Executing restore command")

	coordinator := cli.Container.SessionCoordinator
	entry, err := coordinator.Restore(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore last repository: %w", err)
	}
	if entry == nil {
		logging.Logger.Info("No repository to restore")
		fmt.Println("No repository to restore")
		return nil
	}
	return printSnapshot(coordinator.Snapshot(entry.Path), r.Format)
}

func printSnapshot(snap services.Snapshot, format string) error {
	if format == "json" {
		return printJSON(os.Stdout, snapshotJSON(snap))
	}
	renderSummary(os.Stdout, snap)
	return nil
}
