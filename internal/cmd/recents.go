package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stephan-zhuchen/fastgit/internal/logging"
)

// RecentsCmd manages recently opened repositories
type RecentsCmd struct {
	List   RecentsListCmd   `cmd:"list" help:"List recently opened repositories" default:"1"`
	Remove RecentsRemoveCmd `cmd:"remove" aliases:"rm" help:"Forget a repository and revoke its access grant"`
}

// RecentsListCmd lists recently opened repositories, most recent first
type RecentsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (r *RecentsListCmd) Run(ctx context.Context, cli *CLI) error {
	recents, err := cli.Container.SessionCoordinator.Recents(ctx)
	if err != nil {
		return fmt.Errorf("failed to list recents: %w", err)
	}

	if r.Format == "json" {
		return printJSON(os.Stdout, recents)
	}
	renderRecents(os.Stdout, recents)
	return nil
}

// RecentsRemoveCmd removes a repository from the recents list
type RecentsRemoveCmd struct {
	Path string `arg:"" help:"Path of the repository to forget"`
}

// Run executes the remove command
func (r *RecentsRemoveCmd) Run(ctx context.Context, cli *CLI) error {
	path, err := filepath.Abs(r.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	logging.Logger.Info("Executing recents remove command", "path", path)

	if err := cli.Container.SessionCoordinator.RemoveRecent(ctx, path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	fmt.Printf("Removed %s from recents\n", path)
	return nil
}
