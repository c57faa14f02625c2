package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/logging"
)

// GrantsCmd manages persisted repository access grants
type GrantsCmd struct {
	Add    GrantsAddCmd    `cmd:"add" help:"Authorize access to a repository directory"`
	List   GrantsListCmd   `cmd:"list" help:"List access grants" default:"1"`
	Revoke GrantsRevokeCmd `cmd:"revoke" help:"Delete the access grant of a repository"`
}

// GrantsListCmd lists access grants
type GrantsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (g *GrantsListCmd) Run(ctx context.Context, cli *CLI) error {
	grants, err := cli.Container.AccessStore.Grants(ctx)
	if err != nil {
		return err
	}

	if g.Format == "json" {
		return printJSON(os.Stdout, grants)
	}
	renderGrants(os.Stdout, grants)
	return nil
}

// GrantsAddCmd asks for and persists access to a directory
type GrantsAddCmd struct {
	Path string `arg:"" optional:"" help:"Repository path (defaults to the current directory)" default:"." type:"path"`
}

// Run executes the add command
func (g *GrantsAddCmd) Run(ctx context.Context, cli *CLI) error {
	logging.Logger.Info("Executing grants add command", "path", g.Path)

	store := cli.Container.AccessStore
	handle, err := store.EnsureAccess(ctx, g.Path)
	if err != nil {
		return fmt.Errorf("failed to authorize %s: %w", g.Path, err)
	}
	defer handle.Release()

	fmt.Printf("Access granted to %s\n", handle.Resolved)
	return nil
}

// GrantsRevokeCmd deletes an access grant
type GrantsRevokeCmd struct {
	Path string `arg:"" help:"Path of the repository whose grant is revoked"`
}

// Run executes the revoke command
func (g *GrantsRevokeCmd) Run(ctx context.Context, cli *CLI) error {
	path, err := filepath.Abs(g.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}
	logging.Logger.Info("Executing grants revoke command", "path", path)

	identity, err := domain.NewRepositoryIdentity(path)
	if err != nil {
		return err
	}
	cli.Container.SessionCoordinator.Close(ctx, identity)

	grants, err := cli.Container.AccessStore.Grants(ctx)
	if err != nil {
		return err
	}
	found := false
	for _, grant := range grants {
		if grant.Path == path {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no access grant for %s: %w", path, domain.ErrTokenNotFound)
	}

	if err := cli.Container.AccessStore.Invalidate(ctx, path); err != nil {
		return err
	}
	fmt.Printf("Revoked access to %s\n", path)
	return nil
}
