package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/stephan-zhuchen/fastgit/internal/config"
	"github.com/stephan-zhuchen/fastgit/internal/logging"
	"github.com/stephan-zhuchen/fastgit/internal/services"
	"github.com/stephan-zhuchen/fastgit/internal/tree"
)

// TreeFlags are the search and expansion flags shared by the tree commands
type TreeFlags struct {
	CaseSensitive bool     `help:"Match the search text case sensitively" short:"c"`
	Collapse      bool     `help:"Start with every folder collapsed"`
	Expand        []string `help:"Folder paths to expand when collapsed (e.g. feature,release/v2)" short:"e"`
	Format        string   `help:"Output format: text or json" enum:"text,json" default:"text"`
	Search        string   `help:"Only show entries whose full name contains this text" short:"s"`
	WholeWord     bool     `help:"Match the search text as a whole word" short:"w"`
}

// searchOptions applies the search defaults from settings.json when the flags are off
func (f *TreeFlags) searchOptions(settings *config.Settings) services.SearchOptions {
	opts := services.SearchOptions{
		CaseSensitive: f.CaseSensitive,
		Text:          f.Search,
		WholeWord:     f.WholeWord,
	}
	if settings != nil {
		if !opts.CaseSensitive {
			opts.CaseSensitive = config.BoolOr(settings.CaseSensitiveSearch, false)
		}
		if !opts.WholeWord {
			opts.WholeWord = config.BoolOr(settings.WholeWordSearch, false)
		}
	}
	return opts
}

// BranchesCmd prints the local or remote branch tree of a repository
type BranchesCmd struct {
	TreeFlags `embed:""`

	Path   string `arg:"" optional:"" help:"Repository path (defaults to the current directory)" default:"." type:"path"`
	Remote bool   `help:"Show remote-tracking branches instead of local ones" short:"r"`
}

// Run executes the branches command
func (b *BranchesCmd) Run(ctx context.Context, cli *CLI) error {
	kind := services.TreeLocalBranches
	if b.Remote {
		kind = services.TreeRemoteBranches
	}
	logging.Logger.Info("Executing branches command", "path", b.Path, "kind", kind, "search", b.Search)

	snap, err := openRepository(ctx, cli.Container, b.Path, false)
	if err != nil {
		return err
	}

	coordinator := cli.Container.SessionCoordinator
	t, err := coordinator.BranchTree(snap.Identity.Path, kind, b.searchOptions(cli.settings))
	if err != nil {
		return fmt.Errorf("failed to build branch tree: %w", err)
	}
	return showTree(coordinator, snap.Identity.Path, kind, &b.TreeFlags, t, branchLeaf, "No branches")
}

// FilesCmd prints the changed files of a repository as a folder tree
type FilesCmd struct {
	TreeFlags `embed:""`

	Path string `arg:"" optional:"" help:"Repository path (defaults to the current directory)" default:"." type:"path"`
}

// Run executes the files command
func (f *FilesCmd) Run(ctx context.Context, cli *CLI) error {
	logging.Logger.Info("Executing files command", "path", f.Path, "search", f.Search)

	snap, err := openRepository(ctx, cli.Container, f.Path, false)
	if err != nil {
		return err
	}

	coordinator := cli.Container.SessionCoordinator
	t, err := coordinator.FileTree(snap.Identity.Path, f.searchOptions(cli.settings))
	if err != nil {
		return fmt.Errorf("failed to build file tree: %w", err)
	}
	return showTree(coordinator, snap.Identity.Path, services.TreeFiles, &f.TreeFlags, t, fileLeaf, "Working tree clean")
}

func showTree[T any](
	coordinator *services.SessionCoordinator,
	path string,
	kind services.TreeKind,
	flags *TreeFlags,
	t *tree.Tree[T],
	leaf func(tree.Node[T]) string,
	empty string,
) error {
	if flags.Format == "json" {
		return printJSON(os.Stdout, t.Leaves())
	}
	if t.Empty() {
		if flags.Search != "" {
			fmt.Printf("No matches for %q\n", flags.Search)
		} else {
			fmt.Println(empty)
		}
		return nil
	}

	exp := expandAll(t)
	if flags.Collapse {
		for _, folder := range flags.Expand {
			coordinator.ToggleFolder(path, kind, folder)
		}
		exp = coordinator.Expansion(path, kind)
	}
	renderTree(os.Stdout, t, exp, leaf)
	return nil
}
