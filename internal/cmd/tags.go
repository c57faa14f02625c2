package cmd

import (
	"context"
	"os"

	"github.com/stephan-zhuchen/fastgit/internal/logging"
)

// TagsCmd lists the tags of a repository
type TagsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Path   string `arg:"" optional:"" help:"Repository path (defaults to the current directory)" default:"." type:"path"`
}

// Run executes the tags command
func (t *TagsCmd) Run(ctx context.Context, cli *CLI) error {
	logging.Logger.Info("Executing tags command", "path", t.Path)

	snap, err := openRepository(ctx, cli.Container, t.Path, false)
	if err != nil {
		return err
	}

	if t.Format == "json" {
		return printJSON(os.Stdout, snap.Entry.Tags)
	}
	renderTags(os.Stdout, snap.Entry.Tags)
	return nil
}
