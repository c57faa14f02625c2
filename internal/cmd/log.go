package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/stephan-zhuchen/fastgit/internal/logging"
)

// LogCmd prints the commit history of a repository with branch and tag decorations
type LogCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
	Limit  int    `help:"Maximum number of commits to print (0 = all loaded)" short:"n" default:"0"`
	Path   string `arg:"" optional:"" help:"Repository path (defaults to the current directory)" default:"." type:"path"`
}

// Run executes the log command
func (l *LogCmd) Run(ctx context.Context, cli *CLI) error {
	logging.Logger.Info("Executing log command", "path", l.Path, "limit", l.Limit)

	if l.Limit < 0 {
		return fmt.Errorf("--limit cannot be negative, got %d", l.Limit)
	}

	snap, err := openRepository(ctx, cli.Container, l.Path, false)
	if err != nil {
		return err
	}

	commits := snap.Entry.Commits
	if l.Limit > 0 && len(commits) > l.Limit {
		commits = commits[:l.Limit]
	}

	if l.Format == "json" {
		return printJSON(os.Stdout, commits)
	}
	if len(commits) == 0 {
		fmt.Println("No commits yet")
		return nil
	}

	remotes := make(map[string]bool)
	for _, b := range snap.Entry.RemoteBranches() {
		remotes[b.Name] = true
	}
	renderLog(os.Stdout, commits, remotes)
	return nil
}
