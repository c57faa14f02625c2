package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/stephan-zhuchen/fastgit/internal/config"
	"github.com/stephan-zhuchen/fastgit/internal/logging"
)

// Environment variables read for flags that also live in settings.json
const (
	EnvCacheMaxEntries = "FASTGIT_CACHE_MAX_ENTRIES"
	EnvMaxCommits      = "FASTGIT_MAX_COMMITS"
	EnvRecentsLimit    = "FASTGIT_RECENTS_LIMIT"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version         kong.VersionFlag `help:"Show version information"`
	Accessible      bool             `help:"Use line based prompts instead of the interactive form"`
	CacheMaxEntries int              `help:"Maximum number of loaded repositories kept in memory (0 = unlimited)" default:"0" env:"FASTGIT_CACHE_MAX_ENTRIES"`
	Debug           bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile       string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxCommits      int              `help:"Maximum number of commits loaded per repository" default:"500" env:"FASTGIT_MAX_COMMITS"`
	MaxLogFiles     int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	RecentsLimit    int              `help:"Number of recently opened repositories to remember" default:"10" env:"FASTGIT_RECENTS_LIMIT"`
	Yes             bool             `help:"Grant repository access without prompting" short:"y"`

	Branches BranchesCmd `cmd:"branches" help:"Show the branch tree of a repository"`
	Files    FilesCmd    `cmd:"files" help:"Show the working tree changes of a repository"`
	Grants   GrantsCmd   `cmd:"grants" help:"Manage repository access grants (list, add, revoke)"`
	Log      LogCmd      `cmd:"log" help:"Show the commit history of a repository"`
	Open     OpenCmd     `cmd:"open" help:"Open a repository and show its summary" default:"withargs"`
	Recents  RecentsCmd  `cmd:"recents" help:"Manage recently opened repositories (list, remove)"`
	Refresh  RefreshCmd  `cmd:"refresh" help:"Reload a repository bypassing the cache"`
	Restore  RestoreCmd  `cmd:"restore" help:"Reopen the last active repository"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (show, set)"`
	Tags     TagsCmd     `cmd:"tags" help:"List the tags of a repository"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies while the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv {
				c.MaxLogFiles = config.IntOr(c.settings.MaxLogFiles, c.MaxLogFiles)
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv {
				c.Debug = config.BoolOr(c.settings.Debug, false)
			}
		}

		if c.MaxCommits == config.DefaultMaxCommits {
			if _, hasEnv := os.LookupEnv(EnvMaxCommits); !hasEnv {
				c.MaxCommits = config.IntOr(c.settings.MaxCommits, c.MaxCommits)
			}
		}

		if c.RecentsLimit == config.DefaultRecentsLimit {
			if _, hasEnv := os.LookupEnv(EnvRecentsLimit); !hasEnv {
				c.RecentsLimit = config.IntOr(c.settings.RecentsLimit, c.RecentsLimit)
			}
		}

		if c.CacheMaxEntries == config.DefaultCacheMaxEntries {
			if _, hasEnv := os.LookupEnv(EnvCacheMaxEntries); !hasEnv {
				c.CacheMaxEntries = config.IntOr(c.settings.CacheMaxEntries, c.CacheMaxEntries)
			}
		}
	}

	if c.MaxCommits <= 0 {
		return fmt.Errorf("--max-commits must be positive, got %d", c.MaxCommits)
	}
	if c.RecentsLimit <= 0 {
		return fmt.Errorf("--recents-limit must be positive, got %d", c.RecentsLimit)
	}
	if c.CacheMaxEntries < 0 {
		return fmt.Errorf("--cache-max-entries cannot be negative, got %d", c.CacheMaxEntries)
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Git subprocesses inherit the environment, keep their logs in the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Container is created after logging so the gorm logger bridge sees the real logger
	container, err := NewContainer(ContainerOptions{
		Accessible:      c.Accessible,
		AssumeYes:       c.Yes,
		CacheMaxEntries: c.CacheMaxEntries,
		DBPath:          config.GetDBPath(),
		MaxCommits:      c.MaxCommits,
		RecentsLimit:    c.RecentsLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
