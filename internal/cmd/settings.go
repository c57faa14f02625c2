package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/stephan-zhuchen/fastgit/internal/config"
	"github.com/stephan-zhuchen/fastgit/internal/logging"
)

// SettingsCmd manages settings.json
type SettingsCmd struct {
	Set  SettingsSetCmd  `cmd:"set" help:"Set a setting"`
	Show SettingsShowCmd `cmd:"show" help:"Show the effective settings" default:"1"`
}

// SettingsShowCmd prints the settings file and the effective values
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	if s.Format == "json" {
		return printJSON(os.Stdout, settings)
	}

	fmt.Printf("Settings (file: %s)\n\n", config.GetSettingsPath())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tEffective\tFile")
	fmt.Fprintln(w, "────\t─────────\t────")
	rows := map[string][2]string{
		"cache_max_entries":     {strconv.Itoa(cli.CacheMaxEntries), intSetting(settings.CacheMaxEntries)},
		"case_sensitive_search": {strconv.FormatBool(config.BoolOr(settings.CaseSensitiveSearch, false)), boolSetting(settings.CaseSensitiveSearch)},
		"debug":                 {strconv.FormatBool(cli.Debug), boolSetting(settings.Debug)},
		"max_commits":           {strconv.Itoa(cli.MaxCommits), intSetting(settings.MaxCommits)},
		"max_log_files":         {strconv.Itoa(cli.MaxLogFiles), intSetting(settings.MaxLogFiles)},
		"recents_limit":         {strconv.Itoa(cli.RecentsLimit), intSetting(settings.RecentsLimit)},
		"whole_word_search":     {strconv.FormatBool(config.BoolOr(settings.WholeWordSearch, false)), boolSetting(settings.WholeWordSearch)},
	}
	names := make([]string, 0, len(rows))
	for name := range rows {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, rows[name][0], rows[name][1])
	}
	return w.Flush()
}

// SettingsSetCmd sets one setting in settings.json
type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting name" enum:"cache_max_entries,case_sensitive_search,debug,max_commits,max_log_files,recents_limit,whole_word_search"`
	Value string `arg:"" help:"Setting value"`
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing settings set command", "key", s.Key, "value", s.Value)

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if err := applySetting(settings, s.Key, s.Value); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := config.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", s.Key, s.Value)
	return nil
}

// applySetting parses value into the field named key
func applySetting(settings *config.Settings, key, value string) error {
	switch key {
	case "case_sensitive_search", "debug", "whole_word_search":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		switch key {
		case "case_sensitive_search":
			settings.CaseSensitiveSearch = &b
		case "debug":
			settings.Debug = &b
		default:
			settings.WholeWordSearch = &b
		}
	case "cache_max_entries", "max_commits", "max_log_files", "recents_limit":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects a number, got %q", key, value)
		}
		switch key {
		case "cache_max_entries":
			settings.CacheMaxEntries = &n
		case "max_commits":
			settings.MaxCommits = &n
		case "max_log_files":
			settings.MaxLogFiles = &n
		default:
			settings.RecentsLimit = &n
		}
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func intSetting(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func boolSetting(v *bool) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatBool(*v)
}
