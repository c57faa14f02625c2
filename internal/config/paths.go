package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the fastgit state directory
const EnvHome = "FASTGIT_HOME"

// GetHome returns FASTGIT_HOME or ~/.fastgit
func GetHome() string {
	if home := os.Getenv(EnvHome); home != "" {
		return ExpandPath(home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".fastgit"
	}
	return filepath.Join(homeDir, ".fastgit")
}

// GetDBPath returns $FASTGIT_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetSettingsPath returns $FASTGIT_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return homeDir
	}
	return filepath.Join(homeDir, path[1:])
}
