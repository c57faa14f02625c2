package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults used when neither flags, environment nor settings.json say otherwise
const (
	DefaultCacheMaxEntries = 0
	DefaultMaxCommits      = 500
	DefaultRecentsLimit    = 10
)

// Settings represents the structure of $FASTGIT_HOME/settings.json.
// Pointer fields distinguish "not set" from the zero value.
type Settings struct {
	CacheMaxEntries     *int  `json:"cache_max_entries,omitempty"`
	CaseSensitiveSearch *bool `json:"case_sensitive_search,omitempty"`
	Debug               *bool `json:"debug,omitempty"`
	MaxCommits          *int  `json:"max_commits,omitempty"`
	MaxLogFiles         *int  `json:"max_log_files,omitempty"`
	RecentsLimit        *int  `json:"recents_limit,omitempty"`
	WholeWordSearch     *bool `json:"whole_word_search,omitempty"`
}

// Validate rejects values that would break the session layer
func (s *Settings) Validate() error {
	if s.MaxCommits != nil && *s.MaxCommits <= 0 {
		return fmt.Errorf("max_commits must be positive, got %d", *s.MaxCommits)
	}
	if s.RecentsLimit != nil && *s.RecentsLimit <= 0 {
		return fmt.Errorf("recents_limit must be positive, got %d", *s.RecentsLimit)
	}
	if s.CacheMaxEntries != nil && *s.CacheMaxEntries < 0 {
		return fmt.Errorf("cache_max_entries cannot be negative, got %d", *s.CacheMaxEntries)
	}
	return nil
}

// LoadSettings loads settings from $FASTGIT_HOME/settings.json.
// A missing file yields empty Settings, not an error.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	return &settings, nil
}

// SaveSettings writes settings to $FASTGIT_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// IntOr returns *v or def when v is nil
func IntOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// BoolOr returns *v or def when v is nil
func BoolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
