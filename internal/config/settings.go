package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings represents the structure of $GITDU_HOME/settings.json
type Settings struct {
	DBPath      string `json:"db_path,omitempty"`
	Debug       *bool  `json:"debug,omitempty"`
	MaxLogFiles *int   `json:"max_log_files,omitempty"`
	NoProgress  *bool  `json:"no_progress,omitempty"`
	PackSize    string `json:"pack_size,omitempty"`
	Save        *bool  `json:"save,omitempty"`
	Top         *int   `json:"top,omitempty"`
}

// LoadSettings loads settings from $GITDU_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}

	return &settings, nil
}

// ResolveDBPath returns the history database path, honoring the settings override
func (s *Settings) ResolveDBPath() string {
	if s != nil && s.DBPath != "" {
		return s.DBPath
	}
	return GetDBPath()
}
