package config

import (
	"os"
	"path/filepath"
)

// GetGitduHome returns GITDU_HOME or ~/.gitdu default
func GetGitduHome() string {
	home := os.Getenv("GITDU_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".gitdu"
		}
		return filepath.Join(homeDir, ".gitdu")
	}
	return ExpandPath(home)
}

// GetDBPath returns $GITDU_HOME/runs.db
func GetDBPath() string {
	return filepath.Join(GetGitduHome(), "runs.db")
}

// GetSettingsPath returns $GITDU_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetGitduHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
