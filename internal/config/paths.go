package config

import (
	"os"
	"path/filepath"
)

// GetHome returns the jobtrack home directory.
// Uses $JOBTRACK_HOME if set, otherwise ~/.jobtrack.
func GetHome() string {
	if home := os.Getenv("JOBTRACK_HOME"); home != "" {
		return ExpandPath(home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".jobtrack"
	}
	return filepath.Join(homeDir, ".jobtrack")
}

// GetSettingsPath returns the path to settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetDBPath returns the path to the local session database
func GetDBPath() string {
	return filepath.Join(GetHome(), "jobtrack.db")
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[1:])
}
