package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultAPIURL is the API base URL used when neither the flag, the
// environment, nor settings.json provides one.
const DefaultAPIURL = "http://localhost:5001/api"

// DefaultPageSize is the initial rows-per-page for the application table
const DefaultPageSize = 10

// PageSizes are the rows-per-page options the UI cycles through
var PageSizes = []int{5, 10, 25}

// Settings represents the structure of $JOBTRACK_HOME/settings.json
type Settings struct {
	APIURL          string `json:"api_url,omitempty"`
	Debug           *bool  `json:"debug,omitempty"`
	ErrorClearDelay *int   `json:"error_clear_delay,omitempty"`
	MaxLogFiles     *int   `json:"max_log_files,omitempty"`
	PageSize        *int   `json:"page_size,omitempty"`
}

// IsValidPageSize reports whether n is one of the supported page sizes
func IsValidPageSize(n int) bool {
	for _, size := range PageSizes {
		if size == n {
			return true
		}
	}
	return false
}

// LoadSettings loads settings from $JOBTRACK_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
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

	if settings.PageSize != nil && !IsValidPageSize(*settings.PageSize) {
		return nil, fmt.Errorf("invalid page_size %d: must be one of %v", *settings.PageSize, PageSizes)
	}

	return &settings, nil
}

// SaveSettings saves settings to $JOBTRACK_HOME/settings.json
func SaveSettings(settings *Settings) error {
	if err := os.MkdirAll(GetHome(), 0755); err != nil {
		return fmt.Errorf("failed to create jobtrack home: %w", err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(GetSettingsPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
