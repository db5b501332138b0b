package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Settings holds optional defaults from the user's config file. Values
// from command-line flags take precedence over the file.
type Settings struct {
	Provider    string   `yaml:"provider,omitempty"`
	Model       string   `yaml:"model,omitempty"`
	Temperature *float64 `yaml:"temperature,omitempty"`
	MaxTokens   int      `yaml:"max_tokens,omitempty"`
	LogLevel    string   `yaml:"log_level,omitempty"`
}

// SettingsPath returns the default config file location.
func SettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting user home directory: %v", err)
	}
	return filepath.Join(homeDir, ".nlschema", "config.yaml"), nil
}

// LoadSettings reads a settings file. A missing file is not an error and
// yields zero-value settings.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("error parsing settings file %s: %w", path, err)
	}
	return &settings, nil
}

// Merge overlays flag values onto file settings: non-empty flag values win.
func (s *Settings) Merge(provider, model, logLevel string) *Settings {
	merged := *s
	if provider != "" {
		merged.Provider = provider
	}
	if model != "" {
		merged.Model = model
	}
	if logLevel != "" {
		merged.LogLevel = logLevel
	}
	return &merged
}
