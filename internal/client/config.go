package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

var configProfile string

// SetProfile sets the config profile for multiple instances.
func SetProfile(profile string) {
	configProfile = profile
}

// Config holds client configuration.
type Config struct {
	// Session journal
	JournalEnabled bool   `json:"journal_enabled"`
	JournalPath    string `json:"journal_path,omitempty"`

	// Terrain seed; 0 picks a new one per session
	Seed int64 `json:"seed,omitempty"`

	// UI preferences
	ShowHostileIntents bool `json:"show_hostile_intents"`

	// Window geometry (remembered between sessions)
	WindowWidth  int `json:"window_width,omitempty"`
	WindowHeight int `json:"window_height,omitempty"`
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	return &Config{
		JournalEnabled:     true,
		ShowHostileIntents: true,
		WindowWidth:        ScreenWidth,
		WindowHeight:       ScreenHeight,
	}
}

// LoadConfig loads config from the user's config directory.
func LoadConfig() (*Config, error) {
	path, err := configPath("")
	if err != nil {
		return DefaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

// Save saves the config to disk.
func (c *Config) Save() error {
	path, err := configPath("")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ResolveJournalPath returns the configured journal file or the default
// one next to the config file.
func (c *Config) ResolveJournalPath() (string, error) {
	if c.JournalPath != "" {
		return c.JournalPath, nil
	}
	return configPath("journal.db")
}

// configPath returns the path to a file in the config directory. An empty
// name selects the profile's config file.
func configPath(name string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	if name == "" {
		name = "config.json"
		if configProfile != "" {
			name = "config-" + configProfile + ".json"
		}
	}

	return filepath.Join(configDir, "hex-tactics", name), nil
}
