// Package config owns the on-disk JSON configuration. A missing file means
// defaults; a present file is backfilled field by field so configs written
// by older versions keep working.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds naming templates, feed filters, per-series episode offsets
// and the TMDB lookup settings.
type Config struct {
	ShowFolder   string `json:"show_folder"`
	SeasonFolder string `json:"season_folder"`
	Episode      string `json:"episode"`

	// Filters are comma-separated exclusion lists matched against raw
	// release titles before anything else happens to them.
	Filters []string `json:"filters"`

	// EpisodeOffsets maps a series title to a signed offset applied to
	// its regular episodes, for groups that number across seasons.
	EpisodeOffsets map[string]int `json:"episode_offsets"`

	LibraryPath string `json:"library_path"`

	LogRetentionDays int  `json:"log_retention_days"`
	EnableLogging    bool `json:"enable_logging"`

	TMDBAPIKey       string `json:"tmdb_api_key"`
	EnableTMDBLookup bool   `json:"enable_tmdb_lookup"`
	TMDBLanguage     string `json:"tmdb_language"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		ShowFolder:       "{title}",
		SeasonFolder:     "Season {season}",
		Episode:          "{title} S{season}E{episode}",
		EpisodeOffsets:   map[string]int{},
		LogRetentionDays: 30,
		EnableLogging:    true,
		EnableTMDBLookup: false,
		TMDBLanguage:     "zh-CN",
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".bangumi-tidy", "config.json"), nil
}

// Load reads the configuration from disk
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Fill in any missing fields with defaults
	defaults := DefaultConfig()
	if cfg.ShowFolder == "" {
		cfg.ShowFolder = defaults.ShowFolder
	}
	if cfg.SeasonFolder == "" {
		cfg.SeasonFolder = defaults.SeasonFolder
	}
	if cfg.Episode == "" {
		cfg.Episode = defaults.Episode
	}
	if cfg.EpisodeOffsets == nil {
		cfg.EpisodeOffsets = map[string]int{}
	}
	if cfg.LogRetentionDays == 0 {
		cfg.LogRetentionDays = defaults.LogRetentionDays
	}
	if cfg.TMDBLanguage == "" {
		cfg.TMDBLanguage = defaults.TMDBLanguage
	}

	return &cfg, nil
}

// Save writes the configuration to disk
func (cfg *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Offset returns the configured episode offset for a series title, zero
// when none is set.
func (cfg *Config) Offset(title string) int {
	return cfg.EpisodeOffsets[title]
}
