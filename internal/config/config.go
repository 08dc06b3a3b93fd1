// Package config manages application settings for the wallpaper rotator.
// Settings are stored as JSON in the user's config directory and are
// validated on load so the rest of the program never sees a bad value.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"wallshift/internal/wallpaper"
)

// DefaultIntervalMinutes is used when no interval is configured.
const DefaultIntervalMinutes = 30

// Config holds the application settings that are saved to disk.
type Config struct {
	// ImageFolder is the path where the user stores their wallpapers.
	// Empty means "resolve a default folder at startup".
	ImageFolder string `json:"image_folder"`

	// IntervalMinutes is how often the wallpaper changes. Minimum 1.
	IntervalMinutes int `json:"interval_minutes"`

	// Style is the desktop scaling mode (fill, fit, stretch, center, tile, span).
	Style string `json:"style"`

	// Recurse controls whether subdirectories of ImageFolder are scanned.
	Recurse bool `json:"recurse"`

	// ScheduleEnabled pauses or resumes the automatic rotation in tray mode.
	ScheduleEnabled bool `json:"schedule_enabled"`
}

// Default returns a fresh configuration with sensible defaults.
func Default() *Config {
	return &Config{
		IntervalMinutes: DefaultIntervalMinutes,
		Style:           string(wallpaper.StyleFill),
		Recurse:         true,
		ScheduleEnabled: true,
	}
}

// Path returns the location of the config file on disk.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "wallshift", "config.json"), nil
}

// Load reads the config file from disk. A missing file is not an error:
// it returns the defaults, which a later Save will persist.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.normalize()

	return cfg, nil
}

// Save writes the configuration to disk, replacing the previous file.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Interval returns the rotation interval as a duration, never below one minute.
func (c *Config) Interval() time.Duration {
	minutes := c.IntervalMinutes
	if minutes < 1 {
		minutes = 1
	}
	return time.Duration(minutes) * time.Minute
}

// normalize repairs values a hand-edited config file may get wrong.
func (c *Config) normalize() {
	if c.IntervalMinutes < 1 {
		c.IntervalMinutes = 1
	}
	if _, err := wallpaper.ParseStyle(c.Style); err != nil {
		c.Style = string(wallpaper.StyleFill)
	}
}
