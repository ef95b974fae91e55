// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hy4ri/retrodaily/internal/links"
	"gopkg.in/yaml.v3"
)

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeSepia = "sepia"
)

// Config represents the application configuration.
type Config struct {
	Site  SiteConfig      `yaml:"site" toml:"site"`
	Links links.Directory `yaml:"links,omitempty" toml:"links,omitempty"`
	UI    UIConfig        `yaml:"ui" toml:"ui"`
}

// SiteConfig holds what the page says about itself.
type SiteConfig struct {
	Title      string `yaml:"title" toml:"title"`
	Owner      string `yaml:"owner" toml:"owner"`
	WeatherURL string `yaml:"weather_url,omitempty" toml:"weather_url,omitempty"`
	MusicLabel string `yaml:"music_label,omitempty" toml:"music_label,omitempty"`

	// SearchEngines maps a name to a query url prefix; SearchEngine is the
	// one selected at start.
	SearchEngines links.Engines `yaml:"search_engines,omitempty" toml:"search_engines,omitempty"`
	SearchEngine  string        `yaml:"search_engine,omitempty" toml:"search_engine,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	Theme                string        `yaml:"theme" toml:"theme"` // "dark" or "sepia"
	CRT                  bool          `yaml:"crt" toml:"crt"`
	DesktopNotifications bool          `yaml:"desktop_notifications" toml:"desktop_notifications"`
	ToastDuration        time.Duration `yaml:"toast_duration,omitempty" toml:"toast_duration,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:      "RETRO://DAILY",
			Owner:      "Anandhu",
			WeatherURL: "https://wttr.in/?format=3",
			MusicLabel: "GROOVE SALAD FM",

			SearchEngines: links.DefaultEngines(),
			SearchEngine:  links.DefaultEngine,
		},
		Links: links.Default(),
		UI: UIConfig{
			Theme:         ThemeDark,
			ToastDuration: 2 * time.Second,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "retrodaily")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads a YAML or TOML config, chosen by file extension.
// A missing file yields the default configuration.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	// Links and engines replace the defaults wholesale rather than merging
	// into them.
	cfg.Links = nil
	cfg.Site.SearchEngines = nil
	cfg.Site.SearchEngine = ""

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if len(cfg.Links) == 0 {
		cfg.Links = links.Default()
	}
	if len(cfg.Site.SearchEngines) == 0 {
		cfg.Site.SearchEngines = links.DefaultEngines()
	}
	if cfg.Site.SearchEngine == "" {
		cfg.Site.SearchEngine = firstEngine(cfg.Site.SearchEngines)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// firstEngine picks the default engine if configured, else the first by name.
func firstEngine(e links.Engines) string {
	if e.Has(links.DefaultEngine) {
		return links.DefaultEngine
	}
	return e.Names()[0]
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports the first problem with the configuration.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case ThemeDark, ThemeSepia, "":
	default:
		return fmt.Errorf("unknown theme %q (want %q or %q)", c.UI.Theme, ThemeDark, ThemeSepia)
	}
	if c.UI.ToastDuration < 0 {
		return fmt.Errorf("toast_duration must not be negative")
	}
	if err := c.Site.SearchEngines.Validate(); err != nil {
		return err
	}
	if e := c.Site.SearchEngine; e != "" && !c.Site.SearchEngines.Has(e) {
		return fmt.Errorf("search_engine %q is not in search_engines", e)
	}
	return c.Links.Validate()
}
