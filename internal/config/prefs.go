package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "retrodaily"
	keyringUser    = "theme"
	themeFileName  = "theme"
)

// DataDir returns the path to the data directory for saved preferences.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/retrodaily/
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, "retrodaily")
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// LoadTheme returns the saved theme name, or "" if none was saved.
// Priority: 1. RETRODAILY_THEME env var, 2. System keyring, 3. Theme file
func LoadTheme() (string, error) {
	if theme := os.Getenv("RETRODAILY_THEME"); theme != "" {
		return strings.TrimSpace(theme), nil
	}

	theme, err := keyring.Get(keyringService, keyringUser)
	if err == nil && theme != "" {
		return strings.TrimSpace(theme), nil
	}

	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(filepath.Join(dataDir, themeFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read theme file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// SaveTheme stores the theme name.
// Tries system keyring first, falls back to the theme file.
func SaveTheme(theme string) error {
	theme = strings.TrimSpace(theme)
	if theme != ThemeDark && theme != ThemeSepia {
		return fmt.Errorf("unknown theme %q", theme)
	}

	if err := keyring.Set(keyringService, keyringUser, theme); err == nil {
		return nil
	}

	dataDir, err := DataDir()
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dataDir, themeFileName), []byte(theme), 0600); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}

	return nil
}

// ClearTheme removes the saved theme from all locations.
func ClearTheme() error {
	_ = keyring.Delete(keyringService, keyringUser)

	dataDir, err := DataDir()
	if err != nil {
		return err
	}

	path := filepath.Join(dataDir, themeFileName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove theme file: %w", err)
	}

	return nil
}
