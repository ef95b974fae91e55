// Package main is the entry point for the RETRO://DAILY terminal start page.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/retrodaily/internal/config"
	"github.com/hy4ri/retrodaily/internal/tui"
)

const version = "v2.0"

const helpText = `retrodaily - a retro terminal start page with a command console

USAGE:
    retrodaily [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --config PATH       Load configuration from PATH (.yaml or .toml)
    --reset-theme       Forget the saved theme and exit

CONFIGURATION:
    Config file: ~/.config/retrodaily/config.yaml
    The theme can be forced with RETRODAILY_THEME=dark|sepia.
    Set DEBUG=1 to write a debug log to debug.log.

COMMANDS:
    help, ls, open <name>, find <query>, search <query>,
    engine [name], date, weather,
    crt, theme, music, about, whoami, clear

KEYBINDINGS:
    Enter       Run command
    Up/Down     Command history
    Tab         Complete command or link name
    Ctrl+L      Clear terminal
    PgUp/PgDn   Scroll output
    Alt+<key>   Open the link bound to <key>
    /           Start a web search (on an empty line)
    Ctrl+Y      Copy the last opened url
    F1          Keyboard shortcuts
    F2/F3/F4    Toggle sepia, CRT scanlines, music
    Esc         Quit
`

const configTemplate = `# RETRO://DAILY Configuration
# Location: ~/.config/retrodaily/config.yaml

site:
  title: "RETRO://DAILY"
  owner: "Operator"
  # weather_url: "https://wttr.in/?format=3"
  # music_label: "GROOVE SALAD FM"
  # Engines used by the search command; listing any replaces the defaults.
  # search_engine: google
  # search_engines:
  #   google: "https://www.google.com/search?q="
  #   duckduckgo: "https://duckduckgo.com/?q="

# Leave links out to use the built-in directory.
# links:
#   - category: WORK
#     icon: "⚙"
#     items:
#       - label: GitHub
#         url: https://github.com
#         shortcut: G

ui:
  # "dark" or "sepia"
  theme: dark
  crt: false
  # Mirror toasts as desktop notifications
  desktop_notifications: false
  toast_duration: 2s
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		resetTheme  bool
		configPath  string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&resetTheme, "reset-theme", false, "Forget the saved theme")
	flag.StringVar(&configPath, "config", "", "Path to config file")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("retrodaily version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	if resetTheme {
		if err := config.ClearTheme(); err != nil {
			return fmt.Errorf("failed to clear theme: %w", err)
		}
		fmt.Println("Saved theme cleared.")
		return nil
	}

	return runApp(configPath)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if _, err := config.ConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(configPath string) error {
	if os.Getenv("DEBUG") != "" {
		f, err := tea.LogToFile("debug.log", "retrodaily")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	} else {
		// Keep log output off the alt screen
		log.SetOutput(io.Discard)
	}

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	theme, err := config.LoadTheme()
	if err != nil {
		// Non-fatal: fall back to the configured theme
		log.Printf("theme: %v", err)
	}

	app := tui.NewApp(cfg, tui.Options{
		Version:   version,
		Theme:     theme,
		SaveTheme: config.SaveTheme,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
