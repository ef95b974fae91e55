// Package state holds the shared UI state read by the update handler and
// the renderer.
package state

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/hy4ri/retrodaily/internal/config"
	"github.com/hy4ri/retrodaily/internal/console"
	"github.com/hy4ri/retrodaily/internal/tui/components"
)

// BootToastDelay is how long after start the welcome toast appears.
const BootToastDelay = 800 * time.Millisecond

// State is the application state shared by logic and ui.
type State struct {
	// Dependencies
	Config  *config.Config
	Console *console.Console
	Opener  console.Opener

	// Collaborators the console toggles
	Theme *ThemeToggle
	CRT   *CRTToggle
	Music *MusicToggle

	// Components
	CommandLine   *CommandLine
	Toast         *components.ToastModel
	ShortcutsComp *components.ShortcutsModel
	Keymap        KeymapData

	// Scrollback viewport
	Viewport      viewport.Model
	ViewportReady bool

	// UI state
	Width         int
	Height        int
	ShowShortcuts bool
	LastURL       string // Most recent url handed to the opener
	StatusMsg     string // Shown in the bottom row when no toast is up
	Quitting      bool
}
