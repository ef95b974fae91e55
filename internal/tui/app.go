// Package tui provides the terminal user interface for the start page.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/retrodaily/internal/browser"
	"github.com/hy4ri/retrodaily/internal/config"
	"github.com/hy4ri/retrodaily/internal/console"
	"github.com/hy4ri/retrodaily/internal/tui/components"
	"github.com/hy4ri/retrodaily/internal/tui/logic"
	"github.com/hy4ri/retrodaily/internal/tui/state"
	"github.com/hy4ri/retrodaily/internal/tui/ui"
)

// Options holds the collaborators NewApp does not build from config.
type Options struct {
	Version string

	// Theme overrides cfg.UI.Theme when set.
	Theme string

	// SaveTheme persists a theme change. Nil disables persistence.
	SaveTheme func(string) error

	// Opener launches urls. Defaults to the system browser.
	Opener console.Opener

	// After schedules deferred console output. Nil uses tea.Tick.
	After console.AfterFunc
}

// App is the main Bubble Tea model for the application.
type App struct {
	*state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates a new App instance.
func NewApp(cfg *config.Config, opts Options) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme := cfg.UI.Theme
	if opts.Theme != "" {
		theme = opts.Theme
	}
	if opts.Opener == nil {
		opts.Opener = browser.New()
	}

	toast := components.NewToast(cfg.UI.ToastDuration)
	if cfg.UI.DesktopNotifications {
		toast.OnNotify = logic.DesktopNotifier(cfg.Site.Title)
	}

	s := &state.State{
		Config:        cfg,
		Theme:         state.NewThemeToggle(theme, opts.SaveTheme, toast),
		CRT:           state.NewCRTToggle(cfg.UI.CRT, toast),
		Music:         state.NewMusicToggle(cfg.Site.MusicLabel, toast),
		CommandLine:   state.NewCommandLine(),
		Toast:         toast,
		ShortcutsComp: components.NewShortcuts(),
		Keymap:        state.DefaultKeymap(),
	}

	h := logic.NewHandler(s)
	tracking := &logic.TrackingOpener{Next: opts.Opener, Handler: h}
	s.Opener = tracking

	s.Console = console.New(console.Options{
		Owner:      cfg.Site.Owner,
		Version:    opts.Version,
		WeatherURL: cfg.Site.WeatherURL,
		Directory:  cfg.Links,
		Engines:    cfg.Site.SearchEngines,
		Engine:     cfg.Site.SearchEngine,
		CRT:        s.CRT,
		Theme:      s.Theme,
		Music:      s.Music,
		Opener:     tracking,
		Notifier:   toast,
		After:      opts.After,
	})
	s.Console.PrintBanner()

	return &App{
		State:    s,
		handler:  h,
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.handler.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
