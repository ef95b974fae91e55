package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/retrodaily/internal/config"
)

type nopOpener struct{ urls []string }

func (n *nopOpener) Open(url string) error {
	n.urls = append(n.urls, url)
	return nil
}

func TestNewAppPrintsBanner(t *testing.T) {
	app := NewApp(nil, Options{Version: "v9", Opener: &nopOpener{}})

	var found bool
	for _, l := range app.Console.Lines() {
		if strings.Contains(l.Text, "RETRO://TERMINAL  v9") {
			found = true
		}
	}
	if !found {
		t.Error("banner not printed")
	}
	if app.Init() == nil {
		t.Error("expected boot command")
	}
}

func TestNewAppThemeOverride(t *testing.T) {
	cfg := config.DefaultConfig()
	var saved string
	app := NewApp(cfg, Options{
		Theme:     config.ThemeSepia,
		SaveTheme: func(s string) error { saved = s; return nil },
		Opener:    &nopOpener{},
	})
	if app.Theme.Name() != config.ThemeSepia {
		t.Fatalf("theme = %s", app.Theme.Name())
	}

	app.Update(tea.KeyMsg{Type: tea.KeyF2})
	if saved != config.ThemeDark {
		t.Errorf("saved = %q", saved)
	}
}

func TestAppEndToEnd(t *testing.T) {
	opener := &nopOpener{}
	app := NewApp(config.DefaultConfig(), Options{
		Opener: opener,
		After:  func(time.Duration, func() tea.Msg) tea.Cmd { return nil },
	})

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("open notion")})
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(opener.urls) != 1 || opener.urls[0] != "https://notion.so" {
		t.Fatalf("opened %v", opener.urls)
	}
	if app.LastURL != "https://notion.so" {
		t.Errorf("LastURL = %q", app.LastURL)
	}
	if out := app.View(); !strings.Contains(out, "Opening") {
		t.Error("view does not show command output")
	}

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if model != app || cmd == nil {
		t.Error("expected quit")
	}
	if app.View() != "" {
		t.Error("view should be empty after quit")
	}
}
