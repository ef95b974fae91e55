package state

import (
	"log"

	"github.com/hy4ri/retrodaily/internal/config"
	"github.com/hy4ri/retrodaily/internal/console"
)

// ThemeToggle switches between the dark and sepia palettes and persists
// the choice.
type ThemeToggle struct {
	name   string
	save   func(string) error
	notify console.Notifier
}

// NewThemeToggle starts on name. save may be nil.
func NewThemeToggle(name string, save func(string) error, notify console.Notifier) *ThemeToggle {
	if name != config.ThemeSepia {
		name = config.ThemeDark
	}
	return &ThemeToggle{name: name, save: save, notify: notify}
}

// Name returns the current theme name.
func (t *ThemeToggle) Name() string {
	return t.name
}

// Toggle implements console.Toggle.
func (t *ThemeToggle) Toggle() string {
	if t.name == config.ThemeDark {
		t.name = config.ThemeSepia
	} else {
		t.name = config.ThemeDark
	}

	if t.save != nil {
		if err := t.save(t.name); err != nil {
			log.Printf("theme: save %s: %v", t.name, err)
		}
	}

	if t.notify != nil {
		if t.name == config.ThemeDark {
			t.notify.Notify("◑ DARK MODE", 0)
		} else {
			t.notify.Notify("◑ VINTAGE SEPIA", 0)
		}
	}
	return t.name
}

// CRTToggle turns the scanline effect on and off.
type CRTToggle struct {
	on     bool
	notify console.Notifier
}

// NewCRTToggle creates a CRT toggle.
func NewCRTToggle(on bool, notify console.Notifier) *CRTToggle {
	return &CRTToggle{on: on, notify: notify}
}

// On reports whether scanlines are shown.
func (c *CRTToggle) On() bool {
	return c.on
}

// Toggle implements console.Toggle.
func (c *CRTToggle) Toggle() string {
	c.on = !c.on
	state := "OFF"
	if c.on {
		state = "ON"
	}
	if c.notify != nil {
		c.notify.Notify("↯ CRT "+state, 0)
	}
	return state
}

// MusicToggle tracks whether background music is playing. It only reports
// through its notifier.
type MusicToggle struct {
	playing bool
	label   string
	notify  console.Notifier
}

// NewMusicToggle creates a music toggle announcing label when started.
func NewMusicToggle(label string, notify console.Notifier) *MusicToggle {
	if label == "" {
		label = "MUSIC"
	}
	return &MusicToggle{label: label, notify: notify}
}

// Playing reports the current state.
func (m *MusicToggle) Playing() bool {
	return m.playing
}

// Label returns the status-bar label.
func (m *MusicToggle) Label() string {
	if m.playing {
		return m.label
	}
	return "MUSIC"
}

// Toggle implements console.Toggle.
func (m *MusicToggle) Toggle() string {
	m.playing = !m.playing
	if m.notify != nil {
		if m.playing {
			m.notify.Notify("♪ "+m.label, 0)
		} else {
			m.notify.Notify("♪ Music paused", 0)
		}
	}
	if m.playing {
		return "playing"
	}
	return "paused"
}
