package console

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/retrodaily/internal/links"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOpener struct {
	urls []string
	err  error
}

func (f *fakeOpener) Open(url string) error {
	f.urls = append(f.urls, url)
	return f.err
}

type fakeNotifier struct {
	msgs []string
}

func (f *fakeNotifier) Notify(msg string, _ time.Duration) {
	f.msgs = append(f.msgs, msg)
}

type fakeToggle struct {
	states []string
	calls  int
}

func (f *fakeToggle) Toggle() string {
	s := f.states[f.calls%len(f.states)]
	f.calls++
	return s
}

type harness struct {
	c      *Console
	opener *fakeOpener
	notes  *fakeNotifier
	crt    *fakeToggle
	theme  *fakeToggle
	music  *fakeToggle
	delays []time.Duration
}

var fixedNow = time.Date(2026, time.October, 18, 15, 4, 5, 0, time.UTC)

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		opener: &fakeOpener{},
		notes:  &fakeNotifier{},
		crt:    &fakeToggle{states: []string{"ON", "OFF"}},
		theme:  &fakeToggle{states: []string{"sepia", "dark"}},
		music:  &fakeToggle{states: []string{"playing", "paused"}},
	}
	h.c = New(Options{
		Owner:     "Anandhu",
		Version:   "v1.0.0",
		Directory: links.Default(),
		CRT:       h.crt,
		Theme:     h.theme,
		Music:     h.music,
		Opener:    h.opener,
		Notifier:  h.notes,
		Now:       func() time.Time { return fixedNow },
		After: func(d time.Duration, fn func() tea.Msg) tea.Cmd {
			h.delays = append(h.delays, d)
			return func() tea.Msg { return fn() }
		},
	})
	return h
}

// deliver runs cmd and feeds every DeferredMsg it produces back to the console.
func (h *harness) deliver(cmd tea.Cmd) int {
	if cmd == nil {
		return 0
	}
	n := 0
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			n += h.deliver(sub)
		}
	case DeferredMsg:
		if h.c.Deliver(msg) {
			n++
		}
	}
	return n
}

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func containsLine(lines []Line, sub string) bool {
	for _, l := range lines {
		if strings.Contains(l.Text, sub) {
			return true
		}
	}
	return false
}

func TestSubmit_EchoComesFirst(t *testing.T) {
	inputs := []string{"help", "ls", "open github", "find music", "date", "whoami", "nope", "matrix", "crt"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			h := newHarness(t)
			h.c.Submit(in)

			lines := h.c.Lines()
			require.NotEmpty(t, lines)
			assert.Equal(t, Line{Text: "❯  " + in, Style: StylePrompt}, lines[0])

			echoes := 0
			for _, l := range lines {
				if l.Style == StylePrompt {
					echoes++
				}
			}
			assert.Equal(t, 1, echoes)
		})
	}
}

func TestSubmit_BlankIsNoop(t *testing.T) {
	h := newHarness(t)
	h.c.PrintBanner()
	before := h.c.Lines()

	for _, in := range []string{"", "   ", "\t\n"} {
		assert.Nil(t, h.c.Submit(in))
	}

	assert.Equal(t, before, h.c.Lines())
	assert.Equal(t, 0, h.c.History().Len())
}

func TestSubmit_TrimsAndRecordsHistory(t *testing.T) {
	h := newHarness(t)
	h.c.SetInput("  hello  ")
	h.c.Submit("  hello  ")
	h.c.Submit("matrix")

	assert.Equal(t, []string{"matrix", "hello"}, h.c.History().Entries())
	assert.Equal(t, -1, h.c.History().Cursor())
	assert.Equal(t, "", h.c.Input())
	assert.Equal(t, "❯  hello", h.c.Lines()[0].Text)
}

func TestSubmit_UnknownCommand(t *testing.T) {
	h := newHarness(t)
	h.c.Submit("Frobnicate now")

	lines := h.c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "  command not found: Frobnicate. Type  help  for commands.", lines[1].Text)
	assert.Equal(t, StyleError, lines[1].Style)
}

func TestSubmit_CaseInsensitiveName(t *testing.T) {
	h := newHarness(t)
	h.c.Submit("WHOAMI")

	assert.True(t, containsLine(h.c.Lines(), "Anandhu — Vintage portal operator"))
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		in, name, args string
	}{
		{"open github", "open", "github"},
		{"open   whatsapp  web ", "open", "whatsapp  web"},
		{"open\tgit", "open", "git"},
		{"ls", "ls", ""},
	}

	for _, tc := range tests {
		name, args := splitCommand(tc.in)
		assert.Equal(t, tc.name, name, tc.in)
		assert.Equal(t, tc.args, args, tc.in)
	}
}

func TestRecall(t *testing.T) {
	h := newHarness(t)

	h.c.RecallPrevious()
	assert.Equal(t, "", h.c.Input(), "empty history leaves input alone")

	h.c.Submit("ls")
	h.c.Submit("date")
	h.c.Submit("about")

	for i := 0; i < 10; i++ {
		h.c.RecallPrevious()
	}
	assert.Equal(t, "ls", h.c.Input())
	assert.Equal(t, 2, h.c.History().Cursor())

	h.c.RecallNext()
	assert.Equal(t, "date", h.c.Input())
	h.c.RecallNext()
	assert.Equal(t, "about", h.c.Input())
	h.c.RecallNext()
	assert.Equal(t, "", h.c.Input())
	assert.Equal(t, -1, h.c.History().Cursor())
	h.c.RecallNext()
	assert.Equal(t, -1, h.c.History().Cursor())
}

func TestAutocomplete(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		partial string
		want    string
		ok      bool
	}{
		{"he", "help", true},
		{"HEL", "help", true},
		{"c", "crt", true},
		{"cl", "clear", true},
		{"gi", "github", true},
		{"spo", "spotify", true},
		{"zz", "", false},
		{"", "", false},
		{"  ", "", false},
	}

	for _, tc := range tests {
		got, ok := h.c.Autocomplete(tc.partial)
		assert.Equal(t, tc.ok, ok, tc.partial)
		assert.Equal(t, tc.want, got, tc.partial)
	}
}

func TestOpen_Exact(t *testing.T) {
	h := newHarness(t)
	h.c.Submit("open github")

	assert.Equal(t, []string{"https://github.com"}, h.opener.urls)
	assert.Equal(t, []string{"→ github"}, h.notes.msgs)
	assert.True(t, containsLine(h.c.Lines(), "Opening github..."))
	assert.False(t, containsLine(h.c.Lines(), "Not found"))
}

func TestOpen_ExactFailureKeepsOpenerMessage(t *testing.T) {
	h := newHarness(t)
	h.opener.err = errors.New("no browser")
	h.c.Submit("open github")

	assert.Equal(t, []string{"https://github.com"}, h.opener.urls)
	assert.Empty(t, h.notes.msgs, "success toast must not cover the opener's failure report")
	assert.True(t, containsLine(h.c.Lines(), "Opening github..."))
}

func TestOpen_SubstringFallback(t *testing.T) {
	h := newHarness(t)
	h.c.Submit("open git")

	assert.Equal(t, []string{"https://github.com"}, h.opener.urls)
	assert.True(t, containsLine(h.c.Lines(), "Opening github..."))
	assert.Empty(t, h.notes.msgs)
}

func TestOpen_NotFoundAndUsage(t *testing.T) {
	h := newHarness(t)
	h.c.Submit("open altavista")
	h.c.Submit("open")

	assert.Empty(t, h.opener.urls)
	assert.True(t, containsLine(h.c.Lines(), `Not found: "altavista". Try  ls  to list all links.`))
	assert.True(t, containsLine(h.c.Lines(), "Usage: open <link-name>"))
}

func TestFind(t *testing.T) {
	h := newHarness(t)
	h.c.Submit("find music")

	lines := texts(h.c.Lines())
	assert.Contains(t, lines, "  Found 4 result(s):")
	assert.Contains(t, lines, "    · [MUSIC]  Spotify  →  https://open.spotify.com")
	assert.Contains(t, lines, "    · [MUSIC]  SoundCloud  →  https://soundcloud.com")

	h.c.Clear()
	h.c.Submit("find nothing")
	assert.True(t, containsLine(h.c.Lines(), `No links matched "nothing".`))

	h.c.Clear()
	h.c.Submit("find")
	assert.Equal(t, []string{"❯  find", "  Usage: find <query>"}, texts(h.c.Lines()))
}

func TestSearch(t *testing.T) {
	h := newHarness(t)
	h.c.Submit("search retro terminals")

	assert.Equal(t, []string{"https://www.google.com/search?q=retro%20terminals"}, h.opener.urls)
	assert.True(t, containsLine(h.c.Lines(), `Searching google for "retro terminals"...`))

	h.c.Clear()
	h.c.Submit("search")
	assert.Equal(t, []string{"❯  search", "  Usage: search <query>"}, texts(h.c.Lines()))
	assert.Len(t, h.opener.urls, 1)
}

func TestEngine(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, "google", h.c.Engine())

	h.c.Submit("engine")
	lines := texts(h.c.Lines())
	assert.Contains(t, lines, "    · duckduckgo")
	assert.Contains(t, lines, "    · google  (active)")

	h.c.Submit("engine DuckDuckGo")
	assert.Equal(t, "duckduckgo", h.c.Engine())
	assert.Equal(t, []string{"⌕ DUCKDUCKGO"}, h.notes.msgs)
	assert.True(t, containsLine(h.c.Lines(), "Search engine: DUCKDUCKGO"))

	h.c.Submit("search go")
	assert.Equal(t, []string{"https://duckduckgo.com/?q=go"}, h.opener.urls)

	h.c.Submit("engine altavista")
	assert.Equal(t, "duckduckgo", h.c.Engine())
	assert.True(t, containsLine(h.c.Lines(), "Unknown engine: altavista. Available: duckduckgo, google"))
}

func TestEngine_FromOptions(t *testing.T) {
	tests := []struct {
		name    string
		engines links.Engines
		engine  string
		want    string
	}{
		{"configured", nil, "duckduckgo", "duckduckgo"},
		{"unknown falls back to default", nil, "bing", "google"},
		{"no default falls back to first", links.Engines{"kagi": "https://kagi.com/search?q=", "brave": "https://search.brave.com/search?q="}, "", "brave"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(Options{Engines: tt.engines, Engine: tt.engine})
			assert.Equal(t, tt.want, c.Engine())
		})
	}
}

func TestLs(t *testing.T) {
	h := newHarness(t)
	h.c.Submit("ls")

	lines := texts(h.c.Lines())
	assert.Contains(t, lines, "  /social/")
	assert.Contains(t, lines, "    · WhatsApp Web [W]  →  whatsappweb")
	assert.Contains(t, lines, "    · Twitter / X  →  twitter/x")
}

func TestDate(t *testing.T) {
	h := newHarness(t)
	h.c.Submit("date")

	lines := texts(h.c.Lines())
	assert.Contains(t, lines, "  Date  : Sun Oct 18 2026")
	assert.Contains(t, lines, "  Time  : 3:04:05 PM")
	assert.Contains(t, lines, "  Unix  : 1792335845")
}

func TestToggles(t *testing.T) {
	h := newHarness(t)
	h.c.Submit("crt")
	h.c.Submit("crt")
	h.c.Submit("theme")
	h.c.Submit("music")

	lines := texts(h.c.Lines())
	assert.Contains(t, lines, "  CRT scanlines ON.")
	assert.Contains(t, lines, "  CRT scanlines OFF.")
	assert.Contains(t, lines, "  Theme switched to: SEPIA")
	assert.Equal(t, 2, h.crt.calls)
	assert.Equal(t, 1, h.theme.calls)
	assert.Equal(t, 1, h.music.calls)
}

func TestWeather(t *testing.T) {
	h := newHarness(t)
	h.c.Submit("weather")

	assert.Equal(t, []string{DefaultWeatherURL}, h.opener.urls)
	assert.True(t, containsLine(h.c.Lines(), "Opening weather..."))
}

func TestAbout_BoxIsAligned(t *testing.T) {
	h := newHarness(t)
	h.c.Submit("about")

	var box []string
	for _, l := range texts(h.c.Lines()) {
		if strings.HasPrefix(l, "  │") || strings.HasPrefix(l, "  ┌") || strings.HasPrefix(l, "  └") {
			box = append(box, l)
		}
	}
	require.Len(t, box, 7)
	for _, l := range box {
		assert.Equal(t, boxWidth+4, runewidth.StringWidth(l), l)
	}
	assert.True(t, containsLine(h.c.Lines(), "Owner : Anandhu"))
	assert.True(t, containsLine(h.c.Lines(), "Year  : 2026"))
}

func TestHelp_ListsVisibleCommands(t *testing.T) {
	h := newHarness(t)
	h.c.Submit("help")

	for _, k := range helpOrder {
		assert.True(t, containsLine(h.c.Lines(), usage[k][1]), k.String())
	}
	assert.False(t, containsLine(h.c.Lines(), "hack"))
}

func TestClearThenCommand(t *testing.T) {
	h := newHarness(t)
	h.c.PrintBanner()
	h.c.Submit("ls")
	h.c.Submit("clear")
	assert.Empty(t, h.c.Lines())

	h.c.Submit("hi")
	assert.Equal(t, []string{"❯  hi", "", "  Hey there, traveller. 👋", ""}, texts(h.c.Lines()))

	h.c.Submit("cls")
	assert.Empty(t, h.c.Lines())
}

func TestHack_DeferredLines(t *testing.T) {
	h := newHarness(t)
	cmd := h.c.Submit("hack")

	assert.Equal(t, []time.Duration{hackDelay1, hackDelay2}, h.delays)
	assert.Len(t, h.c.Pending(), 2)
	assert.Equal(t, "  Initiating hack sequence...", h.c.Lines()[2].Text)

	assert.Equal(t, 2, h.deliver(cmd))
	assert.Empty(t, h.c.Pending())
	assert.True(t, containsLine(h.c.Lines(), "not Mr. Robot"))
}

func TestHack_ClearCancelsPending(t *testing.T) {
	h := newHarness(t)
	cmd := h.c.Submit("hack")
	h.c.Submit("clear")

	assert.Empty(t, h.c.Pending())
	assert.Equal(t, 0, h.deliver(cmd))
	assert.Empty(t, h.c.Lines())
}

func TestHack_CloseDropsLateMessages(t *testing.T) {
	h := newHarness(t)
	cmd := h.c.Submit("hack")
	h.c.Close()

	assert.Equal(t, 0, h.deliver(cmd))
	assert.Nil(t, h.c.Schedule(time.Second, Line{Text: "late"}))
}

func TestDeliver_IgnoresOtherConsole(t *testing.T) {
	a := newHarness(t)
	b := newHarness(t)
	cmd := a.c.Submit("hack")

	msg := cmd().(tea.BatchMsg)[0]().(DeferredMsg)
	assert.False(t, b.c.Deliver(msg))
	assert.True(t, a.c.Deliver(msg))
	assert.False(t, a.c.Deliver(msg), "second delivery is a no-op")
}

func TestEveryKindIsReachable(t *testing.T) {
	for _, k := range Kinds() {
		name := k.String()
		got, ok := lookup(name)
		require.True(t, ok, "kind %d has no table entry", int(k))
		assert.Equal(t, k, got)

		h := newHarness(t)
		h.c.Submit(name + " x")
		assert.False(t, containsLine(h.c.Lines(), "has no handler"), name)
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New(Options{})

	c.Submit("whoami")
	c.Submit("crt")
	c.Submit("open anything")

	assert.True(t, containsLine(c.Lines(), "Operator — Vintage portal operator"))
	assert.True(t, containsLine(c.Lines(), "CRT scanlines ON."))
	assert.True(t, containsLine(c.Lines(), "Not found"))
}

func TestConsolesAreIndependent(t *testing.T) {
	a := newHarness(t)
	b := newHarness(t)

	a.c.Submit("ls")
	assert.Empty(t, b.c.Lines())
	assert.Equal(t, 0, b.c.History().Len())
}

func TestStyleString(t *testing.T) {
	assert.Equal(t, "prompt", StylePrompt.String())
	assert.Equal(t, "banner", StyleBanner.String())
	assert.Equal(t, "output", Style(99).String())
}
