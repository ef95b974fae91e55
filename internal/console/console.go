// Package console implements the start page's command console: a line
// input with history and completion, a scrollback buffer, and a fixed set
// of commands over the link directory.
package console

import (
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/retrodaily/internal/links"
)

// Toggle flips a piece of UI state owned by someone else and returns the
// name of the state it ended up in.
type Toggle interface {
	Toggle() string
}

// Opener asks the host to open a url in a new browsing context.
type Opener interface {
	Open(url string) error
}

// Notifier shows a short-lived message. A zero duration means the
// notifier's default.
type Notifier interface {
	Notify(msg string, d time.Duration)
}

// AfterFunc schedules fn to run after d and delivers its message.
type AfterFunc func(d time.Duration, fn func() tea.Msg) tea.Cmd

// Options configures a Console. Nil collaborators are replaced by no-ops.
type Options struct {
	Owner      string
	Version    string
	WeatherURL string
	Directory  links.Directory

	// Engines and Engine pick where search sends queries. Defaults to
	// the built-in engines.
	Engines links.Engines
	Engine  string

	CRT   Toggle
	Theme Toggle
	Music Toggle

	Opener   Opener
	Notifier Notifier

	Now   func() time.Time
	After AfterFunc
}

// DefaultWeatherURL is used when Options.WeatherURL is empty.
const DefaultWeatherURL = "https://wttr.in/?format=3"

// Console owns the scrollback, the history, the input line and the link
// index. It is not safe for concurrent use; Bubble Tea drives it from a
// single goroutine.
type Console struct {
	opts    Options
	dir     links.Directory
	index   *links.Index
	buf     Buffer
	history *History
	input   string
	engine  string

	pending map[int]Line
	nextID  int
	closed  bool
}

// New builds a console. The link index is built once here.
func New(opts Options) *Console {
	if opts.Owner == "" {
		opts.Owner = "Operator"
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.WeatherURL == "" {
		opts.WeatherURL = DefaultWeatherURL
	}
	if len(opts.Engines) == 0 {
		opts.Engines = links.DefaultEngines()
	}
	if opts.CRT == nil {
		opts.CRT = &flag{on: "ON", off: "OFF"}
	}
	if opts.Theme == nil {
		opts.Theme = &flag{on: "sepia", off: "dark"}
	}
	if opts.Music == nil {
		opts.Music = &flag{on: "playing", off: "paused"}
	}
	if opts.Opener == nil {
		opts.Opener = nopOpener{}
	}
	if opts.Notifier == nil {
		opts.Notifier = nopNotifier{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.After == nil {
		opts.After = tickAfter
	}

	return &Console{
		opts:    opts,
		engine:  activeEngine(opts.Engines, opts.Engine),
		dir:     opts.Directory,
		index:   links.NewIndex(opts.Directory),
		history: NewHistory(),
		pending: make(map[int]Line),
	}
}

// Lines returns the scrollback contents.
func (c *Console) Lines() []Line {
	return c.buf.Lines()
}

// History returns the submitted-line history.
func (c *Console) History() *History {
	return c.history
}

// Index returns the link index.
func (c *Console) Index() *links.Index {
	return c.index
}

// Input returns the current input line content.
func (c *Console) Input() string {
	return c.input
}

// Engine returns the active search engine name.
func (c *Console) Engine() string {
	return c.engine
}

// SetInput replaces the input line content.
func (c *Console) SetInput(s string) {
	c.input = s
}

// Submit runs one line of input. Blank input is ignored. The returned
// command carries any deferred output and may be nil.
func (c *Console) Submit(raw string) tea.Cmd {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	c.history.Push(trimmed)
	c.input = ""
	c.line("❯  "+trimmed, StylePrompt)

	name, args := splitCommand(trimmed)
	kind, ok := lookup(name)
	if !ok {
		c.line("  command not found: "+name+". Type  help  for commands.", StyleError)
		c.blank()
		return nil
	}
	return c.run(kind, args)
}

// RecallPrevious loads the next older history entry into the input.
func (c *Console) RecallPrevious() {
	if s, ok := c.history.Prev(); ok {
		c.input = s
	}
}

// RecallNext loads the next newer history entry, or clears the input once
// the newest entry is passed.
func (c *Console) RecallNext() {
	c.input = c.history.Next()
}

// Autocomplete returns the first command name starting with partial, then
// the first link key. It reports false when nothing matches.
func (c *Console) Autocomplete(partial string) (string, bool) {
	p := strings.ToLower(strings.TrimSpace(partial))
	if p == "" {
		return "", false
	}
	for _, e := range table {
		if strings.HasPrefix(e.name, p) {
			return e.name, true
		}
	}
	return c.index.Complete(p)
}

// Clear empties the scrollback and cancels deferred output.
func (c *Console) Clear() {
	c.buf.Clear()
	c.cancelPending()
}

// Close cancels deferred output. Messages delivered after Close are dropped.
func (c *Console) Close() {
	c.cancelPending()
	c.closed = true
}

// PrintBanner writes the boot banner.
func (c *Console) PrintBanner() {
	for _, l := range banner {
		c.line(l, StyleBanner)
	}
	c.line("  RETRO://TERMINAL  "+c.opts.Version+"  —  Your Personal Portal", StyleInfo)
	c.line("", StyleMuted)
	c.line("  Type  help  for available commands.", StyleMuted)
	c.blank()
}

func (c *Console) line(text string, style Style) {
	c.buf.Append(text, style)
}

func (c *Console) blank() {
	c.buf.Append("", StyleOutput)
}

// open hands url to the opener. Reporting a failure is the opener's job.
func (c *Console) open(url string) error {
	return c.opts.Opener.Open(url)
}

// activeEngine resolves the starting engine: the requested one if known,
// then the default, then the first by name.
func activeEngine(e links.Engines, want string) string {
	if e.Has(want) {
		return strings.ToLower(want)
	}
	if e.Has(links.DefaultEngine) {
		return links.DefaultEngine
	}
	if names := e.Names(); len(names) > 0 {
		return names[0]
	}
	return ""
}

// splitCommand splits on the first whitespace run. args is "" when absent.
func splitCommand(s string) (name, args string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

var banner = []string{
	"  ██████╗ ███████╗████████╗██████╗  ██████╗ ",
	"  ██╔══██╗██╔════╝╚══██╔══╝██╔══██╗██╔═══██╗",
	"  ██████╔╝█████╗     ██║   ██████╔╝██║   ██║",
	"  ██╔══██╗██╔══╝     ██║   ██╔══██╗██║   ██║",
	"  ██║  ██║███████╗   ██║   ██║  ██║╚██████╔╝",
	"  ╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝ ",
}

// flag is the stand-in collaborator used when none is supplied.
type flag struct {
	on, off string
	state   bool
}

func (f *flag) Toggle() string {
	f.state = !f.state
	if f.state {
		return f.on
	}
	return f.off
}

type nopOpener struct{}

func (nopOpener) Open(string) error { return nil }

type nopNotifier struct{}

func (nopNotifier) Notify(string, time.Duration) {}
