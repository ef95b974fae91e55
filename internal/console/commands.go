package console

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// Kind identifies a built-in command.
type Kind int

const (
	KindHelp Kind = iota
	KindLs
	KindOpen
	KindFind
	KindSearch
	KindEngine
	KindDate
	KindWeather
	KindCRT
	KindTheme
	KindMusic
	KindAbout
	KindWhoami
	KindClear
	KindHello
	KindMatrix
	KindHack

	numKinds
)

// Kinds returns every command kind.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

type entry struct {
	name string
	kind Kind
}

// table is the name lookup in completion order. Aliases share a kind.
var table = []entry{
	{"help", KindHelp},
	{"ls", KindLs},
	{"open", KindOpen},
	{"find", KindFind},
	{"search", KindSearch},
	{"engine", KindEngine},
	{"date", KindDate},
	{"weather", KindWeather},
	{"crt", KindCRT},
	{"theme", KindTheme},
	{"music", KindMusic},
	{"about", KindAbout},
	{"whoami", KindWhoami},
	{"clear", KindClear},
	{"cls", KindClear},
	{"hello", KindHello},
	{"hi", KindHello},
	{"matrix", KindMatrix},
	{"hack", KindHack},
}

// usage is the help text per kind. Easter eggs are left out on purpose.
var usage = map[Kind][2]string{
	KindHelp:    {"help", "Show this help message"},
	KindLs:      {"ls", "List all quick-links"},
	KindOpen:    {"open <name>", "Open a link by name or shortcut"},
	KindFind:    {"find <query>", "Search links by keyword"},
	KindSearch:  {"search <q>", "Search the web"},
	KindEngine:  {"engine [name]", "Show or switch search engine"},
	KindDate:    {"date", "Show current date & time"},
	KindWeather: {"weather", "Open weather in browser"},
	KindCRT:     {"crt", "Toggle CRT scanlines"},
	KindTheme:   {"theme", "Toggle sepia / dark mode"},
	KindMusic:   {"music", "Toggle background music"},
	KindAbout:   {"about", "About this portal"},
	KindClear:   {"clear  /  cls", "Clear terminal"},
	KindWhoami:  {"whoami", "Who you are"},
}

// helpOrder is the row order of the help block.
var helpOrder = []Kind{
	KindHelp, KindLs, KindOpen, KindFind, KindSearch, KindEngine, KindDate, KindWeather,
	KindCRT, KindTheme, KindMusic, KindAbout, KindClear, KindWhoami,
}

// Names returns the command names, aliases included, in completion order.
func Names() []string {
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.name
	}
	return out
}

func lookup(name string) (Kind, bool) {
	name = strings.ToLower(name)
	for _, e := range table {
		if e.name == name {
			return e.kind, true
		}
	}
	return 0, false
}

func (k Kind) String() string {
	for _, e := range table {
		if e.kind == k {
			return e.name
		}
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

const (
	boxWidth   = 48
	hackDelay1 = 600 * time.Millisecond
	hackDelay2 = 800 * time.Millisecond
)

func (c *Console) run(k Kind, args string) tea.Cmd {
	switch k {
	case KindHelp:
		c.help()
	case KindLs:
		c.ls()
	case KindOpen:
		c.openLink(args)
	case KindFind:
		c.find(args)
	case KindSearch:
		c.search(args)
	case KindEngine:
		c.switchEngine(args)
	case KindDate:
		c.date()
	case KindWeather:
		c.line("  Opening weather...", StyleSuccess)
		c.open(c.opts.WeatherURL)
		c.blank()
	case KindCRT:
		state := c.opts.CRT.Toggle()
		c.line("  CRT scanlines "+strings.ToUpper(state)+".", StyleInfo)
		c.blank()
	case KindTheme:
		theme := c.opts.Theme.Toggle()
		c.line("  Theme switched to: "+strings.ToUpper(theme), StyleInfo)
		c.blank()
	case KindMusic:
		c.opts.Music.Toggle()
		c.blank()
	case KindAbout:
		c.about()
	case KindWhoami:
		c.blank()
		c.line("  "+c.opts.Owner+" — Vintage portal operator", StyleSuccess)
		c.line("  You are seen. You are known. You are retro.", StyleMuted)
		c.blank()
	case KindClear:
		c.Clear()
	case KindHello:
		c.blank()
		c.line("  Hey there, traveller. 👋", StyleSuccess)
		c.blank()
	case KindMatrix:
		c.blank()
		c.line("  There is no spoon.", StyleInfo)
		c.line("  (But there are links. Use  ls  to see them.)", StyleMuted)
		c.blank()
	case KindHack:
		c.blank()
		c.line("  Initiating hack sequence...", StyleError)
		return tea.Batch(
			c.Schedule(hackDelay1, Line{Text: "  Just kidding. This is a start page, not Mr. Robot.", Style: StyleMuted}),
			c.Schedule(hackDelay2, Line{Style: StyleOutput}),
		)
	default:
		c.line(fmt.Sprintf("  %s has no handler.", k), StyleError)
	}
	return nil
}

func (c *Console) help() {
	c.blank()
	c.line("  ┌─── AVAILABLE COMMANDS "+strings.Repeat("─", boxWidth-23)+"┐", StyleInfo)
	for _, k := range helpOrder {
		u := usage[k]
		row := "  " + runewidth.FillRight(u[0], 14) + u[1]
		c.line(boxRow(row), StyleMuted)
	}
	c.line(boxBottom(), StyleInfo)
	c.blank()
}

func (c *Console) ls() {
	c.blank()
	c.line("  QUICK-LINKS INDEX:", StyleInfo)
	for _, cat := range c.dir {
		c.line("  /"+strings.ToLower(cat.Name)+"/", StyleInfo)
		for _, item := range cat.Items {
			badge := ""
			if item.Shortcut != "" {
				badge = " [" + item.Shortcut + "]"
			}
			c.line("    · "+item.Label+badge+"  →  "+item.Key(), StyleMuted)
		}
	}
	c.blank()
}

func (c *Console) openLink(args string) {
	if args == "" {
		c.line("  Usage: open <link-name>", StyleError)
		return
	}
	m, ok := c.index.Lookup(args)
	if !ok {
		c.line(`  Not found: "`+args+`". Try  ls  to list all links.`, StyleError)
		c.blank()
		return
	}
	if m.Exact {
		c.line("  Opening "+args+"...", StyleSuccess)
		c.blank()
		// A failed open is reported by the opener; keep its message up.
		if err := c.open(m.URL); err == nil {
			c.opts.Notifier.Notify("→ "+args, 0)
		}
		return
	}
	c.line("  Opening "+m.Key+"...", StyleSuccess)
	c.blank()
	c.open(m.URL)
}

func (c *Console) find(args string) {
	if args == "" {
		c.line("  Usage: find <query>", StyleError)
		return
	}
	hits := c.dir.Find(args)
	c.blank()
	if len(hits) == 0 {
		c.line(`  No links matched "`+args+`".`, StyleError)
	} else {
		c.line(fmt.Sprintf("  Found %d result(s):", len(hits)), StyleInfo)
		for _, h := range hits {
			c.line("    · ["+h.Category+"]  "+h.Entry.Label+"  →  "+h.Entry.URL, StyleMuted)
		}
	}
	c.blank()
}

func (c *Console) search(args string) {
	if args == "" {
		c.line("  Usage: search <query>", StyleError)
		return
	}
	u, ok := c.opts.Engines.SearchURL(c.engine, args)
	if !ok {
		c.line("  No search engine configured.", StyleError)
		c.blank()
		return
	}
	c.line("  Searching "+c.engine+` for "`+args+`"...`, StyleSuccess)
	c.blank()
	c.open(u)
}

// switchEngine lists the engines, or selects one when a name is given.
func (c *Console) switchEngine(args string) {
	c.blank()
	if args == "" {
		c.line("  SEARCH ENGINES:", StyleInfo)
		for _, name := range c.opts.Engines.Names() {
			mark := ""
			if name == c.engine {
				mark = "  (active)"
			}
			c.line("    · "+name+mark, StyleMuted)
		}
		c.blank()
		return
	}
	name := strings.ToLower(args)
	if !c.opts.Engines.Has(name) {
		c.line("  Unknown engine: "+args+". Available: "+strings.Join(c.opts.Engines.Names(), ", "), StyleError)
		c.blank()
		return
	}
	c.engine = name
	c.line("  Search engine: "+strings.ToUpper(name), StyleInfo)
	c.opts.Notifier.Notify("⌕ "+strings.ToUpper(name), 0)
	c.blank()
}

func (c *Console) date() {
	now := c.opts.Now()
	c.blank()
	c.line("  Date  : "+now.Format("Mon Jan 02 2006"), StyleInfo)
	c.line("  Time  : "+now.Format("3:04:05 PM"), StyleInfo)
	c.line("  Unix  : "+strconv.FormatInt(now.Unix(), 10), StyleMuted)
	c.blank()
}

func (c *Console) about() {
	year := strconv.Itoa(c.opts.Now().Year())
	c.blank()
	c.line("  ┌"+strings.Repeat("─", boxWidth)+"┐", StyleInfo)
	c.line(boxRow("  RETRO://DAILY — Personal Start Page"), StyleBanner)
	c.line(boxRow("  Owner : "+c.opts.Owner), StyleMuted)
	c.line(boxRow("  Stack : Go + Bubble Tea + Lip Gloss"), StyleMuted)
	c.line(boxRow("  Theme : Modern Vintage (Dark Sepia)"), StyleMuted)
	c.line(boxRow("  Year  : "+year), StyleMuted)
	c.line(boxBottom(), StyleInfo)
	c.blank()
}

// boxRow pads or cuts content to the box's inner width.
func boxRow(content string) string {
	content = runewidth.Truncate(content, boxWidth, "…")
	return "  │" + runewidth.FillRight(content, boxWidth) + "│"
}

func boxBottom() string {
	return "  └" + strings.Repeat("─", boxWidth) + "┘"
}
