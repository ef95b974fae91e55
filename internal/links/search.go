package links

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// DefaultEngine is the engine selected when the config names none.
const DefaultEngine = "google"

// Engines maps an engine name to the url prefix a query is appended to.
type Engines map[string]string

// DefaultEngines returns the built-in search engines.
func DefaultEngines() Engines {
	return Engines{
		"google":     "https://www.google.com/search?q=",
		"duckduckgo": "https://duckduckgo.com/?q=",
	}
}

// Names returns the engine names, sorted.
func (e Engines) Names() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is a known engine. Names are case-insensitive.
func (e Engines) Has(name string) bool {
	_, ok := e[strings.ToLower(name)]
	return ok
}

// SearchURL builds the url for query on engine. The query is escaped the
// way a browser's encodeURIComponent would, so spaces become %20.
func (e Engines) SearchURL(engine, query string) (string, bool) {
	base, ok := e[strings.ToLower(engine)]
	if !ok {
		return "", false
	}
	q := strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
	return base + q, true
}

// Validate reports engines with an empty name or url prefix.
func (e Engines) Validate() error {
	for _, name := range e.Names() {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("search engine with empty name")
		}
		if name != strings.ToLower(name) {
			return fmt.Errorf("search engine %q: name must be lowercase", name)
		}
		if strings.TrimSpace(e[name]) == "" {
			return fmt.Errorf("search engine %q: url is required", name)
		}
	}
	return nil
}
