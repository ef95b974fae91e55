package links

import (
	"strings"
	"unicode/utf8"
)

// Index maps normalized labels to urls and remembers insertion order.
// When two entries normalize to the same key the later url wins, but the
// key keeps the position of its first occurrence.
type Index struct {
	keys []string
	urls map[string]string
}

// Match is the result of an index lookup.
type Match struct {
	Key   string
	URL   string
	Exact bool
}

// NewIndex flattens a directory into an index, category by category.
func NewIndex(d Directory) *Index {
	idx := &Index{urls: make(map[string]string, d.Len())}
	for _, cat := range d {
		for _, item := range cat.Items {
			key := item.Key()
			if key == "" {
				continue
			}
			if _, ok := idx.urls[key]; !ok {
				idx.keys = append(idx.keys, key)
			}
			idx.urls[key] = item.URL
		}
	}
	return idx
}

// Len returns the number of distinct keys.
func (x *Index) Len() int {
	return len(x.keys)
}

// Keys returns the keys in insertion order.
func (x *Index) Keys() []string {
	out := make([]string, len(x.keys))
	copy(out, x.keys)
	return out
}

// URL returns the url stored under an already normalized key.
func (x *Index) URL(key string) (string, bool) {
	u, ok := x.urls[key]
	return u, ok
}

// Lookup normalizes name and resolves it. An exact key wins. Otherwise the
// first key, in insertion order, that contains the name or is contained by
// it is returned; the first-declared link wins a tie.
func (x *Index) Lookup(name string) (Match, bool) {
	key := Normalize(name)
	if key == "" {
		return Match{}, false
	}
	if u, ok := x.urls[key]; ok {
		return Match{Key: key, URL: u, Exact: true}, true
	}
	for _, k := range x.keys {
		if strings.Contains(k, key) || strings.Contains(key, k) {
			return Match{Key: k, URL: x.urls[k]}, true
		}
	}
	return Match{}, false
}

// Complete returns the first key with the given prefix.
func (x *Index) Complete(prefix string) (string, bool) {
	if prefix == "" {
		return "", false
	}
	for _, k := range x.keys {
		if strings.HasPrefix(k, prefix) {
			return k, true
		}
	}
	return "", false
}

// Shortcut is a single-key binding to an entry.
type Shortcut struct {
	Key   rune
	Entry Entry
}

// Shortcuts returns the shortcut bindings, keyed case-insensitively. A key
// bound twice resolves to the last entry but is listed at its first position.
func (d Directory) Shortcuts() []Shortcut {
	var out []Shortcut
	pos := make(map[rune]int)
	for _, cat := range d {
		for _, item := range cat.Items {
			if item.Shortcut == "" {
				continue
			}
			r, _ := utf8.DecodeRuneInString(strings.ToLower(item.Shortcut))
			if i, ok := pos[r]; ok {
				out[i].Entry = item
				continue
			}
			pos[r] = len(out)
			out = append(out, Shortcut{Key: r, Entry: item})
		}
	}
	return out
}

// ByShortcut finds the entry bound to r, case-insensitively.
func (d Directory) ByShortcut(r rune) (Entry, bool) {
	want := strings.ToLower(string(r))
	for _, s := range d.Shortcuts() {
		if string(s.Key) == want {
			return s.Entry, true
		}
	}
	return Entry{}, false
}
