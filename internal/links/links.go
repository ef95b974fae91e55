// Package links holds the static link directory and the lookup index
// derived from it.
package links

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Entry is a single bookmark.
type Entry struct {
	Label    string `yaml:"label" toml:"label"`
	URL      string `yaml:"url" toml:"url"`
	Shortcut string `yaml:"shortcut,omitempty" toml:"shortcut,omitempty"` // Optional single character
}

// Key returns the normalized lookup key for the entry.
func (e Entry) Key() string {
	return Normalize(e.Label)
}

// Category is a named, ordered group of entries.
type Category struct {
	Name  string  `yaml:"category" toml:"category"`
	Icon  string  `yaml:"icon,omitempty" toml:"icon,omitempty"`
	Items []Entry `yaml:"items" toml:"items"`
}

// Directory is the ordered list of categories. It is never mutated after load.
type Directory []Category

// Hit is a find result.
type Hit struct {
	Category string
	Entry    Entry
}

// Normalize lowercases s and strips every whitespace rune.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Default returns the built-in directory used when the config has no links.
func Default() Directory {
	return Directory{
		{
			Name: "SOCIAL",
			Icon: "◈",
			Items: []Entry{
				{Label: "Instagram", URL: "https://instagram.com", Shortcut: "I"},
				{Label: "Twitter / X", URL: "https://x.com"},
				{Label: "WhatsApp Web", URL: "https://web.whatsapp.com", Shortcut: "W"},
				{Label: "YouTube", URL: "https://youtube.com", Shortcut: "U"},
			},
		},
		{
			Name: "MUSIC",
			Icon: "♫",
			Items: []Entry{
				{Label: "Spotify", URL: "https://open.spotify.com", Shortcut: "S"},
				{Label: "Playlist 01", URL: "https://open.spotify.com/playlist/37i9dQZF1DX688wU47emR9/", Shortcut: "P"},
				{Label: "Playlist 02", URL: "https://open.spotify.com/playlist/"},
				{Label: "SoundCloud", URL: "https://soundcloud.com"},
			},
		},
		{
			Name: "WORK",
			Icon: "▸",
			Items: []Entry{
				{Label: "Gmail", URL: "https://mail.google.com", Shortcut: "M"},
				{Label: "GitHub", URL: "https://github.com", Shortcut: "G"},
				{Label: "LinkedIn", URL: "https://linkedin.com", Shortcut: "L"},
				{Label: "Notion", URL: "https://notion.so", Shortcut: "N"},
			},
		},
		{
			Name: "PROJECTS",
			Icon: "◉",
			Items: []Entry{
				{Label: "DDS", URL: "#", Shortcut: "D"},
				{Label: "Personal Projects", URL: "#", Shortcut: "P"},
				{Label: "College Portal", URL: "#", Shortcut: "C"},
			},
		},
	}
}

// Validate checks that every entry has a label and url and that shortcuts
// are at most one character.
func (d Directory) Validate() error {
	for _, cat := range d {
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("category with %d items has no name", len(cat.Items))
		}
		for i, item := range cat.Items {
			if strings.TrimSpace(item.Label) == "" {
				return fmt.Errorf("%s: item %d has no label", cat.Name, i+1)
			}
			if Normalize(item.Label) == "" {
				return fmt.Errorf("%s: label %q is only whitespace", cat.Name, item.Label)
			}
			if strings.TrimSpace(item.URL) == "" {
				return fmt.Errorf("%s/%s: url is empty", cat.Name, item.Label)
			}
			if utf8.RuneCountInString(item.Shortcut) > 1 {
				return fmt.Errorf("%s/%s: shortcut %q must be a single character", cat.Name, item.Label, item.Shortcut)
			}
		}
	}
	return nil
}

// Len returns the total number of entries across all categories.
func (d Directory) Len() int {
	n := 0
	for _, cat := range d {
		n += len(cat.Items)
	}
	return n
}

// Find returns every entry whose label or category name contains query,
// case-insensitively, in directory order.
func (d Directory) Find(query string) []Hit {
	q := strings.ToLower(query)
	var hits []Hit
	for _, cat := range d {
		catMatch := strings.Contains(strings.ToLower(cat.Name), q)
		for _, item := range cat.Items {
			if catMatch || strings.Contains(strings.ToLower(item.Label), q) {
				hits = append(hits, Hit{Category: cat.Name, Entry: item})
			}
		}
	}
	return hits
}
