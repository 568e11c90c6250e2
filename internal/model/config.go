package model

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	ErrEmptyName        = errors.New("name must not be empty")
	ErrEmptyURL         = errors.New("url must not be empty")
	ErrNoDefaultBrowser = errors.New("default_browser must not be empty")
	ErrNoBookmarks      = errors.New("missing [bookmarks] table")
)

// Config holds the bookmark set read from the config file.
type Config struct {
	DefaultBrowser string              `toml:"default_browser"`
	Aliases        map[string]string   `toml:"aliases,omitempty"`
	Bookmarks      map[string]Bookmark `toml:"bookmarks"`
}

// NewConfig creates an empty Config with initialized maps.
func NewConfig(defaultBrowser string) *Config {
	return &Config{
		DefaultBrowser: defaultBrowser,
		Aliases:        map[string]string{},
		Bookmarks:      map[string]Bookmark{},
	}
}

// Validate checks the fields that must always be present.
func (c *Config) Validate() error {
	if c.DefaultBrowser == "" {
		return ErrNoDefaultBrowser
	}
	return nil
}

// Names returns bookmark names in iteration order (ascending).
func (c *Config) Names() []string {
	return slices.Sorted(maps.Keys(c.Bookmarks))
}

// AliasNames returns alias names in iteration order (ascending).
func (c *Config) AliasNames() []string {
	return slices.Sorted(maps.Keys(c.Aliases))
}

// Bookmark looks up a bookmark by its exact name.
func (c *Config) Bookmark(name string) (Bookmark, bool) {
	b, ok := c.Bookmarks[name]
	return b, ok
}

// Alias returns the bookmark name an alias points to.
func (c *Config) Alias(alias string) (string, bool) {
	target, ok := c.Aliases[alias]
	return target, ok
}

// HasBookmarkURL checks if a bookmark with the given URL exists.
func (c *Config) HasBookmarkURL(url string) bool {
	for _, b := range c.Bookmarks {
		if b.URL == url {
			return true
		}
	}
	return false
}

// AddBookmark adds a new bookmark. Names are shared between bookmarks and
// aliases, so a name that is already taken by either is rejected.
func (c *Config) AddBookmark(name string, b Bookmark) error {
	if name == "" {
		return ErrEmptyName
	}
	if b.URL == "" {
		return ErrEmptyURL
	}
	if err := c.checkFree(name); err != nil {
		return err
	}
	if c.Bookmarks == nil {
		c.Bookmarks = map[string]Bookmark{}
	}
	c.Bookmarks[name] = b
	return nil
}

// AddAlias adds alias pointing at an existing bookmark.
func (c *Config) AddAlias(alias, target string) error {
	if alias == "" {
		return ErrEmptyName
	}
	if err := c.checkFree(alias); err != nil {
		return err
	}
	if _, ok := c.Bookmarks[target]; !ok {
		return fmt.Errorf("alias %q: bookmark %q does not exist", alias, target)
	}
	if c.Aliases == nil {
		c.Aliases = map[string]string{}
	}
	c.Aliases[alias] = target
	return nil
}

// NamedBookmark pairs a bookmark with the name it should be stored under.
type NamedBookmark struct {
	Name     string
	Bookmark Bookmark
}

// ImportMerge adds bookmarks from an import, skipping URLs that already exist.
// Names that are taken get a numeric suffix.
// Returns the number of bookmarks added and skipped.
func (c *Config) ImportMerge(imported []NamedBookmark) (added, skipped int) {
	if c.Bookmarks == nil {
		c.Bookmarks = map[string]Bookmark{}
	}
	for _, nb := range imported {
		if nb.Bookmark.URL == "" || c.HasBookmarkURL(nb.Bookmark.URL) {
			skipped++
			continue
		}
		c.Bookmarks[c.freeName(nb.Name)] = nb.Bookmark
		added++
	}
	return added, skipped
}

func (c *Config) checkFree(name string) error {
	if _, ok := c.Bookmarks[name]; ok {
		return fmt.Errorf("bookmark %q already exists", name)
	}
	if _, ok := c.Aliases[name]; ok {
		return fmt.Errorf("alias %q already exists", name)
	}
	return nil
}

// freeName returns name, or name-2, name-3... whichever is not taken yet.
func (c *Config) freeName(name string) string {
	if name == "" {
		name = "bookmark"
	}
	candidate := name
	for i := 2; c.checkFree(candidate) != nil; i++ {
		candidate = fmt.Sprintf("%s-%d", name, i)
	}
	return candidate
}
