package model

import "strings"

// QueryPlaceholder is replaced by the search words in a bookmark URL.
const QueryPlaceholder = "{query}"

// Bookmark is a named URL with an optional preferred browser.
type Bookmark struct {
	URL     string `toml:"url"`
	Browser string `toml:"browser,omitempty"` // "" = use the default browser
}

// EffectiveBrowser returns the bookmark's browser, or defaultBrowser if unset.
func (b Bookmark) EffectiveBrowser(defaultBrowser string) string {
	if b.Browser != "" {
		return b.Browser
	}
	return defaultBrowser
}

// IsQuery reports whether the URL contains the query placeholder.
func (b Bookmark) IsQuery() bool {
	return strings.Contains(b.URL, QueryPlaceholder)
}
