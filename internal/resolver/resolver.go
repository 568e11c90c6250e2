// Package resolver maps a user supplied token to a bookmark.
//
// A token is either a bookmark name, an alias, or a label previously rendered
// by Label (as shown in the interactive picker).
package resolver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nikbrunner/bo/internal/model"
)

// labelSuffix matches the part Label appends after the name. It is anchored at
// the end of the string and requires an http URL and the "(in <browser>)" tail,
// so a plain name containing ": " is left alone.
var labelSuffix = regexp.MustCompile(`:\shttp.+\s\(in\s[^()\s][^()]*\)$`)

// NotFoundError is returned when a token matches neither a bookmark nor an alias
// pointing at an existing bookmark.
type NotFoundError struct {
	Token string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("bookmark not found: %s", e.Token)
}

// Label renders the picker line for a bookmark.
func Label(name string, b model.Bookmark, defaultBrowser string) string {
	return fmt.Sprintf("%s: %s (in %s)", name, b.URL, b.EffectiveBrowser(defaultBrowser))
}

// StripLabel removes a rendered label suffix and surrounding whitespace.
func StripLabel(token string) string {
	return strings.TrimSpace(labelSuffix.ReplaceAllLiteralString(token, ""))
}

// Resolve finds the bookmark for token. Direct names win over aliases.
func Resolve(cfg *model.Config, token string) (model.Bookmark, error) {
	name := StripLabel(token)

	if b, ok := cfg.Bookmark(name); ok {
		return b, nil
	}
	if target, ok := cfg.Alias(name); ok {
		if b, ok := cfg.Bookmark(target); ok {
			return b, nil
		}
	}
	return model.Bookmark{}, &NotFoundError{Token: token}
}
