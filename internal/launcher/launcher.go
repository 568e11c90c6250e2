// Package launcher opens bookmarks: it picks the effective browser, fills in
// query templates and hands the result to an Opener.
package launcher

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nikbrunner/bo/internal/model"
)

// LaunchError wraps a failure of the external opener or editor.
type LaunchError struct {
	Target string // URL or file that was being opened
	Using  string // browser or editor
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("open %s with %s: %v", e.Target, e.Using, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Opener opens url with the named browser.
type Opener interface {
	Open(url, browser string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(url, browser string) error

// Open calls f(url, browser).
func (f OpenerFunc) Open(url, browser string) error {
	return f(url, browser)
}

// Engine opens bookmarks through an Opener.
type Engine struct {
	opener Opener
	log    zerolog.Logger
}

// NewEngine creates an Engine.
func NewEngine(opener Opener, log zerolog.Logger) *Engine {
	return &Engine{opener: opener, log: log}
}

// Open opens the bookmark URL unchanged.
func (e *Engine) Open(b model.Bookmark, defaultBrowser string) error {
	return e.launch(b.URL, b.EffectiveBrowser(defaultBrowser))
}

// SearchOpen substitutes every {query} placeholder with words joined by a
// space. Bookmarks without a placeholder are opened as is and words are dropped.
func (e *Engine) SearchOpen(b model.Bookmark, words []string, defaultBrowser string) error {
	if !b.IsQuery() {
		e.log.Debug().Str("url", b.URL).Strs("words", words).Msg("bookmark has no query placeholder, ignoring words")
		return e.Open(b, defaultBrowser)
	}
	url := strings.ReplaceAll(b.URL, model.QueryPlaceholder, strings.Join(words, " "))
	return e.launch(url, b.EffectiveBrowser(defaultBrowser))
}

func (e *Engine) launch(url, browser string) error {
	e.log.Debug().Str("url", url).Str("browser", browser).Msg("opening")
	if err := e.opener.Open(url, browser); err != nil {
		return &LaunchError{Target: url, Using: browser, Err: err}
	}
	return nil
}
