// Package picker lets the user choose a bookmark interactively and opens it.
package picker

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/nikbrunner/bo/internal/launcher"
	"github.com/nikbrunner/bo/internal/model"
	"github.com/nikbrunner/bo/internal/resolver"
)

// Selector asks the user to choose one of items. ok is false when the user
// aborted or nothing was chosen.
type Selector interface {
	Select(items []Item) (item Item, ok bool, err error)
}

// TeaSelector runs the Picker as a bubbletea program.
type TeaSelector struct {
	In  io.Reader
	Out io.Writer // the picker is drawn here; keep it off stdout
}

// Select implements Selector.
func (s TeaSelector) Select(items []Item) (Item, bool, error) {
	var opts []tea.ProgramOption
	if s.In != nil {
		opts = append(opts, tea.WithInput(s.In))
	}
	if s.Out != nil {
		opts = append(opts, tea.WithOutput(s.Out))
	}

	finalModel, err := tea.NewProgram(New(items), opts...).Run()
	if err != nil {
		return Item{}, false, err
	}

	item, ok := finalModel.(Picker).Selected()
	return item, ok, nil
}

// Items builds one picker item per bookmark, in config order.
func Items(cfg *model.Config) []Item {
	names := cfg.Names()
	items := make([]Item, 0, len(names))
	for _, name := range names {
		items = append(items, Item{
			Label: resolver.Label(name, cfg.Bookmarks[name], cfg.DefaultBrowser),
			Name:  name,
		})
	}
	return items
}

// PickAndOpen shows every bookmark in the selector and opens the chosen one.
// Aborting, or a config without bookmarks, is not an error.
func PickAndOpen(cfg *model.Config, selector Selector, engine *launcher.Engine, log zerolog.Logger) error {
	items := Items(cfg)
	if len(items) == 0 {
		log.Info().Msg("no bookmarks to pick from")
		return nil
	}

	item, ok, err := selector.Select(items)
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	if !ok {
		log.Debug().Msg("nothing selected")
		return nil
	}

	b, err := resolver.Resolve(cfg, item.Label)
	var nf *resolver.NotFoundError
	if errors.As(err, &nf) && item.Name != "" {
		// Labels of non-http URLs keep their tail, so fall back to the name.
		log.Debug().Str("label", item.Label).Msg("label did not resolve, using item name")
		b, err = resolver.Resolve(cfg, item.Name)
	}
	if err != nil {
		return err
	}
	return engine.Open(b, cfg.DefaultBrowser)
}
