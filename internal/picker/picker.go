package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nikbrunner/bo/internal/search"
)

const defaultMaxVisible = 10

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Underline(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Item is a selectable line. Name is carried along for callers that want the
// bookmark name without parsing Label.
type Item struct {
	Label string
	Name  string
}

// Picker is a small TUI for choosing one item with a fuzzy filter.
type Picker struct {
	items      []Item
	labels     []string
	results    []search.Result
	filter     textinput.Model
	keys       KeyMap
	cursor     int
	offset     int
	maxVisible int
	selected   bool
	cancelled  bool
}

// New creates a new Picker over items, showing all of them.
func New(items []Item) Picker {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}

	filter := textinput.New()
	filter.Prompt = "> "
	filter.Placeholder = "filter bookmarks"
	filter.Focus()

	return Picker{
		items:      items,
		labels:     labels,
		results:    search.Filter(labels, ""),
		filter:     filter,
		keys:       DefaultKeyMap(),
		maxVisible: defaultMaxVisible,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Leave room for the prompt, the footer and a blank line.
		p.maxVisible = min(defaultMaxVisible, max(1, msg.Height-4))
		p.scroll()
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Cancel):
			p.cancelled = true
			return p, tea.Quit

		case key.Matches(msg, p.keys.Select):
			p.selected = true
			return p, tea.Quit

		case key.Matches(msg, p.keys.Down):
			if p.cursor < len(p.results)-1 {
				p.cursor++
			}
			p.scroll()
			return p, nil

		case key.Matches(msg, p.keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
			p.scroll()
			return p, nil
		}
	}

	var cmd tea.Cmd
	before := p.filter.Value()
	p.filter, cmd = p.filter.Update(msg)
	if p.filter.Value() != before {
		p.results = search.Filter(p.labels, p.filter.Value())
		p.cursor = 0
		p.offset = 0
	}
	return p, cmd
}

// scroll keeps the cursor inside the visible window.
func (p *Picker) scroll() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.maxVisible {
		p.offset = p.cursor - p.maxVisible + 1
	}
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(p.filter.View())
	b.WriteString("\n")

	end := min(p.offset+p.maxVisible, len(p.results))
	for i := p.offset; i < end; i++ {
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}
		b.WriteString(cursor)
		b.WriteString(highlight(p.results[i], style))
		b.WriteString("\n")
	}

	if len(p.results) == 0 {
		b.WriteString(hintStyle.Render("  no matches"))
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render(fmt.Sprintf("%d/%d  ↑/↓: move  Enter: open  Esc: cancel", len(p.results), len(p.items))))

	return b.String()
}

// highlight renders the result text with matched characters emphasized.
func highlight(r search.Result, style lipgloss.Style) string {
	if len(r.MatchedIndexes) == 0 {
		return style.Render(r.Text)
	}

	matched := make(map[int]bool, len(r.MatchedIndexes))
	for _, idx := range r.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder
	for i, ch := range r.Text {
		if matched[i] {
			b.WriteString(matchStyle.Render(string(ch)))
		} else {
			b.WriteString(style.Render(string(ch)))
		}
	}
	return b.String()
}

// Selected returns the chosen item. ok is false if the user cancelled or
// confirmed while nothing matched.
func (p Picker) Selected() (item Item, ok bool) {
	if p.cancelled || !p.selected {
		return Item{}, false
	}
	if p.cursor < len(p.results) {
		return p.items[p.results[p.cursor].Index], true
	}
	return Item{}, false
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
