// Package picker provides the interactive single-choice prompt used when a
// command is missing an identifier.
package picker

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovh/ovhdata-cli/internal/adapters/driving/tui/components/input"
	"github.com/ovh/ovhdata-cli/internal/adapters/driving/tui/keymap"
	"github.com/ovh/ovhdata-cli/internal/adapters/driving/tui/styles"
	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

const defaultPageSize = 10

// Item is a single choice.
type Item struct {
	Label  string
	Detail string
}

func (i Item) matches(filter string) bool {
	if filter == "" {
		return true
	}
	filter = strings.ToLower(filter)
	return strings.Contains(strings.ToLower(i.Label), filter) ||
		strings.Contains(strings.ToLower(i.Detail), filter)
}

// Model is the bubbletea model behind the picker.
type Model struct {
	styles  *styles.Styles
	keys    *keymap.KeyMap
	title   string
	items   []Item
	filter  *input.FilterInput
	visible []int
	cursor  int
	offset  int
	page    int

	chosen   int
	canceled bool
}

// New creates a picker over items. The cursor starts on index start when it
// is in range.
func New(title string, items []Item, start int, s *styles.Styles) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}

	m := &Model{
		styles: s,
		keys:   keymap.DefaultKeyMap(),
		title:  title,
		items:  items,
		filter: input.NewFilterInput(s),
		page:   defaultPageSize,
		chosen: -1,
	}
	m.refilter()
	if start > 0 && start < len(items) {
		m.cursor = start
		m.scroll()
	}
	return m
}

// Init starts the filter cursor blink.
func (m *Model) Init() tea.Cmd {
	return m.filter.Init()
}

// Update handles key presses and window resizes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.page = max(3, min(defaultPageSize, msg.Height-4))
		m.filter.SetWidth(msg.Width)
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		k := msg.String()
		switch {
		case keymap.Matches(k, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit

		case keymap.Matches(k, m.keys.Select):
			if len(m.visible) == 0 {
				return m, nil
			}
			m.chosen = m.visible[m.cursor]
			return m, tea.Quit

		case keymap.Matches(k, m.keys.Up):
			m.move(-1)
			return m, nil

		case keymap.Matches(k, m.keys.Down):
			m.move(1)
			return m, nil

		case keymap.Matches(k, m.keys.PageUp):
			m.move(-m.page)
			return m, nil

		case keymap.Matches(k, m.keys.PageDown):
			m.move(m.page)
			return m, nil

		case keymap.Matches(k, m.keys.ClearFilter):
			m.filter.Reset()
			m.refilter()
			return m, nil
		}
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.refilter()
	}
	return m, cmd
}

func (m *Model) move(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.cursor = max(0, min(len(m.visible)-1, m.cursor+delta))
	m.scroll()
}

func (m *Model) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.page {
		m.offset = m.cursor - m.page + 1
	}
}

func (m *Model) refilter() {
	value := m.filter.Value()
	m.visible = m.visible[:0]
	for i, item := range m.items {
		if item.matches(value) {
			m.visible = append(m.visible, i)
		}
	}
	m.cursor = 0
	m.offset = 0
}

// View renders the picker.
func (m *Model) View() string {
	if m.chosen >= 0 {
		return fmt.Sprintf("%s %s\n", m.styles.Title.Render(m.title), m.items[m.chosen].Label)
	}
	if m.canceled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("? " + m.title))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n")

	if len(m.visible) == 0 {
		b.WriteString(m.styles.Muted.Render("  no match"))
		b.WriteString("\n")
	}

	end := min(len(m.visible), m.offset+m.page)
	for row := m.offset; row < end; row++ {
		item := m.items[m.visible[row]]
		label := m.styles.Normal.Render(item.Label)
		cursor := "  "
		if row == m.cursor {
			cursor = "> "
			label = m.styles.Selected.Render(item.Label)
		}
		b.WriteString(cursor + label)
		if item.Detail != "" {
			b.WriteString("  " + m.styles.Muted.Render(item.Detail))
		}
		b.WriteString("\n")
	}

	help := make([]string, 0, len(m.keys.ShortHelp()))
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(m.styles.Help.Render(strings.Join(help, "  ")))
	b.WriteString("\n")

	return b.String()
}

// Chosen returns the index of the selected item in the original list.
func (m *Model) Chosen() (int, bool) {
	return m.chosen, m.chosen >= 0
}

// Canceled reports whether the user aborted the prompt.
func (m *Model) Canceled() bool {
	return m.canceled
}

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	in     io.Reader
	out    io.Writer
	styles *styles.Styles
	start  int
}

// WithInput reads keys from r instead of stdin.
func WithInput(r io.Reader) Option {
	return func(c *runConfig) { c.in = r }
}

// WithOutput renders to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(c *runConfig) { c.out = w }
}

// WithStyles sets the styles used to render.
func WithStyles(s *styles.Styles) Option {
	return func(c *runConfig) { c.styles = s }
}

// WithStart places the cursor on index i.
func WithStart(i int) Option {
	return func(c *runConfig) { c.start = i }
}

// Run shows the picker and returns the chosen index.
// Returns domain.ErrCanceled when the user aborts.
func Run(ctx context.Context, title string, items []Item, opts ...Option) (int, error) {
	if len(items) == 0 {
		return -1, fmt.Errorf("%w: nothing to choose from", domain.ErrNotFound)
	}

	cfg := runConfig{in: os.Stdin, out: os.Stderr}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := New(title, items, cfg.start, cfg.styles)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(cfg.in),
		tea.WithOutput(cfg.out),
	)

	final, err := p.Run()
	if err != nil {
		return -1, fmt.Errorf("run picker: %w", err)
	}

	result, ok := final.(*Model)
	if !ok || result.Canceled() {
		return -1, domain.ErrCanceled
	}
	idx, ok := result.Chosen()
	if !ok {
		return -1, domain.ErrCanceled
	}
	return idx, nil
}
