// Package spinner shows progress while a blocking call runs.
package spinner

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovh/ovhdata-cli/internal/adapters/driving/tui/styles"
)

type doneMsg struct{}

// Model renders a spinner next to a label until the work is done.
type Model struct {
	spinner spinner.Model
	styles  *styles.Styles
	label   string
	done    bool
}

// New creates a spinner model.
func New(label string, s *styles.Styles) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Title
	return &Model{spinner: sp, styles: s, label: label}
}

// Init starts ticking.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update advances the spinner and quits once the work reports completion.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the spinner line. It is cleared once done.
func (m *Model) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.styles.Muted.Render(m.label) + "\n"
}

// Done reports whether the work completed.
func (m *Model) Done() bool {
	return m.done
}

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	out     io.Writer
	styles  *styles.Styles
	enabled bool
}

// WithOutput renders to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(c *runConfig) { c.out = w }
}

// WithStyles sets the styles used to render.
func WithStyles(s *styles.Styles) Option {
	return func(c *runConfig) { c.styles = s }
}

// WithEnabled turns the animation on or off. When off, fn runs directly.
func WithEnabled(enabled bool) Option {
	return func(c *runConfig) { c.enabled = enabled }
}

type result[T any] struct {
	value T
	err   error
}

// Run calls fn while a spinner labelled label animates. If the program is
// interrupted, the context passed to fn is canceled.
func Run[T any](ctx context.Context, label string, fn func(context.Context) (T, error), opts ...Option) (T, error) {
	cfg := runConfig{out: os.Stderr, enabled: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.enabled {
		return fn(ctx)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(label, cfg.styles),
		tea.WithInput(nil),
		tea.WithOutput(cfg.out),
	)

	results := make(chan result[T], 1)
	go func() {
		v, err := fn(ctx)
		results <- result[T]{value: v, err: err}
		p.Send(doneMsg{})
	}()

	_, runErr := p.Run()
	if runErr != nil {
		cancel()
	}

	r := <-results
	return r.value, r.err
}
