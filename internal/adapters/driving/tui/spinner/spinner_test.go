package spinner

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovh/ovhdata-cli/internal/adapters/driving/tui/styles"
)

func TestModel_Init(t *testing.T) {
	m := New("Loading sources", nil)

	assert.NotNil(t, m.Init())
	assert.NotNil(t, m.styles)
}

func TestModel_View(t *testing.T) {
	m := New("Loading sources", styles.PlainStyles())

	assert.Contains(t, m.View(), "Loading sources")
}

func TestModel_Update_Tick(t *testing.T) {
	m := New("Loading", nil)

	_, cmd := m.Update(spinner.TickMsg{ID: m.spinner.ID()})

	assert.NotNil(t, cmd)
	assert.False(t, m.Done())
}

func TestModel_Update_Done(t *testing.T) {
	m := New("Loading", nil)

	_, cmd := m.Update(doneMsg{})

	require.NotNil(t, cmd)
	assert.True(t, m.Done())
	assert.Empty(t, m.View())
}

func TestModel_Update_IgnoresKeys(t *testing.T) {
	m := New("Loading", nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.Done())
}

func TestRun_Disabled(t *testing.T) {
	var out bytes.Buffer

	v, err := Run(context.Background(), "Loading", func(context.Context) (int, error) {
		return 42, nil
	}, WithEnabled(false), WithOutput(&out))

	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Empty(t, out.String())
}

func TestRun_ReturnsResult(t *testing.T) {
	var out bytes.Buffer

	v, err := Run(context.Background(), "Loading", func(context.Context) (string, error) {
		return "ok", nil
	}, WithOutput(&out), WithStyles(styles.PlainStyles()))

	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestRun_PropagatesError(t *testing.T) {
	boom := errors.New("boom")

	_, err := Run(context.Background(), "Loading", func(context.Context) (int, error) {
		return 0, boom
	}, WithOutput(&bytes.Buffer{}))

	assert.ErrorIs(t, err, boom)
}
