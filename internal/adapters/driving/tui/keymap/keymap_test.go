package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_NavigationLeavesLettersToFilter(t *testing.T) {
	km := DefaultKeyMap()

	for _, b := range []key.Binding{km.Up, km.Down, km.Select, km.Cancel} {
		for _, k := range b.Keys() {
			assert.Greater(t, len(k), 1, "single printable key %q would shadow the filter", k)
		}
	}
}

func TestDefaultKeyMap_CancelBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Cancel.Keys()
	assert.Contains(t, keys, "esc")
	assert.Contains(t, keys, "ctrl+c")
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	assert.Len(t, bindings, 4)
	assert.Equal(t, km.Select, bindings[2])
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("up", km.Up))
	assert.True(t, Matches("ctrl+n", km.Down))
	assert.True(t, Matches("enter", km.Select))
	assert.False(t, Matches("k", km.Up))
	assert.False(t, Matches("down", km.Up))
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	testCases := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", km.Up},
		{"Down", km.Down},
		{"PageUp", km.PageUp},
		{"PageDown", km.PageDown},
		{"Select", km.Select},
		{"Cancel", km.Cancel},
		{"ClearFilter", km.ClearFilter},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			help := tc.binding.Help()
			assert.NotEmpty(t, help.Key, "binding should have help key")
		})
	}
}
