package input_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/agri-tui/internal/ui/input"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPickIndex(t *testing.T) {
	idx, ok := input.PickIndex(runeKey('1'))
	require.True(t, ok)
	require.Equal(t, 0, idx)

	idx, ok = input.PickIndex(runeKey('5'))
	require.True(t, ok)
	require.Equal(t, 4, idx)

	_, ok = input.PickIndex(runeKey('x'))
	require.False(t, ok)

	_, ok = input.PickIndex(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, ok)
}

func TestFocusDirection(t *testing.T) {
	require.Equal(t, input.Left, input.FocusDirection(tea.KeyMsg{Type: tea.KeyLeft}))
	require.Equal(t, input.Left, input.FocusDirection(tea.KeyMsg{Type: tea.KeyShiftTab}))
	require.Equal(t, input.Right, input.FocusDirection(tea.KeyMsg{Type: tea.KeyTab}))
	require.Equal(t, input.Right, input.FocusDirection(runeKey('l')))
	require.Equal(t, input.None, input.FocusDirection(tea.KeyMsg{Type: tea.KeyUp}))
}
