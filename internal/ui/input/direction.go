package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Direction defines the cardinal directions the users can use in the UI.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// FocusDirection maps the focus movement keys to a direction. Vertical keys are left for scrolling.
func FocusDirection(msg tea.KeyMsg) Direction {
	switch {
	case key.Matches(msg, Default.Left), key.Matches(msg, Default.PrevItem):
		return Left
	case key.Matches(msg, Default.Right), key.Matches(msg, Default.NextItem):
		return Right
	default:
		return None
	}
}
