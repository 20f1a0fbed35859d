package component

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/leighmacdonald/agri-tui/internal/ui/input"
)

// NewScrollView creates a viewport that only reacts to the vertical scroll bindings, leaving
// left/right free for moving focus between nodes.
func NewScrollView(width int, height int) viewport.Model {
	view := viewport.New(width, height)
	view.KeyMap = viewport.KeyMap{
		Up:       input.Default.Up,
		Down:     input.Default.Down,
		PageUp:   input.Default.PageUp,
		PageDown: input.Default.PageDown,
	}

	return view
}
