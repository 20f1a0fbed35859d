package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Map struct {
	Quit     key.Binding
	Help     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	NextItem key.Binding
	PrevItem key.Binding
	Accept   key.Binding
	Pick     key.Binding
	Close    key.Binding
	Back     key.Binding
	Home     key.Binding
}

// TODO make configurable.
var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Scroll down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "Previous"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "Next"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "Page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", " "),
		key.WithHelp("pgdn", "Page down"),
	),
	NextItem: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next"),
	),
	PrevItem: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift tab", "Previous"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Open"),
	),
	Pick: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "Open by number"),
	),
	Close: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "Close panel"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Home: key.NewBinding(
		key.WithKeys("b", "backspace"),
		key.WithHelp("b", "Roles"),
	),
}

// PickIndex converts a Pick key press into a zero based index.
func PickIndex(msg tea.KeyMsg) (int, bool) {
	if !key.Matches(msg, Default.Pick) {
		return 0, false
	}

	runes := msg.Runes
	if len(runes) != 1 {
		return 0, false
	}

	return int(runes[0] - '1'), true
}
