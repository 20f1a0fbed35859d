package command

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/agri-tui/internal/flow"
)

// NavigateMsg asks the root to leave the landing page for a role.
type NavigateMsg struct {
	Role flow.Role
}

func Navigate(role flow.Role) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Role: role} }
}

// BackMsg asks the root to return to the landing page.
type BackMsg struct{}

func Back() tea.Cmd {
	return func() tea.Msg { return BackMsg{} }
}

type SelectFlowMsg struct {
	Flow flow.SubFlow
}

func SelectFlow(subFlow flow.SubFlow) tea.Cmd {
	return func() tea.Msg { return SelectFlowMsg{Flow: subFlow} }
}

type ClearFlowMsg struct{}

func ClearFlow() tea.Cmd {
	return func() tea.Msg { return ClearFlowMsg{} }
}

type ToggleHelpMsg struct{}

func ToggleHelp() tea.Cmd {
	return func() tea.Msg { return ToggleHelpMsg{} }
}

const ClearMessageTimeout = time.Second * 10

// ClearStatusMessageMsg clears the status message numbered ID. A newer message is left alone.
type ClearStatusMessageMsg struct {
	ID int
}

func ClearStatusAfter(t time.Duration, id int) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{ID: id}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}
