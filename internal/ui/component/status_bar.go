package component

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/agri-tui/internal/ui/command"
	"github.com/leighmacdonald/agri-tui/internal/ui/input"
	"github.com/leighmacdonald/agri-tui/internal/ui/model"
	"github.com/leighmacdonald/agri-tui/internal/ui/styles"
)

type StatusBarModel struct {
	viewState   model.ViewState
	statusMsg   string
	statusError bool
	statusID    int
	version     string
}

func NewStatusBarModel(version string) StatusBarModel {
	return StatusBarModel{version: version}
}

func (m StatusBarModel) Init() tea.Cmd {
	return nil
}

func (m StatusBarModel) Update(msg tea.Msg) (StatusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err
		m.statusID++

		return m, command.ClearStatusAfter(command.ClearMessageTimeout, m.statusID)
	case command.ClearStatusMessageMsg:
		if msg.ID != m.statusID {
			return m, nil
		}
		m.statusError = false
		m.statusMsg = ""
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m StatusBarModel) View() string {
	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
		styles.StatusPage.Render(m.viewState.Page.String()),
		m.status(),
	}

	return lipgloss.NewStyle().Width(m.viewState.Width).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m StatusBarModel) status() string {
	if m.statusMsg == "" {
		return ""
	}

	if m.statusError {
		return styles.StatusError.Render(m.statusMsg)
	}

	return styles.StatusMessage.Render(m.statusMsg)
}
