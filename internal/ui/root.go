package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/agri-tui/internal/config"
	"github.com/leighmacdonald/agri-tui/internal/flow"
	"github.com/leighmacdonald/agri-tui/internal/ui/command"
	"github.com/leighmacdonald/agri-tui/internal/ui/component"
	"github.com/leighmacdonald/agri-tui/internal/ui/input"
	"github.com/leighmacdonald/agri-tui/internal/ui/model"
	"github.com/leighmacdonald/agri-tui/internal/ui/pages"
	"github.com/leighmacdonald/agri-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// rootModel is the top level model for the ui side of the app. It is the only owner of the
// navigation state, every other model receives it as a model.ViewState.
type rootModel struct {
	navigator    model.Navigator
	helpOpen     bool
	viewState    model.ViewState
	config       config.Config
	landing      pages.Landing
	farmer       pages.Chart
	buyer        pages.Chart
	company      pages.Chart
	help         pages.Help
	statusBar    component.StatusBarModel
	backZone     string
	headerHeight int
	footerHeight int
}

func newRootModel(userConfig config.Config, navigator model.Navigator, buildVersion string, buildDate string,
	buildCommit string, configPath string, logPath string,
) rootModel {
	return rootModel{
		navigator:    navigator,
		config:       userConfig,
		landing:      pages.NewLanding(),
		farmer:       pages.NewChart(flow.Farmer, userConfig.ShowLegend),
		buyer:        pages.NewChart(flow.Buyer, userConfig.ShowLegend),
		company:      pages.NewChart(flow.Company, userConfig.ShowLegend),
		help:         pages.NewHelp(buildVersion, buildDate, buildCommit, configPath, logPath),
		statusBar:    component.NewStatusBarModel(buildVersion),
		backZone:     zone.NewPrefix(),
		viewState:    model.ViewState{Page: navigator.Page(), View: navigator.View()},
		headerHeight: 1,
		footerHeight: 1,
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(flow.PlatformName),
		m.landing.Init(),
		m.farmer.Init(),
		m.buyer.Init(),
		m.company.Init(),
		m.help.Init(),
		m.statusBar.Init(),
	)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	if !m.isInitialized() {
		switch inMsg.(type) {
		case tea.WindowSizeMsg, config.Config:
		default:
			return m, nil
		}
	}

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Height = msg.Height
		m.viewState.Width = msg.Width
		m.viewState.Body = max(msg.Height-m.headerHeight-m.footerHeight, 0)

		return m.broadcast()
	case config.Config:
		m.config = msg

		return m.propagate(msg, command.SetStatusMessage("Config reloaded", false))
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Quit):
			return m, tea.Quit
		case key.Matches(msg, input.Default.Help):
			return m.toggleHelp()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft && !m.helpOpen &&
			zone.Get(m.backZone).InBounds(msg) {
			return m.back()
		}
	case command.ToggleHelpMsg:
		return m.toggleHelp()
	case command.NavigateMsg:
		if !m.navigator.Navigate(msg.Role) {
			return m, nil
		}
		slog.Debug("Opened role chart", slog.String("role", msg.Role.String()))

		return m.broadcast()
	case command.BackMsg:
		return m.back()
	case command.SelectFlowMsg:
		if !m.navigator.Select(msg.Flow) {
			return m, nil
		}
		slog.Debug("Selected sub-flow", slog.String("flow", msg.Flow.ID()))

		var status tea.Cmd
		if panel, found := flow.PanelFor(msg.Flow); found {
			status = command.SetStatusMessage("Selected: "+panel.Title, false)
		}

		return m.broadcast(status)
	case command.ClearFlowMsg:
		if !m.navigator.Clear() {
			return m, nil
		}
		slog.Debug("Closed sub-flow panel")

		return m.broadcast()
	}

	return m.propagate(inMsg)
}

func (m rootModel) back() (tea.Model, tea.Cmd) {
	if !m.navigator.Back() {
		return m, nil
	}
	slog.Debug("Returned to landing")

	return m.broadcast()
}

func (m rootModel) toggleHelp() (tea.Model, tea.Cmd) {
	m.helpOpen = !m.helpOpen

	return m.broadcast()
}

// broadcast rebuilds the view state from the navigator and hands it to every child model.
func (m rootModel) broadcast(cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	m.viewState.View = m.navigator.View()
	m.viewState.Page = m.navigator.Page()
	if m.helpOpen {
		m.viewState.Page = model.PageHelp
	}

	return m.propagate(m.viewState, cmds...)
}

func (m rootModel) propagate(msg tea.Msg, extra ...tea.Cmd) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 6, 6+len(extra))

	m.landing, cmds[0] = m.landing.Update(msg)
	m.farmer, cmds[1] = m.farmer.Update(msg)
	m.buyer, cmds[2] = m.buyer.Update(msg)
	m.company, cmds[3] = m.company.Update(msg)
	m.help, cmds[4] = m.help.Update(msg)
	m.statusBar, cmds[5] = m.statusBar.Update(msg)

	return m, tea.Batch(append(cmds, extra...)...)
}

func (m rootModel) isInitialized() bool {
	return m.viewState.Height != 0 && m.viewState.Width != 0
}

func (m rootModel) chart(role flow.Role) pages.Chart {
	switch role {
	case flow.Buyer:
		return m.buyer
	case flow.Company:
		return m.company
	default:
		return m.farmer
	}
}

func (m rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	hdr := styles.HeaderContainerStyle.Width(m.viewState.Width).
		Render(component.Breadcrumb(m.viewState, m.backZone))
	ftr := styles.FooterContainerStyle.Width(m.viewState.Width).Render(m.statusBar.View())

	var content string
	switch m.viewState.Page {
	case model.PageHelp:
		content = m.help.View()
	case model.PageLanding:
		content = m.landing.View()
	default:
		if role, ok := m.navigator.Role(); ok {
			content = m.chart(role).View()
		}
	}

	ctr := styles.ContentContainerStyle.
		Width(m.viewState.Width).
		Height(m.viewState.Body).
		MaxHeight(m.viewState.Body).
		Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, hdr, ctr, ftr))
}

// logMsg is useful for debugging events. Tail the log file ~/.config/agri-tui/agri-tui.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch msg := inMsg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			break
		}
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	case command.ClearStatusMessageMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
