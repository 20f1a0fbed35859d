package pages

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/agri-tui/internal/config"
	"github.com/leighmacdonald/agri-tui/internal/flow"
	"github.com/leighmacdonald/agri-tui/internal/ui/command"
	"github.com/leighmacdonald/agri-tui/internal/ui/component"
	"github.com/leighmacdonald/agri-tui/internal/ui/input"
	"github.com/leighmacdonald/agri-tui/internal/ui/model"
	"github.com/leighmacdonald/agri-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

const noteWidth = 88

func NewChart(role flow.Role, showLegend bool) Chart {
	return Chart{
		role:       role,
		chart:      flow.ChartFor(role),
		zoneID:     zone.NewPrefix(),
		showLegend: showLegend,
		view:       component.NewScrollView(0, 0),
	}
}

// Chart draws the flowchart of a single role along with the panel of its selected sub-flow.
type Chart struct {
	role       flow.Role
	chart      flow.Chart
	zoneID     string
	focus      int
	showLegend bool
	selected   flow.SubFlow
	view       viewport.Model
	viewState  model.ViewState
}

func (m Chart) Init() tea.Cmd {
	return nil
}

func (m Chart) Focused() int {
	return m.focus
}

func (m Chart) Selected() (flow.SubFlow, bool) {
	return m.selected, m.selected != nil
}

func (m Chart) active() bool {
	if m.viewState.Page == model.PageHelp {
		return false
	}

	role, ok := model.RoleOf(m.viewState.View)

	return ok && role == m.role
}

func (m Chart) Update(msg tea.Msg) (Chart, tea.Cmd) {
	switch msg := msg.(type) {
	case config.Config:
		m.showLegend = msg.ShowLegend
		m.refresh(false)
	case model.ViewState:
		m.viewState = msg
		selected, _ := model.SelectionOf(msg.View)
		if role, ok := model.RoleOf(msg.View); !ok || role != m.role {
			// Leaving the chart discards its focus along with the selection.
			selected = nil
			m.focus = 0
		}
		changed := selected != m.selected
		m.selected = selected
		if changed && selected != nil {
			m.focus = m.actionIndex(selected)
		}
		m.view.Width = msg.Width
		m.view.Height = msg.Body
		m.refresh(changed)
	case tea.KeyMsg:
		if !m.active() {
			return m, nil
		}

		return m.onKey(msg)
	case tea.MouseMsg:
		if !m.active() {
			return m, nil
		}

		return m.onMouse(msg)
	}

	return m, nil
}

func (m Chart) onKey(msg tea.KeyMsg) (Chart, tea.Cmd) {
	if dir := input.FocusDirection(msg); dir != input.None {
		m.focus = model.Ring[int](m.indexes()).Next(m.focus, dir)
		m.refresh(false)

		return m, nil
	}

	switch {
	case key.Matches(msg, input.Default.Accept):
		cmd := m.pick(m.focus)

		return m, cmd
	case key.Matches(msg, input.Default.Close):
		if m.selected == nil {
			return m, nil
		}

		return m, command.ClearFlow()
	case key.Matches(msg, input.Default.Back):
		if m.selected != nil {
			return m, command.ClearFlow()
		}

		return m, command.Back()
	case key.Matches(msg, input.Default.Home):
		return m, command.Back()
	}

	if idx, ok := input.PickIndex(msg); ok {
		cmd := m.pick(idx)

		return m, cmd
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)

	return m, cmd
}

func (m Chart) onMouse(msg tea.MouseMsg) (Chart, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)

		return m, cmd
	}

	if m.selected != nil && zone.Get(m.CloseZone()).InBounds(msg) {
		return m, command.ClearFlow()
	}

	for idx := range m.chart.Actions {
		if zone.Get(m.ActionZone(idx)).InBounds(msg) {
			cmd := m.pick(idx)

			return m, cmd
		}
	}

	return m, nil
}

func (m *Chart) pick(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.chart.Actions) {
		return nil
	}

	m.focus = idx
	m.refresh(false)

	return command.SelectFlow(m.chart.Actions[idx].Opens)
}

func (m Chart) indexes() []int {
	out := make([]int, len(m.chart.Actions))
	for i := range out {
		out[i] = i
	}

	return out
}

func (m Chart) actionIndex(subFlow flow.SubFlow) int {
	for idx, action := range m.chart.Actions {
		if action.Opens == subFlow {
			return idx
		}
	}

	return m.focus
}

// ActionZone is the mouse zone of the action node at idx.
func (m Chart) ActionZone(idx int) string {
	return m.zoneID + "action" + strconv.Itoa(idx)
}

// CloseZone is the mouse zone of the panel close button.
func (m Chart) CloseZone() string {
	return m.zoneID + "close"
}

// refresh re-renders the scroll content. When scrollToPanel is set and a panel is open the
// view jumps to the top of the panel.
func (m *Chart) refresh(scrollToPanel bool) {
	if m.viewState.Width <= 0 {
		return
	}

	content, panelOffset := m.render(m.viewState.Width, m.focus)
	m.view.SetContent(content)

	if scrollToPanel {
		if m.selected != nil {
			m.view.SetYOffset(panelOffset)
		} else {
			m.view.GotoTop()
		}
	}
}

func (m Chart) View() string {
	return m.view.View()
}

// Render draws the full chart at width, independent of the scroll position. No action node is
// focused.
func (m Chart) Render(width int) string {
	content, _ := m.render(width, -1)

	return content
}

func (m Chart) render(width int, focus int) (string, int) {
	inner := max(width-2, 0)
	heading := lipgloss.JoinVertical(lipgloss.Center,
		styles.Title.Render(m.chart.Title),
		styles.Subtitle.Render(m.chart.Subtitle))

	actions := component.Steps(m.chart.Actions, inner, focus, func(index int, rendered string) string {
		return zone.Mark(m.ActionZone(index), rendered)
	})

	top := []string{
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, heading),
		"",
		component.Stages(m.chart.Stages, inner),
		component.DownArrow(inner),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, actions),
		"",
	}
	panelOffset := lipgloss.Height(lipgloss.JoinVertical(lipgloss.Left, top...))

	rows := top
	panel, found := flow.PanelFor(m.selected)
	if found {
		rows = append(rows, component.Panel(panel, inner, m.CloseZone()))
	} else {
		rows = append(rows, lipgloss.PlaceHorizontal(inner, lipgloss.Center, styles.Hint.Render(m.chart.Hint)))
	}

	if m.chart.Note != "" {
		rows = append(rows, "", lipgloss.PlaceHorizontal(inner, lipgloss.Center,
			styles.Note.Width(min(inner, noteWidth)).Render(m.chart.Note)))
	}

	if m.showLegend {
		rows = append(rows, "", component.Legend(inner))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...), panelOffset
}
