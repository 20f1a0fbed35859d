package pages

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/agri-tui/internal/flow"
	"github.com/leighmacdonald/agri-tui/internal/ui/command"
	"github.com/leighmacdonald/agri-tui/internal/ui/component"
	"github.com/leighmacdonald/agri-tui/internal/ui/input"
	"github.com/leighmacdonald/agri-tui/internal/ui/model"
	"github.com/leighmacdonald/agri-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

const credit = "Developed by @Sathish Dusharla"

func NewLanding() Landing {
	return Landing{
		zoneID: zone.NewPrefix(),
		focus:  flow.Farmer,
		view:   component.NewScrollView(0, 0),
	}
}

// Landing is the role selection page.
type Landing struct {
	zoneID    string
	focus     flow.Role
	view      viewport.Model
	viewState model.ViewState
}

func (m Landing) Init() tea.Cmd {
	return nil
}

func (m Landing) Focused() flow.Role {
	return m.focus
}

func (m Landing) Update(msg tea.Msg) (Landing, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
		m.view.Width = msg.Width
		m.view.Height = msg.Body
		m.refresh()
	case tea.KeyMsg:
		if m.viewState.Page != model.PageLanding {
			return m, nil
		}

		if dir := input.FocusDirection(msg); dir != input.None {
			m.focus = model.Ring[flow.Role](flow.Roles()).Next(m.focus, dir)
			m.refresh()

			return m, nil
		}

		if key.Matches(msg, input.Default.Accept) {
			return m, command.Navigate(m.focus)
		}

		if idx, ok := input.PickIndex(msg); ok && idx < len(flow.Roles()) {
			m.focus = flow.Roles()[idx]
			m.refresh()

			return m, command.Navigate(m.focus)
		}

		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)

		return m, cmd
	case tea.MouseMsg:
		if m.viewState.Page != model.PageLanding {
			return m, nil
		}

		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			var cmd tea.Cmd
			m.view, cmd = m.view.Update(msg)

			return m, cmd
		}

		for _, role := range flow.Roles() {
			if zone.Get(m.CardZone(role)).InBounds(msg) {
				m.focus = role

				return m, command.Navigate(role)
			}
		}
	}

	return m, nil
}

// CardZone is the mouse zone of the card for role.
func (m Landing) CardZone(role flow.Role) string {
	return m.zoneID + role.String()
}

func (m *Landing) refresh() {
	if m.viewState.Width <= 0 {
		return
	}

	m.view.SetContent(m.Render(m.viewState.Width))
}

func (m Landing) View() string {
	return m.view.View()
}

// Render draws the page at width without any dependency on terminal state.
func (m Landing) Render(width int) string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		styles.Brand.Render(flow.IconWheat+" "+flow.PlatformName),
		"",
		styles.Title.Render(flow.PlatformTagline),
		styles.Subtitle.Render(flow.PlatformIntro),
		"")

	cards := make([]string, 0, len(flow.Roles()))
	for i, card := range flow.Cards() {
		rendered := component.Card(card, width, i+1, card.Role == m.focus)
		cards = append(cards, zone.Mark(m.CardZone(card.Role), rendered))
	}

	var row string
	if width >= lipgloss.Width(lipgloss.JoinHorizontal(lipgloss.Top, cards...)) {
		row = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	} else {
		row = lipgloss.JoinVertical(lipgloss.Center, cards...)
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center,
		header,
		row,
		"",
		component.Overview(width),
		styles.Footer.Render(credit)))
}
