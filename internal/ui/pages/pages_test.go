package pages_test

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/agri-tui/internal/config"
	"github.com/leighmacdonald/agri-tui/internal/flow"
	"github.com/leighmacdonald/agri-tui/internal/ui/command"
	"github.com/leighmacdonald/agri-tui/internal/ui/model"
	"github.com/leighmacdonald/agri-tui/internal/ui/pages"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func runes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func stateFor(navigator model.Navigator) model.ViewState {
	return model.ViewState{Page: navigator.Page(), View: navigator.View(), Width: 140, Height: 200, Body: 198}
}

func chartState(t *testing.T, role flow.Role, id string) model.ViewState {
	t.Helper()

	navigator := model.NewNavigator()
	require.True(t, navigator.Navigate(role))
	if id != "" {
		require.True(t, navigator.SelectID(id))
	}

	return stateFor(navigator)
}

func TestLandingKeys(t *testing.T) {
	landing, _ := pages.NewLanding().Update(stateFor(model.NewNavigator()))
	require.Equal(t, flow.Farmer, landing.Focused())

	landing, cmd := landing.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.Nil(t, cmd)
	require.Equal(t, flow.Company, landing.Focused())

	_, cmd = landing.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, command.NavigateMsg{Role: flow.Company}, cmd())

	landing, cmd = landing.Update(runes("2"))
	require.NotNil(t, cmd)
	require.Equal(t, command.NavigateMsg{Role: flow.Buyer}, cmd())
	require.Equal(t, flow.Buyer, landing.Focused())

	_, cmd = landing.Update(runes("4"))
	require.Nil(t, cmd)
}

func TestLandingInactiveOnRolePage(t *testing.T) {
	landing, _ := pages.NewLanding().Update(chartState(t, flow.Farmer, ""))

	_, cmd := landing.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
}

func TestLandingRender(t *testing.T) {
	out := pages.NewLanding().Render(140)

	for _, card := range flow.Cards() {
		require.Contains(t, out, card.Title)
	}
	require.Contains(t, out, "Platform Overview")
	require.Contains(t, out, flow.PlatformName)
}

func TestChartSelectKeys(t *testing.T) {
	chart, _ := pages.NewChart(flow.Buyer, true).Update(chartState(t, flow.Buyer, ""))

	chart, cmd := chart.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Nil(t, cmd)
	require.Equal(t, 1, chart.Focused())

	_, cmd = chart.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, command.SelectFlowMsg{Flow: flow.BuyerPostRequirement}, cmd())

	_, cmd = chart.Update(runes("3"))
	require.NotNil(t, cmd)
	require.Equal(t, command.SelectFlowMsg{Flow: flow.BuyerDisputeReporting}, cmd())

	_, cmd = chart.Update(runes("4"))
	require.Nil(t, cmd)

	// Focus wraps around the action row.
	chart, _ = chart.Update(tea.KeyMsg{Type: tea.KeyLeft})
	chart, _ = chart.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 2, chart.Focused())
}

func TestChartBackKeys(t *testing.T) {
	chart, _ := pages.NewChart(flow.Farmer, true).Update(chartState(t, flow.Farmer, "post-crop"))
	selected, ok := chart.Selected()
	require.True(t, ok)
	require.Equal(t, flow.FarmerPostCrop, selected)

	_, cmd := chart.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, command.ClearFlowMsg{}, cmd())

	_, cmd = chart.Update(runes("x"))
	require.Equal(t, command.ClearFlowMsg{}, cmd())

	_, cmd = chart.Update(runes("b"))
	require.Equal(t, command.BackMsg{}, cmd())

	chart, _ = chart.Update(chartState(t, flow.Farmer, ""))
	_, cmd = chart.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, command.BackMsg{}, cmd())

	_, cmd = chart.Update(runes("x"))
	require.Nil(t, cmd)
}

func TestChartIgnoresOtherRoles(t *testing.T) {
	chart, _ := pages.NewChart(flow.Company, true).Update(chartState(t, flow.Buyer, "browse-crops"))

	_, ok := chart.Selected()
	require.False(t, ok)

	_, cmd := chart.Update(runes("1"))
	require.Nil(t, cmd)
}

func TestChartRender(t *testing.T) {
	chart, _ := pages.NewChart(flow.Farmer, true).Update(chartState(t, flow.Farmer, "post-crop"))
	out := chart.Render(140)

	require.Contains(t, out, "Farmer Flow")
	require.Contains(t, out, "No Digital Literacy")
	require.Contains(t, out, "Post Crop for Sale Process")
	require.Contains(t, out, "Trade Agreement Process")
	require.Contains(t, out, "Flow Legend")
	require.NotContains(t, out, "Select any of the 5 main options")

	chart, _ = chart.Update(chartState(t, flow.Farmer, ""))
	out = chart.Render(140)
	require.Contains(t, out, "Select any of the 5 main options")
	require.NotContains(t, out, "Post Crop for Sale Process")
}

func TestChartCompanyNoteAndLegendToggle(t *testing.T) {
	chart, _ := pages.NewChart(flow.Company, true).Update(chartState(t, flow.Company, ""))
	require.Contains(t, chart.Render(140), "handled by AgriConnect platform")

	chart, _ = chart.Update(config.Config{ShowLegend: false})
	require.NotContains(t, chart.Render(140), "Flow Legend")
}

func TestHelp(t *testing.T) {
	help := pages.NewHelp("v1.2.3", "2025-01-01", "0123456789", "/tmp/agri-tui.yaml", "/nonexistent/agri-tui.log")
	help, _ = help.Update(model.ViewState{Page: model.PageHelp, Width: 140, Body: 60})

	out := help.View()
	require.Contains(t, out, "v1.2.3")
	require.Contains(t, out, "01234567")
	require.NotContains(t, out, "0123456789")
	require.Contains(t, out, "not created")

	_, cmd := help.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, command.ToggleHelpMsg{}, cmd())
}

func TestHelpLogDetails(t *testing.T) {
	logPath := t.TempDir() + "/agri-tui.log"
	require.NoError(t, os.WriteFile(logPath, make([]byte, 2048), 0o600))

	help := pages.NewHelp("v1.2.3", "", "", "", logPath)
	help, _ = help.Update(model.ViewState{Page: model.PageHelp, Width: 140, Body: 60})
	require.Contains(t, help.View(), "2.0 kB")
}
