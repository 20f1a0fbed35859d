package component

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/agri-tui/internal/flow"
	"github.com/leighmacdonald/agri-tui/internal/ui/model"
	"github.com/leighmacdonald/agri-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// Panel renders the expanded sub-flow below a chart. closeZone marks the close button for
// mouse clicks.
func Panel(panel flow.Panel, width int, closeZone string) string {
	accent := styles.ToneColor(panel.Tone)
	inner := max(width-4, minNodeWidth)

	closeButton := zone.Mark(closeZone, styles.CloseButton.Render(styles.IconClose))
	heading := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(inner-lipgloss.Width(closeButton)).Render(
			styles.PanelTitle.Foreground(accent).Render(panel.Title)),
		closeButton)

	rows := []string{heading, "", Steps(panel.Steps, inner, -1, nil)}
	if panel.Followup != nil {
		rows = append(rows,
			DownArrow(inner),
			lipgloss.PlaceHorizontal(inner, lipgloss.Center, styles.Title.Render(panel.Followup.Title)),
			"",
			Steps(panel.Followup.Steps, inner, -1, nil))
	}

	return model.Container(panel.Flow.ID(), width-2, lipgloss.JoinVertical(lipgloss.Center, rows...), accent)
}
