package component

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/agri-tui/internal/flow"
	"github.com/leighmacdonald/agri-tui/internal/ui/styles"
)

const stageWidth = 44

// Stages renders the vertical spine of a chart, every stage centred in width and joined to the
// next by a down arrow.
func Stages(stages []flow.Stage, width int) string {
	rows := make([]string, 0, len(stages)*2)
	for i, stage := range stages {
		if i > 0 {
			rows = append(rows, DownArrow(width))
		}

		var rendered string
		if stage.IsBranch() {
			rendered = branches(stage.Branches, width)
		} else {
			rendered = Node(stage.Node, min(stageWidth, width), 0, false)
		}

		rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, rendered))
	}

	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func branches(options []flow.Branch, width int) string {
	boxWidth := min(stageWidth, max(minNodeWidth, (width-4*(len(options)-1))/len(options)))

	height := 0
	for _, option := range options {
		height = max(height, lipgloss.Height(Node(option.Node, boxWidth, 0, false)))
	}

	columns := make([]string, 0, len(options)*2)
	for i, option := range options {
		if i > 0 {
			columns = append(columns, "    ")
		}

		label := lipgloss.PlaceHorizontal(boxWidth, lipgloss.Center,
			styles.BranchLabel.Render(option.Label))
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Center,
			label,
			DownArrow(boxWidth),
			Node(option.Node, boxWidth, height, false)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// Legend explains the border colour of each node kind.
func Legend(width int) string {
	items := make([]string, 0, len(flow.Kinds()))
	for _, kind := range flow.Kinds() {
		swatch := lipgloss.NewStyle().Foreground(styles.KindColor(kind)).Render("■")
		items = append(items, styles.LegendItem.Render(swatch+" "+kind.String()))
	}

	legend := styles.LegendBox.Render(lipgloss.JoinVertical(lipgloss.Center,
		styles.Title.Render("Flow Legend"),
		lipgloss.JoinHorizontal(lipgloss.Top, items...)))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, legend)
}
