package component

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/agri-tui/internal/flow"
	"github.com/leighmacdonald/agri-tui/internal/ui/styles"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	minNodeWidth = 16
	maxNodeWidth = 30
	// border + horizontal padding
	nodeChrome = 4
)

// Node renders a flowchart node as a box exactly width cells wide. A height of 0 lets the box
// grow to fit its description.
func Node(node flow.Node, width int, height int, focused bool) string {
	inner := max(width-nodeChrome, 1)
	title := truncate.StringWithTail(node.Icon+" "+node.Title, uint(inner), "…") //nolint:gosec
	description := wordwrap.String(node.Description, inner)

	style := styles.NodeBase.
		BorderForeground(styles.KindColor(node.Kind)).
		Width(width - 2)
	if focused {
		style = style.Border(styles.NodeFocused)
	}
	if height > 2 {
		style = style.Height(height - 2)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.NodeTitle.Render(title),
		styles.NodeDescription.Render(description)))
}

// nodeWidth picks a box width so that count boxes and the arrows between them fit in width.
func nodeWidth(count int, width int) int {
	if count <= 0 {
		return maxNodeWidth
	}

	available := width - (count-1)*lipgloss.Width(arrowCell(1))

	return min(max(available/count, minNodeWidth), maxNodeWidth)
}
