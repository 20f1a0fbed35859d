package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/agri-tui/internal/flow"
	"github.com/leighmacdonald/agri-tui/internal/ui/styles"
)

// Marker wraps the rendered node at index so it can receive mouse events. A nil Marker leaves
// the node untouched.
type Marker func(index int, rendered string) string

func arrowCell(height int) string {
	return lipgloss.Place(3, max(height, 1), lipgloss.Center, lipgloss.Center,
		styles.Connector.Render(styles.IconRight))
}

// DownArrow is the vertical connector placed between chart stages.
func DownArrow(width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, styles.Connector.Render(styles.IconDown))
}

// Steps lays out nodes left to right joined by arrows. When they do not fit in width the row
// continues on the next line below a down arrow. focus highlights one node, -1 for none.
func Steps(nodes []flow.Node, width int, focus int, mark Marker) string {
	if len(nodes) == 0 {
		return ""
	}

	boxWidth := nodeWidth(len(nodes), width)
	perLine := max(1, (width+lipgloss.Width(arrowCell(1)))/(boxWidth+lipgloss.Width(arrowCell(1))))

	var lines []string
	for start := 0; start < len(nodes); start += perLine {
		end := min(start+perLine, len(nodes))
		lines = append(lines, stepLine(nodes[start:end], start, boxWidth, focus, mark))
	}

	var out strings.Builder
	for i, line := range lines {
		if i > 0 {
			out.WriteString("\n" + DownArrow(lipgloss.Width(line)) + "\n")
		}
		out.WriteString(line)
	}

	return out.String()
}

func stepLine(nodes []flow.Node, offset int, boxWidth int, focus int, mark Marker) string {
	height := 0
	for _, node := range nodes {
		height = max(height, lipgloss.Height(Node(node, boxWidth, 0, false)))
	}

	cells := make([]string, 0, len(nodes)*2)
	for i, node := range nodes {
		if i > 0 {
			cells = append(cells, arrowCell(height))
		}

		rendered := Node(node, boxWidth, height, offset+i == focus)
		if mark != nil {
			rendered = mark(offset+i, rendered)
		}
		cells = append(cells, rendered)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
