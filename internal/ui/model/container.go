package model

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/agri-tui/internal/ui/styles"
)

// Container draws content inside a border with title embedded in the top edge.
func Container(title string, width int, content string, accent lipgloss.Color) string {
	if width <= 0 {
		return ""
	}

	return styles.ContainerStyle.
		BorderForeground(accent).
		Border(styles.TitleBorder(styles.ContainerBorder, width, title)).
		Width(width).
		Render(content)
}
