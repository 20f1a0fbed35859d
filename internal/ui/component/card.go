package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/leighmacdonald/agri-tui/internal/flow"
	"github.com/leighmacdonald/agri-tui/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

const cardWidth = 34

// Card renders a landing page role card. number is the shortcut key shown on the card.
func Card(card flow.RoleCard, width int, number int, focused bool) string {
	width = min(width, cardWidth)
	inner := max(width-8, minNodeWidth)
	accent := styles.ToneColor(card.Tone)

	features := make([]string, len(card.Features))
	for i, feature := range card.Features {
		features[i] = styles.CardFeature.Render("• " + feature)
	}

	style := styles.CardBase.BorderForeground(accent).Width(width - 2)
	if focused {
		style = style.Border(lipgloss.ThickBorder())
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Foreground(accent).Bold(true).Render(card.Icon+" "+card.Title),
		"",
		styles.NodeDescription.Render(wordwrap.String(card.Description, inner)),
		"",
		styles.Title.Render("Key Features:"),
		strings.Join(features, "\n"),
		styles.CardCTA.Render(fmt.Sprintf("[%d] View Flow Chart %s", number, styles.IconRight))))
}

func NewUnstyledTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderHeader(false).
		Headers(headers...)
}

// Overview is the short per-role platform summary shown under the role cards.
func Overview(width int) string {
	tbl := NewUnstyledTable().StyleFunc(func(_, _ int) lipgloss.Style {
		return styles.OverviewItem
	})
	for _, entry := range flow.Overview {
		card := flow.Card(entry.Role)
		heading := lipgloss.NewStyle().Foreground(styles.ToneColor(card.Tone)).Bold(true).
			Render(entry.Icon + " " + entry.Heading)
		tbl.Row(heading, styles.NodeDescription.Render(entry.Blurb))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center,
		styles.Title.Render("Platform Overview"),
		tbl.Render()))
}
