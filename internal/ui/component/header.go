package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/agri-tui/internal/flow"
	"github.com/leighmacdonald/agri-tui/internal/ui/model"
	"github.com/leighmacdonald/agri-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// Breadcrumb renders the navigation path for state. On role pages it starts with a clickable
// back marker identified by backZone.
func Breadcrumb(state model.ViewState, backZone string) string {
	crumbs := []string{styles.Brand.Render(flow.IconWheat + " " + flow.PlatformName)}

	var back string
	if role, ok := model.RoleOf(state.View); ok {
		back = zone.Mark(backZone, styles.BackMarker.Render(styles.IconBack+" Back"))
		crumbs = append(crumbs, styles.Breadcrumb.Render(flow.ChartFor(role).Title))
	}

	if state.Page == model.PageHelp {
		crumbs = append(crumbs, styles.BreadcrumbActive.Render("Help"))
	} else if selected, ok := model.SelectionOf(state.View); ok {
		if panel, found := flow.PanelFor(selected); found {
			crumbs = append(crumbs, styles.BreadcrumbActive.Render(panel.Title))
		}
	}

	path := strings.Join(crumbs, styles.Breadcrumb.Render("›"))
	if back == "" {
		return lipgloss.PlaceHorizontal(state.Width, lipgloss.Center, path)
	}

	// The back marker stays pinned to the left edge while the path is centred in the rest.
	return lipgloss.JoinHorizontal(lipgloss.Top, back,
		lipgloss.PlaceHorizontal(max(state.Width-lipgloss.Width(back), 0), lipgloss.Center, path))
}
