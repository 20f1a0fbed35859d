package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/leighmacdonald/agri-tui/internal/flow"
	"github.com/leighmacdonald/agri-tui/internal/ui/model"
	"github.com/leighmacdonald/agri-tui/internal/ui/pages"
	zone "github.com/lrstanley/bubblezone"
)

const (
	defaultPrintWidth = 120
	minPrintWidth     = 40
)

var errPrint = errors.New("failed to print chart")

// render writes the landing page, or the chart of roleName, to out. An unknown flowID renders
// the chart without a panel.
func render(out io.Writer, roleName string, flowID string, width int) error {
	// There is nothing to click on, so zone markers are stripped.
	zone.NewGlobal()
	zone.SetEnabled(false)

	width = max(width, minPrintWidth)
	navigator := model.NewNavigator()

	var content string
	if roleName == "" {
		if flowID != "" {
			slog.Warn("Ignoring flow without a role", slog.String("flow", flowID))
		}

		content = pages.NewLanding().Render(width)
	} else {
		role, errRole := flow.ParseRole(roleName)
		if errRole != nil {
			return errors.Join(errRole, errPrint)
		}

		navigator.Navigate(role)
		if flowID != "" && !navigator.SelectID(flowID) {
			slog.Warn("Unknown flow, rendering chart only",
				slog.String("role", role.String()), slog.String("flow", flowID))
		}

		chart, _ := pages.NewChart(role, true).Update(model.ViewState{
			Page:  navigator.Page(),
			View:  navigator.View(),
			Width: width,
		})
		content = chart.Render(width)
	}

	if _, err := fmt.Fprintln(out, zone.Scan(content)); err != nil {
		return errors.Join(err, errPrint)
	}

	return nil
}
