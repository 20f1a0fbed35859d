package ui

import (
	"context"
	"errors"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/agri-tui/internal/config"
	"github.com/leighmacdonald/agri-tui/internal/flow"
	"github.com/leighmacdonald/agri-tui/internal/ui/model"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

func New(ctx context.Context, userConfig config.Config, navigator model.Navigator, buildVersion string, buildDate string,
	buildCommit string, configPath string, logPath string,
) *UI {
	zone.NewGlobal()

	options := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithFPS(userConfig.FPS),
	}
	if userConfig.Mouse {
		options = append(options, tea.WithMouseCellMotion())
	}

	return &UI{
		program: tea.NewProgram(
			newRootModel(
				userConfig,
				navigator,
				buildVersion,
				buildDate,
				buildCommit,
				configPath,
				logPath),
			options...),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}

// StartNavigator opens the role and sub-flow named by roleName and flowID. Either may be
// empty. Unknown values are logged and skipped, so the navigator stays on the deepest valid
// view.
func StartNavigator(roleName string, flowID string) model.Navigator {
	navigator := model.NewNavigator()
	if roleName == "" {
		if flowID != "" {
			slog.Warn("Ignoring start flow without a role", slog.String("flow", flowID))
		}

		return navigator
	}

	role, errRole := flow.ParseRole(roleName)
	if errRole != nil {
		slog.Warn("Ignoring invalid start role", slog.String("error", errRole.Error()))

		return navigator
	}

	navigator.Navigate(role)

	if flowID != "" && !navigator.SelectID(flowID) {
		slog.Warn("Ignoring unknown start flow", slog.String("role", role.String()), slog.String("flow", flowID))
	}

	return navigator
}
