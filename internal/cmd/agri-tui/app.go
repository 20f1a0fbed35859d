package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/agri-tui/internal/config"
	"golang.org/x/sync/errgroup"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. Very little logic is contained within this struct. Its mostly
// responsible for routing messages between different systems.
type App struct {
	ui            UI
	configUpdates <-chan config.Config
}

// NewApp returns a new application instance. To actually start the app you must call
// Start().
func NewApp(program UI, configUpdates <-chan config.Config) *App {
	return &App{
		ui:            program,
		configUpdates: configUpdates,
	}
}

// Start runs the UI until it exits, forwarding config reloads to it in the meantime. The
// routing loop stops together with the UI.
func (app *App) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks, ctx := errgroup.WithContext(ctx)

	tasks.Go(func() error {
		defer cancel()

		return app.ui.Run()
	})

	tasks.Go(func() error {
		app.configRouter(ctx)

		return nil
	})

	return tasks.Wait()
}

// configRouter forwards reloaded configs to the UI.
func (app *App) configRouter(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			slog.Info("Config reloaded", slog.Bool("show_legend", conf.ShowLegend))
			app.ui.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}
