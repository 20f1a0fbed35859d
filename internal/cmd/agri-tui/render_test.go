package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/agri-tui/internal/config"
	"github.com/leighmacdonald/agri-tui/internal/flow"
	"github.com/stretchr/testify/require"
)

func TestRenderLanding(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, render(&out, "", "", 140))

	require.Contains(t, out.String(), "Farmer Role Flow")
	require.Contains(t, out.String(), "Company Role Flow")
}

func TestRenderChartWithPanel(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, render(&out, "company", "manage-inventory", 140))

	require.Contains(t, out.String(), "Agricultural Company Flow")
	require.Contains(t, out.String(), "Inventory & Logistics Management by AgriConnect")
	require.NotContains(t, out.String(), "Select any of the 4 options")
}

func TestRenderUnknownFlow(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, render(&out, "buyer", "inputs", 140))

	require.Contains(t, out.String(), "Crop Buyer Flow")
	require.Contains(t, out.String(), "Select any of the 3 main options")
	require.NotContains(t, out.String(), "Order Agri-Inputs Process")
}

func TestRenderUnknownRole(t *testing.T) {
	var out bytes.Buffer
	err := render(&out, "trader", "", 140)

	require.ErrorIs(t, err, flow.ErrUnknownRole)
	require.ErrorIs(t, err, errPrint)
	require.Empty(t, out.String())
}

type fakeUI struct {
	sent    chan tea.Msg
	release chan struct{}
	err     error
}

func (f *fakeUI) Send(msg tea.Msg) {
	f.sent <- msg
}

func (f *fakeUI) Run() error {
	<-f.release

	return f.err
}

func TestAppForwardsConfig(t *testing.T) {
	updates := make(chan config.Config)
	program := &fakeUI{sent: make(chan tea.Msg, 1), release: make(chan struct{}), err: errors.New("closed")}

	done := make(chan error)
	go func() {
		done <- NewApp(program, updates).Start(context.Background())
	}()

	updates <- config.Config{ShowLegend: true, FPS: 30}
	require.Equal(t, config.Config{ShowLegend: true, FPS: 30}, <-program.sent)

	close(program.release)
	require.ErrorIs(t, <-done, program.err)
}
