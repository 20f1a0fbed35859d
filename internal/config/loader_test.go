package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, configPath string, body string) {
	t.Helper()

	require.NoError(t, os.WriteFile(configPath, []byte(body), 0o600))
}

func TestConfigChangeReloadsLegend(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "agri-tui.yaml")
	writeConfig(t, configPath, "show_legend: true\n")

	changes := make(chan Config, 1)
	loader := NewLoader(changes, configPath)
	conf, err := loader.Read()
	require.NoError(t, err)
	require.True(t, conf.ShowLegend)

	writeConfig(t, configPath, "show_legend: false\n")
	loader.onConfigChange(fsnotify.Event{Name: configPath, Op: fsnotify.Write})

	select {
	case reloaded := <-changes:
		require.False(t, reloaded.ShowLegend)
		require.Equal(t, 60, reloaded.FPS)
	case <-time.After(time.Second):
		t.Fatal("config change was not forwarded")
	}
}

func TestConfigChangeIgnoresChmod(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "agri-tui.yaml")
	writeConfig(t, configPath, "show_legend: true\n")

	changes := make(chan Config, 1)
	loader := NewLoader(changes, configPath)
	_, err := loader.Read()
	require.NoError(t, err)

	loader.onConfigChange(fsnotify.Event{Name: configPath, Op: fsnotify.Chmod})
	require.Empty(t, changes)
}

func TestConfigChangeDroppedAfterShutdown(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "agri-tui.yaml")
	writeConfig(t, configPath, "show_legend: true\n")

	// Nobody reads from changes, like after the app router has stopped.
	changes := make(chan Config)
	loader := NewLoader(changes, configPath)
	_, err := loader.Read()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	loader.ctx = ctx

	done := make(chan struct{})
	go func() {
		loader.onConfigChange(fsnotify.Event{Name: configPath, Op: fsnotify.Write})
		close(done)
	}()

	require.Eventually(t, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
