package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/leighmacdonald/agri-tui/internal/config"
	"github.com/stretchr/testify/require"
)

func TestReadDefaultsWhenFileMissing(t *testing.T) {
	loader := config.NewLoader(nil, filepath.Join(t.TempDir(), "missing.yaml"))

	conf, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, 60, conf.FPS)
	require.True(t, conf.Mouse)
	require.True(t, conf.ShowLegend)
	require.False(t, conf.Debug)
	require.Empty(t, conf.StartRole)
	require.Equal(t, slog.LevelInfo, conf.Level())
}

func TestReadFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "agri-tui.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
fps: 30
mouse: false
show_legend: false
start_role: farmer
start_flow: health-visit
log_level: warn
`), 0o600))

	loader := config.NewLoader(nil, configPath)
	conf, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, configPath, loader.Path())
	require.Equal(t, 30, conf.FPS)
	require.False(t, conf.Mouse)
	require.False(t, conf.ShowLegend)
	require.Equal(t, "farmer", conf.StartRole)
	require.Equal(t, "health-visit", conf.StartFlow)
	require.Equal(t, slog.LevelWarn, conf.Level())
}

func TestReadInvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "agri-tui.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("fps: [1, 2\n"), 0o600))

	_, err := config.NewLoader(nil, configPath).Read()
	require.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("AGRITUI_START_ROLE", "company")

	conf, err := config.NewLoader(nil, filepath.Join(t.TempDir(), "none.yaml")).Read()
	require.NoError(t, err)
	require.Equal(t, "company", conf.StartRole)
}

func TestLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, config.Config{Debug: true, LogLevel: "error"}.Level())
	require.Equal(t, slog.LevelError, config.Config{LogLevel: "ERROR"}.Level())
	require.Equal(t, slog.LevelInfo, config.Config{LogLevel: "chatty"}.Level())
	require.Equal(t, slog.LevelInfo, config.Config{}.Level())
}
