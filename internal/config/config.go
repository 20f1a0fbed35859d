package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/adrg/xdg"
)

var (
	errConfigRead = errors.New("failed to read config file")
	errLoggerInit = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "agri-tui"
	DefaultConfigName = "agri-tui"
	DefaultLogName    = "agri-tui.log"
	EnvPrefix         = "agritui"
)

type Config struct {
	Debug bool `mapstructure:"debug"`
	// FPS caps the renderer frame rate.
	FPS   int  `mapstructure:"fps"`
	Mouse bool `mapstructure:"mouse"`
	// ShowLegend toggles the node kind legend below each chart. It is applied live when the
	// config file changes.
	ShowLegend bool `mapstructure:"show_legend"`
	// StartRole and StartFlow open the UI directly on a chart and panel. Invalid values are
	// ignored and the UI starts on the landing page.
	StartRole string `mapstructure:"start_role"`
	StartFlow string `mapstructure:"start_flow"`
	LogLevel  string `mapstructure:"log_level"`
}

// Level converts LogLevel into a slog level, defaulting to info. Debug mode always logs at debug.
func (c Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}

	return level
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(logPath)
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
