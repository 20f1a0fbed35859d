package config

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	ctx     context.Context //nolint:containedctx
	changes chan<- Config
}

// NewLoader creates a loader. When configFile is empty the standard search paths are used.
func NewLoader(changes chan<- Config, configFile string) *Loader {
	loader := Loader{ctx: context.Background(), changes: changes, Viper: viper.New()}
	loader.SetDefault("debug", false)
	loader.SetDefault("fps", 60)
	loader.SetDefault("mouse", true)
	loader.SetDefault("show_legend", true)
	loader.SetDefault("start_role", "")
	loader.SetDefault("start_flow", "")
	loader.SetDefault("log_level", "info")
	loader.SetConfigType("yaml")
	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}
	loader.SetEnvPrefix(EnvPrefix)
	loader.AutomaticEnv()

	return &loader
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

// Watch starts reloading the config file on external modifications. It is a no-op when no
// config file exists. Reloads are dropped once ctx is done.
func (cl *Loader) Watch(ctx context.Context) {
	if cl.ConfigFileUsed() == "" {
		return
	}

	cl.ctx = ctx

	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Create) && !in.Has(fsnotify.Rename) {
		return
	}

	slog.Debug("External config reload triggered", slog.String("file", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes == nil {
		return
	}

	select {
	case cl.changes <- config:
	case <-cl.ctx.Done():
		slog.Debug("Dropped config reload, nothing is listening")
	}
}

// Read loads the config file, if present, on top of the defaults and environment.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if config.FPS <= 0 {
		config.FPS = 60
	}

	return config, nil
}
