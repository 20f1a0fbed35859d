package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/agri-tui/internal/config"
	"github.com/leighmacdonald/agri-tui/internal/ui"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	startRole      string
	startFlow      string
	printFlow      string
	printWidth     int
	rootCmd        = &cobra.Command{
		Use:   "agri-tui",
		Short: "AgriConnect flowchart navigator",
		Long:  `agri-tui - Browse the AgriConnect business process flowcharts for farmers, buyers and companies`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about agri-tui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	printCmd = &cobra.Command{
		Use:       "print [role]",
		Short:     "Render a flowchart to stdout",
		Long:      "Render the landing page, or the chart of a role with an optional sub-flow panel, to stdout",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"farmer", "buyer", "company"},
		RunE:      printChart,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.Flags().StringVar(&startRole, "role", "", "Open the chart of this role on start")
	rootCmd.Flags().StringVar(&startFlow, "flow", "", "Open this sub-flow of the start role")
	printCmd.Flags().StringVar(&printFlow, "flow", "", "Expand this sub-flow below the chart")
	printCmd.Flags().IntVar(&printWidth, "width", defaultPrintWidth, "Render width in columns")
	rootCmd.AddCommand(versionCmd, printCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("agri-tui - AgriConnect Terminal UI\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)          //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)           //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)             //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)      //nolint:forbidigo
}

func printChart(cmd *cobra.Command, args []string) error {
	var role string
	if len(args) > 0 {
		role = args[0]
	}

	return render(cmd.OutOrStdout(), role, printFlow, printWidth)
}

// run is the main entry point of agri-tui.
func run(cmd *cobra.Command, _ []string) error {
	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)
	configLoader := config.NewLoader(configUpdates, cfgFile)
	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logPath := config.Path(config.DefaultLogName)
	logFile, errLogger := config.LoggerInit(logPath, userConfig.Level())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting agri-tui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	// Command line flags take precedence over the configured start view.
	if startRole == "" {
		startRole = userConfig.StartRole
	}
	if startFlow == "" && startRole == userConfig.StartRole {
		startFlow = userConfig.StartFlow
	}

	configPath := configLoader.Path()
	if configPath == "" {
		configPath = config.Path(config.DefaultConfigName + ".yaml")
	}

	// Cancelled once the UI exits so late config reloads are dropped.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	program := ui.New(ctx, userConfig, ui.StartNavigator(startRole, startFlow),
		BuildVersion, BuildDate, BuildCommit, configPath, logPath)

	configLoader.Watch(ctx)

	if err := NewApp(program, configUpdates).Start(ctx); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}
