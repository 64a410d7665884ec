// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/invowk/surfacegen/internal/config"
	"github.com/invowk/surfacegen/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// App carries the state shared by every command of one invocation.
type App struct {
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger

	// verbose and configFile are bound to the persistent flags.
	verbose    bool
	configFile string

	// loadOpts seeds config.Load; tests point it at temp directories.
	loadOpts config.LoadOptions

	cfg     *config.Config
	cfgPath string
}

// NewApp returns an App writing to the given streams.
func NewApp(stdout, stderr io.Writer) *App {
	return &App{
		stdout: stdout,
		stderr: stderr,
		logger: log.NewWithOptions(stderr, log.Options{Prefix: config.AppName}),
		cfg:    config.DefaultConfig(),
	}
}

func newRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Generate and resolve versioned native API surfaces",
		Long: TitleStyle.Render("surfacegen") + SubtitleStyle.Render(" - versioned native API surfaces for Go") + `

surfacegen reads an API manifest describing the host's chains of
versioned function tables and generates a Go file with one callable
per host function, plus the descriptors the runtime resolver needs to
locate every table in the host's api struct graph.

` + SubtitleStyle.Render("Examples:") + `
  surfacegen generate --manifest gdnative_api.json --output surface_gen.go
  surfacegen generate --check       Fail if the output is out of date
  surfacegen check gdnative_api.json
  surfacegen maptype "const godot_string *"
  surfacegen config show`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.loadConfig(cmd.Context())
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/surfacegen/surfacegen.cue)")

	rootCmd.AddCommand(newGenerateCommand(app))
	rootCmd.AddCommand(newCheckCommand(app))
	rootCmd.AddCommand(newMaptypeCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. It is called by main.main().
func Execute() {
	app := NewApp(os.Stdout, os.Stderr)
	if err := fang.Execute(
		context.Background(),
		newRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(types.ExitFailure))
	}
}

// loadConfig resolves the configuration and applies its log level. A broken
// config file is reported and the defaults are used instead.
func (a *App) loadConfig(ctx context.Context) {
	opts := a.loadOpts
	if a.configFile != "" {
		opts.ConfigFilePath = a.configFile
	}

	cfg, path, err := config.Load(ctx, opts)
	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.verbose))
		cfg, path = config.DefaultConfig(), ""
	}
	a.cfg, a.cfgPath = cfg, path

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if a.verbose {
		level = log.DebugLevel
	}
	a.logger.SetLevel(level)
	a.logger.Debug("configuration loaded", "file", path)
}
