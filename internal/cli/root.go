// Package cli defines Cobra command definitions for the pomo CLI.
// This file contains the root command, persistent flags, and shared setup.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pomo-dev/pomo/internal/analytics"
	"github.com/pomo-dev/pomo/internal/config"
	"github.com/pomo-dev/pomo/internal/log"
	"github.com/pomo-dev/pomo/internal/tui"
	"github.com/pomo-dev/pomo/internal/tui/app"
)

// stdoutIsTerminal reports whether the TUI can take over the screen.
var stdoutIsTerminal = tui.IsTTY

var (
	configFlag  string
	dataDirFlag string
	version     = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "pomo",
	Short: "Pomodoro timer for the terminal",
	Long: `pomo runs Pomodoro work/break cycles in the terminal and keeps
analytics of completed work sessions: daily and weekly counts, your
current streak, and a per-mode breakdown.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !stdoutIsTerminal() {
			tui.Fallback(cmd.OutOrStdout())
			return nil
		}

		env, err := openEnv()
		if err != nil {
			return err
		}
		defer env.Close()

		return tui.Run(app.New(env.cfg, env.store, env.logger))
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default <user config dir>/pomo/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Directory holding analytics and the event log")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(configCmd)
}

// env is everything a command needs once flags and config are resolved.
type env struct {
	cfg        *config.Config
	configPath string
	dataDir    string
	store      analytics.Store
	logger     *log.Logger
}

func (e *env) Close() {
	if e.store != nil {
		e.store.Close()
	}
}

// resolveConfig loads the config named by --config (or the default path)
// and applies --data-dir.
func resolveConfig() (*config.Config, string, error) {
	path := configFlag
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, "", err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	if dataDirFlag != "" {
		cfg.Storage.DataDir = dataDirFlag
	}
	return cfg, path, nil
}

// openEnv resolves config and opens the analytics store and event log.
// A store that cannot be opened is not fatal: it reports the failure from
// Load and Save, and the caller of Load logs it.
func openEnv() (*env, error) {
	cfg, path, err := resolveConfig()
	if err != nil {
		return nil, err
	}

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, configPath: path, dataDir: dataDir}

	if cfg.Log.Enabled {
		logger, logErr := log.NewLogger(dataDir)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: event log disabled: %v\n", logErr)
		} else {
			e.logger = logger
		}
	}

	// Open errors resurface from Load.
	e.store, _ = analytics.Open(cfg.Storage.Backend, dataDir)
	return e, nil
}

// load reads the aggregate, logging an unreadable record.
func (e *env) load() (analytics.Data, error) {
	data, err := e.store.Load()
	if err != nil {
		_ = e.logger.Append(log.LogEvent{
			Event: log.EventAnalyticsLoadFailed,
			Path:  e.cfg.AnalyticsPath(e.dataDir),
			Error: err.Error(),
		})
	}
	return data, err
}
