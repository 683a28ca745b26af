// path.go implements the "pomo path" command listing file locations.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pomo-dev/pomo/internal/log"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where config, analytics and the event log live",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, configPath, err := resolveConfig()
		if err != nil {
			return err
		}
		dataDir, err := cfg.ResolveDataDir()
		if err != nil {
			return err
		}

		logPath := "(disabled)"
		if cfg.Log.Enabled {
			logPath = filepath.Join(dataDir, log.FileName)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config:    %s\n", configPath)
		fmt.Fprintf(out, "data dir:  %s\n", dataDir)
		fmt.Fprintf(out, "analytics: %s\n", cfg.AnalyticsPath(dataDir))
		fmt.Fprintf(out, "log:       %s\n", logPath)
		return nil
	},
}
