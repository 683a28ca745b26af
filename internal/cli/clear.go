// clear.go implements the "pomo clear" command that deletes all analytics.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pomo-dev/pomo/internal/analytics"
	"github.com/pomo-dev/pomo/internal/log"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded pomodoros",
	Long: `Delete every recorded session. Asks for confirmation unless --yes is
given; without a terminal on stdin --yes is required.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

var clearYesFlag bool

// stdinIsTerminal reports whether confirmation can be asked interactively.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYesFlag, "yes", "y", false, "Do not ask for confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	// A corrupt record still gets cleared; the count is just unknown.
	data, loadErr := e.load()
	if loadErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: analytics unreadable: %v\n", loadErr)
	}
	count := data.TotalCount()
	out := cmd.OutOrStdout()

	if !clearYesFlag {
		if !stdinIsTerminal() {
			return errors.New("refusing to clear analytics without a terminal; pass --yes")
		}
		fmt.Fprintf(out, "Delete %d recorded pomodoros? [y/N]: ", count)
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := e.store.Save(analytics.Clear(data)); err != nil {
		_ = e.logger.Append(log.LogEvent{Event: log.EventAnalyticsSaveFailed, Error: err.Error()})
		return fmt.Errorf("clearing analytics: %w", err)
	}
	_ = e.logger.Append(log.LogEvent{Event: log.EventAnalyticsCleared, Sessions: count})

	fmt.Fprintf(out, "Cleared %d pomodoros.\n", count)
	return nil
}
