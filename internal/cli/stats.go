// stats.go implements the "pomo stats" command printing the analytics summary.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/pomo-dev/pomo/internal/analytics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print analytics",
	Long: `Print today's and this week's completed pomodoros, the total, the
current streak, and the per-mode breakdown. Only work sessions count.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var (
	statsJSONFlag bool
	statsDateFlag string
)

func init() {
	statsCmd.Flags().BoolVar(&statsJSONFlag, "json", false, "Print the summary as JSON")
	statsCmd.Flags().StringVar(&statsDateFlag, "date", "", "Compute statistics as of this date (YYYY-MM-DD, default today)")
}

func runStats(cmd *cobra.Command, args []string) error {
	today := analytics.DateOf(time.Now())
	if statsDateFlag != "" {
		d, err := analytics.ParseDate(statsDateFlag)
		if err != nil {
			return fmt.Errorf("--date: %w", err)
		}
		today = d
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	data, err := e.load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: analytics unreadable, showing empty totals: %v\n", err)
	}

	summary := analytics.Summarize(data, today)
	out := cmd.OutOrStdout()
	if statsJSONFlag {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	printSummary(out, summary)
	return nil
}

func printSummary(w io.Writer, s analytics.Summary) {
	rows := []struct {
		label string
		value int
		unit  string
	}{
		{"Today", s.Today, "pomodoros"},
		{"This week", s.Week, "pomodoros"},
		{"Total", s.Total, "pomodoros"},
		{"Current streak", s.Streak, "days"},
		{"Short mode", s.Short, "pomodoros"},
		{"Long mode", s.Long, "pomodoros"},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-16s %4d %s\n", r.label+":", r.value, r.unit)
	}
}
