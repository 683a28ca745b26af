package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/pomo-dev/pomo/internal/analytics"
	"github.com/pomo-dev/pomo/internal/tui"
)

// AnalyticsView is the data needed to render the statistics screen.
type AnalyticsView struct {
	Summary      analytics.Summary
	ConfirmClear bool
	Status       string
	Help         string
	Width        int
	Height       int
}

type statLine struct {
	label string
	value int
	unit  string
}

// Analytics renders the statistics screen.
func Analytics(v AnalyticsView) string {
	if v.ConfirmClear {
		return place(ConfirmDialog(
			"Clear all data?",
			fmt.Sprintf("%d recorded pomodoros will be deleted.", v.Summary.Total),
			v.Help,
		), v.Width, v.Height)
	}

	lines := []statLine{
		{"Today", v.Summary.Today, "pomodoros"},
		{"This week", v.Summary.Week, "pomodoros"},
		{"Total", v.Summary.Total, "pomodoros"},
		{"Current streak", v.Summary.Streak, "days"},
		{"Short mode", v.Summary.Short, "pomodoros"},
		{"Long mode", v.Summary.Long, "pomodoros"},
	}

	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			tui.LabelStyle.Width(16).Align(lipgloss.Right).Render(l.label+":"),
			" ",
			tui.AccentStyle.Render(fmt.Sprintf("%d", l.value)),
			" ",
			tui.DimStyle.Render(l.unit),
		))
	}

	var status string
	if v.Status != "" {
		status = tui.ErrorStyle.Render(v.Status)
	}

	return place(stack(
		tui.SubtitleStyle.Render("  ANALYTICS  "),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		status,
		v.Help,
	), v.Width, v.Height)
}
