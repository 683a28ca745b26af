package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/pomo-dev/pomo/internal/timer"
	"github.com/pomo-dev/pomo/internal/tui"
)

const progressWidth = 40

// TimerView is the data needed to render the countdown screen.
type TimerView struct {
	State          timer.State
	ShowCompletion bool
	AwaitingNext   bool
	ConfirmExit    bool
	Status         string
	Help           string
	Width          int
	Height         int
}

// Timer renders the countdown screen, with the exit dialog on top when
// ConfirmExit is set.
func Timer(v TimerView) string {
	if v.ConfirmExit {
		return place(ConfirmDialog(
			"Exit to menu?",
			"Timer will be stopped and progress lost.",
			v.Help,
		), v.Width, v.Height)
	}

	s := v.State
	isBreak := s.Phase == timer.PhaseBreak
	color := tui.PhaseColor(isBreak)
	phaseColor := tui.WorkColor
	if isBreak {
		phaseColor = tui.BreakColor
	}

	header := stack(
		tui.SubtitleStyle.Render(s.Mode.Name()),
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(s.Phase.Name()),
	)

	var indicator string
	switch {
	case v.AwaitingNext:
		indicator = tui.AccentStyle.Render(fmt.Sprintf("%s is ready, press enter to start", s.Phase.Name()))
	case !s.Running:
		indicator = tui.PausedStyle.Render(" PAUSED ")
	}

	bar := progress.New(
		progress.WithSolidFill(phaseColor),
		progress.WithWidth(progressWidth),
	)
	bar.EmptyColor = tui.EmptyColor

	var banner string
	if v.ShowCompletion {
		banner = tui.BannerStyle.Render("Pomodoro completed!")
	}

	var status string
	if v.Status != "" {
		status = tui.ErrorStyle.Render(v.Status)
	}

	return place(stack(
		header,
		indicator,
		tui.ClockStyle(color).Render(s.FormatRemaining()),
		bar.ViewAs(s.Progress()),
		"",
		banner,
		status,
		"",
		v.Help,
	), v.Width, v.Height)
}

// ConfirmDialog renders a yes/no box.
func ConfirmDialog(question, detail, help string) string {
	return tui.DialogStyle.Render(stack(
		tui.TitleStyle.Render(question),
		tui.LabelStyle.Render(detail),
		"",
		help,
	))
}
