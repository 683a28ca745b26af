package views

import (
	"github.com/pomo-dev/pomo/internal/timer"
	"github.com/pomo-dev/pomo/internal/tui"
)

// MenuView is the data needed to render the mode selection screen.
type MenuView struct {
	Selected timer.Mode
	Help     string
	Width    int
	Height   int
}

// Menu renders the mode selection screen.
func Menu(v MenuView) string {
	title := tui.TitleStyle.Render("  POMODORO  ")
	subtitle := tui.LabelStyle.Render("Select a mode")

	options := make([]string, 0, len(timer.Modes))
	for i, mode := range timer.Modes {
		if mode == v.Selected {
			options = append(options, tui.SelectedOptionStyle(tui.ModeColor(i)).Render("▸ "+mode.Name()))
			continue
		}
		options = append(options, tui.OptionStyle.Render(mode.Name()))
	}

	return place(stack(
		title,
		subtitle,
		"",
		stack(options...),
		"",
		v.Help,
	), v.Width, v.Height)
}
