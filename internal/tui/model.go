package tui

// Screen is the view currently shown by the application.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenTimer
	ScreenAnalytics
)

func (s Screen) String() string {
	switch s {
	case ScreenTimer:
		return "timer"
	case ScreenAnalytics:
		return "analytics"
	default:
		return "menu"
	}
}
