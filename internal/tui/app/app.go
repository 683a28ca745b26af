// Package app provides the main TUI application that wires the timer
// engine, the analytics store and the views together.
package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/pomo-dev/pomo/internal/analytics"
	"github.com/pomo-dev/pomo/internal/config"
	"github.com/pomo-dev/pomo/internal/log"
	"github.com/pomo-dev/pomo/internal/timer"
	"github.com/pomo-dev/pomo/internal/tui"
	"github.com/pomo-dev/pomo/internal/tui/views"
)

// App is the Bubble Tea model. It owns every piece of mutable application
// state; handlers only ever touch the App they are called on.
type App struct {
	cfg    *config.Config
	store  analytics.Store
	logger *log.Logger
	now    func() time.Time

	keys tui.KeyMap
	help help.Model

	screen   tui.Screen
	selected timer.Mode
	data     analytics.Data

	// Set while a timer session is in progress.
	timer    *timer.State
	runID    string
	lastTick time.Time

	showCompletion bool
	awaitingNext   bool
	confirmExit    bool
	confirmClear   bool
	status         string
	quitting       bool

	width  int
	height int
}

// New creates an App and loads the analytics aggregate from store. A
// missing or unreadable record starts the app with empty analytics.
func New(cfg *config.Config, store analytics.Store, logger *log.Logger) *App {
	a := &App{
		cfg:      cfg,
		store:    store,
		logger:   logger,
		now:      time.Now,
		keys:     tui.DefaultKeyMap,
		help:     help.New(),
		screen:   tui.ScreenMenu,
		selected: cfg.Mode(),
	}

	data, err := store.Load()
	if err != nil {
		a.logEvent(log.LogEvent{Event: log.EventAnalyticsLoadFailed, Error: err.Error()})
	}
	a.data = data
	a.logEvent(log.LogEvent{Event: log.EventAppStarted, Sessions: data.TotalCount()})
	return a
}

// Init starts the tick loop.
func (a *App) Init() tea.Cmd {
	return tui.Tick(a.cfg.TickInterval())
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tui.TickMsg:
		a.handleTick(msg.At)
		return a, tui.Tick(a.cfg.TickInterval())

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.CtrlC) {
			return a.quit()
		}
		switch a.screen {
		case tui.ScreenMenu:
			return a.updateMenu(msg)
		case tui.ScreenTimer:
			return a.updateTimer(msg)
		case tui.ScreenAnalytics:
			return a.updateAnalytics(msg)
		}
	}
	return a, nil
}

// View renders the current screen.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.screen {
	case tui.ScreenTimer:
		if a.timer == nil {
			return ""
		}
		helpKeys := a.keys.TimerHelp()
		switch {
		case a.confirmExit:
			helpKeys = a.keys.DialogHelp()
		case a.awaitingNext:
			helpKeys = a.keys.AwaitingHelp()
		}
		return views.Timer(views.TimerView{
			State:          *a.timer,
			ShowCompletion: a.showCompletion,
			AwaitingNext:   a.awaitingNext,
			ConfirmExit:    a.confirmExit,
			Status:         a.status,
			Help:           a.help.ShortHelpView(helpKeys),
			Width:          a.width,
			Height:         a.height,
		})

	case tui.ScreenAnalytics:
		helpKeys := a.keys.AnalyticsHelp()
		if a.confirmClear {
			helpKeys = a.keys.DialogHelp()
		}
		return views.Analytics(views.AnalyticsView{
			Summary:      analytics.Summarize(a.data, a.today()),
			ConfirmClear: a.confirmClear,
			Status:       a.status,
			Help:         a.help.ShortHelpView(helpKeys),
			Width:        a.width,
			Height:       a.height,
		})

	default:
		return views.Menu(views.MenuView{
			Selected: a.selected,
			Help:     a.help.ShortHelpView(a.keys.MenuHelp()),
			Width:    a.width,
			Height:   a.height,
		})
	}
}

// ============================================================================
// Menu
// ============================================================================

func (a *App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	case key.Matches(msg, a.keys.Down):
		a.selected = a.selected.Next()
	case key.Matches(msg, a.keys.Up):
		a.selected = a.selected.Prev()
	case key.Matches(msg, a.keys.Start):
		a.startTimer(a.selected)
	case key.Matches(msg, a.keys.Analytics):
		a.status = ""
		a.screen = tui.ScreenAnalytics
	}
	return a, nil
}

func (a *App) startTimer(mode timer.Mode) {
	state := timer.Start(mode)
	a.timer = &state
	a.runID = uuid.New().String()
	a.lastTick = a.now()
	a.showCompletion = false
	a.awaitingNext = false
	a.confirmExit = false
	a.status = ""
	a.screen = tui.ScreenTimer
	a.logEvent(log.LogEvent{Event: log.EventTimerStarted, Mode: mode.String()})
}

// ============================================================================
// Timer
// ============================================================================

func (a *App) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.timer == nil {
		a.screen = tui.ScreenMenu
		return a, nil
	}

	if a.confirmExit {
		switch {
		case key.Matches(msg, a.keys.Confirm):
			a.discardTimer()
		case key.Matches(msg, a.keys.Cancel):
			a.confirmExit = false
		}
		return a, nil
	}

	if a.awaitingNext {
		switch {
		case key.Matches(msg, a.keys.Continue):
			a.setTimer(a.timer.Resume())
			a.awaitingNext = false
			a.showCompletion = false
			a.lastTick = a.now()
		case key.Matches(msg, a.keys.Menu):
			a.awaitingNext = false
			a.confirmExit = true
		case key.Matches(msg, a.keys.Quit):
			return a.quit()
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	case key.Matches(msg, a.keys.Pause):
		a.setTimer(a.timer.Toggle())
		a.lastTick = a.now()
	case key.Matches(msg, a.keys.Reset):
		a.setTimer(a.timer.Reset())
	case key.Matches(msg, a.keys.Skip):
		next, event := a.timer.Skip()
		a.setTimer(next)
		a.lastTick = a.now()
		a.handleCompletion(event, true)
	case key.Matches(msg, a.keys.Menu):
		a.setTimer(a.timer.Pause())
		a.confirmExit = true
	}
	return a, nil
}

func (a *App) handleTick(at time.Time) {
	var elapsed time.Duration
	if !a.lastTick.IsZero() {
		elapsed = at.Sub(a.lastTick)
	}
	a.lastTick = at

	if a.screen != tui.ScreenTimer || a.timer == nil || a.awaitingNext || a.confirmExit {
		return
	}

	a.showCompletion = false
	next, event := a.timer.Tick(elapsed)
	a.setTimer(next)
	if event != nil {
		a.handleCompletion(*event, false)
	}
}

// handleCompletion records finished work phases. After a natural
// completion the next phase waits for the user unless auto_continue is set;
// a skip is already a user action and continues immediately.
func (a *App) handleCompletion(event timer.PhaseCompleted, skipped bool) {
	a.logEvent(log.LogEvent{
		Event:   log.EventPhaseCompleted,
		Mode:    event.Mode.String(),
		Phase:   event.Phase.Name(),
		Skipped: skipped,
	})

	if event.Phase == timer.PhaseWork {
		a.data = analytics.RecordSession(a.data, event, a.today())
		a.showCompletion = true
		if a.persist() {
			a.logEvent(log.LogEvent{Event: log.EventSessionRecorded, Mode: event.Mode.String(), Sessions: a.data.TotalCount()})
		}
	}

	if !skipped && !a.cfg.Timer.AutoContinue {
		a.setTimer(a.timer.Pause())
		a.awaitingNext = true
	}
}

func (a *App) discardTimer() {
	remaining := int64(0)
	if a.timer != nil {
		remaining = a.timer.Remaining.Milliseconds()
	}
	a.logEvent(log.LogEvent{Event: log.EventTimerDiscarded, Remaining: remaining})

	a.timer = nil
	a.runID = ""
	a.confirmExit = false
	a.awaitingNext = false
	a.showCompletion = false
	a.screen = tui.ScreenMenu
}

func (a *App) setTimer(s timer.State) {
	a.timer = &s
}

// ============================================================================
// Analytics
// ============================================================================

func (a *App) updateAnalytics(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.confirmClear {
		a.confirmClear = false
		if key.Matches(msg, a.keys.Confirm) {
			before := a.data.TotalCount()
			a.data = analytics.Clear(a.data)
			if a.persist() {
				a.logEvent(log.LogEvent{Event: log.EventAnalyticsCleared, Sessions: before})
			}
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	case key.Matches(msg, a.keys.Back):
		a.screen = tui.ScreenMenu
	case key.Matches(msg, a.keys.Clear):
		a.confirmClear = true
	}
	return a, nil
}

// ============================================================================
// Helpers
// ============================================================================

// persist saves the aggregate. On failure the in-memory aggregate is kept
// and the error is shown in the status line.
func (a *App) persist() bool {
	if err := a.store.Save(a.data); err != nil {
		a.status = fmt.Sprintf("Could not save analytics: %v", err)
		a.logEvent(log.LogEvent{Event: log.EventAnalyticsSaveFailed, Error: err.Error()})
		return false
	}
	a.status = ""
	return true
}

func (a *App) today() analytics.Date {
	return analytics.DateOf(a.now())
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.quitting = true
	return a, tea.Quit
}

func (a *App) logEvent(event log.LogEvent) {
	if event.RunID == "" {
		event.RunID = a.runID
	}
	// The event log is best effort; the UI never blocks on it.
	_ = a.logger.Append(event)
}
