package timer

import (
	"fmt"
	"time"
)

// PhaseCompleted is emitted whenever a phase finishes, either because the
// countdown reached zero or because it was skipped.
type PhaseCompleted struct {
	Mode  Mode
	Phase Phase
}

// State is a snapshot of a running Pomodoro session.
// States are values: every operation returns a new State.
type State struct {
	Mode      Mode
	Phase     Phase
	Remaining time.Duration
	Running   bool
}

// Start returns a running work phase with the full duration for mode.
func Start(mode Mode) State {
	return State{
		Mode:      mode,
		Phase:     PhaseWork,
		Remaining: mode.WorkDuration(),
		Running:   true,
	}
}

// Tick advances the countdown by elapsed. A paused state, or a
// non-positive elapsed, is returned unchanged. When the countdown reaches
// zero the phase completes: the event is returned and the state moves to
// the next phase with its full duration. Time past zero is dropped.
func (s State) Tick(elapsed time.Duration) (State, *PhaseCompleted) {
	if !s.Running || elapsed <= 0 {
		return s, nil
	}
	if elapsed < s.Remaining {
		s.Remaining -= elapsed
		return s, nil
	}
	next, event := s.complete()
	return next, &event
}

// Pause stops the countdown.
func (s State) Pause() State {
	s.Running = false
	return s
}

// Resume restarts the countdown.
func (s State) Resume() State {
	s.Running = true
	return s
}

// Toggle flips between paused and running.
func (s State) Toggle() State {
	if s.Running {
		return s.Pause()
	}
	return s.Resume()
}

// Reset reloads the full duration of the current phase. Running is kept.
func (s State) Reset() State {
	s.Remaining = s.Nominal()
	return s
}

// Skip completes the current phase immediately, exactly as if the
// countdown had reached zero.
func (s State) Skip() (State, PhaseCompleted) {
	return s.complete()
}

func (s State) complete() (State, PhaseCompleted) {
	event := PhaseCompleted{Mode: s.Mode, Phase: s.Phase}
	s.Phase = s.Phase.Next()
	s.Remaining = s.Nominal()
	s.Running = true
	return s, event
}

// Nominal returns the full duration of the current phase.
func (s State) Nominal() time.Duration {
	return Nominal(s.Mode, s.Phase)
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
func (s State) Progress() float64 {
	total := s.Nominal()
	if total <= 0 {
		return 1
	}
	progress := 1 - float64(s.Remaining)/float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// FormatRemaining renders the remaining time as MM:SS.
func (s State) FormatRemaining() string {
	secs := int64(s.Remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
