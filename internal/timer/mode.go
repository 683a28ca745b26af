// Package timer implements the Pomodoro phase state machine.
// The engine holds no clock: callers feed it elapsed time.
package timer

import (
	"fmt"
	"strings"
	"time"
)

// Mode is the selected timer profile. It fixes both work and break durations.
type Mode int

const (
	ModeShort Mode = iota // 25 min work, 5 min break
	ModeLong              // 50 min work, 10 min break
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModeShort, ModeLong}

// WorkDuration returns the nominal length of a work interval.
func (m Mode) WorkDuration() time.Duration {
	if m == ModeLong {
		return 50 * time.Minute
	}
	return 25 * time.Minute
}

// BreakDuration returns the nominal length of a break interval.
func (m Mode) BreakDuration() time.Duration {
	if m == ModeLong {
		return 10 * time.Minute
	}
	return 5 * time.Minute
}

// Name returns the label shown in the menu, e.g. "Short (25/5)".
func (m Mode) Name() string {
	if m == ModeLong {
		return "Long (50/10)"
	}
	return "Short (25/5)"
}

// Next returns the following mode in menu order, wrapping around.
func (m Mode) Next() Mode {
	return Modes[(m.index()+1)%len(Modes)]
}

// Prev returns the preceding mode in menu order, wrapping around.
func (m Mode) Prev() Mode {
	return Modes[(m.index()+len(Modes)-1)%len(Modes)]
}

func (m Mode) index() int {
	for i, mode := range Modes {
		if mode == m {
			return i
		}
	}
	return 0
}

func (m Mode) String() string {
	if m == ModeLong {
		return "Long"
	}
	return "Short"
}

// MarshalText encodes the mode as "Short" or "Long".
func (m Mode) MarshalText() ([]byte, error) {
	if m != ModeShort && m != ModeLong {
		return nil, fmt.Errorf("invalid mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes "Short" or "Long".
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Short":
		*m = ModeShort
	case "Long":
		*m = ModeLong
	default:
		return fmt.Errorf("unknown mode %q", string(text))
	}
	return nil
}

// ParseMode accepts user input such as "short", "Long" or "50".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short", "25", "s":
		return ModeShort, nil
	case "long", "50", "l":
		return ModeLong, nil
	}
	return ModeShort, fmt.Errorf("unknown mode %q (want short or long)", s)
}

// Phase says whether the active countdown is work or break.
type Phase int

const (
	PhaseWork Phase = iota
	PhaseBreak
)

// Name returns the display label.
func (p Phase) Name() string {
	if p == PhaseBreak {
		return "Break"
	}
	return "Work"
}

func (p Phase) String() string { return p.Name() }

// Next returns the phase that follows p.
func (p Phase) Next() Phase {
	if p == PhaseWork {
		return PhaseBreak
	}
	return PhaseWork
}

// MarshalText encodes the phase as "Work" or "Break".
func (p Phase) MarshalText() ([]byte, error) {
	if p != PhaseWork && p != PhaseBreak {
		return nil, fmt.Errorf("invalid phase %d", int(p))
	}
	return []byte(p.Name()), nil
}

// UnmarshalText decodes "Work" or "Break".
func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Work":
		*p = PhaseWork
	case "Break":
		*p = PhaseBreak
	default:
		return fmt.Errorf("unknown phase %q", string(text))
	}
	return nil
}

// Nominal returns the fixed duration of the given mode and phase.
func Nominal(mode Mode, phase Phase) time.Duration {
	if phase == PhaseBreak {
		return mode.BreakDuration()
	}
	return mode.WorkDuration()
}
