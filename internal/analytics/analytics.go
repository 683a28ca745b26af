package analytics

import (
	"github.com/pomo-dev/pomo/internal/timer"
)

// SessionRecord is one completed interval. Records are never modified.
type SessionRecord struct {
	Mode        timer.Mode  `json:"mode"`
	Phase       timer.Phase `json:"phase"`
	CompletedAt Date        `json:"completed_at"`
}

// Data is the persisted aggregate: every completed session in the order
// it was recorded.
type Data struct {
	Sessions []SessionRecord `json:"sessions"`
}

// Empty returns an aggregate with no sessions.
func Empty() Data {
	return Data{Sessions: []SessionRecord{}}
}

// RecordSession appends a record for a completed work phase. Break
// completions are returned unchanged: statistics measure focused work.
// The caller persists the result.
func RecordSession(data Data, event timer.PhaseCompleted, today Date) Data {
	if event.Phase != timer.PhaseWork {
		return data
	}
	sessions := make([]SessionRecord, len(data.Sessions), len(data.Sessions)+1)
	copy(sessions, data.Sessions)
	sessions = append(sessions, SessionRecord{
		Mode:        event.Mode,
		Phase:       event.Phase,
		CompletedAt: today,
	})
	return Data{Sessions: sessions}
}

// Clear returns an aggregate with every session removed.
func Clear(Data) Data {
	return Empty()
}

// work iterates over work-phase records only.
func (d Data) work(fn func(SessionRecord)) {
	for _, rec := range d.Sessions {
		if rec.Phase == timer.PhaseWork {
			fn(rec)
		}
	}
}

// TotalCount returns the number of completed work sessions.
func (d Data) TotalCount() int {
	n := 0
	d.work(func(SessionRecord) { n++ })
	return n
}

// DailyCount returns the number of work sessions completed on date.
func (d Data) DailyCount(date Date) int {
	n := 0
	d.work(func(rec SessionRecord) {
		if rec.CompletedAt == date {
			n++
		}
	})
	return n
}

// WeeklyCount returns the number of work sessions completed in
// [weekStart, weekStart+6 days].
func (d Data) WeeklyCount(weekStart Date) int {
	weekEnd := weekStart.AddDays(6)
	n := 0
	d.work(func(rec SessionRecord) {
		if !rec.CompletedAt.Before(weekStart) && !rec.CompletedAt.After(weekEnd) {
			n++
		}
	})
	return n
}

// Streak counts consecutive days with at least one work session, ending
// today. A day without sessions yet does not break the streak: when today
// has none, counting starts from yesterday.
func (d Data) Streak(today Date) int {
	days := make(map[Date]bool)
	d.work(func(rec SessionRecord) { days[rec.CompletedAt] = true })

	current := today
	if !days[current] {
		current = today.AddDays(-1)
		if !days[current] {
			return 0
		}
	}

	streak := 0
	for days[current] {
		streak++
		current = current.AddDays(-1)
	}
	return streak
}

// Breakdown returns the number of work sessions per mode. Every mode is
// present in the result, possibly with a zero count.
func (d Data) Breakdown() map[timer.Mode]int {
	counts := make(map[timer.Mode]int, len(timer.Modes))
	for _, mode := range timer.Modes {
		counts[mode] = 0
	}
	d.work(func(rec SessionRecord) { counts[rec.Mode]++ })
	return counts
}

// Summary bundles the statistics shown on the analytics screen.
type Summary struct {
	Today  int `json:"today"`
	Week   int `json:"week"`
	Total  int `json:"total"`
	Streak int `json:"streak"`
	Short  int `json:"short"`
	Long   int `json:"long"`
}

// Summarize computes every statistic relative to today.
func Summarize(data Data, today Date) Summary {
	breakdown := data.Breakdown()
	return Summary{
		Today:  data.DailyCount(today),
		Week:   data.WeeklyCount(WeekStart(today)),
		Total:  data.TotalCount(),
		Streak: data.Streak(today),
		Short:  breakdown[timer.ModeShort],
		Long:   breakdown[timer.ModeLong],
	}
}
