package analytics

import (
	"testing"
	"time"

	"github.com/pomo-dev/pomo/internal/timer"
)

func day(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func workOn(dates ...string) Data {
	data := Empty()
	for _, d := range dates {
		data = RecordSession(data, timer.PhaseCompleted{Mode: timer.ModeShort, Phase: timer.PhaseWork}, day(d))
	}
	return data
}

func TestRecordSessionAppendsWork(t *testing.T) {
	data := Empty()
	data = RecordSession(data, timer.PhaseCompleted{Mode: timer.ModeLong, Phase: timer.PhaseWork}, day("2024-03-05"))

	if len(data.Sessions) != 1 {
		t.Fatalf("len(Sessions) = %d, want 1", len(data.Sessions))
	}
	want := SessionRecord{Mode: timer.ModeLong, Phase: timer.PhaseWork, CompletedAt: day("2024-03-05")}
	if data.Sessions[0] != want {
		t.Errorf("Sessions[0] = %+v, want %+v", data.Sessions[0], want)
	}
}

func TestRecordSessionIgnoresBreak(t *testing.T) {
	data := workOn("2024-03-05")
	got := RecordSession(data, timer.PhaseCompleted{Mode: timer.ModeShort, Phase: timer.PhaseBreak}, day("2024-03-05"))

	if got.TotalCount() != 1 {
		t.Errorf("TotalCount = %d, want 1 (break completions are not counted)", got.TotalCount())
	}
	if len(got.Sessions) != 1 {
		t.Errorf("len(Sessions) = %d, want 1", len(got.Sessions))
	}
}

func TestRecordSessionDoesNotAliasInput(t *testing.T) {
	base := workOn("2024-03-01")
	a := RecordSession(base, timer.PhaseCompleted{Mode: timer.ModeShort, Phase: timer.PhaseWork}, day("2024-03-02"))
	b := RecordSession(base, timer.PhaseCompleted{Mode: timer.ModeLong, Phase: timer.PhaseWork}, day("2024-03-03"))

	if len(base.Sessions) != 1 {
		t.Errorf("input mutated: len = %d, want 1", len(base.Sessions))
	}
	if a.Sessions[1].Mode != timer.ModeShort || b.Sessions[1].Mode != timer.ModeLong {
		t.Error("aggregates derived from the same input share storage")
	}
}

func TestClear(t *testing.T) {
	data := Clear(workOn("2024-01-01", "2024-01-02"))
	if data.TotalCount() != 0 || len(data.Sessions) != 0 {
		t.Errorf("Clear left %d sessions", len(data.Sessions))
	}
}

func TestEmptyAggregate(t *testing.T) {
	data := Empty()
	today := day("2024-01-03")
	if data.TotalCount() != 0 || data.DailyCount(today) != 0 ||
		data.WeeklyCount(WeekStart(today)) != 0 || data.Streak(today) != 0 {
		t.Error("empty aggregate should report zero everywhere")
	}
}

func TestDailyCount(t *testing.T) {
	data := workOn("2024-01-02", "2024-01-03", "2024-01-03")
	if got := data.DailyCount(day("2024-01-03")); got != 2 {
		t.Errorf("DailyCount = %d, want 2", got)
	}
	if got := data.DailyCount(day("2024-01-04")); got != 0 {
		t.Errorf("DailyCount = %d, want 0", got)
	}
}

func TestWeeklyCount(t *testing.T) {
	data := workOn("2023-12-31", "2024-01-01", "2024-01-07", "2024-01-08")
	if got := data.WeeklyCount(day("2024-01-01")); got != 2 {
		t.Errorf("WeeklyCount = %d, want 2 (01-01 and 01-07 only)", got)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2024-01-01", "2024-01-01"}, // Monday
		{"2024-01-07", "2024-01-01"}, // Sunday
		{"2024-01-03", "2024-01-01"},
		{"2024-01-08", "2024-01-08"},
		{"2024-03-01", "2024-02-26"}, // across a month boundary
	}
	for _, tt := range tests {
		if got := WeekStart(day(tt.in)); got != day(tt.want) {
			t.Errorf("WeekStart(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestStreak(t *testing.T) {
	data := workOn("2024-01-01", "2024-01-02", "2024-01-03")
	tests := []struct {
		name  string
		today string
		want  int
	}{
		{"ends today", "2024-01-03", 3},
		{"grace day", "2024-01-04", 3},
		{"broken", "2024-01-05", 0},
		{"mid streak", "2024-01-02", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := data.Streak(day(tt.today)); got != tt.want {
				t.Errorf("Streak(%s) = %d, want %d", tt.today, got, tt.want)
			}
		})
	}
}

func TestStreakStopsAtGap(t *testing.T) {
	data := workOn("2024-01-10", "2024-01-09", "2024-01-07", "2024-01-10")
	if got := data.Streak(day("2024-01-10")); got != 2 {
		t.Errorf("Streak = %d, want 2", got)
	}
}

func TestStreakIgnoresBreakRecords(t *testing.T) {
	data := Data{Sessions: []SessionRecord{
		{Mode: timer.ModeShort, Phase: timer.PhaseBreak, CompletedAt: day("2024-01-03")},
	}}
	if got := data.Streak(day("2024-01-03")); got != 0 {
		t.Errorf("Streak = %d, want 0", got)
	}
	if got := data.TotalCount(); got != 0 {
		t.Errorf("TotalCount = %d, want 0", got)
	}
}

func TestBreakdown(t *testing.T) {
	data := Empty()
	for _, mode := range []timer.Mode{timer.ModeShort, timer.ModeLong, timer.ModeShort} {
		data = RecordSession(data, timer.PhaseCompleted{Mode: mode, Phase: timer.PhaseWork}, day("2024-01-01"))
	}
	got := data.Breakdown()
	if got[timer.ModeShort] != 2 || got[timer.ModeLong] != 1 {
		t.Errorf("Breakdown = %v, want Short:2 Long:1", got)
	}

	empty := Empty().Breakdown()
	if n, ok := empty[timer.ModeLong]; !ok || n != 0 {
		t.Errorf("Breakdown of empty aggregate = %v, want every mode at 0", empty)
	}
}

func TestSummarize(t *testing.T) {
	data := Empty()
	record := func(mode timer.Mode, d string) {
		data = RecordSession(data, timer.PhaseCompleted{Mode: mode, Phase: timer.PhaseWork}, day(d))
	}
	record(timer.ModeShort, "2024-01-01")
	record(timer.ModeLong, "2024-01-02")
	record(timer.ModeShort, "2024-01-03")
	record(timer.ModeShort, "2024-01-03")
	record(timer.ModeLong, "2023-12-20")

	got := Summarize(data, day("2024-01-03"))
	want := Summary{Today: 2, Week: 4, Total: 5, Streak: 3, Short: 3, Long: 2}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
}

func TestDateArithmetic(t *testing.T) {
	if got := day("2024-03-01").AddDays(-1); got != day("2024-02-29") {
		t.Errorf("AddDays across leap day = %s", got)
	}
	if got := NewDate(2023, time.December, 32); got != day("2024-01-01") {
		t.Errorf("NewDate normalisation = %s", got)
	}
	if !day("2024-01-01").Before(day("2024-01-02")) || day("2024-01-02").Before(day("2024-01-02")) {
		t.Error("Before is wrong")
	}
	local := time.Date(2024, time.May, 6, 23, 30, 0, 0, time.FixedZone("X", 5*3600))
	if got := DateOf(local); got != day("2024-05-06") {
		t.Errorf("DateOf uses the time's own zone: got %s", got)
	}
}

func TestZeroDateHasNoEncoding(t *testing.T) {
	if _, err := (Date{}).MarshalText(); err == nil {
		t.Error("MarshalText of the zero Date should fail")
	}
	if _, err := Encode(Data{Sessions: []SessionRecord{{Mode: timer.ModeShort}}}); err == nil {
		t.Error("Encode should refuse an undated session")
	}
}
