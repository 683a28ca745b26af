package log

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAppendAndReadAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	logger, err := NewLogger(dir)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	events := []LogEvent{
		{Event: EventTimerStarted, RunID: "r1", Mode: "Short"},
		{Event: EventPhaseCompleted, RunID: "r1", Mode: "Short", Phase: "Work", Skipped: true},
		{Event: EventSessionRecorded, RunID: "r1", Sessions: 4},
	}
	for _, ev := range events {
		if err := logger.Append(ev); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != len(events) {
		t.Fatalf("ReadAll returned %d events, want %d", len(got), len(events))
	}
	for i, ev := range got {
		if ev.Event != events[i].Event {
			t.Errorf("event %d: got %q, want %q", i, ev.Event, events[i].Event)
		}
		if ev.Time.IsZero() {
			t.Errorf("event %d: Time not set", i)
		}
	}
	if !got[1].Skipped || got[2].Sessions != 4 {
		t.Errorf("fields lost in round trip: %+v", got)
	}
}

func TestReadAllMissingFile(t *testing.T) {
	logger := &Logger{path: filepath.Join(t.TempDir(), FileName)}
	got, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on missing file: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadAll returned %d events, want 0", len(got))
	}
}

func TestReadAllReportsBadLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `{"event":"app_started"}` + "\n\nnot json\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	logger := &Logger{path: path}
	if _, err := logger.ReadAll(); err == nil {
		t.Error("ReadAll should fail on a malformed line")
	}
}

func TestNilLoggerDiscards(t *testing.T) {
	var logger *Logger
	if err := logger.Append(LogEvent{Event: EventAppStarted}); err != nil {
		t.Errorf("nil Append: %v", err)
	}
	got, err := logger.ReadAll()
	if err != nil || len(got) != 0 {
		t.Errorf("nil ReadAll = %v, %v", got, err)
	}
}
