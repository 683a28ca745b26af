// Package testutil provides test helper utilities for pomo tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempDir creates a temporary directory with the given files and returns its path.
// Files is a map of relative path -> content. Directories are created as needed.
// The directory is automatically cleaned up when the test finishes.
func TempDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for relPath, content := range files {
		absPath := filepath.Join(dir, relPath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// Session is one row of an analytics fixture.
type Session struct {
	Mode string
	Date string
}

// Work returns n work sessions of mode completed on date.
func Work(mode, date string, n int) []Session {
	out := make([]Session, n)
	for i := range out {
		out[i] = Session{Mode: mode, Date: date}
	}
	return out
}

// AnalyticsJSON returns analytics.json contents holding the given work sessions.
func AnalyticsJSON(sessions ...Session) string {
	type record struct {
		Mode        string `json:"mode"`
		Phase       string `json:"phase"`
		CompletedAt string `json:"completed_at"`
	}
	records := make([]record, 0, len(sessions))
	for _, s := range sessions {
		records = append(records, record{Mode: s.Mode, Phase: "Work", CompletedAt: s.Date})
	}
	raw, _ := json.MarshalIndent(map[string]interface{}{"sessions": records}, "", "  ")
	return string(raw) + "\n"
}

// ConfigYAML returns a config.yaml with the given top-level overrides.
// Keys are dotted paths one level deep, e.g. "storage.backend".
func ConfigYAML(overrides map[string]string) string {
	sections := map[string][]string{}
	var top []string
	for k, v := range overrides {
		section, field, ok := strings.Cut(k, ".")
		if !ok {
			top = append(top, fmt.Sprintf("%s: %s", k, v))
			continue
		}
		sections[section] = append(sections[section], fmt.Sprintf("  %s: %s", field, v))
	}

	var b strings.Builder
	b.WriteString("version: 1\n")
	for _, line := range top {
		b.WriteString(line + "\n")
	}
	for section, lines := range sections {
		b.WriteString(section + ":\n")
		for _, line := range lines {
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}
