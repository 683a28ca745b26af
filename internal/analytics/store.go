package analytics

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store loads and saves the analytics aggregate.
//
// Load always returns a usable aggregate. When the stored record is
// missing it returns an empty aggregate and a nil error; when it cannot be
// read or parsed it returns an empty aggregate together with the reason,
// which callers may log but must not treat as fatal.
type Store interface {
	Load() (Data, error)
	Save(data Data) error
	Close() error
}

// JSONStore persists the aggregate as a single JSON file.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSONStore writing to path. The parent directory
// is created on the first Save.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the file the store reads and writes.
func (s *JSONStore) Path() string {
	return s.path
}

// Close is a no-op; the file is opened per call.
func (s *JSONStore) Close() error {
	return nil
}

// Load reads the analytics file.
func (s *JSONStore) Load() (Data, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Empty(), nil
		}
		return Empty(), fmt.Errorf("reading analytics: %w", err)
	}
	return Decode(raw)
}

// Save writes data to a temporary file and renames it over the analytics
// file, so a crash never leaves a half-written record behind.
func (s *JSONStore) Save(data Data) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating analytics directory: %w", err)
	}

	raw, err := Encode(data)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".analytics-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing analytics: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing analytics: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing analytics: %w", err)
	}
	return nil
}

// Encode serializes data as indented JSON.
func Encode(data Data) ([]byte, error) {
	if data.Sessions == nil {
		data.Sessions = []SessionRecord{}
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling analytics: %w", err)
	}
	return append(raw, '\n'), nil
}

// Decode parses a persisted record. Unknown fields are ignored. On any
// parse error it returns an empty aggregate and the error.
func Decode(raw []byte) (Data, error) {
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return Empty(), fmt.Errorf("parsing analytics: %w", err)
	}
	for i, rec := range data.Sessions {
		if rec.CompletedAt.IsZero() {
			return Empty(), fmt.Errorf("parsing analytics: session %d has no completed_at", i)
		}
	}
	if data.Sessions == nil {
		data.Sessions = []SessionRecord{}
	}
	return data, nil
}
