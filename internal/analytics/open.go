package analytics

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage backends selectable in the config file.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// FileName returns the analytics file name used by backend.
func FileName(backend string) string {
	if backend == BackendSQLite {
		return "analytics.db"
	}
	return "analytics.json"
}

// Open returns the store for backend inside dataDir. It never returns a
// nil Store: when the backend cannot be opened the returned store reports
// the failure from Load and Save, so the application still starts with an
// empty aggregate.
func Open(backend, dataDir string) (Store, error) {
	path := filepath.Join(dataDir, FileName(backend))

	switch backend {
	case "", BackendJSON:
		return NewJSONStore(path), nil
	case BackendSQLite:
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			err = fmt.Errorf("creating data directory: %w", err)
			return unavailableStore{err: err}, err
		}
		store, err := NewSQLiteStore(path)
		if err != nil {
			return unavailableStore{err: err}, err
		}
		return store, nil
	default:
		err := fmt.Errorf("unknown storage backend %q", backend)
		return unavailableStore{err: err}, err
	}
}

type unavailableStore struct {
	err error
}

func (u unavailableStore) Load() (Data, error) { return Empty(), u.err }
func (u unavailableStore) Save(Data) error     { return u.err }
func (u unavailableStore) Close() error        { return nil }
