package analytics

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists the aggregate in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the SQLite database at dbPath and creates the
// sessions table if it doesn't exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := createTables(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		mode TEXT NOT NULL,
		phase TEXT NOT NULL,
		completed_at TEXT NOT NULL
	);
	`
	_, err := db.Exec(schema)
	return err
}

// Load reads every session ordered by insertion.
func (s *SQLiteStore) Load() (Data, error) {
	rows, err := s.db.Query(`SELECT mode, phase, completed_at FROM sessions ORDER BY id`)
	if err != nil {
		return Empty(), fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	data := Empty()
	for rows.Next() {
		var mode, phase, completedAt string
		if err := rows.Scan(&mode, &phase, &completedAt); err != nil {
			return Empty(), fmt.Errorf("scan session: %w", err)
		}
		rec, err := parseRow(mode, phase, completedAt)
		if err != nil {
			return Empty(), err
		}
		data.Sessions = append(data.Sessions, rec)
	}
	if err := rows.Err(); err != nil {
		return Empty(), fmt.Errorf("iterate sessions: %w", err)
	}
	return data, nil
}

func parseRow(mode, phase, completedAt string) (SessionRecord, error) {
	var rec SessionRecord
	if err := rec.Mode.UnmarshalText([]byte(mode)); err != nil {
		return rec, fmt.Errorf("parse session: %w", err)
	}
	if err := rec.Phase.UnmarshalText([]byte(phase)); err != nil {
		return rec, fmt.Errorf("parse session: %w", err)
	}
	if err := rec.CompletedAt.UnmarshalText([]byte(completedAt)); err != nil {
		return rec, fmt.Errorf("parse session: %w", err)
	}
	return rec, nil
}

// Save replaces the stored sessions with data in a single transaction.
func (s *SQLiteStore) Save(data Data) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM sessions`); err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO sessions (mode, phase, completed_at) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range data.Sessions {
		completedAt, err := rec.CompletedAt.MarshalText()
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(rec.Mode.String(), rec.Phase.Name(), string(completedAt)); err != nil {
			return fmt.Errorf("insert session: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)
var _ Store = (*JSONStore)(nil)
