// Package replstore persists REPL history to a small SQLite database
// (SPEC_FULL.md §6), using the modernc.org/sqlite driver the teacher
// already depends on. No call site of it survived into the retrieved
// pack, so usage here follows plain database/sql idiom rather than any
// teacher convention.
package replstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	line         TEXT NOT NULL,
	submitted_at TEXT NOT NULL
)`

// Store wraps a SQLite-backed history log.
type Store struct {
	db *sql.DB
}

// Open creates the database (and its parent directory) if necessary and
// ensures the schema exists.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("replstore: empty history path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("replstore: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("replstore: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("replstore: %w", err)
	}
	return &Store{db: db}, nil
}

// Append records one submitted REPL line. Writes happen synchronously so
// a crash never loses more than the in-flight line (SPEC_FULL.md §5).
func (s *Store) Append(line string, at time.Time) error {
	_, err := s.db.Exec(`INSERT INTO history(line, submitted_at) VALUES (?, ?)`, line, at.UTC().Format(time.RFC3339))
	return err
}

// Recent returns up to limit most-recently-submitted lines, oldest first,
// suitable for seeding a line editor's in-memory history.
func (s *Store) Recent(limit int) ([]string, error) {
	rows, err := s.db.Query(`SELECT line FROM history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
