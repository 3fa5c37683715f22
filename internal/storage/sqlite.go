package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SQLite keeps each document as a row in a single table. It satisfies
// Backend's tolerant contract: read and write errors never escape.
type SQLite struct {
	db   *sql.DB
	path string
}

func appDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	base := filepath.Join(home, ".local", "share", "termin")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", err
	}
	return base, nil
}

// OpenSQLite opens (or creates) the document store in dir. An empty dir
// selects the default data directory under the user's home.
func OpenSQLite(dir string) (*SQLite, error) {
	if dir == "" {
		var err error
		dir, err = appDataDir()
		if err != nil {
			return nil, err
		}
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, "termin.db")
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path,
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("schema apply failed: %w", err)
	}
	return &SQLite{db: db, path: path}, nil
}

func (s *SQLite) Get(key string) ([]byte, bool) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM documents WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return nil, false
	}
	return value, true
}

func (s *SQLite) Set(key string, value []byte) {
	_, _ = s.db.Exec(`
		INSERT INTO documents(key, value) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
}

// Path returns the database file location, for display.
func (s *SQLite) Path() string {
	return s.path
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
