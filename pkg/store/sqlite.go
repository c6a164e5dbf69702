package store

import (
	"database/sql"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteFile is the database file name used below the base path.
const SQLiteFile = "groupdo.db"

type sqliteKV struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) a single-table key-value database.
func OpenSQLite(dbPath string) (KV, error) {
	if dbPath == "" {
		return nil, errors.New("store: db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, err
	}
	return &sqliteKV{db: db, path: dbPath}, nil
}

func (s *sqliteKV) Read(key string) ([]byte, error) {
	var val []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?;`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (s *sqliteKV) Write(key string, val []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`, key, val, now)
	return err
}

func (s *sqliteKV) Has(key string) bool {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM kv WHERE key = ?;`, key).Scan(&one)
	return err == nil
}

func (s *sqliteKV) Erase(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?;`, key)
	return err
}

func (s *sqliteKV) Location() string {
	return filepath.Dir(s.path)
}

// Watches matches the database file and its -journal, -wal and -shm
// companions. Anything else in the directory is ignored.
func (s *sqliteKV) Watches(name string) bool {
	return strings.HasPrefix(filepath.Base(name), filepath.Base(s.path))
}

func (s *sqliteKV) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
