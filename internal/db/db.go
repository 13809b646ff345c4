package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// OpenDB opens the tracker database at path, creating its directory when
// needed, and applies all migrations. The pool is pinned to one connection:
// the tool is single-user, and an in-memory database only exists on the
// connection that created it.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 2000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %q: %w", p, err)
		}
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// OpenOrRecover is OpenDB for the on-disk tracker database. When the file is
// not a readable SQLite database it is moved aside (with its -wal and -shm
// companions), a warning is logged and a fresh database is created.
func OpenOrRecover(path string, log zerolog.Logger) (*sql.DB, error) {
	db, err := OpenDB(path)
	if err == nil || path == MemoryPath || !IsUnreadable(err) {
		return db, err
	}

	backup := fmt.Sprintf("%s.corrupt-%s", path, time.Now().Format("20060102-150405"))
	for _, suffix := range []string{"", "-wal", "-shm"} {
		if rerr := os.Rename(path+suffix, backup+suffix); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			return nil, fmt.Errorf("moving unreadable database aside: %w (open error: %v)", rerr, err)
		}
	}
	log.Warn().Err(err).Str("path", path).Str("backup", backup).
		Msg("database file is unreadable, moved it aside and starting from an empty one")

	return OpenDB(path)
}

// IsUnreadable reports whether err means the file is not a database or its
// contents are damaged (SQLITE_NOTADB, SQLITE_CORRUPT).
func IsUnreadable(err error) bool {
	var sqErr *sqlite.Error
	if !errors.As(err, &sqErr) {
		return false
	}
	switch sqErr.Code() & 0xff {
	case sqlite3.SQLITE_NOTADB, sqlite3.SQLITE_CORRUPT:
		return true
	}
	return false
}
