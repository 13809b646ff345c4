package db

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the user_version a fully migrated database reports.
var SchemaVersion = len(migrations)

// Migrate applies every migration newer than the database's user_version,
// each in its own transaction. Safe to call repeatedly.
func Migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := version; i < len(migrations); i++ {
		if err := applyMigration(db, i); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}

func applyMigration(db *sql.DB, i int) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range migrations[i] {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	// PRAGMA does not accept bound parameters.
	if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, i+1)); err != nil {
		return fmt.Errorf("bumping schema version: %w", err)
	}
	return tx.Commit()
}

var migrations = [][]string{
	// 1: timer state for the current day
	{
		`CREATE TABLE IF NOT EXISTS current_session (
			id         INTEGER PRIMARY KEY CHECK(id = 1),
			customer   TEXT NOT NULL,
			project    TEXT NOT NULL,
			started_at TEXT NOT NULL,
			notes      TEXT NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS history_entries (
			id               TEXT PRIMARY KEY,
			position         INTEGER NOT NULL,
			customer         TEXT NOT NULL,
			project          TEXT NOT NULL,
			duration_seconds INTEGER NOT NULL CHECK(duration_seconds >= 0),
			raw_seconds      INTEGER NOT NULL CHECK(raw_seconds >= 0),
			notes            TEXT NOT NULL DEFAULT '[]',
			start_str        TEXT NOT NULL DEFAULT '',
			end_str          TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_history_position ON history_entries(position)`,
	},

	// 2: customer/project catalog
	{
		`CREATE TABLE IF NOT EXISTS customers (
			name     TEXT PRIMARY KEY,
			position INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS customer_projects (
			customer_name TEXT NOT NULL REFERENCES customers(name) ON DELETE CASCADE,
			name          TEXT NOT NULL,
			position      INTEGER NOT NULL,
			PRIMARY KEY (customer_name, name)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_customer_projects_customer ON customer_projects(customer_name, position)`,
	},

	// 3: shortcuts for recurring tasks
	{
		`CREATE TABLE IF NOT EXISTS shortcuts (
			name     TEXT PRIMARY KEY,
			customer TEXT NOT NULL,
			project  TEXT NOT NULL,
			note     TEXT NOT NULL DEFAULT ''
		)`,
	},
}
