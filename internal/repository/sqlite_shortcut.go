package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/tt/internal/db"
	"github.com/alexanderramin/tt/internal/domain"
)

// SQLiteShortcutRepo implements ShortcutRepo using a SQLite database.
// Names are stored normalized (see domain.NormalizeShortcutName).
type SQLiteShortcutRepo struct {
	db db.DBTX
}

func NewSQLiteShortcutRepo(conn db.DBTX) *SQLiteShortcutRepo {
	return &SQLiteShortcutRepo{db: conn}
}

func (r *SQLiteShortcutRepo) List(ctx context.Context) ([]domain.Shortcut, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, customer, project, note FROM shortcuts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing shortcuts: %w", err)
	}
	defer rows.Close()

	shortcuts := []domain.Shortcut{}
	for rows.Next() {
		var sc domain.Shortcut
		if err := rows.Scan(&sc.Name, &sc.Customer, &sc.Project, &sc.Note); err != nil {
			return nil, fmt.Errorf("scanning shortcut: %w", err)
		}
		shortcuts = append(shortcuts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shortcuts: %w", err)
	}
	return shortcuts, nil
}

func (r *SQLiteShortcutRepo) Get(ctx context.Context, name string) (*domain.Shortcut, error) {
	name = domain.NormalizeShortcutName(name)
	var sc domain.Shortcut
	err := r.db.QueryRowContext(ctx,
		`SELECT name, customer, project, note FROM shortcuts WHERE name = ?`, name).
		Scan(&sc.Name, &sc.Customer, &sc.Project, &sc.Note)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("shortcut @%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning shortcut: %w", err)
	}
	return &sc, nil
}

func (r *SQLiteShortcutRepo) Put(ctx context.Context, sc domain.Shortcut) (bool, error) {
	sc.Name = domain.NormalizeShortcutName(sc.Name)
	if err := sc.Validate(); err != nil {
		return false, err
	}

	var exists int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shortcuts WHERE name = ?`, sc.Name).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking shortcut: %w", err)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO shortcuts (name, customer, project, note) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET customer = excluded.customer, project = excluded.project, note = excluded.note`,
		sc.Name, sc.Customer, sc.Project, sc.Note)
	if err != nil {
		return false, fmt.Errorf("upserting shortcut: %w", err)
	}
	return exists > 0, nil
}

func (r *SQLiteShortcutRepo) Delete(ctx context.Context, name string) error {
	name = domain.NormalizeShortcutName(name)
	res, err := r.db.ExecContext(ctx, `DELETE FROM shortcuts WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting shortcut: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking shortcut delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("shortcut @%s: %w", name, ErrNotFound)
	}
	return nil
}
