package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tt/internal/db"
	"github.com/alexanderramin/tt/internal/domain"
	"github.com/google/uuid"
)

// SQLiteStoreRepo implements StoreRepo on the current_session and
// history_entries tables.
type SQLiteStoreRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteStoreRepo creates a SQLiteStoreRepo. When uow is nil, writes run
// directly on conn, which is then expected to already be a transaction.
func NewSQLiteStoreRepo(conn db.DBTX, uow db.UnitOfWork) *SQLiteStoreRepo {
	return &SQLiteStoreRepo{db: conn, uow: uow}
}

func (r *SQLiteStoreRepo) Load(ctx context.Context) (*domain.Store, error) {
	store := domain.NewStore()

	cur, err := r.loadCurrent(ctx)
	if err != nil {
		return nil, err
	}
	store.Current = cur

	history, err := r.loadHistory(ctx)
	if err != nil {
		return nil, err
	}
	store.History = history
	return store, nil
}

// loadCurrent reads the single current_session row. A row that cannot be
// scanned into its fields is reported as ErrCorrupt.
func (r *SQLiteStoreRepo) loadCurrent(ctx context.Context) (*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT customer, project, started_at, notes FROM current_session WHERE id = 1`)
	if err != nil {
		return nil, fmt.Errorf("querying current session: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("querying current session: %w", err)
		}
		return nil, nil
	}

	var s domain.Session
	var startedAt, notes string
	if err := rows.Scan(&s.Customer, &s.Project, &startedAt, &notes); err != nil {
		return nil, scanCorrupt("current session", err)
	}
	if s.StartedAt, err = parseTimestamp(startedAt); err != nil {
		return nil, fmt.Errorf("current session: %w", err)
	}
	if s.Notes, err = decodeNotes(notes); err != nil {
		return nil, fmt.Errorf("current session: %w", err)
	}
	return &s, nil
}

func (r *SQLiteStoreRepo) loadHistory(ctx context.Context) ([]domain.HistoryEntry, error) {
	query := `SELECT id, customer, project, duration_seconds, raw_seconds, notes, start_str, end_str
		FROM history_entries ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing history entries: %w", err)
	}
	defer rows.Close()

	history := []domain.HistoryEntry{}
	for rows.Next() {
		var e domain.HistoryEntry
		var notes string
		if err := rows.Scan(&e.ID, &e.Customer, &e.Project, &e.DurationSeconds, &e.RawSeconds,
			&notes, &e.StartStr, &e.EndStr); err != nil {
			return nil, scanCorrupt("history entry", err)
		}
		if e.Notes, err = decodeNotes(notes); err != nil {
			return nil, fmt.Errorf("history entry %s: %w", e.ID, err)
		}
		history = append(history, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history entries: %w", err)
	}
	return history, nil
}

// Save replaces the persisted state with s in a single transaction.
func (r *SQLiteStoreRepo) Save(ctx context.Context, s *domain.Store) error {
	if r.uow == nil {
		return saveStore(ctx, r.db, s)
	}
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return saveStore(ctx, tx, s)
	})
}

func (r *SQLiteStoreRepo) Clear(ctx context.Context) error {
	if r.uow == nil {
		return clearStore(ctx, r.db)
	}
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return clearStore(ctx, tx)
	})
}

func clearStore(ctx context.Context, conn db.DBTX) error {
	if _, err := conn.ExecContext(ctx, `DELETE FROM current_session`); err != nil {
		return fmt.Errorf("clearing current session: %w", err)
	}
	if _, err := conn.ExecContext(ctx, `DELETE FROM history_entries`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

func saveStore(ctx context.Context, conn db.DBTX, s *domain.Store) error {
	if err := clearStore(ctx, conn); err != nil {
		return err
	}
	if s == nil {
		return nil
	}

	if cur := s.Current; cur != nil {
		notes, err := encodeNotes(cur.Notes)
		if err != nil {
			return err
		}
		_, err = conn.ExecContext(ctx,
			`INSERT INTO current_session (id, customer, project, started_at, notes) VALUES (1, ?, ?, ?, ?)`,
			cur.Customer, cur.Project, cur.StartedAt.UTC().Format(timeLayout), notes)
		if err != nil {
			return fmt.Errorf("inserting current session: %w", err)
		}
	}

	query := `INSERT INTO history_entries
		(id, position, customer, project, duration_seconds, raw_seconds, notes, start_str, end_str)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, e := range s.History {
		notes, err := encodeNotes(e.Notes)
		if err != nil {
			return err
		}
		id := e.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err := conn.ExecContext(ctx, query,
			id, i, e.Customer, e.Project, e.DurationSeconds, e.RawSeconds, notes, e.StartStr, e.EndStr,
		); err != nil {
			return fmt.Errorf("inserting history entry: %w", err)
		}
	}
	return nil
}
