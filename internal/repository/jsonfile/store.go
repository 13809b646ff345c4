package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"time"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/google/uuid"
)

type sessionDoc struct {
	Customer       string   `json:"customer"`
	Project        string   `json:"project"`
	StartTimestamp float64  `json:"start_timestamp"`
	Notes          []string `json:"notes"`
}

type entryDoc struct {
	Customer        string   `json:"customer"`
	Project         string   `json:"project"`
	DurationSeconds int64    `json:"duration_seconds"`
	RawSeconds      float64  `json:"raw_seconds"`
	Notes           []string `json:"notes"`
	StartStr        string   `json:"start_str"`
	EndStr          string   `json:"end_str"`
}

type storeDoc struct {
	Current *sessionDoc `json:"current"`
	History []entryDoc  `json:"history"`
}

// StoreRepo implements repository.StoreRepo on a single JSON data file.
type StoreRepo struct {
	path string
}

func NewStoreRepo(path string) *StoreRepo {
	return &StoreRepo{path: path}
}

func (r *StoreRepo) Path() string {
	return r.path
}

func (r *StoreRepo) Load(ctx context.Context) (*domain.Store, error) {
	var doc storeDoc
	if _, err := readJSON(r.path, &doc); err != nil {
		return nil, err
	}

	store := domain.NewStore()
	if c := doc.Current; c != nil {
		store.Current = &domain.Session{
			Customer:  c.Customer,
			Project:   c.Project,
			StartedAt: fromUnixSeconds(c.StartTimestamp),
			Notes:     nonNil(c.Notes),
		}
	}
	for _, e := range doc.History {
		store.History = append(store.History, domain.HistoryEntry{
			// The file format has no IDs; assign one per load.
			ID:              uuid.New().String(),
			Customer:        e.Customer,
			Project:         e.Project,
			DurationSeconds: e.DurationSeconds,
			// Older files stored fractional seconds; truncate.
			RawSeconds: int64(e.RawSeconds),
			Notes:      nonNil(e.Notes),
			StartStr:   e.StartStr,
			EndStr:     e.EndStr,
		})
	}
	return store, nil
}

func (r *StoreRepo) Save(ctx context.Context, s *domain.Store) error {
	doc := storeDoc{History: []entryDoc{}}
	if s != nil {
		if c := s.Current; c != nil {
			doc.Current = &sessionDoc{
				Customer:       c.Customer,
				Project:        c.Project,
				StartTimestamp: toUnixSeconds(c.StartedAt),
				Notes:          nonNil(c.Notes),
			}
		}
		for _, e := range s.History {
			doc.History = append(doc.History, entryDoc{
				Customer:        e.Customer,
				Project:         e.Project,
				DurationSeconds: e.DurationSeconds,
				RawSeconds:      float64(e.RawSeconds),
				Notes:           nonNil(e.Notes),
				StartStr:        e.StartStr,
				EndStr:          e.EndStr,
			})
		}
	}
	return writeJSON(r.path, doc)
}

// Clear removes the data file; a missing file is not an error.
func (r *StoreRepo) Clear(ctx context.Context) error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing data file: %w", err)
	}
	return nil
}

func fromUnixSeconds(ts float64) time.Time {
	sec, frac := math.Modf(ts)
	return time.Unix(int64(sec), int64(frac*1e9))
}

func toUnixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
