package testutil

import (
	"time"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/google/uuid"
)

// Epoch is a fixed, timezone-free instant used as "now" across tests.
var Epoch = time.Unix(1_700_000_000, 0).UTC()

type SessionOption func(*domain.Session)

func WithStartedAt(t time.Time) SessionOption {
	return func(s *domain.Session) {
		s.StartedAt = t
	}
}

func WithNotes(notes ...string) SessionOption {
	return func(s *domain.Session) {
		s.Notes = notes
	}
}

func NewTestSession(customer, project string, opts ...SessionOption) *domain.Session {
	s := &domain.Session{
		Customer:  customer,
		Project:   project,
		StartedAt: Epoch,
		Notes:     []string{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type EntryOption func(*domain.HistoryEntry)

func WithRawSeconds(raw int64) EntryOption {
	return func(e *domain.HistoryEntry) {
		e.RawSeconds = raw
	}
}

func WithEntryNotes(notes ...string) EntryOption {
	return func(e *domain.HistoryEntry) {
		e.Notes = notes
	}
}

// NewTestEntry builds a history entry billed at the given seconds. Raw seconds
// default to the billed value.
func NewTestEntry(customer, project string, billed int64, opts ...EntryOption) domain.HistoryEntry {
	e := domain.HistoryEntry{
		ID:              uuid.New().String(),
		Customer:        customer,
		Project:         project,
		DurationSeconds: billed,
		RawSeconds:      billed,
		Notes:           []string{},
		StartStr:        "09:00",
		EndStr:          "09:15",
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func NewTestStore(current *domain.Session, history ...domain.HistoryEntry) *domain.Store {
	s := domain.NewStore()
	s.Current = current
	s.History = append(s.History, history...)
	return s
}
