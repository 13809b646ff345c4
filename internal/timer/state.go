package timer

import (
	"strings"
	"time"

	"github.com/alexanderramin/tt/internal/billing"
	"github.com/alexanderramin/tt/internal/domain"
	"github.com/google/uuid"
)

// Start begins a new session for (customer, project). A running session is
// committed at now first. The input store is never modified.
func Start(store *domain.Store, customer, project, note string, now time.Time) *domain.Store {
	next, _, _ := StartWithCommit(store, customer, project, note, now, billing.DefaultQuantum)
	return next
}

// StartWithCommit is Start, additionally returning the entry that was
// implicitly committed (ok is false when the store was idle).
func StartWithCommit(store *domain.Store, customer, project, note string, now time.Time, quantum int64) (next *domain.Store, committed domain.HistoryEntry, ok bool) {
	next, committed, ok = StopWithQuantum(store, now, quantum)

	notes := []string{}
	if note != "" {
		notes = append(notes, note)
	}
	next.Current = &domain.Session{
		Customer:  customer,
		Project:   project,
		StartedAt: now,
		Notes:     notes,
	}
	return next, committed, ok
}

// AddNote appends text to the running session's notes.
func AddNote(store *domain.Store, text string) (*domain.Store, error) {
	if !store.Running() {
		return store, domain.ErrNoActiveSession
	}
	if strings.TrimSpace(text) == "" {
		return store, domain.ErrEmptyNote
	}
	next := store.Clone()
	next.Current.Notes = append(next.Current.Notes, text)
	return next, nil
}

// Stop commits the running session at now using the default quantum.
// ok is false when nothing was running; the store is then returned as is.
func Stop(store *domain.Store, now time.Time) (*domain.Store, domain.HistoryEntry, bool) {
	return StopWithQuantum(store, now, billing.DefaultQuantum)
}

// StopWithQuantum is Stop with an explicit billing quantum in seconds.
func StopWithQuantum(store *domain.Store, now time.Time, quantum int64) (*domain.Store, domain.HistoryEntry, bool) {
	if !store.Running() {
		if store == nil {
			return domain.NewStore(), domain.HistoryEntry{}, false
		}
		return store.Clone(), domain.HistoryEntry{}, false
	}

	next := store.Clone()
	cur := next.Current
	raw, billed := Elapsed(cur, now, quantum)

	entry := domain.HistoryEntry{
		ID:              uuid.New().String(),
		Customer:        cur.Customer,
		Project:         cur.Project,
		DurationSeconds: billed,
		RawSeconds:      raw,
		Notes:           cur.Notes,
		StartStr:        FormatHHMM(cur.StartedAt),
		EndStr:          FormatHHMM(now),
	}
	next.History = append(next.History, entry)
	next.Current = nil
	return next, entry, true
}

// Elapsed returns the raw and billed seconds of s as of now. Raw time is
// truncated to whole seconds and clamped at zero when the clock went back.
func Elapsed(s *domain.Session, now time.Time, quantum int64) (raw, billed int64) {
	raw = int64(now.Sub(s.StartedAt) / time.Second)
	if raw < 0 {
		raw = 0
	}
	return raw, billing.RoundUpToQuantum(raw, quantum)
}
