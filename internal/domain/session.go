package domain

import "time"

// Session is the running, not yet committed timer.
type Session struct {
	Customer  string
	Project   string
	StartedAt time.Time
	Notes     []string
}

// HistoryEntry is a committed timer. DurationSeconds is the billed value,
// RawSeconds the elapsed wall-clock time truncated to whole seconds.
type HistoryEntry struct {
	ID              string
	Customer        string
	Project         string
	DurationSeconds int64
	RawSeconds      int64
	Notes           []string
	StartStr        string
	EndStr          string
}

// Store is the day's timer state: at most one running Session plus the
// append-only history in chronological order.
type Store struct {
	Current *Session
	History []HistoryEntry
}

// NewStore returns an empty, idle Store.
func NewStore() *Store {
	return &Store{History: []HistoryEntry{}}
}

// Running reports whether a Session is active.
func (s *Store) Running() bool {
	return s != nil && s.Current != nil
}

// Clone returns a deep copy so transitions never alias the caller's slices.
func (s *Store) Clone() *Store {
	if s == nil {
		return NewStore()
	}
	out := &Store{History: make([]HistoryEntry, len(s.History))}
	for i, e := range s.History {
		e.Notes = cloneStrings(e.Notes)
		out.History[i] = e
	}
	if s.Current != nil {
		cur := *s.Current
		cur.Notes = cloneStrings(s.Current.Notes)
		out.Current = &cur
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
