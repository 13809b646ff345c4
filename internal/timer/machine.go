package timer

import (
	"github.com/alexanderramin/tt/internal/billing"
	"github.com/alexanderramin/tt/internal/domain"
)

// Machine binds the transitions to a clock and a billing quantum.
type Machine struct {
	Clock   Clock
	Quantum int64
}

// NewMachine returns a Machine; a nil clock means SystemClock.
func NewMachine(clock Clock, quantum int64) *Machine {
	if clock == nil {
		clock = SystemClock{}
	}
	if quantum <= 0 {
		quantum = billing.DefaultQuantum
	}
	return &Machine{Clock: clock, Quantum: quantum}
}

// Start is StartWithCommit at the clock's current time.
func (m *Machine) Start(store *domain.Store, customer, project, note string) (*domain.Store, domain.HistoryEntry, bool) {
	return StartWithCommit(store, customer, project, note, m.Clock.Now(), m.Quantum)
}

// AddNote appends text to the running session's notes.
func (m *Machine) AddNote(store *domain.Store, text string) (*domain.Store, error) {
	return AddNote(store, text)
}

// Stop commits the running session at the clock's current time.
func (m *Machine) Stop(store *domain.Store) (*domain.Store, domain.HistoryEntry, bool) {
	return StopWithQuantum(store, m.Clock.Now(), m.Quantum)
}
