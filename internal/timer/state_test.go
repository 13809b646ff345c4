package timer

import (
	"testing"
	"time"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(sec int64) time.Time {
	return time.Unix(sec, 0)
}

func runningStore(customer, project string, startedAt time.Time, notes ...string) *domain.Store {
	s := domain.NewStore()
	if notes == nil {
		notes = []string{}
	}
	s.Current = &domain.Session{Customer: customer, Project: project, StartedAt: startedAt, Notes: notes}
	return s
}

func TestStart_FromIdle(t *testing.T) {
	store := domain.NewStore()

	next := Start(store, "Acme", "Web", "kickoff", at(1000))

	require.NotNil(t, next.Current)
	assert.Equal(t, "Acme", next.Current.Customer)
	assert.Equal(t, "Web", next.Current.Project)
	assert.Equal(t, at(1000), next.Current.StartedAt)
	assert.Equal(t, []string{"kickoff"}, next.Current.Notes)
	assert.Empty(t, next.History)
	assert.Nil(t, store.Current, "input store must not be modified")
}

func TestStart_EmptyNoteGivesNoNotes(t *testing.T) {
	next := Start(domain.NewStore(), "Acme", "Web", "", at(1000))

	require.NotNil(t, next.Current)
	assert.Empty(t, next.Current.Notes)
}

func TestStart_WhileRunningCommitsExactlyOneEntry(t *testing.T) {
	store := runningStore("Old", "Proj", at(1000), "first")

	next, committed, ok := StartWithCommit(store, "New", "Other", "", at(1900), 900)

	require.True(t, ok)
	require.Len(t, next.History, 1)
	assert.Equal(t, "Old", next.History[0].Customer)
	assert.Equal(t, "Proj", next.History[0].Project)
	assert.Equal(t, []string{"first"}, next.History[0].Notes)
	assert.Equal(t, committed, next.History[0])

	require.NotNil(t, next.Current)
	assert.Equal(t, "New", next.Current.Customer)
	assert.Equal(t, "Other", next.Current.Project)
	assert.Equal(t, at(1900), next.Current.StartedAt)

	assert.Empty(t, store.History, "input store must not be modified")
	assert.Equal(t, "Old", store.Current.Customer)
}

func TestStart_AcceptsOpaqueIdentifiers(t *testing.T) {
	next := Start(domain.NewStore(), "", "  ", "", at(1000))
	require.NotNil(t, next.Current)
	assert.Equal(t, "", next.Current.Customer)
	assert.Equal(t, "  ", next.Current.Project)
}

func TestStop_Idle(t *testing.T) {
	store := domain.NewStore()
	store.History = append(store.History, domain.HistoryEntry{Customer: "A", Project: "B", DurationSeconds: 900})

	next, entry, ok := Stop(store, at(5000))

	assert.False(t, ok)
	assert.Equal(t, domain.HistoryEntry{}, entry)
	assert.Equal(t, store, next)
}

func TestStop_ExactQuantum(t *testing.T) {
	next, entry, ok := Stop(runningStore("A", "B", at(1000)), at(1900))

	require.True(t, ok)
	assert.Equal(t, int64(900), entry.DurationSeconds)
	assert.Equal(t, int64(900), entry.RawSeconds)
	assert.Nil(t, next.Current)
	require.Len(t, next.History, 1)
	assert.NotEmpty(t, next.History[0].ID)
}

func TestStop_RoundsUp(t *testing.T) {
	_, entry, ok := Stop(runningStore("A", "B", at(1000)), at(1060))

	require.True(t, ok)
	assert.Equal(t, int64(900), entry.DurationSeconds)
	assert.Equal(t, int64(60), entry.RawSeconds)
}

func TestStop_ClockRegressionClampsToZero(t *testing.T) {
	_, entry, ok := Stop(runningStore("A", "B", at(2000)), at(1000))

	require.True(t, ok)
	assert.Equal(t, int64(0), entry.DurationSeconds)
	assert.Equal(t, int64(0), entry.RawSeconds)
}

func TestStop_TruncatesSubSecondRaw(t *testing.T) {
	start := at(1000)
	_, entry, ok := Stop(runningStore("A", "B", start), start.Add(900*time.Second+600*time.Millisecond))

	require.True(t, ok)
	assert.Equal(t, int64(900), entry.RawSeconds)
	assert.Equal(t, int64(900), entry.DurationSeconds)
}

func TestStop_WallClockStrings(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 5, 0, 0, time.Local)
	end := time.Date(2026, 3, 2, 10, 40, 0, 0, time.Local)

	_, entry, ok := Stop(runningStore("A", "B", start), end)

	require.True(t, ok)
	assert.Equal(t, "09:05", entry.StartStr)
	assert.Equal(t, "10:40", entry.EndStr)
}

func TestStop_PreservesNotesAndOrder(t *testing.T) {
	store := runningStore("A", "B", at(0))
	store.History = append(store.History, domain.HistoryEntry{Customer: "X", Project: "Y"})
	store.Current.Notes = []string{"one", "two"}

	next, _, ok := Stop(store, at(100))

	require.True(t, ok)
	require.Len(t, next.History, 2)
	assert.Equal(t, "X", next.History[0].Customer, "history is append-only")
	assert.Equal(t, []string{"one", "two"}, next.History[1].Notes)
}

func TestStop_NilStore(t *testing.T) {
	next, _, ok := Stop(nil, at(0))
	assert.False(t, ok)
	require.NotNil(t, next)
	assert.False(t, next.Running())
}

func TestAddNote_Idle(t *testing.T) {
	_, err := AddNote(domain.NewStore(), "x")
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestAddNote_Blank(t *testing.T) {
	store := runningStore("A", "B", at(0))

	_, err := AddNote(store, "")
	assert.ErrorIs(t, err, domain.ErrEmptyNote)

	_, err = AddNote(store, "   \t")
	assert.ErrorIs(t, err, domain.ErrEmptyNote)
}

func TestAddNote_AppendsInOrder(t *testing.T) {
	store := runningStore("A", "B", at(0), "first")

	next, err := AddNote(store, "x")
	require.NoError(t, err)
	next, err = AddNote(next, "y")
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "x", "y"}, next.Current.Notes)
	assert.Equal(t, []string{"first"}, store.Current.Notes, "input store must not be modified")
}

func TestMachine_UsesClockAndQuantum(t *testing.T) {
	clock := &FixedClock{At: at(0)}
	m := NewMachine(clock, 600)

	store, _, ok := m.Start(domain.NewStore(), "A", "B", "")
	assert.False(t, ok)

	clock.Advance(61 * time.Second)
	store, entry, ok := m.Stop(store)
	require.True(t, ok)
	assert.Equal(t, int64(600), entry.DurationSeconds)
	assert.Equal(t, int64(61), entry.RawSeconds)
	assert.False(t, store.Running())
}

func TestNewMachine_Defaults(t *testing.T) {
	m := NewMachine(nil, 0)
	assert.IsType(t, SystemClock{}, m.Clock)
	assert.Equal(t, int64(900), m.Quantum)
}
