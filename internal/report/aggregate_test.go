package report

import (
	"testing"
	"time"

	"github.com/alexanderramin/tt/internal/billing"
	"github.com/alexanderramin/tt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(customer, project string, seconds int64, notes ...string) domain.HistoryEntry {
	return domain.HistoryEntry{
		Customer:        customer,
		Project:         project,
		DurationSeconds: seconds,
		RawSeconds:      seconds,
		Notes:           notes,
	}
}

func TestAggregate_Empty(t *testing.T) {
	sum := Aggregate(domain.NewStore(), time.Unix(0, 0), billing.DefaultQuantum)

	assert.Empty(t, sum.Groups)
	assert.Zero(t, sum.TotalSeconds)
	assert.False(t, sum.IncludesRunning)
}

func TestAggregate_NilStore(t *testing.T) {
	sum := Aggregate(nil, time.Unix(0, 0), billing.DefaultQuantum)
	assert.Empty(t, sum.Groups)
}

func TestAggregate_SameLabelSumsIntoOneBucket(t *testing.T) {
	store := domain.NewStore()
	store.History = []domain.HistoryEntry{
		entry("Acme", "Web", 900, "review"),
		entry("Acme", "Web", 1800, "review"),
	}

	sum := Aggregate(store, time.Unix(0, 0), billing.DefaultQuantum)

	require.Len(t, sum.Groups, 1)
	g := sum.Groups[0]
	assert.Equal(t, int64(2700), g.TotalSeconds)
	require.Len(t, g.Tasks, 1)
	assert.Equal(t, Task{Label: "review", Seconds: 2700}, g.Tasks[0])
	assert.Equal(t, int64(2700), sum.TotalSeconds)
}

func TestAggregate_LabelsJoinNotesAndFallBack(t *testing.T) {
	store := domain.NewStore()
	store.History = []domain.HistoryEntry{
		entry("Acme", "Web", 900, "a", "b"),
		entry("Acme", "Web", 900),
		entry("Acme", "Web", 900, "c"),
		entry("Acme", "Web", 900, "a", "b"),
	}

	sum := Aggregate(store, time.Unix(0, 0), billing.DefaultQuantum)

	require.Len(t, sum.Groups, 1)
	assert.Equal(t, []Task{
		{Label: "a, b", Seconds: 1800},
		{Label: NoDescription, Seconds: 900},
		{Label: "c", Seconds: 900},
	}, sum.Groups[0].Tasks, "labels keep first-seen order")
}

func TestAggregate_SortsCaseInsensitively(t *testing.T) {
	store := domain.NewStore()
	store.History = []domain.HistoryEntry{
		entry("beta", "x", 900),
		entry("Acme", "y", 900),
		entry("acme", "B", 900),
	}

	sum := Aggregate(store, time.Unix(0, 0), billing.DefaultQuantum)

	require.Len(t, sum.Groups, 3)
	assert.Equal(t, "acme", sum.Groups[0].Customer)
	assert.Equal(t, "B", sum.Groups[0].Project)
	assert.Equal(t, "Acme", sum.Groups[1].Customer)
	assert.Equal(t, "beta", sum.Groups[2].Customer)
	assert.Equal(t, int64(2700), sum.TotalSeconds)
}

func TestAggregate_CaseDistinctKeysStayDistinct(t *testing.T) {
	store := domain.NewStore()
	store.History = []domain.HistoryEntry{
		entry("acme", "web", 900),
		entry("Acme", "Web", 900),
	}

	sum := Aggregate(store, time.Unix(0, 0), billing.DefaultQuantum)

	require.Len(t, sum.Groups, 2)
	assert.Equal(t, "acme", sum.Groups[0].Customer, "ties keep first-seen order")
	assert.Equal(t, "Acme", sum.Groups[1].Customer)
}

func TestAggregate_IncludesRunningWithoutMutating(t *testing.T) {
	store := domain.NewStore()
	store.History = []domain.HistoryEntry{entry("Acme", "Web", 900, "review")}
	store.Current = &domain.Session{
		Customer:  "Acme",
		Project:   "Web",
		StartedAt: time.Unix(1000, 0),
		Notes:     []string{"review"},
	}
	before := store.Clone()

	sum := Aggregate(store, time.Unix(1060, 0), billing.DefaultQuantum)

	assert.True(t, sum.IncludesRunning)
	require.Len(t, sum.Groups, 1)
	assert.Equal(t, int64(1800), sum.Groups[0].TotalSeconds)
	assert.Equal(t, []Task{{Label: "review", Seconds: 1800}}, sum.Groups[0].Tasks)
	assert.Equal(t, before, store, "aggregation must not touch the store")
}

func TestAggregate_RunningClockRegression(t *testing.T) {
	store := domain.NewStore()
	store.Current = &domain.Session{Customer: "A", Project: "B", StartedAt: time.Unix(2000, 0)}

	sum := Aggregate(store, time.Unix(1000, 0), billing.DefaultQuantum)

	require.Len(t, sum.Groups, 1)
	assert.Zero(t, sum.Groups[0].TotalSeconds)
	assert.Equal(t, NoDescription, sum.Groups[0].Tasks[0].Label)
}

func TestAggregate_Deterministic(t *testing.T) {
	store := domain.NewStore()
	store.History = []domain.HistoryEntry{
		entry("b", "1", 900, "x"),
		entry("a", "2", 1800),
		entry("b", "1", 900, "y"),
	}
	store.Current = &domain.Session{Customer: "a", Project: "2", StartedAt: time.Unix(0, 0)}
	now := time.Unix(3000, 0)

	first := Aggregate(store, now, billing.DefaultQuantum)
	second := Aggregate(store, now, billing.DefaultQuantum)

	assert.Equal(t, first, second)
}

func TestClipboardText(t *testing.T) {
	sum := Summary{Groups: []Group{
		{
			Customer: "Acme", Project: "Web", TotalSeconds: 2700,
			Tasks: []Task{{Label: "review", Seconds: 1800}, {Label: NoDescription, Seconds: 900}},
		},
		{
			Customer: "Beta", Project: "Ops", TotalSeconds: 900,
			Tasks: []Task{{Label: NoDescription, Seconds: 900}},
		},
	}}

	assert.Equal(t,
		"Acme - Web: 45 min [review (30m)]\nBeta - Ops: 15 min\n",
		ClipboardText(sum))
}
