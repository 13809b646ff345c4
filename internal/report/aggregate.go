package report

import (
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/alexanderramin/tt/internal/timer"
)

// NoDescription labels time booked without any notes.
const NoDescription = "No Description"

// Task is the time booked under one notes-derived label.
type Task struct {
	Label   string
	Seconds int64
}

// Group is the billed total for one (customer, project) pair. Tasks are in
// first-seen order.
type Group struct {
	Customer     string
	Project      string
	TotalSeconds int64
	Tasks        []Task
}

// Summary is the day's report.
type Summary struct {
	Groups          []Group
	TotalSeconds    int64
	IncludesRunning bool
}

type groupKey struct {
	customer string
	project  string
}

type accumulator struct {
	order  []groupKey
	groups map[groupKey]*groupAcc
}

type groupAcc struct {
	total     int64
	labels    []string
	perLabels map[string]int64
}

func newAccumulator() *accumulator {
	return &accumulator{groups: make(map[groupKey]*groupAcc)}
}

func (a *accumulator) add(customer, project string, seconds int64, notes []string) {
	key := groupKey{customer: customer, project: project}
	g, ok := a.groups[key]
	if !ok {
		g = &groupAcc{perLabels: make(map[string]int64)}
		a.groups[key] = g
		a.order = append(a.order, key)
	}
	g.total += seconds

	label := TaskLabel(notes)
	if _, seen := g.perLabels[label]; !seen {
		g.labels = append(g.labels, label)
	}
	g.perLabels[label] += seconds
}

// TaskLabel joins notes with ", " or returns NoDescription.
func TaskLabel(notes []string) string {
	if len(notes) == 0 {
		return NoDescription
	}
	return strings.Join(notes, ", ")
}

// Aggregate groups the store's billed time by (customer, project). A running
// session is projected as if stopped at now; the store is not modified.
func Aggregate(store *domain.Store, now time.Time, quantum int64) Summary {
	acc := newAccumulator()
	var sum Summary

	if store != nil {
		for _, e := range store.History {
			acc.add(e.Customer, e.Project, e.DurationSeconds, e.Notes)
		}
		if cur := store.Current; cur != nil {
			_, billed := timer.Elapsed(cur, now, quantum)
			acc.add(cur.Customer, cur.Project, billed, cur.Notes)
			sum.IncludesRunning = true
		}
	}

	sum.Groups = make([]Group, 0, len(acc.order))
	for _, key := range acc.order {
		g := acc.groups[key]
		out := Group{
			Customer:     key.customer,
			Project:      key.project,
			TotalSeconds: g.total,
			Tasks:        make([]Task, 0, len(g.labels)),
		}
		for _, label := range g.labels {
			out.Tasks = append(out.Tasks, Task{Label: label, Seconds: g.perLabels[label]})
		}
		sum.Groups = append(sum.Groups, out)
		sum.TotalSeconds += g.total
	}

	sort.SliceStable(sum.Groups, func(i, j int) bool {
		a, b := sum.Groups[i], sum.Groups[j]
		ac, bc := strings.ToLower(a.Customer), strings.ToLower(b.Customer)
		if ac != bc {
			return ac < bc
		}
		return strings.ToLower(a.Project) < strings.ToLower(b.Project)
	})

	return sum
}
