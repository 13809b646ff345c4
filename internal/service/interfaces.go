package service

import (
	"context"
	"time"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/alexanderramin/tt/internal/report"
)

// StartResult describes a start: the new session and, when a timer was
// already running, the entry it was committed as.
type StartResult struct {
	Session *domain.Session
	Stopped *domain.HistoryEntry
}

// DailyReport is the aggregated view of today's work at GeneratedAt.
type DailyReport struct {
	report.Summary
	Current     *domain.Session
	GeneratedAt time.Time
}

type TimerService interface {
	Start(ctx context.Context, customer, project, note string) (*StartResult, error)
	Note(ctx context.Context, text string) (*domain.Session, error)
	// Stop returns the committed entry, or nil when no timer was running.
	Stop(ctx context.Context) (*domain.HistoryEntry, error)
	Current(ctx context.Context) (*domain.Session, error)
	Report(ctx context.Context) (*DailyReport, error)
	Reset(ctx context.Context) error
}

// AddCustomerResult reports which parts of an add-customer request were new.
type AddCustomerResult struct {
	Created       bool
	AddedProjects []string
	Existing      []string
}

type CatalogService interface {
	Customers(ctx context.Context) ([]domain.Customer, error)
	Customer(ctx context.Context, name string) (*domain.Customer, error)
	AddCustomer(ctx context.Context, name string, projects []string) (*AddCustomerResult, error)
}

type ShortcutService interface {
	List(ctx context.Context) ([]domain.Shortcut, error)
	Get(ctx context.Context, name string) (*domain.Shortcut, error)
	// Save stores sc under its normalized name; replaced reports an overwrite.
	Save(ctx context.Context, sc domain.Shortcut) (replaced bool, err error)
	Delete(ctx context.Context, name string) error
}
