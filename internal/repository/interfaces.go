package repository

import (
	"context"

	"github.com/alexanderramin/tt/internal/domain"
)

// StoreRepo persists the day's timer state. Load reports unreadable data as
// ErrCorrupt so callers can fall back to an empty store.
type StoreRepo interface {
	Load(ctx context.Context) (*domain.Store, error)
	Save(ctx context.Context, s *domain.Store) error
	Clear(ctx context.Context) error
}

type CustomerRepo interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, name string) (*domain.Customer, error)
	// Add creates the customer if missing; created reports whether it did.
	Add(ctx context.Context, name string) (created bool, err error)
	// AddProject appends project to the customer unless already present.
	AddProject(ctx context.Context, customer, project string) (added bool, err error)
}

type ShortcutRepo interface {
	List(ctx context.Context) ([]domain.Shortcut, error)
	Get(ctx context.Context, name string) (*domain.Shortcut, error)
	// Put stores sc, replacing any shortcut of the same name.
	Put(ctx context.Context, sc domain.Shortcut) (replaced bool, err error)
	Delete(ctx context.Context, name string) error
}
