package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/alexanderramin/tt/internal/repository"
	"github.com/rs/zerolog"
)

type shortcutService struct {
	shortcuts repository.ShortcutRepo
	log       zerolog.Logger
	observer  UseCaseObserver
}

func NewShortcutService(shortcuts repository.ShortcutRepo, log zerolog.Logger, observers ...UseCaseObserver) ShortcutService {
	return &shortcutService{shortcuts: shortcuts, log: log, observer: useCaseObserverOrNoop(observers)}
}

func (s *shortcutService) List(ctx context.Context) ([]domain.Shortcut, error) {
	list, err := s.shortcuts.List(ctx)
	if recoverCorrupt(s.log, "shortcut list", err) {
		return []domain.Shortcut{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing shortcuts: %w", err)
	}
	return list, nil
}

// Get looks a shortcut up by name. With an unreadable catalog every name is
// unknown.
func (s *shortcutService) Get(ctx context.Context, name string) (*domain.Shortcut, error) {
	sc, err := s.shortcuts.Get(ctx, name)
	if recoverCorrupt(s.log, "shortcut list", err) {
		return nil, fmt.Errorf("shortcut %q: %w", name, repository.ErrNotFound)
	}
	return sc, err
}

func (s *shortcutService) Save(ctx context.Context, sc domain.Shortcut) (replaced bool, err error) {
	sc.Name = domain.NormalizeShortcutName(sc.Name)
	defer observe(ctx, s.observer, "save-shortcut", time.Now(), map[string]any{"shortcut": sc.Name}, &err)

	if err = sc.Validate(); err != nil {
		return false, err
	}
	return s.shortcuts.Put(ctx, sc)
}

func (s *shortcutService) Delete(ctx context.Context, name string) (err error) {
	defer observe(ctx, s.observer, "delete-shortcut", time.Now(), map[string]any{"shortcut": name}, &err)
	return s.shortcuts.Delete(ctx, name)
}
