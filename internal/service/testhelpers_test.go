package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/alexanderramin/tt/internal/repository"
	"github.com/alexanderramin/tt/internal/testutil"
	"github.com/alexanderramin/tt/internal/timer"
	"github.com/rs/zerolog"
)

func newTestTimer(t *testing.T) (TimerService, *timer.FixedClock, repository.StoreRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteStoreRepo(database, testutil.NewTestUoW(database))
	clock := &timer.FixedClock{At: testutil.Epoch}
	return NewTimerService(repo, timer.NewMachine(clock, 900), zerolog.Nop()), clock, repo
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

// stubStoreRepo returns fixed results so error paths can be exercised.
type stubStoreRepo struct {
	loadErr error
	saveErr error
	loaded  *domain.Store
	saved   *domain.Store
}

func (r *stubStoreRepo) Load(context.Context) (*domain.Store, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.loaded == nil {
		return domain.NewStore(), nil
	}
	return r.loaded, nil
}

func (r *stubStoreRepo) Save(_ context.Context, s *domain.Store) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = s
	return nil
}

func (r *stubStoreRepo) Clear(context.Context) error { return nil }

func bufferLogger() (zerolog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return zerolog.New(&buf).Level(zerolog.WarnLevel), &buf
}
