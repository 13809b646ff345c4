package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/alexanderramin/tt/internal/report"
	"github.com/alexanderramin/tt/internal/repository"
	"github.com/alexanderramin/tt/internal/timer"
	"github.com/rs/zerolog"
)

type timerService struct {
	store    repository.StoreRepo
	machine  *timer.Machine
	log      zerolog.Logger
	observer UseCaseObserver
}

func NewTimerService(
	store repository.StoreRepo,
	machine *timer.Machine,
	log zerolog.Logger,
	observers ...UseCaseObserver,
) TimerService {
	if machine == nil {
		machine = timer.NewMachine(nil, 0)
	}
	return &timerService{
		store:    store,
		machine:  machine,
		log:      log,
		observer: useCaseObserverOrNoop(observers),
	}
}

// load reads the store, treating unreadable data as an empty day.
func (s *timerService) load(ctx context.Context) (*domain.Store, error) {
	st, err := s.store.Load(ctx)
	if recoverCorrupt(s.log, "timer data", err) {
		return domain.NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading timer state: %w", err)
	}
	return st, nil
}

func (s *timerService) save(ctx context.Context, st *domain.Store) error {
	if err := s.store.Save(ctx, st); err != nil {
		return fmt.Errorf("saving timer state: %w", err)
	}
	return nil
}

func (s *timerService) Start(ctx context.Context, customer, project, note string) (res *StartResult, err error) {
	fields := map[string]any{"customer": customer, "project": project}
	defer observe(ctx, s.observer, "start", time.Now(), fields, &err)

	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	next, committed, stopped := s.machine.Start(st, customer, project, note)
	if err = s.save(ctx, next); err != nil {
		return nil, err
	}

	res = &StartResult{Session: next.Current}
	if stopped {
		res.Stopped = &committed
		fields["committed_seconds"] = committed.DurationSeconds
	}
	return res, nil
}

func (s *timerService) Note(ctx context.Context, text string) (cur *domain.Session, err error) {
	defer observe(ctx, s.observer, "note", time.Now(), nil, &err)

	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	next, err := s.machine.AddNote(st, text)
	if err != nil {
		return nil, err
	}
	if err = s.save(ctx, next); err != nil {
		return nil, err
	}
	return next.Current, nil
}

func (s *timerService) Stop(ctx context.Context) (entry *domain.HistoryEntry, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "stop", time.Now(), fields, &err)

	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	next, committed, ok := s.machine.Stop(st)
	if !ok {
		fields["idle"] = true
		return nil, nil
	}
	if err = s.save(ctx, next); err != nil {
		return nil, err
	}
	fields["billed_seconds"] = committed.DurationSeconds
	return &committed, nil
}

func (s *timerService) Current(ctx context.Context) (*domain.Session, error) {
	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return st.Current, nil
}

func (s *timerService) Report(ctx context.Context) (rep *DailyReport, err error) {
	defer observe(ctx, s.observer, "report", time.Now(), nil, &err)

	st, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.machine.Clock.Now()
	return &DailyReport{
		Summary:     report.Aggregate(st, now, s.machine.Quantum),
		Current:     st.Current,
		GeneratedAt: now,
	}, nil
}

func (s *timerService) Reset(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "reset", time.Now(), nil, &err)

	if err = s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing timer state: %w", err)
	}
	return nil
}
