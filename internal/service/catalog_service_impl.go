package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/alexanderramin/tt/internal/repository"
	"github.com/rs/zerolog"
)

type catalogService struct {
	customers repository.CustomerRepo
	log       zerolog.Logger
	observer  UseCaseObserver
}

func NewCatalogService(customers repository.CustomerRepo, log zerolog.Logger, observers ...UseCaseObserver) CatalogService {
	return &catalogService{customers: customers, log: log, observer: useCaseObserverOrNoop(observers)}
}

// Customers lists the catalog in insertion order. An unreadable catalog is
// logged and treated as empty.
func (s *catalogService) Customers(ctx context.Context) ([]domain.Customer, error) {
	list, err := s.customers.List(ctx)
	if recoverCorrupt(s.log, "customer catalog", err) {
		return []domain.Customer{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	return list, nil
}

func (s *catalogService) Customer(ctx context.Context, name string) (*domain.Customer, error) {
	c, err := s.customers.Get(ctx, name)
	if recoverCorrupt(s.log, "customer catalog", err) {
		return nil, fmt.Errorf("customer %q: %w", name, repository.ErrNotFound)
	}
	return c, err
}

// AddCustomer creates the customer if needed and appends any projects it does
// not have yet. Blank project names are skipped.
func (s *catalogService) AddCustomer(ctx context.Context, name string, projects []string) (res *AddCustomerResult, err error) {
	name = strings.TrimSpace(name)
	fields := map[string]any{"customer": name}
	defer observe(ctx, s.observer, "add-customer", time.Now(), fields, &err)

	if name == "" {
		return nil, errors.New("customer name is required")
	}

	res = &AddCustomerResult{}
	if res.Created, err = s.customers.Add(ctx, name); err != nil {
		return nil, fmt.Errorf("adding customer: %w", err)
	}
	for _, p := range projects {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		var added bool
		if added, err = s.customers.AddProject(ctx, name, p); err != nil {
			return nil, fmt.Errorf("adding project %q: %w", p, err)
		}
		if added {
			res.AddedProjects = append(res.AddedProjects, p)
		} else {
			res.Existing = append(res.Existing, p)
		}
	}
	fields["added_projects"] = len(res.AddedProjects)
	return res, nil
}
