package jsonfile

import (
	"context"
	"fmt"
	"sort"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/alexanderramin/tt/internal/repository"
)

type customerDoc struct {
	Name     string   `json:"name"`
	Projects []string `json:"projects"`
}

type shortcutDoc struct {
	Customer string `json:"customer"`
	Project  string `json:"project"`
	Note     string `json:"note"`
}

type catalogDoc struct {
	Customers []customerDoc           `json:"customers"`
	Shortcuts map[string]shortcutDoc `json:"shortcuts"`
}

// CatalogRepo stores customers and shortcuts in one JSON config file and
// serves both repository.CustomerRepo (via Customers) and
// repository.ShortcutRepo (via Shortcuts).
type CatalogRepo struct {
	path string
}

func NewCatalogRepo(path string) *CatalogRepo {
	return &CatalogRepo{path: path}
}

func (r *CatalogRepo) load() (*catalogDoc, error) {
	doc := &catalogDoc{}
	if _, err := readJSON(r.path, doc); err != nil {
		return nil, err
	}
	if doc.Customers == nil {
		doc.Customers = []customerDoc{}
	}
	if doc.Shortcuts == nil {
		doc.Shortcuts = map[string]shortcutDoc{}
	}
	return doc, nil
}

func (r *CatalogRepo) Customers() *CustomerRepo {
	return &CustomerRepo{catalog: r}
}

func (r *CatalogRepo) Shortcuts() *ShortcutRepo {
	return &ShortcutRepo{catalog: r}
}

// CustomerRepo is the customer view of a CatalogRepo.
type CustomerRepo struct {
	catalog *CatalogRepo
}

func (r *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	doc, err := r.catalog.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Customer, 0, len(doc.Customers))
	for _, c := range doc.Customers {
		out = append(out, domain.Customer{Name: c.Name, Projects: nonNil(c.Projects)})
	}
	return out, nil
}

func (r *CustomerRepo) Get(ctx context.Context, name string) (*domain.Customer, error) {
	doc, err := r.catalog.load()
	if err != nil {
		return nil, err
	}
	for _, c := range doc.Customers {
		if c.Name == name {
			return &domain.Customer{Name: c.Name, Projects: nonNil(c.Projects)}, nil
		}
	}
	return nil, fmt.Errorf("customer %q: %w", name, repository.ErrNotFound)
}

func (r *CustomerRepo) Add(ctx context.Context, name string) (bool, error) {
	doc, err := r.catalog.load()
	if err != nil {
		return false, err
	}
	for _, c := range doc.Customers {
		if c.Name == name {
			return false, nil
		}
	}
	doc.Customers = append(doc.Customers, customerDoc{Name: name, Projects: []string{}})
	return true, writeJSON(r.catalog.path, doc)
}

func (r *CustomerRepo) AddProject(ctx context.Context, customer, project string) (bool, error) {
	doc, err := r.catalog.load()
	if err != nil {
		return false, err
	}
	for i, c := range doc.Customers {
		if c.Name != customer {
			continue
		}
		for _, p := range c.Projects {
			if p == project {
				return false, nil
			}
		}
		doc.Customers[i].Projects = append(c.Projects, project)
		return true, writeJSON(r.catalog.path, doc)
	}
	return false, fmt.Errorf("customer %q: %w", customer, repository.ErrNotFound)
}

// ShortcutRepo is the shortcut view of a CatalogRepo.
type ShortcutRepo struct {
	catalog *CatalogRepo
}

func (r *ShortcutRepo) List(ctx context.Context) ([]domain.Shortcut, error) {
	doc, err := r.catalog.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Shortcut, 0, len(doc.Shortcuts))
	for name, sc := range doc.Shortcuts {
		out = append(out, domain.Shortcut{Name: name, Customer: sc.Customer, Project: sc.Project, Note: sc.Note})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ShortcutRepo) Get(ctx context.Context, name string) (*domain.Shortcut, error) {
	name = domain.NormalizeShortcutName(name)
	doc, err := r.catalog.load()
	if err != nil {
		return nil, err
	}
	sc, ok := doc.Shortcuts[name]
	if !ok {
		return nil, fmt.Errorf("shortcut @%s: %w", name, repository.ErrNotFound)
	}
	return &domain.Shortcut{Name: name, Customer: sc.Customer, Project: sc.Project, Note: sc.Note}, nil
}

func (r *ShortcutRepo) Put(ctx context.Context, sc domain.Shortcut) (bool, error) {
	sc.Name = domain.NormalizeShortcutName(sc.Name)
	if err := sc.Validate(); err != nil {
		return false, err
	}
	doc, err := r.catalog.load()
	if err != nil {
		return false, err
	}
	_, replaced := doc.Shortcuts[sc.Name]
	doc.Shortcuts[sc.Name] = shortcutDoc{Customer: sc.Customer, Project: sc.Project, Note: sc.Note}
	return replaced, writeJSON(r.catalog.path, doc)
}

func (r *ShortcutRepo) Delete(ctx context.Context, name string) error {
	name = domain.NormalizeShortcutName(name)
	doc, err := r.catalog.load()
	if err != nil {
		return err
	}
	if _, ok := doc.Shortcuts[name]; !ok {
		return fmt.Errorf("shortcut @%s: %w", name, repository.ErrNotFound)
	}
	delete(doc.Shortcuts, name)
	return writeJSON(r.catalog.path, doc)
}

var (
	_ repository.StoreRepo    = (*StoreRepo)(nil)
	_ repository.CustomerRepo = (*CustomerRepo)(nil)
	_ repository.ShortcutRepo = (*ShortcutRepo)(nil)
)
