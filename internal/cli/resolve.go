package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/tt/internal/domain"
)

var (
	errCancelled      = errors.New("cancelled or invalid input")
	errEmptyProject   = errors.New("project name cannot be empty")
	errEmptyList      = errors.New("list is empty, please type a name")
	errInvalidNumber  = errors.New("invalid number")
	errNotInteractive = errors.New("this needs an interactive terminal")
)

type SelectionKind int

const (
	ByIndex SelectionKind = iota + 1
	ByName
)

// Selection is what the user picked from a numbered list: an entry by
// 0-based Index, or a free-text Name.
type Selection struct {
	Kind  SelectionKind
	Index int
	Name  string
}

func IndexSelection(i int) Selection { return Selection{Kind: ByIndex, Index: i} }

func NameSelection(name string) Selection { return Selection{Kind: ByName, Name: name} }

// ParseSelection reads typed input: a 1-based number selects by index, any
// other non-blank text selects by name.
func ParseSelection(raw string) (Selection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Selection{}, errCancelled
	}
	if n, ok := parseIndex(raw); ok {
		return IndexSelection(n - 1), nil
	}
	return NameSelection(raw), nil
}

// Resolve maps the selection onto items. fromList reports whether the value
// came from items rather than free text.
func (s Selection) Resolve(items []string) (value string, fromList bool, err error) {
	switch s.Kind {
	case ByIndex:
		if len(items) == 0 {
			return "", false, errEmptyList
		}
		if s.Index < 0 || s.Index >= len(items) {
			return "", false, errInvalidNumber
		}
		return items[s.Index], true, nil
	case ByName:
		if strings.TrimSpace(s.Name) == "" {
			return "", false, errCancelled
		}
		return s.Name, false, nil
	default:
		return "", false, errCancelled
	}
}

// parseIndex accepts short all-digit strings, returning the number.
func parseIndex(s string) (int, bool) {
	if s == "" || len(s) >= 10 {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// startTarget is a fully resolved start request.
type startTarget struct {
	Customer string
	Project  string
	Note     string
	Shortcut string
}

// resolveShortcut builds a target from a stored shortcut plus extra note words.
func resolveShortcut(ctx context.Context, app *App, name string, extra []string) (startTarget, error) {
	sc, err := app.Shortcuts.Get(ctx, name)
	if err != nil {
		return startTarget{}, shortcutNotFound(name, err)
	}
	return startTarget{
		Customer: sc.Customer,
		Project:  sc.Project,
		Note:     sc.MergeNote(strings.Join(extra, " ")),
		Shortcut: sc.Name,
	}, nil
}

// resolveStartArgs turns positional start arguments into a target, prompting
// for whatever is missing.
func resolveStartArgs(ctx context.Context, app *App, args []string) (startTarget, error) {
	customers, err := app.Catalog.Customers(ctx)
	if err != nil {
		return startTarget{}, err
	}

	var t startTarget
	switch {
	case len(args) == 0:
		t, err = promptCustomerAndProject(app, customers)
	case len(args) == 1:
		t, err = resolveOneArg(app, customers, args[0])
	default:
		t = resolveArgs(customers, args[0], args[1])
		t.Note = strings.Join(args[2:], " ")
	}
	if err != nil {
		return startTarget{}, err
	}
	if strings.TrimSpace(t.Customer) == "" || strings.TrimSpace(t.Project) == "" {
		return startTarget{}, errCancelled
	}
	return t, nil
}

func promptCustomerAndProject(app *App, customers []domain.Customer) (startTarget, error) {
	sel, err := app.Prompter.Pick("Select customer", customerNames(customers))
	if err != nil {
		return startTarget{}, err
	}
	name, fromList, err := sel.Resolve(customerNames(customers))
	if err != nil {
		return startTarget{}, err
	}
	if fromList {
		return pickProject(app, customers[sel.Index])
	}
	return inputProject(app, name)
}

func resolveOneArg(app *App, customers []domain.Customer, arg string) (startTarget, error) {
	if n, ok := parseIndex(arg); ok {
		if n < 1 || n > len(customers) {
			return startTarget{}, fmt.Errorf("customer %s not found", arg)
		}
		return pickProject(app, customers[n-1])
	}
	return inputProject(app, arg)
}

// resolveArgs applies the two-argument rules: a customer number in range
// selects that customer and lets a project number select its project; any
// out-of-range or textual value is taken literally.
func resolveArgs(customers []domain.Customer, rawCustomer, rawProject string) startTarget {
	n, ok := parseIndex(rawCustomer)
	if !ok || n < 1 || n > len(customers) {
		return startTarget{Customer: rawCustomer, Project: rawProject}
	}
	c := customers[n-1]
	t := startTarget{Customer: c.Name, Project: rawProject}
	if p, ok := parseIndex(rawProject); ok && p >= 1 && p <= len(c.Projects) {
		t.Project = c.Projects[p-1]
	}
	return t
}

func pickProject(app *App, c domain.Customer) (startTarget, error) {
	sel, err := app.Prompter.Pick(fmt.Sprintf("Select project for '%s'", c.Name), c.Projects)
	if err != nil {
		return startTarget{}, err
	}
	project, _, err := sel.Resolve(c.Projects)
	if err != nil {
		return startTarget{}, err
	}
	return startTarget{Customer: c.Name, Project: project}, nil
}

func inputProject(app *App, customer string) (startTarget, error) {
	project, err := app.Prompter.Input("Project name")
	if err != nil {
		return startTarget{}, err
	}
	project = strings.TrimSpace(project)
	if project == "" {
		return startTarget{}, errEmptyProject
	}
	return startTarget{Customer: customer, Project: project}, nil
}

func customerNames(customers []domain.Customer) []string {
	names := make([]string, len(customers))
	for i, c := range customers {
		names[i] = c.Name
	}
	return names
}
