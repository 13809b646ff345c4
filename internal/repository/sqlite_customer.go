package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/tt/internal/db"
	"github.com/alexanderramin/tt/internal/domain"
)

// SQLiteCustomerRepo implements CustomerRepo using a SQLite database.
type SQLiteCustomerRepo struct {
	db db.DBTX
}

func NewSQLiteCustomerRepo(conn db.DBTX) *SQLiteCustomerRepo {
	return &SQLiteCustomerRepo{db: conn}
}

func (r *SQLiteCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM customers ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning customer: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating customers: %w", err)
	}
	rows.Close()

	customers := make([]domain.Customer, 0, len(names))
	for _, name := range names {
		projects, err := r.listProjects(ctx, name)
		if err != nil {
			return nil, err
		}
		customers = append(customers, domain.Customer{Name: name, Projects: projects})
	}
	return customers, nil
}

func (r *SQLiteCustomerRepo) Get(ctx context.Context, name string) (*domain.Customer, error) {
	var found string
	err := r.db.QueryRowContext(ctx, `SELECT name FROM customers WHERE name = ?`, name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning customer: %w", err)
	}

	projects, err := r.listProjects(ctx, found)
	if err != nil {
		return nil, err
	}
	return &domain.Customer{Name: found, Projects: projects}, nil
}

func (r *SQLiteCustomerRepo) listProjects(ctx context.Context, customer string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name FROM customer_projects WHERE customer_name = ? ORDER BY position`, customer)
	if err != nil {
		return nil, fmt.Errorf("listing projects for %q: %w", customer, err)
	}
	defer rows.Close()

	projects := []string{}
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteCustomerRepo) Add(ctx context.Context, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO customers (name, position)
		 SELECT ?, COALESCE(MAX(position), -1) + 1 FROM customers WHERE true
		 ON CONFLICT(name) DO NOTHING`, name)
	if err != nil {
		return false, fmt.Errorf("inserting customer: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking customer insert: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteCustomerRepo) AddProject(ctx context.Context, customer, project string) (bool, error) {
	if _, err := r.Get(ctx, customer); err != nil {
		return false, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO customer_projects (customer_name, name, position)
		 SELECT ?, ?, COALESCE(MAX(position), -1) + 1 FROM customer_projects WHERE customer_name = ?
		 ON CONFLICT(customer_name, name) DO NOTHING`, customer, project, customer)
	if err != nil {
		return false, fmt.Errorf("inserting project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking project insert: %w", err)
	}
	return n > 0, nil
}
