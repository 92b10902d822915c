package employee

import (
	"context"
	"database/sql"
	"errors"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listEmployeesQuery = `
		SELECT employee_id, employee_first_name, employee_last_name, employee_role
		FROM employee
		ORDER BY employee_id
	`
	getEmployeeByIDQuery = `
		SELECT employee_id, employee_first_name, employee_last_name, employee_role
		FROM employee
		WHERE employee_id = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Employee, error) {
	rows, err := r.db.QueryContext(ctx, listEmployeesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Employee, 0)
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Role); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Employee, error) {
	var e Employee
	err := r.db.QueryRowContext(ctx, getEmployeeByIDQuery, id).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return e, err
}
