package appointment

import (
	"context"
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listAppointmentsQuery = `
		SELECT appointment_id, appointment_date, client_id, employee_id
		FROM appointment
		ORDER BY appointment_date, appointment_id
	`
	listAppointmentsByClientQuery = `
		SELECT appointment_id, appointment_date, client_id, employee_id
		FROM appointment
		WHERE client_id = $1
		ORDER BY appointment_date, appointment_id
	`
	insertAppointmentQuery = `
		INSERT INTO appointment (appointment_date, client_id, employee_id)
		VALUES ($1, $2, $3)
		RETURNING appointment_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Appointment, error) {
	return r.query(ctx, listAppointmentsQuery)
}

func (r *PostgresRepository) ListByClient(ctx context.Context, clientID int) ([]Appointment, error) {
	return r.query(ctx, listAppointmentsByClientQuery, clientID)
}

func (r *PostgresRepository) Create(ctx context.Context, a Appointment) (Appointment, error) {
	if err := r.db.QueryRowContext(ctx, insertAppointmentQuery, a.Date, a.ClientID, a.EmployeeID).Scan(&a.ID); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (r *PostgresRepository) query(ctx context.Context, q string, args ...any) ([]Appointment, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Appointment, 0)
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.Date, &a.ClientID, &a.EmployeeID); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
