package client

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/wichananm65/willson-financial/internal/database"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listClientsQuery = `
		SELECT client_id, client_first_name, client_last_name, client_email, client_created_date
		FROM client
		ORDER BY client_id
	`
	listClientsByIDsQuery = `
		SELECT client_id, client_first_name, client_last_name, client_email, client_created_date
		FROM client
		WHERE client_id = ANY($1::int[])
		ORDER BY array_position($1::int[], client_id)
	`
	getClientByIDQuery = `
		SELECT client_id, client_first_name, client_last_name, client_email, client_created_date
		FROM client
		WHERE client_id = $1
	`
	insertClientQuery = `
		INSERT INTO client (client_first_name, client_last_name, client_email, client_created_date)
		VALUES ($1, $2, $3, $4)
		RETURNING client_id
	`
	updateClientQuery = `
		UPDATE client
		SET client_first_name = $1,
			client_last_name = $2,
			client_email = $3
		WHERE client_id = $4
	`
	deleteClientQuery = `DELETE FROM client WHERE client_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]Client, error) {
	rows, err := r.db.QueryContext(ctx, listClientsQuery)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

// ListByIDs keeps the order of ids. An empty slice returns without a query.
func (r *PostgresRepository) ListByIDs(ctx context.Context, ids []int) ([]Client, error) {
	if len(ids) == 0 {
		return []Client{}, nil
	}
	rows, err := r.db.QueryContext(ctx, listClientsByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int) (Client, error) {
	c, err := scanClient(r.db.QueryRowContext(ctx, getClientByIDQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Client{}, ErrNotFound
		}
		return Client{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c Client) (Client, error) {
	var id int
	err := r.db.QueryRowContext(ctx, insertClientQuery, c.FirstName, c.LastName, c.Email, c.CreatedDate).Scan(&id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return Client{}, ErrEmailExists
		}
		return Client{}, err
	}
	c.ID = id
	return c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int, c Client) (Client, error) {
	result, err := r.db.ExecContext(ctx, updateClientQuery, c.FirstName, c.LastName, c.Email, id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return Client{}, ErrEmailExists
		}
		return Client{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return Client{}, err
	}
	if affected == 0 {
		return Client{}, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, deleteClientQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func collect(rows *sql.Rows) ([]Client, error) {
	defer rows.Close()

	out := make([]Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanClient(scanner rowScanner) (Client, error) {
	var c Client
	if err := scanner.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.CreatedDate); err != nil {
		return Client{}, err
	}
	return c, nil
}
