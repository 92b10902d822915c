package transaction

import (
	"context"
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listByClientQuery = `
		SELECT transaction_id, transaction_date, transaction_amount, transaction_type, client_id
		FROM client_transaction
		WHERE client_id = $1
		ORDER BY transaction_date, transaction_id
	`
	insertTransactionQuery = `
		INSERT INTO client_transaction (transaction_date, transaction_amount, transaction_type, client_id)
		VALUES ($1, $2, $3, $4)
		RETURNING transaction_id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByClient(ctx context.Context, clientID int) ([]Transaction, error) {
	rows, err := r.db.QueryContext(ctx, listByClientQuery, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Transaction, 0)
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.Amount, &t.Type, &t.ClientID); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(ctx context.Context, t Transaction) (Transaction, error) {
	err := r.db.QueryRowContext(ctx, insertTransactionQuery, t.Date, t.Amount, t.Type, t.ClientID).Scan(&t.ID)
	if err != nil {
		return Transaction{}, err
	}
	return t, nil
}
