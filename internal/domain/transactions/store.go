package transactions

import (
	"context"
	"fmt"

	"paytrack/internal/db"

	"github.com/google/uuid"
)

type Store interface {
	Create(ctx context.Context, t *Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Transaction, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]Transaction, error)
	// Update writes amount, description, date and due date only.
	Update(ctx context.Context, t *Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type Repository struct {
	db db.Querier
}

func NewRepository(q db.Querier) *Repository {
	return &Repository{db: q}
}

const transactionColumns = `id, user_id, customer_id, type, amount, description, date, due_date, payment_method, items`

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (*Transaction, error) {
	t := &Transaction{}
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.CustomerID,
		&t.Type,
		&t.Amount,
		&t.Description,
		&t.Date,
		&t.DueDate,
		&t.PaymentMethod,
		&t.Items,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Repository) Create(ctx context.Context, t *Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, customer_id, type, amount, description, date, due_date, payment_method, items)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := r.db.Exec(ctx, query,
		t.ID,
		t.UserID,
		t.CustomerID,
		t.Type,
		t.Amount,
		t.Description,
		t.Date,
		t.DueDate,
		t.PaymentMethod,
		t.Items,
	)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	t, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *Repository) list(ctx context.Context, query string, arg any) ([]Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	out := []Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, *t)
	}

	return out, rows.Err()
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Transaction, error) {
	return r.list(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1 ORDER BY date DESC`, userID)
}

func (r *Repository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]Transaction, error) {
	return r.list(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE customer_id = $1 ORDER BY date DESC`, customerID)
}

func (r *Repository) Update(ctx context.Context, t *Transaction) error {
	query := `
		UPDATE transactions
		SET amount = $1, description = $2, date = $3, due_date = $4
		WHERE id = $5
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, query, t.Amount, t.Description, t.Date, t.DueDate, t.ID)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE customer_id = $1`, customerID)
	if err != nil {
		return 0, fmt.Errorf("delete transactions of customer: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete transactions of user: %w", err)
	}
	return tag.RowsAffected(), nil
}
