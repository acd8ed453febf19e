package customers

import (
	"context"
	"fmt"

	"paytrack/internal/db"

	"github.com/google/uuid"
)

type Store interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type Repository struct {
	db db.Querier
}

func NewRepository(q db.Querier) *Repository {
	return &Repository{db: q}
}

func (r *Repository) Create(ctx context.Context, c *Customer) error {
	query := `
		INSERT INTO customers (id, user_id, name, contact, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query, c.ID, c.UserID, c.Name, c.Contact, c.Email).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Customer, error) {
	query := `SELECT id, user_id, name, contact, email, created_at FROM customers WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	c := &Customer{}
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.UserID, &c.Name, &c.Contact, &c.Email, &c.CreatedAt)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Customer, error) {
	query := `
		SELECT id, user_id, name, contact, email, created_at
		FROM customers
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	out := []Customer{}
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Contact, &c.Email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

// Update writes name, contact and email. The owner never changes.
func (r *Repository) Update(ctx context.Context, c *Customer) error {
	query := `UPDATE customers SET name = $1, contact = $2, email = $3 WHERE id = $4`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, query, c.Name, c.Contact, c.Email, c.ID)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("delete customers of user: %w", err)
	}
	return tag.RowsAffected(), nil
}
