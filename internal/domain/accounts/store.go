package accounts

import (
	"context"
	"fmt"

	"paytrack/internal/db"

	"github.com/google/uuid"
)

type Store interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	// List returns accounts newest first. An empty status means every account.
	List(ctx context.Context, status Status) ([]Account, error)
	Stats(ctx context.Context) (*Stats, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Account, error)
	UpdatePassword(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repository struct {
	db db.Querier
}

func NewRepository(q db.Querier) *Repository {
	return &Repository{db: q}
}

const accountColumns = `id, name, shop_name, phone_number, email, password, role, status, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (*Account, error) {
	a := &Account{}
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.ShopName,
		&a.PhoneNumber,
		&a.Email,
		&a.Password.hash,
		&a.Role,
		&a.Status,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Repository) Create(ctx context.Context, account *Account) error {
	query := `
		INSERT INTO accounts (id, name, shop_name, phone_number, email, password, role, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := r.db.QueryRow(ctx, query,
		account.ID,
		account.Name,
		account.ShopName,
		account.PhoneNumber,
		NormalizeEmail(account.Email),
		account.Password.hash,
		account.Role,
		account.Status,
	).Scan(&account.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create account: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return account, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE LOWER(email) = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	account, err := scanAccount(r.db.QueryRow(ctx, query, NormalizeEmail(email)))
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return account, nil
}

func (r *Repository) List(ctx context.Context, status Status) ([]Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	out := []Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		out = append(out, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return out, nil
}

func (r *Repository) Stats(ctx context.Context) (*Stats, error) {
	const q = `
		SELECT
			(SELECT COUNT(*) FROM accounts),
			(SELECT COUNT(*) FROM accounts WHERE status = 'pending'),
			(SELECT COUNT(*) FROM accounts WHERE status = 'approved'),
			(SELECT COUNT(*) FROM accounts WHERE status = 'rejected')
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var s Stats
	if err := r.db.QueryRow(ctx, q).Scan(&s.Total, &s.Pending, &s.Approved, &s.Rejected); err != nil {
		return nil, fmt.Errorf("account stats: %w", err)
	}

	return &s, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Account, error) {
	query := `UPDATE accounts SET status = $1 WHERE id = $2 RETURNING ` + accountColumns

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	account, err := scanAccount(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update account status: %w", err)
	}

	return account, nil
}

func (r *Repository) UpdatePassword(ctx context.Context, account *Account) error {
	query := `UPDATE accounts SET password = $1 WHERE id = $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, query, account.Password.hash, account.ID)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM accounts WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
