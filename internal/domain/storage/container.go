package storage

import (
	"context"
	"fmt"

	"paytrack/internal/db"
	"paytrack/internal/domain/accounts"
	"paytrack/internal/domain/customers"
	"paytrack/internal/domain/transactions"

	"github.com/jackc/pgx/v5"
)

type Container struct {
	pool         db.TxBeginner // set so WithTx works
	Accounts     accounts.Store
	Customers    customers.Store
	Transactions transactions.Store
}

// Pool is the subset of *pgxpool.Pool the container needs.
type Pool interface {
	db.Querier
	db.TxBeginner
}

func NewContainer(pool Pool) *Container {
	return &Container{
		pool:         pool,
		Accounts:     accounts.NewRepository(pool),
		Customers:    customers.NewRepository(pool),
		Transactions: transactions.NewRepository(pool),
	}
}

// Runner runs a unit of work atomically. *Container implements it.
type Runner interface {
	WithTx(ctx context.Context, fn func(s *Tx) error) error
}

// Tx is a transaction-scoped set of stores for atomic units of work.
type Tx struct {
	Accounts     accounts.Store
	Customers    customers.Store
	Transactions transactions.Store
}

// WithTx runs fn atomically against tx-scoped stores.
func (c *Container) WithTx(ctx context.Context, fn func(s *Tx) error) error {
	if c.pool == nil {
		return fmt.Errorf("storage container pool is nil")
	}

	return db.WithTx(ctx, c.pool, func(tx pgx.Tx) error {
		return fn(&Tx{
			Accounts:     accounts.NewRepository(tx),
			Customers:    customers.NewRepository(tx),
			Transactions: transactions.NewRepository(tx),
		})
	})
}
