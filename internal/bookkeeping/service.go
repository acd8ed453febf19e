// Package bookkeeping is the owner-scoped access layer over a shop's
// customers and transactions. Every read and write is limited to records
// owned by the calling account; records owned by someone else look exactly
// like records that do not exist.
package bookkeeping

import (
	"context"
	"errors"
	"time"

	"paytrack/internal/apperr"
	"paytrack/internal/auth"
	"paytrack/internal/domain/customers"
	"paytrack/internal/domain/storage"
	"paytrack/internal/domain/transactions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	customers    customers.Store
	transactions transactions.Store
	tx           storage.Runner
	logger       *zap.SugaredLogger

	now func() time.Time
}

func NewService(c customers.Store, t transactions.Store, tx storage.Runner, logger *zap.SugaredLogger) *Service {
	return &Service{
		customers:    c,
		transactions: t,
		tx:           tx,
		logger:       logger,
		now:          time.Now,
	}
}

func requireCaller(caller *auth.Identity) error {
	if caller == nil {
		return apperr.Auth("authentication required")
	}
	return nil
}

// ownedCustomer loads a customer the caller owns. Admins pass with
// allowAdmin set.
func (s *Service) ownedCustomer(ctx context.Context, caller *auth.Identity, id uuid.UUID, allowAdmin bool) (*customers.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customers.ErrNotFound) {
			return nil, apperr.NotFound("Customer not found")
		}
		return nil, apperr.Internal("Failed to fetch customer", err)
	}

	if !c.OwnedBy(caller.ID) && !(allowAdmin && caller.IsAdmin()) {
		return nil, apperr.NotFound("Customer not found")
	}
	return c, nil
}

func (s *Service) ownedTransaction(ctx context.Context, caller *auth.Identity, id uuid.UUID) (*transactions.Transaction, error) {
	t, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, transactions.ErrNotFound) {
			return nil, apperr.NotFound("Transaction not found")
		}
		return nil, apperr.Internal("Failed to fetch transaction", err)
	}

	if t.UserID != caller.ID {
		return nil, apperr.NotFound("Transaction not found")
	}
	return t, nil
}

// ledgerOf loads every customer and transaction of the caller.
func (s *Service) ledgerOf(ctx context.Context, caller *auth.Identity) ([]customers.Customer, []transactions.Transaction, error) {
	custs, err := s.customers.ListByUser(ctx, caller.ID)
	if err != nil {
		return nil, nil, apperr.Internal("Failed to fetch customers", err)
	}

	txns, err := s.transactions.ListByUser(ctx, caller.ID)
	if err != nil {
		return nil, nil, apperr.Internal("Failed to fetch transactions", err)
	}

	return custs, txns, nil
}
