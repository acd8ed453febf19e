// Package moderation holds the admin operations over shop accounts: listing,
// approval, rejection and removal. Every operation checks that the caller is
// an admin before touching storage.
package moderation

import (
	"context"
	"errors"
	"strings"
	"sync"

	"paytrack/internal/apperr"
	"paytrack/internal/auth"
	"paytrack/internal/domain/accounts"
	"paytrack/internal/domain/storage"
	"paytrack/internal/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	accounts    accounts.Store
	tx          storage.Runner
	mailer      mailer.Client
	frontendURL string
	logger      *zap.SugaredLogger

	wg sync.WaitGroup
}

func NewService(store accounts.Store, tx storage.Runner, m mailer.Client, frontendURL string, logger *zap.SugaredLogger) *Service {
	return &Service{
		accounts:    store,
		tx:          tx,
		mailer:      m,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		logger:      logger,
	}
}

// ListAccounts returns accounts newest first. "all" or an empty filter
// returns every account; any other value is matched exactly.
func (s *Service) ListAccounts(ctx context.Context, caller *auth.Identity, statusFilter string) ([]accounts.Account, error) {
	if err := auth.RequireRole(caller, accounts.RoleAdmin); err != nil {
		return nil, err
	}

	status := accounts.Status(strings.TrimSpace(statusFilter))
	if status == "all" {
		status = ""
	}

	list, err := s.accounts.List(ctx, status)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch users", err)
	}
	return list, nil
}

func (s *Service) Stats(ctx context.Context, caller *auth.Identity) (*accounts.Stats, error) {
	if err := auth.RequireRole(caller, accounts.RoleAdmin); err != nil {
		return nil, err
	}

	stats, err := s.accounts.Stats(ctx)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch statistics", err)
	}
	return stats, nil
}

// Approve moves an account to approved. Approving twice is a conflict.
func (s *Service) Approve(ctx context.Context, caller *auth.Identity, id uuid.UUID) (*accounts.Account, error) {
	if err := auth.RequireRole(caller, accounts.RoleAdmin); err != nil {
		return nil, err
	}

	current, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Failed to approve user")
	}
	if current.Status == accounts.StatusApproved {
		return nil, apperr.Conflict("User is already approved")
	}

	updated, err := s.accounts.UpdateStatus(ctx, id, accounts.StatusApproved)
	if err != nil {
		return nil, notFoundOr(err, "Failed to approve user")
	}

	s.logger.Infow("account approved", "account_id", id, "by", caller.ID)
	s.notify(mailer.AccountApprovedTemplate, updated)

	return updated, nil
}

// Reject moves an account to rejected. Unlike Approve it never conflicts.
func (s *Service) Reject(ctx context.Context, caller *auth.Identity, id uuid.UUID) (*accounts.Account, error) {
	if err := auth.RequireRole(caller, accounts.RoleAdmin); err != nil {
		return nil, err
	}

	updated, err := s.accounts.UpdateStatus(ctx, id, accounts.StatusRejected)
	if err != nil {
		return nil, notFoundOr(err, "Failed to reject user")
	}

	s.logger.Infow("account rejected", "account_id", id, "by", caller.ID)
	s.notify(mailer.AccountRejectedTemplate, updated)

	return updated, nil
}

type DeleteResult struct {
	Customers    int64 `json:"customersDeleted"`
	Transactions int64 `json:"transactionsDeleted"`
}

// DeleteAccount removes a non-admin account with every customer and
// transaction it owns, in one database transaction.
func (s *Service) DeleteAccount(ctx context.Context, caller *auth.Identity, id uuid.UUID) (*DeleteResult, error) {
	if err := auth.RequireRole(caller, accounts.RoleAdmin); err != nil {
		return nil, err
	}

	target, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Failed to delete user")
	}
	if target.IsAdmin() {
		return nil, apperr.Forbidden("Cannot delete admin users")
	}

	res := &DeleteResult{}
	err = s.tx.WithTx(ctx, func(tx *storage.Tx) error {
		n, err := tx.Transactions.DeleteByUser(ctx, id)
		if err != nil {
			return err
		}
		res.Transactions = n

		if n, err = tx.Customers.DeleteByUser(ctx, id); err != nil {
			return err
		}
		res.Customers = n

		return tx.Accounts.Delete(ctx, id)
	})
	if err != nil {
		return nil, notFoundOr(err, "Failed to delete user")
	}

	s.logger.Infow("account deleted",
		"account_id", id,
		"by", caller.ID,
		"customers", res.Customers,
		"transactions", res.Transactions,
	)

	return res, nil
}

// Wait blocks until pending notices are sent.
func (s *Service) Wait() {
	s.wg.Wait()
}

// notify emails the account owner in the background. A failed send is logged
// and never undoes the status change.
func (s *Service) notify(templateFile string, a *accounts.Account) {
	if s.mailer == nil {
		return
	}

	data := struct {
		Username string
		ShopName string
		LoginURL string
	}{
		Username: a.Name,
		LoginURL: s.frontendURL + "/login",
	}
	if a.ShopName != nil {
		data.ShopName = *a.ShopName
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.mailer.Send(templateFile, a.Name, a.Email, data); err != nil {
			s.logger.Warnw("failed to send account notice", "account_id", a.ID, "template", templateFile, "error", err)
		}
	}()
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, accounts.ErrNotFound) {
		return apperr.NotFound("User not found")
	}
	return apperr.Internal(msg, err)
}
