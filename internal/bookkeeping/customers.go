package bookkeeping

import (
	"context"
	"errors"
	"strings"
	"time"

	"paytrack/internal/apperr"
	"paytrack/internal/auth"
	"paytrack/internal/domain/customers"
	"paytrack/internal/domain/storage"
	"paytrack/internal/domain/transactions"
	"paytrack/internal/ledger"
	"paytrack/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CustomerInput struct {
	Name    string  `json:"name" validate:"notblank,max=100"`
	Contact string  `json:"contact" validate:"notblank,max=50"`
	Email   *string `json:"email" validate:"omitempty,email,max=255"`
}

func (in CustomerInput) normalize() CustomerInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Contact = strings.TrimSpace(in.Contact)
	if in.Email != nil {
		e := strings.TrimSpace(*in.Email)
		if e == "" {
			in.Email = nil
		} else {
			in.Email = &e
		}
	}
	return in
}

// CustomerSummary is a customer with its derived balance.
type CustomerSummary struct {
	customers.Customer
	Balance          decimal.Decimal `json:"balance"`
	BalanceStatus    string          `json:"balanceStatus"`
	TransactionCount int             `json:"transactionCount"`
	LastActivity     *time.Time      `json:"lastActivity,omitempty"`
}

type CustomerDetail struct {
	CustomerSummary
	Transactions []transactions.Transaction `json:"transactions"`
}

// CustomerFilter narrows ListCustomers. Search matches name or contact,
// case-insensitively. Balance bounds are inclusive.
type CustomerFilter struct {
	Search     string
	MinBalance *decimal.Decimal
	MaxBalance *decimal.Decimal
}

func (f CustomerFilter) match(s CustomerSummary) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(s.Name), q) && !strings.Contains(strings.ToLower(s.Contact), q) {
			return false
		}
	}
	if f.MinBalance != nil && s.Balance.LessThan(*f.MinBalance) {
		return false
	}
	if f.MaxBalance != nil && s.Balance.GreaterThan(*f.MaxBalance) {
		return false
	}
	return true
}

func summarize(c customers.Customer, own []transactions.Transaction) CustomerSummary {
	sorted := ledger.CustomerTransactions(c.ID, own)
	balance := ledger.ComputeBalance(sorted)

	s := CustomerSummary{
		Customer:         c,
		Balance:          balance,
		BalanceStatus:    ledger.BalanceStatus(balance),
		TransactionCount: len(sorted),
	}
	if len(sorted) > 0 {
		last := sorted[0].Date
		s.LastActivity = &last
	}
	return s
}

func (s *Service) CreateCustomer(ctx context.Context, caller *auth.Identity, in CustomerInput) (*customers.Customer, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	in = in.normalize()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	c := &customers.Customer{
		UserID:  caller.ID,
		Name:    in.Name,
		Contact: in.Contact,
		Email:   in.Email,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, apperr.Internal("Failed to create customer", err)
	}

	s.logger.Infow("customer created", "customer_id", c.ID, "user_id", caller.ID)
	return c, nil
}

// ListCustomers returns the caller's customers, oldest first, each with its
// balance.
func (s *Service) ListCustomers(ctx context.Context, caller *auth.Identity, f CustomerFilter) ([]CustomerSummary, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if f.MinBalance != nil && f.MaxBalance != nil && f.MinBalance.GreaterThan(*f.MaxBalance) {
		return nil, apperr.Validation("min_balance must not exceed max_balance")
	}

	custs, txns, err := s.ledgerOf(ctx, caller)
	if err != nil {
		return nil, err
	}

	byCustomer := ledger.GroupByCustomer(txns)
	out := make([]CustomerSummary, 0, len(custs))
	for _, c := range custs {
		sum := summarize(c, byCustomer[c.ID])
		if f.match(sum) {
			out = append(out, sum)
		}
	}
	return out, nil
}

func (s *Service) GetCustomer(ctx context.Context, caller *auth.Identity, id uuid.UUID) (*CustomerDetail, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	c, err := s.ownedCustomer(ctx, caller, id, false)
	if err != nil {
		return nil, err
	}

	txns, err := s.transactions.ListByCustomer(ctx, c.ID)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch transactions", err)
	}

	sum := summarize(*c, txns)
	return &CustomerDetail{
		CustomerSummary: sum,
		Transactions:    ledger.CustomerTransactions(c.ID, txns),
	}, nil
}

// CustomerTransactions lists one customer's transactions, most recent first.
func (s *Service) CustomerTransactions(ctx context.Context, caller *auth.Identity, id uuid.UUID) ([]transactions.Transaction, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	c, err := s.ownedCustomer(ctx, caller, id, false)
	if err != nil {
		return nil, err
	}

	txns, err := s.transactions.ListByCustomer(ctx, c.ID)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch transactions", err)
	}
	return ledger.CustomerTransactions(c.ID, txns), nil
}

func (s *Service) UpdateCustomer(ctx context.Context, caller *auth.Identity, id uuid.UUID, in CustomerInput) (*customers.Customer, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	in = in.normalize()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	c, err := s.ownedCustomer(ctx, caller, id, false)
	if err != nil {
		return nil, err
	}

	c.Name, c.Contact, c.Email = in.Name, in.Contact, in.Email
	if err := s.customers.Update(ctx, c); err != nil {
		if errors.Is(err, customers.ErrNotFound) {
			return nil, apperr.NotFound("Customer not found")
		}
		return nil, apperr.Internal("Failed to update customer", err)
	}

	return c, nil
}

// DeleteCustomer removes a customer and its transactions. The owner or an
// admin may do this.
func (s *Service) DeleteCustomer(ctx context.Context, caller *auth.Identity, id uuid.UUID) error {
	if err := requireCaller(caller); err != nil {
		return err
	}

	c, err := s.ownedCustomer(ctx, caller, id, true)
	if err != nil {
		return err
	}

	var removed int64
	err = s.tx.WithTx(ctx, func(tx *storage.Tx) error {
		n, err := tx.Transactions.DeleteByCustomer(ctx, c.ID)
		if err != nil {
			return err
		}
		removed = n
		return tx.Customers.Delete(ctx, c.ID)
	})
	if err != nil {
		if errors.Is(err, customers.ErrNotFound) {
			return apperr.NotFound("Customer not found")
		}
		return apperr.Internal("Failed to delete customer", err)
	}

	s.logger.Infow("customer deleted",
		"customer_id", c.ID,
		"owner_id", c.UserID,
		"by", caller.ID,
		"transactions", removed,
	)
	return nil
}
