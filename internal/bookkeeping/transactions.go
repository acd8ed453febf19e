package bookkeeping

import (
	"context"
	"errors"
	"strings"

	"paytrack/internal/apperr"
	"paytrack/internal/auth"
	"paytrack/internal/domain/transactions"
	"paytrack/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LineItemInput struct {
	ID       string          `json:"id" validate:"max=64"`
	Name     string          `json:"name" validate:"notblank,max=200"`
	Quantity int             `json:"quantity" validate:"min=1"`
	Price    decimal.Decimal `json:"price"`
}

type TransactionInput struct {
	CustomerID    string           `json:"customerId" validate:"required,uuid"`
	Type          string           `json:"type" validate:"required,oneof=purchase payment"`
	Amount        *decimal.Decimal `json:"amount"`
	Description   string           `json:"description" validate:"max=500"`
	Date          *Date            `json:"date"`
	DueDate       *Date            `json:"dueDate"`
	PaymentMethod *string          `json:"paymentMethod" validate:"omitempty,max=50"`
	Items         []LineItemInput  `json:"items" validate:"omitempty,dive"`
}

// TransactionUpdate changes amount, description, date and due date. The type,
// customer and line items of a transaction never change.
type TransactionUpdate struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Date        *Date            `json:"date"`
	DueDate     *Date            `json:"dueDate"`
}

func checkAmount(amount *decimal.Decimal) error {
	if amount == nil {
		return apperr.Validation("amount is required")
	}
	if amount.IsNegative() {
		return apperr.Validation("amount must be zero or more")
	}
	return nil
}

func (in TransactionInput) validate() error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	if err := checkAmount(in.Amount); err != nil {
		return err
	}

	switch transactions.Type(in.Type) {
	case transactions.TypePurchase:
		if in.PaymentMethod != nil {
			return apperr.Validation("paymentMethod is only allowed on payments")
		}
	case transactions.TypePayment:
		if in.DueDate != nil {
			return apperr.Validation("dueDate is only allowed on purchases")
		}
		if len(in.Items) > 0 {
			return apperr.Validation("items are only allowed on purchases")
		}
	}

	for _, it := range in.Items {
		if it.Price.IsNegative() {
			return apperr.Validation("price must be zero or more")
		}
	}
	return nil
}

func (s *Service) CreateTransaction(ctx context.Context, caller *auth.Identity, in TransactionInput) (*transactions.Transaction, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	customerID, _ := uuid.Parse(in.CustomerID)
	c, err := s.ownedCustomer(ctx, caller, customerID, false)
	if err != nil {
		return nil, err
	}

	t := &transactions.Transaction{
		UserID:      caller.ID,
		CustomerID:  c.ID,
		Type:        transactions.Type(in.Type),
		Amount:      *in.Amount,
		Description: strings.TrimSpace(in.Description),
		Date:        s.now().UTC(),
		DueDate:     in.DueDate.ptr(),
	}
	if in.Date != nil {
		t.Date = in.Date.Time
	}
	if in.PaymentMethod != nil {
		if pm := strings.TrimSpace(*in.PaymentMethod); pm != "" {
			t.PaymentMethod = &pm
		}
	}
	for _, it := range in.Items {
		t.Items = append(t.Items, transactions.LineItem{
			ID:       it.ID,
			Name:     strings.TrimSpace(it.Name),
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	if err := s.transactions.Create(ctx, t); err != nil {
		return nil, apperr.Internal("Failed to create transaction", err)
	}

	s.logger.Infow("transaction recorded",
		"transaction_id", t.ID,
		"customer_id", t.CustomerID,
		"type", t.Type,
		"amount", t.Amount.String(),
	)
	return t, nil
}

// ListTransactions returns every transaction of the caller, most recent
// first.
func (s *Service) ListTransactions(ctx context.Context, caller *auth.Identity) ([]transactions.Transaction, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	txns, err := s.transactions.ListByUser(ctx, caller.ID)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch transactions", err)
	}
	return txns, nil
}

func (s *Service) GetTransaction(ctx context.Context, caller *auth.Identity, id uuid.UUID) (*transactions.Transaction, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	return s.ownedTransaction(ctx, caller, id)
}

func (s *Service) UpdateTransaction(ctx context.Context, caller *auth.Identity, id uuid.UUID, in TransactionUpdate) (*transactions.Transaction, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if in.Amount != nil {
		if err := checkAmount(in.Amount); err != nil {
			return nil, err
		}
	}

	t, err := s.ownedTransaction(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if in.DueDate != nil && t.Type != transactions.TypePurchase {
		return nil, apperr.Validation("dueDate is only allowed on purchases")
	}

	if in.Amount != nil {
		t.Amount = *in.Amount
	}
	if in.Description != nil {
		t.Description = strings.TrimSpace(*in.Description)
	}
	if in.Date != nil {
		t.Date = in.Date.Time
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate.ptr()
	}

	if err := s.transactions.Update(ctx, t); err != nil {
		if errors.Is(err, transactions.ErrNotFound) {
			return nil, apperr.NotFound("Transaction not found")
		}
		return nil, apperr.Internal("Failed to update transaction", err)
	}

	return t, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, caller *auth.Identity, id uuid.UUID) error {
	if err := requireCaller(caller); err != nil {
		return err
	}

	t, err := s.ownedTransaction(ctx, caller, id)
	if err != nil {
		return err
	}

	if err := s.transactions.Delete(ctx, t.ID); err != nil {
		if errors.Is(err, transactions.ErrNotFound) {
			return apperr.NotFound("Transaction not found")
		}
		return apperr.Internal("Failed to delete transaction", err)
	}

	s.logger.Infow("transaction deleted", "transaction_id", t.ID, "customer_id", t.CustomerID)
	return nil
}
