package transactions

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("transaction not found")
	QueryTimeoutDuration = time.Second * 5
)

type Type string

const (
	TypePurchase Type = "purchase"
	TypePayment  Type = "payment"
)

func (t Type) Valid() bool {
	return t == TypePurchase || t == TypePayment
}

// LineItem is one row of a purchase. Quantity * Price summed over the items
// is expected to equal the purchase amount; the client computes it.
type LineItem struct {
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	CustomerID    uuid.UUID       `json:"customerId"`
	Type          Type            `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	PaymentMethod *string         `json:"paymentMethod,omitempty"`
	Items         []LineItem      `json:"items,omitempty"`
}

// ItemsTotal sums quantity * price over the line items.
func (t *Transaction) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range t.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
