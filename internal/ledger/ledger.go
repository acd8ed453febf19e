// Package ledger derives balances and reminder alerts from a customer's
// transactions. Nothing here touches storage; every function is a pure
// computation over the slices it is given.
package ledger

import (
	"sort"

	"paytrack/internal/domain/transactions"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ComputeBalance is the sum of purchases minus the sum of payments. It is
// not clamped, an overpaid customer has a negative balance.
func ComputeBalance(txns []transactions.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txns {
		switch t.Type {
		case transactions.TypePurchase:
			balance = balance.Add(t.Amount)
		case transactions.TypePayment:
			balance = balance.Sub(t.Amount)
		}
	}
	return balance
}

// CustomerTransactions returns the transactions of one customer, most recent
// first. The input slice is not modified.
func CustomerTransactions(customerID uuid.UUID, txns []transactions.Transaction) []transactions.Transaction {
	out := make([]transactions.Transaction, 0)
	for _, t := range txns {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	SortByDateDesc(out)
	return out
}

// SortByDateDesc orders txns newest first, keeping the input order for equal
// dates.
func SortByDateDesc(txns []transactions.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
}

// GroupByCustomer indexes txns by customer id.
func GroupByCustomer(txns []transactions.Transaction) map[uuid.UUID][]transactions.Transaction {
	out := make(map[uuid.UUID][]transactions.Transaction)
	for _, t := range txns {
		out[t.CustomerID] = append(out[t.CustomerID], t)
	}
	return out
}

// Balance labels shown next to each customer.
const (
	StatusPaid   = "Paid"
	StatusLow    = "Low"
	StatusMedium = "Medium"
	StatusHigh   = "High"
)

var (
	lowBalanceCeiling    = decimal.NewFromInt(2000)
	mediumBalanceCeiling = decimal.NewFromInt(5000)
)

// BalanceStatus buckets a balance: zero is Paid, under 2000 Low, under 5000
// Medium. Everything else, negative balances included, is High.
func BalanceStatus(balance decimal.Decimal) string {
	switch {
	case balance.IsZero():
		return StatusPaid
	case balance.IsPositive() && balance.LessThan(lowBalanceCeiling):
		return StatusLow
	case balance.GreaterThanOrEqual(lowBalanceCeiling) && balance.LessThan(mediumBalanceCeiling):
		return StatusMedium
	default:
		return StatusHigh
	}
}
