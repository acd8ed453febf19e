package ledger

import (
	"time"

	"paytrack/internal/domain/customers"
	"paytrack/internal/domain/transactions"

	"github.com/shopspring/decimal"
)

// Summary backs the shop dashboard cards.
type Summary struct {
	TotalOutstanding     decimal.Decimal `json:"totalOutstanding"`
	CustomersWithBalance int             `json:"customersWithBalance"`
	TodayTransactions    int             `json:"todayTransactions"`
	OverdueAccounts      int             `json:"overdueAccounts"`
	TotalCustomers       int             `json:"totalCustomers"`
}

const dayLayout = "2006-01-02"

// Summarize computes the dashboard figures. Calendar days are compared in
// UTC. An account is overdue when its balance is positive and one of its
// purchases carries an explicit due date on a day before today; the default
// 30 day term is not considered here.
func Summarize(custs []customers.Customer, txns []transactions.Transaction, now time.Time) Summary {
	today := now.UTC().Format(dayLayout)
	byCustomer := GroupByCustomer(txns)

	s := Summary{TotalOutstanding: decimal.Zero, TotalCustomers: len(custs)}

	for _, t := range txns {
		if t.Date.UTC().Format(dayLayout) == today {
			s.TodayTransactions++
		}
	}

	for _, c := range custs {
		own := byCustomer[c.ID]
		balance := ComputeBalance(own)
		s.TotalOutstanding = s.TotalOutstanding.Add(balance)

		if !balance.IsPositive() {
			continue
		}
		s.CustomersWithBalance++

		for _, t := range own {
			if t.Type != transactions.TypePurchase || t.DueDate == nil {
				continue
			}
			if t.DueDate.UTC().Format(dayLayout) < today {
				s.OverdueAccounts++
				break
			}
		}
	}

	return s
}
