package ledger

import (
	"math/rand"
	"testing"
	"time"

	"paytrack/internal/domain/customers"
	"paytrack/internal/domain/transactions"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func daysAgo(n int) time.Time { return now.Add(-time.Duration(n) * 24 * time.Hour) }

func purchase(customerID uuid.UUID, amount string, date time.Time, due *time.Time) transactions.Transaction {
	return transactions.Transaction{
		ID:         uuid.New(),
		CustomerID: customerID,
		Type:       transactions.TypePurchase,
		Amount:     dec(amount),
		Date:       date,
		DueDate:    due,
	}
}

func payment(customerID uuid.UUID, amount string, date time.Time) transactions.Transaction {
	return transactions.Transaction{
		ID:         uuid.New(),
		CustomerID: customerID,
		Type:       transactions.TypePayment,
		Amount:     dec(amount),
		Date:       date,
	}
}

func TestComputeBalance(t *testing.T) {
	c := uuid.New()

	tests := []struct {
		name string
		txns []transactions.Transaction
		want string
	}{
		{"empty", nil, "0"},
		{"single purchase", []transactions.Transaction{purchase(c, "1000", now, nil)}, "1000"},
		{
			"purchases minus payments",
			[]transactions.Transaction{
				purchase(c, "1000.50", daysAgo(3), nil),
				purchase(c, "250.25", daysAgo(2), nil),
				payment(c, "500", daysAgo(1)),
			},
			"750.75",
		},
		{
			"overpaid goes negative",
			[]transactions.Transaction{
				purchase(c, "100", daysAgo(2), nil),
				payment(c, "150", daysAgo(1)),
			},
			"-50",
		},
		{
			"decimal amounts do not drift",
			[]transactions.Transaction{
				purchase(c, "0.1", now, nil),
				purchase(c, "0.2", now, nil),
				payment(c, "0.3", now),
			},
			"0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBalance(tt.txns)
			if !got.Equal(dec(tt.want)) {
				t.Errorf("ComputeBalance() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestComputeBalance_MatchesSumsForRandomSets(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	c := uuid.New()

	for i := 0; i < 200; i++ {
		var txns []transactions.Transaction
		purchases, payments := decimal.Zero, decimal.Zero

		for n := r.Intn(20); n > 0; n-- {
			amount := decimal.New(r.Int63n(1_000_000), -2)
			if r.Intn(2) == 0 {
				txns = append(txns, purchase(c, amount.String(), now, nil))
				purchases = purchases.Add(amount)
			} else {
				txns = append(txns, payment(c, amount.String(), now))
				payments = payments.Add(amount)
			}
		}

		want := purchases.Sub(payments)
		if got := ComputeBalance(txns); !got.Equal(want) {
			t.Fatalf("iteration %d: ComputeBalance() = %s, want %s", i, got, want)
		}
	}
}

func TestCustomerTransactions_FiltersAndSortsNewestFirst(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	oldest := purchase(a, "10", daysAgo(10), nil)
	middle := payment(a, "5", daysAgo(5))
	newest := purchase(a, "20", daysAgo(1), nil)
	other := purchase(b, "99", daysAgo(2), nil)

	input := []transactions.Transaction{oldest, other, newest, middle}
	got := CustomerTransactions(a, input)

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantOrder := []uuid.UUID{newest.ID, middle.ID, oldest.ID}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
	if input[0].ID != oldest.ID || input[2].ID != newest.ID {
		t.Error("input slice was reordered")
	}
}

func TestBalanceStatus(t *testing.T) {
	tests := []struct {
		balance string
		want    string
	}{
		{"0", StatusPaid},
		{"0.01", StatusLow},
		{"1999.99", StatusLow},
		{"2000", StatusMedium},
		{"4999.99", StatusMedium},
		{"5000", StatusHigh},
		{"125000", StatusHigh},
		{"-10", StatusHigh},
	}
	for _, tt := range tests {
		if got := BalanceStatus(dec(tt.balance)); got != tt.want {
			t.Errorf("BalanceStatus(%s) = %q, want %q", tt.balance, got, tt.want)
		}
	}
}

func TestGroupByCustomer(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	groups := GroupByCustomer([]transactions.Transaction{
		purchase(a, "1", now, nil),
		purchase(b, "2", now, nil),
		payment(a, "1", now),
	})

	if len(groups[a]) != 2 || len(groups[b]) != 1 {
		t.Errorf("unexpected grouping: a=%d b=%d", len(groups[a]), len(groups[b]))
	}
	if _, ok := groups[uuid.New()]; ok {
		t.Error("unknown customer should have no group")
	}
}

func customer(name, contact string) customers.Customer {
	return customers.Customer{ID: uuid.New(), Name: name, Contact: contact}
}
