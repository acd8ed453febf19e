package ledger

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"
	"time"

	"paytrack/internal/domain/customers"
	"paytrack/internal/domain/transactions"

	"github.com/shopspring/decimal"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank orders severities for display, high first.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

const (
	// DefaultTermDays applies when a purchase has no explicit due date.
	DefaultTermDays = 30
	// DueSoonDays is the window in which an upcoming due date is flagged.
	DueSoonDays = 7
)

var highBalanceThreshold = decimal.NewFromInt(5000)

type Alert struct {
	Customer         customers.Customer `json:"customer"`
	Balance          decimal.Decimal    `json:"balance"`
	DaysOverdue      int                `json:"daysOverdue"`
	DaysUntilDue     int                `json:"daysUntilDue"`
	DueDate          time.Time          `json:"dueDate"`
	LastPurchaseDate time.Time          `json:"lastPurchaseDate"`
	Severity         Severity           `json:"severity"`
	Message          string             `json:"message"`
	ReminderURL      string             `json:"reminderUrl,omitempty"`
}

// EffectiveDueDate is the purchase's due date, or its date plus the default
// term when none was recorded.
func EffectiveDueDate(purchase transactions.Transaction) time.Time {
	if purchase.DueDate != nil {
		return *purchase.DueDate
	}
	return purchase.Date.Add(DefaultTermDays * 24 * time.Hour)
}

// floorDays converts d to whole days rounding toward negative infinity.
func floorDays(d time.Duration) int {
	return int(math.Floor(d.Hours() / 24))
}

// DeriveAlert classifies one customer. Transactions belonging to other
// customers are ignored. ok is false when the customer needs no reminder:
// the balance is not positive, or there is no purchase to take a due date
// from.
func DeriveAlert(customer customers.Customer, txns []transactions.Transaction, now time.Time) (Alert, bool) {
	own := CustomerTransactions(customer.ID, txns)

	balance := ComputeBalance(own)
	if !balance.IsPositive() {
		return Alert{}, false
	}

	var last *transactions.Transaction
	for i := range own {
		if own[i].Type == transactions.TypePurchase {
			// own is sorted newest first
			last = &own[i]
			break
		}
	}
	if last == nil {
		return Alert{}, false
	}

	due := EffectiveDueDate(*last)
	daysOverdue := floorDays(now.Sub(due))
	daysUntilDue := floorDays(due.Sub(now))

	alert := Alert{
		Customer:         customer,
		Balance:          balance,
		DaysOverdue:      daysOverdue,
		DaysUntilDue:     daysUntilDue,
		DueDate:          due,
		LastPurchaseDate: last.Date,
	}

	switch {
	case daysOverdue > 0:
		alert.Severity = SeverityHigh
		alert.Message = fmt.Sprintf("Payment overdue by %d days", daysOverdue)
	case daysUntilDue <= DueSoonDays:
		alert.Severity = SeverityMedium
		alert.Message = fmt.Sprintf("Payment due soon (%d days remaining)", daysUntilDue)
	case balance.GreaterThan(highBalanceThreshold):
		alert.Severity = SeverityMedium
		alert.Message = "High outstanding balance"
	default:
		alert.Severity = SeverityLow
		alert.Message = "Outstanding balance"
	}

	alert.ReminderURL = ReminderURL(customer, balance, due)

	return alert, true
}

// DeriveAlerts runs DeriveAlert over every customer and orders the result by
// severity. Customers of equal severity keep their input order.
func DeriveAlerts(custs []customers.Customer, txns []transactions.Transaction, now time.Time) []Alert {
	byCustomer := GroupByCustomer(txns)

	alerts := make([]Alert, 0)
	for _, c := range custs {
		if a, ok := DeriveAlert(c, byCustomer[c.ID], now); ok {
			alerts = append(alerts, a)
		}
	}

	SortAlerts(alerts)
	return alerts
}

// SortAlerts is a stable sort by severity rank.
func SortAlerts(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() < alerts[j].Severity.Rank()
	})
}

// CountBySeverity tallies alerts for the reminder header cards.
func CountBySeverity(alerts []Alert) map[Severity]int {
	out := map[Severity]int{SeverityHigh: 0, SeverityMedium: 0, SeverityLow: 0}
	for _, a := range alerts {
		out[a.Severity]++
	}
	return out
}

// ReminderURL builds a WhatsApp click-to-chat link carrying a payment
// reminder. It is empty when the contact holds no digits.
func ReminderURL(customer customers.Customer, balance decimal.Decimal, due time.Time) string {
	var digits strings.Builder
	for _, r := range customer.Contact {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return ""
	}

	msg := fmt.Sprintf(
		"Hello %s, gentle reminder: your balance of Rs %s was due on %s. Please pay at your earliest convenience. Thank you!",
		customer.Name, FormatAmount(balance), due.Format("02 Jan 2006"),
	)

	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(msg)
}

// FormatAmount renders a decimal with thousands separators, keeping up to
// two fraction digits ("12,500", "1,234.5").
func FormatAmount(d decimal.Decimal) string {
	s := d.Round(2).String()

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return sign + b.String() + frac
}
