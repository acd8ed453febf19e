package bookkeeping

import (
	"context"

	"paytrack/internal/auth"
	"paytrack/internal/ledger"
)

type Reminders struct {
	Alerts []ledger.Alert          `json:"alerts"`
	Counts map[ledger.Severity]int `json:"counts"`
	Total  int                     `json:"total"`
}

// Reminders derives a payment alert for every customer of the caller that
// still owes money, most urgent first.
func (s *Service) Reminders(ctx context.Context, caller *auth.Identity) (*Reminders, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	custs, txns, err := s.ledgerOf(ctx, caller)
	if err != nil {
		return nil, err
	}

	alerts := ledger.DeriveAlerts(custs, txns, s.now())
	return &Reminders{
		Alerts: alerts,
		Counts: ledger.CountBySeverity(alerts),
		Total:  len(alerts),
	}, nil
}

func (s *Service) Dashboard(ctx context.Context, caller *auth.Identity) (*ledger.Summary, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	custs, txns, err := s.ledgerOf(ctx, caller)
	if err != nil {
		return nil, err
	}

	sum := ledger.Summarize(custs, txns, s.now())
	return &sum, nil
}
