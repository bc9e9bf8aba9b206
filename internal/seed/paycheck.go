package seed

import (
	"context"
	"time"

	"github.com/Veraticus/faseed/internal/model"
	"github.com/Veraticus/faseed/internal/service"
)

// A biweekly paycheck for a household earning about $60,000 a year.
const (
	PaycheckAmount      = 2307.00
	PaycheckCategory    = "Income"
	PaycheckDescription = "Biweekly Paycheck"
)

// NextPayday returns the first Friday strictly after today.
func NextPayday(today time.Time) time.Time {
	days := (int(time.Friday) - int(today.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return today.AddDate(0, 0, days)
}

// PaycheckOptions configures SeedPaycheck.
type PaycheckOptions struct {
	AllowFallback bool
}

// SeedPaycheck inserts one upcoming paycheck into the first deposit account.
func (s *Seeder) SeedPaycheck(ctx context.Context, opts PaycheckOptions) (*Result, error) {
	account, err := s.ResolveDepositAccount(ctx, opts.AllowFallback)
	if err != nil {
		return nil, err
	}

	payday := NextPayday(s.today())
	paycheck := []model.Transaction{{
		AccountID:   account.ID,
		Date:        payday,
		Amount:      PaycheckAmount,
		Category:    PaycheckCategory,
		Description: PaycheckDescription,
	}}

	runID, err := s.write(ctx, "paycheck", func(tx service.Transaction) error {
		return tx.InsertTransactions(ctx, paycheck)
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		RunID:        runID,
		AccountID:    account.ID,
		FellBack:     account.FellBack,
		Transactions: 1,
		From:         payday,
		Through:      payday,
	}, nil
}
