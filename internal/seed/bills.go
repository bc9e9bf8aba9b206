package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/faseed/internal/model"
	"github.com/Veraticus/faseed/internal/service"
)

// TestBillCategory labels the bills SeedTestBills writes.
const TestBillCategory = "Test Bill"

// DefaultBillDays is how many days of bills SeedTestBills writes by default.
const DefaultBillDays = 7

// TestBills returns one unpaid bill per day for days days after today. The
// bill due in i days costs 100*i and is on auto-pay when i is even.
func TestBills(today time.Time, accountID int64, days int) []model.Transaction {
	bills := make([]model.Transaction, 0, days)
	for i := 1; i <= days; i++ {
		bills = append(bills, model.Transaction{
			AccountID:   accountID,
			Date:        today.AddDate(0, 0, i),
			Amount:      float64(-100 * i),
			Category:    TestBillCategory,
			Description: fmt.Sprintf("Bill due in %d days", i),
			Paid:        model.Bool(false),
			AutoPay:     model.Bool(i%2 == 0),
		})
	}
	return bills
}

// BillsOptions configures SeedTestBills.
type BillsOptions struct {
	// AccountID pays the bills when set; otherwise the deposit account does.
	AccountID     int64
	Days          int
	AllowFallback bool
}

// SeedTestBills inserts upcoming test bills.
func (s *Seeder) SeedTestBills(ctx context.Context, opts BillsOptions) (*Result, error) {
	days := opts.Days
	if days <= 0 {
		days = DefaultBillDays
	}

	account := AccountResolution{ID: opts.AccountID}
	if account.ID <= 0 {
		var err error
		account, err = s.ResolveDepositAccount(ctx, opts.AllowFallback)
		if err != nil {
			return nil, err
		}
	}

	bills := TestBills(s.today(), account.ID, days)
	runID, err := s.write(ctx, "bills", func(tx service.Transaction) error {
		return tx.InsertTransactions(ctx, bills)
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		RunID:        runID,
		AccountID:    account.ID,
		FellBack:     account.FellBack,
		Transactions: len(bills),
		From:         bills[0].Date,
		Through:      bills[len(bills)-1].Date,
	}, nil
}
