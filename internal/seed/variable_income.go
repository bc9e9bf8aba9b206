package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/faseed/internal/model"
	"github.com/Veraticus/faseed/internal/service"
)

// Default year range of the variable income history.
const (
	DefaultStartYear = 2023
	DefaultEndYear   = 2025
)

// Years outside MinYear..MaxYear do not format as four-digit YYYY-MM-DD dates.
const (
	MinYear = 1
	MaxYear = 9999
)

// ErrInvalidYearRange is returned for a reversed range or a year outside MinYear..MaxYear.
var ErrInvalidYearRange = errors.New("invalid year range")

// ValidateYearRange checks an inclusive year range before anything is sized from it.
func ValidateYearRange(startYear, endYear int) error {
	if startYear < MinYear || endYear > MaxYear {
		return fmt.Errorf("%w: years must be between %d and %d, got %d..%d",
			ErrInvalidYearRange, MinYear, MaxYear, startYear, endYear)
	}
	if startYear > endYear {
		return fmt.Errorf("%w: start year %d is after end year %d", ErrInvalidYearRange, startYear, endYear)
	}
	return nil
}

// SourceMode controls how many income source rows a run writes.
type SourceMode int

const (
	// SourcesOncePerRun writes each income source once.
	SourcesOncePerRun SourceMode = iota
	// SourcesPerPeriod re-inserts the Bond Interest and Lottery Winnings
	// sources for every month, the way the legacy Python seed script did.
	SourcesPerPeriod
)

// IncomeStream is one synthetic income category and its monthly amount formula.
type IncomeStream struct {
	// Amount returns the amount for month (1..12) in the year yearOffset
	// years after the start year.
	Amount func(month, yearOffset int) int
	Source model.IncomeSource
	// RepeatsPerPeriod marks the streams whose source row is re-inserted
	// every month under SourcesPerPeriod.
	RepeatsPerPeriod bool
}

// VariableIncomeStreams returns the income categories in insertion order.
func VariableIncomeStreams() []IncomeStream {
	return []IncomeStream{
		{
			Source: monthlySource("Freelance Writing", model.IncomeTypeFreelance, "Alex", 350, "Blog articles"),
			Amount: func(month, y int) int {
				return 350 + (month%4)*25 + y*10
			},
		},
		{
			Source: monthlySource("Side Consulting", model.IncomeTypeFreelance, "Jamie", 250, "Tech consulting"),
			Amount: func(month, y int) int {
				return 250 + (month%6)*40 + y*15
			},
		},
		{
			Source: monthlySource("Etsy Shop", model.IncomeTypeFreelance, "Alex", 180, "Handmade crafts"),
			Amount: func(_, y int) int {
				return 180 + y*5
			},
		},
		{
			Source: monthlySource("Bond Interest", model.IncomeTypeInvestment, "Alex", 120, "Stable bond interest"),
			Amount: func(_, _ int) int {
				return 120
			},
			RepeatsPerPeriod: true,
		},
		{
			Source: monthlySource("Lottery Winnings", model.IncomeTypeOther, "Jamie", 0, "Occasional windfall"),
			Amount: func(month, y int) int {
				if month%6 != 0 {
					return 0
				}
				return 500 + y*50
			},
			RepeatsPerPeriod: true,
		},
	}
}

func monthlySource(name, typ, earner string, expected float64, notes string) model.IncomeSource {
	return model.IncomeSource{
		Name:           name,
		Type:           typ,
		Earner:         earner,
		Frequency:      model.FrequencyMonthly,
		ExpectedAmount: expected,
		Notes:          notes,
	}
}

// MonthBatch holds the rows written for one (year, month).
type MonthBatch struct {
	Date         time.Time
	Sources      []model.IncomeSource
	Transactions []model.Transaction
}

// VariableIncomePlan is the full set of rows a variable income run writes.
// Transactions carry no account id until the plan is written.
type VariableIncomePlan struct {
	Sources []model.IncomeSource
	Months  []MonthBatch
}

// TransactionCount returns the number of transaction rows in the plan.
func (p *VariableIncomePlan) TransactionCount() int {
	n := 0
	for _, m := range p.Months {
		n += len(m.Transactions)
	}
	return n
}

// SourceCount returns the number of income source rows in the plan.
func (p *VariableIncomePlan) SourceCount() int {
	n := len(p.Sources)
	for _, m := range p.Months {
		n += len(m.Sources)
	}
	return n
}

// PlanVariableIncome builds the rows for every month of startYear..endYear inclusive.
// The plan depends only on its arguments.
func PlanVariableIncome(startYear, endYear int, mode SourceMode) (*VariableIncomePlan, error) {
	if err := ValidateYearRange(startYear, endYear); err != nil {
		return nil, err
	}

	streams := VariableIncomeStreams()
	plan := &VariableIncomePlan{
		Months: make([]MonthBatch, 0, 12*(endYear-startYear+1)),
	}

	for _, stream := range streams {
		if mode == SourcesPerPeriod && stream.RepeatsPerPeriod {
			continue
		}
		plan.Sources = append(plan.Sources, stream.Source)
	}

	for year := startYear; year <= endYear; year++ {
		for month := 1; month <= 12; month++ {
			batch := MonthBatch{
				Date:         time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
				Transactions: make([]model.Transaction, 0, len(streams)),
			}

			for _, stream := range streams {
				if mode == SourcesPerPeriod && stream.RepeatsPerPeriod {
					batch.Sources = append(batch.Sources, stream.Source)
				}
				batch.Transactions = append(batch.Transactions, model.Transaction{
					Date:        batch.Date,
					Amount:      float64(stream.Amount(month, year-startYear)),
					Category:    stream.Source.Type,
					Description: stream.Source.Name,
				})
			}

			plan.Months = append(plan.Months, batch)
		}
	}

	return plan, nil
}

// VariableIncomeOptions configures SeedVariableIncome.
type VariableIncomeOptions struct {
	Progress      Progress
	StartYear     int
	EndYear       int
	SourceMode    SourceMode
	AllowFallback bool
}

// SeedVariableIncome writes the multi-year variable income history into the
// first deposit account. Progress, when set, ticks once per month written.
func (s *Seeder) SeedVariableIncome(ctx context.Context, opts VariableIncomeOptions) (*Result, error) {
	plan, err := PlanVariableIncome(opts.StartYear, opts.EndYear, opts.SourceMode)
	if err != nil {
		return nil, err
	}

	account, err := s.ResolveDepositAccount(ctx, opts.AllowFallback)
	if err != nil {
		return nil, err
	}

	runID, err := s.write(ctx, "variable-income", func(tx service.Transaction) error {
		if len(plan.Sources) > 0 {
			if err := tx.InsertIncomeSources(ctx, plan.Sources); err != nil {
				return fmt.Errorf("failed to insert income sources: %w", err)
			}
		}

		for i := range plan.Months {
			if err := ctx.Err(); err != nil {
				return err
			}

			batch := &plan.Months[i]
			for j := range batch.Transactions {
				batch.Transactions[j].AccountID = account.ID
			}

			if len(batch.Sources) > 0 {
				if err := tx.InsertIncomeSources(ctx, batch.Sources); err != nil {
					return fmt.Errorf("failed to insert income sources for %s: %w", batch.Date.Format("2006-01"), err)
				}
			}
			if err := tx.InsertTransactions(ctx, batch.Transactions); err != nil {
				return fmt.Errorf("failed to insert transactions for %s: %w", batch.Date.Format("2006-01"), err)
			}

			if opts.Progress != nil {
				if err := opts.Progress.Add(1); err != nil {
					slog.Warn("Failed to update progress", "error", err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID:         runID,
		AccountID:     account.ID,
		FellBack:      account.FellBack,
		Transactions:  plan.TransactionCount(),
		IncomeSources: plan.SourceCount(),
	}
	if len(plan.Months) > 0 {
		result.From = plan.Months[0].Date
		result.Through = plan.Months[len(plan.Months)-1].Date
	}

	slog.Debug("Seeded variable income",
		"account_id", result.AccountID,
		"transactions", result.Transactions,
		"income_sources", result.IncomeSources)

	return result, nil
}
