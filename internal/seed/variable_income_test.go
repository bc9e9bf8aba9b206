package seed

import (
	"context"
	"math"
	"testing"

	"github.com/Veraticus/faseed/internal/model"
	"github.com/Veraticus/faseed/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amountsFor(plan *VariableIncomePlan, description string) []float64 {
	var amounts []float64
	for _, m := range plan.Months {
		for _, txn := range m.Transactions {
			if txn.Description == description {
				amounts = append(amounts, txn.Amount)
			}
		}
	}
	return amounts
}

func TestPlanVariableIncome_RowCounts(t *testing.T) {
	tests := []struct {
		name      string
		startYear int
		endYear   int
	}{
		{name: "single year", startYear: 2023, endYear: 2023},
		{name: "default range", startYear: DefaultStartYear, endYear: DefaultEndYear},
		{name: "five years", startYear: 2020, endYear: 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			years := tt.endYear - tt.startYear + 1

			plan, err := PlanVariableIncome(tt.startYear, tt.endYear, SourcesOncePerRun)
			require.NoError(t, err)

			require.Len(t, plan.Months, 12*years)
			for _, stream := range VariableIncomeStreams() {
				assert.Len(t, amountsFor(plan, stream.Source.Name), 12*years, stream.Source.Name)
			}
			assert.Equal(t, 5*12*years, plan.TransactionCount())
			assert.Equal(t, 5, plan.SourceCount())

			legacy, err := PlanVariableIncome(tt.startYear, tt.endYear, SourcesPerPeriod)
			require.NoError(t, err)
			assert.Equal(t, plan.TransactionCount(), legacy.TransactionCount())
			assert.Equal(t, 3+2*12*years, legacy.SourceCount())
		})
	}
}

func TestPlanVariableIncome_InvalidRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
	}{
		{name: "reversed", start: 2025, end: 2023},
		{name: "five digit year", start: 10000, end: 10000},
		{name: "end past max", start: 2023, end: MaxYear + 1},
		{name: "year zero", start: 0, end: 2023},
		{name: "huge span", start: math.MinInt, end: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := PlanVariableIncome(tt.start, tt.end, SourcesOncePerRun)
			assert.ErrorIs(t, err, ErrInvalidYearRange)
			assert.Nil(t, plan)
		})
	}
}

func TestPlanVariableIncome_BoundaryYears(t *testing.T) {
	plan, err := PlanVariableIncome(MaxYear, MaxYear, SourcesOncePerRun)
	require.NoError(t, err)
	require.Len(t, plan.Months, 12)
	assert.Equal(t, "9999-12-01", plan.Months[11].Date.Format(model.DateLayout))
}

func TestPlanVariableIncome_Amounts(t *testing.T) {
	plan, err := PlanVariableIncome(2023, 2025, SourcesOncePerRun)
	require.NoError(t, err)

	t.Run("freelance writing first year", func(t *testing.T) {
		got := amountsFor(plan, "Freelance Writing")[:12]
		assert.Equal(t, []float64{375, 400, 425, 350, 375, 400, 425, 350, 375, 400, 425, 350}, got)
	})

	t.Run("side consulting first year", func(t *testing.T) {
		got := amountsFor(plan, "Side Consulting")[:6]
		assert.Equal(t, []float64{290, 330, 370, 410, 450, 250}, got)
	})

	t.Run("yearly growth", func(t *testing.T) {
		writing := amountsFor(plan, "Freelance Writing")
		consulting := amountsFor(plan, "Side Consulting")
		etsy := amountsFor(plan, "Etsy Shop")

		assert.InDelta(t, 395, writing[24], 0.001)
		assert.InDelta(t, 320, consulting[24], 0.001)
		assert.InDelta(t, 180, etsy[0], 0.001)
		assert.InDelta(t, 185, etsy[12], 0.001)
		assert.InDelta(t, 190, etsy[35], 0.001)
	})

	t.Run("bond interest is constant", func(t *testing.T) {
		for _, amount := range amountsFor(plan, "Bond Interest") {
			assert.InDelta(t, 120, amount, 0)
		}
	})

	t.Run("lottery pays in June and December only", func(t *testing.T) {
		lottery := amountsFor(plan, "Lottery Winnings")
		for i, amount := range lottery {
			month := i%12 + 1
			yearOffset := i / 12
			if month%6 != 0 {
				assert.Zero(t, amount, "month %d", month)
				continue
			}
			assert.InDelta(t, float64(500+50*yearOffset), amount, 0, "month %d", month)
		}
	})
}

func TestPlanVariableIncome_RowShape(t *testing.T) {
	plan, err := PlanVariableIncome(2024, 2024, SourcesOncePerRun)
	require.NoError(t, err)

	march := plan.Months[2]
	assert.Equal(t, "2024-03-01", march.Date.Format(model.DateLayout))
	require.Len(t, march.Transactions, 5)

	bond := march.Transactions[3]
	assert.Equal(t, "Bond Interest", bond.Description)
	assert.Equal(t, model.IncomeTypeInvestment, bond.Category)
	assert.Equal(t, "2024-03-01", bond.DateString())
	assert.Zero(t, bond.AccountID)

	assert.Equal(t, model.IncomeTypeOther, march.Transactions[4].Category)
	assert.Empty(t, march.Sources)
}

type countingProgress struct {
	ticks int
}

func (p *countingProgress) Add(n int) error {
	p.ticks += n
	return nil
}

func TestSeeder_SeedVariableIncome(t *testing.T) {
	db := testutil.SetupTestDB(t)
	db.AddAccount("Visa", "Credit Card")
	checking := db.AddAccount("Everyday", model.AccountTypeChecking)

	progress := &countingProgress{}
	seeder := NewSeeder(db.Storage)

	result, err := seeder.SeedVariableIncome(context.Background(), VariableIncomeOptions{
		StartYear: 2023,
		EndYear:   2023,
		Progress:  progress,
	})
	require.NoError(t, err)

	assert.Equal(t, checking, result.AccountID)
	assert.False(t, result.FellBack)
	assert.Equal(t, 60, result.Transactions)
	assert.Equal(t, 5, result.IncomeSources)
	assert.Equal(t, "2023-01-01", result.From.Format(model.DateLayout))
	assert.Equal(t, "2023-12-01", result.Through.Format(model.DateLayout))
	assert.Equal(t, 12, progress.ticks)

	writing, err := db.Storage.ListTransactions(context.Background(), model.TransactionFilter{
		Description: "Freelance Writing",
	})
	require.NoError(t, err)
	require.Len(t, writing, 12)

	var amounts []float64
	for _, txn := range writing {
		assert.Equal(t, checking, txn.AccountID)
		assert.Equal(t, model.IncomeTypeFreelance, txn.Category)
		amounts = append(amounts, txn.Amount)
	}
	assert.Equal(t, []float64{375, 400, 425, 350, 375, 400, 425, 350, 375, 400, 425, 350}, amounts)

	assert.Equal(t, 12, db.CountTransactions(model.TransactionFilter{Category: model.IncomeTypeInvestment}))
	assert.Equal(t, 1, db.CountIncomeSources("Bond Interest"))
}

func TestSeeder_SeedVariableIncome_NotIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	db.AddAccount("Rainy Day", model.AccountTypeSavings)
	seeder := NewSeeder(db.Storage)
	opts := VariableIncomeOptions{StartYear: 2023, EndYear: 2024}

	_, err := seeder.SeedVariableIncome(context.Background(), opts)
	require.NoError(t, err)
	firstTransactions := db.CountTransactions(model.TransactionFilter{})
	firstSources := db.CountIncomeSources("")

	_, err = seeder.SeedVariableIncome(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 2*firstTransactions, db.CountTransactions(model.TransactionFilter{}))
	assert.Equal(t, 2*firstSources, db.CountIncomeSources(""))
}

func TestSeeder_SeedVariableIncome_PerPeriodSources(t *testing.T) {
	db := testutil.SetupTestDB(t)
	db.AddAccount("Everyday", model.AccountTypeChecking)

	result, err := NewSeeder(db.Storage).SeedVariableIncome(context.Background(), VariableIncomeOptions{
		StartYear:  2023,
		EndYear:    2025,
		SourceMode: SourcesPerPeriod,
	})
	require.NoError(t, err)

	assert.Equal(t, 3+2*36, result.IncomeSources)
	assert.Equal(t, 36, db.CountIncomeSources("Bond Interest"))
	assert.Equal(t, 36, db.CountIncomeSources("Lottery Winnings"))
	assert.Equal(t, 1, db.CountIncomeSources("Etsy Shop"))
}

func TestSeeder_SeedVariableIncome_NoDepositAccount(t *testing.T) {
	t.Run("fails without fallback", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		db.AddAccount("Family IRA", model.AccountTypeRetirement)

		_, err := NewSeeder(db.Storage).SeedVariableIncome(context.Background(), VariableIncomeOptions{
			StartYear: 2023,
			EndYear:   2023,
		})
		assert.ErrorIs(t, err, ErrNoDepositAccount)
		assert.Zero(t, db.CountTransactions(model.TransactionFilter{}))
		assert.Zero(t, db.CountIncomeSources(""))
	})

	t.Run("falls back to default account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		result, err := NewSeeder(db.Storage).SeedVariableIncome(context.Background(), VariableIncomeOptions{
			StartYear:     2023,
			EndYear:       2023,
			AllowFallback: true,
		})
		require.NoError(t, err)
		assert.Equal(t, DefaultAccountID, result.AccountID)
		assert.True(t, result.FellBack)
		assert.Equal(t, 60, db.CountTransactions(model.TransactionFilter{AccountID: DefaultAccountID}))
	})
}

func TestSeeder_SeedVariableIncome_InvalidRangeWritesNothing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	db.AddAccount("Everyday", model.AccountTypeChecking)

	_, err := NewSeeder(db.Storage).SeedVariableIncome(context.Background(), VariableIncomeOptions{
		StartYear: 2024,
		EndYear:   2023,
	})
	assert.ErrorIs(t, err, ErrInvalidYearRange)
	assert.Zero(t, db.CountTransactions(model.TransactionFilter{}))
}

func TestSeeder_SeedVariableIncome_Canceled(t *testing.T) {
	db := testutil.SetupTestDB(t)
	db.AddAccount("Everyday", model.AccountTypeChecking)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSeeder(db.Storage).SeedVariableIncome(ctx, VariableIncomeOptions{StartYear: 2023, EndYear: 2023})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, db.CountTransactions(model.TransactionFilter{}))
}
