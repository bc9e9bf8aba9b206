package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/faseed/internal/model"
	"github.com/Veraticus/faseed/internal/service"
)

// DiversificationAccounts returns the accounts SeedDiversification adds, each
// only when no existing account type contains its Type.
func DiversificationAccounts() []model.Account {
	return []model.Account{
		{Name: "Family IRA", Type: model.AccountTypeRetirement, Balance: 3500.00, Institution: "Vanguard"},
		{Name: "Brokerage", Type: model.AccountTypeInvestment, Balance: 2100.00, Institution: "Fidelity"},
	}
}

// SeedDiversification adds a retirement and an investment account when the
// database has none, so the app's diversification insight has data.
func (s *Seeder) SeedDiversification(ctx context.Context) (*Result, error) {
	now := s.now()

	// All lookups finish before the transaction takes the connection.
	var missing []model.Account
	for _, candidate := range DiversificationAccounts() {
		count, err := s.store.CountAccountsByTypeLike(ctx, candidate.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to check for %s accounts: %w", candidate.Type, err)
		}
		if count > 0 {
			slog.Debug("Account type already present", "type", candidate.Type, "count", count)
			continue
		}
		candidate.LastUpdated = now
		missing = append(missing, candidate)
	}

	result := &Result{}
	if len(missing) == 0 {
		return result, nil
	}

	runID, err := s.write(ctx, "diversification", func(tx service.Transaction) error {
		for i := range missing {
			if _, err := tx.InsertAccount(ctx, &missing[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.RunID = runID
	result.AddedAccounts = missing
	return result, nil
}
