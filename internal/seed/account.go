package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/faseed/internal/common"
	"github.com/Veraticus/faseed/internal/model"
)

// DefaultAccountID is used when fallback is allowed and no deposit account exists.
// Nothing guarantees an account with this id exists.
const DefaultAccountID int64 = 1

// ErrNoDepositAccount is returned when no Checking or Savings account exists
// and fallback to DefaultAccountID is not allowed.
var ErrNoDepositAccount = errors.New("no checking or savings account")

// AccountResolution is the account a seed deposits into.
type AccountResolution struct {
	ID       int64
	FellBack bool
}

// ResolveDepositAccount finds the first Checking or Savings account by id.
func (s *Seeder) ResolveDepositAccount(ctx context.Context, allowFallback bool) (AccountResolution, error) {
	account, err := s.store.FindFirstAccountByTypes(ctx, model.AccountTypeChecking, model.AccountTypeSavings)
	if err == nil {
		return AccountResolution{ID: account.ID}, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return AccountResolution{}, fmt.Errorf("failed to look up deposit account: %w", err)
	}

	if !allowFallback {
		return AccountResolution{}, common.NewUserError(
			"add a Checking or Savings account in the app first, or pass --fallback-account",
			ErrNoDepositAccount)
	}

	slog.Warn("No checking or savings account found, using default account id",
		"account_id", DefaultAccountID)
	return AccountResolution{ID: DefaultAccountID, FellBack: true}, nil
}
