// Package storage reads and writes the finance application's SQLite database.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/faseed/internal/model"
)

// Validation errors. These only guard against rows the seeds could not have
// meant to write; the business meaning of values is not checked.
var (
	ErrNilContext          = errors.New("context cannot be nil")
	ErrEmptyString         = errors.New("string parameter cannot be empty")
	ErrNilParameter        = errors.New("parameter cannot be nil")
	ErrEmptySlice          = errors.New("slice cannot be empty")
	ErrInvalidDateRange    = errors.New("start date must be before end date")
	ErrInvalidTransaction  = errors.New("invalid transaction")
	ErrInvalidAccount      = errors.New("invalid account")
	ErrInvalidIncomeSource = errors.New("invalid income source")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateTransactions(transactions []model.Transaction) error {
	if transactions == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	if len(transactions) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}

	for i := range transactions {
		if err := validateTransaction(&transactions[i]); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}
	return nil
}

func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if txn.AccountID <= 0 {
		return fmt.Errorf("%w: missing account ID", ErrInvalidTransaction)
	}
	return nil
}

func validateAccount(account *model.Account) error {
	if account == nil {
		return fmt.Errorf("%w: account", ErrNilParameter)
	}
	if strings.TrimSpace(account.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidAccount)
	}
	if strings.TrimSpace(account.Type) == "" {
		return fmt.Errorf("%w: missing type", ErrInvalidAccount)
	}
	return nil
}

func validateIncomeSources(sources []model.IncomeSource) error {
	if sources == nil {
		return fmt.Errorf("%w: income sources", ErrNilParameter)
	}
	if len(sources) == 0 {
		return fmt.Errorf("%w: income sources", ErrEmptySlice)
	}

	for i, src := range sources {
		if strings.TrimSpace(src.Name) == "" {
			return fmt.Errorf("income source at index %d: %w: missing name", i, ErrInvalidIncomeSource)
		}
		if strings.TrimSpace(src.Type) == "" {
			return fmt.Errorf("income source at index %d: %w: missing type", i, ErrInvalidIncomeSource)
		}
		if strings.TrimSpace(src.Frequency) == "" {
			return fmt.Errorf("income source at index %d: %w: missing frequency", i, ErrInvalidIncomeSource)
		}
	}
	return nil
}

func validateFilter(filter model.TransactionFilter) error {
	if !filter.After.IsZero() && !filter.Through.IsZero() && filter.Through.Before(filter.After) {
		return fmt.Errorf("%w: through %s is before %s", ErrInvalidDateRange,
			filter.Through.Format(model.DateLayout), filter.After.Format(model.DateLayout))
	}
	return nil
}
