package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Veraticus/faseed/internal/model"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		ctx     context.Context
		name    string
		wantErr bool
	}{
		{
			name:    "valid context",
			ctx:     context.Background(),
			wantErr: false,
		},
		{
			name:    "nil context",
			ctx:     nil,
			wantErr: true,
		},
		{
			name: "canceled context still valid",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateContext() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateString(t *testing.T) {
	tests := []struct {
		name    string
		str     string
		wantErr bool
	}{
		{name: "valid string", str: "assets/data.db", wantErr: false},
		{name: "empty string", str: "", wantErr: true},
		{name: "whitespace only", str: " \t\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateString(tt.str, "param")
			if (err != nil) != tt.wantErr {
				t.Errorf("validateString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrEmptyString) {
				t.Errorf("validateString() error = %v, want ErrEmptyString", err)
			}
		})
	}
}

func TestValidateTransaction(t *testing.T) {
	date := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		txn     *model.Transaction
		name    string
		wantErr bool
	}{
		{
			name:    "zero amount is allowed",
			txn:     &model.Transaction{AccountID: 1, Date: date, Amount: 0, Description: "Lottery Winnings"},
			wantErr: false,
		},
		{
			name:    "negative amount is allowed",
			txn:     &model.Transaction{AccountID: 1, Date: date, Amount: -100},
			wantErr: false,
		},
		{
			name:    "nil transaction",
			txn:     nil,
			wantErr: true,
		},
		{
			name:    "zero date",
			txn:     &model.Transaction{AccountID: 1},
			wantErr: true,
		},
		{
			name:    "zero account",
			txn:     &model.Transaction{Date: date},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTransaction(tt.txn)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateTransaction() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTransactions_ReportsIndex(t *testing.T) {
	date := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		{AccountID: 1, Date: date},
		{AccountID: 1},
	}

	err := validateTransactions(txns)
	if err == nil {
		t.Fatal("expected error for transaction without date")
	}
	if got := err.Error(); got != "transaction at index 1: invalid transaction: missing date" {
		t.Errorf("unexpected error message: %s", got)
	}
}

func TestValidateAccount(t *testing.T) {
	if err := validateAccount(nil); !errors.Is(err, ErrNilParameter) {
		t.Errorf("validateAccount(nil) = %v, want ErrNilParameter", err)
	}
	if err := validateAccount(&model.Account{Type: model.AccountTypeChecking}); !errors.Is(err, ErrInvalidAccount) {
		t.Errorf("missing name = %v, want ErrInvalidAccount", err)
	}
	if err := validateAccount(&model.Account{Name: "Family IRA", Type: model.AccountTypeRetirement}); err != nil {
		t.Errorf("valid account returned %v", err)
	}
}

func TestValidateFilter(t *testing.T) {
	early := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	late := early.AddDate(0, 0, 7)

	if err := validateFilter(model.TransactionFilter{After: early, Through: late}); err != nil {
		t.Errorf("ordered range returned %v", err)
	}
	if err := validateFilter(model.TransactionFilter{After: early}); err != nil {
		t.Errorf("open range returned %v", err)
	}
	if err := validateFilter(model.TransactionFilter{After: late, Through: early}); !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("reversed range = %v, want ErrInvalidDateRange", err)
	}
}
