// Package service defines the interfaces shared between the seeders and storage.
package service

import (
	"context"

	"github.com/Veraticus/faseed/internal/model"
)

// Writer inserts rows into the application's tables.
type Writer interface {
	InsertAccount(ctx context.Context, account *model.Account) (int64, error)
	InsertTransactions(ctx context.Context, transactions []model.Transaction) error
	InsertIncomeSources(ctx context.Context, sources []model.IncomeSource) error
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	Writer

	// Account operations
	FindFirstAccountByTypes(ctx context.Context, types ...string) (*model.Account, error)
	CountAccountsByTypeLike(ctx context.Context, fragment string) (int, error)
	GetAccounts(ctx context.Context) ([]model.Account, error)

	// Transaction operations
	ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error)
	CountTransactions(ctx context.Context, filter model.TransactionFilter) (int, error)

	// Income source operations
	CountIncomeSources(ctx context.Context, name string) (int, error)

	// Database management
	EnsureSchema(ctx context.Context) error
	BeginTx(ctx context.Context) (Transaction, error)
	Close() error
}

// Transaction represents a database transaction. Seeds write through it and
// commit once, so a failed run leaves no partial rows behind.
type Transaction interface {
	Writer
	Commit() error
	Rollback() error
}
