// Package testutil provides test helpers for code that reads and writes the
// finance application's database.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/faseed/internal/model"
	"github.com/Veraticus/faseed/internal/storage"
)

// TestDB is a throwaway database with the application schema.
type TestDB struct {
	Storage *storage.SQLiteStorage
	Path    string
	t       *testing.T
}

// SetupTestDB creates a database file in a temp directory and applies the
// application schema. It is closed automatically when the test ends.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "data.db")
	store, err := storage.NewSQLiteStorage(dbPath, storage.Options{})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.EnsureSchema(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage: store,
		Path:    dbPath,
		t:       t,
	}
}

// OpenTestDB opens an existing database file, such as one created by a
// command under test. It is closed automatically when the test ends.
func OpenTestDB(t *testing.T, dbPath string) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(dbPath, storage.Options{RequireExisting: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{
		Storage: store,
		Path:    dbPath,
		t:       t,
	}
}

// AddAccount inserts an account and returns its id, failing the test on error.
func (db *TestDB) AddAccount(name, accountType string) int64 {
	db.t.Helper()

	id, err := db.Storage.InsertAccount(context.Background(), &model.Account{
		Name:    name,
		Type:    accountType,
		Balance: 1000,
	})
	if err != nil {
		db.t.Fatalf("failed to add account %q: %v", name, err)
	}
	return id
}

// CountTransactions counts transactions matching filter, failing the test on error.
func (db *TestDB) CountTransactions(filter model.TransactionFilter) int {
	db.t.Helper()

	count, err := db.Storage.CountTransactions(context.Background(), filter)
	if err != nil {
		db.t.Fatalf("failed to count transactions: %v", err)
	}
	return count
}

// CountIncomeSources counts income sources named name (all when empty).
func (db *TestDB) CountIncomeSources(name string) int {
	db.t.Helper()

	count, err := db.Storage.CountIncomeSources(context.Background(), name)
	if err != nil {
		db.t.Fatalf("failed to count income sources: %v", err)
	}
	return count
}

// FixedClock returns a clock that always reports at.
func FixedClock(at time.Time) func() time.Time {
	return func() time.Time {
		return at
	}
}
