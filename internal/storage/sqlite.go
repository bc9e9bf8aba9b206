package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Veraticus/faseed/internal/common"
	"github.com/Veraticus/faseed/internal/model"
	"github.com/Veraticus/faseed/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const memoryPath = ":memory:"

// Options controls how the database is opened.
type Options struct {
	// RequireExisting refuses to open a database file that does not exist yet.
	// The seeds populate a database the finance application creates, so they
	// set this; only schema initialisation leaves it off.
	RequireExisting bool
}

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage opens the SQLite database at dbPath.
func NewSQLiteStorage(dbPath string, opts Options) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if dbPath != memoryPath {
		if opts.RequireExisting {
			if _, err := os.Stat(dbPath); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return nil, common.NewUserError(
						fmt.Sprintf("user database not found at %s; run the app once to initialize the database", dbPath),
						common.ErrDatabaseNotFound)
				}
				return nil, fmt.Errorf("failed to stat database: %w", err)
			}
		} else {
			if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection serves both the lookups and the inserts of a run.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Path returns the database file the storage was opened on.
func (s *SQLiteStorage) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// BeginTx starts a new database transaction.
func (s *SQLiteStorage) BeginTx(ctx context.Context) (service.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	return &sqliteTransaction{tx: tx}, nil
}

// sqliteTransaction wraps sql.Tx to implement service.Transaction.
type sqliteTransaction struct {
	tx *sql.Tx
}

func (t *sqliteTransaction) Commit() error {
	return t.tx.Commit()
}

func (t *sqliteTransaction) Rollback() error {
	return t.tx.Rollback()
}

func (t *sqliteTransaction) InsertAccount(ctx context.Context, account *model.Account) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateAccount(account); err != nil {
		return 0, err
	}
	return insertAccount(ctx, t.tx, account)
}

func (t *sqliteTransaction) InsertTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}
	return insertTransactions(ctx, t.tx, transactions)
}

func (t *sqliteTransaction) InsertIncomeSources(ctx context.Context, sources []model.IncomeSource) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateIncomeSources(sources); err != nil {
		return err
	}
	return insertIncomeSources(ctx, t.tx, sources)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}
