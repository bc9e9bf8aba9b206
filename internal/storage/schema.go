package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/faseed/internal/common"
)

// ExpectedSchemaVersion is the schema version EnsureSchema brings a database to.
const ExpectedSchemaVersion = 2

// ApplicationTables are the tables the finance application creates.
var ApplicationTables = []string{"accounts", "transactions", "income_sources"}

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

// The finance application owns these tables. The statements mirror the
// columns it creates so tests and fresh development databases line up with a
// real user database; every step tolerates tables that already exist.
var migrations = []Migration{
	{
		Version:     1,
		Description: "Core application tables",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS accounts (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					type TEXT NOT NULL,
					balance REAL NOT NULL DEFAULT 0,
					institution TEXT,
					lastUpdated TEXT
				)`,
				`CREATE TABLE IF NOT EXISTS transactions (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					accountId INTEGER,
					date TEXT NOT NULL,
					amount REAL NOT NULL,
					category TEXT,
					description TEXT
				)`,
				`CREATE TABLE IF NOT EXISTS income_sources (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					type TEXT NOT NULL,
					earner TEXT,
					frequency TEXT NOT NULL,
					expected_amount REAL NOT NULL,
					notes TEXT
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Bill tracking columns on transactions",
		Up: func(tx *sql.Tx) error {
			columns := []struct {
				name, definition string
			}{
				{"paid", "INTEGER DEFAULT 0"},
				{"auto_pay", "INTEGER DEFAULT 0"},
				{"recurrence", "TEXT"},
			}

			for _, col := range columns {
				exists, err := columnExists(tx, "transactions", col.name)
				if err != nil {
					return err
				}
				if exists {
					continue
				}
				query := fmt.Sprintf("ALTER TABLE transactions ADD COLUMN %s %s", col.name, col.definition)
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to add column %s: %w", col.name, err)
				}
			}
			return nil
		},
	},
}

// EnsureSchema creates the application tables when they are missing.
// Seed commands never call this against a user database; the application owns
// its schema.
func (s *SQLiteStorage) EnsureSchema(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Debug("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion < ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}

// HasTable reports whether the named table exists.
func (s *SQLiteStorage) HasTable(ctx context.Context, name string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to look up table %s: %w", name, err)
	}
	return count > 0, nil
}

// RequireTables returns common.ErrSchemaMissing, wrapped in a user error, when
// any of tables is absent.
func (s *SQLiteStorage) RequireTables(ctx context.Context, tables ...string) error {
	var missing []string
	for _, table := range tables {
		ok, err := s.HasTable(ctx, table)
		if err != nil {
			return err
		}
		if !ok {
			missing = append(missing, table)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return common.NewUserError(
		fmt.Sprintf("database at %s has no %s table; run the app once to initialize the database",
			s.dbPath, strings.Join(missing, ", ")),
		common.ErrSchemaMissing)
}

func columnExists(tx *sql.Tx, table, column string) (bool, error) {
	rows, err := tx.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return false, fmt.Errorf("failed to scan column info: %w", err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
