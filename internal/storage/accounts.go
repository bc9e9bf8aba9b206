package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/faseed/internal/common"
	"github.com/Veraticus/faseed/internal/model"
)

const accountColumns = `id, name, type, balance, institution, lastUpdated`

// FindFirstAccountByTypes returns the lowest-id account whose type is one of types.
// It returns common.ErrNotFound when no account matches.
func (s *SQLiteStorage) FindFirstAccountByTypes(ctx context.Context, types ...string) (*model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("%w: types", ErrEmptySlice)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(types)), ", ")
	args := make([]any, len(types))
	for i, t := range types {
		args[i] = t
	}

	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE type IN (%s) ORDER BY id LIMIT 1`, accountColumns, placeholders)
	account, err := scanAccount(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account with type %s: %w", strings.Join(types, " or "), common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	return account, nil
}

// CountAccountsByTypeLike counts accounts whose type contains fragment.
func (s *SQLiteStorage) CountAccountsByTypeLike(ctx context.Context, fragment string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(fragment, "fragment"); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM accounts WHERE type LIKE ?`, "%"+fragment+"%").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

// GetAccounts returns every account ordered by id.
func (s *SQLiteStorage) GetAccounts(ctx context.Context) ([]model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var accounts []model.Account
	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan account: %w", scanErr)
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}

// InsertAccount inserts an account and returns its new id.
func (s *SQLiteStorage) InsertAccount(ctx context.Context, account *model.Account) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateAccount(account); err != nil {
		return 0, err
	}
	return insertAccount(ctx, s.db, account)
}

func insertAccount(ctx context.Context, db execer, account *model.Account) (int64, error) {
	var lastUpdated any
	if !account.LastUpdated.IsZero() {
		lastUpdated = account.LastUpdated.Format(model.TimestampLayout)
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO accounts (name, type, balance, institution, lastUpdated) VALUES (?, ?, ?, ?, ?)`,
		account.Name, account.Type, account.Balance, nullString(account.Institution), lastUpdated)
	if err != nil {
		return 0, fmt.Errorf("failed to insert account %s: %w", account.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get account id: %w", err)
	}
	account.ID = id
	return id, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	var (
		account     model.Account
		institution sql.NullString
		lastUpdated sql.NullString
	)
	if err := row.Scan(&account.ID, &account.Name, &account.Type, &account.Balance, &institution, &lastUpdated); err != nil {
		return nil, err
	}
	account.Institution = institution.String
	if lastUpdated.Valid && lastUpdated.String != "" {
		// Unparseable timestamps written by other tools are left zero.
		if ts, err := time.Parse(model.TimestampLayout, lastUpdated.String); err == nil {
			account.LastUpdated = ts
		}
	}
	return &account, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
