package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Veraticus/faseed/internal/model"
)

// InsertTransactions inserts transactions in a single database transaction.
func (s *SQLiteStorage) InsertTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertTransactions(ctx, tx, transactions); err != nil {
		return err
	}

	return tx.Commit()
}

func insertTransactions(ctx context.Context, db execer, transactions []model.Transaction) error {
	// Rows without bill flags leave paid/auto_pay to the column defaults, which
	// keeps them insertable into schemas that predate those columns.
	plain, err := db.PrepareContext(ctx,
		`INSERT INTO transactions (accountId, date, amount, category, description) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = plain.Close() }()

	var flagged *sql.Stmt
	defer func() {
		if flagged != nil {
			_ = flagged.Close()
		}
	}()

	for i := range transactions {
		txn := &transactions[i]

		var result sql.Result
		if txn.Paid == nil && txn.AutoPay == nil {
			result, err = plain.ExecContext(ctx,
				txn.AccountID, txn.DateString(), txn.Amount, txn.Category, txn.Description)
		} else {
			if flagged == nil {
				flagged, err = db.PrepareContext(ctx,
					`INSERT INTO transactions (accountId, date, amount, category, description, paid, auto_pay) VALUES (?, ?, ?, ?, ?, ?, ?)`)
				if err != nil {
					return fmt.Errorf("failed to prepare statement: %w", err)
				}
			}
			result, err = flagged.ExecContext(ctx,
				txn.AccountID, txn.DateString(), txn.Amount, txn.Category, txn.Description,
				flagValue(txn.Paid), flagValue(txn.AutoPay))
		}
		if err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", txn.String(), err)
		}

		if id, idErr := result.LastInsertId(); idErr == nil {
			txn.ID = id
		}
	}

	return nil
}

// ListTransactions returns transactions matching filter ordered by date, then id.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	where, args := buildTransactionWhere(filter)
	query := `SELECT id, accountId, date, amount, category, description, paid, auto_pay FROM transactions` +
		where + ` ORDER BY date ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var (
			txn         model.Transaction
			accountID   sql.NullInt64
			date        string
			category    sql.NullString
			description sql.NullString
			paid        sql.NullBool
			autoPay     sql.NullBool
		)
		if err := rows.Scan(&txn.ID, &accountID, &date, &txn.Amount, &category, &description, &paid, &autoPay); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		parsed, err := model.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", txn.ID, err)
		}
		txn.Date = parsed
		txn.AccountID = accountID.Int64
		txn.Category = category.String
		txn.Description = description.String
		if paid.Valid {
			txn.Paid = model.Bool(paid.Bool)
		}
		if autoPay.Valid {
			txn.AutoPay = model.Bool(autoPay.Bool)
		}

		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

// CountTransactions counts transactions matching filter.
func (s *SQLiteStorage) CountTransactions(ctx context.Context, filter model.TransactionFilter) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateFilter(filter); err != nil {
		return 0, err
	}

	where, args := buildTransactionWhere(filter)

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func buildTransactionWhere(filter model.TransactionFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if !filter.After.IsZero() {
		conditions = append(conditions, "date > ?")
		args = append(args, filter.After.Format(model.DateLayout))
	}
	if !filter.Through.IsZero() {
		conditions = append(conditions, "date <= ?")
		args = append(args, filter.Through.Format(model.DateLayout))
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Description != "" {
		conditions = append(conditions, "description = ?")
		args = append(args, filter.Description)
	}
	if filter.AccountID != 0 {
		conditions = append(conditions, "accountId = ?")
		args = append(args, filter.AccountID)
	}
	if filter.OutflowsOnly {
		conditions = append(conditions, "amount < 0")
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func flagValue(b *bool) any {
	if b == nil {
		return nil
	}
	if *b {
		return 1
	}
	return 0
}
