package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/faseed/internal/model"
)

// InsertIncomeSources inserts income sources in a single database transaction.
func (s *SQLiteStorage) InsertIncomeSources(ctx context.Context, sources []model.IncomeSource) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateIncomeSources(sources); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertIncomeSources(ctx, tx, sources); err != nil {
		return err
	}

	return tx.Commit()
}

func insertIncomeSources(ctx context.Context, db execer, sources []model.IncomeSource) error {
	stmt, err := db.PrepareContext(ctx,
		`INSERT INTO income_sources (name, type, earner, frequency, expected_amount, notes) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range sources {
		src := &sources[i]
		result, err := stmt.ExecContext(ctx,
			src.Name, src.Type, nullString(src.Earner), src.Frequency, src.ExpectedAmount, nullString(src.Notes))
		if err != nil {
			return fmt.Errorf("failed to insert income source %s: %w", src.Name, err)
		}
		if id, idErr := result.LastInsertId(); idErr == nil {
			src.ID = id
		}
	}
	return nil
}

// CountIncomeSources counts income sources with the given name, or all of them when name is empty.
func (s *SQLiteStorage) CountIncomeSources(ctx context.Context, name string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	query := `SELECT COUNT(*) FROM income_sources`
	var args []any
	if name != "" {
		query += ` WHERE name = ?`
		args = append(args, name)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count income sources: %w", err)
	}
	return count, nil
}
