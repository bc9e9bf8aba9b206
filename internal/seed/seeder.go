// Package seed writes test and sample data into the finance application's
// database. Every seed runs its inserts in one transaction; none of them are
// idempotent except SeedDiversification, which checks before inserting.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/faseed/internal/model"
	"github.com/Veraticus/faseed/internal/service"
	"github.com/google/uuid"
)

// Clock returns the current time.
type Clock func() time.Time

// Progress receives one tick per completed unit of work.
// *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(n int) error
}

// Seeder populates the application's tables.
type Seeder struct {
	store service.Storage
	now   Clock
}

// Option configures a Seeder.
type Option func(*Seeder)

// WithClock overrides the clock used for relative dates and timestamps.
func WithClock(clock Clock) Option {
	return func(s *Seeder) {
		s.now = clock
	}
}

// NewSeeder creates a seeder writing to store.
func NewSeeder(store service.Storage, opts ...Option) *Seeder {
	s := &Seeder{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result summarises one seed run.
type Result struct {
	// RunID identifies the committed run in the logs.
	RunID         string
	From          time.Time
	Through       time.Time
	AddedAccounts []model.Account
	AccountID     int64
	Transactions  int
	IncomeSources int
	FellBack      bool
}

// today returns the local calendar date at midnight UTC so it formats as the
// date the user sees.
func (s *Seeder) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// write runs fn in a storage transaction and commits when it succeeds. It
// returns the id the run was logged under.
func (s *Seeder) write(ctx context.Context, name string, fn func(tx service.Transaction) error) (string, error) {
	runID := uuid.NewString()
	logger := slog.With("seed", name, "run_id", runID)

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return "", err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		logger.Debug("Rolled back seed run", "error", err)
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit seed data: %w", err)
	}

	logger.Info("Committed seed run")
	return runID, nil
}
