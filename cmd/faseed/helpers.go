package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/faseed/internal/cli"
	"github.com/Veraticus/faseed/internal/common"
	"github.com/Veraticus/faseed/internal/config"
	"github.com/Veraticus/faseed/internal/seed"
	"github.com/Veraticus/faseed/internal/storage"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// clock is replaced in tests.
var clock seed.Clock = time.Now

func databasePath() string {
	return config.ResolveDatabasePath(viper.GetString("database.path"), viper.GetBool("database.packaged"))
}

// openStorage opens the configured database. Seeds pass requireExisting so a
// missing database is reported instead of silently created.
func openStorage(requireExisting bool) (*storage.SQLiteStorage, error) {
	dbPath := databasePath()
	slog.Debug("Opening database", "path", dbPath, "require_existing", requireExisting)

	store, err := storage.NewSQLiteStorage(dbPath, storage.Options{RequireExisting: requireExisting})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// openAppStorage opens the application's database for the seeds and reports,
// which need its tables in place.
func openAppStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := openStorage(true)
	if err != nil {
		return nil, err
	}
	if err := store.RequireTables(ctx, storage.ApplicationTables...); err != nil {
		closeStorage(store)
		return nil, err
	}
	return store, nil
}

func closeStorage(store *storage.SQLiteStorage) {
	if err := store.Close(); err != nil {
		common.LogError(err, "Failed to close storage", common.Fields{"path": store.Path()})
	}
}

func newSeeder(store *storage.SQLiteStorage) *seed.Seeder {
	return seed.NewSeeder(store, seed.WithClock(clock))
}

func allowFallback() bool {
	return viper.GetBool("seed.allow_fallback")
}

// today is the local calendar date, normalised the way the seeds store dates.
func today() time.Time {
	now := clock()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// isTerminal reports whether w is a terminal; progress bars are drawn only there.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func printSummary(cmd *cobra.Command, title string, result *seed.Result, lines ...string) {
	out := cmd.OutOrStdout()

	if result != nil && result.FellBack {
		fmt.Fprintln(out, cli.FormatWarning(fmt.Sprintf(
			"No Checking or Savings account found; rows reference account %d, which may not exist.", result.AccountID)))
	}

	if result != nil && result.RunID != "" {
		lines = append(lines, fmt.Sprintf("Run: %s", result.RunID))
	}
	lines = append(lines, fmt.Sprintf("Database: %s", databasePath()))
	fmt.Fprintln(out, cli.RenderBox(cli.SuccessIcon+" "+title, strings.Join(lines, "\n")))
}

func formatPeriod(result *seed.Result) string {
	from := result.From.Format("2006-01-02")
	through := result.Through.Format("2006-01-02")
	if from == through {
		return from
	}
	return from + " → " + through
}
