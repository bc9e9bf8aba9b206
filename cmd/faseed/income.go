package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/faseed/internal/seed"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func incomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Insert a multi-year variable income history",
		Long: `Insert monthly income transactions for five income streams (Freelance Writing,
Side Consulting, Etsy Shop, Bond Interest, Lottery Winnings) for every month of
the year range, plus one income source record per stream.

Amounts follow fixed formulas, so the same year range always produces the same
rows. Transactions go to the first Checking or Savings account.`,
		RunE: runIncome,
	}

	cmd.Flags().Int("start-year", seed.DefaultStartYear, "first year of history")
	cmd.Flags().Int("end-year", seed.DefaultEndYear, "last year of history (inclusive)")
	cmd.Flags().Bool("per-period-sources", false, "insert the Bond Interest and Lottery Winnings sources once per month")
	cmd.Flags().BoolP("quiet", "q", false, "hide the progress bar (it is only drawn on a terminal)")

	return cmd
}

func runIncome(cmd *cobra.Command, _ []string) error {
	startYear, _ := cmd.Flags().GetInt("start-year")
	endYear, _ := cmd.Flags().GetInt("end-year")
	perPeriod, _ := cmd.Flags().GetBool("per-period-sources")
	quiet, _ := cmd.Flags().GetBool("quiet")

	if err := seed.ValidateYearRange(startYear, endYear); err != nil {
		return err
	}

	store, err := openAppStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStorage(store)

	opts := seed.VariableIncomeOptions{
		StartYear:     startYear,
		EndYear:       endYear,
		AllowFallback: allowFallback(),
	}
	if perPeriod {
		opts.SourceMode = seed.SourcesPerPeriod
	}

	var bar *progressbar.ProgressBar
	if !quiet && isTerminal(cmd.ErrOrStderr()) {
		bar = newMonthProgressBar(cmd, 12*(endYear-startYear+1))
		opts.Progress = bar
	}

	slog.Info("Seeding variable income",
		"start_year", startYear,
		"end_year", endYear,
		"per_period_sources", perPeriod)

	result, err := newSeeder(store).SeedVariableIncome(cmd.Context(), opts)
	if err != nil {
		if bar != nil {
			_ = bar.Exit()
		}
		return fmt.Errorf("failed to seed variable income: %w", err)
	}

	printSummary(cmd, "Variable income inserted", result,
		fmt.Sprintf("Account: %d", result.AccountID),
		fmt.Sprintf("Transactions: %d", result.Transactions),
		fmt.Sprintf("Income sources: %d", result.IncomeSources),
		fmt.Sprintf("Months: %s", formatPeriod(result)))

	return nil
}

func newMonthProgressBar(cmd *cobra.Command, months int) *progressbar.ProgressBar {
	return progressbar.NewOptions(months,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Writing months...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(cmd.ErrOrStderr()); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
