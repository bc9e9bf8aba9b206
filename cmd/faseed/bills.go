package main

import (
	"fmt"

	"github.com/Veraticus/faseed/internal/seed"
	"github.com/spf13/cobra"
)

func billsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "Insert a week of upcoming test bills",
		Long: `Insert one unpaid test bill per day starting tomorrow. The bill due in N days
costs $100 × N, and every second bill is on auto-pay.`,
		RunE: runBills,
	}

	cmd.Flags().Int64("account", 0, "account id paying the bills (default: first Checking or Savings account)")
	cmd.Flags().Int("days", seed.DefaultBillDays, "number of days of bills")

	return cmd
}

func runBills(cmd *cobra.Command, _ []string) error {
	accountID, _ := cmd.Flags().GetInt64("account")
	days, _ := cmd.Flags().GetInt("days")

	store, err := openAppStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStorage(store)

	result, err := newSeeder(store).SeedTestBills(cmd.Context(), seed.BillsOptions{
		AccountID:     accountID,
		Days:          days,
		AllowFallback: allowFallback(),
	})
	if err != nil {
		return fmt.Errorf("failed to seed test bills: %w", err)
	}

	printSummary(cmd, "Test bills inserted", result,
		fmt.Sprintf("Account: %d", result.AccountID),
		fmt.Sprintf("Bills: %d", result.Transactions),
		fmt.Sprintf("Due: %s", formatPeriod(result)))
	return nil
}
