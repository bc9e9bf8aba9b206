package main

import (
	"fmt"

	"github.com/Veraticus/faseed/internal/seed"
	"github.com/spf13/cobra"
)

func paycheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paycheck",
		Short: "Insert an upcoming biweekly paycheck",
		Long: fmt.Sprintf(`Insert one %q deposit of $%.2f dated the next Friday after today
(a week out when today is Friday) into the first Checking or Savings account.`,
			seed.PaycheckDescription, seed.PaycheckAmount),
		RunE: runPaycheck,
	}
}

func runPaycheck(cmd *cobra.Command, _ []string) error {
	store, err := openAppStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStorage(store)

	result, err := newSeeder(store).SeedPaycheck(cmd.Context(), seed.PaycheckOptions{
		AllowFallback: allowFallback(),
	})
	if err != nil {
		return fmt.Errorf("failed to seed paycheck: %w", err)
	}

	printSummary(cmd, "Paycheck inserted", result,
		fmt.Sprintf("Account: %d", result.AccountID),
		fmt.Sprintf("Date: %s", formatPeriod(result)),
		fmt.Sprintf("Amount: %.2f", seed.PaycheckAmount))
	return nil
}
