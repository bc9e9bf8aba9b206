package main

import (
	"fmt"

	"github.com/Veraticus/faseed/internal/cli"
	"github.com/Veraticus/faseed/internal/report"
	"github.com/spf13/cobra"
)

func upcomingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Show bills due in the coming week",
		Long: `List outflows (negative transactions) dated after today and no more than
--days days from today, earliest first.`,
		RunE: runUpcoming,
	}

	cmd.Flags().Int("days", report.DefaultWindowDays, "how many days ahead to look")
	cmd.Flags().Bool("json", false, "print JSON instead of a table")

	return cmd
}

func runUpcoming(cmd *cobra.Command, _ []string) error {
	days, _ := cmd.Flags().GetInt("days")
	days = report.WindowDays(days)
	asJSON, _ := cmd.Flags().GetBool("json")

	store, err := openAppStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStorage(store)

	bills, err := report.UpcomingBills(cmd.Context(), store, today(), days)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return report.WriteJSON(out, bills)
	}

	fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("Bills due in the next %d days", days)))
	return report.WriteTable(out, bills)
}
