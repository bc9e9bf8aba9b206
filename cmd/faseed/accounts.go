package main

import (
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/faseed/internal/cli"
	"github.com/spf13/cobra"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Inspect and seed accounts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "diversify",
		Short: "Add retirement and investment accounts when missing",
		Long: `Add a "Family IRA" retirement account and a "Brokerage" investment account,
each only when no account of that type exists yet. Unlike the other seeds this
one is safe to run repeatedly.`,
		RunE: runAccountsDiversify,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE:  runAccountsList,
	})

	return cmd
}

func runAccountsDiversify(cmd *cobra.Command, _ []string) error {
	store, err := openAppStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStorage(store)

	result, err := newSeeder(store).SeedDiversification(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to add diversification accounts: %w", err)
	}

	if len(result.AddedAccounts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Retirement and investment accounts already exist. Nothing to add."))
		return nil
	}

	lines := make([]string, 0, len(result.AddedAccounts))
	for _, a := range result.AddedAccounts {
		lines = append(lines, fmt.Sprintf("%s (%s, %s): %.2f", a.Name, a.Type, a.Institution, a.Balance))
	}
	printSummary(cmd, "Accounts added", result, lines...)
	return nil
}

func runAccountsList(cmd *cobra.Command, _ []string) error {
	store, err := openAppStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStorage(store)

	accounts, err := store.GetAccounts(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(accounts) == 0 {
		fmt.Fprintln(out, cli.FormatInfo("No accounts found. Add one in the app or run 'faseed accounts diversify'."))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil {
			slog.Error("failed to flush table writer", "error", flushErr)
		}
	}()

	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("ID"),
		cli.TableHeaderStyle.Render("Name"),
		cli.TableHeaderStyle.Render("Type"),
		cli.TableHeaderStyle.Render("Institution"),
		cli.TableHeaderStyle.Render("Balance"),
		cli.TableHeaderStyle.Render("Deposit")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("─", 4),
		strings.Repeat("─", 16),
		strings.Repeat("─", 12),
		strings.Repeat("─", 12),
		strings.Repeat("─", 10),
		strings.Repeat("─", 7)); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	for i := range accounts {
		a := &accounts[i]
		deposit := ""
		if a.IsDeposit() {
			deposit = cli.SuccessIcon
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%s\n", a.ID, a.Name, a.Type, a.Institution, a.Balance, deposit); err != nil {
			return fmt.Errorf("failed to write account row: %w", err)
		}
	}
	return nil
}
