// Package report queries and renders seeded data for inspection.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Veraticus/faseed/internal/cli"
	"github.com/Veraticus/faseed/internal/model"
)

// DefaultWindowDays is how far ahead UpcomingBills looks by default.
const DefaultWindowDays = 7

// TransactionLister is the storage surface the report reads from.
type TransactionLister interface {
	ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error)
}

// WindowDays returns days, or DefaultWindowDays when days is not positive.
func WindowDays(days int) int {
	if days <= 0 {
		return DefaultWindowDays
	}
	return days
}

// UpcomingBills returns outflows dated after today and no later than
// WindowDays(days) from today, earliest first.
func UpcomingBills(ctx context.Context, store TransactionLister, today time.Time, days int) ([]model.Transaction, error) {
	days = WindowDays(days)

	bills, err := store.ListTransactions(ctx, model.TransactionFilter{
		After:        today,
		Through:      today.AddDate(0, 0, days),
		OutflowsOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming bills: %w", err)
	}
	return bills, nil
}

// WriteTable renders bills as an aligned table.
func WriteTable(w io.Writer, bills []model.Transaction) error {
	if len(bills) == 0 {
		_, err := fmt.Fprintln(w, cli.FormatInfo("No bills due in the selected window."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("ID"),
		cli.TableHeaderStyle.Render("Date"),
		cli.TableHeaderStyle.Render("Amount"),
		cli.TableHeaderStyle.Render("Category"),
		cli.TableHeaderStyle.Render("Description")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("─", 4),
		strings.Repeat("─", 10),
		strings.Repeat("─", 10),
		strings.Repeat("─", 12),
		strings.Repeat("─", 20)); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	for _, bill := range bills {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%.2f\t%s\t%s\n",
			bill.ID,
			bill.DateString(),
			bill.Amount,
			bill.Category,
			bill.Description); err != nil {
			return fmt.Errorf("failed to write bill row: %w", err)
		}
	}

	return tw.Flush()
}

type billJSON struct {
	Paid        *bool   `json:"paid,omitempty"`
	AutoPay     *bool   `json:"auto_pay,omitempty"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ID          int64   `json:"id"`
	AccountID   int64   `json:"account_id"`
	Amount      float64 `json:"amount"`
}

// WriteJSON renders bills as a JSON array.
func WriteJSON(w io.Writer, bills []model.Transaction) error {
	out := make([]billJSON, 0, len(bills))
	for _, bill := range bills {
		out = append(out, billJSON{
			ID:          bill.ID,
			AccountID:   bill.AccountID,
			Date:        bill.DateString(),
			Amount:      bill.Amount,
			Category:    bill.Category,
			Description: bill.Description,
			Paid:        bill.Paid,
			AutoPay:     bill.AutoPay,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode bills: %w", err)
	}
	return nil
}
