package model

import (
	"fmt"
	"time"
)

// DateLayout is how the application stores calendar dates.
const DateLayout = "2006-01-02"

// Transaction is a single dated monetary movement tied to an account.
// Negative amounts are outflows (bills); positive amounts are income.
type Transaction struct {
	Date        time.Time
	Paid        *bool // nil leaves the column at its default
	AutoPay     *bool
	Category    string
	Description string
	ID          int64
	AccountID   int64
	Amount      float64
}

// DateString returns the date in the application's storage format.
func (t *Transaction) DateString() string {
	return t.Date.Format(DateLayout)
}

// IsOutflow reports whether the transaction moves money out of the account.
func (t *Transaction) IsOutflow() bool {
	return t.Amount < 0
}

// String gives a short human-readable rendering used in log output.
func (t *Transaction) String() string {
	return fmt.Sprintf("%s %s %.2f (%s)", t.DateString(), t.Description, t.Amount, t.Category)
}

// TransactionFilter narrows transaction queries. Zero values match everything.
type TransactionFilter struct {
	After        time.Time // exclusive
	Through      time.Time // inclusive
	Category     string
	Description  string
	AccountID    int64
	OutflowsOnly bool
}

// ParseDate parses a stored date. Values carrying a time suffix are truncated to the day.
func ParseDate(s string) (time.Time, error) {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// Bool returns a pointer to b, for the optional flag columns.
func Bool(b bool) *bool {
	return &b
}
