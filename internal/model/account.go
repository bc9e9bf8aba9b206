package model

import "time"

// Account types used by the finance application. The column is free text;
// these are the values the seeds read and write.
const (
	AccountTypeChecking   = "Checking"
	AccountTypeSavings    = "Savings"
	AccountTypeRetirement = "Retirement"
	AccountTypeInvestment = "Investment"
)

// TimestampLayout is the format of accounts.lastUpdated.
const TimestampLayout = "2006-01-02 15:04:05"

// Account is a named holder of balance within the finance application.
type Account struct {
	LastUpdated time.Time
	Name        string
	Type        string
	Institution string
	ID          int64
	Balance     float64
}

// IsDeposit reports whether paychecks and income can be deposited into the account.
func (a *Account) IsDeposit() bool {
	return a.Type == AccountTypeChecking || a.Type == AccountTypeSavings
}
