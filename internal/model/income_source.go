package model

// Income source types.
const (
	IncomeTypeFreelance  = "freelance"
	IncomeTypeInvestment = "investment"
	IncomeTypeOther      = "other"
)

// FrequencyMonthly is the only frequency the seeds produce.
const FrequencyMonthly = "monthly"

// IncomeSource describes a recurring or occasional income stream. It is not
// linked to transactions by reference; the convention is that a transaction's
// category matches Type and its description matches Name.
type IncomeSource struct {
	Name           string
	Type           string
	Earner         string
	Frequency      string
	Notes          string
	ID             int64
	ExpectedAmount float64
}
