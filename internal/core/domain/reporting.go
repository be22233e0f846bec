package domain

import "github.com/shopspring/decimal"

// CardTotals is the aggregated spend of one card as of a given month.
type CardTotals struct {
	CardID string `json:"cardID"`
	// TotalExposure is what is still owed: full value of fixed items plus the
	// remaining installments of financed ones.
	TotalExposure decimal.Decimal `json:"totalExposure"`
	// TotalThisMonth is what falls due in the reference month.
	TotalThisMonth decimal.Decimal `json:"totalThisMonth"`
}

// InstallmentProgress describes how far along a financed purchase is.
type InstallmentProgress struct {
	Paid            int             `json:"paid"`
	Remaining       int             `json:"remaining"`
	Total           int             `json:"total"`
	ProgressPercent decimal.Decimal `json:"progressPercent"`
	First           YearMonth       `json:"first"`
	Final           YearMonth       `json:"final"`
}

// CardItem is a line item as shown inside a card group.
type CardItem struct {
	Item     LineItem             `json:"item"`
	Exposure decimal.Decimal      `json:"exposure"`
	Progress *InstallmentProgress `json:"progress,omitempty"` // nil for fixed items
}

// CardSummary is one per-card group of the card report.
type CardSummary struct {
	CardTotals
	Card  *Card `json:"card,omitempty"` // nil when the referenced card no longer exists
	Found bool  `json:"found"`
	// PercentUsed is clamped to [0,100]; RawPercentUsed is the unclamped ratio.
	PercentUsed    decimal.Decimal `json:"percentUsed"`
	RawPercentUsed decimal.Decimal `json:"rawPercentUsed"`
	OverLimit      bool            `json:"overLimit"`
	Items          []CardItem      `json:"items"`
}

// MonthBucket groups installment purchases by the month of their last installment.
type MonthBucket struct {
	YearMonth
	Total decimal.Decimal `json:"total"`
	Items []LineItem      `json:"items"`
}

// MonthTotals is one month row of the yearly income/expense chart.
type MonthTotals struct {
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// ProjectionRow is the installment load of one future month.
type ProjectionRow struct {
	YearMonth
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

// Overview is the dashboard summary.
type Overview struct {
	AsOf                  YearMonth       `json:"asOf"`
	TotalIncome           decimal.Decimal `json:"totalIncome"`
	TotalExpense          decimal.Decimal `json:"totalExpense"`
	Surplus               decimal.Decimal `json:"surplus"`
	Balance               decimal.Decimal `json:"balance"`
	NextBalance           decimal.Decimal `json:"nextBalance"`
	TotalExposure         decimal.Decimal `json:"totalExposure"`
	InstallmentsThisMonth decimal.Decimal `json:"installmentsThisMonth"`
	ItemCount             int             `json:"itemCount"`
}
