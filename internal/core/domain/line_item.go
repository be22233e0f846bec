package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Nature tells whether a line item brings money in or takes it out.
type Nature string

const (
	Income  Nature = "INCOME"
	Expense Nature = "EXPENSE"
)

// ItemKind distinguishes one-off/recurring expenses from financed purchases.
// It is only meaningful for expenses.
type ItemKind string

const (
	Fixed       ItemKind = "FIXED"
	Installment ItemKind = "INSTALLMENT"
)

// LineItem is a single income or expense entry ("item").
type LineItem struct {
	ItemID string `json:"itemID"` // Primary Key (UUID)
	UserID string `json:"userID"` // Owner
	Nature Nature `json:"nature"`
	Kind   ItemKind `json:"kind"`
	// Amount is the one-time value, or the per-installment value when Kind is Installment.
	Amount decimal.Decimal `json:"amount"`
	CardID *string         `json:"cardID,omitempty"` // Nullable reference to a Card

	FirstInstallmentMonth *int `json:"firstInstallmentMonth,omitempty"` // 1-12
	FirstInstallmentYear  *int `json:"firstInstallmentYear,omitempty"`
	InstallmentCount      *int `json:"installmentCount,omitempty"`

	Description string    `json:"description"`
	Emoji       string    `json:"emoji"`
	Category    string    `json:"category"`
	EntryDate   time.Time `json:"entryDate"` // Date the entry refers to; drives monthly charts
	AuditFields
}

// HasSchedule reports whether the item is an installment purchase with a complete,
// usable schedule (first month, first year and a positive count).
func (i LineItem) HasSchedule() bool {
	if i.Kind != Installment {
		return false
	}
	if i.FirstInstallmentMonth == nil || i.FirstInstallmentYear == nil || i.InstallmentCount == nil {
		return false
	}
	m := *i.FirstInstallmentMonth
	return m >= 1 && m <= 12 && *i.InstallmentCount >= 1
}

// FirstInstallment returns the month of the first installment. ok is false when the
// item has no usable schedule.
func (i LineItem) FirstInstallment() (ym YearMonth, count int, ok bool) {
	if !i.HasSchedule() {
		return YearMonth{}, 0, false
	}
	return YearMonth{Year: *i.FirstInstallmentYear, Month: *i.FirstInstallmentMonth}, *i.InstallmentCount, true
}

// HasCard reports whether the item references a card.
func (i LineItem) HasCard() bool {
	return i.CardID != nil && *i.CardID != ""
}
