// Package accounting holds the pure installment and aggregation arithmetic used by the
// reports. Every function takes the reference month explicitly and never reads the
// clock, never mutates its inputs and never fails on malformed item data.
package accounting

import (
	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ElapsedInstallments is the number of months from the first installment to today,
// clamped at zero for schedules that start in the future.
func ElapsedInstallments(first, today domain.YearMonth) int {
	return max(0, first.MonthsUntil(today))
}

// PaidInstallments counts the installments settled as of today. The month holding
// the first installment already counts as paid.
func PaidInstallments(first domain.YearMonth, count int, today domain.YearMonth) int {
	if count <= 0 {
		return 0
	}
	if today.Before(first) {
		return 0
	}
	return min(count, ElapsedInstallments(first, today)+1)
}

// RemainingInstallments is count minus the paid installments, never negative.
func RemainingInstallments(count int, first, today domain.YearMonth) int {
	return max(0, count-PaidInstallments(first, count, today))
}

// ProgressPercent is paid/total*100, or zero when total is not positive.
func ProgressPercent(paid, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(paid)).Mul(hundred).Div(decimal.NewFromInt(int64(total)))
}

// FinalMonth is the month of the last installment: count-1 months after the first.
func FinalMonth(first domain.YearMonth, count int) domain.YearMonth {
	if count < 1 {
		return first
	}
	return first.AddMonths(count - 1)
}

// InstallmentIndex is the 1-based number of the installment falling in today's month.
// It is not clamped: zero or negative means the schedule has not started, and a value
// above the count means it has finished.
func InstallmentIndex(first, today domain.YearMonth) int {
	return first.MonthsUntil(today) + 1
}

// DueInMonth reports whether one of the item's installments falls in month ym.
func DueInMonth(first domain.YearMonth, count int, ym domain.YearMonth) bool {
	idx := InstallmentIndex(first, ym)
	return idx >= 1 && idx <= count
}

// Progress bundles the schedule figures of an installment item. ok is false for items
// without a usable schedule.
func Progress(item domain.LineItem, today domain.YearMonth) (domain.InstallmentProgress, bool) {
	first, count, ok := item.FirstInstallment()
	if !ok {
		return domain.InstallmentProgress{}, false
	}
	paid := PaidInstallments(first, count, today)
	return domain.InstallmentProgress{
		Paid:            paid,
		Remaining:       RemainingInstallments(count, first, today),
		Total:           count,
		ProgressPercent: ProgressPercent(paid, count),
		First:           first,
		Final:           FinalMonth(first, count),
	}, true
}
