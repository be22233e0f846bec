package accounting

import (
	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ItemExposure is what an item still weighs as of today: the remaining installments
// times the installment value for a financed purchase, otherwise the full amount.
// An installment item with an incomplete schedule falls back to its full amount.
func ItemExposure(item domain.LineItem, today domain.YearMonth) decimal.Decimal {
	first, count, ok := item.FirstInstallment()
	if !ok {
		return item.Amount
	}
	remaining := RemainingInstallments(count, first, today)
	return item.Amount.Mul(decimal.NewFromInt(int64(remaining)))
}

// DueThisMonth is the part of the item that falls due in today's month. Fixed items
// recur every month and always count in full.
func DueThisMonth(item domain.LineItem, today domain.YearMonth) decimal.Decimal {
	if item.Kind != domain.Installment {
		return item.Amount
	}
	first, count, ok := item.FirstInstallment()
	if !ok {
		return decimal.Zero
	}
	if DueInMonth(first, count, today) {
		return item.Amount
	}
	return decimal.Zero
}

// TotalExposure sums ItemExposure over the expense items.
func TotalExposure(items []domain.LineItem, today domain.YearMonth) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Nature != domain.Expense {
			continue
		}
		total = total.Add(ItemExposure(item, today))
	}
	return total
}

// InstallmentsDueThisMonth sums the installments of all financed expenses that fall
// in today's month.
func InstallmentsDueThisMonth(items []domain.LineItem, today domain.YearMonth) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Nature != domain.Expense || item.Kind != domain.Installment {
			continue
		}
		total = total.Add(DueThisMonth(item, today))
	}
	return total
}
