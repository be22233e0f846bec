package accounting

import (
	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Totals sums the raw amounts of income and expense items. Installment exposure plays
// no part here: an installment item contributes its face amount once.
func Totals(items []domain.LineItem) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, item := range items {
		switch item.Nature {
		case domain.Income:
			income = income.Add(item.Amount)
		case domain.Expense:
			expense = expense.Add(item.Amount)
		}
	}
	return income, expense
}

// Surplus is total income minus total expense over raw amounts.
func Surplus(items []domain.LineItem) decimal.Decimal {
	income, expense := Totals(items)
	return income.Sub(expense)
}

// NextBalance is the balance after applying the surplus.
func NextBalance(balance, surplus decimal.Decimal) decimal.Decimal {
	return balance.Add(surplus)
}
