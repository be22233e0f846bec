package accounting

import (
	"sort"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultProjectionMonths is how far ahead the dashboard projection looks.
const DefaultProjectionMonths = 6

// GroupByFinalMonth buckets installment expenses by the month of their last
// installment. Buckets come out in ascending month order, items inside a bucket by
// amount descending. Items without a usable schedule are left out.
func GroupByFinalMonth(items []domain.LineItem) []domain.MonthBucket {
	byMonth := make(map[domain.YearMonth]*domain.MonthBucket)
	for _, item := range items {
		if item.Nature != domain.Expense {
			continue
		}
		first, count, ok := item.FirstInstallment()
		if !ok {
			continue
		}
		final := FinalMonth(first, count)
		b, exists := byMonth[final]
		if !exists {
			b = &domain.MonthBucket{YearMonth: final, Total: decimal.Zero}
			byMonth[final] = b
		}
		b.Items = append(b.Items, item)
		b.Total = b.Total.Add(item.Amount)
	}

	buckets := make([]domain.MonthBucket, 0, len(byMonth))
	for _, b := range byMonth {
		sort.SliceStable(b.Items, func(i, j int) bool {
			return b.Items[i].Amount.GreaterThan(b.Items[j].Amount)
		})
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].YearMonth.Before(buckets[j].YearMonth)
	})
	return buckets
}

// GroupByMonth sums raw income and expense amounts per month of referenceYear using
// each item's entry date. The result always has 12 rows, January first.
func GroupByMonth(items []domain.LineItem, referenceYear int) []domain.MonthTotals {
	rows := make([]domain.MonthTotals, 12)
	for i := range rows {
		rows[i] = domain.MonthTotals{Month: i + 1, Income: decimal.Zero, Expense: decimal.Zero}
	}
	for _, item := range items {
		if item.EntryDate.IsZero() || item.EntryDate.Year() != referenceYear {
			continue
		}
		row := &rows[int(item.EntryDate.Month())-1]
		switch item.Nature {
		case domain.Income:
			row.Income = row.Income.Add(item.Amount)
		case domain.Expense:
			row.Expense = row.Expense.Add(item.Amount)
		}
	}
	return rows
}

// ProjectMonths looks n calendar months ahead starting at today's month and, for each,
// sums the installment value of every financed expense whose first..final range
// contains that month.
func ProjectMonths(items []domain.LineItem, today domain.YearMonth, n int) []domain.ProjectionRow {
	if n <= 0 {
		return []domain.ProjectionRow{}
	}
	rows := make([]domain.ProjectionRow, n)
	for i := range rows {
		rows[i] = domain.ProjectionRow{YearMonth: today.AddMonths(i), Total: decimal.Zero}
	}
	for _, item := range items {
		if item.Nature != domain.Expense {
			continue
		}
		first, count, ok := item.FirstInstallment()
		if !ok {
			continue
		}
		final := FinalMonth(first, count)
		for i := range rows {
			ym := rows[i].YearMonth
			if ym.Before(first) || final.Before(ym) {
				continue
			}
			rows[i].Total = rows[i].Total.Add(item.Amount)
			rows[i].ItemCount++
		}
	}
	return rows
}
