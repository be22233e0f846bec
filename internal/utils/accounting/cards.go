package accounting

import (
	"sort"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AggregateByCard totals the card-linked expenses per card. Every card passed in gets
// an entry, even without items; items pointing at a card that is not in cards still get
// an entry under their dangling id so callers can show them as "card not found".
func AggregateByCard(items []domain.LineItem, cards []domain.Card, today domain.YearMonth) map[string]domain.CardTotals {
	totals := make(map[string]domain.CardTotals, len(cards))
	for _, c := range cards {
		totals[c.CardID] = domain.CardTotals{CardID: c.CardID, TotalExposure: decimal.Zero, TotalThisMonth: decimal.Zero}
	}

	for _, item := range items {
		if item.Nature != domain.Expense || !item.HasCard() {
			continue
		}
		id := *item.CardID
		t, ok := totals[id]
		if !ok {
			t = domain.CardTotals{CardID: id, TotalExposure: decimal.Zero, TotalThisMonth: decimal.Zero}
		}
		t.TotalExposure = t.TotalExposure.Add(ItemExposure(item, today))
		t.TotalThisMonth = t.TotalThisMonth.Add(DueThisMonth(item, today))
		totals[id] = t
	}
	return totals
}

// OrderByThisMonth returns the card ids sorted by TotalThisMonth, largest first.
// Ties are broken by id so the order is stable across calls.
func OrderByThisMonth(totals map[string]domain.CardTotals) []string {
	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := totals[ids[i]], totals[ids[j]]
		if c := a.TotalThisMonth.Cmp(b.TotalThisMonth); c != 0 {
			return c > 0
		}
		return ids[i] < ids[j]
	})
	return ids
}

// PercentUsed is exposure/limit*100 clamped to [0,100]. A limit that is zero or
// negative means the card is not tracked and yields zero.
func PercentUsed(exposure, limit decimal.Decimal) decimal.Decimal {
	raw := RawPercentUsed(exposure, limit)
	if raw.GreaterThan(hundred) {
		return hundred
	}
	if raw.IsNegative() {
		return decimal.Zero
	}
	return raw
}

// RawPercentUsed is exposure/limit*100 without the upper clamp, so callers can flag
// cards that went over their limit. Zero when the limit is not positive.
func RawPercentUsed(exposure, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return decimal.Zero
	}
	return exposure.Div(limit).Mul(hundred)
}

// OverLimit reports whether exposure exceeds a tracked limit.
func OverLimit(exposure, limit decimal.Decimal) bool {
	return limit.IsPositive() && exposure.GreaterThan(limit)
}

// SortCardItems returns a sorted copy of the items of one card: fixed items first by
// amount descending, then installment items by remaining installments ascending.
func SortCardItems(items []domain.LineItem, today domain.YearMonth) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	copy(out, items)

	remaining := func(item domain.LineItem) int {
		first, count, ok := item.FirstInstallment()
		if !ok {
			return 0
		}
		return RemainingInstallments(count, first, today)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		aInst, bInst := a.Kind == domain.Installment, b.Kind == domain.Installment
		if aInst != bInst {
			return !aInst
		}
		if !aInst {
			return a.Amount.GreaterThan(b.Amount)
		}
		return remaining(a) < remaining(b)
	})
	return out
}
