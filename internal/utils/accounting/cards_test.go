package accounting_test

import (
	"testing"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateByCard_FixedAndInstallment(t *testing.T) {
	today := ym(2024, 6)
	cards := []domain.Card{{CardID: "c1", Limit: dec("1000")}}

	fixed := domain.LineItem{ItemID: "f", Nature: domain.Expense, Kind: domain.Fixed, Amount: dec("50"), CardID: strPtr("c1")}
	// first of three installments falls this month: one paid, two remaining
	inst := installmentItem("i", "20", 6, 2024, 3)
	inst.CardID = strPtr("c1")

	totals := accounting.AggregateByCard([]domain.LineItem{fixed, inst}, cards, today)

	require.Contains(t, totals, "c1")
	assert.True(t, totals["c1"].TotalExposure.Equal(dec("90")), "got %s", totals["c1"].TotalExposure)
	assert.True(t, totals["c1"].TotalThisMonth.Equal(dec("70")), "got %s", totals["c1"].TotalThisMonth)
}

func TestAggregateByCard_Filtering(t *testing.T) {
	today := ym(2024, 6)
	cards := []domain.Card{{CardID: "c1"}, {CardID: "empty"}}

	items := []domain.LineItem{
		{ItemID: "income", Nature: domain.Income, Kind: domain.Fixed, Amount: dec("999"), CardID: strPtr("c1")},
		{ItemID: "nocard", Nature: domain.Expense, Kind: domain.Fixed, Amount: dec("999")},
		{ItemID: "dangling", Nature: domain.Expense, Kind: domain.Fixed, Amount: dec("15"), CardID: strPtr("gone")},
		{ItemID: "ok", Nature: domain.Expense, Kind: domain.Fixed, Amount: dec("10"), CardID: strPtr("c1")},
	}

	totals := accounting.AggregateByCard(items, cards, today)

	assert.Len(t, totals, 3)
	assert.True(t, totals["c1"].TotalExposure.Equal(dec("10")))
	assert.True(t, totals["empty"].TotalExposure.IsZero())
	assert.True(t, totals["empty"].TotalThisMonth.IsZero())
	assert.True(t, totals["gone"].TotalExposure.Equal(dec("15")))
}

func TestAggregateByCard_FutureInstallmentNotDueThisMonth(t *testing.T) {
	today := ym(2024, 6)
	inst := installmentItem("i", "30", 8, 2024, 2)
	inst.CardID = strPtr("c1")

	totals := accounting.AggregateByCard([]domain.LineItem{inst}, nil, today)

	assert.True(t, totals["c1"].TotalExposure.Equal(dec("60")))
	assert.True(t, totals["c1"].TotalThisMonth.IsZero())
}

func TestAggregateByCard_DoesNotMutateInput(t *testing.T) {
	items := []domain.LineItem{
		{ItemID: "a", Nature: domain.Expense, Kind: domain.Fixed, Amount: dec("10"), CardID: strPtr("c1")},
	}
	before := items[0].Amount

	accounting.AggregateByCard(items, nil, ym(2024, 1))

	assert.True(t, items[0].Amount.Equal(before))
}

func TestOrderByThisMonth(t *testing.T) {
	totals := map[string]domain.CardTotals{
		"a": {CardID: "a", TotalThisMonth: dec("10")},
		"b": {CardID: "b", TotalThisMonth: dec("300")},
		"c": {CardID: "c", TotalThisMonth: dec("10")},
		"d": {CardID: "d", TotalThisMonth: dec("0")},
	}

	assert.Equal(t, []string{"b", "a", "c", "d"}, accounting.OrderByThisMonth(totals))
}

func TestPercentUsed(t *testing.T) {
	tests := []struct {
		name     string
		exposure string
		limit    string
		want     string
		raw      string
	}{
		{"clamped over limit", "500", "100", "100", "500"},
		{"zero limit is not tracked", "50", "0", "0", "0"},
		{"negative limit is not tracked", "50", "-10", "0", "0"},
		{"half used", "250", "500", "50", "50"},
		{"nothing used", "0", "500", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.PercentUsed(dec(tt.exposure), dec(tt.limit))
			assert.True(t, got.Equal(dec(tt.want)), "percent: got %s want %s", got, tt.want)
			raw := accounting.RawPercentUsed(dec(tt.exposure), dec(tt.limit))
			assert.True(t, raw.Equal(dec(tt.raw)), "raw: got %s want %s", raw, tt.raw)
		})
	}
}

func TestOverLimit(t *testing.T) {
	assert.True(t, accounting.OverLimit(dec("101"), dec("100")))
	assert.False(t, accounting.OverLimit(dec("100"), dec("100")))
	assert.False(t, accounting.OverLimit(dec("5000"), dec("0")))
}

func TestSortCardItems(t *testing.T) {
	today := ym(2024, 6)
	fixedSmall := domain.LineItem{ItemID: "fs", Nature: domain.Expense, Kind: domain.Fixed, Amount: dec("10")}
	fixedBig := domain.LineItem{ItemID: "fb", Nature: domain.Expense, Kind: domain.Fixed, Amount: dec("99")}
	longInst := installmentItem("long", "5", 6, 2024, 12)  // 11 remaining
	shortInst := installmentItem("short", "500", 5, 2024, 3) // 1 remaining

	in := []domain.LineItem{longInst, fixedSmall, shortInst, fixedBig}
	out := accounting.SortCardItems(in, today)

	ids := make([]string, len(out))
	for i, item := range out {
		ids[i] = item.ItemID
	}
	assert.Equal(t, []string{"fb", "fs", "short", "long"}, ids)
	assert.Equal(t, "long", in[0].ItemID, "input order is preserved")
}
