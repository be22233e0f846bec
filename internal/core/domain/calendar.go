package domain

import (
	"fmt"
	"time"
)

// YearMonth is a calendar month. It is the one canonical date representation used by
// installment arithmetic; there is no day component.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
}

const yearMonthLayout = "2006-01"

// NewYearMonth truncates t to its calendar month.
func NewYearMonth(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: int(t.Month())}
}

// ParseYearMonth parses "YYYY-MM".
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(yearMonthLayout, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	return NewYearMonth(t), nil
}

// Index counts months since year 0; differences of indexes are month distances.
func (ym YearMonth) Index() int {
	return ym.Year*12 + (ym.Month - 1)
}

// AddMonths moves n months forward (or back when negative), carrying into the year.
func (ym YearMonth) AddMonths(n int) YearMonth {
	idx := ym.Index() + n
	year := idx / 12
	month := idx % 12
	if month < 0 {
		month += 12
		year--
	}
	return YearMonth{Year: year, Month: month + 1}
}

// MonthsUntil returns the signed month distance from ym to other.
func (ym YearMonth) MonthsUntil(other YearMonth) int {
	return other.Index() - ym.Index()
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	return ym.Index() < other.Index()
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}
