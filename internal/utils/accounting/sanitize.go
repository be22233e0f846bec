package accounting

import (
	"strings"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Sanitize normalizes a stored item once, at load time, so the calculators can rely on
// a few simple facts instead of re-checking them everywhere:
//   - negative amounts become zero
//   - income items are always FIXED
//   - an unknown or empty kind on an expense becomes FIXED
//   - out-of-range schedule fields are dropped, which turns the item into one
//     without a usable schedule (full-amount exposure, no month bucket)
//   - an empty card reference becomes nil
//
// The input is not modified.
func Sanitize(item domain.LineItem) domain.LineItem {
	out := item
	if out.Amount.IsNegative() {
		out.Amount = decimal.Zero
	}

	switch {
	case out.Nature == domain.Income:
		out.Kind = domain.Fixed
	case out.Kind != domain.Installment:
		out.Kind = domain.Fixed
	}

	if out.FirstInstallmentMonth != nil {
		if m := *out.FirstInstallmentMonth; m < 1 || m > 12 {
			out.FirstInstallmentMonth = nil
		}
	}
	if out.FirstInstallmentYear != nil && *out.FirstInstallmentYear <= 0 {
		out.FirstInstallmentYear = nil
	}
	if out.InstallmentCount != nil && *out.InstallmentCount < 1 {
		out.InstallmentCount = nil
	}
	if out.CardID != nil && strings.TrimSpace(*out.CardID) == "" {
		out.CardID = nil
	}
	return out
}

// SanitizeAll returns a sanitized copy of items.
func SanitizeAll(items []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, item := range items {
		out[i] = Sanitize(item)
	}
	return out
}

// SanitizeBalanceInput turns the raw text of a balance edit into a value. Both
// "1.234,56" and "1,234.56" grouping styles are accepted. Anything that does not
// parse, any negative number and anything beyond domain.MaxAmount becomes zero.
func SanitizeBalanceInput(raw string) decimal.Decimal {
	raw = normalizeDecimalText(strings.TrimSpace(raw))
	if raw == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	v = v.Round(2)
	if !domain.AmountInRange(v) {
		return decimal.Zero
	}
	return v
}

// normalizeDecimalText rewrites grouped numbers to plain "1234.56" form. The last
// of "." and "," is the decimal separator; a separator that repeats is grouping.
func normalizeDecimalText(raw string) string {
	lastDot := strings.LastIndex(raw, ".")
	lastComma := strings.LastIndex(raw, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			raw = strings.ReplaceAll(raw, ".", "")
			return strings.Replace(raw, ",", ".", 1)
		}
		return strings.ReplaceAll(raw, ",", "")
	case lastComma >= 0:
		if strings.Count(raw, ",") > 1 {
			return strings.ReplaceAll(raw, ",", "")
		}
		return strings.Replace(raw, ",", ".", 1)
	case strings.Count(raw, ".") > 1:
		return strings.ReplaceAll(raw, ".", "")
	}
	return raw
}
