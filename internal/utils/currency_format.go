package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of fractional digits amounts are shown with.
const DisplayPrecision = 2

// FormatAmount renders an amount with two fractional digits.
// Example: 12.3456 returns "12.35", 7 returns "7.00"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayPrecision)
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when a different precision is needed, e.g. percentages
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
