package domain

import "github.com/shopspring/decimal"

// Storage bounds. Amounts are NUMERIC(14,2) in the relational store.
var MaxAmount = decimal.RequireFromString("999999999999.99")

// MaxInstallmentCount caps a financing schedule at fifty years of monthly payments.
const MaxInstallmentCount = 600

// AmountInRange reports whether v fits the stored amount columns.
func AmountInRange(v decimal.Decimal) bool {
	return !v.IsNegative() && v.LessThanOrEqual(MaxAmount)
}
