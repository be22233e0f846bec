package domain

import "github.com/shopspring/decimal"

// Card is a credit line used to group expenses.
type Card struct {
	CardID string `json:"cardID"` // Primary Key (UUID)
	UserID string `json:"userID"` // Owner
	Name   string `json:"name"`
	Emoji  string `json:"emoji"`
	Color  string `json:"color"`
	// Limit of zero means the card has no limit tracking.
	Limit      decimal.Decimal `json:"limit"`
	ClosingDay int             `json:"closingDay"` // 1-31, informational only
	AuditFields
}

// TracksLimit reports whether utilization can be computed for the card.
func (c Card) TracksLimit() bool {
	return c.Limit.IsPositive()
}
