package models

import "github.com/shopspring/decimal"

// Card is a row of the cartoes table.
type Card struct {
	CardID     string          `db:"card_id" json:"id"`
	UserID     string          `db:"user_id" json:"userId"`
	Name       string          `db:"name" json:"name"`
	Emoji      string          `db:"emoji" json:"emoji"`
	Color      string          `db:"color" json:"color"`
	Limit      decimal.Decimal `db:"credit_limit" json:"limit"`
	ClosingDay int             `db:"closing_day" json:"closingDay"`
	AuditFields
}
