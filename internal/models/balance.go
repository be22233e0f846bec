package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is the single saldo row of an owner.
type Balance struct {
	UserID        string          `db:"user_id" json:"userId"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	LastUpdatedAt time.Time       `db:"last_updated_at" json:"lastUpdatedAt"`
}
