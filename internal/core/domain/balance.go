package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is the user-entered account balance. It is a point value that is
// overwritten on every edit, not a ledger.
type Balance struct {
	UserID        string          `json:"userID"`
	Amount        decimal.Decimal `json:"amount"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}
