package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is a row of the itens table and an element of the local itens document.
type LineItem struct {
	ItemID                string          `db:"item_id" json:"id"`
	UserID                string          `db:"user_id" json:"userId"`
	Nature                string          `db:"nature" json:"nature"`
	Kind                  string          `db:"kind" json:"kind"`
	Amount                decimal.Decimal `db:"amount" json:"amount"`
	CardID                *string         `db:"card_id" json:"cardId,omitempty"`
	FirstInstallmentMonth *int            `db:"first_installment_month" json:"firstInstallmentMonth,omitempty"`
	FirstInstallmentYear  *int            `db:"first_installment_year" json:"firstInstallmentYear,omitempty"`
	InstallmentCount      *int            `db:"installment_count" json:"installmentCount,omitempty"`
	Description           string          `db:"description" json:"description"`
	Emoji                 string          `db:"emoji" json:"emoji"`
	Category              string          `db:"category" json:"category"`
	EntryDate             time.Time       `db:"entry_date" json:"entryDate"`
	AuditFields
}
