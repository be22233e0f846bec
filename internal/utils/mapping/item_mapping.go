package mapping

import (
	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/models"
)

// ToModelItem converts a domain LineItem to a model LineItem
func ToModelItem(d domain.LineItem) models.LineItem {
	return models.LineItem{
		ItemID:                d.ItemID,
		UserID:                d.UserID,
		Nature:                string(d.Nature),
		Kind:                  string(d.Kind),
		Amount:                d.Amount,
		CardID:                d.CardID,
		FirstInstallmentMonth: d.FirstInstallmentMonth,
		FirstInstallmentYear:  d.FirstInstallmentYear,
		InstallmentCount:      d.InstallmentCount,
		Description:           d.Description,
		Emoji:                 d.Emoji,
		Category:              d.Category,
		EntryDate:             d.EntryDate,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainItem converts a model LineItem to a domain LineItem
func ToDomainItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		ItemID:                m.ItemID,
		UserID:                m.UserID,
		Nature:                domain.Nature(m.Nature),
		Kind:                  domain.ItemKind(m.Kind),
		Amount:                m.Amount,
		CardID:                m.CardID,
		FirstInstallmentMonth: m.FirstInstallmentMonth,
		FirstInstallmentYear:  m.FirstInstallmentYear,
		InstallmentCount:      m.InstallmentCount,
		Description:           m.Description,
		Emoji:                 m.Emoji,
		Category:              m.Category,
		EntryDate:             m.EntryDate,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainItemSlice converts a slice of model LineItems to a slice of domain LineItems
func ToDomainItemSlice(ms []models.LineItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainItem(m)
	}
	return ds
}
