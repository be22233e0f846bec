package mapping

import (
	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/models"
)

// ToModelCard converts a domain Card to a model Card
func ToModelCard(d domain.Card) models.Card {
	return models.Card{
		CardID:      d.CardID,
		UserID:      d.UserID,
		Name:        d.Name,
		Emoji:       d.Emoji,
		Color:       d.Color,
		Limit:       d.Limit,
		ClosingDay:  d.ClosingDay,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCard converts a model Card to a domain Card
func ToDomainCard(m models.Card) domain.Card {
	return domain.Card{
		CardID:      m.CardID,
		UserID:      m.UserID,
		Name:        m.Name,
		Emoji:       m.Emoji,
		Color:       m.Color,
		Limit:       m.Limit,
		ClosingDay:  m.ClosingDay,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCardSlice converts a slice of model Cards to a slice of domain Cards
func ToDomainCardSlice(ms []models.Card) []domain.Card {
	ds := make([]domain.Card, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCard(m)
	}
	return ds
}

// ToModelBalance converts a domain Balance to a model Balance
func ToModelBalance(d domain.Balance) models.Balance {
	return models.Balance{UserID: d.UserID, Amount: d.Amount, LastUpdatedAt: d.LastUpdatedAt}
}

// ToDomainBalance converts a model Balance to a domain Balance
func ToDomainBalance(m models.Balance) domain.Balance {
	return domain.Balance{UserID: m.UserID, Amount: m.Amount, LastUpdatedAt: m.LastUpdatedAt}
}
