package dto

import (
	"time"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateCardRequest defines the data needed to create a card.
type CreateCardRequest struct {
	Name       string          `json:"name" binding:"required,max=64"`
	Emoji      string          `json:"emoji" binding:"max=16"`
	Color      string          `json:"color" binding:"omitempty,hexcolor"`
	Limit      decimal.Decimal `json:"limit" binding:"gte=0,lte=999999999999.99"` // Zero disables limit tracking
	ClosingDay int             `json:"closingDay" binding:"omitempty,min=1,max=31"`
}

// UpdateCardRequest re-specifies a whole card.
type UpdateCardRequest CreateCardRequest

// CardResponse defines the data returned for a card.
type CardResponse struct {
	CardID        string    `json:"cardID"`
	Name          string    `json:"name"`
	Emoji         string    `json:"emoji"`
	Color         string    `json:"color"`
	Limit         string    `json:"limit"`
	ClosingDay    int       `json:"closingDay"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCardResponse converts a domain.Card to CardResponse DTO
func ToCardResponse(card *domain.Card) CardResponse {
	return CardResponse{
		CardID:        card.CardID,
		Name:          card.Name,
		Emoji:         card.Emoji,
		Color:         card.Color,
		Limit:         utils.FormatAmount(card.Limit),
		ClosingDay:    card.ClosingDay,
		CreatedAt:     card.CreatedAt,
		LastUpdatedAt: card.LastUpdatedAt,
	}
}

// ListCardsResponse wraps the list of cards.
type ListCardsResponse struct {
	Cards []CardResponse `json:"cards"`
}

// ToListCardsResponse converts a slice of cards.
func ToListCardsResponse(cards []domain.Card) ListCardsResponse {
	res := ListCardsResponse{Cards: make([]CardResponse, len(cards))}
	for i := range cards {
		res.Cards[i] = ToCardResponse(&cards[i])
	}
	return res
}
