package repositories

import (
	"context"

	"github.com/SscSPs/fintrack/internal/core/domain"
)

// CardReader defines read operations for cards
type CardReader interface {
	FindCardByID(ctx context.Context, userID string, cardID string) (*domain.Card, error)
	ListCards(ctx context.Context, userID string) ([]domain.Card, error)
}

// CardWriter defines write operations for cards
type CardWriter interface {
	SaveCard(ctx context.Context, card domain.Card) error
	UpdateCard(ctx context.Context, card domain.Card) error
	// DeleteCard removes the card only; items referencing it are left untouched.
	DeleteCard(ctx context.Context, userID string, cardID string) error
}

// CardRepositoryFacade combines all card repository interfaces
type CardRepositoryFacade interface {
	CardReader
	CardWriter
}
