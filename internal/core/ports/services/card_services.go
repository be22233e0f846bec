package services

import (
	"context"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/dto"
)

// CardReaderSvc defines read operations for cards
type CardReaderSvc interface {
	// GetCardByID retrieves one card of the owner.
	GetCardByID(ctx context.Context, cardID string, userID string) (*domain.Card, error)

	// ListCards retrieves all cards of the owner.
	ListCards(ctx context.Context, userID string) ([]domain.Card, error)
}

// CardWriterSvc defines write operations for cards
type CardWriterSvc interface {
	// CreateCard persists a new card.
	CreateCard(ctx context.Context, req dto.CreateCardRequest, userID string) (*domain.Card, error)

	// UpdateCard replaces a card's details.
	UpdateCard(ctx context.Context, cardID string, req dto.UpdateCardRequest, userID string) (*domain.Card, error)

	// DeleteCard removes a card. Items referencing it are kept.
	DeleteCard(ctx context.Context, cardID string, userID string) error
}

// CardSvcFacade combines all card-related service interfaces
type CardSvcFacade interface {
	CardReaderSvc
	CardWriterSvc
}
