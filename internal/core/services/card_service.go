package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/dto"
	"github.com/google/uuid"
)

// cardService implements the CardSvcFacade interface
type cardService struct {
	BaseService
	cardRepo portsrepo.CardRepositoryFacade
}

// CardServiceOption is a functional option for configuring the card service
type CardServiceOption func(*cardService)

// WithCardClock sets the clock used for audit timestamps.
func WithCardClock(clock portssvc.Clock) CardServiceOption {
	return func(s *cardService) {
		s.Clock = clock
	}
}

// NewCardService creates a new card service with the provided options
func NewCardService(repo portsrepo.CardRepositoryFacade, options ...CardServiceOption) portssvc.CardSvcFacade {
	svc := &cardService{cardRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CardSvcFacade = (*cardService)(nil)

func (s *cardService) CreateCard(ctx context.Context, req dto.CreateCardRequest, userID string) (*domain.Card, error) {
	now := s.Now()
	card := domain.Card{
		CardID: uuid.NewString(),
		UserID: userID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := applyCardRequest(&card, req); err != nil {
		return nil, err
	}

	if err := s.cardRepo.SaveCard(ctx, card); err != nil {
		s.LogError(ctx, err, "Failed to save card", slog.String("card_id", card.CardID))
		return nil, fmt.Errorf("failed to save card: %w", err)
	}

	s.LogInfo(ctx, "Card created successfully", slog.String("card_id", card.CardID))
	return &card, nil
}

func (s *cardService) GetCardByID(ctx context.Context, cardID string, userID string) (*domain.Card, error) {
	card, err := s.cardRepo.FindCardByID(ctx, userID, cardID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find card", slog.String("card_id", cardID))
		}
		return nil, err
	}
	return card, nil
}

func (s *cardService) ListCards(ctx context.Context, userID string) ([]domain.Card, error) {
	cards, err := s.cardRepo.ListCards(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cards")
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	if cards == nil {
		return []domain.Card{}, nil
	}
	return cards, nil
}

func (s *cardService) UpdateCard(ctx context.Context, cardID string, req dto.UpdateCardRequest, userID string) (*domain.Card, error) {
	card, err := s.GetCardByID(ctx, cardID, userID)
	if err != nil {
		return nil, err
	}
	if err := applyCardRequest(card, dto.CreateCardRequest(req)); err != nil {
		return nil, err
	}
	card.LastUpdatedAt = s.Now()
	card.LastUpdatedBy = userID

	if err := s.cardRepo.UpdateCard(ctx, *card); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update card", slog.String("card_id", cardID))
		}
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	s.LogInfo(ctx, "Card updated successfully", slog.String("card_id", cardID))
	return card, nil
}

func (s *cardService) DeleteCard(ctx context.Context, cardID string, userID string) error {
	if err := s.cardRepo.DeleteCard(ctx, userID, cardID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete card", slog.String("card_id", cardID))
		}
		return err
	}
	s.LogInfo(ctx, "Card deleted successfully", slog.String("card_id", cardID))
	return nil
}

func applyCardRequest(card *domain.Card, req dto.CreateCardRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: card name is required", apperrors.ErrValidation)
	}
	if req.Limit.IsNegative() {
		return fmt.Errorf("%w: limit must not be negative", apperrors.ErrValidation)
	}
	if !domain.AmountInRange(req.Limit.Round(2)) {
		return fmt.Errorf("%w: limit must not exceed %s", apperrors.ErrValidation, domain.MaxAmount)
	}
	if req.ClosingDay < 0 || req.ClosingDay > 31 {
		return fmt.Errorf("%w: closing day must be between 1 and 31", apperrors.ErrValidation)
	}
	card.Name = name
	card.Emoji = req.Emoji
	card.Color = req.Color
	card.Limit = req.Limit.Round(2)
	card.ClosingDay = req.ClosingDay
	return nil
}
