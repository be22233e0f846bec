package sqlite

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	"github.com/SscSPs/fintrack/internal/models"
	"github.com/SscSPs/fintrack/internal/utils/mapping"
)

// CardRepository keeps the owner's cards as one JSON list.
type CardRepository struct {
	store *Store
}

var _ portsrepo.CardRepositoryFacade = (*CardRepository)(nil)

func indexOfCard(list []models.Card, cardID string) int {
	for i := range list {
		if list[i].CardID == cardID {
			return i
		}
	}
	return -1
}

func (r *CardRepository) SaveCard(ctx context.Context, card domain.Card) error {
	var list []models.Card
	return r.store.mutate(ctx, card.UserID, keyCards, &list, func() error {
		if indexOfCard(list, card.CardID) >= 0 {
			return fmt.Errorf("%w: card with ID %s already exists", apperrors.ErrDuplicate, card.CardID)
		}
		list = append(list, mapping.ToModelCard(card))
		return nil
	})
}

func (r *CardRepository) FindCardByID(ctx context.Context, userID string, cardID string) (*domain.Card, error) {
	var list []models.Card
	if _, err := r.store.read(ctx, userID, keyCards, &list); err != nil {
		return nil, err
	}
	i := indexOfCard(list, cardID)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	card := mapping.ToDomainCard(list[i])
	return &card, nil
}

// ListCards returns the cards ordered by name.
func (r *CardRepository) ListCards(ctx context.Context, userID string) ([]domain.Card, error) {
	var list []models.Card
	if _, err := r.store.read(ctx, userID, keyCards, &list); err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].CardID < list[j].CardID
	})
	return mapping.ToDomainCardSlice(list), nil
}

func (r *CardRepository) UpdateCard(ctx context.Context, card domain.Card) error {
	var list []models.Card
	return r.store.mutate(ctx, card.UserID, keyCards, &list, func() error {
		i := indexOfCard(list, card.CardID)
		if i < 0 {
			return apperrors.ErrNotFound
		}
		list[i] = mapping.ToModelCard(card)
		return nil
	})
}

// DeleteCard removes the card only; the items document is not touched.
func (r *CardRepository) DeleteCard(ctx context.Context, userID string, cardID string) error {
	var list []models.Card
	return r.store.mutate(ctx, userID, keyCards, &list, func() error {
		i := indexOfCard(list, cardID)
		if i < 0 {
			return apperrors.ErrNotFound
		}
		list = append(list[:i], list[i+1:]...)
		return nil
	})
}
