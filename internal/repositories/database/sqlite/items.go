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

// ItemRepository keeps the owner's items as one JSON list.
type ItemRepository struct {
	store *Store
}

var _ portsrepo.LineItemRepositoryFacade = (*ItemRepository)(nil)

func (r *ItemRepository) load(ctx context.Context, userID string) ([]models.LineItem, error) {
	var list []models.LineItem
	if _, err := r.store.read(ctx, userID, keyItems, &list); err != nil {
		return nil, err
	}
	sortItems(list)
	return list, nil
}

func sortItems(list []models.LineItem) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ItemID < b.ItemID
	})
}

func indexOfItem(list []models.LineItem, itemID string) int {
	for i := range list {
		if list[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

func (r *ItemRepository) SaveItem(ctx context.Context, item domain.LineItem) error {
	var list []models.LineItem
	return r.store.mutate(ctx, item.UserID, keyItems, &list, func() error {
		if indexOfItem(list, item.ItemID) >= 0 {
			return fmt.Errorf("%w: item with ID %s already exists", apperrors.ErrDuplicate, item.ItemID)
		}
		list = append(list, mapping.ToModelItem(item))
		return nil
	})
}

func (r *ItemRepository) FindItemByID(ctx context.Context, userID string, itemID string) (*domain.LineItem, error) {
	list, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	i := indexOfItem(list, itemID)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	item := mapping.ToDomainItem(list[i])
	return &item, nil
}

func (r *ItemRepository) ListItems(ctx context.Context, userID string) ([]domain.LineItem, error) {
	list, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainItemSlice(list), nil
}

func (r *ItemRepository) ListItemsPage(ctx context.Context, userID string, after *portsrepo.ItemCursor, limit int) ([]domain.LineItem, error) {
	list, err := r.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	start := 0
	if after != nil {
		start = sort.Search(len(list), func(i int) bool {
			m := list[i]
			if !m.CreatedAt.Equal(after.CreatedAt) {
				return m.CreatedAt.After(after.CreatedAt)
			}
			return m.ItemID > after.ItemID
		})
	}
	end := len(list)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	return mapping.ToDomainItemSlice(list[start:end]), nil
}

func (r *ItemRepository) UpdateItem(ctx context.Context, item domain.LineItem) error {
	var list []models.LineItem
	return r.store.mutate(ctx, item.UserID, keyItems, &list, func() error {
		i := indexOfItem(list, item.ItemID)
		if i < 0 {
			return apperrors.ErrNotFound
		}
		list[i] = mapping.ToModelItem(item)
		return nil
	})
}

func (r *ItemRepository) DeleteItem(ctx context.Context, userID string, itemID string) error {
	var list []models.LineItem
	return r.store.mutate(ctx, userID, keyItems, &list, func() error {
		i := indexOfItem(list, itemID)
		if i < 0 {
			return apperrors.ErrNotFound
		}
		list = append(list[:i], list[i+1:]...)
		return nil
	})
}
