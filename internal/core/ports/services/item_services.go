package services

import (
	"context"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/dto"
)

// ItemReaderSvc defines read operations for line items
type ItemReaderSvc interface {
	// GetItemByID retrieves one item of the owner.
	GetItemByID(ctx context.Context, itemID string, userID string) (*domain.LineItem, error)

	// ListItems returns one page of the owner's items and the token of the next page,
	// empty when there is none.
	ListItems(ctx context.Context, params dto.ListItemsParams, userID string) ([]domain.LineItem, string, error)
}

// ItemWriterSvc defines write operations for line items
type ItemWriterSvc interface {
	// CreateItem persists a new item.
	CreateItem(ctx context.Context, req dto.CreateItemRequest, userID string) (*domain.LineItem, error)

	// UpdateItem re-specifies an existing item.
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, userID string) (*domain.LineItem, error)

	// DeleteItem removes an item.
	DeleteItem(ctx context.Context, itemID string, userID string) error
}

// ItemSvcFacade combines all item-related service interfaces
type ItemSvcFacade interface {
	ItemReaderSvc
	ItemWriterSvc
}
