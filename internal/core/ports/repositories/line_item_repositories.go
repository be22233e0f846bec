package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fintrack/internal/core/domain"
)

// ItemCursor marks the last item of a previous page. Items are paged in
// (CreatedAt, ItemID) order.
type ItemCursor struct {
	CreatedAt time.Time
	ItemID    string
}

// LineItemReader defines read operations for line items
type LineItemReader interface {
	// FindItemByID retrieves one item of the owner. Items of other owners are reported as not found.
	FindItemByID(ctx context.Context, userID string, itemID string) (*domain.LineItem, error)

	// ListItems retrieves every item of the owner, oldest first.
	ListItems(ctx context.Context, userID string) ([]domain.LineItem, error)

	// ListItemsPage retrieves up to limit items created after the cursor (nil for the first page).
	ListItemsPage(ctx context.Context, userID string, after *ItemCursor, limit int) ([]domain.LineItem, error)
}

// LineItemWriter defines write operations for line items
type LineItemWriter interface {
	SaveItem(ctx context.Context, item domain.LineItem) error
	UpdateItem(ctx context.Context, item domain.LineItem) error
	DeleteItem(ctx context.Context, userID string, itemID string) error
}

// LineItemRepositoryFacade combines all line item repository interfaces
type LineItemRepositoryFacade interface {
	LineItemReader
	LineItemWriter
}
