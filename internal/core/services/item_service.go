package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/dto"
	"github.com/SscSPs/fintrack/internal/utils/pagination"
	"github.com/google/uuid"
)

// DefaultPageSize is used when a list request does not ask for a page size.
const DefaultPageSize = 50

// itemService implements the ItemSvcFacade interface
type itemService struct {
	BaseService
	itemRepo portsrepo.LineItemRepositoryFacade
	cardRepo portsrepo.CardReader
	pageSize int
}

// ItemServiceOption is a functional option for configuring the item service
type ItemServiceOption func(*itemService)

// WithItemClock sets the clock used for entry dates and audit timestamps.
func WithItemClock(clock portssvc.Clock) ItemServiceOption {
	return func(s *itemService) {
		s.Clock = clock
	}
}

// WithPageSize sets the default page size of ListItems.
func WithPageSize(size int) ItemServiceOption {
	return func(s *itemService) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// NewItemService creates a new item service with the provided options
func NewItemService(itemRepo portsrepo.LineItemRepositoryFacade, cardRepo portsrepo.CardReader, options ...ItemServiceOption) portssvc.ItemSvcFacade {
	svc := &itemService{
		itemRepo: itemRepo,
		cardRepo: cardRepo,
		pageSize: DefaultPageSize,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

func (s *itemService) CreateItem(ctx context.Context, req dto.CreateItemRequest, userID string) (*domain.LineItem, error) {
	now := s.Now()
	item := domain.LineItem{
		ItemID: uuid.NewString(),
		UserID: userID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.applyRequest(ctx, &item, req, userID); err != nil {
		s.LogDebug(ctx, "Rejected item creation", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save item", slog.String("item_id", item.ItemID))
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	s.LogInfo(ctx, "Item created successfully",
		slog.String("item_id", item.ItemID),
		slog.String("nature", string(item.Nature)),
		slog.String("kind", string(item.Kind)))
	return &item, nil
}

func (s *itemService) GetItemByID(ctx context.Context, itemID string, userID string) (*domain.LineItem, error) {
	item, err := s.itemRepo.FindItemByID(ctx, userID, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find item", slog.String("item_id", itemID))
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context, params dto.ListItemsParams, userID string) ([]domain.LineItem, string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = s.pageSize
	}

	var cursor *portsrepo.ItemCursor
	if params.NextToken != "" {
		createdAt, itemID, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &portsrepo.ItemCursor{CreatedAt: createdAt, ItemID: itemID}
	}

	// One extra row tells whether another page exists.
	items, err := s.itemRepo.ListItemsPage(ctx, userID, cursor, limit+1)
	if err != nil {
		s.LogError(ctx, err, "Failed to list items", slog.Int("limit", limit))
		return nil, "", fmt.Errorf("failed to list items: %w", err)
	}

	nextToken := ""
	if len(items) > limit {
		items = items[:limit]
		last := items[len(items)-1]
		nextToken = pagination.EncodeToken(last.CreatedAt, last.ItemID)
	}
	if items == nil {
		items = []domain.LineItem{}
	}

	s.LogDebug(ctx, "Items listed", slog.Int("count", len(items)), slog.Bool("has_more", nextToken != ""))
	return items, nextToken, nil
}

func (s *itemService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, userID string) (*domain.LineItem, error) {
	existing, err := s.GetItemByID(ctx, itemID, userID)
	if err != nil {
		return nil, err
	}

	item := domain.LineItem{
		ItemID:      existing.ItemID,
		UserID:      existing.UserID,
		AuditFields: existing.AuditFields,
	}
	item.LastUpdatedAt = s.Now()
	item.LastUpdatedBy = userID

	if err := s.applyRequest(ctx, &item, dto.CreateItemRequest(req), userID); err != nil {
		s.LogDebug(ctx, "Rejected item update", slog.String("item_id", itemID), slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.itemRepo.UpdateItem(ctx, item); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update item", slog.String("item_id", itemID))
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	s.LogInfo(ctx, "Item updated successfully", slog.String("item_id", itemID))
	return &item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, itemID string, userID string) error {
	if err := s.itemRepo.DeleteItem(ctx, userID, itemID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete item", slog.String("item_id", itemID))
		}
		return err
	}
	s.LogInfo(ctx, "Item deleted successfully", slog.String("item_id", itemID))
	return nil
}

// applyRequest validates req and copies it onto item.
func (s *itemService) applyRequest(ctx context.Context, item *domain.LineItem, req dto.CreateItemRequest, userID string) error {
	if req.Nature != domain.Income && req.Nature != domain.Expense {
		return fmt.Errorf("%w: unknown nature %q", apperrors.ErrValidation, req.Nature)
	}
	if req.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if !domain.AmountInRange(req.Amount.Round(2)) {
		return fmt.Errorf("%w: amount must not exceed %s", apperrors.ErrValidation, domain.MaxAmount)
	}

	kind := req.Kind
	if kind == "" {
		kind = domain.Fixed
	}
	if kind != domain.Fixed && kind != domain.Installment {
		return fmt.Errorf("%w: unknown kind %q", apperrors.ErrValidation, kind)
	}
	if req.Nature == domain.Income && kind == domain.Installment {
		return fmt.Errorf("%w: income items cannot be installments", apperrors.ErrValidation)
	}

	item.Nature = req.Nature
	item.Kind = kind
	item.Amount = req.Amount.Round(2)
	item.Description = strings.TrimSpace(req.Description)
	item.Emoji = req.Emoji
	item.Category = strings.TrimSpace(req.Category)
	item.CardID = nil
	item.FirstInstallmentMonth = nil
	item.FirstInstallmentYear = nil
	item.InstallmentCount = nil

	if req.Nature == domain.Expense && req.CardID != nil && strings.TrimSpace(*req.CardID) != "" {
		cardID := strings.TrimSpace(*req.CardID)
		if _, err := s.cardRepo.FindCardByID(ctx, userID, cardID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: card %s does not exist", apperrors.ErrValidation, cardID)
			}
			return fmt.Errorf("failed to look up card: %w", err)
		}
		item.CardID = &cardID
	}

	if kind == domain.Installment {
		if req.FirstInstallmentMonth == nil || req.FirstInstallmentYear == nil || req.InstallmentCount == nil {
			return fmt.Errorf("%w: installment items need first month, first year and count", apperrors.ErrValidation)
		}
		month, year, count := *req.FirstInstallmentMonth, *req.FirstInstallmentYear, *req.InstallmentCount
		if month < 1 || month > 12 || year < 1 || count < 1 || count > domain.MaxInstallmentCount {
			return fmt.Errorf("%w: invalid installment schedule", apperrors.ErrValidation)
		}
		if item.CardID == nil {
			return fmt.Errorf("%w: installment items must reference a card", apperrors.ErrValidation)
		}
		item.FirstInstallmentMonth = &month
		item.FirstInstallmentYear = &year
		item.InstallmentCount = &count
	}

	entryDate, err := s.entryDate(req.EntryDate)
	if err != nil {
		return err
	}
	item.EntryDate = entryDate
	return nil
}

func (s *itemService) entryDate(raw *string) (time.Time, error) {
	if raw == nil || *raw == "" {
		now := s.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(dto.EntryDateLayout, *raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid entry date %q", apperrors.ErrValidation, *raw)
	}
	return d, nil
}
