package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock LineItemRepository ---
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindItemByID(ctx context.Context, userID string, itemID string) (*domain.LineItem, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LineItem), args.Error(1)
}

func (m *MockItemRepository) ListItems(ctx context.Context, userID string) ([]domain.LineItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockItemRepository) ListItemsPage(ctx context.Context, userID string, after *portsrepo.ItemCursor, limit int) ([]domain.LineItem, error) {
	args := m.Called(ctx, userID, after, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockItemRepository) SaveItem(ctx context.Context, item domain.LineItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepository) UpdateItem(ctx context.Context, item domain.LineItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepository) DeleteItem(ctx context.Context, userID string, itemID string) error {
	return m.Called(ctx, userID, itemID).Error(0)
}

// --- Mock CardRepository ---
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) FindCardByID(ctx context.Context, userID string, cardID string) (*domain.Card, error) {
	args := m.Called(ctx, userID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardRepository) ListCards(ctx context.Context, userID string) ([]domain.Card, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockCardRepository) SaveCard(ctx context.Context, card domain.Card) error {
	return m.Called(ctx, card).Error(0)
}

func (m *MockCardRepository) UpdateCard(ctx context.Context, card domain.Card) error {
	return m.Called(ctx, card).Error(0)
}

func (m *MockCardRepository) DeleteCard(ctx context.Context, userID string, cardID string) error {
	return m.Called(ctx, userID, cardID).Error(0)
}

// --- Mock BalanceRepository ---
type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) GetBalance(ctx context.Context, userID string) (*domain.Balance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockBalanceRepository) SetBalance(ctx context.Context, balance domain.Balance) error {
	return m.Called(ctx, balance).Error(0)
}

var testNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
