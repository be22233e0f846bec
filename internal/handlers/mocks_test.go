package handlers_test

import (
	"context"

	"github.com/SscSPs/fintrack/internal/core/domain"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ItemService ---
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) GetItemByID(ctx context.Context, itemID string, userID string) (*domain.LineItem, error) {
	args := m.Called(ctx, itemID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LineItem), args.Error(1)
}

func (m *MockItemService) ListItems(ctx context.Context, params dto.ListItemsParams, userID string) ([]domain.LineItem, string, error) {
	args := m.Called(ctx, params, userID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.LineItem), args.String(1), args.Error(2)
}

func (m *MockItemService) CreateItem(ctx context.Context, req dto.CreateItemRequest, userID string) (*domain.LineItem, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LineItem), args.Error(1)
}

func (m *MockItemService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, userID string) (*domain.LineItem, error) {
	args := m.Called(ctx, itemID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LineItem), args.Error(1)
}

func (m *MockItemService) DeleteItem(ctx context.Context, itemID string, userID string) error {
	args := m.Called(ctx, itemID, userID)
	return args.Error(0)
}

var _ portssvc.ItemSvcFacade = (*MockItemService)(nil)

// --- Mock CardService ---
type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) GetCardByID(ctx context.Context, cardID string, userID string) (*domain.Card, error) {
	args := m.Called(ctx, cardID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardService) ListCards(ctx context.Context, userID string) ([]domain.Card, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Card), args.Error(1)
}

func (m *MockCardService) CreateCard(ctx context.Context, req dto.CreateCardRequest, userID string) (*domain.Card, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardService) UpdateCard(ctx context.Context, cardID string, req dto.UpdateCardRequest, userID string) (*domain.Card, error) {
	args := m.Called(ctx, cardID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Card), args.Error(1)
}

func (m *MockCardService) DeleteCard(ctx context.Context, cardID string, userID string) error {
	args := m.Called(ctx, cardID, userID)
	return args.Error(0)
}

var _ portssvc.CardSvcFacade = (*MockCardService)(nil)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetBalance(ctx context.Context, userID string) (*domain.Balance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

func (m *MockBalanceService) SetBalance(ctx context.Context, raw string, userID string) (*domain.Balance, error) {
	args := m.Called(ctx, raw, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

var _ portssvc.BalanceSvc = (*MockBalanceService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Today() domain.YearMonth {
	args := m.Called()
	return args.Get(0).(domain.YearMonth)
}

func (m *MockReportingService) CardSummaries(ctx context.Context, userID string, asOf domain.YearMonth) ([]domain.CardSummary, error) {
	args := m.Called(ctx, userID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CardSummary), args.Error(1)
}

func (m *MockReportingService) InstallmentsByFinalMonth(ctx context.Context, userID string) ([]domain.MonthBucket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthBucket), args.Error(1)
}

func (m *MockReportingService) MonthlyTotals(ctx context.Context, userID string, year int) ([]domain.MonthTotals, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthTotals), args.Error(1)
}

func (m *MockReportingService) Projection(ctx context.Context, userID string, asOf domain.YearMonth, months int) ([]domain.ProjectionRow, error) {
	args := m.Called(ctx, userID, asOf, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProjectionRow), args.Error(1)
}

func (m *MockReportingService) Overview(ctx context.Context, userID string, asOf domain.YearMonth) (*domain.Overview, error) {
	args := m.Called(ctx, userID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Overview), args.Error(1)
}

func (m *MockReportingService) ItemProgress(ctx context.Context, userID string, itemID string, asOf domain.YearMonth) (*domain.LineItem, domain.InstallmentProgress, error) {
	args := m.Called(ctx, userID, itemID, asOf)
	if args.Get(0) == nil {
		return nil, args.Get(1).(domain.InstallmentProgress), args.Error(2)
	}
	return args.Get(0).(*domain.LineItem), args.Get(1).(domain.InstallmentProgress), args.Error(2)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)
