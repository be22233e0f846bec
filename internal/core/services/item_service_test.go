package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/core/services"
	"github.com/SscSPs/fintrack/internal/dto"
	"github.com/SscSPs/fintrack/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ItemServiceTestSuite struct {
	suite.Suite
	itemRepo *MockItemRepository
	cardRepo *MockCardRepository
	service  portssvc.ItemSvcFacade
	ctx      context.Context
	userID   string
}

func (suite *ItemServiceTestSuite) SetupTest() {
	suite.itemRepo = new(MockItemRepository)
	suite.cardRepo = new(MockCardRepository)
	suite.service = services.NewItemService(suite.itemRepo, suite.cardRepo,
		services.WithItemClock(portssvc.FixedClock(testNow)),
		services.WithPageSize(2),
	)
	suite.ctx = context.Background()
	suite.userID = "user-1"
}

func (suite *ItemServiceTestSuite) TestCreateItem_FixedExpenseDefaults() {
	req := dto.CreateItemRequest{
		Nature:      domain.Expense,
		Amount:      decimal.RequireFromString("120.456"),
		Description: "  Rent ",
		// Schedule fields on a fixed item are dropped
		FirstInstallmentMonth: intPtr(3),
	}

	suite.itemRepo.On("SaveItem", suite.ctx, mock.MatchedBy(func(i domain.LineItem) bool {
		return i.Kind == domain.Fixed && i.UserID == suite.userID && i.FirstInstallmentMonth == nil
	})).Return(nil).Once()

	item, err := suite.service.CreateItem(suite.ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(item.ItemID)
	suite.Equal(domain.Fixed, item.Kind)
	suite.Equal("Rent", item.Description)
	suite.True(item.Amount.Equal(decimal.RequireFromString("120.46")))
	suite.Equal(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), item.EntryDate)
	suite.Equal(testNow, item.CreatedAt)
	suite.Equal(suite.userID, item.CreatedBy)
	suite.itemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestCreateItem_Installment() {
	req := dto.CreateItemRequest{
		Nature:                domain.Expense,
		Kind:                  domain.Installment,
		Amount:                decimal.NewFromInt(100),
		CardID:                strPtr("card-1"),
		FirstInstallmentMonth: intPtr(1),
		FirstInstallmentYear:  intPtr(2024),
		InstallmentCount:      intPtr(10),
		EntryDate:             strPtr("2024-01-05"),
	}

	suite.cardRepo.On("FindCardByID", suite.ctx, suite.userID, "card-1").Return(&domain.Card{CardID: "card-1"}, nil).Once()
	suite.itemRepo.On("SaveItem", suite.ctx, mock.AnythingOfType("domain.LineItem")).Return(nil).Once()

	item, err := suite.service.CreateItem(suite.ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(item.HasSchedule())
	suite.Equal("card-1", *item.CardID)
	suite.Equal(10, *item.InstallmentCount)
	suite.Equal(time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), item.EntryDate)
	suite.cardRepo.AssertExpectations(suite.T())
	suite.itemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestCreateItem_ValidationErrors() {
	base := func() dto.CreateItemRequest {
		return dto.CreateItemRequest{
			Nature:                domain.Expense,
			Kind:                  domain.Installment,
			Amount:                decimal.NewFromInt(10),
			CardID:                strPtr("card-1"),
			FirstInstallmentMonth: intPtr(1),
			FirstInstallmentYear:  intPtr(2024),
			InstallmentCount:      intPtr(3),
		}
	}

	cases := map[string]func(r *dto.CreateItemRequest){
		"unknown nature":      func(r *dto.CreateItemRequest) { r.Nature = "GIFT" },
		"negative amount":     func(r *dto.CreateItemRequest) { r.Amount = decimal.NewFromInt(-1) },
		"unknown kind":        func(r *dto.CreateItemRequest) { r.Kind = "LEASE" },
		"income installment":  func(r *dto.CreateItemRequest) { r.Nature = domain.Income },
		"missing count":       func(r *dto.CreateItemRequest) { r.InstallmentCount = nil },
		"month out of range":  func(r *dto.CreateItemRequest) { r.FirstInstallmentMonth = intPtr(13) },
		"zero count":          func(r *dto.CreateItemRequest) { r.InstallmentCount = intPtr(0) },
		"count too large":     func(r *dto.CreateItemRequest) { r.InstallmentCount = intPtr(domain.MaxInstallmentCount + 1) },
		"amount too large":    func(r *dto.CreateItemRequest) { r.Amount = decimal.RequireFromString("1000000000000") },
		"installment no card": func(r *dto.CreateItemRequest) { r.CardID = nil },
		"bad entry date":      func(r *dto.CreateItemRequest) { r.EntryDate = strPtr("05/01/2024") },
	}

	suite.cardRepo.On("FindCardByID", suite.ctx, suite.userID, "card-1").Return(&domain.Card{CardID: "card-1"}, nil)

	for name, mutate := range cases {
		suite.Run(name, func() {
			req := base()
			mutate(&req)
			_, err := suite.service.CreateItem(suite.ctx, req, suite.userID)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.itemRepo.AssertNotCalled(suite.T(), "SaveItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestCreateItem_UnknownCard() {
	req := dto.CreateItemRequest{Nature: domain.Expense, Amount: decimal.NewFromInt(5), CardID: strPtr("ghost")}
	suite.cardRepo.On("FindCardByID", suite.ctx, suite.userID, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateItem(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.itemRepo.AssertNotCalled(suite.T(), "SaveItem", mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestCreateItem_IncomeDropsCard() {
	req := dto.CreateItemRequest{Nature: domain.Income, Amount: decimal.NewFromInt(3000), CardID: strPtr("card-1")}
	suite.itemRepo.On("SaveItem", suite.ctx, mock.AnythingOfType("domain.LineItem")).Return(nil).Once()

	item, err := suite.service.CreateItem(suite.ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Nil(item.CardID)
	suite.cardRepo.AssertNotCalled(suite.T(), "FindCardByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ItemServiceTestSuite) TestCreateItem_RepositoryError() {
	req := dto.CreateItemRequest{Nature: domain.Income, Amount: decimal.NewFromInt(1)}
	dbErr := errors.New("db down")
	suite.itemRepo.On("SaveItem", suite.ctx, mock.Anything).Return(dbErr).Once()

	_, err := suite.service.CreateItem(suite.ctx, req, suite.userID)

	suite.ErrorIs(err, dbErr)
}

func (suite *ItemServiceTestSuite) TestListItems_Paging() {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	page := []domain.LineItem{
		{ItemID: "a", AuditFields: domain.AuditFields{CreatedAt: t0}},
		{ItemID: "b", AuditFields: domain.AuditFields{CreatedAt: t0.Add(time.Minute)}},
		{ItemID: "c", AuditFields: domain.AuditFields{CreatedAt: t0.Add(2 * time.Minute)}},
	}
	suite.itemRepo.On("ListItemsPage", suite.ctx, suite.userID, (*portsrepo.ItemCursor)(nil), 3).Return(page, nil).Once()

	items, next, err := suite.service.ListItems(suite.ctx, dto.ListItemsParams{}, suite.userID)

	suite.Require().NoError(err)
	suite.Len(items, 2)
	suite.Require().NotEmpty(next)

	createdAt, id, err := pagination.DecodeToken(next)
	suite.Require().NoError(err)
	suite.Equal("b", id)
	suite.True(createdAt.Equal(page[1].CreatedAt))

	// The token is turned back into a cursor on the following call.
	suite.itemRepo.On("ListItemsPage", suite.ctx, suite.userID, mock.MatchedBy(func(c *portsrepo.ItemCursor) bool {
		return c != nil && c.ItemID == "b"
	}), 3).Return(page[2:], nil).Once()

	items, next, err = suite.service.ListItems(suite.ctx, dto.ListItemsParams{NextToken: next}, suite.userID)
	suite.Require().NoError(err)
	suite.Len(items, 1)
	suite.Empty(next)
	suite.itemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestListItems_BadToken() {
	_, _, err := suite.service.ListItems(suite.ctx, dto.ListItemsParams{NextToken: "%%%"}, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ItemServiceTestSuite) TestListItems_EmptyIsNotNil() {
	suite.itemRepo.On("ListItemsPage", suite.ctx, suite.userID, (*portsrepo.ItemCursor)(nil), 11).Return(nil, nil).Once()

	items, next, err := suite.service.ListItems(suite.ctx, dto.ListItemsParams{Limit: 10}, suite.userID)

	suite.Require().NoError(err)
	suite.NotNil(items)
	suite.Empty(items)
	suite.Empty(next)
}

func (suite *ItemServiceTestSuite) TestUpdateItem_KeepsCreationAudit() {
	created := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.LineItem{
		ItemID: "item-1", UserID: suite.userID, Nature: domain.Expense, Kind: domain.Fixed,
		Amount:      decimal.NewFromInt(10),
		AuditFields: domain.AuditFields{CreatedAt: created, CreatedBy: suite.userID},
	}
	suite.itemRepo.On("FindItemByID", suite.ctx, suite.userID, "item-1").Return(existing, nil).Once()
	suite.itemRepo.On("UpdateItem", suite.ctx, mock.AnythingOfType("domain.LineItem")).Return(nil).Once()

	req := dto.UpdateItemRequest{Nature: domain.Income, Amount: decimal.NewFromInt(99), Description: "Salary"}
	item, err := suite.service.UpdateItem(suite.ctx, "item-1", req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Income, item.Nature)
	suite.Equal("Salary", item.Description)
	suite.Equal(created, item.CreatedAt)
	suite.Equal(testNow, item.LastUpdatedAt)
	suite.itemRepo.AssertExpectations(suite.T())
}

func (suite *ItemServiceTestSuite) TestUpdateItem_NotFound() {
	suite.itemRepo.On("FindItemByID", suite.ctx, suite.userID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateItem(suite.ctx, "missing", dto.UpdateItemRequest{Nature: domain.Income}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ItemServiceTestSuite) TestDeleteItem() {
	suite.itemRepo.On("DeleteItem", suite.ctx, suite.userID, "item-1").Return(nil).Once()
	suite.itemRepo.On("DeleteItem", suite.ctx, suite.userID, "missing").Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.DeleteItem(suite.ctx, "item-1", suite.userID))
	suite.ErrorIs(suite.service.DeleteItem(suite.ctx, "missing", suite.userID), apperrors.ErrNotFound)
}

func TestItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ItemServiceTestSuite))
}
