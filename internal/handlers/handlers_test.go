package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/SscSPs/fintrack/internal/core/domain"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/dto"
	"github.com/SscSPs/fintrack/internal/handlers"
	"github.com/SscSPs/fintrack/internal/middleware"
	"github.com/SscSPs/fintrack/internal/platform/config"
	"github.com/SscSPs/fintrack/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret-key-for-handler-tests"
	testIssuer    = "fintrack"
	testUserID    = "user-123"
)

type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	itemSvc       *MockItemService
	cardSvc       *MockCardService
	balanceSvc    *MockBalanceService
	reportingSvc  *MockReportingService
	authToken     string
	today         domain.YearMonth
	createdAtTime time.Time
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.itemSvc = new(MockItemService)
	s.cardSvc = new(MockCardService)
	s.balanceSvc = new(MockBalanceService)
	s.reportingSvc = new(MockReportingService)
	s.today = domain.YearMonth{Year: 2024, Month: 3}
	s.createdAtTime = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	cfg := &config.Config{JWTSecret: testJWTSecret, JWTIssuer: testIssuer, IsProduction: true}
	container := &portssvc.ServiceContainer{
		Item:      s.itemSvc,
		Card:      s.cardSvc,
		Balance:   s.balanceSvc,
		Reporting: s.reportingSvc,
	}

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, cfg, container, nil, nil)
	s.authToken = generateTestToken(s.T(), testUserID)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.itemSvc.AssertExpectations(s.T())
	s.cardSvc.AssertExpectations(s.T())
	s.balanceSvc.AssertExpectations(s.T())
	s.reportingSvc.AssertExpectations(s.T())
}

func generateTestToken(t *testing.T, userID string) string {
	token, err := utils.IssueAccessToken(userID, testJWTSecret, time.Hour, testIssuer)
	require.NoError(t, err)
	return token
}

func (s *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, "/api/v1"+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.authToken)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) installmentItem() *domain.LineItem {
	month, year, count := 1, 2024, 10
	cardID := "card-1"
	return &domain.LineItem{
		ItemID:                "item-1",
		UserID:                testUserID,
		Nature:                domain.Expense,
		Kind:                  domain.Installment,
		Amount:                decimal.NewFromInt(100),
		CardID:                &cardID,
		FirstInstallmentMonth: &month,
		FirstInstallmentYear:  &year,
		InstallmentCount:      &count,
		Description:           "Laptop",
		EntryDate:             time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		AuditFields:           domain.AuditFields{CreatedAt: s.createdAtTime, LastUpdatedAt: s.createdAtTime},
	}
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/items", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlerTestSuite) TestCreateItem_Success() {
	item := s.installmentItem()
	s.itemSvc.On("CreateItem", mock.Anything, mock.MatchedBy(func(req dto.CreateItemRequest) bool {
		return req.Nature == domain.Expense && req.Amount.Equal(decimal.NewFromInt(100)) && *req.InstallmentCount == 10
	}), testUserID).Return(item, nil).Once()

	w := s.do(http.MethodPost, "/items", map[string]any{
		"nature":                "EXPENSE",
		"kind":                  "INSTALLMENT",
		"amount":                100,
		"cardID":                "card-1",
		"firstInstallmentMonth": 1,
		"firstInstallmentYear":  2024,
		"installmentCount":      10,
		"description":           "Laptop",
	})

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.ItemResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("item-1", resp.ItemID)
	s.Equal("100.00", resp.Amount)
	s.Equal("2024-01-05", resp.EntryDate)
}

func (s *HandlerTestSuite) TestCreateItem_BindingErrors() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"negative amount", map[string]any{"nature": "EXPENSE", "amount": -5}},
		{"unknown nature", map[string]any{"nature": "GIFT", "amount": 5}},
		{"missing nature", map[string]any{"amount": 5}},
		{"bad month", map[string]any{"nature": "EXPENSE", "amount": 5, "firstInstallmentMonth": 13}},
		{"bad entry date", map[string]any{"nature": "EXPENSE", "amount": 5, "entryDate": "10/03/2024"}},
		{"amount beyond storage range", map[string]any{"nature": "EXPENSE", "amount": "1000000000000"}},
		{"too many installments", map[string]any{"nature": "EXPENSE", "kind": "INSTALLMENT", "amount": 5, "installmentCount": 601}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPost, "/items", tt.body)
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
	s.itemSvc.AssertNotCalled(s.T(), "CreateItem", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCreateItem_ServiceValidationError() {
	s.itemSvc.On("CreateItem", mock.Anything, mock.Anything, testUserID).
		Return(nil, fmt.Errorf("%w: installment items require a card", apperrors.ErrValidation)).Once()

	w := s.do(http.MethodPost, "/items", map[string]any{"nature": "EXPENSE", "kind": "INSTALLMENT", "amount": 10})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "installment items require a card")
}

func (s *HandlerTestSuite) TestGetItem_NotFound() {
	s.itemSvc.On("GetItemByID", mock.Anything, "missing", testUserID).
		Return(nil, fmt.Errorf("item missing: %w", apperrors.ErrNotFound)).Once()

	w := s.do(http.MethodGet, "/items/missing", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestGetItem_InternalErrorIsHidden() {
	s.itemSvc.On("GetItemByID", mock.Anything, "item-1", testUserID).
		Return(nil, fmt.Errorf("connection refused")).Once()

	w := s.do(http.MethodGet, "/items/item-1", nil)

	s.Equal(http.StatusInternalServerError, w.Code)
	s.NotContains(w.Body.String(), "connection refused")
}

func (s *HandlerTestSuite) TestListItems() {
	items := []domain.LineItem{*s.installmentItem()}
	s.itemSvc.On("ListItems", mock.Anything, dto.ListItemsParams{Limit: 1, NextToken: "abc"}, testUserID).
		Return(items, "next-page", nil).Once()

	w := s.do(http.MethodGet, "/items?limit=1&nextToken=abc", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListItemsResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Items, 1)
	s.Equal("next-page", resp.NextToken)
}

func (s *HandlerTestSuite) TestListItems_LimitOutOfRange() {
	w := s.do(http.MethodGet, "/items?limit=1000", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestUpdateItem() {
	item := s.installmentItem()
	item.Description = "Notebook"
	s.itemSvc.On("UpdateItem", mock.Anything, "item-1", mock.AnythingOfType("dto.UpdateItemRequest"), testUserID).
		Return(item, nil).Once()

	w := s.do(http.MethodPut, "/items/item-1", map[string]any{"nature": "EXPENSE", "amount": 100, "description": "Notebook"})

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "Notebook")
}

func (s *HandlerTestSuite) TestDeleteItem() {
	s.itemSvc.On("DeleteItem", mock.Anything, "item-1", testUserID).Return(nil).Once()

	w := s.do(http.MethodDelete, "/items/item-1", nil)

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *HandlerTestSuite) TestItemProgress() {
	item := s.installmentItem()
	asOf := domain.YearMonth{Year: 2024, Month: 3}
	progress := domain.InstallmentProgress{
		Paid: 3, Remaining: 7, Total: 10,
		ProgressPercent: decimal.NewFromInt(30),
		First:           domain.YearMonth{Year: 2024, Month: 1},
		Final:           domain.YearMonth{Year: 2024, Month: 10},
	}
	s.reportingSvc.On("ItemProgress", mock.Anything, testUserID, "item-1", asOf).Return(item, progress, nil).Once()

	w := s.do(http.MethodGet, "/items/item-1/progress?asOf=2024-03", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ItemProgressResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(3, resp.Paid)
	s.Equal(7, resp.Remaining)
	s.Equal("2024-10", resp.FinalMonth)
	s.Equal("700.00", resp.Exposure)
	s.Equal("30.00", resp.ProgressPercent)
}

func (s *HandlerTestSuite) TestItemProgress_BadAsOf() {
	w := s.do(http.MethodGet, "/items/item-1/progress?asOf=March", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestCreateCard() {
	card := &domain.Card{CardID: "card-1", UserID: testUserID, Name: "Visa", Limit: decimal.NewFromInt(1000)}
	s.cardSvc.On("CreateCard", mock.Anything, mock.MatchedBy(func(req dto.CreateCardRequest) bool {
		return req.Name == "Visa" && req.Limit.Equal(decimal.NewFromInt(1000))
	}), testUserID).Return(card, nil).Once()

	w := s.do(http.MethodPost, "/cards", map[string]any{"name": "Visa", "limit": "1000", "color": "#ff0000"})

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.CardResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("1000.00", resp.Limit)
}

func (s *HandlerTestSuite) TestCreateCard_LimitOutOfRange() {
	w := s.do(http.MethodPost, "/cards", map[string]any{"name": "Visa", "limit": -1})
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/cards", map[string]any{"name": "Visa", "limit": "1000000000000"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestCreateCard_LargestStoredLimit() {
	s.cardSvc.On("CreateCard", mock.Anything, mock.MatchedBy(func(req dto.CreateCardRequest) bool {
		return req.Limit.Equal(domain.MaxAmount)
	}), testUserID).Return(&domain.Card{CardID: "card-1", Name: "Black", Limit: domain.MaxAmount}, nil).Once()

	w := s.do(http.MethodPost, "/cards", map[string]any{"name": "Black", "limit": "999999999999.99"})

	s.Equal(http.StatusCreated, w.Code)
}

func (s *HandlerTestSuite) TestDeleteCard_NotFound() {
	s.cardSvc.On("DeleteCard", mock.Anything, "card-9", testUserID).Return(apperrors.ErrNotFound).Once()

	w := s.do(http.MethodDelete, "/cards/card-9", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestSetBalance() {
	tests := []struct {
		name string
		body any
		raw  string
	}{
		{"string with comma", map[string]any{"balance": "1234,56"}, "1234,56"},
		{"number", map[string]any{"balance": 99.5}, "99.5"},
		{"missing value", map[string]any{}, ""},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.balanceSvc.On("SetBalance", mock.Anything, tt.raw, testUserID).
				Return(&domain.Balance{UserID: testUserID, Amount: decimal.NewFromInt(1), LastUpdatedAt: s.createdAtTime}, nil).Once()

			w := s.do(http.MethodPut, "/balance", tt.body)

			s.Equal(http.StatusOK, w.Code)
			s.Contains(w.Body.String(), `"balance":"1.00"`)
		})
	}
}

func (s *HandlerTestSuite) TestGetBalance() {
	s.balanceSvc.On("GetBalance", mock.Anything, testUserID).
		Return(&domain.Balance{UserID: testUserID, Amount: decimal.RequireFromString("250.5")}, nil).Once()

	w := s.do(http.MethodGet, "/balance", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("250.50", resp.Balance)
	s.Nil(resp.LastUpdatedAt)
}

func (s *HandlerTestSuite) TestCardReport_DefaultsToCurrentMonth() {
	s.reportingSvc.On("Today").Return(s.today)
	s.reportingSvc.On("CardSummaries", mock.Anything, testUserID, s.today).Return([]domain.CardSummary{
		{CardTotals: domain.CardTotals{CardID: "gone", TotalExposure: decimal.NewFromInt(50), TotalThisMonth: decimal.NewFromInt(50)}},
	}, nil).Once()

	w := s.do(http.MethodGet, "/reports/cards", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.CardReportResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("2024-03", resp.AsOf)
	s.Require().Len(resp.Cards, 1)
	s.Equal(dto.CardNotFoundName, resp.Cards[0].Name)
	s.False(resp.Cards[0].Found)
}

func (s *HandlerTestSuite) TestOverview() {
	asOf := domain.YearMonth{Year: 2023, Month: 12}
	s.reportingSvc.On("Overview", mock.Anything, testUserID, asOf).Return(&domain.Overview{
		AsOf:        asOf,
		TotalIncome: decimal.NewFromInt(5000),
		Surplus:     decimal.NewFromInt(3010),
	}, nil).Once()

	w := s.do(http.MethodGet, "/reports/overview?asOf=2023-12", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.OverviewResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("5000.00", resp.TotalIncome)
	s.Equal("3010.00", resp.Surplus)
}

func (s *HandlerTestSuite) TestInstallmentReport() {
	s.reportingSvc.On("InstallmentsByFinalMonth", mock.Anything, testUserID).Return([]domain.MonthBucket{
		{YearMonth: domain.YearMonth{Year: 2024, Month: 10}, Total: decimal.NewFromInt(100), Items: []domain.LineItem{*s.installmentItem()}},
	}, nil).Once()

	w := s.do(http.MethodGet, "/reports/installments", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.InstallmentReportResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Len(resp.Buckets, 1)
	s.Equal("100.00", resp.Buckets[0].Total)
}

func (s *HandlerTestSuite) TestMonthlyTotals() {
	s.reportingSvc.On("MonthlyTotals", mock.Anything, testUserID, 2023).Return([]domain.MonthTotals{}, nil).Once()

	w := s.do(http.MethodGet, "/reports/monthly?year=2023", nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/reports/monthly?year=abc", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestProjection() {
	s.reportingSvc.On("Today").Return(s.today)
	s.reportingSvc.On("Projection", mock.Anything, testUserID, s.today, 0).Return([]domain.ProjectionRow{
		{YearMonth: s.today, Total: decimal.NewFromInt(100), ItemCount: 1},
	}, nil).Once()
	s.reportingSvc.On("Projection", mock.Anything, testUserID, s.today, 3).Return([]domain.ProjectionRow{}, nil).Once()

	w := s.do(http.MethodGet, "/reports/projection", nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/reports/projection?months=3", nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/reports/projection?months=0", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func TestRegisterRoutes_RateLimitAndMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	balanceSvc := new(MockBalanceService)
	balanceSvc.On("GetBalance", mock.Anything, testUserID).Return(&domain.Balance{UserID: testUserID}, nil)

	lim, err := middleware.NewRateLimiter("1-M")
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: testJWTSecret, JWTIssuer: testIssuer, IsProduction: true}
	router := gin.New()
	handlers.RegisterRoutes(router, cfg, &portssvc.ServiceContainer{Balance: balanceSvc}, nil, lim)

	token := generateTestToken(t, testUserID)
	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/api/v1/balance", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)

	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
