package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fintrack/internal/apperrors"
	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	itemRepo         portsrepo.LineItemReader
	cardRepo         portsrepo.CardReader
	balanceRepo      portsrepo.BalanceRepository
	projectionMonths int
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock sets the clock that decides the current month.
func WithReportingClock(clock portssvc.Clock) ReportingServiceOption {
	return func(s *reportingService) {
		s.Clock = clock
	}
}

// WithProjectionMonths sets the default projection window.
func WithProjectionMonths(n int) ReportingServiceOption {
	return func(s *reportingService) {
		if n > 0 {
			s.projectionMonths = n
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(itemRepo portsrepo.LineItemReader, cardRepo portsrepo.CardReader, balanceRepo portsrepo.BalanceRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		itemRepo:         itemRepo,
		cardRepo:         cardRepo,
		balanceRepo:      balanceRepo,
		projectionMonths: accounting.DefaultProjectionMonths,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// loadItems reads every item of the owner and normalizes it for the calculators.
func (s *reportingService) loadItems(ctx context.Context, userID string) ([]domain.LineItem, error) {
	items, err := s.itemRepo.ListItems(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load items for report")
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	return accounting.SanitizeAll(items), nil
}

// CardSummaries groups card-linked expenses per card
func (s *reportingService) CardSummaries(ctx context.Context, userID string, asOf domain.YearMonth) ([]domain.CardSummary, error) {
	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	cards, err := s.cardRepo.ListCards(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load cards for report")
		return nil, fmt.Errorf("failed to load cards: %w", err)
	}

	cardByID := make(map[string]domain.Card, len(cards))
	for _, c := range cards {
		cardByID[c.CardID] = c
	}
	itemsByCard := make(map[string][]domain.LineItem)
	for _, item := range items {
		if item.Nature != domain.Expense || !item.HasCard() {
			continue
		}
		itemsByCard[*item.CardID] = append(itemsByCard[*item.CardID], item)
	}

	totals := accounting.AggregateByCard(items, cards, asOf)
	order := accounting.OrderByThisMonth(totals)

	summaries := make([]domain.CardSummary, 0, len(order))
	for _, id := range order {
		t := totals[id]
		summary := domain.CardSummary{
			CardTotals:     t,
			PercentUsed:    decimal.Zero,
			RawPercentUsed: decimal.Zero,
		}
		if card, ok := cardByID[id]; ok {
			summary.Card = &card
			summary.Found = true
			summary.PercentUsed = accounting.PercentUsed(t.TotalExposure, card.Limit)
			summary.RawPercentUsed = accounting.RawPercentUsed(t.TotalExposure, card.Limit)
			summary.OverLimit = accounting.OverLimit(t.TotalExposure, card.Limit)
		}

		sorted := accounting.SortCardItems(itemsByCard[id], asOf)
		summary.Items = make([]domain.CardItem, len(sorted))
		for i, item := range sorted {
			ci := domain.CardItem{Item: item, Exposure: accounting.ItemExposure(item, asOf)}
			if p, ok := accounting.Progress(item, asOf); ok {
				ci.Progress = &p
			}
			summary.Items[i] = ci
		}
		summaries = append(summaries, summary)
	}

	s.LogDebug(ctx, "Card summaries generated",
		slog.String("as_of", asOf.String()),
		slog.Int("card_count", len(summaries)))
	return summaries, nil
}

// InstallmentsByFinalMonth buckets installment purchases by their last month
func (s *reportingService) InstallmentsByFinalMonth(ctx context.Context, userID string) ([]domain.MonthBucket, error) {
	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return accounting.GroupByFinalMonth(items), nil
}

// MonthlyTotals returns the yearly income/expense chart
func (s *reportingService) MonthlyTotals(ctx context.Context, userID string, year int) ([]domain.MonthTotals, error) {
	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return accounting.GroupByMonth(items, year), nil
}

// Projection returns the forward installment load
func (s *reportingService) Projection(ctx context.Context, userID string, asOf domain.YearMonth, months int) ([]domain.ProjectionRow, error) {
	if months <= 0 {
		months = s.projectionMonths
	}
	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return accounting.ProjectMonths(items, asOf, months), nil
}

// Overview generates the dashboard summary
func (s *reportingService) Overview(ctx context.Context, userID string, asOf domain.YearMonth) (*domain.Overview, error) {
	items, err := s.loadItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	balance, err := s.balanceRepo.GetBalance(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load balance for overview")
		return nil, fmt.Errorf("failed to load balance: %w", err)
	}

	income, expense := accounting.Totals(items)
	surplus := income.Sub(expense)
	overview := &domain.Overview{
		AsOf:                  asOf,
		TotalIncome:           income,
		TotalExpense:          expense,
		Surplus:               surplus,
		Balance:               balance.Amount,
		NextBalance:           accounting.NextBalance(balance.Amount, surplus),
		TotalExposure:         accounting.TotalExposure(items, asOf),
		InstallmentsThisMonth: accounting.InstallmentsDueThisMonth(items, asOf),
		ItemCount:             len(items),
	}

	s.LogDebug(ctx, "Overview generated",
		slog.String("as_of", asOf.String()),
		slog.Int("item_count", overview.ItemCount))
	return overview, nil
}

// ItemProgress returns the schedule figures of one installment item
func (s *reportingService) ItemProgress(ctx context.Context, userID string, itemID string, asOf domain.YearMonth) (*domain.LineItem, domain.InstallmentProgress, error) {
	item, err := s.itemRepo.FindItemByID(ctx, userID, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load item for progress", slog.String("item_id", itemID))
		}
		return nil, domain.InstallmentProgress{}, err
	}

	clean := accounting.Sanitize(*item)
	progress, ok := accounting.Progress(clean, asOf)
	if !ok {
		return nil, domain.InstallmentProgress{}, fmt.Errorf("%w: item %s has no installment schedule", apperrors.ErrValidation, itemID)
	}
	return &clean, progress, nil
}
