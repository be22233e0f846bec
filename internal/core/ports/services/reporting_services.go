package services

import (
	"context"

	"github.com/SscSPs/fintrack/internal/core/domain"
)

// ReportingService defines the read-only views computed from the owner's items.
// Every report is computed as of a reference month.
type ReportingService interface {
	// Today returns the current month according to the service clock.
	Today() domain.YearMonth

	// CardSummaries groups card-linked expenses per card, largest monthly bill first.
	CardSummaries(ctx context.Context, userID string, asOf domain.YearMonth) ([]domain.CardSummary, error)

	// InstallmentsByFinalMonth groups installment purchases by the month of their last installment.
	InstallmentsByFinalMonth(ctx context.Context, userID string) ([]domain.MonthBucket, error)

	// MonthlyTotals returns twelve income/expense rows for the given year.
	MonthlyTotals(ctx context.Context, userID string, year int) ([]domain.MonthTotals, error)

	// Projection returns the installment load of the next months starting at asOf.
	// A non-positive months uses the configured default.
	Projection(ctx context.Context, userID string, asOf domain.YearMonth, months int) ([]domain.ProjectionRow, error)

	// Overview generates the dashboard summary.
	Overview(ctx context.Context, userID string, asOf domain.YearMonth) (*domain.Overview, error)

	// ItemProgress returns the schedule figures and exposure of one installment item.
	ItemProgress(ctx context.Context, userID string, itemID string, asOf domain.YearMonth) (*domain.LineItem, domain.InstallmentProgress, error)
}
