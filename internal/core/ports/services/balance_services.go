package services

import (
	"context"

	"github.com/SscSPs/fintrack/internal/core/domain"
)

// BalanceSvc manages the owner's single balance value.
type BalanceSvc interface {
	GetBalance(ctx context.Context, userID string) (*domain.Balance, error)

	// SetBalance stores the value parsed from raw. Text that does not parse, and
	// negative values, are stored as zero.
	SetBalance(ctx context.Context, raw string, userID string) (*domain.Balance, error)
}
