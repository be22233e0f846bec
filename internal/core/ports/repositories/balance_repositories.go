package repositories

import (
	"context"

	"github.com/SscSPs/fintrack/internal/core/domain"
)

// BalanceRepository stores the single balance value of each owner.
type BalanceRepository interface {
	// GetBalance returns a zero balance when the owner never set one.
	GetBalance(ctx context.Context, userID string) (*domain.Balance, error)

	// SetBalance overwrites the owner's balance.
	SetBalance(ctx context.Context, balance domain.Balance) error
}
