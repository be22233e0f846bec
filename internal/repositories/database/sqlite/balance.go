package sqlite

import (
	"context"

	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	"github.com/SscSPs/fintrack/internal/models"
	"github.com/SscSPs/fintrack/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// BalanceRepository keeps the owner's balance as one JSON document.
type BalanceRepository struct {
	store *Store
}

var _ portsrepo.BalanceRepository = (*BalanceRepository)(nil)

func (r *BalanceRepository) GetBalance(ctx context.Context, userID string) (*domain.Balance, error) {
	var m models.Balance
	found, err := r.store.read(ctx, userID, keyBalance, &m)
	if err != nil {
		return nil, err
	}
	if !found {
		return &domain.Balance{UserID: userID, Amount: decimal.Zero}, nil
	}
	b := mapping.ToDomainBalance(m)
	return &b, nil
}

// SetBalance overwrites the document; last write wins.
func (r *BalanceRepository) SetBalance(ctx context.Context, balance domain.Balance) error {
	var m models.Balance
	return r.store.mutate(ctx, balance.UserID, keyBalance, &m, func() error {
		m = mapping.ToModelBalance(balance)
		return nil
	})
}
