package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	"github.com/SscSPs/fintrack/internal/models"
	"github.com/SscSPs/fintrack/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxBalanceRepository stores one saldo row per owner.
type PgxBalanceRepository struct {
	BaseRepository
}

func newPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepository {
	return &PgxBalanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BalanceRepository = (*PgxBalanceRepository)(nil)

// GetBalance returns a zero balance when the owner has no row yet.
func (r *PgxBalanceRepository) GetBalance(ctx context.Context, userID string) (*domain.Balance, error) {
	var m models.Balance
	err := r.Pool.QueryRow(ctx, `SELECT user_id, amount, last_updated_at FROM saldo WHERE user_id = $1;`, userID).
		Scan(&m.UserID, &m.Amount, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.Balance{UserID: userID, Amount: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("failed to load balance: %w", err)
	}
	b := mapping.ToDomainBalance(m)
	return &b, nil
}

// SetBalance upserts the owner's balance.
func (r *PgxBalanceRepository) SetBalance(ctx context.Context, balance domain.Balance) error {
	m := mapping.ToModelBalance(balance)
	query := `
		INSERT INTO saldo (user_id, amount, last_updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET amount = EXCLUDED.amount, last_updated_at = EXCLUDED.last_updated_at;`

	if _, err := r.Pool.Exec(ctx, query, m.UserID, m.Amount, m.LastUpdatedAt); err != nil {
		return fmt.Errorf("failed to store balance: %w", err)
	}
	return nil
}
