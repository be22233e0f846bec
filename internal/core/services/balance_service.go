package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fintrack/internal/core/domain"
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/utils/accounting"
)

// balanceService implements the BalanceSvc interface
type balanceService struct {
	BaseService
	balanceRepo portsrepo.BalanceRepository
}

// BalanceServiceOption is a functional option for configuring the balance service
type BalanceServiceOption func(*balanceService)

// WithBalanceClock sets the clock used for the update timestamp.
func WithBalanceClock(clock portssvc.Clock) BalanceServiceOption {
	return func(s *balanceService) {
		s.Clock = clock
	}
}

// NewBalanceService creates a new balance service with the provided options
func NewBalanceService(repo portsrepo.BalanceRepository, options ...BalanceServiceOption) portssvc.BalanceSvc {
	svc := &balanceService{balanceRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

func (s *balanceService) GetBalance(ctx context.Context, userID string) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetBalance(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load balance")
		return nil, fmt.Errorf("failed to load balance: %w", err)
	}
	return balance, nil
}

func (s *balanceService) SetBalance(ctx context.Context, raw string, userID string) (*domain.Balance, error) {
	balance := domain.Balance{
		UserID:        userID,
		Amount:        accounting.SanitizeBalanceInput(raw),
		LastUpdatedAt: s.Now(),
	}
	if err := s.balanceRepo.SetBalance(ctx, balance); err != nil {
		s.LogError(ctx, err, "Failed to store balance")
		return nil, fmt.Errorf("failed to store balance: %w", err)
	}
	s.LogInfo(ctx, "Balance updated", slog.String("amount", balance.Amount.StringFixed(2)))
	return &balance, nil
}
