package pgsql

import (
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the relational repositories on one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ItemRepo:    newPgxItemRepository(dbPool),
		CardRepo:    newPgxCardRepository(dbPool),
		BalanceRepo: newPgxBalanceRepository(dbPool),
	}
}
