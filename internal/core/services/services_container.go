package services

import (
	portsrepo "github.com/SscSPs/fintrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fintrack/internal/core/ports/services"
	"github.com/SscSPs/fintrack/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, clock portssvc.Clock) *portssvc.ServiceContainer {
	if clock == nil {
		clock = portssvc.SystemClock{}
	}

	return &portssvc.ServiceContainer{
		Item: NewItemService(repos.ItemRepo, repos.CardRepo,
			WithItemClock(clock),
			WithPageSize(cfg.ListPageSize),
		),
		Card:    NewCardService(repos.CardRepo, WithCardClock(clock)),
		Balance: NewBalanceService(repos.BalanceRepo, WithBalanceClock(clock)),
		Reporting: NewReportingService(repos.ItemRepo, repos.CardRepo, repos.BalanceRepo,
			WithReportingClock(clock),
			WithProjectionMonths(cfg.ProjectionMonths),
		),
	}
}
