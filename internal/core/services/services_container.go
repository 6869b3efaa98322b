package services

import (
	"fmt"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// recorder may be nil, in which case no operation counts are kept.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, recorder OperationRecorder) (*portssvc.ServiceContainer, error) {
	fallback, err := domain.ParseCurrency(cfg.DefaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("default currency: %w", err)
	}

	var opts []ServiceOption
	if recorder != nil {
		opts = append(opts, WithRecorder(recorder))
	}

	return &portssvc.ServiceContainer{
		Account:    NewAccountService(repos.TxManager, repos.AccountRepo, repos.EntryRepo, opts...),
		Entry:      NewEntryService(repos.TxManager, repos.AccountRepo, repos.EntryRepo, repos.TradeRepo, opts...),
		Transfer:   NewTransferService(repos.TxManager, repos.AccountRepo, repos.EntryRepo, opts...),
		Portfolio:  NewPortfolioService(repos, opts...),
		Instrument: NewInstrumentService(repos.InstrumentRepo, opts...),
		Trade:      NewTradeService(repos, opts...),
		Reporting:  NewReportingService(repos, fallback, opts...),
	}, nil
}
