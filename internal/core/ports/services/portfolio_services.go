package services

import (
	"context"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/dto"
)

// PortfolioReaderSvc defines read operations for portfolios and their snapshots
type PortfolioReaderSvc interface {
	GetPortfolio(ctx context.Context, portfolioID string) (*domain.Portfolio, error)
	ListPortfolios(ctx context.Context) ([]domain.Portfolio, error)
	ListSnapshots(ctx context.Context, portfolioID string) ([]domain.PortfolioSnapshot, error)
}

// PortfolioWriterSvc defines write operations for portfolios and their snapshots
type PortfolioWriterSvc interface {
	// CreatePortfolio also provisions the portfolio's pass-through cash account.
	CreatePortfolio(ctx context.Context, req dto.CreatePortfolioRequest) (*domain.Portfolio, error)

	// DeletePortfolio removes the portfolio with its snapshots, trades, cash account and cash entries.
	DeletePortfolio(ctx context.Context, portfolioID string) error

	CreateSnapshot(ctx context.Context, portfolioID string, req dto.CreateSnapshotRequest) (*domain.PortfolioSnapshot, error)
	DeleteSnapshot(ctx context.Context, portfolioID, snapshotID string) error
}

// PortfolioSvcFacade combines all portfolio-related service interfaces
type PortfolioSvcFacade interface {
	PortfolioReaderSvc
	PortfolioWriterSvc
}

// InstrumentSvcFacade manages the instrument registry.
type InstrumentSvcFacade interface {
	CreateInstrument(ctx context.Context, req dto.CreateInstrumentRequest) (*domain.Instrument, error)
	ListInstruments(ctx context.Context) ([]domain.Instrument, error)
	DeleteInstrument(ctx context.Context, symbol string) error
}
