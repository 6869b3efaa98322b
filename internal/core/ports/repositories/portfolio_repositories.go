package repositories

import (
	"context"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/google/uuid"
)

// PortfolioRepositoryFacade stores portfolios.
type PortfolioRepositoryFacade interface {
	FindPortfolioByID(ctx context.Context, portfolioID uuid.UUID) (*domain.Portfolio, error)
	ListPortfolios(ctx context.Context) ([]domain.Portfolio, error)
	SavePortfolio(ctx context.Context, portfolio domain.Portfolio) error
	DeletePortfolio(ctx context.Context, portfolioID uuid.UUID) error
}

// SnapshotRepositoryFacade stores portfolio valuations.
type SnapshotRepositoryFacade interface {
	FindSnapshotByID(ctx context.Context, snapshotID uuid.UUID) (*domain.PortfolioSnapshot, error)
	// ListSnapshots returns the snapshots of one portfolio, or all when portfolioID is uuid.Nil,
	// ordered by date then id.
	ListSnapshots(ctx context.Context, portfolioID uuid.UUID) ([]domain.PortfolioSnapshot, error)
	SaveSnapshot(ctx context.Context, snapshot domain.PortfolioSnapshot) error
	DeleteSnapshot(ctx context.Context, snapshotID uuid.UUID) error
	DeleteSnapshotsByPortfolio(ctx context.Context, portfolioID uuid.UUID) error
}

// TradeRepositoryFacade stores trades.
type TradeRepositoryFacade interface {
	FindTradeByID(ctx context.Context, tradeID uuid.UUID) (*domain.Trade, error)
	// ListTrades returns the trades of one portfolio, or all when portfolioID is uuid.Nil.
	ListTrades(ctx context.Context, portfolioID uuid.UUID) ([]domain.Trade, error)
	SaveTrade(ctx context.Context, trade domain.Trade) error
	UpdateTrade(ctx context.Context, trade domain.Trade) error
	DeleteTrade(ctx context.Context, tradeID uuid.UUID) error
	DeleteTradesByPortfolio(ctx context.Context, portfolioID uuid.UUID) error
}

// InstrumentRepositoryFacade stores the instrument registry keyed by symbol.
type InstrumentRepositoryFacade interface {
	FindInstrument(ctx context.Context, symbol string) (*domain.Instrument, error)
	ListInstruments(ctx context.Context) ([]domain.Instrument, error)
	SaveInstrument(ctx context.Context, instrument domain.Instrument) error
	DeleteInstrument(ctx context.Context, symbol string) error
}
