package services

import (
	"context"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/dto"
)

// TradeReaderSvc defines read operations for trades
type TradeReaderSvc interface {
	// ListTrades returns a filtered, sorted page of the trades of a portfolio.
	ListTrades(ctx context.Context, portfolioID string, params dto.ListTradesParams) (*dto.ListTradesResponse, error)

	// GetPositions folds the trades of a portfolio into net quantities per symbol.
	GetPositions(ctx context.Context, portfolioID string, params dto.PositionsParams) (*dto.PositionsResponse, error)
}

// TradeWriterSvc defines write operations for trades. Each write keeps the cash
// mirror in the portfolio's pass-through account consistent with the trade.
type TradeWriterSvc interface {
	CreateTrade(ctx context.Context, portfolioID string, req dto.CreateTradeRequest) (*domain.Trade, error)
	UpdateTrade(ctx context.Context, portfolioID, tradeID string, req dto.UpdateTradeRequest) (*domain.Trade, error)
	DeleteTrade(ctx context.Context, portfolioID, tradeID string) error
}

// TradeSvcFacade combines all trade-related service interfaces
type TradeSvcFacade interface {
	TradeReaderSvc
	TradeWriterSvc
}
