package dto

import (
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/core/engine"
)

// CreateTradeRequest defines the data needed to record a trade.
type CreateTradeRequest struct {
	Date             string  `json:"date" binding:"required,isodate"`
	Side             string  `json:"side" binding:"required,oneof=BUY SELL"`
	InstrumentSymbol string  `json:"instrument_symbol" binding:"required"`
	Quantity         string  `json:"quantity" binding:"required,decimal" example:"10"`
	Price            string  `json:"price" binding:"required,decimal" example:"101.25"`
	Fees             string  `json:"fees" binding:"omitempty,decimal" example:"1.99"` // Defaults to 0
	Label            *string `json:"label"`
}

// UpdateTradeRequest holds the optional changes to a trade. The cash mirror is rebuilt.
type UpdateTradeRequest struct {
	Date     *string `json:"date" binding:"omitempty,isodate"`
	Side     *string `json:"side" binding:"omitempty,oneof=BUY SELL"`
	Quantity *string `json:"quantity" binding:"omitempty,decimal"`
	Price    *string `json:"price" binding:"omitempty,decimal"`
	Fees     *string `json:"fees" binding:"omitempty,decimal"`
	Label    *string `json:"label"`
}

// ListTradesParams defines query parameters for listing trades of a portfolio.
type ListTradesParams struct {
	DateFrom  string   `form:"date_from" binding:"omitempty,isodate"`
	DateTo    string   `form:"date_to" binding:"omitempty,isodate"`
	Sides     []string `form:"side"`
	Symbols   []string `form:"symbol"`
	Q         string   `form:"q"`
	SortBy    string   `form:"sort_by" binding:"omitempty,oneof=date quantity price fees side instrument_symbol label"`
	SortDir   string   `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
	Limit     int      `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string   `form:"next_token"`
}

// TradeResponse defines the data returned for a trade.
type TradeResponse struct {
	ID               string  `json:"id"`
	PortfolioID      string  `json:"portfolio_id"`
	Date             string  `json:"date"`
	Side             string  `json:"side"`
	InstrumentSymbol string  `json:"instrument_symbol"`
	Quantity         string  `json:"quantity"`
	Price            string  `json:"price"`
	Fees             string  `json:"fees"`
	Currency         string  `json:"currency"`
	Label            *string `json:"label"`
	LinkedCashTxID   *string `json:"linked_cash_tx_id"`
}

// ListTradesResponse wraps one page of trades.
type ListTradesResponse struct {
	Trades    []TradeResponse `json:"trades"`
	NextToken *string         `json:"next_token,omitempty"`
}

// PositionsParams defines query parameters of the positions endpoint.
type PositionsParams struct {
	AsOf string `form:"as_of" binding:"omitempty,isodate"`
}

// PositionResponse is the net quantity held of one instrument.
type PositionResponse struct {
	Symbol   string `json:"symbol"`
	Quantity string `json:"quantity"`
}

// PositionsResponse wraps the positions of a portfolio.
type PositionsResponse struct {
	PortfolioID string             `json:"portfolio_id"`
	AsOf        *string            `json:"as_of"`
	Positions   []PositionResponse `json:"positions"`
}

func ToTradeResponse(t *domain.Trade) TradeResponse {
	var linked *string
	if t.LinkedCashEntryID != nil {
		s := t.LinkedCashEntryID.String()
		linked = &s
	}
	return TradeResponse{
		ID:               t.ID.String(),
		PortfolioID:      t.PortfolioID.String(),
		Date:             formatDate(t.Date),
		Side:             string(t.Side),
		InstrumentSymbol: t.InstrumentSymbol,
		Quantity:         t.Quantity.String(),
		Price:            t.Price.String(),
		Fees:             t.Fees.String(),
		Currency:         string(t.Currency),
		Label:            t.Label,
		LinkedCashTxID:   linked,
	}
}

func ToTradeResponses(trades []domain.Trade) []TradeResponse {
	res := make([]TradeResponse, len(trades))
	for i := range trades {
		res[i] = ToTradeResponse(&trades[i])
	}
	return res
}

func ToPositionsResponse(portfolioID string, asOf *string, positions []engine.Position) PositionsResponse {
	res := make([]PositionResponse, len(positions))
	for i, p := range positions {
		res[i] = PositionResponse{Symbol: p.Symbol, Quantity: p.Quantity.String()}
	}
	return PositionsResponse{PortfolioID: portfolioID, AsOf: asOf, Positions: res}
}
