package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradeSide string

const (
	Buy  TradeSide = "BUY"
	Sell TradeSide = "SELL"
)

func (s TradeSide) IsValid() bool {
	return s == Buy || s == Sell
}

func ParseTradeSide(raw string) (TradeSide, error) {
	s := TradeSide(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: invalid trade side %q", apperrors.ErrValidation, raw)
	}
	return s, nil
}

// Trade is a buy or sell of an instrument inside a portfolio. LinkedCashEntryID
// points at the mirrored entry in the portfolio's pass-through account.
type Trade struct {
	ID                uuid.UUID
	PortfolioID       uuid.UUID
	Date              time.Time
	Side              TradeSide
	InstrumentSymbol  string
	Quantity          decimal.Decimal
	Price             decimal.Decimal
	Fees              decimal.Decimal
	Currency          Currency
	Label             *string
	LinkedCashEntryID *uuid.UUID
}

type NewTradeParams struct {
	ID                uuid.UUID
	PortfolioID       uuid.UUID
	Date              time.Time
	Side              TradeSide
	InstrumentSymbol  string
	Quantity          decimal.Decimal
	Price             decimal.Decimal
	Fees              decimal.Decimal
	Currency          Currency
	Label             *string
	LinkedCashEntryID *uuid.UUID
}

// NewTrade validates p: quantity and price must be > 0, fees >= 0.
func NewTrade(p NewTradeParams) (*Trade, error) {
	if p.PortfolioID == uuid.Nil {
		return nil, fmt.Errorf("%w: trade portfolio_id is required", apperrors.ErrValidation)
	}
	if p.Date.IsZero() {
		return nil, fmt.Errorf("%w: trade date is required", apperrors.ErrValidation)
	}
	if !p.Side.IsValid() {
		return nil, fmt.Errorf("%w: invalid trade side %q", apperrors.ErrValidation, p.Side)
	}
	symbol := NormalizeSymbol(p.InstrumentSymbol)
	if symbol == "" {
		return nil, fmt.Errorf("%w: trade instrument_symbol cannot be empty", apperrors.ErrValidation)
	}
	if !p.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: trade quantity must be > 0", apperrors.ErrValidation)
	}
	if !p.Price.IsPositive() {
		return nil, fmt.Errorf("%w: trade price must be > 0", apperrors.ErrValidation)
	}
	if p.Fees.IsNegative() {
		return nil, fmt.Errorf("%w: trade fees must be >= 0", apperrors.ErrValidation)
	}
	if !p.Currency.IsValid() {
		return nil, fmt.Errorf("%w: invalid currency %q", apperrors.ErrValidation, p.Currency)
	}
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	var linked *uuid.UUID
	if p.LinkedCashEntryID != nil {
		l := *p.LinkedCashEntryID
		linked = &l
	}
	return &Trade{
		ID:                id,
		PortfolioID:       p.PortfolioID,
		Date:              DateOf(p.Date),
		Side:              p.Side,
		InstrumentSymbol:  symbol,
		Quantity:          p.Quantity,
		Price:             p.Price,
		Fees:              p.Fees,
		Currency:          p.Currency,
		Label:             TrimOrNil(p.Label),
		LinkedCashEntryID: linked,
	}, nil
}

// Params returns the constructor inputs that reproduce t.
func (t Trade) Params() NewTradeParams {
	return NewTradeParams{
		ID:                t.ID,
		PortfolioID:       t.PortfolioID,
		Date:              t.Date,
		Side:              t.Side,
		InstrumentSymbol:  t.InstrumentSymbol,
		Quantity:          t.Quantity,
		Price:             t.Price,
		Fees:              t.Fees,
		Currency:          t.Currency,
		Label:             t.Label,
		LinkedCashEntryID: t.LinkedCashEntryID,
	}
}
