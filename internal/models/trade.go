package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trade is the trades table row.
type Trade struct {
	TradeID           uuid.UUID       `db:"trade_id"`
	PortfolioID       uuid.UUID       `db:"portfolio_id"`
	TradeDate         time.Time       `db:"trade_date"`
	Side              string          `db:"side"`
	InstrumentSymbol  string          `db:"instrument_symbol"`
	Quantity          decimal.Decimal `db:"quantity"`
	Price             decimal.Decimal `db:"price"`
	Fees              decimal.Decimal `db:"fees"`
	CurrencyCode      string          `db:"currency_code"`
	Label             *string         `db:"label"`                // Nullable
	LinkedCashEntryID *uuid.UUID      `db:"linked_cash_entry_id"` // Nullable
}

// Instrument is the instruments table row.
type Instrument struct {
	Symbol       string `db:"symbol"`
	Kind         string `db:"kind"`
	CurrencyCode string `db:"currency_code"`
}
