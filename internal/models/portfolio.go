package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Portfolio is the portfolios table row.
type Portfolio struct {
	PortfolioID   uuid.UUID `db:"portfolio_id"`
	Name          string    `db:"name"`
	CurrencyCode  string    `db:"currency_code"`
	PortfolioType string    `db:"portfolio_type"`
	OpenedOn      time.Time `db:"opened_on"`
	CashAccountID string    `db:"cash_account_id"`
}

// PortfolioSnapshot is the portfolio_snapshots table row.
type PortfolioSnapshot struct {
	SnapshotID   uuid.UUID       `db:"snapshot_id"`
	PortfolioID  uuid.UUID       `db:"portfolio_id"`
	SnapshotDate time.Time       `db:"snapshot_date"`
	Value        decimal.Decimal `db:"value"`
	CurrencyCode string          `db:"currency_code"`
	Note         *string         `db:"note"` // Nullable
}
