package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry is the ledger_entries table row. Amount is signed.
type LedgerEntry struct {
	EntryID      uuid.UUID       `db:"entry_id"`
	AccountID    string          `db:"account_id"`
	EntryDate    time.Time       `db:"entry_date"`
	Sequence     int             `db:"sequence"`
	Amount       decimal.Decimal `db:"amount"`
	CurrencyCode string          `db:"currency_code"`
	Kind         string          `db:"kind"`
	Category     string          `db:"category"`
	Subcategory  *string         `db:"subcategory"` // Nullable
	Label        *string         `db:"label"`       // Nullable
	CreatedAt    time.Time       `db:"created_at"`
	TransferID   *uuid.UUID      `db:"transfer_id"` // Nullable, set on both legs of a transfer
}
