package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the accounts table row.
type Account struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	CurrencyCode   string          `db:"currency_code"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	OpenedOn       time.Time       `db:"opened_on"`
	AccountType    string          `db:"account_type"`
}
