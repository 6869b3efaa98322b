package utils

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
)

// FormatDisplay renders amount the way a person reads it, e.g. "€1,234.56".
// Amounts are rounded to the currency's minor unit first. Amounts whose minor
// units do not fit in an int64 fall back to "1234.56 EUR".
// Example: 12.345 EUR returns "€12.35"
func FormatDisplay(amount decimal.Decimal, currency domain.Currency) string {
	cur := money.GetCurrency(string(currency))
	if cur == nil {
		return FormatWithPrecision(amount, domain.MoneyScale) + " " + string(currency)
	}
	minor := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	if minor.GreaterThan(maxMinorUnits) || minor.LessThan(minMinorUnits) {
		return FormatWithPrecision(amount, cur.Fraction) + " " + cur.Code
	}
	return money.New(minor.IntPart(), cur.Code).Display()
}

// FormatWithPrecision formats an amount with the given precision, keeping trailing zeros.
// Example: amount 12.3 with precision 2 returns "12.30"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
