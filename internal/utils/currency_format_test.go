package utils

import (
	"testing"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency domain.Currency
		want     string
	}{
		{"usd thousands", "1234.56", domain.USD, "$1,234.56"},
		{"usd rounds half up", "0.125", domain.USD, "$0.13"},
		{"usd zero", "0", domain.USD, "$0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDisplay(decimal.RequireFromString(tt.amount), tt.currency))
		})
	}
}

func TestFormatDisplayEuroAndNegative(t *testing.T) {
	eur := FormatDisplay(decimal.RequireFromString("12.34"), domain.EUR)
	assert.Contains(t, eur, "€")
	assert.Contains(t, eur, "12.34")

	neg := FormatDisplay(decimal.RequireFromString("-5"), domain.USD)
	assert.Contains(t, neg, "-")
	assert.Contains(t, neg, "5.00")
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.30", FormatWithPrecision(decimal.RequireFromString("12.3"), 2))
	assert.Equal(t, "-1.00", FormatWithPrecision(decimal.NewFromInt(-1), 2))
}

func TestFormatDisplayBeyondInt64MinorUnits(t *testing.T) {
	huge := decimal.RequireFromString("100000000000000000.00")

	assert.Equal(t, "100000000000000000.00 EUR", FormatDisplay(huge, domain.EUR))
	assert.Equal(t, "-100000000000000000.00 EUR", FormatDisplay(huge.Neg(), domain.EUR))

	edge := FormatDisplay(decimal.RequireFromString("92233720368547758.07"), domain.USD)
	assert.Contains(t, edge, "$")
	assert.Contains(t, edge, "758.07")
	assert.NotContains(t, edge, "-")
}
