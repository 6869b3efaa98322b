package domain_test

import (
	"testing"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignedMoney(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain", raw: "12.34", want: "12.34"},
		{name: "surrounding spaces", raw: "  7.5 ", want: "7.50"},
		{name: "comma separator", raw: "1,25", want: "1.25"},
		{name: "negative", raw: "-300", want: "-300.00"},
		{name: "half up", raw: "0.005", want: "0.01"},
		{name: "below half", raw: "2.344", want: "2.34"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseSignedMoney(tt.raw, domain.EUR)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed())
			assert.Equal(t, domain.EUR, got.Currency())
		})
	}
}

func TestParseMoney_RejectsNegative(t *testing.T) {
	_, err := domain.ParseMoney("-0.01", domain.EUR)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	m, err := domain.ParseMoney("-0.004", domain.EUR)
	require.NoError(t, err, "quantizes to zero before the sign check")
	assert.True(t, m.IsZero())
}

func TestSignedMoney_Add(t *testing.T) {
	a, err := domain.ParseSignedMoney("10.10", domain.EUR)
	require.NoError(t, err)
	b, err := domain.ParseSignedMoney("-0.15", domain.EUR)
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "9.95", sum.StringFixed())

	usd, err := domain.NewSignedMoney(decimal.NewFromInt(1), domain.USD)
	require.NoError(t, err)
	_, err = a.Add(usd)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSignedMoney_EqualAndCmp(t *testing.T) {
	a, _ := domain.ParseSignedMoney("5", domain.EUR)
	b, _ := domain.ParseSignedMoney("5.00", domain.EUR)
	c, _ := domain.ParseSignedMoney("5.00", domain.USD)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, 0, a.Cmp(b))
	assert.Equal(t, -1, a.Cmp(c))
	assert.Equal(t, "-5.00 EUR", a.Neg().String())
	assert.Equal(t, "5.00 EUR", a.Neg().Abs().String())
}

func TestNewSignedMoney_InvalidCurrency(t *testing.T) {
	_, err := domain.NewSignedMoney(decimal.NewFromInt(1), domain.Currency("GBP"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseCurrency(t *testing.T) {
	c, err := domain.ParseCurrency(" usd ")
	require.NoError(t, err)
	assert.Equal(t, domain.USD, c)

	_, err = domain.ParseCurrency("JPY")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
