package accounting

import (
	"testing"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeCashDelta(t *testing.T) {
	tests := []struct {
		name     string
		side     domain.TradeSide
		quantity string
		price    string
		fees     string
		want     string
	}{
		{name: "buy pays gross plus fees", side: domain.Buy, quantity: "2", price: "100.00", fees: "1.00", want: "-201"},
		{name: "sell receives gross minus fees", side: domain.Sell, quantity: "2", price: "100.00", fees: "1.00", want: "199"},
		{name: "fractional quantity", side: domain.Buy, quantity: "0.5", price: "30000", fees: "0", want: "-15000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TradeCashDelta(tt.side,
				decimal.RequireFromString(tt.quantity),
				decimal.RequireFromString(tt.price),
				decimal.RequireFromString(tt.fees))
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}

	_, err := TradeCashDelta("HOLD", decimal.NewFromInt(1), decimal.NewFromInt(1), decimal.Zero)
	assert.Error(t, err)
}

func TestMirrorKindAndLabel(t *testing.T) {
	assert.Equal(t, domain.KindIncome, MirrorKind(decimal.NewFromInt(5)))
	assert.Equal(t, domain.KindExpense, MirrorKind(decimal.NewFromInt(-5)))

	tr := domain.Trade{Side: domain.Sell, InstrumentSymbol: "aapl"}
	assert.Equal(t, "SELL AAPL", MirrorLabel(tr))
	label := "rebalance"
	tr.Label = &label
	assert.Equal(t, "rebalance", MirrorLabel(tr))
}

func TestIsPassThroughAccount(t *testing.T) {
	assert.True(t, IsPassThroughAccount("pt_0123456789abcdef0123456789abcdef_cash"))
	assert.False(t, IsPassThroughAccount("checking"))
	assert.Equal(t, "Passerelle - PEA", PassThroughAccountName("PEA"))
}
