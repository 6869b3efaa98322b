package engine_test

import (
	"testing"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/core/engine"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trade(t *testing.T, portfolioID uuid.UUID, date string, side domain.TradeSide, symbol, qty string) domain.Trade {
	t.Helper()
	tr, err := domain.NewTrade(domain.NewTradeParams{
		PortfolioID:      portfolioID,
		Date:             day(date),
		Side:             side,
		InstrumentSymbol: symbol,
		Quantity:         decimal.RequireFromString(qty),
		Price:            decimal.NewFromInt(10),
		Fees:             decimal.Zero,
		Currency:         domain.EUR,
	})
	require.NoError(t, err)
	return *tr
}

func TestComputePositions(t *testing.T) {
	pid := uuid.New()
	other := uuid.New()
	trades := []domain.Trade{
		trade(t, pid, "2026-01-01", domain.Buy, "cw8", "3"),
		trade(t, pid, "2026-01-02", domain.Buy, "BTC", "0.5"),
		trade(t, pid, "2026-01-03", domain.Sell, "CW8", "1"),
		trade(t, pid, "2026-01-04", domain.Sell, "BTC", "0.5"),
		trade(t, pid, "2026-02-01", domain.Buy, "AAPL", "4"),
		trade(t, other, "2026-01-01", domain.Buy, "MSFT", "1"),
	}

	got := engine.ComputePositions(trades, pid, ptr(day("2026-01-31")))
	require.Len(t, got, 1)
	assert.Equal(t, "CW8", got[0].Symbol)
	assert.True(t, got[0].Quantity.Equal(decimal.NewFromInt(2)))

	all := engine.ComputePositions(trades, pid, nil)
	require.Len(t, all, 2)
	assert.Equal(t, "AAPL", all[0].Symbol)
	assert.Equal(t, "CW8", all[1].Symbol)
}
