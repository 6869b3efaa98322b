package engine_test

import (
	"testing"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/core/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetWorth(t *testing.T) {
	accounts := []domain.Account{
		account(t, "a", domain.EUR, "100", domain.Checking),
		account(t, "b", domain.EUR, "50", domain.Savings),
	}
	entries := []domain.LedgerEntry{
		entry(t, "a", "2026-01-01", 1, "-30", domain.KindTransfer),
		entry(t, "b", "2026-01-01", 1, "30", domain.KindTransfer),
		entry(t, "a", "2026-03-01", 1, "1000", domain.KindIncome),
		entry(t, "ghost", "2026-01-01", 1, "1", domain.KindIncome),
	}

	total, err := engine.NetWorth(accounts, entries, ptr(day("2026-02-01")), domain.EUR)
	require.NoError(t, err)
	assert.Equal(t, "150.00 EUR", total.String())

	total, err = engine.NetWorth(accounts, entries, nil, domain.EUR)
	require.NoError(t, err)
	assert.Equal(t, "1150.00", total.StringFixed())
}

func TestNetWorth_MultipleCurrenciesUnsupported(t *testing.T) {
	accounts := []domain.Account{
		account(t, "eur", domain.EUR, "100", domain.Checking),
		account(t, "usd", domain.USD, "100", domain.Checking),
	}

	_, err := engine.NetWorth(accounts, nil, nil, domain.EUR)
	assert.ErrorIs(t, err, apperrors.ErrUnsupported)
	assert.Contains(t, err.Error(), "multiple currencies")

	_, err = engine.NetWorthTimeseries(accounts, nil, day("2026-01-01"), day("2026-01-02"), engine.Daily, domain.EUR)
	assert.ErrorIs(t, err, apperrors.ErrUnsupported)
}

func TestNetWorth_NoAccountsUsesFallback(t *testing.T) {
	total, err := engine.NetWorth(nil, nil, nil, domain.USD)
	require.NoError(t, err)
	assert.Equal(t, "0.00 USD", total.String())
}

func TestGroupedNetWorth(t *testing.T) {
	accounts := []domain.Account{
		account(t, "c1", domain.EUR, "10", domain.Checking),
		account(t, "s1", domain.EUR, "20", domain.Savings),
		account(t, "c2", domain.EUR, "5", domain.Checking),
	}

	groups, err := engine.GroupedNetWorth(accounts, nil, nil, domain.EUR)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, domain.Checking, groups[0].AccountType)
	assert.Equal(t, "15.00", groups[0].Total.StringFixed())
	assert.Equal(t, domain.Savings, groups[1].AccountType)
	assert.Equal(t, "20.00", groups[1].Total.StringFixed())
}

func TestNetWorthTimeseries_SumsBucketWise(t *testing.T) {
	accounts := []domain.Account{
		account(t, "a", domain.EUR, "100", domain.Checking),
		account(t, "b", domain.EUR, "0", domain.Savings),
	}
	entries := []domain.LedgerEntry{
		entry(t, "a", "2026-01-01", 1, "20", domain.KindIncome),
		entry(t, "b", "2026-01-02", 1, "-5", domain.KindExpense),
	}

	points, err := engine.NetWorthTimeseries(accounts, entries, day("2026-01-01"), day("2026-01-02"), engine.Daily, domain.EUR)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "2026-01-01", points[0].Bucket)
	assert.Equal(t, "100.00", points[0].BalanceStart.StringFixed())
	assert.Equal(t, "120.00", points[0].BalanceEnd.StringFixed())
	assert.Equal(t, "115.00", points[1].BalanceEnd.StringFixed())
	assert.Equal(t, "-5.00", points[1].Net.StringFixed())
}

func TestNetWorthTimeseries_NoAccountsIsGapless(t *testing.T) {
	points, err := engine.NetWorthTimeseries(nil, nil, day("2026-01-01"), day("2026-01-03"), engine.Daily, domain.EUR)
	require.NoError(t, err)
	assert.Len(t, points, 3)
}
