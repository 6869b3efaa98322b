package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	opened := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	acc, err := domain.NewAccount(" main ", " Main account ", domain.EUR, eur(t, "1000"), opened, "")
	require.NoError(t, err)
	assert.Equal(t, "main", acc.ID)
	assert.Equal(t, "Main account", acc.Name)
	assert.Equal(t, domain.Checking, acc.AccountType)

	usdOpening, err := domain.NewSignedMoney(decimal.Zero, domain.USD)
	require.NoError(t, err)
	_, err = domain.NewAccount("x", "X", domain.EUR, usdOpening, opened, domain.Savings)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewAccount("", "X", domain.EUR, eur(t, "0"), opened, domain.Savings)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewAccount("x", "X", domain.EUR, eur(t, "0"), time.Time{}, domain.Savings)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseAccountType(t *testing.T) {
	got, err := domain.ParseAccountType("savings")
	require.NoError(t, err)
	assert.Equal(t, domain.Savings, got)

	_, err = domain.ParseAccountType("BROKERAGE")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNewPortfolio(t *testing.T) {
	id := uuid.MustParse("6f1c2d3e-4a5b-4c6d-8e7f-9a0b1c2d3e4f")
	p, err := domain.NewPortfolio(id, " Broker ", domain.EUR, domain.PortfolioPEA, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Broker", p.Name)
	assert.Equal(t, "pt_6f1c2d3e4a5b4c6d8e7f9a0b1c2d3e4f_cash", p.CashAccountID)

	_, err = domain.NewPortfolio(uuid.Nil, "P", domain.EUR, domain.PortfolioType("IRA"), time.Now())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNewPortfolioSnapshot_NoteTrimmed(t *testing.T) {
	value, err := domain.ParseMoney("1500", domain.EUR)
	require.NoError(t, err)

	s, err := domain.NewPortfolioSnapshot(uuid.Nil, uuid.New(), time.Now(), value, strPtr("   "))
	require.NoError(t, err)
	assert.Nil(t, s.Note)

	s, err = domain.NewPortfolioSnapshot(uuid.Nil, uuid.New(), time.Now(), value, strPtr(" broker statement "))
	require.NoError(t, err)
	require.NotNil(t, s.Note)
	assert.Equal(t, "broker statement", *s.Note)
}
