package engine_test

import (
	"testing"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }

func money(t *testing.T, raw string) domain.SignedMoney {
	t.Helper()
	m, err := domain.ParseSignedMoney(raw, domain.EUR)
	require.NoError(t, err)
	return m
}

func entry(t *testing.T, accountID, date string, seq int, amount string, kind domain.EntryKind) domain.LedgerEntry {
	t.Helper()
	e, err := domain.NewLedgerEntry(domain.NewLedgerEntryParams{
		AccountID: accountID,
		Date:      day(date),
		Sequence:  seq,
		Amount:    money(t, amount),
		Kind:      kind,
		Category:  "Misc",
	})
	require.NoError(t, err)
	return *e
}

func account(t *testing.T, id string, currency domain.Currency, opening string, accountType domain.AccountType) domain.Account {
	t.Helper()
	o, err := domain.ParseSignedMoney(opening, currency)
	require.NoError(t, err)
	a, err := domain.NewAccount(id, id, currency, o, day("2020-01-01"), accountType)
	require.NoError(t, err)
	return *a
}
