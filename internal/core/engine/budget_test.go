package engine_test

import (
	"testing"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/core/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categorized(t *testing.T, date, amount string, kind domain.EntryKind, category string, sub *string) domain.LedgerEntry {
	t.Helper()
	e := entry(t, "a", date, 1, amount, kind)
	p := e.Params()
	p.Category = category
	p.Subcategory = sub
	out, err := domain.NewLedgerEntry(p)
	require.NoError(t, err)
	return *out
}

func TestSummarizeBudget(t *testing.T) {
	entries := []domain.LedgerEntry{
		categorized(t, "2026-01-03", "2000", domain.KindIncome, "Salary", nil),
		categorized(t, "2026-01-04", "-30", domain.KindExpense, "food", ptr("Bakery")),
		categorized(t, "2026-01-05", "-500", domain.KindExpense, "Housing", ptr("Rent")),
		categorized(t, "2026-02-01", "-20", domain.KindExpense, "Food", ptr("bakery")),
		categorized(t, "2026-02-02", "-10", domain.KindExpense, "Food", nil),
		categorized(t, "2026-02-03", "-100", domain.KindTransfer, "Savings", nil),
	}

	s := engine.SummarizeBudget(entries, domain.EUR)

	require.Len(t, s.TotalsByKind, 3)
	assert.Equal(t, domain.KindExpense, s.TotalsByKind[0].Kind)
	assert.Equal(t, "-560.00", s.TotalsByKind[0].Total.StringFixed())
	assert.Equal(t, domain.KindIncome, s.TotalsByKind[1].Kind)
	assert.Equal(t, domain.KindTransfer, s.TotalsByKind[2].Kind)

	require.Len(t, s.ExpenseByCategory, 3)
	assert.Equal(t, "Housing", s.ExpenseByCategory[0].Category)
	assert.Equal(t, "-500.00", s.ExpenseByCategory[0].Total.StringFixed())
	assert.Equal(t, "Food", s.ExpenseByCategory[1].Category)
	assert.Equal(t, "food", s.ExpenseByCategory[2].Category)
	assert.Equal(t, "-30.00", s.ExpenseByCategory[2].Total.StringFixed())

	require.Len(t, s.ExpenseBySubcategory, 3)
	assert.Equal(t, "Rent", s.ExpenseBySubcategory[0].Subcategory)
	assert.Equal(t, "Bakery", s.ExpenseBySubcategory[1].Subcategory)
	assert.Equal(t, "bakery", s.ExpenseBySubcategory[2].Subcategory)

	require.Len(t, s.MonthlyTotalsByKind, 4)
	first := s.MonthlyTotalsByKind[0]
	assert.Equal(t, 2026, first.Year)
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, domain.KindExpense, first.Kind)
	assert.Equal(t, "-530.00", first.Total.StringFixed())
	assert.Equal(t, domain.KindTransfer, s.MonthlyTotalsByKind[3].Kind)
}

func TestSummarizeBudget_Deterministic(t *testing.T) {
	entries := []domain.LedgerEntry{
		categorized(t, "2026-01-04", "-30", domain.KindExpense, "B", ptr("x")),
		categorized(t, "2026-01-05", "-30", domain.KindExpense, "A", ptr("y")),
		categorized(t, "2026-01-06", "-30", domain.KindExpense, "c", ptr("z")),
	}
	first := engine.SummarizeBudget(entries, domain.EUR)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, engine.SummarizeBudget(entries, domain.EUR))
	}
	assert.Equal(t, "A", first.ExpenseByCategory[0].Category)
	assert.Equal(t, "c", first.ExpenseByCategory[2].Category)
}
