package engine_test

import (
	"testing"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/core/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelled(t *testing.T, e domain.LedgerEntry, category string, sub, label *string) domain.LedgerEntry {
	t.Helper()
	p := e.Params()
	p.Category = category
	p.Subcategory = sub
	p.Label = label
	out, err := domain.NewLedgerEntry(p)
	require.NoError(t, err)
	return *out
}

func queryFixture(t *testing.T) []domain.LedgerEntry {
	return []domain.LedgerEntry{
		labelled(t, entry(t, "a", "2026-01-02", 1, "-12.50", domain.KindExpense), "Food", ptr("Bakery"), ptr("Croissants")),
		labelled(t, entry(t, "a", "2026-01-01", 1, "2000", domain.KindIncome), "Salary", nil, ptr("January pay")),
		labelled(t, entry(t, "a", "2026-01-02", 2, "-80", domain.KindExpense), "food", ptr("Groceries"), nil),
		labelled(t, entry(t, "a", "2026-01-03", 1, "-300", domain.KindTransfer), "Savings", nil, ptr("to livret")),
	}
}

func seqs(entries []domain.LedgerEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Date.Format("01-02")+"#"+string(rune('0'+e.Sequence)))
	}
	return out
}

func TestApplyEntryQuery_Filters(t *testing.T) {
	entries := queryFixture(t)

	tests := []struct {
		name string
		q    engine.EntryQuery
		want []string
	}{
		{name: "no filter sorts by date", q: engine.EntryQuery{}, want: []string{"01-01#1", "01-02#1", "01-02#2", "01-03#1"}},
		{name: "date range inclusive", q: engine.EntryQuery{DateFrom: ptr(day("2026-01-02")), DateTo: ptr(day("2026-01-02"))}, want: []string{"01-02#1", "01-02#2"}},
		{name: "kinds", q: engine.EntryQuery{Kinds: []domain.EntryKind{domain.KindIncome, domain.KindTransfer}}, want: []string{"01-01#1", "01-03#1"}},
		{name: "categories exact", q: engine.EntryQuery{Categories: []string{"Food"}}, want: []string{"01-02#1"}},
		{name: "subcategories exclude nil", q: engine.EntryQuery{Subcategories: []string{"Groceries", "Bakery"}}, want: []string{"01-02#1", "01-02#2"}},
		{name: "q on label only", q: engine.EntryQuery{Q: "  PAY "}, want: []string{"01-01#1"}},
		{name: "q does not match category", q: engine.EntryQuery{Q: "food"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seqs(engine.ApplyEntryQuery(entries, tt.q)))
		})
	}
}

func TestApplyEntryQuery_Sort(t *testing.T) {
	entries := queryFixture(t)

	tests := []struct {
		by   engine.EntrySortField
		dir  engine.SortDirection
		want []string
	}{
		{by: engine.EntrySortDate, dir: engine.Desc, want: []string{"01-03#1", "01-02#2", "01-02#1", "01-01#1"}},
		{by: engine.EntrySortAmount, dir: engine.Asc, want: []string{"01-03#1", "01-02#2", "01-02#1", "01-01#1"}},
		{by: engine.EntrySortKind, dir: engine.Asc, want: []string{"01-02#1", "01-02#2", "01-01#1", "01-03#1"}},
		{by: engine.EntrySortCategory, dir: engine.Asc, want: []string{"01-02#1", "01-02#2", "01-01#1", "01-03#1"}},
		{by: engine.EntrySortSubcategory, dir: engine.Asc, want: []string{"01-01#1", "01-03#1", "01-02#1", "01-02#2"}},
		{by: engine.EntrySortLabel, dir: engine.Asc, want: []string{"01-02#2", "01-02#1", "01-01#1", "01-03#1"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.by)+"_"+string(tt.dir), func(t *testing.T) {
			got := engine.ApplyEntryQuery(entries, engine.EntryQuery{SortBy: tt.by, SortDir: tt.dir})
			assert.Equal(t, tt.want, seqs(got))
		})
	}
}

func TestParseEntrySortField(t *testing.T) {
	f, err := engine.ParseEntrySortField("")
	require.NoError(t, err)
	assert.Equal(t, engine.EntrySortDate, f)

	_, err = engine.ParseEntrySortField("created_at")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = engine.ParseSortDirection("sideways")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
