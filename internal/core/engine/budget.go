package engine

import (
	"cmp"
	"slices"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

type KindTotal struct {
	Kind  domain.EntryKind
	Total domain.SignedMoney
}

type CategoryTotal struct {
	Category string
	Total    domain.SignedMoney
}

type SubcategoryTotal struct {
	Category    string
	Subcategory string
	Total       domain.SignedMoney
}

type MonthlyKindTotal struct {
	Year  int
	Month int
	Kind  domain.EntryKind
	Total domain.SignedMoney
}

// BudgetSummary bundles the four rollups reported for an account.
type BudgetSummary struct {
	Currency             domain.Currency
	TotalsByKind         []KindTotal
	ExpenseByCategory    []CategoryTotal
	ExpenseBySubcategory []SubcategoryTotal
	MonthlyTotalsByKind  []MonthlyKindTotal
}

// SummarizeBudget computes every rollup over entries.
func SummarizeBudget(entries []domain.LedgerEntry, currency domain.Currency) BudgetSummary {
	return BudgetSummary{
		Currency:             currency,
		TotalsByKind:         TotalsByKind(entries, currency),
		ExpenseByCategory:    ExpenseTotalsByCategory(entries, currency),
		ExpenseBySubcategory: ExpenseTotalsBySubcategory(entries, currency),
		MonthlyTotalsByKind:  MonthlyTotalsByKind(entries, currency),
	}
}

// TotalsByKind sums signed amounts per kind, sorted by kind name.
func TotalsByKind(entries []domain.LedgerEntry, currency domain.Currency) []KindTotal {
	acc := make(map[domain.EntryKind]decimal.Decimal)
	for _, e := range entries {
		acc[e.Kind] = acc[e.Kind].Add(e.Amount.Amount())
	}
	out := make([]KindTotal, 0, len(acc))
	for k, v := range acc {
		out = append(out, KindTotal{Kind: k, Total: mustSigned(v, currency)})
	}
	slices.SortFunc(out, func(a, b KindTotal) int { return cmp.Compare(a.Kind, b.Kind) })
	return out
}

// ExpenseTotalsByCategory sums EXPENSE entries per category. Largest spend
// (most negative) first, then case-folded category.
func ExpenseTotalsByCategory(entries []domain.LedgerEntry, currency domain.Currency) []CategoryTotal {
	acc := make(map[string]decimal.Decimal)
	for _, e := range entries {
		if e.Kind != domain.KindExpense {
			continue
		}
		acc[e.Category] = acc[e.Category].Add(e.Amount.Amount())
	}
	out := make([]CategoryTotal, 0, len(acc))
	for c, v := range acc {
		out = append(out, CategoryTotal{Category: c, Total: mustSigned(v, currency)})
	}
	slices.SortFunc(out, func(a, b CategoryTotal) int {
		if c := a.Total.Amount().Cmp(b.Total.Amount()); c != 0 {
			return c
		}
		if c := cmp.Compare(foldString(a.Category), foldString(b.Category)); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}

type subcategoryKey struct {
	category    string
	subcategory string
}

// ExpenseTotalsBySubcategory sums EXPENSE entries per (category, subcategory).
// Entries without a subcategory are skipped.
func ExpenseTotalsBySubcategory(entries []domain.LedgerEntry, currency domain.Currency) []SubcategoryTotal {
	acc := make(map[subcategoryKey]decimal.Decimal)
	for _, e := range entries {
		if e.Kind != domain.KindExpense || e.Subcategory == nil {
			continue
		}
		k := subcategoryKey{category: e.Category, subcategory: *e.Subcategory}
		acc[k] = acc[k].Add(e.Amount.Amount())
	}
	out := make([]SubcategoryTotal, 0, len(acc))
	for k, v := range acc {
		out = append(out, SubcategoryTotal{Category: k.category, Subcategory: k.subcategory, Total: mustSigned(v, currency)})
	}
	slices.SortFunc(out, func(a, b SubcategoryTotal) int {
		if c := a.Total.Amount().Cmp(b.Total.Amount()); c != 0 {
			return c
		}
		if c := cmp.Compare(foldString(a.Category), foldString(b.Category)); c != 0 {
			return c
		}
		if c := cmp.Compare(foldString(a.Subcategory), foldString(b.Subcategory)); c != 0 {
			return c
		}
		return cmp.Compare(a.Category+"\x00"+a.Subcategory, b.Category+"\x00"+b.Subcategory)
	})
	return out
}

type monthKindKey struct {
	year  int
	month int
	kind  domain.EntryKind
}

// MonthlyTotalsByKind sums signed amounts per (year, month, kind).
func MonthlyTotalsByKind(entries []domain.LedgerEntry, currency domain.Currency) []MonthlyKindTotal {
	acc := make(map[monthKindKey]decimal.Decimal)
	for _, e := range entries {
		k := monthKindKey{year: e.Date.Year(), month: int(e.Date.Month()), kind: e.Kind}
		acc[k] = acc[k].Add(e.Amount.Amount())
	}
	out := make([]MonthlyKindTotal, 0, len(acc))
	for k, v := range acc {
		out = append(out, MonthlyKindTotal{Year: k.year, Month: k.month, Kind: k.kind, Total: mustSigned(v, currency)})
	}
	slices.SortFunc(out, func(a, b MonthlyKindTotal) int {
		return cmp.Or(
			cmp.Compare(a.Year, b.Year),
			cmp.Compare(a.Month, b.Month),
			cmp.Compare(a.Kind, b.Kind),
		)
	})
	return out
}
