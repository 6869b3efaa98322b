package engine

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
)

// SortDirection is asc or desc. Desc reverses the whole sort key.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

func ParseSortDirection(raw string) (SortDirection, error) {
	switch d := SortDirection(strings.ToLower(strings.TrimSpace(raw))); d {
	case "":
		return Asc, nil
	case Asc, Desc:
		return d, nil
	}
	return "", fmt.Errorf("%w: sort_dir must be asc or desc", apperrors.ErrValidation)
}

type EntrySortField string

const (
	EntrySortDate        EntrySortField = "date"
	EntrySortAmount      EntrySortField = "amount"
	EntrySortKind        EntrySortField = "kind"
	EntrySortCategory    EntrySortField = "category"
	EntrySortSubcategory EntrySortField = "subcategory"
	EntrySortLabel       EntrySortField = "label"
)

func ParseEntrySortField(raw string) (EntrySortField, error) {
	switch f := EntrySortField(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return EntrySortDate, nil
	case EntrySortDate, EntrySortAmount, EntrySortKind, EntrySortCategory, EntrySortSubcategory, EntrySortLabel:
		return f, nil
	}
	return "", fmt.Errorf("%w: unsupported sort_by %q", apperrors.ErrValidation, raw)
}

// EntryQuery filters and orders ledger entries. Empty slices mean no filter.
type EntryQuery struct {
	DateFrom      *time.Time
	DateTo        *time.Time
	Kinds         []domain.EntryKind
	Categories    []string
	Subcategories []string
	Q             string
	SortBy        EntrySortField
	SortDir       SortDirection
}

// Matches reports whether e passes every filter of q.
func (q EntryQuery) Matches(e domain.LedgerEntry) bool {
	if q.DateFrom != nil && e.Date.Before(domain.DateOf(*q.DateFrom)) {
		return false
	}
	if q.DateTo != nil && e.Date.After(domain.DateOf(*q.DateTo)) {
		return false
	}
	if len(q.Kinds) > 0 && !slices.Contains(q.Kinds, e.Kind) {
		return false
	}
	if len(q.Categories) > 0 && !slices.Contains(q.Categories, e.Category) {
		return false
	}
	if len(q.Subcategories) > 0 && (e.Subcategory == nil || !slices.Contains(q.Subcategories, *e.Subcategory)) {
		return false
	}
	if needle := strings.ToLower(strings.TrimSpace(q.Q)); needle != "" {
		if e.Label == nil || !strings.Contains(strings.ToLower(*e.Label), needle) {
			return false
		}
	}
	return true
}

// ApplyEntryQuery returns the entries matching q in the requested order.
func ApplyEntryQuery(entries []domain.LedgerEntry, q EntryQuery) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if q.Matches(e) {
			out = append(out, e)
		}
	}

	key := entryComparator(q.SortBy)
	if q.SortDir == Desc {
		slices.SortStableFunc(out, func(a, b domain.LedgerEntry) int { return key(b, a) })
	} else {
		slices.SortStableFunc(out, key)
	}
	return out
}

func entryComparator(by EntrySortField) func(a, b domain.LedgerEntry) int {
	switch by {
	case EntrySortAmount:
		return func(a, b domain.LedgerEntry) int {
			return cmp.Or(a.Amount.Amount().Cmp(b.Amount.Amount()), compareLedgerOrder(a, b))
		}
	case EntrySortKind:
		return func(a, b domain.LedgerEntry) int {
			return cmp.Or(cmp.Compare(a.Kind, b.Kind), compareLedgerOrder(a, b))
		}
	case EntrySortCategory:
		return func(a, b domain.LedgerEntry) int {
			return cmp.Or(
				cmp.Compare(foldString(a.Category), foldString(b.Category)),
				cmp.Compare(fold(a.Subcategory), fold(b.Subcategory)),
				compareLedgerOrder(a, b),
			)
		}
	case EntrySortSubcategory:
		return func(a, b domain.LedgerEntry) int {
			return cmp.Or(
				cmp.Compare(fold(a.Subcategory), fold(b.Subcategory)),
				cmp.Compare(foldString(a.Category), foldString(b.Category)),
				compareLedgerOrder(a, b),
			)
		}
	case EntrySortLabel:
		return func(a, b domain.LedgerEntry) int {
			return cmp.Or(cmp.Compare(fold(a.Label), fold(b.Label)), compareLedgerOrder(a, b))
		}
	}
	return compareLedgerOrder
}
