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

type TradeSortField string

const (
	TradeSortDate     TradeSortField = "date"
	TradeSortQuantity TradeSortField = "quantity"
	TradeSortPrice    TradeSortField = "price"
	TradeSortFees     TradeSortField = "fees"
	TradeSortSide     TradeSortField = "side"
	TradeSortSymbol   TradeSortField = "instrument_symbol"
	TradeSortLabel    TradeSortField = "label"
)

func ParseTradeSortField(raw string) (TradeSortField, error) {
	switch f := TradeSortField(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return TradeSortDate, nil
	case TradeSortDate, TradeSortQuantity, TradeSortPrice, TradeSortFees, TradeSortSide, TradeSortSymbol, TradeSortLabel:
		return f, nil
	}
	return "", fmt.Errorf("%w: unsupported sort_by %q", apperrors.ErrValidation, raw)
}

// TradeQuery filters and orders trades. Symbols are compared uppercased.
type TradeQuery struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Sides    []domain.TradeSide
	Symbols  []string
	Q        string
	SortBy   TradeSortField
	SortDir  SortDirection
}

func (q TradeQuery) Matches(t domain.Trade) bool {
	if q.DateFrom != nil && t.Date.Before(domain.DateOf(*q.DateFrom)) {
		return false
	}
	if q.DateTo != nil && t.Date.After(domain.DateOf(*q.DateTo)) {
		return false
	}
	if len(q.Sides) > 0 && !slices.Contains(q.Sides, t.Side) {
		return false
	}
	if len(q.Symbols) > 0 {
		sym := domain.NormalizeSymbol(t.InstrumentSymbol)
		if !slices.ContainsFunc(q.Symbols, func(s string) bool { return domain.NormalizeSymbol(s) == sym }) {
			return false
		}
	}
	if needle := strings.ToLower(strings.TrimSpace(q.Q)); needle != "" {
		hay := t.InstrumentSymbol
		if t.Label != nil {
			hay += " " + *t.Label
		}
		if !strings.Contains(strings.ToLower(hay), needle) {
			return false
		}
	}
	return true
}

// ApplyTradeQuery returns the trades matching q. Ties break on (date, id).
func ApplyTradeQuery(trades []domain.Trade, q TradeQuery) []domain.Trade {
	out := make([]domain.Trade, 0, len(trades))
	for _, t := range trades {
		if q.Matches(t) {
			out = append(out, t)
		}
	}
	key := tradeComparator(q.SortBy)
	if q.SortDir == Desc {
		slices.SortStableFunc(out, func(a, b domain.Trade) int { return key(b, a) })
	} else {
		slices.SortStableFunc(out, key)
	}
	return out
}

func tradeTieBreak(a, b domain.Trade) int {
	return cmp.Or(a.Date.Compare(b.Date), strings.Compare(a.ID.String(), b.ID.String()))
}

func tradeLabel(t domain.Trade) string {
	if t.Label == nil {
		return ""
	}
	return strings.ToLower(*t.Label)
}

func tradeComparator(by TradeSortField) func(a, b domain.Trade) int {
	switch by {
	case TradeSortQuantity:
		return func(a, b domain.Trade) int { return cmp.Or(a.Quantity.Cmp(b.Quantity), tradeTieBreak(a, b)) }
	case TradeSortPrice:
		return func(a, b domain.Trade) int { return cmp.Or(a.Price.Cmp(b.Price), tradeTieBreak(a, b)) }
	case TradeSortFees:
		return func(a, b domain.Trade) int { return cmp.Or(a.Fees.Cmp(b.Fees), tradeTieBreak(a, b)) }
	case TradeSortSide:
		return func(a, b domain.Trade) int { return cmp.Or(cmp.Compare(a.Side, b.Side), tradeTieBreak(a, b)) }
	case TradeSortSymbol:
		return func(a, b domain.Trade) int {
			return cmp.Or(cmp.Compare(domain.NormalizeSymbol(a.InstrumentSymbol), domain.NormalizeSymbol(b.InstrumentSymbol)), tradeTieBreak(a, b))
		}
	case TradeSortLabel:
		return func(a, b domain.Trade) int { return cmp.Or(cmp.Compare(tradeLabel(a), tradeLabel(b)), tradeTieBreak(a, b)) }
	}
	return tradeTieBreak
}
