package engine

import (
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Position is the net quantity held of one instrument.
type Position struct {
	Symbol   string
	Quantity decimal.Decimal
}

// ComputePositions folds BUY (+) and SELL (-) quantities per symbol for one
// portfolio, as of an inclusive date. Flat positions are dropped.
func ComputePositions(trades []domain.Trade, portfolioID uuid.UUID, asOf *time.Time) []Position {
	qty := make(map[string]decimal.Decimal)
	for _, t := range trades {
		if t.PortfolioID != portfolioID {
			continue
		}
		if asOf != nil && t.Date.After(domain.DateOf(*asOf)) {
			continue
		}
		sym := domain.NormalizeSymbol(t.InstrumentSymbol)
		if t.Side == domain.Buy {
			qty[sym] = qty[sym].Add(t.Quantity)
		} else {
			qty[sym] = qty[sym].Sub(t.Quantity)
		}
	}

	out := make([]Position, 0, len(qty))
	for sym, q := range qty {
		if q.IsZero() {
			continue
		}
		out = append(out, Position{Symbol: sym, Quantity: q})
	}
	slices.SortFunc(out, func(a, b Position) int { return strings.Compare(a.Symbol, b.Symbol) })
	return out
}
