package accounting

import (
	"fmt"
	"strings"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TradeMirrorCategory is the category of every cash entry mirroring a trade.
const TradeMirrorCategory = "INVEST"

// PassThroughAccountName is the display name of a portfolio's cash account.
func PassThroughAccountName(portfolioName string) string {
	return "Passerelle - " + portfolioName
}

// IsPassThroughAccount reports whether accountID was provisioned for a portfolio.
func IsPassThroughAccount(accountID string) bool {
	return strings.HasPrefix(accountID, "pt_") && strings.HasSuffix(accountID, "_cash")
}

// TradeCashDelta returns the signed cash movement of a trade:
// BUY is -(quantity*price + fees), SELL is +(quantity*price - fees).
func TradeCashDelta(side domain.TradeSide, quantity, price, fees decimal.Decimal) (decimal.Decimal, error) {
	gross := quantity.Mul(price)
	switch side {
	case domain.Buy:
		return gross.Add(fees).Neg(), nil
	case domain.Sell:
		return gross.Sub(fees), nil
	}
	return decimal.Zero, fmt.Errorf("unknown trade side '%s'", side)
}

// MirrorKind picks the entry kind of a cash mirror from the sign of its delta.
func MirrorKind(delta decimal.Decimal) domain.EntryKind {
	if delta.IsPositive() {
		return domain.KindIncome
	}
	return domain.KindExpense
}

// MirrorLabel is the trade label, or "<SIDE> <SYMBOL>" when the trade has none.
func MirrorLabel(t domain.Trade) string {
	if t.Label != nil && strings.TrimSpace(*t.Label) != "" {
		return strings.TrimSpace(*t.Label)
	}
	return fmt.Sprintf("%s %s", t.Side, domain.NormalizeSymbol(t.InstrumentSymbol))
}
