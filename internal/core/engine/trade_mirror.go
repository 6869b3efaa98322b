package engine

import (
	"time"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/utils/accounting"
)

// BuildTradeMirror builds the cash entry that mirrors t in the portfolio's
// pass-through account. The sequence is assigned by the caller.
func BuildTradeMirror(t domain.Trade, p domain.Portfolio, seq int, createdAt time.Time) (*domain.LedgerEntry, error) {
	delta, err := accounting.TradeCashDelta(t.Side, t.Quantity, t.Price, t.Fees)
	if err != nil {
		return nil, err
	}
	amount, err := domain.NewSignedMoney(delta, p.Currency)
	if err != nil {
		return nil, err
	}
	label := accounting.MirrorLabel(t)
	return domain.NewLedgerEntry(domain.NewLedgerEntryParams{
		AccountID: p.CashAccountID,
		Date:      t.Date,
		Sequence:  seq,
		Amount:    amount,
		Kind:      accounting.MirrorKind(amount.Amount()),
		Category:  accounting.TradeMirrorCategory,
		Label:     &label,
		CreatedAt: createdAt,
	})
}
