package engine

import (
	"fmt"
	"slices"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
)

// EntryWithBalance pairs an entry with the account balance right after it.
type EntryWithBalance struct {
	Entry        domain.LedgerEntry
	BalanceAfter domain.SignedMoney
}

// SortEntries returns a copy of entries in canonical ledger order (date, sequence).
func SortEntries(entries []domain.LedgerEntry) []domain.LedgerEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, compareLedgerOrder)
	return out
}

func compareLedgerOrder(a, b domain.LedgerEntry) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return a.Sequence - b.Sequence
}

// RunningBalance folds entries of a single account onto opening in canonical order.
// All entries must share the account and the currency of opening.
func RunningBalance(entries []domain.LedgerEntry, opening domain.SignedMoney) ([]EntryWithBalance, error) {
	if len(entries) == 0 {
		return []EntryWithBalance{}, nil
	}
	sorted := SortEntries(entries)

	accountID := sorted[0].AccountID
	currency := sorted[0].Amount.Currency()
	if opening.Currency() != currency {
		return nil, fmt.Errorf("%w: opening balance currency %s does not match entries currency %s",
			apperrors.ErrValidation, opening.Currency(), currency)
	}
	for _, e := range sorted {
		if e.AccountID != accountID {
			return nil, fmt.Errorf("%w: running balance over mixed accounts %q and %q",
				apperrors.ErrValidation, accountID, e.AccountID)
		}
		if e.Amount.Currency() != currency {
			return nil, fmt.Errorf("%w: running balance over mixed currencies %s and %s",
				apperrors.ErrValidation, currency, e.Amount.Currency())
		}
	}

	out := make([]EntryWithBalance, 0, len(sorted))
	balance := opening
	for _, e := range sorted {
		next, err := balance.Add(e.Amount)
		if err != nil {
			return nil, err
		}
		balance = next
		out = append(out, EntryWithBalance{Entry: e, BalanceAfter: balance})
	}
	return out, nil
}
