package engine

import (
	"fmt"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
)

// EntryUpdate holds the optional changes to a plain ledger entry. Blank
// Subcategory or Label values clear the field.
type EntryUpdate struct {
	Date        *time.Time
	Amount      *domain.SignedMoney
	Kind        *domain.EntryKind
	Category    *string
	Subcategory *string
	Label       *string
}

// MovesEntry reports whether applying u changes the date of e.
func (u EntryUpdate) MovesEntry(e domain.LedgerEntry) bool {
	return movesDate(u.Date, e.Date)
}

// CheckEntryUpdatable rejects transfer legs, which only change through the transfer path.
func CheckEntryUpdatable(e domain.LedgerEntry) error {
	if e.IsTransferLeg() {
		return fmt.Errorf("%w: entry %s is a transfer leg, update it through its transfer", apperrors.ErrConflict, e.ID)
	}
	return nil
}

// ApplyEntryUpdate re-validates e with u applied, keeping id and created_at.
// seq is used only when the date moves.
func ApplyEntryUpdate(e domain.LedgerEntry, accountCurrency domain.Currency, u EntryUpdate, seq int) (*domain.LedgerEntry, error) {
	if err := CheckEntryUpdatable(e); err != nil {
		return nil, err
	}
	p := e.Params()
	if u.MovesEntry(e) {
		p.Date = *u.Date
		p.Sequence = seq
	}
	if u.Kind != nil {
		if *u.Kind == domain.KindTransfer {
			return nil, fmt.Errorf("%w: kind cannot be changed to TRANSFER", apperrors.ErrConflict)
		}
		p.Kind = *u.Kind
	}
	if u.Amount != nil {
		if u.Amount.Currency() != accountCurrency {
			return nil, fmt.Errorf("%w: amount is in %s, account is in %s",
				apperrors.ErrValidation, u.Amount.Currency(), accountCurrency)
		}
		p.Amount = *u.Amount
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Subcategory != nil {
		p.Subcategory = domain.TrimOrNil(u.Subcategory)
	}
	if u.Label != nil {
		p.Label = domain.TrimOrNil(u.Label)
	}
	return domain.NewLedgerEntry(p)
}
