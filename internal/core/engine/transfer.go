package engine

import (
	"fmt"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/google/uuid"
)

// TransferSpec describes a new transfer. Sequences are assigned by the caller,
// one per leg, before the legs are built.
type TransferSpec struct {
	TransferID   uuid.UUID
	From         domain.Account
	To           domain.Account
	Amount       domain.Money
	Date         time.Time
	Category     string
	Subcategory  *string
	Label        *string
	FromSequence int
	ToSequence   int
	CreatedAt    time.Time
}

// ValidateTransferAccounts checks the preconditions that do not depend on sequencing.
func ValidateTransferAccounts(from, to domain.Account, amount domain.Money) error {
	if from.ID == to.ID {
		return fmt.Errorf("%w: transfer accounts must differ", apperrors.ErrValidation)
	}
	if from.Currency != to.Currency {
		return fmt.Errorf("%w: transfer between %s and %s accounts", apperrors.ErrValidation, from.Currency, to.Currency)
	}
	if amount.Currency() != from.Currency {
		return fmt.Errorf("%w: transfer amount is in %s, accounts are in %s", apperrors.ErrValidation, amount.Currency(), from.Currency)
	}
	if amount.IsZero() {
		return fmt.Errorf("%w: transfer amount must be > 0", apperrors.ErrValidation)
	}
	return nil
}

// BuildTransferLegs returns the negative leg in From and the positive leg in To,
// both TRANSFER entries tagged with the same transfer id.
func BuildTransferLegs(s TransferSpec) (*domain.LedgerEntry, *domain.LedgerEntry, error) {
	if err := ValidateTransferAccounts(s.From, s.To, s.Amount); err != nil {
		return nil, nil, err
	}
	transferID := s.TransferID
	if transferID == uuid.Nil {
		transferID = uuid.New()
	}
	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	leg := func(accountID string, seq int, amount domain.SignedMoney) (*domain.LedgerEntry, error) {
		return domain.NewLedgerEntry(domain.NewLedgerEntryParams{
			AccountID:   accountID,
			Date:        s.Date,
			Sequence:    seq,
			Amount:      amount,
			Kind:        domain.KindTransfer,
			Category:    s.Category,
			Subcategory: s.Subcategory,
			Label:       s.Label,
			CreatedAt:   createdAt,
			TransferID:  &transferID,
		})
	}
	positive := s.Amount.Signed()
	from, err := leg(s.From.ID, s.FromSequence, positive.Neg())
	if err != nil {
		return nil, nil, err
	}
	to, err := leg(s.To.ID, s.ToSequence, positive)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

// PairTransferLegs identifies the (from, to) legs of a stored transfer by sign.
// A pair that does not cancel out within one currency across two accounts is a conflict.
func PairTransferLegs(transferID uuid.UUID, legs []domain.LedgerEntry) (domain.LedgerEntry, domain.LedgerEntry, error) {
	if len(legs) != 2 {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, apperrors.NewNotFoundError("transfer", transferID.String())
	}
	for _, l := range legs {
		if l.Kind != domain.KindTransfer {
			return domain.LedgerEntry{}, domain.LedgerEntry{}, fmt.Errorf("%w: transfer %s has a non-TRANSFER leg %s",
				apperrors.ErrConflict, transferID, l.ID)
		}
	}
	from, to := legs[0], legs[1]
	if from.Amount.IsPositive() && to.Amount.IsNegative() {
		from, to = to, from
	}
	if !from.Amount.IsNegative() || !to.Amount.IsPositive() {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, fmt.Errorf("%w: transfer %s legs are not one negative and one positive amount",
			apperrors.ErrConflict, transferID)
	}
	if from.Amount.Currency() != to.Amount.Currency() {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, fmt.Errorf("%w: transfer %s legs are in %s and %s",
			apperrors.ErrConflict, transferID, from.Amount.Currency(), to.Amount.Currency())
	}
	if !from.Amount.Neg().Equal(to.Amount) {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, fmt.Errorf("%w: transfer %s legs %s and %s do not cancel out",
			apperrors.ErrConflict, transferID, from.Amount.StringFixed(), to.Amount.StringFixed())
	}
	if from.AccountID == to.AccountID {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, fmt.Errorf("%w: transfer %s legs are both on account %s",
			apperrors.ErrConflict, transferID, from.AccountID)
	}
	return from, to, nil
}

// TransferUpdate holds the optional changes to a transfer. Blank Subcategory or
// Label values clear the field.
type TransferUpdate struct {
	Date        *time.Time
	Amount      *domain.Money
	Category    *string
	Subcategory *string
	Label       *string
}

// MovesLeg reports whether applying u changes the date of leg, which needs a new sequence.
func (u TransferUpdate) MovesLeg(leg domain.LedgerEntry) bool {
	return movesDate(u.Date, leg.Date)
}

func movesDate(newDate *time.Time, current time.Time) bool {
	return newDate != nil && !domain.DateOf(*newDate).Equal(current)
}

// ApplyTransferUpdate returns both legs with u applied. fromSeq and toSeq are
// only used for legs whose date moves.
func ApplyTransferUpdate(from, to domain.LedgerEntry, u TransferUpdate, fromSeq, toSeq int) (*domain.LedgerEntry, *domain.LedgerEntry, error) {
	if u.Amount != nil {
		if u.Amount.IsZero() {
			return nil, nil, fmt.Errorf("%w: transfer amount must be > 0", apperrors.ErrValidation)
		}
		if u.Amount.Currency() != from.Amount.Currency() || u.Amount.Currency() != to.Amount.Currency() {
			return nil, nil, fmt.Errorf("%w: transfer amount is in %s, legs are in %s",
				apperrors.ErrValidation, u.Amount.Currency(), from.Amount.Currency())
		}
	}

	apply := func(leg domain.LedgerEntry, seq int, negative bool) (*domain.LedgerEntry, error) {
		p := leg.Params()
		if u.MovesLeg(leg) {
			p.Date = *u.Date
			p.Sequence = seq
		}
		if u.Amount != nil {
			p.Amount = u.Amount.Signed()
			if negative {
				p.Amount = p.Amount.Neg()
			}
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

	newFrom, err := apply(from, fromSeq, true)
	if err != nil {
		return nil, nil, err
	}
	newTo, err := apply(to, toSeq, false)
	if err != nil {
		return nil, nil, err
	}
	return newFrom, newTo, nil
}
