package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/google/uuid"
)

// EntryKind tags what a ledger entry represents. The sign rules depend on it.
type EntryKind string

const (
	KindIncome     EntryKind = "INCOME"
	KindExpense    EntryKind = "EXPENSE"
	KindInvestment EntryKind = "INVESTMENT"
	KindAdjustment EntryKind = "ADJUSTMENT"
	KindTransfer   EntryKind = "TRANSFER"
)

func (k EntryKind) IsValid() bool {
	switch k {
	case KindIncome, KindExpense, KindInvestment, KindAdjustment, KindTransfer:
		return true
	}
	return false
}

// ParseEntryKind converts a wire value into an EntryKind.
func ParseEntryKind(raw string) (EntryKind, error) {
	k := EntryKind(strings.ToUpper(strings.TrimSpace(raw)))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: invalid entry kind %q", apperrors.ErrValidation, raw)
	}
	return k, nil
}

// LedgerEntry is one dated, signed movement against a single account.
// Entries are ordered within an account by (Date, Sequence).
type LedgerEntry struct {
	ID          uuid.UUID
	AccountID   string
	Date        time.Time
	Sequence    int
	Amount      SignedMoney
	Kind        EntryKind
	Category    string
	Subcategory *string
	Label       *string
	CreatedAt   time.Time
	TransferID  *uuid.UUID
}

// NewLedgerEntryParams are the inputs of NewLedgerEntry.
// ID and CreatedAt are generated when left zero.
type NewLedgerEntryParams struct {
	ID          uuid.UUID
	AccountID   string
	Date        time.Time
	Sequence    int
	Amount      SignedMoney
	Kind        EntryKind
	Category    string
	Subcategory *string
	Label       *string
	CreatedAt   time.Time
	TransferID  *uuid.UUID
}

// NewLedgerEntry validates p and returns an entry. It never performs I/O; the
// sequence must already have been assigned by the caller.
func NewLedgerEntry(p NewLedgerEntryParams) (*LedgerEntry, error) {
	accountID, err := requireText("account_id", p.AccountID)
	if err != nil {
		return nil, err
	}
	if p.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	if p.Sequence < 1 {
		return nil, fmt.Errorf("%w: sequence must be an integer >= 1", apperrors.ErrValidation)
	}
	if !p.Amount.Currency().IsValid() {
		return nil, fmt.Errorf("%w: amount must carry a valid currency", apperrors.ErrValidation)
	}
	if !p.Kind.IsValid() {
		return nil, fmt.Errorf("%w: invalid entry kind %q", apperrors.ErrValidation, p.Kind)
	}
	category, err := requireText("category", p.Category)
	if err != nil {
		return nil, err
	}
	subcategory, err := optionalText("subcategory", p.Subcategory)
	if err != nil {
		return nil, err
	}
	label, err := optionalText("label", p.Label)
	if err != nil {
		return nil, err
	}

	if p.Amount.IsZero() {
		return nil, fmt.Errorf("%w: entry amount cannot be zero", apperrors.ErrValidation)
	}
	if p.Kind == KindIncome && !p.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: INCOME entries must have a positive amount", apperrors.ErrValidation)
	}
	if p.Kind == KindExpense && !p.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: EXPENSE entries must have a negative amount", apperrors.ErrValidation)
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var transferID *uuid.UUID
	if p.TransferID != nil {
		t := *p.TransferID
		transferID = &t
	}

	return &LedgerEntry{
		ID:          id,
		AccountID:   accountID,
		Date:        DateOf(p.Date),
		Sequence:    p.Sequence,
		Amount:      p.Amount,
		Kind:        p.Kind,
		Category:    category,
		Subcategory: subcategory,
		Label:       label,
		CreatedAt:   createdAt.UTC(),
		TransferID:  transferID,
	}, nil
}

// Params returns the constructor inputs that reproduce e, for building a modified copy.
func (e LedgerEntry) Params() NewLedgerEntryParams {
	return NewLedgerEntryParams{
		ID:          e.ID,
		AccountID:   e.AccountID,
		Date:        e.Date,
		Sequence:    e.Sequence,
		Amount:      e.Amount,
		Kind:        e.Kind,
		Category:    e.Category,
		Subcategory: e.Subcategory,
		Label:       e.Label,
		CreatedAt:   e.CreatedAt,
		TransferID:  e.TransferID,
	}
}

// IsTransferLeg reports whether e belongs to a transfer.
func (e LedgerEntry) IsTransferLeg() bool {
	return e.Kind == KindTransfer || e.TransferID != nil
}

// Before reports whether e precedes o in canonical ledger order.
func (e LedgerEntry) Before(o LedgerEntry) bool {
	if !e.Date.Equal(o.Date) {
		return e.Date.Before(o.Date)
	}
	return e.Sequence < o.Sequence
}
