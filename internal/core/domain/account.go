package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
)

// AccountType classifies an account for grouped net worth.
type AccountType string

const (
	Checking   AccountType = "CHECKING"
	Savings    AccountType = "SAVINGS"
	Investment AccountType = "INVESTMENT"
	Other      AccountType = "OTHER"
)

func (t AccountType) IsValid() bool {
	switch t {
	case Checking, Savings, Investment, Other:
		return true
	}
	return false
}

// ParseAccountType converts a wire value into an AccountType. An empty value yields Checking.
func ParseAccountType(raw string) (AccountType, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return Checking, nil
	}
	t := AccountType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, raw)
	}
	return t, nil
}

// Account is a cash account holding ledger entries in a single currency.
// Values are treated as immutable; changes go through NewAccount again.
type Account struct {
	ID             string
	Name           string
	Currency       Currency
	OpeningBalance SignedMoney
	OpenedOn       time.Time
	AccountType    AccountType
}

// NewAccount validates and builds an Account.
func NewAccount(id, name string, currency Currency, openingBalance SignedMoney, openedOn time.Time, accountType AccountType) (*Account, error) {
	id, err := requireText("account id", id)
	if err != nil {
		return nil, err
	}
	name, err = requireText("account name", name)
	if err != nil {
		return nil, err
	}
	if !currency.IsValid() {
		return nil, fmt.Errorf("%w: invalid currency %q", apperrors.ErrValidation, currency)
	}
	if openingBalance.Currency() != currency {
		return nil, fmt.Errorf("%w: opening balance currency %s does not match account currency %s",
			apperrors.ErrValidation, openingBalance.Currency(), currency)
	}
	if openedOn.IsZero() {
		return nil, fmt.Errorf("%w: opened_on is required", apperrors.ErrValidation)
	}
	if accountType == "" {
		accountType = Checking
	}
	if !accountType.IsValid() {
		return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, accountType)
	}
	return &Account{
		ID:             id,
		Name:           name,
		Currency:       currency,
		OpeningBalance: openingBalance,
		OpenedOn:       DateOf(openedOn),
		AccountType:    accountType,
	}, nil
}
