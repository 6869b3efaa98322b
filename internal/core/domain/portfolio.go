package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/google/uuid"
)

// PortfolioType describes the wrapper an investment portfolio is held in.
type PortfolioType string

const (
	PortfolioPEA            PortfolioType = "PEA"
	PortfolioCTO            PortfolioType = "CTO"
	PortfolioCryptoExchange PortfolioType = "CRYPTO_EXCHANGE"
	PortfolioWallet         PortfolioType = "WALLET"
	PortfolioOther          PortfolioType = "OTHER"
)

func (t PortfolioType) IsValid() bool {
	switch t {
	case PortfolioPEA, PortfolioCTO, PortfolioCryptoExchange, PortfolioWallet, PortfolioOther:
		return true
	}
	return false
}

func ParsePortfolioType(raw string) (PortfolioType, error) {
	t := PortfolioType(strings.ToUpper(strings.TrimSpace(raw)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: invalid portfolio type %q", apperrors.ErrValidation, raw)
	}
	return t, nil
}

// Portfolio is an investment container valued through snapshots. Trade cash
// flows land in its pass-through account CashAccountID.
type Portfolio struct {
	ID            uuid.UUID
	Name          string
	Currency      Currency
	PortfolioType PortfolioType
	OpenedOn      time.Time
	CashAccountID string
}

// CashAccountIDFor derives the pass-through account id of a portfolio.
func CashAccountIDFor(portfolioID uuid.UUID) string {
	return "pt_" + strings.ReplaceAll(portfolioID.String(), "-", "") + "_cash"
}

// NewPortfolio validates inputs and derives the cash account id. A nil id is replaced by a new one.
func NewPortfolio(id uuid.UUID, name string, currency Currency, portfolioType PortfolioType, openedOn time.Time) (*Portfolio, error) {
	name, err := requireText("portfolio name", name)
	if err != nil {
		return nil, err
	}
	if !currency.IsValid() {
		return nil, fmt.Errorf("%w: invalid currency %q", apperrors.ErrValidation, currency)
	}
	if !portfolioType.IsValid() {
		return nil, fmt.Errorf("%w: invalid portfolio type %q", apperrors.ErrValidation, portfolioType)
	}
	if openedOn.IsZero() {
		return nil, fmt.Errorf("%w: opened_on is required", apperrors.ErrValidation)
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Portfolio{
		ID:            id,
		Name:          name,
		Currency:      currency,
		PortfolioType: portfolioType,
		OpenedOn:      DateOf(openedOn),
		CashAccountID: CashAccountIDFor(id),
	}, nil
}

// PortfolioSnapshot is a point-in-time valuation of a portfolio.
type PortfolioSnapshot struct {
	ID          uuid.UUID
	PortfolioID uuid.UUID
	Date        time.Time
	Value       Money
	Note        *string
}

// NewPortfolioSnapshot builds a snapshot. Blank notes become nil.
func NewPortfolioSnapshot(id, portfolioID uuid.UUID, date time.Time, value Money, note *string) (*PortfolioSnapshot, error) {
	if portfolioID == uuid.Nil {
		return nil, fmt.Errorf("%w: portfolio_id is required", apperrors.ErrValidation)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: snapshot date is required", apperrors.ErrValidation)
	}
	if !value.Currency().IsValid() {
		return nil, fmt.Errorf("%w: snapshot value must carry a valid currency", apperrors.ErrValidation)
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &PortfolioSnapshot{
		ID:          id,
		PortfolioID: portfolioID,
		Date:        DateOf(date),
		Value:       value,
		Note:        TrimOrNil(note),
	}, nil
}
