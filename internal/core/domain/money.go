package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every monetary amount is quantized to.
const MoneyScale = 2

// ParseDecimal parses a user supplied decimal string.
// Surrounding whitespace is ignored and a comma decimal separator is accepted.
func ParseDecimal(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: amount cannot be empty", apperrors.ErrValidation)
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid decimal amount %q", apperrors.ErrValidation, raw)
	}
	return d, nil
}

// quantize rounds to MoneyScale places, ties away from zero (round-half-up on magnitude).
func quantize(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// SignedMoney is a currency-tagged amount of any sign. It is used for ledger deltas and balances.
type SignedMoney struct {
	amount   decimal.Decimal
	currency Currency
}

// NewSignedMoney quantizes amount and tags it with currency.
func NewSignedMoney(amount decimal.Decimal, currency Currency) (SignedMoney, error) {
	if !currency.IsValid() {
		return SignedMoney{}, fmt.Errorf("%w: invalid currency %q", apperrors.ErrValidation, currency)
	}
	return SignedMoney{amount: quantize(amount), currency: currency}, nil
}

// ParseSignedMoney parses raw and quantizes it in currency.
func ParseSignedMoney(raw string, currency Currency) (SignedMoney, error) {
	d, err := ParseDecimal(raw)
	if err != nil {
		return SignedMoney{}, err
	}
	return NewSignedMoney(d, currency)
}

// ZeroSignedMoney returns 0.00 in currency.
func ZeroSignedMoney(currency Currency) SignedMoney {
	return SignedMoney{amount: quantize(decimal.Zero), currency: currency}
}

func (m SignedMoney) Amount() decimal.Decimal { return m.amount }
func (m SignedMoney) Currency() Currency      { return m.currency }
func (m SignedMoney) IsZero() bool            { return m.amount.IsZero() }
func (m SignedMoney) IsPositive() bool        { return m.amount.IsPositive() }
func (m SignedMoney) IsNegative() bool        { return m.amount.IsNegative() }
func (m SignedMoney) Neg() SignedMoney        { return SignedMoney{amount: m.amount.Neg(), currency: m.currency} }
func (m SignedMoney) Abs() SignedMoney        { return SignedMoney{amount: m.amount.Abs(), currency: m.currency} }

// Add returns m+o. Both operands must share a currency.
func (m SignedMoney) Add(o SignedMoney) (SignedMoney, error) {
	if m.currency != o.currency {
		return SignedMoney{}, fmt.Errorf("%w: cannot add %s to %s", apperrors.ErrValidation, o.currency, m.currency)
	}
	return SignedMoney{amount: quantize(m.amount.Add(o.amount)), currency: m.currency}, nil
}

// Equal compares amount and currency.
func (m SignedMoney) Equal(o SignedMoney) bool {
	return m.currency == o.currency && m.amount.Equal(o.amount)
}

// Cmp orders by amount, then by currency code.
func (m SignedMoney) Cmp(o SignedMoney) int {
	if c := m.amount.Cmp(o.amount); c != 0 {
		return c
	}
	return strings.Compare(string(m.currency), string(o.currency))
}

// StringFixed renders the amount with exactly MoneyScale decimals, without currency.
func (m SignedMoney) StringFixed() string {
	return m.amount.StringFixed(MoneyScale)
}

func (m SignedMoney) String() string {
	return m.StringFixed() + " " + string(m.currency)
}

// Money is a non-negative currency-tagged amount, used for valuations and prices.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney quantizes amount and rejects negative results.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if !currency.IsValid() {
		return Money{}, fmt.Errorf("%w: invalid currency %q", apperrors.ErrValidation, currency)
	}
	q := quantize(amount)
	if q.IsNegative() {
		return Money{}, fmt.Errorf("%w: money amount cannot be negative", apperrors.ErrValidation)
	}
	return Money{amount: q, currency: currency}, nil
}

// ParseMoney parses raw as a non-negative amount in currency.
func ParseMoney(raw string, currency Currency) (Money, error) {
	d, err := ParseDecimal(raw)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(d, currency)
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() Currency      { return m.currency }
func (m Money) IsZero() bool            { return m.amount.IsZero() }

// Signed converts m into a SignedMoney with the same amount.
func (m Money) Signed() SignedMoney {
	return SignedMoney{amount: m.amount, currency: m.currency}
}

func (m Money) Equal(o Money) bool {
	return m.currency == o.currency && m.amount.Equal(o.amount)
}

func (m Money) Cmp(o Money) int {
	if c := m.amount.Cmp(o.amount); c != 0 {
		return c
	}
	return strings.Compare(string(m.currency), string(o.currency))
}

func (m Money) StringFixed() string {
	return m.amount.StringFixed(MoneyScale)
}

func (m Money) String() string {
	return m.StringFixed() + " " + string(m.currency)
}
