package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
)

type InstrumentKind string

const (
	InstrumentStock  InstrumentKind = "STOCK"
	InstrumentETF    InstrumentKind = "ETF"
	InstrumentCrypto InstrumentKind = "CRYPTO"
	InstrumentOther  InstrumentKind = "OTHER"
)

func (k InstrumentKind) IsValid() bool {
	switch k {
	case InstrumentStock, InstrumentETF, InstrumentCrypto, InstrumentOther:
		return true
	}
	return false
}

func ParseInstrumentKind(raw string) (InstrumentKind, error) {
	k := InstrumentKind(strings.ToUpper(strings.TrimSpace(raw)))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: invalid instrument kind %q", apperrors.ErrValidation, raw)
	}
	return k, nil
}

// Instrument is a tradable symbol quoted in one currency.
type Instrument struct {
	Symbol   string
	Kind     InstrumentKind
	Currency Currency
}

// NormalizeSymbol trims and uppercases a ticker.
func NormalizeSymbol(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

func NewInstrument(symbol string, kind InstrumentKind, currency Currency) (*Instrument, error) {
	s := NormalizeSymbol(symbol)
	if s == "" {
		return nil, fmt.Errorf("%w: instrument symbol cannot be empty", apperrors.ErrValidation)
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: invalid instrument kind %q", apperrors.ErrValidation, kind)
	}
	if !currency.IsValid() {
		return nil, fmt.Errorf("%w: invalid currency %q", apperrors.ErrValidation, currency)
	}
	return &Instrument{Symbol: s, Kind: kind, Currency: currency}, nil
}
