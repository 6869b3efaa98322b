package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
)

// Currency is an ISO 4217 code from the closed set of currencies the ledger supports.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
)

// SupportedCurrencies lists every Currency value in a stable order.
func SupportedCurrencies() []Currency {
	return []Currency{EUR, USD}
}

// IsValid reports whether c belongs to the supported set.
func (c Currency) IsValid() bool {
	switch c {
	case EUR, USD:
		return true
	}
	return false
}

// ParseCurrency converts a wire value (case-insensitive, surrounding spaces ignored) into a Currency.
func ParseCurrency(raw string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(raw)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, raw)
	}
	return c, nil
}
