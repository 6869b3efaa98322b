package engine

import (
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// mustSigned wraps d in currency. Callers pass a currency taken from a stored
// account or an already parsed filter; an invalid one is a programming error
// and panics.
func mustSigned(d decimal.Decimal, currency domain.Currency) domain.SignedMoney {
	m, err := domain.NewSignedMoney(d, currency)
	if err != nil {
		panic(err)
	}
	return m
}

var folder = cases.Fold()

// fold returns the case-folded form of s, or "" for nil.
func fold(s *string) string {
	if s == nil {
		return ""
	}
	return folder.String(*s)
}

func foldString(s string) string {
	return folder.String(s)
}
