package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
)

// DateLayout is the wire and storage layout for calendar dates.
const DateLayout = "2006-01-02"

// DateOf truncates t to its calendar day at midnight UTC. Ledger dates carry no time of day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a ledger date.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, raw)
	}
	return t, nil
}

// requireText trims s and fails when nothing is left.
func requireText(field, s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", fmt.Errorf("%w: %s cannot be empty", apperrors.ErrValidation, field)
	}
	return v, nil
}

// optionalText keeps nil as nil, trims present values and rejects present-but-blank ones.
func optionalText(field string, s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil, fmt.Errorf("%w: %s cannot be empty if provided", apperrors.ErrValidation, field)
	}
	return &v, nil
}

// TrimOrNil trims s and collapses blank values to nil.
func TrimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
