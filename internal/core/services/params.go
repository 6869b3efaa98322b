package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/core/engine"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceOption configures the BaseService embedded in every service.
type ServiceOption func(*BaseService)

// WithRecorder counts the write operations of a service.
func WithRecorder(r OperationRecorder) ServiceOption {
	return func(s *BaseService) {
		s.Recorder = r
	}
}

func applyOptions(base *BaseService, opts []ServiceOption) {
	for _, opt := range opts {
		opt(base)
	}
}

// parseID treats a malformed id like an unknown one.
func parseID(resource, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, apperrors.NewNotFoundError(resource, raw)
	}
	return id, nil
}

// parseOptionalDate returns nil for an empty value.
func parseOptionalDate(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseDatePtr(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := domain.ParseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseDecimalOr parses raw, or returns def when raw is blank.
func parseDecimalOr(raw string, def decimal.Decimal) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	return domain.ParseDecimal(raw)
}

// parseRange validates an inclusive [from, to] range and resolves the granularity.
func parseRange(fromRaw, toRaw, granularityRaw string) (time.Time, time.Time, engine.Granularity, error) {
	from, err := domain.ParseDate(fromRaw)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	to, err := domain.ParseDate(toRaw)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, "", fmt.Errorf("%w: date_to must not be before date_from", apperrors.ErrValidation)
	}
	g, err := engine.ParseGranularity(granularityRaw)
	if err != nil {
		return time.Time{}, time.Time{}, "", err
	}
	if g == "" {
		g = engine.PickGranularity(from, to)
	}
	return from, to, g, nil
}

// inWindow keeps entries dated within the optional inclusive bounds.
func inWindow(entries []domain.LedgerEntry, from, to *time.Time) []domain.LedgerEntry {
	if from == nil && to == nil {
		return entries
	}
	out := make([]domain.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if from != nil && e.Date.Before(*from) {
			continue
		}
		if to != nil && e.Date.After(*to) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
