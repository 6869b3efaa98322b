package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/dto"
)

type instrumentService struct {
	BaseService
	instrumentRepo portsrepo.InstrumentRepositoryFacade
}

// NewInstrumentService creates a new instrument registry service.
func NewInstrumentService(instrumentRepo portsrepo.InstrumentRepositoryFacade, options ...ServiceOption) portssvc.InstrumentSvcFacade {
	svc := &instrumentService{instrumentRepo: instrumentRepo}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.InstrumentSvcFacade = (*instrumentService)(nil)

func (s *instrumentService) CreateInstrument(ctx context.Context, req dto.CreateInstrumentRequest) (*domain.Instrument, error) {
	kind, err := domain.ParseInstrumentKind(req.Kind)
	if err != nil {
		return nil, err
	}
	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}
	instrument, err := domain.NewInstrument(req.Symbol, kind, currency)
	if err != nil {
		return nil, err
	}

	if _, err := s.instrumentRepo.FindInstrument(ctx, instrument.Symbol); err == nil {
		return nil, fmt.Errorf("%w: instrument %s", apperrors.ErrDuplicate, instrument.Symbol)
	} else if !isNotFound(err) {
		return nil, err
	}
	if err := s.instrumentRepo.SaveInstrument(ctx, *instrument); err != nil {
		s.LogError(ctx, err, "Failed to save instrument", slog.String("symbol", instrument.Symbol))
		return nil, fmt.Errorf("failed to save instrument: %w", err)
	}
	return instrument, nil
}

func (s *instrumentService) ListInstruments(ctx context.Context) ([]domain.Instrument, error) {
	return s.instrumentRepo.ListInstruments(ctx)
}

func (s *instrumentService) DeleteInstrument(ctx context.Context, symbol string) error {
	symbol = domain.NormalizeSymbol(symbol)
	if _, err := s.instrumentRepo.FindInstrument(ctx, symbol); err != nil {
		return err
	}
	return s.instrumentRepo.DeleteInstrument(ctx, symbol)
}
