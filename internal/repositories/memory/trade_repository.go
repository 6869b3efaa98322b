package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	"github.com/google/uuid"
)

type TradeRepository struct{ s *Store }

var _ portsrepo.TradeRepositoryFacade = (*TradeRepository)(nil)

func (r *TradeRepository) FindTradeByID(_ context.Context, tradeID uuid.UUID) (*domain.Trade, error) {
	var (
		t  domain.Trade
		ok bool
	)
	r.s.read(func() { t, ok = r.s.trades[tradeID] })
	if !ok {
		return nil, apperrors.NewNotFoundError("trade", tradeID.String())
	}
	return &t, nil
}

func (r *TradeRepository) ListTrades(_ context.Context, portfolioID uuid.UUID) ([]domain.Trade, error) {
	out := []domain.Trade{}
	r.s.read(func() {
		for _, t := range r.s.trades {
			if portfolioID == uuid.Nil || t.PortfolioID == portfolioID {
				out = append(out, t)
			}
		}
	})
	slices.SortFunc(out, func(a, b domain.Trade) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

func (r *TradeRepository) SaveTrade(ctx context.Context, trade domain.Trade) error {
	return r.s.write(ctx, func() error {
		if _, exists := r.s.trades[trade.ID]; exists {
			return apperrors.NewDuplicateError("trade", trade.ID.String())
		}
		r.s.trades[trade.ID] = trade
		return nil
	})
}

func (r *TradeRepository) UpdateTrade(ctx context.Context, trade domain.Trade) error {
	return r.s.write(ctx, func() error {
		if _, exists := r.s.trades[trade.ID]; !exists {
			return apperrors.NewNotFoundError("trade", trade.ID.String())
		}
		r.s.trades[trade.ID] = trade
		return nil
	})
}

func (r *TradeRepository) DeleteTrade(ctx context.Context, tradeID uuid.UUID) error {
	return r.s.write(ctx, func() error {
		if _, exists := r.s.trades[tradeID]; !exists {
			return apperrors.NewNotFoundError("trade", tradeID.String())
		}
		delete(r.s.trades, tradeID)
		return nil
	})
}

func (r *TradeRepository) DeleteTradesByPortfolio(ctx context.Context, portfolioID uuid.UUID) error {
	return r.s.write(ctx, func() error {
		for id, t := range r.s.trades {
			if t.PortfolioID == portfolioID {
				delete(r.s.trades, id)
			}
		}
		return nil
	})
}

type InstrumentRepository struct{ s *Store }

var _ portsrepo.InstrumentRepositoryFacade = (*InstrumentRepository)(nil)

func (r *InstrumentRepository) FindInstrument(_ context.Context, symbol string) (*domain.Instrument, error) {
	key := domain.NormalizeSymbol(symbol)
	var (
		in domain.Instrument
		ok bool
	)
	r.s.read(func() { in, ok = r.s.instruments[key] })
	if !ok {
		return nil, apperrors.NewNotFoundError("instrument", key)
	}
	return &in, nil
}

func (r *InstrumentRepository) ListInstruments(_ context.Context) ([]domain.Instrument, error) {
	out := []domain.Instrument{}
	r.s.read(func() {
		for _, in := range r.s.instruments {
			out = append(out, in)
		}
	})
	slices.SortFunc(out, func(a, b domain.Instrument) int { return cmp.Compare(a.Symbol, b.Symbol) })
	return out, nil
}

func (r *InstrumentRepository) SaveInstrument(ctx context.Context, instrument domain.Instrument) error {
	return r.s.write(ctx, func() error {
		if _, exists := r.s.instruments[instrument.Symbol]; exists {
			return apperrors.NewDuplicateError("instrument", instrument.Symbol)
		}
		r.s.instruments[instrument.Symbol] = instrument
		return nil
	})
}

func (r *InstrumentRepository) DeleteInstrument(ctx context.Context, symbol string) error {
	key := domain.NormalizeSymbol(symbol)
	return r.s.write(ctx, func() error {
		if _, exists := r.s.instruments[key]; !exists {
			return apperrors.NewNotFoundError("instrument", key)
		}
		delete(r.s.instruments, key)
		return nil
	})
}
