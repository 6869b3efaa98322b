package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/core/engine"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/SscSPs/wealth_tracker/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// tradeService records trades and keeps each trade's cash mirror in the
// portfolio's pass-through account in step with it.
type tradeService struct {
	BaseService
	txManager      portsrepo.TransactionManager
	portfolioRepo  portsrepo.PortfolioRepositoryFacade
	instrumentRepo portsrepo.InstrumentRepositoryFacade
	tradeRepo      portsrepo.TradeRepositoryFacade
	entryRepo      portsrepo.EntryRepositoryFacade
}

// NewTradeService creates a new trade service.
func NewTradeService(repos portsrepo.RepositoryProvider, options ...ServiceOption) portssvc.TradeSvcFacade {
	svc := &tradeService{
		txManager:      repos.TxManager,
		portfolioRepo:  repos.PortfolioRepo,
		instrumentRepo: repos.InstrumentRepo,
		tradeRepo:      repos.TradeRepo,
		entryRepo:      repos.EntryRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.TradeSvcFacade = (*tradeService)(nil)

func (s *tradeService) findPortfolio(ctx context.Context, portfolioID string) (*domain.Portfolio, error) {
	id, err := parseID("portfolio", portfolioID)
	if err != nil {
		return nil, err
	}
	return s.portfolioRepo.FindPortfolioByID(ctx, id)
}

// findPortfolioTrade loads a trade and checks it belongs to p.
func (s *tradeService) findPortfolioTrade(ctx context.Context, p *domain.Portfolio, tradeID string) (*domain.Trade, error) {
	id, err := parseID("trade", tradeID)
	if err != nil {
		return nil, err
	}
	t, err := s.tradeRepo.FindTradeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.PortfolioID != p.ID {
		return nil, apperrors.NewValidationError("trade %s does not belong to portfolio %s", t.ID, p.ID)
	}
	return t, nil
}

// attachMirror posts the cash entry mirroring t and links it.
func (s *tradeService) attachMirror(ctx context.Context, t *domain.Trade, p *domain.Portfolio) error {
	seq, err := s.entryRepo.NextSequence(ctx, p.CashAccountID, t.Date)
	if err != nil {
		return err
	}
	mirror, err := engine.BuildTradeMirror(*t, *p, seq, time.Now().UTC())
	if err != nil {
		return err
	}
	if err := s.entryRepo.SaveEntries(ctx, *mirror); err != nil {
		return err
	}
	t.LinkedCashEntryID = &mirror.ID
	return nil
}

// detachMirror removes the cash entry linked to t, if it still exists.
func (s *tradeService) detachMirror(ctx context.Context, t *domain.Trade) error {
	if t.LinkedCashEntryID == nil {
		return nil
	}
	mirror, err := s.entryRepo.FindEntryByID(ctx, *t.LinkedCashEntryID)
	if isNotFound(err) {
		s.LogDebug(ctx, "Trade mirror already gone", slog.String("trade_id", t.ID.String()))
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := s.entryRepo.DeleteEntry(ctx, mirror.AccountID, mirror.ID); err != nil {
		return err
	}
	return s.entryRepo.CloseSequenceGap(ctx, mirror.AccountID, mirror.Date, mirror.Sequence)
}

func (s *tradeService) CreateTrade(ctx context.Context, portfolioID string, req dto.CreateTradeRequest) (created *domain.Trade, err error) {
	ctx, span := tracer.Start(ctx, "TradeService.CreateTrade", trace.WithAttributes(attribute.String("portfolio.id", portfolioID)))
	defer func() { endSpan(span, err) }()
	defer func() { s.Record("trade_create", err) }()

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	side, err := domain.ParseTradeSide(req.Side)
	if err != nil {
		return nil, err
	}
	quantity, err := domain.ParseDecimal(req.Quantity)
	if err != nil {
		return nil, err
	}
	price, err := domain.ParseDecimal(req.Price)
	if err != nil {
		return nil, err
	}
	fees, err := parseDecimalOr(req.Fees, decimal.Zero)
	if err != nil {
		return nil, err
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.findPortfolio(ctx, portfolioID)
		if err != nil {
			return err
		}
		instrument, err := s.instrumentRepo.FindInstrument(ctx, domain.NormalizeSymbol(req.InstrumentSymbol))
		if err != nil {
			return err
		}
		if instrument.Currency != p.Currency {
			return apperrors.NewValidationError("instrument currency %s must match portfolio currency %s", instrument.Currency, p.Currency)
		}
		created, err = domain.NewTrade(domain.NewTradeParams{
			PortfolioID:      p.ID,
			Date:             date,
			Side:             side,
			InstrumentSymbol: instrument.Symbol,
			Quantity:         quantity,
			Price:            price,
			Fees:             fees,
			Currency:         p.Currency,
			Label:            req.Label,
		})
		if err != nil {
			return err
		}
		if err := s.attachMirror(ctx, created, p); err != nil {
			return err
		}
		return s.tradeRepo.SaveTrade(ctx, *created)
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("trade.id", created.ID.String()))
	s.LogInfo(ctx, "Trade created",
		slog.String("trade_id", created.ID.String()),
		slog.String("symbol", created.InstrumentSymbol),
		slog.String("side", string(created.Side)))
	return created, nil
}

func (s *tradeService) UpdateTrade(ctx context.Context, portfolioID, tradeID string, req dto.UpdateTradeRequest) (updated *domain.Trade, err error) {
	ctx, span := tracer.Start(ctx, "TradeService.UpdateTrade", trace.WithAttributes(attribute.String("trade.id", tradeID)))
	defer func() { endSpan(span, err) }()
	defer func() { s.Record("trade_update", err) }()

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.findPortfolio(ctx, portfolioID)
		if err != nil {
			return err
		}
		current, err := s.findPortfolioTrade(ctx, p, tradeID)
		if err != nil {
			return err
		}

		params := current.Params()
		if req.Date != nil {
			if params.Date, err = domain.ParseDate(*req.Date); err != nil {
				return err
			}
		}
		if req.Side != nil {
			if params.Side, err = domain.ParseTradeSide(*req.Side); err != nil {
				return err
			}
		}
		if req.Quantity != nil {
			if params.Quantity, err = domain.ParseDecimal(*req.Quantity); err != nil {
				return err
			}
		}
		if req.Price != nil {
			if params.Price, err = domain.ParseDecimal(*req.Price); err != nil {
				return err
			}
		}
		if req.Fees != nil {
			if params.Fees, err = domain.ParseDecimal(*req.Fees); err != nil {
				return err
			}
		}
		if req.Label != nil {
			params.Label = req.Label
		}
		params.LinkedCashEntryID = nil
		if updated, err = domain.NewTrade(params); err != nil {
			return err
		}

		if err := s.detachMirror(ctx, current); err != nil {
			return err
		}
		if err := s.attachMirror(ctx, updated, p); err != nil {
			return err
		}
		return s.tradeRepo.UpdateTrade(ctx, *updated)
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Trade updated", slog.String("trade_id", updated.ID.String()))
	return updated, nil
}

func (s *tradeService) DeleteTrade(ctx context.Context, portfolioID, tradeID string) (err error) {
	ctx, span := tracer.Start(ctx, "TradeService.DeleteTrade", trace.WithAttributes(attribute.String("trade.id", tradeID)))
	defer func() { endSpan(span, err) }()
	defer func() { s.Record("trade_delete", err) }()

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.findPortfolio(ctx, portfolioID)
		if err != nil {
			return err
		}
		current, err := s.findPortfolioTrade(ctx, p, tradeID)
		if err != nil {
			return err
		}
		if err := s.tradeRepo.DeleteTrade(ctx, current.ID); err != nil {
			return err
		}
		return s.detachMirror(ctx, current)
	})
	if err == nil {
		s.LogInfo(ctx, "Trade deleted", slog.String("trade_id", tradeID))
	}
	return err
}

func (s *tradeService) ListTrades(ctx context.Context, portfolioID string, params dto.ListTradesParams) (*dto.ListTradesResponse, error) {
	p, err := s.findPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	q, err := tradeQueryFromParams(params)
	if err != nil {
		return nil, err
	}
	trades, err := s.tradeRepo.ListTrades(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	page, next, err := pagination.Paginate(engine.ApplyTradeQuery(trades, q), params.Limit, params.NextToken, tradeQueryScope(p.ID, params))
	if err != nil {
		return nil, err
	}
	resp := &dto.ListTradesResponse{Trades: dto.ToTradeResponses(page)}
	if next != "" {
		resp.NextToken = &next
	}
	return resp, nil
}

func (s *tradeService) GetPositions(ctx context.Context, portfolioID string, params dto.PositionsParams) (*dto.PositionsResponse, error) {
	p, err := s.findPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	asOf, err := parseOptionalDate(params.AsOf)
	if err != nil {
		return nil, err
	}
	trades, err := s.tradeRepo.ListTrades(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToPositionsResponse(p.ID.String(), dto.OptionalDate(asOf), engine.ComputePositions(trades, p.ID, asOf))
	return &resp, nil
}

func tradeQueryFromParams(params dto.ListTradesParams) (engine.TradeQuery, error) {
	var q engine.TradeQuery
	var err error
	if q.DateFrom, err = parseOptionalDate(params.DateFrom); err != nil {
		return q, err
	}
	if q.DateTo, err = parseOptionalDate(params.DateTo); err != nil {
		return q, err
	}
	for _, raw := range params.Sides {
		side, err := domain.ParseTradeSide(raw)
		if err != nil {
			return q, err
		}
		q.Sides = append(q.Sides, side)
	}
	q.Symbols = params.Symbols
	q.Q = params.Q
	if q.SortBy, err = engine.ParseTradeSortField(params.SortBy); err != nil {
		return q, err
	}
	if q.SortDir, err = engine.ParseSortDirection(params.SortDir); err != nil {
		return q, err
	}
	return q, nil
}

func tradeQueryScope(portfolioID uuid.UUID, p dto.ListTradesParams) string {
	return strings.Join([]string{
		portfolioID.String(), p.DateFrom, p.DateTo,
		strings.Join(p.Sides, ","), strings.Join(p.Symbols, ","),
		p.Q, p.SortBy, p.SortDir,
	}, "|")
}
