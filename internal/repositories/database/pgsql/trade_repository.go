package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/wealth_tracker/internal/models"
	"github.com/SscSPs/wealth_tracker/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const tradeColumns = `trade_id, portfolio_id, trade_date, side, instrument_symbol, quantity, price, fees, currency_code, label, linked_cash_entry_id`

type PgxTradeRepository struct {
	BaseRepository
}

func newPgxTradeRepository(pool *pgxpool.Pool) *PgxTradeRepository {
	return &PgxTradeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TradeRepositoryFacade = (*PgxTradeRepository)(nil)

func (r *PgxTradeRepository) queryTrades(ctx context.Context, query string, args ...any) ([]domain.Trade, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Trade])
	if err != nil {
		return nil, fmt.Errorf("failed to scan trades: %w", err)
	}
	return mapping.ToDomainTrades(ms)
}

func (r *PgxTradeRepository) FindTradeByID(ctx context.Context, tradeID uuid.UUID) (*domain.Trade, error) {
	trades, err := r.queryTrades(ctx, `SELECT `+tradeColumns+` FROM trades WHERE trade_id = $1;`, tradeID)
	if err != nil {
		return nil, err
	}
	if len(trades) == 0 {
		return nil, apperrors.NewNotFoundError("trade", tradeID.String())
	}
	return &trades[0], nil
}

// ListTrades returns the trades of one portfolio, or all of them for uuid.Nil.
func (r *PgxTradeRepository) ListTrades(ctx context.Context, portfolioID uuid.UUID) ([]domain.Trade, error) {
	if portfolioID == uuid.Nil {
		return r.queryTrades(ctx, `SELECT `+tradeColumns+` FROM trades ORDER BY trade_date, trade_id;`)
	}
	return r.queryTrades(ctx, `SELECT `+tradeColumns+` FROM trades WHERE portfolio_id = $1 ORDER BY trade_date, trade_id;`, portfolioID)
}

func (r *PgxTradeRepository) SaveTrade(ctx context.Context, trade domain.Trade) error {
	m := mapping.ToModelTrade(trade)
	query := `
		INSERT INTO trades (` + tradeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.TradeID,
		m.PortfolioID,
		m.TradeDate,
		m.Side,
		m.InstrumentSymbol,
		m.Quantity,
		m.Price,
		m.Fees,
		m.CurrencyCode,
		m.Label,
		m.LinkedCashEntryID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: trade with ID %s already exists", apperrors.ErrDuplicate, m.TradeID)
		}
		return fmt.Errorf("failed to save trade %s: %w", m.TradeID, err)
	}
	return nil
}

func (r *PgxTradeRepository) UpdateTrade(ctx context.Context, trade domain.Trade) error {
	m := mapping.ToModelTrade(trade)
	query := `
		UPDATE trades
		SET trade_date = $2, side = $3, instrument_symbol = $4, quantity = $5, price = $6,
		    fees = $7, currency_code = $8, label = $9, linked_cash_entry_id = $10
		WHERE trade_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.TradeID,
		m.TradeDate,
		m.Side,
		m.InstrumentSymbol,
		m.Quantity,
		m.Price,
		m.Fees,
		m.CurrencyCode,
		m.Label,
		m.LinkedCashEntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trade %s: %w", m.TradeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("trade", m.TradeID.String())
	}
	return nil
}

func (r *PgxTradeRepository) DeleteTrade(ctx context.Context, tradeID uuid.UUID) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM trades WHERE trade_id = $1;`, tradeID)
	if err != nil {
		return fmt.Errorf("failed to delete trade %s: %w", tradeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("trade", tradeID.String())
	}
	return nil
}

func (r *PgxTradeRepository) DeleteTradesByPortfolio(ctx context.Context, portfolioID uuid.UUID) error {
	if _, err := r.db(ctx).Exec(ctx, `DELETE FROM trades WHERE portfolio_id = $1;`, portfolioID); err != nil {
		return fmt.Errorf("failed to delete trades of portfolio %s: %w", portfolioID, err)
	}
	return nil
}

type PgxInstrumentRepository struct {
	BaseRepository
}

func newPgxInstrumentRepository(pool *pgxpool.Pool) *PgxInstrumentRepository {
	return &PgxInstrumentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.InstrumentRepositoryFacade = (*PgxInstrumentRepository)(nil)

func (r *PgxInstrumentRepository) FindInstrument(ctx context.Context, symbol string) (*domain.Instrument, error) {
	key := domain.NormalizeSymbol(symbol)
	rows, err := r.db(ctx).Query(ctx, `SELECT symbol, kind, currency_code FROM instruments WHERE symbol = $1;`, key)
	if err != nil {
		return nil, fmt.Errorf("failed to find instrument %s: %w", key, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Instrument])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("instrument", key)
		}
		return nil, fmt.Errorf("failed to scan instrument %s: %w", key, err)
	}
	in, err := mapping.ToDomainInstrument(m)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *PgxInstrumentRepository) ListInstruments(ctx context.Context) ([]domain.Instrument, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT symbol, kind, currency_code FROM instruments ORDER BY symbol;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Instrument])
	if err != nil {
		return nil, fmt.Errorf("failed to scan instruments: %w", err)
	}
	out := make([]domain.Instrument, 0, len(ms))
	for _, m := range ms {
		in, err := mapping.ToDomainInstrument(m)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

func (r *PgxInstrumentRepository) SaveInstrument(ctx context.Context, instrument domain.Instrument) error {
	m := mapping.ToModelInstrument(instrument)
	_, err := r.db(ctx).Exec(ctx, `INSERT INTO instruments (symbol, kind, currency_code) VALUES ($1, $2, $3);`,
		m.Symbol, m.Kind, m.CurrencyCode)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError("instrument", m.Symbol)
		}
		return fmt.Errorf("failed to save instrument %s: %w", m.Symbol, err)
	}
	return nil
}

func (r *PgxInstrumentRepository) DeleteInstrument(ctx context.Context, symbol string) error {
	key := domain.NormalizeSymbol(symbol)
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM instruments WHERE symbol = $1;`, key)
	if err != nil {
		return fmt.Errorf("failed to delete instrument %s: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("instrument", key)
	}
	return nil
}
