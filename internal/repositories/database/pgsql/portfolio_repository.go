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

const portfolioColumns = `portfolio_id, name, currency_code, portfolio_type, opened_on, cash_account_id`

type PgxPortfolioRepository struct {
	BaseRepository
}

func newPgxPortfolioRepository(pool *pgxpool.Pool) *PgxPortfolioRepository {
	return &PgxPortfolioRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PortfolioRepositoryFacade = (*PgxPortfolioRepository)(nil)

func (r *PgxPortfolioRepository) FindPortfolioByID(ctx context.Context, portfolioID uuid.UUID) (*domain.Portfolio, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+portfolioColumns+` FROM portfolios WHERE portfolio_id = $1;`, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to find portfolio %s: %w", portfolioID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Portfolio])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("portfolio", portfolioID.String())
		}
		return nil, fmt.Errorf("failed to scan portfolio %s: %w", portfolioID, err)
	}
	p, err := mapping.ToDomainPortfolio(m)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxPortfolioRepository) ListPortfolios(ctx context.Context) ([]domain.Portfolio, error) {
	rows, err := r.db(ctx).Query(ctx, `SELECT `+portfolioColumns+` FROM portfolios ORDER BY name, portfolio_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Portfolio])
	if err != nil {
		return nil, fmt.Errorf("failed to scan portfolios: %w", err)
	}
	return mapping.ToDomainPortfolios(ms)
}

func (r *PgxPortfolioRepository) SavePortfolio(ctx context.Context, portfolio domain.Portfolio) error {
	m := mapping.ToModelPortfolio(portfolio)
	query := `INSERT INTO portfolios (` + portfolioColumns + `) VALUES ($1, $2, $3, $4, $5, $6);`
	_, err := r.db(ctx).Exec(ctx, query, m.PortfolioID, m.Name, m.CurrencyCode, m.PortfolioType, m.OpenedOn, m.CashAccountID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: portfolio with ID %s already exists", apperrors.ErrDuplicate, m.PortfolioID)
		}
		return fmt.Errorf("failed to save portfolio %s: %w", m.PortfolioID, err)
	}
	return nil
}

func (r *PgxPortfolioRepository) DeletePortfolio(ctx context.Context, portfolioID uuid.UUID) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM portfolios WHERE portfolio_id = $1;`, portfolioID)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio %s: %w", portfolioID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("portfolio", portfolioID.String())
	}
	return nil
}

const snapshotColumns = `snapshot_id, portfolio_id, snapshot_date, value, currency_code, note`

type PgxSnapshotRepository struct {
	BaseRepository
}

func newPgxSnapshotRepository(pool *pgxpool.Pool) *PgxSnapshotRepository {
	return &PgxSnapshotRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SnapshotRepositoryFacade = (*PgxSnapshotRepository)(nil)

func (r *PgxSnapshotRepository) querySnapshots(ctx context.Context, query string, args ...any) ([]domain.PortfolioSnapshot, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PortfolioSnapshot])
	if err != nil {
		return nil, fmt.Errorf("failed to scan snapshots: %w", err)
	}
	return mapping.ToDomainSnapshots(ms)
}

func (r *PgxSnapshotRepository) FindSnapshotByID(ctx context.Context, snapshotID uuid.UUID) (*domain.PortfolioSnapshot, error) {
	snapshots, err := r.querySnapshots(ctx, `SELECT `+snapshotColumns+` FROM portfolio_snapshots WHERE snapshot_id = $1;`, snapshotID)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, apperrors.NewNotFoundError("snapshot", snapshotID.String())
	}
	return &snapshots[0], nil
}

// ListSnapshots returns the snapshots of one portfolio, or all of them for uuid.Nil.
func (r *PgxSnapshotRepository) ListSnapshots(ctx context.Context, portfolioID uuid.UUID) ([]domain.PortfolioSnapshot, error) {
	if portfolioID == uuid.Nil {
		return r.querySnapshots(ctx, `SELECT `+snapshotColumns+` FROM portfolio_snapshots ORDER BY snapshot_date, snapshot_id;`)
	}
	return r.querySnapshots(ctx,
		`SELECT `+snapshotColumns+` FROM portfolio_snapshots WHERE portfolio_id = $1 ORDER BY snapshot_date, snapshot_id;`,
		portfolioID)
}

func (r *PgxSnapshotRepository) SaveSnapshot(ctx context.Context, snapshot domain.PortfolioSnapshot) error {
	m := mapping.ToModelSnapshot(snapshot)
	query := `INSERT INTO portfolio_snapshots (` + snapshotColumns + `) VALUES ($1, $2, $3, $4, $5, $6);`
	_, err := r.db(ctx).Exec(ctx, query, m.SnapshotID, m.PortfolioID, m.SnapshotDate, m.Value, m.CurrencyCode, m.Note)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: snapshot with ID %s already exists", apperrors.ErrDuplicate, m.SnapshotID)
		}
		return fmt.Errorf("failed to save snapshot %s: %w", m.SnapshotID, err)
	}
	return nil
}

func (r *PgxSnapshotRepository) DeleteSnapshot(ctx context.Context, snapshotID uuid.UUID) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM portfolio_snapshots WHERE snapshot_id = $1;`, snapshotID)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", snapshotID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("snapshot", snapshotID.String())
	}
	return nil
}

func (r *PgxSnapshotRepository) DeleteSnapshotsByPortfolio(ctx context.Context, portfolioID uuid.UUID) error {
	if _, err := r.db(ctx).Exec(ctx, `DELETE FROM portfolio_snapshots WHERE portfolio_id = $1;`, portfolioID); err != nil {
		return fmt.Errorf("failed to delete snapshots of portfolio %s: %w", portfolioID, err)
	}
	return nil
}
