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

type PortfolioRepository struct{ s *Store }

var _ portsrepo.PortfolioRepositoryFacade = (*PortfolioRepository)(nil)

func (r *PortfolioRepository) FindPortfolioByID(_ context.Context, portfolioID uuid.UUID) (*domain.Portfolio, error) {
	var (
		p  domain.Portfolio
		ok bool
	)
	r.s.read(func() { p, ok = r.s.portfolios[portfolioID] })
	if !ok {
		return nil, apperrors.NewNotFoundError("portfolio", portfolioID.String())
	}
	return &p, nil
}

func (r *PortfolioRepository) ListPortfolios(_ context.Context) ([]domain.Portfolio, error) {
	out := []domain.Portfolio{}
	r.s.read(func() {
		for _, p := range r.s.portfolios {
			out = append(out, p)
		}
	})
	slices.SortFunc(out, func(a, b domain.Portfolio) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

func (r *PortfolioRepository) SavePortfolio(ctx context.Context, portfolio domain.Portfolio) error {
	return r.s.write(ctx, func() error {
		if _, exists := r.s.portfolios[portfolio.ID]; exists {
			return apperrors.NewDuplicateError("portfolio", portfolio.ID.String())
		}
		r.s.portfolios[portfolio.ID] = portfolio
		return nil
	})
}

func (r *PortfolioRepository) DeletePortfolio(ctx context.Context, portfolioID uuid.UUID) error {
	return r.s.write(ctx, func() error {
		if _, exists := r.s.portfolios[portfolioID]; !exists {
			return apperrors.NewNotFoundError("portfolio", portfolioID.String())
		}
		delete(r.s.portfolios, portfolioID)
		return nil
	})
}

type SnapshotRepository struct{ s *Store }

var _ portsrepo.SnapshotRepositoryFacade = (*SnapshotRepository)(nil)

func (r *SnapshotRepository) FindSnapshotByID(_ context.Context, snapshotID uuid.UUID) (*domain.PortfolioSnapshot, error) {
	var (
		snap domain.PortfolioSnapshot
		ok   bool
	)
	r.s.read(func() { snap, ok = r.s.snapshots[snapshotID] })
	if !ok {
		return nil, apperrors.NewNotFoundError("snapshot", snapshotID.String())
	}
	return &snap, nil
}

func (r *SnapshotRepository) ListSnapshots(_ context.Context, portfolioID uuid.UUID) ([]domain.PortfolioSnapshot, error) {
	out := []domain.PortfolioSnapshot{}
	r.s.read(func() {
		for _, snap := range r.s.snapshots {
			if portfolioID == uuid.Nil || snap.PortfolioID == portfolioID {
				out = append(out, snap)
			}
		}
	})
	slices.SortFunc(out, func(a, b domain.PortfolioSnapshot) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out, nil
}

func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, snapshot domain.PortfolioSnapshot) error {
	return r.s.write(ctx, func() error {
		if _, exists := r.s.snapshots[snapshot.ID]; exists {
			return apperrors.NewDuplicateError("snapshot", snapshot.ID.String())
		}
		r.s.snapshots[snapshot.ID] = snapshot
		return nil
	})
}

func (r *SnapshotRepository) DeleteSnapshot(ctx context.Context, snapshotID uuid.UUID) error {
	return r.s.write(ctx, func() error {
		if _, exists := r.s.snapshots[snapshotID]; !exists {
			return apperrors.NewNotFoundError("snapshot", snapshotID.String())
		}
		delete(r.s.snapshots, snapshotID)
		return nil
	})
}

func (r *SnapshotRepository) DeleteSnapshotsByPortfolio(ctx context.Context, portfolioID uuid.UUID) error {
	return r.s.write(ctx, func() error {
		for id, snap := range r.s.snapshots {
			if snap.PortfolioID == portfolioID {
				delete(r.s.snapshots, id)
			}
		}
		return nil
	})
}
