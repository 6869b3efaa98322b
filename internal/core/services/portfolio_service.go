package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/wealth_tracker/internal/apperrors"
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/SscSPs/wealth_tracker/internal/utils/accounting"
	"github.com/google/uuid"
)

// portfolioService manages portfolios, their pass-through cash account and their snapshots.
type portfolioService struct {
	BaseService
	txManager     portsrepo.TransactionManager
	portfolioRepo portsrepo.PortfolioRepositoryFacade
	snapshotRepo  portsrepo.SnapshotRepositoryFacade
	tradeRepo     portsrepo.TradeRepositoryFacade
	accountRepo   portsrepo.AccountRepositoryFacade
	entryRepo     portsrepo.EntryRepositoryFacade
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(repos portsrepo.RepositoryProvider, options ...ServiceOption) portssvc.PortfolioSvcFacade {
	svc := &portfolioService{
		txManager:     repos.TxManager,
		portfolioRepo: repos.PortfolioRepo,
		snapshotRepo:  repos.SnapshotRepo,
		tradeRepo:     repos.TradeRepo,
		accountRepo:   repos.AccountRepo,
		entryRepo:     repos.EntryRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.PortfolioSvcFacade = (*portfolioService)(nil)

func (s *portfolioService) CreatePortfolio(ctx context.Context, req dto.CreatePortfolioRequest) (*domain.Portfolio, error) {
	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		return nil, err
	}
	portfolioType, err := domain.ParsePortfolioType(req.PortfolioType)
	if err != nil {
		return nil, err
	}
	openedOn, err := domain.ParseDate(req.OpenedOn)
	if err != nil {
		return nil, err
	}
	portfolio, err := domain.NewPortfolio(uuid.Nil, req.Name, currency, portfolioType, openedOn)
	if err != nil {
		return nil, err
	}
	cash, err := domain.NewAccount(portfolio.CashAccountID, accounting.PassThroughAccountName(portfolio.Name),
		currency, domain.ZeroSignedMoney(currency), portfolio.OpenedOn, domain.Other)
	if err != nil {
		return nil, err
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.portfolioRepo.SavePortfolio(ctx, *portfolio); err != nil {
			return err
		}
		return s.accountRepo.SaveAccount(ctx, *cash)
	})
	s.Record("portfolio_create", err)
	if err != nil {
		s.LogError(ctx, err, "Failed to create portfolio", slog.String("name", portfolio.Name))
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}
	s.LogInfo(ctx, "Portfolio created",
		slog.String("portfolio_id", portfolio.ID.String()),
		slog.String("cash_account_id", portfolio.CashAccountID))
	return portfolio, nil
}

func (s *portfolioService) GetPortfolio(ctx context.Context, portfolioID string) (*domain.Portfolio, error) {
	id, err := parseID("portfolio", portfolioID)
	if err != nil {
		return nil, err
	}
	return s.portfolioRepo.FindPortfolioByID(ctx, id)
}

func (s *portfolioService) ListPortfolios(ctx context.Context) ([]domain.Portfolio, error) {
	return s.portfolioRepo.ListPortfolios(ctx)
}

func (s *portfolioService) DeletePortfolio(ctx context.Context, portfolioID string) error {
	id, err := parseID("portfolio", portfolioID)
	if err != nil {
		return err
	}
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		portfolio, err := s.portfolioRepo.FindPortfolioByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.snapshotRepo.DeleteSnapshotsByPortfolio(ctx, id); err != nil {
			return err
		}
		if err := s.tradeRepo.DeleteTradesByPortfolio(ctx, id); err != nil {
			return err
		}
		entries, err := s.entryRepo.ListEntries(ctx, portfolio.CashAccountID)
		if err != nil {
			return err
		}
		if err := removeTransfersOf(ctx, s.entryRepo, portfolio.CashAccountID, entries); err != nil {
			return err
		}
		if _, err := s.entryRepo.DeleteEntriesByAccount(ctx, portfolio.CashAccountID); err != nil {
			return err
		}
		if err := s.accountRepo.DeleteAccount(ctx, portfolio.CashAccountID); err != nil && !isNotFound(err) {
			return err
		}
		return s.portfolioRepo.DeletePortfolio(ctx, id)
	})
	s.Record("portfolio_delete", err)
	if err == nil {
		s.LogInfo(ctx, "Portfolio deleted", slog.String("portfolio_id", portfolioID))
	}
	return err
}

func (s *portfolioService) CreateSnapshot(ctx context.Context, portfolioID string, req dto.CreateSnapshotRequest) (*domain.PortfolioSnapshot, error) {
	portfolio, err := s.GetPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	currency := portfolio.Currency
	if strings.TrimSpace(req.Currency) != "" {
		if currency, err = domain.ParseCurrency(req.Currency); err != nil {
			return nil, err
		}
	}
	if currency != portfolio.Currency {
		return nil, apperrors.NewValidationError("snapshot currency %s must match portfolio currency %s", currency, portfolio.Currency)
	}
	value, err := domain.ParseMoney(req.Value, currency)
	if err != nil {
		return nil, err
	}
	snapshot, err := domain.NewPortfolioSnapshot(uuid.Nil, portfolio.ID, date, value, req.Note)
	if err != nil {
		return nil, err
	}
	if err := s.snapshotRepo.SaveSnapshot(ctx, *snapshot); err != nil {
		s.LogError(ctx, err, "Failed to save snapshot", slog.String("portfolio_id", portfolioID))
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *portfolioService) ListSnapshots(ctx context.Context, portfolioID string) ([]domain.PortfolioSnapshot, error) {
	portfolio, err := s.GetPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, err
	}
	return s.snapshotRepo.ListSnapshots(ctx, portfolio.ID)
}

func (s *portfolioService) DeleteSnapshot(ctx context.Context, portfolioID, snapshotID string) error {
	pid, err := parseID("portfolio", portfolioID)
	if err != nil {
		return err
	}
	sid, err := parseID("snapshot", snapshotID)
	if err != nil {
		return err
	}
	snapshot, err := s.snapshotRepo.FindSnapshotByID(ctx, sid)
	if err != nil {
		return err
	}
	if snapshot.PortfolioID != pid {
		return apperrors.NewNotFoundError("snapshot", snapshotID)
	}
	return s.snapshotRepo.DeleteSnapshot(ctx, sid)
}
