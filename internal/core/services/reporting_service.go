package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/core/engine"
	portsrepo "github.com/SscSPs/wealth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wealth_tracker/internal/core/ports/services"
	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

type reportingService struct {
	BaseService
	accountRepo   portsrepo.AccountReader
	entryRepo     portsrepo.EntryReader
	portfolioRepo portsrepo.PortfolioRepositoryFacade
	snapshotRepo  portsrepo.SnapshotRepositoryFacade
	fallback      domain.Currency
}

// NewReportingService creates the balance, budget and net worth reports.
// fallback is the currency reported when no account takes part in an aggregation.
func NewReportingService(repos portsrepo.RepositoryProvider, fallback domain.Currency, options ...ServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		accountRepo:   repos.AccountRepo,
		entryRepo:     repos.EntryRepo,
		portfolioRepo: repos.PortfolioRepo,
		snapshotRepo:  repos.SnapshotRepo,
		fallback:      fallback,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// loadAccount fetches an account with its entries in canonical order.
func (s *reportingService) loadAccount(ctx context.Context, accountID string) (*domain.Account, []domain.LedgerEntry, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}
	entries, err := s.entryRepo.ListEntries(ctx, account.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("account_id", account.ID))
		return nil, nil, err
	}
	return account, entries, nil
}

func (s *reportingService) GetAccountBalance(ctx context.Context, accountID string, params dto.BalanceParams) (*dto.AccountBalanceResponse, error) {
	at, err := parseOptionalDate(params.At)
	if err != nil {
		return nil, err
	}
	account, entries, err := s.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	summary, err := engine.ComputeBalance(account.OpeningBalance, entries, at)
	if err != nil {
		return nil, err
	}
	res := dto.ToAccountBalanceResponse(account.ID, dto.OptionalDate(at), summary)
	return &res, nil
}

func (s *reportingService) GetAccountTimeseries(ctx context.Context, accountID string, params dto.TimeseriesParams) (*dto.TimeseriesResponse, error) {
	from, to, g, err := parseRange(params.DateFrom, params.DateTo, params.Granularity)
	if err != nil {
		return nil, err
	}
	account, entries, err := s.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	points, err := engine.ComputeTimeseries(account.OpeningBalance, entries, from, to, g)
	if err != nil {
		return nil, err
	}
	res := dto.ToTimeseriesResponse(g, params.DateFrom, params.DateTo, points)
	return &res, nil
}

func (s *reportingService) GetBudgetSummary(ctx context.Context, accountID string, params dto.BudgetParams) (*dto.BudgetSummaryResponse, error) {
	from, err := parseOptionalDate(params.DateFrom)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate(params.DateTo)
	if err != nil {
		return nil, err
	}
	account, entries, err := s.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	summary := engine.SummarizeBudget(inWindow(entries, from, to), account.Currency)
	res := dto.ToBudgetSummaryResponse(account.ID, summary)
	return &res, nil
}

// netWorthFilter narrows the accounts and portfolios taking part in an aggregation.
type netWorthFilter struct {
	accountType       domain.AccountType
	currency          domain.Currency
	includePortfolios bool
}

func newNetWorthFilter(accountType, currency string, includePortfolios *bool) (netWorthFilter, error) {
	f := netWorthFilter{includePortfolios: includePortfolios == nil || *includePortfolios}
	if accountType != "" {
		t, err := domain.ParseAccountType(accountType)
		if err != nil {
			return netWorthFilter{}, err
		}
		f.accountType = t
	}
	if currency != "" {
		c, err := domain.ParseCurrency(currency)
		if err != nil {
			return netWorthFilter{}, err
		}
		f.currency = c
	}
	return f, nil
}

func (f netWorthFilter) keepAccount(a domain.Account) bool {
	if f.accountType != "" && a.AccountType != f.accountType {
		return false
	}
	return f.currency == "" || a.Currency == f.currency
}

func (f netWorthFilter) keepPortfolio(p domain.Portfolio) bool {
	return f.currency == "" || p.Currency == f.currency
}

// netWorthInputs is everything an aggregation reads, loaded in one pass.
type netWorthInputs struct {
	accounts   []domain.Account
	entries    []domain.LedgerEntry
	portfolios []domain.Portfolio
	snapshots  []domain.PortfolioSnapshot
}

// loadNetWorthInputs fetches accounts, entries and, when withPortfolios is set,
// portfolios with their snapshots concurrently, then applies f.
func (s *reportingService) loadNetWorthInputs(ctx context.Context, f netWorthFilter, withPortfolios bool) (*netWorthInputs, error) {
	var in netWorthInputs
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		accounts, err := s.accountRepo.ListAccounts(gctx)
		if err != nil {
			return err
		}
		for _, a := range accounts {
			if f.keepAccount(a) {
				in.accounts = append(in.accounts, a)
			}
		}
		return nil
	})
	g.Go(func() error {
		entries, err := s.entryRepo.ListEntries(gctx, "")
		in.entries = entries
		return err
	})
	if withPortfolios {
		g.Go(func() error {
			portfolios, err := s.portfolioRepo.ListPortfolios(gctx)
			if err != nil {
				return err
			}
			for _, p := range portfolios {
				if f.keepPortfolio(p) {
					in.portfolios = append(in.portfolios, p)
				}
			}
			return nil
		})
		g.Go(func() error {
			snapshots, err := s.snapshotRepo.ListSnapshots(gctx, uuid.Nil)
			in.snapshots = snapshots
			return err
		})
	}

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load net worth inputs")
		return nil, err
	}
	return &in, nil
}

// fallbackFor is the currency of an aggregation over zero accounts.
func (s *reportingService) fallbackFor(f netWorthFilter) domain.Currency {
	if f.currency != "" {
		return f.currency
	}
	return s.fallback
}

func startNetWorthSpan(ctx context.Context, name string, f netWorthFilter) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("net_worth.account_type", string(f.accountType)),
		attribute.String("net_worth.currency", string(f.currency)),
		attribute.Bool("net_worth.include_portfolios", f.includePortfolios),
	))
}

func (s *reportingService) GetNetWorth(ctx context.Context, params dto.NetWorthParams) (res *dto.NetWorthResponse, err error) {
	at, err := parseOptionalDate(params.At)
	if err != nil {
		return nil, err
	}
	f, err := newNetWorthFilter(params.AccountType, params.Currency, nil)
	if err != nil {
		return nil, err
	}
	ctx, span := startNetWorthSpan(ctx, "ReportingService.GetNetWorth", f)
	defer func() { endSpan(span, err) }()

	in, err := s.loadNetWorthInputs(ctx, f, false)
	if err != nil {
		return nil, err
	}
	total, err := engine.NetWorth(in.accounts, in.entries, at, s.fallbackFor(f))
	if err != nil {
		return nil, err
	}
	return &dto.NetWorthResponse{
		At:       dto.OptionalDate(at),
		Currency: string(total.Currency()),
		Total:    dto.ToMoneyResponse(total),
	}, nil
}

func (s *reportingService) GetGroupedNetWorth(ctx context.Context, params dto.NetWorthParams) (res *dto.GroupedNetWorthResponse, err error) {
	at, err := parseOptionalDate(params.At)
	if err != nil {
		return nil, err
	}
	f, err := newNetWorthFilter(params.AccountType, params.Currency, nil)
	if err != nil {
		return nil, err
	}
	ctx, span := startNetWorthSpan(ctx, "ReportingService.GetGroupedNetWorth", f)
	defer func() { endSpan(span, err) }()

	in, err := s.loadNetWorthInputs(ctx, f, false)
	if err != nil {
		return nil, err
	}
	// The overall total also enforces a single currency across groups.
	total, err := engine.NetWorth(in.accounts, in.entries, at, s.fallbackFor(f))
	if err != nil {
		return nil, err
	}
	groups, err := engine.GroupedNetWorth(in.accounts, in.entries, at, s.fallbackFor(f))
	if err != nil {
		return nil, err
	}
	out := dto.ToGroupedNetWorthResponse(dto.OptionalDate(at), groups, dto.ToMoneyResponse(total))
	return &out, nil
}

func (s *reportingService) GetNetWorthTimeseries(ctx context.Context, params dto.NetWorthTimeseriesParams) (res *dto.TimeseriesResponse, err error) {
	from, to, g, err := parseRange(params.DateFrom, params.DateTo, params.Granularity)
	if err != nil {
		return nil, err
	}
	f, err := newNetWorthFilter(params.AccountType, params.Currency, nil)
	if err != nil {
		return nil, err
	}
	ctx, span := startNetWorthSpan(ctx, "ReportingService.GetNetWorthTimeseries", f)
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("net_worth.granularity", string(g)))

	in, err := s.loadNetWorthInputs(ctx, f, false)
	if err != nil {
		return nil, err
	}
	points, err := engine.NetWorthTimeseries(in.accounts, in.entries, from, to, g, s.fallbackFor(f))
	if err != nil {
		return nil, err
	}
	out := dto.ToTimeseriesResponse(g, params.DateFrom, params.DateTo, points)
	return &out, nil
}

func (s *reportingService) GetNetWorthFull(ctx context.Context, params dto.NetWorthParams) (res *dto.NetWorthResponse, err error) {
	at, err := parseOptionalDate(params.At)
	if err != nil {
		return nil, err
	}
	f, err := newNetWorthFilter(params.AccountType, params.Currency, params.IncludePortfolios)
	if err != nil {
		return nil, err
	}
	ctx, span := startNetWorthSpan(ctx, "ReportingService.GetNetWorthFull", f)
	defer func() { endSpan(span, err) }()

	in, err := s.loadNetWorthInputs(ctx, f, f.includePortfolios)
	if err != nil {
		return nil, err
	}
	cash, err := engine.NetWorth(in.accounts, in.entries, at, s.fallbackFor(f))
	if err != nil {
		return nil, err
	}
	portfolios, err := engine.PortfoliosValue(in.portfolios, in.snapshots, at, cash.Currency())
	if err != nil {
		return nil, err
	}
	total, err := cash.Add(portfolios)
	if err != nil {
		return nil, err
	}
	cashRes := dto.ToMoneyResponse(cash)
	portfoliosRes := dto.ToMoneyResponse(portfolios)
	return &dto.NetWorthResponse{
		At:         dto.OptionalDate(at),
		Currency:   string(total.Currency()),
		Total:      dto.ToMoneyResponse(total),
		Cash:       &cashRes,
		Portfolios: &portfoliosRes,
	}, nil
}

func (s *reportingService) GetNetWorthFullTimeseries(ctx context.Context, params dto.NetWorthTimeseriesParams) (res *dto.TimeseriesResponse, err error) {
	from, to, g, err := parseRange(params.DateFrom, params.DateTo, params.Granularity)
	if err != nil {
		return nil, err
	}
	f, err := newNetWorthFilter(params.AccountType, params.Currency, params.IncludePortfolios)
	if err != nil {
		return nil, err
	}
	ctx, span := startNetWorthSpan(ctx, "ReportingService.GetNetWorthFullTimeseries", f)
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.String("net_worth.granularity", string(g)))

	start := time.Now()
	in, err := s.loadNetWorthInputs(ctx, f, f.includePortfolios)
	if err != nil {
		return nil, err
	}
	points, err := engine.NetWorthFullTimeseries(in.accounts, in.entries, in.portfolios, in.snapshots, from, to, g, s.fallbackFor(f))
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Computed full net worth timeseries",
		slog.Int("accounts", len(in.accounts)),
		slog.Int("portfolios", len(in.portfolios)),
		slog.Int("points", len(points)),
		slog.Duration("elapsed", time.Since(start)))
	out := dto.ToTimeseriesResponse(g, params.DateFrom, params.DateTo, points)
	return &out, nil
}
