package services

import (
	"context"

	"github.com/SscSPs/wealth_tracker/internal/dto"
)

// AccountReportingSvc derives figures from the entries of one account.
type AccountReportingSvc interface {
	GetAccountBalance(ctx context.Context, accountID string, params dto.BalanceParams) (*dto.AccountBalanceResponse, error)
	GetAccountTimeseries(ctx context.Context, accountID string, params dto.TimeseriesParams) (*dto.TimeseriesResponse, error)
	GetBudgetSummary(ctx context.Context, accountID string, params dto.BudgetParams) (*dto.BudgetSummaryResponse, error)
}

// NetWorthSvc aggregates balances across accounts and, for the full variants, portfolios.
type NetWorthSvc interface {
	GetNetWorth(ctx context.Context, params dto.NetWorthParams) (*dto.NetWorthResponse, error)
	GetGroupedNetWorth(ctx context.Context, params dto.NetWorthParams) (*dto.GroupedNetWorthResponse, error)
	GetNetWorthTimeseries(ctx context.Context, params dto.NetWorthTimeseriesParams) (*dto.TimeseriesResponse, error)
	GetNetWorthFull(ctx context.Context, params dto.NetWorthParams) (*dto.NetWorthResponse, error)
	GetNetWorthFullTimeseries(ctx context.Context, params dto.NetWorthTimeseriesParams) (*dto.TimeseriesResponse, error)
}

// ReportingSvcFacade combines the reporting service interfaces
type ReportingSvcFacade interface {
	AccountReportingSvc
	NetWorthSvc
}
