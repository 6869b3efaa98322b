package dto

import (
	"github.com/SscSPs/wealth_tracker/internal/core/engine"
)

// TimeseriesParams defines the range of a timeseries. An empty or "auto"
// granularity is picked from the range length.
type TimeseriesParams struct {
	DateFrom    string `form:"date_from" binding:"required,isodate"`
	DateTo      string `form:"date_to" binding:"required,isodate"`
	Granularity string `form:"granularity" binding:"omitempty,oneof=auto daily weekly monthly yearly"`
}

// TimeseriesPointResponse is one bucket of a timeseries.
type TimeseriesPointResponse struct {
	Bucket       string        `json:"bucket" example:"2024-W05"`
	Income       MoneyResponse `json:"income"`
	Expense      MoneyResponse `json:"expense"`
	Net          MoneyResponse `json:"net"`
	BalanceStart MoneyResponse `json:"balance_start"`
	BalanceEnd   MoneyResponse `json:"balance_end"`
}

// TimeseriesResponse wraps the buckets of a timeseries.
type TimeseriesResponse struct {
	Granularity string                    `json:"granularity"`
	DateFrom    string                    `json:"date_from"`
	DateTo      string                    `json:"date_to"`
	Points      []TimeseriesPointResponse `json:"points"`
}

// BudgetParams defines the optional date window of a budget summary.
type BudgetParams struct {
	DateFrom string `form:"date_from" binding:"omitempty,isodate"`
	DateTo   string `form:"date_to" binding:"omitempty,isodate"`
}

type KindTotalResponse struct {
	Kind  string        `json:"kind"`
	Total MoneyResponse `json:"total"`
}

type CategoryTotalResponse struct {
	Category string        `json:"category"`
	Total    MoneyResponse `json:"total"`
}

type SubcategoryTotalResponse struct {
	Category    string        `json:"category"`
	Subcategory string        `json:"subcategory"`
	Total       MoneyResponse `json:"total"`
}

type MonthlyKindTotalResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Kind  string        `json:"kind"`
	Total MoneyResponse `json:"total"`
}

// BudgetSummaryResponse holds the rollups of one account.
type BudgetSummaryResponse struct {
	AccountID            string                     `json:"account_id"`
	Currency             string                     `json:"currency"`
	TotalsByKind         []KindTotalResponse        `json:"totals_by_kind"`
	ExpenseByCategory    []CategoryTotalResponse    `json:"expense_by_category"`
	ExpenseBySubcategory []SubcategoryTotalResponse `json:"expense_by_subcategory"`
	MonthlyTotalsByKind  []MonthlyKindTotalResponse `json:"monthly_totals_by_kind"`
}

// NetWorthParams filters a net worth computation.
type NetWorthParams struct {
	At                string `form:"at" binding:"omitempty,isodate"`
	AccountType       string `form:"account_type" binding:"omitempty,oneof=CHECKING SAVINGS INVESTMENT OTHER"`
	Currency          string `form:"currency" binding:"omitempty,currency"`
	IncludePortfolios *bool  `form:"include_portfolios"` // Full variants only, defaults to true
}

// NetWorthTimeseriesParams combines the net worth filters with a date range.
type NetWorthTimeseriesParams struct {
	TimeseriesParams
	AccountType       string `form:"account_type" binding:"omitempty,oneof=CHECKING SAVINGS INVESTMENT OTHER"`
	Currency          string `form:"currency" binding:"omitempty,currency"`
	IncludePortfolios *bool  `form:"include_portfolios"`
}

// NetWorthResponse is a net worth figure. Cash and Portfolios are set on the full variant.
type NetWorthResponse struct {
	At         *string        `json:"at"`
	Currency   string         `json:"currency"`
	Total      MoneyResponse  `json:"total"`
	Cash       *MoneyResponse `json:"cash,omitempty"`
	Portfolios *MoneyResponse `json:"portfolios,omitempty"`
}

type GroupTotalResponse struct {
	AccountType string        `json:"account_type"`
	Total       MoneyResponse `json:"total"`
}

// GroupedNetWorthResponse is net worth per account type.
type GroupedNetWorthResponse struct {
	At       *string              `json:"at"`
	Currency string               `json:"currency"`
	Groups   []GroupTotalResponse `json:"groups"`
	Total    MoneyResponse        `json:"total"`
}

func ToTimeseriesResponse(g engine.Granularity, from, to string, points []engine.TimeseriesPoint) TimeseriesResponse {
	res := make([]TimeseriesPointResponse, len(points))
	for i, p := range points {
		res[i] = TimeseriesPointResponse{
			Bucket:       p.Bucket,
			Income:       ToMoneyResponse(p.Income),
			Expense:      ToMoneyResponse(p.Expense),
			Net:          ToMoneyResponse(p.Net),
			BalanceStart: ToMoneyResponse(p.BalanceStart),
			BalanceEnd:   ToMoneyResponse(p.BalanceEnd),
		}
	}
	return TimeseriesResponse{Granularity: string(g), DateFrom: from, DateTo: to, Points: res}
}

func ToBudgetSummaryResponse(accountID string, s engine.BudgetSummary) BudgetSummaryResponse {
	res := BudgetSummaryResponse{
		AccountID:            accountID,
		Currency:             string(s.Currency),
		TotalsByKind:         make([]KindTotalResponse, len(s.TotalsByKind)),
		ExpenseByCategory:    make([]CategoryTotalResponse, len(s.ExpenseByCategory)),
		ExpenseBySubcategory: make([]SubcategoryTotalResponse, len(s.ExpenseBySubcategory)),
		MonthlyTotalsByKind:  make([]MonthlyKindTotalResponse, len(s.MonthlyTotalsByKind)),
	}
	for i, t := range s.TotalsByKind {
		res.TotalsByKind[i] = KindTotalResponse{Kind: string(t.Kind), Total: ToMoneyResponse(t.Total)}
	}
	for i, t := range s.ExpenseByCategory {
		res.ExpenseByCategory[i] = CategoryTotalResponse{Category: t.Category, Total: ToMoneyResponse(t.Total)}
	}
	for i, t := range s.ExpenseBySubcategory {
		res.ExpenseBySubcategory[i] = SubcategoryTotalResponse{Category: t.Category, Subcategory: t.Subcategory, Total: ToMoneyResponse(t.Total)}
	}
	for i, t := range s.MonthlyTotalsByKind {
		res.MonthlyTotalsByKind[i] = MonthlyKindTotalResponse{Year: t.Year, Month: t.Month, Kind: string(t.Kind), Total: ToMoneyResponse(t.Total)}
	}
	return res
}

func ToGroupedNetWorthResponse(at *string, groups []engine.GroupTotal, total MoneyResponse) GroupedNetWorthResponse {
	res := make([]GroupTotalResponse, len(groups))
	for i, g := range groups {
		res[i] = GroupTotalResponse{AccountType: string(g.AccountType), Total: ToMoneyResponse(g.Total)}
	}
	return GroupedNetWorthResponse{At: at, Currency: total.Currency, Groups: res, Total: total}
}
