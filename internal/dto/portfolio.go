package dto

import (
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
)

// CreatePortfolioRequest defines the data needed to open a portfolio.
type CreatePortfolioRequest struct {
	Name          string `json:"name" binding:"required"`
	Currency      string `json:"currency" binding:"required,currency"`
	PortfolioType string `json:"portfolio_type" binding:"required,oneof=PEA CTO CRYPTO_EXCHANGE WALLET OTHER"`
	OpenedOn      string `json:"opened_on" binding:"required,isodate"`
}

// PortfolioResponse defines the data returned for a portfolio.
type PortfolioResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	PortfolioType string `json:"portfolio_type"`
	OpenedOn      string `json:"opened_on"`
	CashAccountID string `json:"cash_account_id"`
}

// ListPortfoliosResponse wraps the list of portfolios.
type ListPortfoliosResponse struct {
	Portfolios []PortfolioResponse `json:"portfolios"`
}

// CreateSnapshotRequest records a valuation. Currency defaults to the portfolio currency.
type CreateSnapshotRequest struct {
	Date     string  `json:"date" binding:"required,isodate"`
	Value    string  `json:"value" binding:"required,decimal"`
	Currency string  `json:"currency" binding:"omitempty,currency"`
	Note     *string `json:"note"`
}

// SnapshotResponse defines the data returned for a portfolio snapshot.
type SnapshotResponse struct {
	ID          string        `json:"id"`
	PortfolioID string        `json:"portfolio_id"`
	Date        string        `json:"date"`
	Value       MoneyResponse `json:"value"`
	Note        *string       `json:"note"`
}

// ListSnapshotsResponse wraps the snapshots of a portfolio.
type ListSnapshotsResponse struct {
	Snapshots []SnapshotResponse `json:"snapshots"`
}

func ToPortfolioResponse(p *domain.Portfolio) PortfolioResponse {
	return PortfolioResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Currency:      string(p.Currency),
		PortfolioType: string(p.PortfolioType),
		OpenedOn:      formatDate(p.OpenedOn),
		CashAccountID: p.CashAccountID,
	}
}

func ToListPortfoliosResponse(portfolios []domain.Portfolio) ListPortfoliosResponse {
	res := make([]PortfolioResponse, len(portfolios))
	for i := range portfolios {
		res[i] = ToPortfolioResponse(&portfolios[i])
	}
	return ListPortfoliosResponse{Portfolios: res}
}

func ToSnapshotResponse(s *domain.PortfolioSnapshot) SnapshotResponse {
	return SnapshotResponse{
		ID:          s.ID.String(),
		PortfolioID: s.PortfolioID.String(),
		Date:        formatDate(s.Date),
		Value:       ToMoneyResponseFromMoney(s.Value),
		Note:        s.Note,
	}
}

func ToListSnapshotsResponse(snapshots []domain.PortfolioSnapshot) ListSnapshotsResponse {
	res := make([]SnapshotResponse, len(snapshots))
	for i := range snapshots {
		res[i] = ToSnapshotResponse(&snapshots[i])
	}
	return ListSnapshotsResponse{Snapshots: res}
}
