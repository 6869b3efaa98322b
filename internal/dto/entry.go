package dto

import (
	"time"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/core/engine"
)

// CreateEntryRequest defines the data needed to post a ledger entry to an account.
type CreateEntryRequest struct {
	Date        string  `json:"date" binding:"required,isodate" example:"2024-01-31"`
	Amount      string  `json:"amount" binding:"required,decimal" example:"-12.34"`
	Kind        string  `json:"kind" binding:"required,oneof=INCOME EXPENSE INVESTMENT ADJUSTMENT"`
	Category    string  `json:"category" binding:"required"`
	Subcategory *string `json:"subcategory"`
	Label       *string `json:"label"`
}

// UpdateEntryRequest holds the optional changes to a plain entry.
// An empty subcategory or label clears the field.
type UpdateEntryRequest struct {
	Date        *string `json:"date" binding:"omitempty,isodate"`
	Amount      *string `json:"amount" binding:"omitempty,decimal"`
	Kind        *string `json:"kind" binding:"omitempty,oneof=INCOME EXPENSE INVESTMENT ADJUSTMENT TRANSFER"`
	Category    *string `json:"category"`
	Subcategory *string `json:"subcategory"`
	Label       *string `json:"label"`
}

// ListEntriesParams defines query parameters for listing entries of an account.
// Repeated kind/category/subcategory parameters are OR-ed.
type ListEntriesParams struct {
	DateFrom      string   `form:"date_from" binding:"omitempty,isodate"`
	DateTo        string   `form:"date_to" binding:"omitempty,isodate"`
	Kinds         []string `form:"kind"`
	Categories    []string `form:"category"`
	Subcategories []string `form:"subcategory"`
	Q             string   `form:"q"`
	SortBy        string   `form:"sort_by" binding:"omitempty,oneof=date amount kind category subcategory label"`
	SortDir       string   `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
	Limit         int      `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken     string   `form:"next_token"`
}

// EntryResponse defines the data returned for a ledger entry.
// BalanceAfter is only set on account listings.
type EntryResponse struct {
	ID           string         `json:"id"`
	AccountID    string         `json:"account_id"`
	Date         string         `json:"date"`
	Sequence     int            `json:"sequence"`
	Amount       MoneyResponse  `json:"amount"`
	Kind         string         `json:"kind"`
	Category     string         `json:"category"`
	Subcategory  *string        `json:"subcategory"`
	Label        *string        `json:"label"`
	CreatedAt    time.Time      `json:"created_at"`
	TransferID   *string        `json:"transfer_id"`
	BalanceAfter *MoneyResponse `json:"balance_after,omitempty"`
}

// ListEntriesResponse wraps one page of entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"next_token,omitempty"`
}

// ImportEntriesResponse reports a CSV import.
type ImportEntriesResponse struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// ToEntryResponse converts a domain.LedgerEntry to EntryResponse DTO.
func ToEntryResponse(e *domain.LedgerEntry) EntryResponse {
	var transferID *string
	if e.TransferID != nil {
		s := e.TransferID.String()
		transferID = &s
	}
	return EntryResponse{
		ID:          e.ID.String(),
		AccountID:   e.AccountID,
		Date:        formatDate(e.Date),
		Sequence:    e.Sequence,
		Amount:      ToMoneyResponse(e.Amount),
		Kind:        string(e.Kind),
		Category:    e.Category,
		Subcategory: e.Subcategory,
		Label:       e.Label,
		CreatedAt:   e.CreatedAt,
		TransferID:  transferID,
	}
}

// ToEntryWithBalanceResponses converts a page of entries annotated with running balances.
func ToEntryWithBalanceResponses(rows []engine.EntryWithBalance) []EntryResponse {
	res := make([]EntryResponse, len(rows))
	for i := range rows {
		res[i] = ToEntryResponse(&rows[i].Entry)
		balance := ToMoneyResponse(rows[i].BalanceAfter)
		res[i].BalanceAfter = &balance
	}
	return res
}
