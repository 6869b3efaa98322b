package dto

import (
	"github.com/SscSPs/wealth_tracker/internal/core/domain"
)

// CreateTransferRequest defines the data needed to move money between two accounts.
type CreateTransferRequest struct {
	FromAccountID string  `json:"from_account_id" binding:"required"`
	ToAccountID   string  `json:"to_account_id" binding:"required"`
	Date          string  `json:"date" binding:"required,isodate" example:"2026-01-10"`
	Amount        string  `json:"amount" binding:"required,decimal" example:"500.00"`
	Category      string  `json:"category" binding:"required" example:"Transport"`
	Subcategory   *string `json:"subcategory"`
	Label         *string `json:"label"`
}

// UpdateTransferRequest holds the optional changes applied to both legs.
type UpdateTransferRequest struct {
	Date        *string `json:"date" binding:"omitempty,isodate"`
	Amount      *string `json:"amount" binding:"omitempty,decimal"`
	Category    *string `json:"category"`
	Subcategory *string `json:"subcategory"`
	Label       *string `json:"label"`
}

// TransferResponse shows both legs of a transfer.
type TransferResponse struct {
	TransferID string        `json:"transfer_id"`
	FromEntry  EntryResponse `json:"from_transaction"`
	ToEntry    EntryResponse `json:"to_transaction"`
}

// DeleteTransferResponse lists the ids of the removed legs.
type DeleteTransferResponse struct {
	TransferID  string `json:"transfer_id"`
	FromEntryID string `json:"from_transaction_id"`
	ToEntryID   string `json:"to_transaction_id"`
}

// ToTransferResponse converts a leg pair.
func ToTransferResponse(from, to *domain.LedgerEntry) TransferResponse {
	id := ""
	if from.TransferID != nil {
		id = from.TransferID.String()
	}
	return TransferResponse{
		TransferID: id,
		FromEntry:  ToEntryResponse(from),
		ToEntry:    ToEntryResponse(to),
	}
}
