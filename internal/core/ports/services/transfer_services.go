package services

import (
	"context"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/dto"
	"github.com/google/uuid"
)

// TransferSvcFacade maintains the two legs of a transfer as one unit.
type TransferSvcFacade interface {
	// CreateTransfer posts the negative leg in the source account and the positive leg in the target.
	CreateTransfer(ctx context.Context, req dto.CreateTransferRequest) (from, to *domain.LedgerEntry, err error)

	// GetTransfer returns the (from, to) legs of a transfer.
	GetTransfer(ctx context.Context, transferID string) (from, to *domain.LedgerEntry, err error)

	// UpdateTransfer applies the same change to both legs.
	UpdateTransfer(ctx context.Context, transferID string, req dto.UpdateTransferRequest) (from, to *domain.LedgerEntry, err error)

	// DeleteTransfer removes both legs and returns their ids.
	DeleteTransfer(ctx context.Context, transferID string) (fromID, toID uuid.UUID, err error)
}
