package services

import (
	"context"
	"io"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/SscSPs/wealth_tracker/internal/dto"
)

// EntryReaderSvc defines read operations for ledger entries
type EntryReaderSvc interface {
	// GetEntry retrieves one entry of an account.
	GetEntry(ctx context.Context, accountID, entryID string) (*domain.LedgerEntry, error)

	// ListEntries returns a filtered, sorted page of entries annotated with running balances.
	ListEntries(ctx context.Context, accountID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// EntryWriterSvc defines write operations for plain (non-transfer) entries
type EntryWriterSvc interface {
	// CreateEntry posts a new entry with the next sequence of its (account, date).
	CreateEntry(ctx context.Context, accountID string, req dto.CreateEntryRequest) (*domain.LedgerEntry, error)

	// UpdateEntry replaces the entry, moving it to a new sequence when its date changes.
	UpdateEntry(ctx context.Context, accountID, entryID string, req dto.UpdateEntryRequest) (*domain.LedgerEntry, error)

	// DeleteEntry removes a plain entry.
	DeleteEntry(ctx context.Context, accountID, entryID string) error

	// ImportCSV posts every valid row of r and reports the invalid ones by line.
	ImportCSV(ctx context.Context, accountID string, r io.Reader) (*dto.ImportEntriesResponse, error)
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
