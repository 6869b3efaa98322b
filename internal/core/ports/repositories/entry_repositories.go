package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/core/domain"
	"github.com/google/uuid"
)

// EntryReader defines read operations for ledger entries
type EntryReader interface {
	// FindEntryByID returns apperrors.ErrNotFound when no entry has this id.
	FindEntryByID(ctx context.Context, entryID uuid.UUID) (*domain.LedgerEntry, error)

	// ListEntries returns the entries of one account, or of every account when accountID is empty,
	// in canonical ledger order.
	ListEntries(ctx context.Context, accountID string) ([]domain.LedgerEntry, error)

	// FindEntriesByTransferID returns every leg tagged with transferID.
	FindEntriesByTransferID(ctx context.Context, transferID uuid.UUID) ([]domain.LedgerEntry, error)
}

// EntrySequencer assigns per (account, date) sequence numbers.
type EntrySequencer interface {
	// NextSequence returns max(sequence)+1 for the pair, starting at 1. It must be called
	// inside TransactionManager.WithinTx; concurrent callers for the same pair are serialized
	// until the enclosing transaction ends.
	NextSequence(ctx context.Context, accountID string, date time.Time) (int, error)

	// CloseSequenceGap shifts down every sequence above removed for the pair, keeping the
	// sequence set dense after an entry leaves it.
	CloseSequenceGap(ctx context.Context, accountID string, date time.Time, removed int) error
}

// EntryWriter defines write operations for ledger entries
type EntryWriter interface {
	// SaveEntries persists new entries together.
	SaveEntries(ctx context.Context, entries ...domain.LedgerEntry) error

	// UpdateEntries replaces stored entries by id. Returns apperrors.ErrNotFound if one is missing.
	UpdateEntries(ctx context.Context, entries ...domain.LedgerEntry) error

	// DeleteEntry removes one entry of an account and reports whether it existed.
	DeleteEntry(ctx context.Context, accountID string, entryID uuid.UUID) (bool, error)

	// DeleteEntriesByAccount removes every entry of an account and returns how many were removed.
	DeleteEntriesByAccount(ctx context.Context, accountID string) (int, error)

	// DeleteTransfer removes both legs of a transfer and returns their ids.
	DeleteTransfer(ctx context.Context, transferID uuid.UUID) (fromID, toID uuid.UUID, err error)
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntrySequencer
	EntryWriter
}
